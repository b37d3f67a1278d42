package main

import (
	"os"

	_ "github.com/joho/godotenv/autoload" // Autoload .env file.
	"github.com/spf13/cobra"

	"github.com/vietanh2810/course-portal-api/cmd/app"
)

var version = "dev"

// @title        Course portal API
// @version      1.0
// @description  Course catalog, guided tours and their registrations.
// @BasePath     /api
//
// @termsOfService  http://swagger.io/terms/
// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io
//
// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html
//
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Bearer token
//
// @externalDocs.description  OpenAPI
// @externalDocs.url          https://swagger.io/resources/open-api/
func main() {
	var configPath string

	rootCmd := &cobra.Command{
		Use:           "course-portal-api",
		Short:         "REST API for the course and guided tour registration portal",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Start(configPath)
		},
	}
	rootCmd.Flags().StringVarP(&configPath, "config", "c", app.DefaultConfigPath, "path to the YAML config file")

	if err := rootCmd.Execute(); err != nil {
		rootCmd.PrintErrln(err)
		os.Exit(1)
	}
}
