package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const envPrefix = "PORTAL"

type AppConfig struct {
	API       *APIConfig       `mapstructure:"api"`
	Gin       *GinConfig       `mapstructure:"gin"`
	Storage   *StorageConfig   `mapstructure:"storage"`
	Postgres  *PostgresConfig  `mapstructure:"postgres"`
	Admin     *AdminConfig     `mapstructure:"admin"`
	RateLimit *RateLimitConfig `mapstructure:"rate_limit"`
}

type APIConfig struct {
	Environment        string   `mapstructure:"environment"`
	Port               string   `mapstructure:"port"`
	BaseURL            string   `mapstructure:"base_url"`
	FrontendURL        string   `mapstructure:"frontend_url"`
	AllowedCORSDomains []string `mapstructure:"allowed_cors_domains"`
	JWTSigningKey      string   `mapstructure:"jwt_signing_key"`
}

type GinConfig struct {
	Mode string `mapstructure:"mode"`
}

// StorageConfig selects the Storage backend: "memory" (default) or "postgres".
type StorageConfig struct {
	Driver string `mapstructure:"driver"`
	Seed   bool   `mapstructure:"seed"`
}

type PostgresConfig struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DB       string `mapstructure:"db"`
	SSLMode  string `mapstructure:"sslmode"`
}

// AdminConfig drives the shared-secret admin gate. The gate is a convenience
// for the admin panel and not an authorization boundary.
type AdminConfig struct {
	Username   string        `mapstructure:"username"`
	Password   string        `mapstructure:"password"`
	EnforceAPI bool          `mapstructure:"enforce_api"`
	TokenTTL   time.Duration `mapstructure:"token_ttl"`
}

type RateLimitConfig struct {
	Requests int           `mapstructure:"requests"`
	Window   time.Duration `mapstructure:"window"`
}

func (c *PostgresConfig) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		c.Host, c.User, c.Password, c.DB, c.Port, c.SSLMode)
}

// AllowedOrigins merges the configured CORS domains with the frontend URL.
func (c *APIConfig) AllowedOrigins() []string {
	origins := make([]string, 0, len(c.AllowedCORSDomains)+1)
	for _, o := range c.AllowedCORSDomains {
		if o != "" {
			origins = append(origins, o)
		}
	}
	if c.FrontendURL != "" {
		origins = append(origins, c.FrontendURL)
	}

	return origins
}

func Default() *AppConfig {
	return &AppConfig{
		API: &APIConfig{
			Environment: "development",
			Port:        "5000",
			BaseURL:     "localhost:5000",
			AllowedCORSDomains: []string{
				"http://localhost:5173",
				"http://localhost:3000",
				"https://*.netlify.app",
				"https://*.netlify.com",
			},
			JWTSigningKey: "change-me",
		},
		Gin:      &GinConfig{Mode: "debug"},
		Storage:  &StorageConfig{Driver: "memory", Seed: true},
		Postgres: &PostgresConfig{Host: "localhost", Port: "5432", User: "postgres", DB: "portal", SSLMode: "disable"},
		Admin: &AdminConfig{
			Username: "admin",
			Password: "admin2025",
			TokenTTL: 12 * time.Hour,
		},
		RateLimit: &RateLimitConfig{Requests: 30, Window: time.Minute},
	}
}

func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("api.environment", d.API.Environment)
	v.SetDefault("api.port", d.API.Port)
	v.SetDefault("api.base_url", d.API.BaseURL)
	v.SetDefault("api.frontend_url", d.API.FrontendURL)
	v.SetDefault("api.allowed_cors_domains", d.API.AllowedCORSDomains)
	v.SetDefault("api.jwt_signing_key", d.API.JWTSigningKey)
	v.SetDefault("gin.mode", d.Gin.Mode)
	v.SetDefault("storage.driver", d.Storage.Driver)
	v.SetDefault("storage.seed", d.Storage.Seed)
	v.SetDefault("postgres.host", d.Postgres.Host)
	v.SetDefault("postgres.port", d.Postgres.Port)
	v.SetDefault("postgres.user", d.Postgres.User)
	v.SetDefault("postgres.db", d.Postgres.DB)
	v.SetDefault("postgres.sslmode", d.Postgres.SSLMode)
	v.SetDefault("admin.username", d.Admin.Username)
	v.SetDefault("admin.password", d.Admin.Password)
	v.SetDefault("admin.enforce_api", d.Admin.EnforceAPI)
	v.SetDefault("admin.token_ttl", d.Admin.TokenTTL)
	v.SetDefault("rate_limit.requests", d.RateLimit.Requests)
	v.SetDefault("rate_limit.window", d.RateLimit.Window)
}

// Load reads the YAML file at path and overlays PORTAL_* environment variables.
func Load(path string) (*AppConfig, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigFile(path)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("v.ReadInConfig -> %w", err)
	}

	conf := &AppConfig{}
	if err := v.Unmarshal(conf); err != nil {
		return nil, fmt.Errorf("v.Unmarshal -> %w", err)
	}

	return conf, nil
}

// Watch logs a warning whenever the file at path changes. The watcher lives
// for the rest of the process.
func Watch(path string) error {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("v.ReadInConfig -> %w", err)
	}

	v.OnConfigChange(func(e fsnotify.Event) {
		// Settings are bound at startup; a change needs a restart to apply.
		zap.L().Warn("config file changed, restart to apply",
			zap.String("file", e.Name), zap.String("op", e.Op.String()))
	})
	v.WatchConfig()

	return nil
}
