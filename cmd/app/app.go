package app

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/vietanh2810/course-portal-api/internal/api"
	"github.com/vietanh2810/course-portal-api/internal/config"
	"github.com/vietanh2810/course-portal-api/internal/db"
	"github.com/vietanh2810/course-portal-api/internal/logger"
	"github.com/vietanh2810/course-portal-api/internal/repository"
	"github.com/vietanh2810/course-portal-api/internal/service"
)

const DefaultConfigPath = "./cmd/app/config.yml"

func Start(configPath string) error {
	conf, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to initialize config -> %w", err)
	}

	if err = logger.Init(conf.API.Environment); err != nil {
		return fmt.Errorf("failed to initialize logger -> %w", err)
	}

	if err = config.Watch(configPath); err != nil {
		return fmt.Errorf("failed to watch config -> %w", err)
	}

	ctx := context.Background()

	storage, err := openStorage(conf)
	if err != nil {
		return fmt.Errorf("failed to initialize storage -> %w", err)
	}

	if conf.Storage.Seed {
		if err = repository.Seed(ctx, storage); err != nil {
			return fmt.Errorf("failed to seed storage -> %w", err)
		}
	}

	if _, err = service.NewAuthService(storage).EnsureAdmin(ctx, conf.Admin.Username, conf.Admin.Password); err != nil {
		return fmt.Errorf("failed to create admin user -> %w", err)
	}

	s := api.NewServer(conf, storage)
	go s.Feed.Run()
	defer s.Feed.Stop()

	addr := ":" + s.Config.API.Port
	zap.L().Info(fmt.Sprintf("starting server at %v", addr),
		zap.String("storage", conf.Storage.Driver),
		zap.Bool("admin_gate", conf.Admin.EnforceAPI))
	if err = s.Router.Run(addr); err != nil {
		return fmt.Errorf("failed to start the server -> %w", err)
	}

	return nil
}

func openStorage(conf *config.AppConfig) (repository.Storage, error) {
	switch conf.Storage.Driver {
	case "", "memory":
		return repository.NewMemStorage(), nil
	case "postgres":
		dbURL := os.Getenv("DATABASE_URL")
		var postgresDB *gorm.DB
		var err error
		if dbURL != "" {
			postgresDB, err = db.OpenPostgresWithURL(dbURL)
		} else {
			postgresDB, err = db.OpenPostgres(conf.Postgres)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database -> %w", err)
		}

		storage, err := repository.OpenPostgresStorage(postgresDB)
		if err != nil {
			return nil, fmt.Errorf("repository.OpenPostgresStorage -> %w", err)
		}

		return storage, nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", conf.Storage.Driver)
	}
}
