package cmd

import (
	"fmt"

	"pseudo-manager/core/config"
	"pseudo-manager/core/database"
	"pseudo-manager/core/graph"
	"pseudo-manager/core/logger"
	"pseudo-manager/core/storage"
	"pseudo-manager/feature/family"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// appContext bundles the collaborators the CLI commands need.
type appContext struct {
	cfg     *config.Config
	logger  *zap.Logger
	db      *gorm.DB
	store   *graph.GormStore
	client  storage.Client
	service *family.Service
}

// setup loads configuration and wires the service stack for a CLI command.
func setup() (*appContext, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	store := graph.NewGormStore(db)
	if err := store.Migrate(); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	client, err := storage.NewClient(cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}

	repo := family.NewRepository(store, client, cfg.Storage.Bucket, logg)
	svc := family.NewService(repo, logg, cfg.Server.VerifyCacheTTL())

	return &appContext{
		cfg:     cfg,
		logger:  logg,
		db:      db,
		store:   store,
		client:  client,
		service: svc,
	}, nil
}
