package family

import (
	"time"

	"pseudo-manager/core/graph"
	"pseudo-manager/core/storage"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates a new family feature.
func NewFeature(store graph.Store, client storage.Client, bucket string, logger *zap.Logger, verifyTTL time.Duration) *Feature {
	repo := NewRepository(store, client, bucket, logger)
	svc := NewService(repo, logger, verifyTTL)
	h := NewHandler(svc)
	return &Feature{service: svc, handler: h}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "family"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
