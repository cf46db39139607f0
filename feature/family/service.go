package family

import (
	"context"
	"time"

	"pseudo-manager/feature/family/models"

	"go.uber.org/zap"
)

// Service orchestrates family operations for the CLI and HTTP handlers.
//
// Family instances are constructed per call rather than cached: a Family
// owns its element index and assumes single-writer access, so sharing one
// across requests is not safe.
type Service struct {
	repo      *Repository
	logger    *zap.Logger
	verifyTTL time.Duration
}

// NewService creates a new family service.
func NewService(repo *Repository, logger *zap.Logger, verifyTTL time.Duration) *Service {
	return &Service{
		repo:      repo,
		logger:    logger,
		verifyTTL: verifyTTL,
	}
}

// Repo exposes the underlying repository for commands that need direct
// access (orphan purging).
func (s *Service) Repo() *Repository {
	return s.repo
}

// CreateFamily creates a new family from the files in a directory and
// returns its summary.
func (s *Service) CreateFamily(ctx context.Context, dirpath string, def Definition) (*models.FamilyDetail, error) {
	f, err := CreateFromDirectory(ctx, s.repo, def, dirpath)
	if err != nil {
		return nil, err
	}

	elements, err := f.Elements(ctx)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Created family",
		zap.String("label", f.Label()),
		zap.String("format", f.Format()),
		zap.Int("records", len(elements)),
	)

	return &models.FamilyDetail{
		Label:       f.Label(),
		Description: f.Description(),
		Format:      f.Format(),
		Elements:    elements,
		RecordCount: len(elements),
	}, nil
}

// ListFamilies returns the summaries of all stored families.
func (s *Service) ListFamilies(ctx context.Context) ([]Info, error) {
	return s.repo.ListFamilies(ctx)
}

// GetFamilyDetail returns the summary of a stored family.
func (s *Service) GetFamilyDetail(ctx context.Context, label string) (*models.FamilyDetail, error) {
	f, err := Load(ctx, s.repo, label)
	if err != nil {
		return nil, err
	}

	elements, err := f.Elements(ctx)
	if err != nil {
		return nil, err
	}

	return &models.FamilyDetail{
		Label:       f.Label(),
		Description: f.Description(),
		Format:      f.Format(),
		Elements:    elements,
		RecordCount: len(elements),
	}, nil
}

// GetPseudo returns the record of a family for the given element.
func (s *Service) GetPseudo(ctx context.Context, label, element string) (*models.PseudoRecord, error) {
	f, err := Load(ctx, s.repo, label)
	if err != nil {
		return nil, err
	}
	return f.GetPseudo(ctx, element)
}

// GetPseudoContent fetches the raw file content of a record.
func (s *Service) GetPseudoContent(ctx context.Context, record *models.PseudoRecord) ([]byte, error) {
	return s.repo.FetchContent(ctx, record)
}

// VerifyFamily verifies a family's content, serving a cached report within
// the configured TTL.
func (s *Service) VerifyFamily(ctx context.Context, label string) (*models.VerifyReport, error) {
	return GetOrBuildVerifyReport(ctx, s.repo, label, s.verifyTTL)
}
