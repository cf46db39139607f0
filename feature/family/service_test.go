package family_test

import (
	"bytes"
	"context"
	"io"
	"testing"
	"time"

	"pseudo-manager/core/storage/mocks"
	"pseudo-manager/feature/family"
	"pseudo-manager/feature/family/models"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupService(t *testing.T, mockClient *mocks.Client, verifyTTL time.Duration) *family.Service {
	t.Helper()
	repo := family.NewRepository(setupStore(t), mockClient, "pseudos", zap.NewNop())
	return family.NewService(repo, zap.NewNop(), verifyTTL)
}

func TestServiceCreateAndGetFamily(t *testing.T) {
	ctx := context.Background()
	mockClient := new(mocks.Client)
	mockClient.On("PutObject", mock.Anything, "pseudos", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(minio.UploadInfo{}, nil)
	svc := setupService(t, mockClient, 0)

	dir := writeFiles(t, map[string][]byte{
		"Fe.upf": upfContent("Fe"),
		"O.upf":  upfContent("O"),
	})

	detail, err := svc.CreateFamily(ctx, dir, family.Definition{
		Label:       "sssp",
		Description: "efficiency set",
		Format:      models.FormatUPF,
	})
	require.NoError(t, err)
	assert.Equal(t, "sssp", detail.Label)
	assert.Equal(t, []string{"Fe", "O"}, detail.Elements)
	assert.Equal(t, 2, detail.RecordCount)

	infos, err := svc.ListFamilies(ctx)
	require.NoError(t, err)
	require.Len(t, infos, 1)
	assert.Equal(t, "sssp", infos[0].Label)

	detail, err = svc.GetFamilyDetail(ctx, "sssp")
	require.NoError(t, err)
	assert.Equal(t, 2, detail.RecordCount)

	record, err := svc.GetPseudo(ctx, "sssp", "Fe")
	require.NoError(t, err)
	assert.Equal(t, "Fe", record.Element)
	assert.True(t, record.Stored())

	_, err = svc.GetPseudo(ctx, "sssp", "Xx")
	require.Error(t, err)
	assert.ErrorIs(t, err, family.ErrInvalidInput)

	_, err = svc.GetFamilyDetail(ctx, "missing")
	require.Error(t, err)
	assert.ErrorIs(t, err, family.ErrInvalidInput)
}

func TestServiceVerifyFamily(t *testing.T) {
	ctx := context.Background()
	content := upfContent("Fe")

	mockClient := new(mocks.Client)
	mockClient.On("PutObject", mock.Anything, "pseudos", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(minio.UploadInfo{}, nil)
	mockClient.On("GetObject", mock.Anything, "pseudos", mock.Anything, mock.Anything).
		Return(io.NopCloser(bytes.NewReader(content)), nil)
	svc := setupService(t, mockClient, 0)

	dir := writeFiles(t, map[string][]byte{"Fe.upf": content})
	_, err := svc.CreateFamily(ctx, dir, family.Definition{Label: "verify-clean"})
	require.NoError(t, err)

	report, err := svc.VerifyFamily(ctx, "verify-clean")
	require.NoError(t, err)
	assert.Equal(t, 1, report.TotalRecords)
	assert.Equal(t, 1, report.VerifiedRecords)
	assert.True(t, report.Clean())
	assert.NotEmpty(t, report.GeneratedAt)
}

func TestServiceVerifyFamilyChecksumMismatch(t *testing.T) {
	ctx := context.Background()
	mockClient := new(mocks.Client)
	mockClient.On("PutObject", mock.Anything, "pseudos", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(minio.UploadInfo{}, nil)
	// Storage hands back different bytes than were uploaded.
	mockClient.On("GetObject", mock.Anything, "pseudos", mock.Anything, mock.Anything).
		Return(io.NopCloser(bytes.NewReader([]byte("corrupted"))), nil)
	svc := setupService(t, mockClient, 0)

	dir := writeFiles(t, map[string][]byte{"Fe.upf": upfContent("Fe")})
	_, err := svc.CreateFamily(ctx, dir, family.Definition{Label: "verify-corrupt"})
	require.NoError(t, err)

	report, err := svc.VerifyFamily(ctx, "verify-corrupt")
	require.NoError(t, err)
	assert.False(t, report.Clean())
	assert.Equal(t, 0, report.VerifiedRecords)
	require.Len(t, report.ChecksumErrors, 1)
	assert.Contains(t, report.ChecksumErrors[0], "Fe")
}

func TestServiceVerifyFamilyMissingContent(t *testing.T) {
	ctx := context.Background()
	mockClient := new(mocks.Client)
	mockClient.On("PutObject", mock.Anything, "pseudos", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(minio.UploadInfo{}, nil)
	mockClient.On("GetObject", mock.Anything, "pseudos", mock.Anything, mock.Anything).
		Return(nil, assert.AnError)
	svc := setupService(t, mockClient, 0)

	dir := writeFiles(t, map[string][]byte{"Fe.upf": upfContent("Fe")})
	_, err := svc.CreateFamily(ctx, dir, family.Definition{Label: "verify-missing"})
	require.NoError(t, err)

	report, err := svc.VerifyFamily(ctx, "verify-missing")
	require.NoError(t, err)
	assert.False(t, report.Clean())
	require.Len(t, report.MissingContent, 1)
}

func TestServiceVerifyFamilyCachesReport(t *testing.T) {
	ctx := context.Background()
	content := upfContent("Fe")

	mockClient := new(mocks.Client)
	mockClient.On("PutObject", mock.Anything, "pseudos", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(minio.UploadInfo{}, nil)
	mockClient.On("GetObject", mock.Anything, "pseudos", mock.Anything, mock.Anything).
		Return(io.NopCloser(bytes.NewReader(content)), nil)
	svc := setupService(t, mockClient, time.Minute)

	dir := writeFiles(t, map[string][]byte{"Fe.upf": content})
	_, err := svc.CreateFamily(ctx, dir, family.Definition{Label: "verify-cached"})
	require.NoError(t, err)

	first, err := svc.VerifyFamily(ctx, "verify-cached")
	require.NoError(t, err)
	second, err := svc.VerifyFamily(ctx, "verify-cached")
	require.NoError(t, err)

	assert.Same(t, first, second, "the second report must come from the cache")
	mockClient.AssertNumberOfCalls(t, "GetObject", 1)

	// Invalidation forces a fresh verification.
	family.InvalidateVerifyReport("verify-cached")
	_, err = svc.VerifyFamily(ctx, "verify-cached")
	require.NoError(t, err)
	mockClient.AssertNumberOfCalls(t, "GetObject", 2)
}
