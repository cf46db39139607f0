package family_test

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"pseudo-manager/core/database"
	"pseudo-manager/core/graph"
	"pseudo-manager/core/storage/mocks"
	"pseudo-manager/feature/family"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupStore(t *testing.T) *graph.GormStore {
	t.Helper()

	db, err := database.Connect(database.Config{
		Driver: "sqlite",
		Name:   ":memory:",
	})
	require.NoError(t, err)

	store := graph.NewGormStore(db)
	require.NoError(t, store.Migrate())
	return store
}

func objectChannel(infos ...minio.ObjectInfo) <-chan minio.ObjectInfo {
	ch := make(chan minio.ObjectInfo, len(infos))
	for _, info := range infos {
		ch <- info
	}
	close(ch)
	return ch
}

func TestRepositoryStoreFamilyAndGet(t *testing.T) {
	ctx := context.Background()
	repo := family.NewRepository(setupStore(t), new(mocks.Client), "pseudos", zap.NewNop())

	info, err := repo.GetFamily(ctx, "missing")
	require.NoError(t, err)
	assert.Nil(t, info)

	groupID, err := repo.StoreFamily(ctx, "SSSP/1.3/PBE", "efficiency set", "pseudo.upf")
	require.NoError(t, err)
	assert.NotEmpty(t, groupID)

	info, err = repo.GetFamily(ctx, "SSSP/1.3/PBE")
	require.NoError(t, err)
	require.NotNil(t, info)
	assert.Equal(t, groupID, info.GroupID)
	assert.Equal(t, "efficiency set", info.Description)
	assert.Equal(t, "pseudo.upf", info.Format)
}

func TestRepositoryListFamilies(t *testing.T) {
	ctx := context.Background()
	repo := family.NewRepository(setupStore(t), new(mocks.Client), "pseudos", zap.NewNop())

	_, err := repo.StoreFamily(ctx, "beta", "", "pseudo.upf")
	require.NoError(t, err)
	_, err = repo.StoreFamily(ctx, "alpha", "", "pseudo.psp8")
	require.NoError(t, err)

	infos, err := repo.ListFamilies(ctx)
	require.NoError(t, err)
	require.Len(t, infos, 2)
	assert.Equal(t, "alpha", infos[0].Label)
	assert.Equal(t, "beta", infos[1].Label)
}

func TestRepositoryStoreRecord(t *testing.T) {
	ctx := context.Background()
	store := setupStore(t)
	mockClient := new(mocks.Client)
	repo := family.NewRepository(store, mockClient, "pseudos", zap.NewNop())

	mockClient.On("PutObject", mock.Anything, "pseudos",
		mock.MatchedBy(func(key string) bool {
			return strings.HasPrefix(key, "nodes/") && strings.HasSuffix(key, "/Fe.upf")
		}),
		mock.Anything, mock.Anything, mock.Anything,
	).Return(minio.UploadInfo{}, nil)

	groupID, err := repo.StoreFamily(ctx, "store-record", "", "pseudo.upf")
	require.NoError(t, err)

	record := upfRecord("Fe")
	require.NoError(t, repo.StoreRecord(ctx, groupID, record))

	assert.True(t, record.Stored())
	assert.Equal(t, record.Checksum(), record.MD5)
	assert.Equal(t, int64(len(record.Content)), record.Size)

	records, err := repo.ListRecords(ctx, groupID)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, record.NodeID, records[0].NodeID)
	assert.Equal(t, "Fe", records[0].Element)
	assert.Nil(t, records[0].Content, "hydrated records carry no content")

	mockClient.AssertExpectations(t)
}

func TestRepositoryQueryElementScopedToGroup(t *testing.T) {
	ctx := context.Background()
	mockClient := new(mocks.Client)
	mockClient.On("PutObject", mock.Anything, "pseudos", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(minio.UploadInfo{}, nil)
	repo := family.NewRepository(setupStore(t), mockClient, "pseudos", zap.NewNop())

	groupA, err := repo.StoreFamily(ctx, "family-a", "", "pseudo.upf")
	require.NoError(t, err)
	groupB, err := repo.StoreFamily(ctx, "family-b", "", "pseudo.upf")
	require.NoError(t, err)

	feA := upfRecord("Fe")
	require.NoError(t, repo.StoreRecord(ctx, groupA, feA))
	feB := upfRecord("Fe")
	require.NoError(t, repo.StoreRecord(ctx, groupB, feB))

	matches, err := repo.QueryElement(ctx, groupA, "Fe")
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, feA.NodeID, matches[0].NodeID)

	matches, err = repo.QueryElement(ctx, groupA, "Si")
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestRepositoryFetchContent(t *testing.T) {
	ctx := context.Background()
	mockClient := new(mocks.Client)
	repo := family.NewRepository(setupStore(t), mockClient, "pseudos", zap.NewNop())

	// Unstored records still hold their content in memory.
	record := upfRecord("Fe")
	content, err := repo.FetchContent(ctx, record)
	require.NoError(t, err)
	assert.Equal(t, record.Content, content)

	// Stored records read from object storage.
	record.NodeID = "0c9a44f1-0000-1111-2222-333344445555"
	mockClient.On("GetObject", mock.Anything, "pseudos", "nodes/"+record.NodeID+"/Fe.upf", mock.Anything).
		Return(io.NopCloser(bytes.NewReader([]byte("stored content"))), nil)

	content, err = repo.FetchContent(ctx, record)
	require.NoError(t, err)
	assert.Equal(t, []byte("stored content"), content)
	mockClient.AssertExpectations(t)
}

func TestRepositoryOrphanedObjects(t *testing.T) {
	ctx := context.Background()
	store := setupStore(t)
	mockClient := new(mocks.Client)
	repo := family.NewRepository(store, mockClient, "pseudos", zap.NewNop())

	mockClient.On("PutObject", mock.Anything, "pseudos", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(minio.UploadInfo{}, nil)

	groupID, err := repo.StoreFamily(ctx, "orphans", "", "pseudo.upf")
	require.NoError(t, err)
	record := upfRecord("Fe")
	require.NoError(t, repo.StoreRecord(ctx, groupID, record))

	mockClient.On("ListObjects", mock.Anything, "pseudos", mock.Anything).
		Return(objectChannel(
			minio.ObjectInfo{Key: "nodes/" + record.NodeID + "/Fe.upf"},
			minio.ObjectInfo{Key: "nodes/deadbeef-0000-1111-2222-333344445555/O.upf"},
			minio.ObjectInfo{Key: "nodes/stray-file"},
		))

	orphans, err := repo.OrphanedObjects(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"nodes/deadbeef-0000-1111-2222-333344445555/O.upf",
		"nodes/stray-file",
	}, orphans)
}

func TestRepositoryRemoveObject(t *testing.T) {
	mockClient := new(mocks.Client)
	mockClient.On("RemoveObject", mock.Anything, "pseudos", "nodes/x/Fe.upf", mock.Anything).Return(nil)
	repo := family.NewRepository(setupStore(t), mockClient, "pseudos", zap.NewNop())

	require.NoError(t, repo.RemoveObject(context.Background(), "nodes/x/Fe.upf"))
	mockClient.AssertExpectations(t)
}
