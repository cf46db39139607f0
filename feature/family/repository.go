package family

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"pseudo-manager/core/graph"
	"pseudo-manager/core/storage"
	"pseudo-manager/feature/family/models"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// contentPrefix is the object storage prefix under which node content lives.
const contentPrefix = "nodes"

// Repository implements Backend on the graph store plus object storage:
// node rows and membership edges in the database, raw file content in the
// bucket keyed by node ID.
type Repository struct {
	store  graph.Store
	client storage.Client
	bucket string
	logger *zap.Logger
}

// NewRepository creates a repository over the given store and storage client.
func NewRepository(store graph.Store, client storage.Client, bucket string, logger *zap.Logger) *Repository {
	return &Repository{
		store:  store,
		client: client,
		bucket: bucket,
		logger: logger,
	}
}

// GetFamily returns the stored family with the given label, or nil.
func (r *Repository) GetFamily(ctx context.Context, label string) (*Info, error) {
	group, err := r.store.GetGroup(ctx, label)
	if err != nil {
		return nil, err
	}
	if group == nil {
		return nil, nil
	}
	return &Info{
		GroupID:     group.ID,
		Label:       group.Label,
		Description: group.Description,
		Format:      group.TypeString,
	}, nil
}

// ListFamilies returns all stored families ordered by label.
func (r *Repository) ListFamilies(ctx context.Context) ([]Info, error) {
	groups, err := r.store.ListGroups(ctx)
	if err != nil {
		return nil, err
	}
	infos := make([]Info, 0, len(groups))
	for _, group := range groups {
		infos = append(infos, Info{
			GroupID:     group.ID,
			Label:       group.Label,
			Description: group.Description,
			Format:      group.TypeString,
		})
	}
	return infos, nil
}

// StoreFamily makes a family durable and returns its group identity.
func (r *Repository) StoreFamily(ctx context.Context, label, description, format string) (string, error) {
	group := &graph.Group{
		ID:          uuid.NewString(),
		Label:       label,
		Description: description,
		TypeString:  format,
	}
	if err := r.store.CreateGroup(ctx, group); err != nil {
		return "", err
	}
	r.logger.Info("Stored family", zap.String("label", label), zap.String("group_id", group.ID))
	return group.ID, nil
}

// StoreRecord uploads the record content to object storage and persists the
// node row and membership edge, assigning the record its node identity.
//
// The blob goes first: an upload failure leaves no database state behind,
// while a dangling blob without a node row is harmless and picked up by the
// orphan scan.
func (r *Repository) StoreRecord(ctx context.Context, groupID string, record *models.PseudoRecord) error {
	node := &graph.Node{
		ID:         uuid.NewString(),
		TypeString: record.Format,
		Element:    record.Element,
		Filename:   record.Filename,
		MD5:        record.Checksum(),
		Size:       int64(len(record.Content)),
	}

	key := contentKey(node.ID, record.Filename)
	reader := strings.NewReader(string(record.Content))
	if _, err := r.client.PutObject(ctx, r.bucket, key, reader, int64(len(record.Content)), minio.PutObjectOptions{}); err != nil {
		return fmt.Errorf("uploading content for element %q: %w", record.Element, err)
	}

	if err := r.store.CreateNode(ctx, node); err != nil {
		return err
	}
	if err := r.store.AddMember(ctx, groupID, node.ID); err != nil {
		return err
	}

	record.NodeID = node.ID
	record.MD5 = node.MD5
	record.Size = node.Size
	return nil
}

// QueryElement returns the records of the group matching the element.
func (r *Repository) QueryElement(ctx context.Context, groupID, element string) ([]*models.PseudoRecord, error) {
	nodes, err := r.store.NodesByElement(ctx, groupID, element)
	if err != nil {
		return nil, err
	}
	return hydrate(nodes), nil
}

// ListRecords returns all records contained in the group.
func (r *Repository) ListRecords(ctx context.Context, groupID string) ([]*models.PseudoRecord, error) {
	nodes, err := r.store.GroupNodes(ctx, groupID)
	if err != nil {
		return nil, err
	}
	return hydrate(nodes), nil
}

// FetchContent reads the raw file content of a stored record from object
// storage.
func (r *Repository) FetchContent(ctx context.Context, record *models.PseudoRecord) ([]byte, error) {
	if !record.Stored() {
		return record.Content, nil
	}
	obj, err := r.client.GetObject(ctx, r.bucket, contentKey(record.NodeID, record.Filename), minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("fetching content of node %q: %w", record.NodeID, err)
	}
	defer obj.Close()

	content, err := io.ReadAll(obj)
	if err != nil {
		return nil, fmt.Errorf("reading content of node %q: %w", record.NodeID, err)
	}
	return content, nil
}

// OrphanedObjects lists objects under the content prefix that have no
// corresponding node row.
func (r *Repository) OrphanedObjects(ctx context.Context) ([]string, error) {
	var orphans []string

	objects := r.client.ListObjects(ctx, r.bucket, minio.ListObjectsOptions{
		Prefix:    contentPrefix + "/",
		Recursive: true,
	})
	for object := range objects {
		if object.Err != nil {
			return nil, fmt.Errorf("listing objects: %w", object.Err)
		}
		nodeID := nodeIDFromKey(object.Key)
		if nodeID == "" {
			orphans = append(orphans, object.Key)
			continue
		}
		exists, err := r.store.NodeExists(ctx, nodeID)
		if err != nil {
			return nil, err
		}
		if !exists {
			orphans = append(orphans, object.Key)
		}
	}
	return orphans, nil
}

// RemoveObject deletes a single object from the bucket. Used by the verify
// command to purge orphans.
func (r *Repository) RemoveObject(ctx context.Context, key string) error {
	if err := r.client.RemoveObject(ctx, r.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("removing object %q: %w", key, err)
	}
	return nil
}

func hydrate(nodes []graph.Node) []*models.PseudoRecord {
	records := make([]*models.PseudoRecord, 0, len(nodes))
	for _, node := range nodes {
		records = append(records, &models.PseudoRecord{
			Format:   node.TypeString,
			Element:  node.Element,
			Filename: node.Filename,
			MD5:      node.MD5,
			Size:     node.Size,
			NodeID:   node.ID,
		})
	}
	return records
}

func contentKey(nodeID, filename string) string {
	return path.Join(contentPrefix, nodeID, filename)
}

// nodeIDFromKey extracts the node ID from a content object key of the form
// nodes/<id>/<filename>.
func nodeIDFromKey(key string) string {
	parts := strings.Split(key, "/")
	if len(parts) < 3 || parts[0] != contentPrefix {
		return ""
	}
	return parts[1]
}
