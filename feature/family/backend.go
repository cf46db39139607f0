package family

import (
	"context"

	"pseudo-manager/feature/family/models"
)

// Info describes a stored family as known to the persistence layer.
type Info struct {
	GroupID     string `json:"-"`
	Label       string `json:"label"`
	Description string `json:"description,omitempty"`
	Format      string `json:"format"`
}

// Backend is the narrow port to the persistence and query layer.
//
// The production implementation is Repository (graph store plus object
// storage); tests swap in an in-memory fake to exercise the lookup miss and
// corruption paths without a real store.
type Backend interface {
	// GetFamily returns the stored family with the given label, or nil when
	// no such family exists.
	GetFamily(ctx context.Context, label string) (*Info, error)

	// StoreFamily makes a family durable and returns its group identity.
	StoreFamily(ctx context.Context, label, description, format string) (string, error)

	// StoreRecord makes a single record durable as a member of the group,
	// assigning its node identity.
	StoreRecord(ctx context.Context, groupID string, record *models.PseudoRecord) error

	// QueryElement returns the records of the group matching the element.
	// Zero, one or many results are all valid outcomes; the caller decides
	// what they mean.
	QueryElement(ctx context.Context, groupID, element string) ([]*models.PseudoRecord, error)

	// ListRecords returns all records contained in the group.
	ListRecords(ctx context.Context, groupID string) ([]*models.PseudoRecord, error)
}
