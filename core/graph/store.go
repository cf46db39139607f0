package graph

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// Store is the graph persistence primitive: durable groups and nodes linked
// by membership edges, plus the one query the family feature needs, scoped
// to a group and an element value.
type Store interface {
	// GetGroup returns the group with the given label, or nil when absent.
	GetGroup(ctx context.Context, label string) (*Group, error)
	// ListGroups returns all groups ordered by label.
	ListGroups(ctx context.Context) ([]Group, error)
	// CreateGroup makes a group durable. The label must be unique.
	CreateGroup(ctx context.Context, group *Group) error
	// CreateNode makes a node durable.
	CreateNode(ctx context.Context, node *Node) error
	// AddMember adds a membership edge between a group and a node.
	AddMember(ctx context.Context, groupID, nodeID string) error
	// GroupNodes returns all nodes that are members of the group.
	GroupNodes(ctx context.Context, groupID string) ([]Node, error)
	// NodesByElement returns the member nodes of the group matching the
	// element. Zero, one or many rows are all valid results.
	NodesByElement(ctx context.Context, groupID, element string) ([]Node, error)
	// NodeExists reports whether a node row exists.
	NodeExists(ctx context.Context, nodeID string) (bool, error)
}

// GormStore implements Store on a gorm connection (MySQL in production,
// SQLite in tests).
type GormStore struct {
	db *gorm.DB
}

// NewGormStore wraps a database connection in a Store.
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// Migrate creates or updates the graph tables.
func (s *GormStore) Migrate() error {
	return s.db.AutoMigrate(&Group{}, &Node{}, &GroupNode{})
}

// GetGroup returns the group with the given label, or nil when absent.
func (s *GormStore) GetGroup(ctx context.Context, label string) (*Group, error) {
	var group Group
	err := s.db.WithContext(ctx).Where("label = ?", label).First(&group).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("fetching group %q: %w", label, err)
	}
	return &group, nil
}

// ListGroups returns all groups ordered by label.
func (s *GormStore) ListGroups(ctx context.Context) ([]Group, error) {
	var groups []Group
	if err := s.db.WithContext(ctx).Order("label").Find(&groups).Error; err != nil {
		return nil, fmt.Errorf("listing groups: %w", err)
	}
	return groups, nil
}

// CreateGroup makes a group durable.
func (s *GormStore) CreateGroup(ctx context.Context, group *Group) error {
	if err := s.db.WithContext(ctx).Create(group).Error; err != nil {
		return fmt.Errorf("creating group %q: %w", group.Label, err)
	}
	return nil
}

// CreateNode makes a node durable.
func (s *GormStore) CreateNode(ctx context.Context, node *Node) error {
	if err := s.db.WithContext(ctx).Create(node).Error; err != nil {
		return fmt.Errorf("creating node %q: %w", node.ID, err)
	}
	return nil
}

// AddMember adds a membership edge between a group and a node.
func (s *GormStore) AddMember(ctx context.Context, groupID, nodeID string) error {
	edge := GroupNode{GroupID: groupID, NodeID: nodeID}
	if err := s.db.WithContext(ctx).Create(&edge).Error; err != nil {
		return fmt.Errorf("adding node %q to group %q: %w", nodeID, groupID, err)
	}
	return nil
}

// GroupNodes returns all nodes that are members of the group.
func (s *GormStore) GroupNodes(ctx context.Context, groupID string) ([]Node, error) {
	var nodes []Node
	err := s.db.WithContext(ctx).
		Joins("JOIN group_nodes ON group_nodes.node_id = nodes.id").
		Where("group_nodes.group_id = ?", groupID).
		Find(&nodes).Error
	if err != nil {
		return nil, fmt.Errorf("listing nodes of group %q: %w", groupID, err)
	}
	return nodes, nil
}

// NodesByElement returns the member nodes of the group matching the element.
func (s *GormStore) NodesByElement(ctx context.Context, groupID, element string) ([]Node, error) {
	var nodes []Node
	err := s.db.WithContext(ctx).
		Joins("JOIN group_nodes ON group_nodes.node_id = nodes.id").
		Where("group_nodes.group_id = ? AND nodes.element = ?", groupID, element).
		Find(&nodes).Error
	if err != nil {
		return nil, fmt.Errorf("querying element %q in group %q: %w", element, groupID, err)
	}
	return nodes, nil
}

// NodeExists reports whether a node row exists.
func (s *GormStore) NodeExists(ctx context.Context, nodeID string) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&Node{}).Where("id = ?", nodeID).Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("checking node %q: %w", nodeID, err)
	}
	return count > 0, nil
}
