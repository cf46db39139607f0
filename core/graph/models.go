package graph

import "time"

// Group represents a named collection of nodes, e.g. a pseudo potential
// family. Labels are unique across all groups.
type Group struct {
	ID          string    `gorm:"column:id;primaryKey;size:36"`
	Label       string    `gorm:"column:label;uniqueIndex;size:255"`
	Description string    `gorm:"column:description"`
	TypeString  string    `gorm:"column:type_string;index;size:255"`
	CreatedAt   time.Time `gorm:"column:created_at"`
}

// TableName overrides the table name for groups.
func (Group) TableName() string {
	return "node_groups"
}

// Node represents a single data node: one pseudo potential file. The raw
// content lives in object storage under the node's ID; the row only carries
// the queryable attributes.
type Node struct {
	ID         string    `gorm:"column:id;primaryKey;size:36"`
	TypeString string    `gorm:"column:type_string;index;size:255"`
	Element    string    `gorm:"column:element;index;size:2"`
	Filename   string    `gorm:"column:filename;size:255"`
	MD5        string    `gorm:"column:md5;size:32"`
	Size       int64     `gorm:"column:size"`
	CreatedAt  time.Time `gorm:"column:created_at"`
}

// TableName overrides the table name for nodes.
func (Node) TableName() string {
	return "nodes"
}

// GroupNode is a membership edge between a group and a node.
type GroupNode struct {
	GroupID string `gorm:"column:group_id;primaryKey;size:36"`
	NodeID  string `gorm:"column:node_id;primaryKey;size:36"`
}

// TableName overrides the table name for membership edges.
func (GroupNode) TableName() string {
	return "group_nodes"
}
