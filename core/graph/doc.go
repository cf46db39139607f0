// Package graph provides the graph-shaped persistence layer: data nodes and
// named groups connected by membership edges, backed by a relational
// database through GORM.
//
// The family feature consumes this package through the Store interface. The
// schema is deliberately narrow: a node carries only the attributes the
// family queries need (type, element, filename, checksum); the raw file
// content lives in object storage keyed by node ID.
package graph
