// Package models defines the data types of the family feature.
//
// PseudoRecord is the in-memory representation of a single pseudo potential
// file: its format tag, element symbol, filename, raw content and, once
// stored, the node identity assigned by the graph store.
//
// The package also holds the format tag registry (formats.go) and the
// periodic table used to validate element symbols (elements.go).
package models
