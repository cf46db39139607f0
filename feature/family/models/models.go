package models

import (
	"crypto/md5"
	"encoding/hex"
)

// PseudoRecord represents a single pseudo potential file parsed from disk.
//
// A record is unstored until the persistence layer assigns it a node ID.
// Before that point its identity is the Go pointer; afterwards the node ID
// is stable and queryable.
type PseudoRecord struct {
	// Format is the record type tag (e.g. "pseudo.upf"). Families accept
	// exactly one format; see formats.go for the registry.
	Format string `json:"format"`

	// Element is the chemical symbol this potential describes. It may be
	// left empty by a constructor, in which case the directory builder
	// derives it from the filename.
	Element string `json:"element"`

	// Filename is the original name of the file the record was parsed from.
	Filename string `json:"filename"`

	// Content is the raw file content. It is nil for records hydrated from
	// the persistence layer; fetch it through the repository when needed.
	Content []byte `json:"-"`

	// MD5 is the hex checksum of Content, computed when the record is stored.
	MD5 string `json:"md5,omitempty"`

	// Size is the content size in bytes.
	Size int64 `json:"size"`

	// NodeID is the durable identity assigned by the graph store.
	// Empty means the record has not been stored yet.
	NodeID string `json:"node_id,omitempty"`
}

// Stored reports whether the record has been made durable.
func (r *PseudoRecord) Stored() bool {
	return r.NodeID != ""
}

// Checksum returns the hex MD5 of the record content.
func (r *PseudoRecord) Checksum() string {
	sum := md5.Sum(r.Content)
	return hex.EncodeToString(sum[:])
}

// FamilyDetail is the summary view of a stored family.
type FamilyDetail struct {
	Label       string   `json:"label"`
	Description string   `json:"description,omitempty"`
	Format      string   `json:"format"`
	Elements    []string `json:"elements"`
	RecordCount int      `json:"record_count"`
}

// VerifyReport contains the results of a family content verification.
//
// It reconciles the family's node rows in the database against the blobs in
// object storage: every record must have a readable blob whose checksum
// matches the one recorded at store time.
type VerifyReport struct {
	Label           string   `json:"label"`
	TotalRecords    int      `json:"total_records"`
	VerifiedRecords int      `json:"verified_records"`
	MissingContent  []string `json:"missing_content,omitempty"`
	ChecksumErrors  []string `json:"checksum_errors,omitempty"`
	GeneratedAt     string   `json:"generated_at"`
	ExecutionTime   string   `json:"execution_time"`
}

// Clean reports whether the verification found no problems.
func (r *VerifyReport) Clean() bool {
	return len(r.MissingContent) == 0 && len(r.ChecksumErrors) == 0
}
