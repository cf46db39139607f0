package family

import (
	"context"
	"fmt"

	"pseudo-manager/feature/family/models"
	"pseudo-manager/feature/family/parse"
)

// Definition describes a family to be created: its unique label, an optional
// free-text description and the record format it accepts.
type Definition struct {
	Label       string
	Description string
	Format      string
}

// Family is a named, persisted collection of pseudo potential records with
// at most one record per chemical element.
//
// A Family instance owns its element index and assumes single-writer access;
// sharing one instance across goroutines is unsupported.
type Family struct {
	backend     Backend
	label       string
	description string
	format      string

	// groupID is the durable identity assigned by the store; empty while
	// the family is unstored.
	groupID string

	// idx is nil until the first access that needs it, then it is rebuilt
	// from a full record scan and only grows from there.
	idx *elementIndex
}

// New constructs an unstored family. The format defaults to pseudo.upf.
func New(backend Backend, def Definition) *Family {
	format := def.Format
	if format == "" {
		format = models.FormatUPF
	}
	return &Family{
		backend:     backend,
		label:       def.Label,
		description: def.Description,
		format:      format,
	}
}

// Load returns the stored family with the given label.
func Load(ctx context.Context, backend Backend, label string) (*Family, error) {
	info, err := backend.GetFamily(ctx, label)
	if err != nil {
		return nil, err
	}
	if info == nil {
		return nil, fmt.Errorf("%w: family %q does not exist", ErrInvalidInput, label)
	}
	return &Family{
		backend:     backend,
		label:       info.Label,
		description: info.Description,
		format:      info.Format,
		groupID:     info.GroupID,
	}, nil
}

// CreateFromDirectory creates a new family from the pseudo potential files
// contained in a directory.
//
// Parsing and validation happen entirely in memory first; the family and its
// records are only made durable after the whole set is known to be valid, so
// a parse failure never leaves a partially populated family behind.
func CreateFromDirectory(ctx context.Context, backend Backend, def Definition, dirpath string) (*Family, error) {
	existing, err := backend.GetFamily(ctx, def.Label)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: family %q", ErrAlreadyExists, def.Label)
	}

	f := New(backend, def)

	constructor, err := parse.Get(f.format)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	records, err := ParseRecordsFromDirectory(dirpath, constructor)
	if err != nil {
		return nil, err
	}

	if err := f.Store(ctx); err != nil {
		return nil, err
	}
	if err := f.AddRecords(ctx, records...); err != nil {
		return nil, err
	}

	return f, nil
}

// Label returns the unique label of the family.
func (f *Family) Label() string { return f.label }

// Description returns the free-text description of the family.
func (f *Family) Description() string { return f.description }

// Format returns the record format tag this family accepts.
func (f *Family) Format() string { return f.format }

// Stored reports whether the family has been made durable.
func (f *Family) Stored() bool { return f.groupID != "" }

// GroupID returns the durable group identity, empty while unstored.
func (f *Family) GroupID() string { return f.groupID }

// Store makes the family durable. Storing an already stored family is a
// no-op.
func (f *Family) Store(ctx context.Context) error {
	if f.Stored() {
		return nil
	}
	groupID, err := f.backend.StoreFamily(ctx, f.label, f.description, f.format)
	if err != nil {
		return err
	}
	f.groupID = groupID
	return nil
}

// AddRecords adds one or more records to the family.
//
// The family must be stored, every record must carry exactly the family's
// accepted format (registered subtypes are rejected) and no element may
// collide with an existing record or with another record in the same batch.
// The element index is only updated after all records persisted, so a
// storage failure never leaves phantom index entries.
func (f *Family) AddRecords(ctx context.Context, records ...*models.PseudoRecord) error {
	if !f.Stored() {
		return fmt.Errorf("%w: cannot add records to an unstored family", ErrNotAllowed)
	}

	for _, record := range records {
		if record.Format != f.format {
			return fmt.Errorf("%w: family %q only accepts records of format %q, got %q", ErrWrongType, f.label, f.format, record.Format)
		}
	}

	if err := f.ensureIndex(ctx); err != nil {
		return err
	}

	// Stage the batch so duplicates within it are caught as well.
	staged := make(map[string]*models.PseudoRecord, len(records))
	for _, record := range records {
		if f.idx.has(record.Element) {
			return fmt.Errorf("%w: element %q is already present in family %q", ErrInvalidInput, record.Element, f.label)
		}
		if _, ok := staged[record.Element]; ok {
			return fmt.Errorf("%w: element %q appears more than once in the batch", ErrInvalidInput, record.Element)
		}
		staged[record.Element] = record
	}

	for _, record := range records {
		if err := f.backend.StoreRecord(ctx, f.groupID, record); err != nil {
			return fmt.Errorf("storing record for element %q in family %q: %w", record.Element, f.label, err)
		}
	}

	f.idx.merge(staged)
	return nil
}

// GetPseudo returns the record for the given element.
//
// The element index is consulted first; on a miss the backing store is
// queried scoped to this family and the element. A single match is cached
// and returned, no match is an ErrInvalidInput, and more than one match
// means the store itself violates the one-record-per-element invariant and
// surfaces as ErrInconsistent.
func (f *Family) GetPseudo(ctx context.Context, element string) (*models.PseudoRecord, error) {
	if err := f.ensureIndex(ctx); err != nil {
		return nil, err
	}

	if record, ok := f.idx.get(element); ok {
		return record, nil
	}

	matches, err := f.backend.QueryElement(ctx, f.groupID, element)
	if err != nil {
		return nil, err
	}

	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("%w: family %q does not contain a pseudo potential for element %q", ErrInvalidInput, f.label, element)
	case 1:
		f.idx.put(matches[0])
		return matches[0], nil
	default:
		return nil, fmt.Errorf("%w: family %q contains %d pseudo potentials for element %q", ErrInconsistent, f.label, len(matches), element)
	}
}

// Elements returns the sorted element symbols the family defines a pseudo
// potential for, triggering a full index rebuild when the index has not
// been built for this instance yet.
func (f *Family) Elements(ctx context.Context) ([]string, error) {
	if err := f.ensureIndex(ctx); err != nil {
		return nil, err
	}
	return f.idx.elements(), nil
}

// RebuildIndex discards the element index and rebuilds it from a full scan
// of the backing store.
func (f *Family) RebuildIndex(ctx context.Context) error {
	f.idx = nil
	return f.ensureIndex(ctx)
}

func (f *Family) ensureIndex(ctx context.Context) error {
	if f.idx != nil {
		return nil
	}
	if !f.Stored() {
		f.idx = newElementIndex(nil)
		return nil
	}
	records, err := f.backend.ListRecords(ctx, f.groupID)
	if err != nil {
		return fmt.Errorf("rebuilding element index of family %q: %w", f.label, err)
	}
	f.idx = newElementIndex(records)
	return nil
}
