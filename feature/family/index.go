package family

import (
	"sort"

	"pseudo-manager/feature/family/models"
)

// elementIndex is the in-memory cache mapping element symbol to record.
//
// It is owned by a single Family instance and is purely a performance cache
// over the authoritative record set in the backing store: it can be rebuilt
// from scratch at any time and only ever grows, entries are never evicted.
type elementIndex struct {
	records map[string]*models.PseudoRecord
}

// newElementIndex builds an index from a full record scan.
func newElementIndex(records []*models.PseudoRecord) *elementIndex {
	idx := &elementIndex{records: make(map[string]*models.PseudoRecord, len(records))}
	for _, record := range records {
		idx.records[record.Element] = record
	}
	return idx
}

// get returns the cached record for the element, if any.
func (idx *elementIndex) get(element string) (*models.PseudoRecord, bool) {
	record, ok := idx.records[element]
	return record, ok
}

// has reports whether the element is present in the index.
func (idx *elementIndex) has(element string) bool {
	_, ok := idx.records[element]
	return ok
}

// put caches a single record under its element symbol.
func (idx *elementIndex) put(record *models.PseudoRecord) {
	idx.records[record.Element] = record
}

// merge adds a batch of records to the index.
func (idx *elementIndex) merge(batch map[string]*models.PseudoRecord) {
	for element, record := range batch {
		idx.records[element] = record
	}
}

// elements returns the sorted element symbols currently in the index.
func (idx *elementIndex) elements() []string {
	keys := make([]string, 0, len(idx.records))
	for element := range idx.records {
		keys = append(keys, element)
	}
	sort.Strings(keys)
	return keys
}
