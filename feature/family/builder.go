package family

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"

	"pseudo-manager/feature/family/models"
	"pseudo-manager/feature/family/parse"
)

// elementFromFilename matches the ELEMENT.EXTENSION naming convention,
// e.g. "Fe.upf" or "O.psp8".
var elementFromFilename = regexp.MustCompile(`^([A-Za-z]{1,2})\.\w+`)

// ParseRecordsFromDirectory parses every file in dirpath into a record using
// the given constructor.
//
// The directory must contain regular files only. Records whose constructor
// leaves the element unset get it derived from the filename. The produced
// set must be non-empty and contain at most one record per element.
//
// The operation has no side effects: nothing is persisted, so a failure
// leaves no state to clean up. Result order follows the platform directory
// listing and is not guaranteed to be alphabetical.
func ParseRecordsFromDirectory(dirpath string, constructor parse.Constructor) ([]*models.PseudoRecord, error) {
	info, err := os.Stat(dirpath)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %q is not a directory", ErrInvalidInput, dirpath)
	}

	entries, err := os.ReadDir(dirpath)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %q: %v", ErrInvalidInput, dirpath, err)
	}

	var records []*models.PseudoRecord

	for _, entry := range entries {
		path := filepath.Join(dirpath, entry.Name())

		stat, err := os.Stat(path)
		if err != nil || !stat.Mode().IsRegular() {
			return nil, fmt.Errorf("%w: %q contains at least one entry that is not a file: %q", ErrInvalidInput, dirpath, entry.Name())
		}

		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("%w: reading %q: %v", ErrParsing, path, err)
		}

		record, err := constructor(raw, entry.Name())
		if err != nil {
			return nil, fmt.Errorf("%w: failed to parse %q: %v", ErrParsing, path, err)
		}

		if record.Element == "" {
			match := elementFromFilename.FindStringSubmatch(entry.Name())
			if match == nil {
				return nil, fmt.Errorf(
					"%w: constructor did not define the element and filename %q does not follow the ELEMENT.EXTENSION convention",
					ErrParsing, entry.Name(),
				)
			}
			record.Element = match[1]
		}

		records = append(records, record)
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("%w: no pseudo potentials were parsed from %q", ErrInvalidInput, dirpath)
	}

	if dupes := duplicateElements(records); len(dupes) > 0 {
		return nil, fmt.Errorf("%w: %q contains multiple pseudo potentials for the elements %v", ErrInvalidInput, dirpath, dupes)
	}

	return records, nil
}

// duplicateElements returns the sorted element symbols that occur more than
// once across the records.
func duplicateElements(records []*models.PseudoRecord) []string {
	counts := make(map[string]int, len(records))
	for _, record := range records {
		counts[record.Element]++
	}

	var dupes []string
	for element, n := range counts {
		if n > 1 {
			dupes = append(dupes, element)
		}
	}
	sort.Strings(dupes)
	return dupes
}
