package models

import (
	"sort"
	"sync"
)

// Built-in record format tags. Formats are hierarchical: "pseudo.upf" is
// registered as a child of "pseudo". The hierarchy only matters for IsA;
// family membership is decided by exact tag equality.
const (
	FormatPseudo = "pseudo"
	FormatUPF    = "pseudo.upf"
	FormatPSP8   = "pseudo.psp8"
)

var (
	formatsMu sync.RWMutex
	// parent tag per registered format; the root format maps to "".
	formatParents = map[string]string{
		FormatPseudo: "",
		FormatUPF:    FormatPseudo,
		FormatPSP8:   FormatPseudo,
	}
)

// RegisterFormat adds a format tag to the registry with the given parent.
// Re-registering an existing format overwrites its parent link.
func RegisterFormat(format, parent string) {
	formatsMu.Lock()
	defer formatsMu.Unlock()
	formatParents[format] = parent
}

// KnownFormat reports whether the format tag is registered.
func KnownFormat(format string) bool {
	formatsMu.RLock()
	defer formatsMu.RUnlock()
	_, ok := formatParents[format]
	return ok
}

// IsA reports whether format equals target or descends from it through the
// parent chain. This is the assignability check that family AddRecords
// deliberately does NOT use: a family accepts its exact format only.
func IsA(format, target string) bool {
	formatsMu.RLock()
	defer formatsMu.RUnlock()

	for format != "" {
		if format == target {
			return true
		}
		format = formatParents[format]
	}
	return false
}

// Formats returns the sorted list of registered format tags.
func Formats() []string {
	formatsMu.RLock()
	defer formatsMu.RUnlock()

	tags := make([]string, 0, len(formatParents))
	for tag := range formatParents {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}
