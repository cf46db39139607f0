package parse

import (
	"fmt"
	"sort"
	"sync"

	"pseudo-manager/feature/family/models"
)

// Constructor turns the raw bytes of a single file into a pseudo potential
// record, or fails when the content is not valid for its format.
//
// A constructor may leave the element unset; the directory builder then
// falls back to deriving it from the filename.
type Constructor func(raw []byte, filename string) (*models.PseudoRecord, error)

var (
	registryMu sync.RWMutex
	registry   = map[string]Constructor{}
)

func init() {
	Register(models.FormatPseudo, Generic)
	Register(models.FormatUPF, UPF)
	Register(models.FormatPSP8, PSP8)
}

// Register associates a constructor with a format tag. Registering twice for
// the same tag overwrites the previous constructor.
func Register(format string, c Constructor) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[format] = c
}

// Get returns the constructor registered for the format tag.
func Get(format string) (Constructor, error) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	c, ok := registry[format]
	if !ok {
		return nil, fmt.Errorf("no constructor registered for format %q", format)
	}
	return c, nil
}

// Formats returns the sorted list of format tags with a registered constructor.
func Formats() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	tags := make([]string, 0, len(registry))
	for tag := range registry {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}
