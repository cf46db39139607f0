package parse

import (
	"fmt"

	"pseudo-manager/feature/family/models"
)

// Generic constructs a record from any non-empty file without inspecting its
// content. The element is left unset, so families built with this
// constructor rely entirely on the ELEMENT.EXTENSION filename convention.
func Generic(raw []byte, filename string) (*models.PseudoRecord, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("content of %q is empty", filename)
	}

	return &models.PseudoRecord{
		Format:   models.FormatPseudo,
		Filename: filename,
		Content:  raw,
		Size:     int64(len(raw)),
	}, nil
}
