package parse

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"pseudo-manager/feature/family/models"
)

var (
	// UPF v2 header attribute, e.g. element="Fe". Real files sometimes pad
	// the symbol with spaces inside the quotes.
	upfElementAttr = regexp.MustCompile(`element\s*=\s*"\s*([A-Za-z]{1,2})\s*"`)

	// UPF v1 header line, e.g. "  Fe   Element".
	upfElementLine = regexp.MustCompile(`(?m)^\s*([A-Za-z]{1,2})\s+Element`)
)

// UPF constructs a record from a UPF (Unified Pseudopotential Format) file.
// Both the v2 XML-like format and the old v1 header format are recognised.
func UPF(raw []byte, filename string) (*models.PseudoRecord, error) {
	if !bytes.Contains(raw, []byte("<PP_HEADER")) && !bytes.Contains(raw, []byte("<UPF")) {
		return nil, fmt.Errorf("content of %q is missing a UPF header", filename)
	}

	element := ""
	if m := upfElementAttr.FindSubmatch(raw); m != nil {
		element = strings.TrimSpace(string(m[1]))
	} else if m := upfElementLine.FindSubmatch(raw); m != nil {
		element = string(m[1])
	}

	if element != "" && !models.IsValidElement(element) {
		return nil, fmt.Errorf("UPF header of %q declares unknown element %q", filename, element)
	}

	return &models.PseudoRecord{
		Format:   models.FormatUPF,
		Element:  element,
		Filename: filename,
		Content:  raw,
		Size:     int64(len(raw)),
	}, nil
}
