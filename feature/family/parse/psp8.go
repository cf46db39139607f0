package parse

import (
	"bufio"
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"pseudo-manager/feature/family/models"
)

// PSP8 constructs a record from an ABINIT psp8 file. The second line of the
// header carries "zatom zion pspd"; the element is derived from zatom.
func PSP8(raw []byte, filename string) (*models.PseudoRecord, error) {
	scanner := bufio.NewScanner(bytes.NewReader(raw))

	// Line 1 is a free-form title.
	if !scanner.Scan() {
		return nil, fmt.Errorf("content of %q is empty", filename)
	}
	if !scanner.Scan() {
		return nil, fmt.Errorf("content of %q is missing the psp8 header line", filename)
	}

	fields := strings.Fields(scanner.Text())
	if len(fields) < 2 {
		return nil, fmt.Errorf("psp8 header of %q has %d fields, expected at least zatom and zion", filename, len(fields))
	}

	zatom, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return nil, fmt.Errorf("psp8 header of %q has non-numeric zatom %q", filename, fields[0])
	}

	element, ok := models.SymbolForZ(int(zatom))
	if !ok {
		return nil, fmt.Errorf("psp8 header of %q has out-of-range zatom %v", filename, zatom)
	}

	return &models.PseudoRecord{
		Format:   models.FormatPSP8,
		Element:  element,
		Filename: filename,
		Content:  raw,
		Size:     int64(len(raw)),
	}, nil
}
