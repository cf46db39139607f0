package parse_test

import (
	"testing"

	"pseudo-manager/feature/family/models"
	"pseudo-manager/feature/family/parse"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUPFVersionTwo(t *testing.T) {
	raw := []byte(`<UPF version="2.0.1">
  <PP_HEADER
    element="Fe"
    pseudo_type="NC"/>
</UPF>
`)

	record, err := parse.UPF(raw, "Fe.upf")
	require.NoError(t, err)
	assert.Equal(t, models.FormatUPF, record.Format)
	assert.Equal(t, "Fe", record.Element)
	assert.Equal(t, "Fe.upf", record.Filename)
	assert.Equal(t, int64(len(raw)), record.Size)
}

func TestUPFPaddedElementAttribute(t *testing.T) {
	// Some generators pad the symbol inside the quotes.
	raw := []byte(`<PP_HEADER element=" O " pseudo_type="US"/>`)

	record, err := parse.UPF(raw, "O.upf")
	require.NoError(t, err)
	assert.Equal(t, "O", record.Element)
}

func TestUPFVersionOneHeader(t *testing.T) {
	raw := []byte(`<PP_HEADER>
   0                   Version Number
  Si                   Element
   NC                  Norm - Conserving pseudopotential
</PP_HEADER>
`)

	record, err := parse.UPF(raw, "Si.upf")
	require.NoError(t, err)
	assert.Equal(t, "Si", record.Element)
}

func TestUPFWithoutElementLeavesItUnset(t *testing.T) {
	raw := []byte(`<UPF version="2.0.1"><PP_MESH/></UPF>`)

	record, err := parse.UPF(raw, "Cu.upf")
	require.NoError(t, err)
	assert.Empty(t, record.Element)
}

func TestUPFMissingHeader(t *testing.T) {
	_, err := parse.UPF([]byte("plain text, no markers"), "Fe.upf")
	require.Error(t, err)
}

func TestUPFUnknownElement(t *testing.T) {
	raw := []byte(`<PP_HEADER element="Qq"/>`)
	_, err := parse.UPF(raw, "Qq.upf")
	require.Error(t, err)
}
