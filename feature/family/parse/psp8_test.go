package parse_test

import (
	"testing"

	"pseudo-manager/feature/family/models"
	"pseudo-manager/feature/family/parse"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPSP8(t *testing.T) {
	raw := []byte(`Fe    ONCVPSP-3.3.0  r_core=   1.26  1.20
   26.0000     16.0000      180112    zatom,zion,pspd
     8     11     2     4   600     0    pspcod,pspxc,lmax,lloc,mmax,r2well
`)

	record, err := parse.PSP8(raw, "Fe.psp8")
	require.NoError(t, err)
	assert.Equal(t, models.FormatPSP8, record.Format)
	assert.Equal(t, "Fe", record.Element)
	assert.Equal(t, "Fe.psp8", record.Filename)
}

func TestPSP8FractionalZatom(t *testing.T) {
	raw := []byte(`Si    ONCVPSP
   14.00      4.00      170101    zatom,zion,pspd
`)

	record, err := parse.PSP8(raw, "Si.psp8")
	require.NoError(t, err)
	assert.Equal(t, "Si", record.Element)
}

func TestPSP8Invalid(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"empty", ""},
		{"title only", "Fe ONCVPSP"},
		{"short header", "Fe ONCVPSP\nonlyonefield"},
		{"non numeric zatom", "Fe ONCVPSP\nabc 16.0 180112"},
		{"zatom out of range", "Xx ONCVPSP\n300.0 16.0 180112"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := parse.PSP8([]byte(tc.raw), "test.psp8")
			require.Error(t, err)
		})
	}
}
