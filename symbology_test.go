package barcodego

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSymbology(t *testing.T) {
	tests := []struct {
		name string
		want Symbology
	}{
		{"CODE_128", Code128},
		{"code128", Code128},
		{"Code-128 A", Code128A},
		{"ucc_ean_128", UCCEAN128},
		{"gs1-128", EAN128},
		{"NW7", Codabar},
		{"monarch", Codabar},
		{"itf14", Int2of5},
		{"Code 93", Code93},
		{"upc", UPCA},
		{"pdf417", PDF417},
		{"PDF", PDF417},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseSymbology(tc.name)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	_, err := ParseSymbology("aztec")
	assert.Error(t, err)
}

func TestSymbologyNames(t *testing.T) {
	all := Symbologies()
	require.Len(t, all, int(PDF417)+1)
	for i, s := range all {
		assert.Equal(t, Symbology(i), s)
		back, err := ParseSymbology(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, back)
	}
	assert.Equal(t, "UNKNOWN", Symbology(-1).String())
}

func TestIs2D(t *testing.T) {
	for _, s := range Symbologies() {
		assert.Equal(t, s == PDF417, s.Is2D(), s.String())
	}
}
