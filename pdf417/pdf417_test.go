package pdf417

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ericlevine/barcodego"
	"github.com/ericlevine/barcodego/module"
	"github.com/ericlevine/barcodego/pdf417/encoder"
)

func TestPDF417(t *testing.T) {
	p, err := NewPDF417("Hello, World!", nil)
	require.NoError(t, err)
	assert.Equal(t, barcodego.PDF417, p.Symbology())
	assert.Equal(t, encoder.DefaultColumns, p.Columns())
	assert.Equal(t, 3, p.Rows())
	assert.Len(t, p.Codewords(), 3*encoder.DefaultColumns)
	assert.Nil(t, p.Checksum())

	mods := p.EncodeData()
	require.Len(t, mods, 1)
	m, ok := mods[0].(*module.Matrix)
	require.True(t, ok)
	assert.Equal(t, 3, m.Rows())
	assert.Equal(t, (encoder.DefaultColumns+4)*17+1, m.WidthInBars())
}

func TestPDF417Options(t *testing.T) {
	opts := &barcodego.EncodeOptions{
		PDF417Columns:         4,
		PDF417ErrorCorrection: 3,
		PDF417Compaction:      barcodego.CompactionAuto,
	}
	p, err := NewPDF417("Test with options", opts)
	require.NoError(t, err)
	assert.Equal(t, 4, p.Columns())
	cws := p.Codewords()
	assert.Len(t, cws, p.Rows()*4)
	assert.Equal(t, len(cws)-encoder.ErrorCorrectionCount(3), cws[0])
}

func TestPDF417Latin1(t *testing.T) {
	p, err := NewPDF417("Größe", nil)
	require.NoError(t, err)
	// latch, then one codeword per byte: G r ö ß e
	assert.Equal(t, []int{901, 'G', 'r', 0xf6, 0xdf, 'e'}, p.Codewords()[1:7])

	_, err = NewPDF417("ab€", nil)
	require.Error(t, err)
	var encErr *barcodego.EncodingError
	require.True(t, errors.As(err, &encErr))
	assert.Equal(t, 2, encErr.Pos)
}

func TestPDF417Charset(t *testing.T) {
	p, err := NewPDF417("é", &barcodego.EncodeOptions{Charset: "UTF-8"})
	require.NoError(t, err)
	// ECI 26, then the two UTF-8 bytes in byte compaction
	assert.Equal(t, []int{927, 26, 901, 0xc3, 0xa9}, p.Codewords()[1:6])

	p, err = NewPDF417("é", &barcodego.EncodeOptions{Charset: "ISO-8859-1"})
	require.NoError(t, err)
	assert.Equal(t, []int{901, 0xe9}, p.Codewords()[1:3])

	_, err = NewPDF417("x", &barcodego.EncodeOptions{Charset: "klingon"})
	assert.ErrorIs(t, err, barcodego.ErrEncoding)

	_, err = NewPDF417("xЖ", &barcodego.EncodeOptions{Charset: "windows-1252"})
	var encErr *barcodego.EncodingError
	require.True(t, errors.As(err, &encErr))
	assert.Equal(t, 1, encErr.Pos)
}

func TestPDF417Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
		opts *barcodego.EncodeOptions
	}{
		{"columns", "x", &barcodego.EncodeOptions{PDF417Columns: 40}},
		{"level", "x", &barcodego.EncodeOptions{PDF417ErrorCorrection: 9}},
		{"compaction", "x", &barcodego.EncodeOptions{PDF417Compaction: barcodego.Compaction(9)}},
		{"numeric", "12a", &barcodego.EncodeOptions{PDF417Compaction: barcodego.CompactionNumeric}},
		{"too long", string(make([]byte, 3000)), nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewPDF417(tc.data, tc.opts)
			require.Error(t, err)
			assert.True(t, errors.Is(err, barcodego.ErrEncoding), err)
		})
	}
}

func TestPDF417Barcode(t *testing.T) {
	bc, err := barcodego.New(barcodego.PDF417, "1234567890123456", nil)
	require.NoError(t, err)
	assert.False(t, bc.DrawingText())
	p := bc.Encoder().(*PDF417)

	bw := bc.BarWidth()
	wantWidth := (2*QuietZone + (p.Columns()+4)*17 + 1) * bw
	wantHeight := p.Rows() * 3 * bw
	w, h := bc.Size()
	assert.Equal(t, wantWidth, w)
	assert.Equal(t, wantHeight, h)

	bits := bc.Bitmap()
	assert.Equal(t, wantWidth, bits.Width())
	assert.Equal(t, wantHeight, bits.Height())
	// quiet zone then the start pattern's leading bar
	assert.False(t, bits.Get(0, 0))
	assert.True(t, bits.Get(QuietZone*bw, 0))
}

func TestPDF417DebugLog(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	_, err := NewPDF417("log me", &barcodego.EncodeOptions{Logger: logger})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "pdf417 layout")
	assert.Contains(t, buf.String(), "rows=3")
}
