package output

import (
	"bytes"
	"errors"
	"image/color"
	"strings"
	"testing"

	"github.com/boombuler/barcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// drawSample paints a bar, an erased gap and a label.
func drawSample(t *testing.T, o Output) {
	t.Helper()
	require.NoError(t, o.BeginDraw())
	o.DrawBar(0, 0, 6, 4, true)
	o.ToggleDrawingColor()
	o.DrawBar(2, 0, 2, 4, true)
	o.ToggleDrawingColor()
	o.PaintBackground(0, 4, 6, 2)
	o.DrawText("ab&", TextLayout{X: 0, Y: 6, Width: 40})
	require.NoError(t, o.EndDraw(40, 6+DefaultTextHeight))
}

func TestSizer(t *testing.T) {
	s := NewSizer()
	drawSample(t, s)
	w, h := s.Size()
	assert.Equal(t, 40, w)
	assert.Equal(t, 6+DefaultTextHeight, h)

	s.TextHeight = 20
	drawSample(t, s)
	_, h = s.Size()
	assert.Equal(t, 26, h)
}

func TestBitmap(t *testing.T) {
	b := NewBitmap(8, 6)
	drawSample(t, b)
	assert.Equal(t,
		"XX..XX..\n"+
			"XX..XX..\n"+
			"XX..XX..\n"+
			"XX..XX..\n"+
			"........\n"+
			"........\n",
		b.Matrix().StringWithChars("X", "."))
}

func TestBitmapClips(t *testing.T) {
	b := NewBitmap(3, 1)
	require.NoError(t, b.BeginDraw())
	assert.Equal(t, 10, b.DrawBar(-2, 0, 10, 5, true))
	assert.Equal(t, "XXX\n", b.Matrix().StringWithChars("X", "."))
}

func TestImage(t *testing.T) {
	o := NewImage(40, 19)
	o.Foreground = color.RGBA{R: 0xff, A: 0xff}
	drawSample(t, o)
	img := o.RGBA()
	assert.Equal(t, color.RGBA{R: 0xff, A: 0xff}, img.RGBAAt(0, 0))
	assert.Equal(t, color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, img.RGBAAt(2, 0))
	assert.Equal(t, color.RGBA{R: 0xff, A: 0xff}, img.RGBAAt(4, 3))
	assert.Equal(t, color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, img.RGBAAt(0, 5))

	var label bool
	for y := 6; y < 19 && !label; y++ {
		for x := 0; x < 40; x++ {
			if img.RGBAAt(x, y).G == 0 {
				label = true
				break
			}
		}
	}
	assert.True(t, label, "label pixels drawn")
}

func TestImageBarcodeAdapter(t *testing.T) {
	o := NewImage(10, 4)
	require.NoError(t, o.BeginDraw())
	o.DrawBar(0, 0, 5, 4, true)
	bc := o.Barcode("12345", barcode.Type2of5, 1)
	assert.Equal(t, "12345", bc.Content())
	assert.Equal(t, barcode.Type2of5, bc.Metadata().CodeKind)

	scaled, err := barcode.Scale(bc, 20, 8)
	require.NoError(t, err)
	assert.Equal(t, 20, scaled.Bounds().Dx())
	assert.Equal(t, 8, scaled.Bounds().Dy())
}

func TestSVG(t *testing.T) {
	var buf bytes.Buffer
	s := NewSVG(&buf)
	drawSample(t, s)
	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "<?xml"))
	assert.Contains(t, out, `width="40" height="19"`)
	assert.Contains(t, out, `<rect x="0" y="0" width="6" height="4" fill="#000000"/>`)
	assert.Contains(t, out, `<rect x="2" y="0" width="2" height="4" fill="#ffffff"/>`)
	assert.Contains(t, out, `text-anchor="middle"`)
	assert.Contains(t, out, ">ab&amp;</text>")
	assert.True(t, strings.HasSuffix(out, "</svg>\n"))
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestSVGWriteError(t *testing.T) {
	s := NewSVG(failingWriter{})
	require.NoError(t, s.BeginDraw())
	s.DrawBar(0, 0, 1, 1, true)
	assert.EqualError(t, s.EndDraw(1, 1), "disk full")
}
