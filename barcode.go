package barcodego

import (
	"image/color"
	"log/slog"
	"strings"
	"unicode"

	"github.com/ericlevine/barcodego/bitutil"
	"github.com/ericlevine/barcodego/internal/logging"
	"github.com/ericlevine/barcodego/module"
	"github.com/ericlevine/barcodego/output"
)

const (
	// DefaultResolution is the resolution in dots per inch assumed when
	// none is set.
	DefaultResolution = 72

	// DefaultBarWidth is the default width of one bar unit in pixels.
	DefaultBarWidth = 2
)

// Barcode pairs an encoder with drawing geometry. Setters are independent;
// a Barcode is not safe for concurrent mutation.
type Barcode struct {
	enc Encoder
	log logging.Logger

	label               string
	hasLabel            bool
	barWidth            int
	barHeight           int
	resolution          int
	drawingText         bool
	drawingQuietSection bool
}

// New validates data for symbology s and returns a barcode with default
// geometry.
func New(s Symbology, data string, opts *EncodeOptions) (*Barcode, error) {
	enc, err := NewEncoder(s, data, opts)
	if err != nil {
		return nil, err
	}
	return NewBarcode(enc, opts.logger()), nil
}

// NewBarcode wraps an existing encoder.
func NewBarcode(enc Encoder, logger *slog.Logger) *Barcode {
	return &Barcode{
		enc:                 enc,
		log:                 logging.New(logger, "barcode"),
		barWidth:            DefaultBarWidth,
		resolution:          DefaultResolution,
		drawingText:         !enc.Symbology().Is2D(),
		drawingQuietSection: true,
	}
}

// Encoder returns the underlying encoder.
func (b *Barcode) Encoder() Encoder { return b.enc }

// Symbology returns the encoded symbology.
func (b *Barcode) Symbology() Symbology { return b.enc.Symbology() }

// Data returns the normalized data.
func (b *Barcode) Data() string { return b.enc.Data() }

// Label returns the explicit label if one was set, otherwise the encoder's
// label with control characters removed.
func (b *Barcode) Label() string {
	if b.hasLabel {
		return b.label
	}
	return stripControl(b.enc.Label())
}

// SetLabel overrides the human readable text.
func (b *Barcode) SetLabel(label string) {
	b.label, b.hasLabel = label, true
}

// BarWidth returns the width of one bar unit in pixels.
func (b *Barcode) BarWidth() int { return b.barWidth }

// SetBarWidth sets the width of one bar unit in pixels. Values below 1 are
// raised to 1.
func (b *Barcode) SetBarWidth(w int) {
	b.barWidth = max(w, 1)
}

// BarHeight returns the height of a data bar in pixels: the preferred
// height if set, otherwise half an inch at the current resolution. For
// PDF417 it is the row height, three bar units unless set.
func (b *Barcode) BarHeight() int {
	if b.barHeight > 0 {
		return b.barHeight
	}
	if b.enc.Symbology().Is2D() {
		return 3 * b.barWidth
	}
	return max(b.resolution/2, 1)
}

// SetBarHeight sets the preferred bar height in pixels. Zero restores the
// default.
func (b *Barcode) SetBarHeight(h int) {
	b.barHeight = max(h, 0)
}

// Resolution returns the output resolution in dots per inch.
func (b *Barcode) Resolution() int { return b.resolution }

// SetResolution sets the output resolution. Non-positive values restore
// DefaultResolution.
func (b *Barcode) SetResolution(dpi int) {
	if dpi <= 0 {
		dpi = DefaultResolution
	}
	b.resolution = dpi
}

// DrawingText reports whether the label is drawn below the bars.
func (b *Barcode) DrawingText() bool { return b.drawingText }

// SetDrawingText enables or disables the label.
func (b *Barcode) SetDrawingText(on bool) { b.drawingText = on }

// DrawingQuietSection reports whether quiet zones are drawn.
func (b *Barcode) DrawingQuietSection() bool { return b.drawingQuietSection }

// SetDrawingQuietSection enables or disables the quiet zones.
func (b *Barcode) SetDrawingQuietSection(on bool) { b.drawingQuietSection = on }

// Modules returns every module in drawing order, without quiet zones when
// they are disabled.
func (b *Barcode) Modules() []module.Module {
	all := Modules(b.enc)
	if b.drawingQuietSection {
		return all
	}
	kept := all[:0]
	for _, m := range all {
		if m = module.WithoutBlanks(m); m != nil {
			kept = append(kept, m)
		}
	}
	return kept
}

// WidthInBars returns the total width in bar units.
func (b *Barcode) WidthInBars() int {
	total := 0
	for _, m := range b.Modules() {
		total += m.WidthInBars()
	}
	return total
}

// Size returns the pixel size of the drawn barcode, label included.
func (b *Barcode) Size() (width, height int) {
	s := output.NewSizer()
	// a Sizer never fails
	width, height, _ = b.Draw(s, 0, 0)
	b.log.Debug("barcode size",
		slog.String("symbology", b.Symbology().String()),
		slog.Int("width", width),
		slog.Int("height", height))
	return width, height
}

// Draw paints the barcode with its top-left corner at (x, y) and returns
// the pixel size drawn. Errors from the output are returned unchanged.
func (b *Barcode) Draw(out output.Output, x, y int) (width, height int, err error) {
	if err := out.BeginDraw(); err != nil {
		return 0, 0, err
	}
	mods := b.Modules()
	bw, bh := b.barWidth, b.BarHeight()

	total, barsHeight := 0, 0
	for _, m := range mods {
		total += m.WidthInBars() * bw
		barsHeight = max(barsHeight, m.Height(bw, bh))
	}
	if barsHeight > bh {
		// clear the strip the guard bars extend into
		out.PaintBackground(x, y+bh, total, barsHeight-bh)
	}
	cursor := x
	for _, m := range mods {
		cursor += m.Draw(out, cursor, y, bw, bh)
	}
	width, height = cursor-x, barsHeight

	if label := b.Label(); b.drawingText && label != "" {
		height += out.DrawText(label, output.TextLayout{X: x, Y: y + barsHeight, Width: width})
	}
	if err := out.EndDraw(x+width, y+height); err != nil {
		return 0, 0, err
	}
	return width, height, nil
}

// Bitmap draws the barcode onto a bit matrix with set bits for bars.
// Labels are not rendered.
func (b *Barcode) Bitmap() *bitutil.BitMatrix {
	c := *b
	c.drawingText = false
	w, h := c.Size()
	bm := output.NewBitmap(w, h)
	// a Bitmap never fails
	_, _, _ = c.Draw(bm, 0, 0)
	return bm.Matrix()
}

// Image draws the barcode, label included, onto an RGBA image.
func (b *Barcode) Image(fg, bg color.Color) *output.Image {
	w, h := b.Size()
	img := output.NewImage(w, h)
	if fg != nil {
		img.Foreground = fg
	}
	if bg != nil {
		img.Background = bg
	}
	_, _, _ = b.Draw(img, 0, 0)
	return img
}

func stripControl(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) || r == unicode.ReplacementChar {
			return -1
		}
		return r
	}, s)
}
