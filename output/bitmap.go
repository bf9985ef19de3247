package output

import "github.com/ericlevine/barcodego/bitutil"

// Bitmap is an Output backed by a BitMatrix, one bit per pixel with set
// bits in the foreground colour. Labels are not rendered.
type Bitmap struct {
	bits     *bitutil.BitMatrix
	inverted bool
}

// NewBitmap creates a width x height surface. Drawing outside it is
// clipped.
func NewBitmap(width, height int) *Bitmap {
	return &Bitmap{bits: bitutil.NewBitMatrixWithSize(max(width, 1), max(height, 1))}
}

// Matrix returns the drawn matrix.
func (b *Bitmap) Matrix() *bitutil.BitMatrix { return b.bits }

func (b *Bitmap) BeginDraw() error {
	b.bits.Clear()
	b.inverted = false
	return nil
}

func (b *Bitmap) EndDraw(_, _ int) error { return nil }

func (b *Bitmap) DrawBar(x, y, width, height int, paintWithForeground bool) int {
	b.fill(x, y, width, height, paintWithForeground != b.inverted)
	return width
}

func (b *Bitmap) PaintBackground(x, y, width, height int) {
	b.fill(x, y, width, height, false)
}

func (b *Bitmap) DrawText(string, TextLayout) int { return 0 }

func (b *Bitmap) ToggleDrawingColor() { b.inverted = !b.inverted }

func (b *Bitmap) fill(x, y, width, height int, on bool) {
	x0, y0 := max(x, 0), max(y, 0)
	x1, y1 := min(x+width, b.bits.Width()), min(y+height, b.bits.Height())
	if x1 <= x0 || y1 <= y0 {
		return
	}
	if on {
		b.bits.SetRegion(x0, y0, x1-x0, y1-y0)
		return
	}
	b.bits.UnsetRegion(x0, y0, x1-x0, y1-y0)
}
