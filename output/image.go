package output

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/boombuler/barcode"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Image is an Output that paints onto an RGBA image and renders labels in
// a 7x13 bitmap font.
type Image struct {
	Foreground color.Color
	Background color.Color

	img      *image.RGBA
	inverted bool
}

// NewImage creates a width x height surface, black on white.
func NewImage(width, height int) *Image {
	return &Image{
		Foreground: color.Black,
		Background: color.White,
		img:        image.NewRGBA(image.Rect(0, 0, max(width, 1), max(height, 1))),
	}
}

// RGBA returns the drawn image.
func (o *Image) RGBA() *image.RGBA { return o.img }

func (o *Image) BeginDraw() error {
	o.inverted = false
	draw.Draw(o.img, o.img.Bounds(), image.NewUniform(o.Background), image.Point{}, draw.Src)
	return nil
}

func (o *Image) EndDraw(_, _ int) error { return nil }

func (o *Image) DrawBar(x, y, width, height int, paintWithForeground bool) int {
	c := o.Background
	if paintWithForeground != o.inverted {
		c = o.Foreground
	}
	o.fill(x, y, width, height, c)
	return width
}

func (o *Image) PaintBackground(x, y, width, height int) {
	o.fill(x, y, width, height, o.Background)
}

func (o *Image) DrawText(text string, layout TextLayout) int {
	face := basicfont.Face7x13
	textWidth := font.MeasureString(face, text).Ceil()
	x := layout.X
	switch layout.Align {
	case AlignCenter:
		x += (layout.Width - textWidth) / 2
	case AlignRight:
		x += layout.Width - textWidth
	}
	d := &font.Drawer{
		Dst:  o.img,
		Src:  image.NewUniform(o.Foreground),
		Face: face,
		Dot:  fixed.P(x, layout.Y+face.Ascent),
	}
	d.DrawString(text)
	return face.Height
}

func (o *Image) ToggleDrawingColor() { o.inverted = !o.inverted }

func (o *Image) fill(x, y, width, height int, c color.Color) {
	r := image.Rect(x, y, x+width, y+height)
	draw.Draw(o.img, r, image.NewUniform(c), image.Point{}, draw.Src)
}

// Barcode wraps the drawn image as a barcode.Barcode so it can be scaled
// and encoded with the rest of that ecosystem.
func (o *Image) Barcode(content, kind string, dimensions byte) barcode.Barcode {
	return &imageBarcode{RGBA: o.img, content: content, meta: barcode.Metadata{CodeKind: kind, Dimensions: dimensions}}
}

type imageBarcode struct {
	*image.RGBA
	content string
	meta    barcode.Metadata
}

func (b *imageBarcode) Content() string            { return b.content }
func (b *imageBarcode) Metadata() barcode.Metadata { return b.meta }
