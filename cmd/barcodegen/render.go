package main

import (
	"bufio"
	"fmt"
	"image/png"
	"io"

	"github.com/boombuler/barcode"

	"github.com/ericlevine/barcodego"
	"github.com/ericlevine/barcodego/internal/config"
	"github.com/ericlevine/barcodego/output"
)

// render writes bc to w in the profile's format.
func render(w io.Writer, bc *barcodego.Barcode, p *config.Profile) error {
	switch p.Format {
	case "svg":
		return renderSVG(w, bc, p)
	case "txt":
		return renderText(w, bc)
	}
	return renderPNG(w, bc, p)
}

func renderPNG(w io.Writer, bc *barcodego.Barcode, p *config.Profile) error {
	fg, bg, err := p.Colors()
	if err != nil {
		return err
	}
	img := bc.Image(fg, bg)
	// the drawn raster already carries label and guard bars, so scale it
	// as a two-dimensional image
	var code barcode.Barcode = img.Barcode(bc.Data(), bc.Symbology().String(), 2)
	if p.Width > 0 || p.Height > 0 {
		width, height := targetSize(code, p.Width, p.Height)
		if code, err = barcode.Scale(code, width, height); err != nil {
			return err
		}
	}
	return png.Encode(w, code)
}

// targetSize fills in a missing target dimension so the image keeps its
// aspect ratio.
func targetSize(code barcode.Barcode, width, height int) (int, int) {
	b := code.Bounds()
	switch {
	case width == 0:
		width = b.Dx() * max(height/b.Dy(), 1)
	case height == 0:
		height = b.Dy() * max(width/b.Dx(), 1)
	}
	return width, height
}

func renderSVG(w io.Writer, bc *barcodego.Barcode, p *config.Profile) error {
	fg, bg, err := p.Colors()
	if err != nil {
		return err
	}
	svg := output.NewSVG(w)
	svg.Foreground = hexColor(fg.R, fg.G, fg.B)
	svg.Background = hexColor(bg.R, bg.G, bg.B)
	if bg.A == 0 {
		svg.Background = "none"
	}
	_, _, err = bc.Draw(svg, 0, 0)
	return err
}

func hexColor(r, g, b uint8) string {
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// renderText prints one character per pixel column, '#' for bars, using
// the first pixel row of every bar row.
func renderText(w io.Writer, bc *barcodego.Barcode) error {
	bits := bc.Bitmap()
	step := bc.BarHeight()
	if !bc.Symbology().Is2D() {
		step = bits.Height()
	}
	bw := bufio.NewWriter(w)
	for y := 0; y < bits.Height(); y += max(step, 1) {
		for x := 0; x < bits.Width(); x += bc.BarWidth() {
			if bits.Get(x, y) {
				bw.WriteByte('#')
			} else {
				bw.WriteByte(' ')
			}
		}
		bw.WriteByte('\n')
	}
	if label := bc.Label(); bc.DrawingText() && label != "" {
		fmt.Fprintln(bw, label)
	}
	return bw.Flush()
}
