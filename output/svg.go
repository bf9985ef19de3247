package output

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
)

// SVG is an Output that writes a scalable vector document to W when the
// drawing session ends.
type SVG struct {
	W          io.Writer
	Foreground string
	Background string
	FontSize   int

	body     bytes.Buffer
	inverted bool
}

// NewSVG creates an SVG surface writing to w, black on white.
func NewSVG(w io.Writer) *SVG {
	return &SVG{W: w, Foreground: "#000000", Background: "#ffffff", FontSize: DefaultTextHeight}
}

func (s *SVG) BeginDraw() error {
	s.body.Reset()
	s.inverted = false
	return nil
}

func (s *SVG) EndDraw(width, height int) error {
	_, err := fmt.Fprintf(s.W,
		"<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n"+
			"<svg xmlns=\"http://www.w3.org/2000/svg\" width=\"%d\" height=\"%d\" viewBox=\"0 0 %d %d\">\n"+
			"<rect x=\"0\" y=\"0\" width=\"%d\" height=\"%d\" fill=\"%s\"/>\n",
		width, height, width, height, width, height, s.Background)
	if err != nil {
		return err
	}
	if _, err := s.body.WriteTo(s.W); err != nil {
		return err
	}
	_, err = io.WriteString(s.W, "</svg>\n")
	return err
}

func (s *SVG) DrawBar(x, y, width, height int, paintWithForeground bool) int {
	c := s.Background
	if paintWithForeground != s.inverted {
		c = s.Foreground
	}
	s.rect(x, y, width, height, c)
	return width
}

func (s *SVG) PaintBackground(x, y, width, height int) {
	s.rect(x, y, width, height, s.Background)
}

func (s *SVG) DrawText(text string, layout TextLayout) int {
	anchor, x := "middle", layout.X+layout.Width/2
	switch layout.Align {
	case AlignLeft:
		anchor, x = "start", layout.X
	case AlignRight:
		anchor, x = "end", layout.X+layout.Width
	}
	fmt.Fprintf(&s.body, "<text x=\"%d\" y=\"%d\" font-family=\"monospace\" font-size=\"%d\" text-anchor=\"%s\" fill=\"%s\">",
		x, layout.Y+s.FontSize, s.FontSize, anchor, s.Foreground)
	xml.EscapeText(&s.body, []byte(text))
	s.body.WriteString("</text>\n")
	return s.FontSize
}

func (s *SVG) ToggleDrawingColor() { s.inverted = !s.inverted }

func (s *SVG) rect(x, y, width, height int, fill string) {
	if width <= 0 || height <= 0 {
		return
	}
	fmt.Fprintf(&s.body, "<rect x=\"%d\" y=\"%d\" width=\"%d\" height=\"%d\" fill=\"%s\"/>\n", x, y, width, height, fill)
}
