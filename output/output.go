// Package output defines the drawing surface modules paint onto, along with
// a size-only surface, a bit matrix surface, an RGBA image surface and an
// SVG writer.
package output

// DefaultTextHeight is the label line height in pixels used by the size-only
// and image surfaces. It matches basicfont.Face7x13.
const DefaultTextHeight = 13

// Align positions a label horizontally within its layout box.
type Align int

const (
	AlignCenter Align = iota
	AlignLeft
	AlignRight
)

// TextLayout is the box a label is drawn into.
type TextLayout struct {
	X, Y  int
	Width int
	Align Align
}

// Output is a drawing surface. Implementations may hold state across a
// BeginDraw/EndDraw session; they are not safe for concurrent use.
type Output interface {
	// BeginDraw starts a drawing session.
	BeginDraw() error

	// EndDraw finishes a drawing session of the given pixel extent.
	EndDraw(width, height int) error

	// DrawBar fills a rectangle with the foreground colour, or the
	// background colour when paintWithForeground is false, and returns the
	// width drawn.
	DrawBar(x, y, width, height int, paintWithForeground bool) int

	// PaintBackground fills a rectangle with the background colour.
	PaintBackground(x, y, width, height int)

	// DrawText draws a label and returns the height it used.
	DrawText(text string, layout TextLayout) int

	// ToggleDrawingColor swaps the foreground and background colours.
	ToggleDrawingColor()
}
