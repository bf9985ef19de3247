// Package module holds the printable units of a barcode: ordered runs of
// alternating bar and space widths measured in bar units, and the
// composite, blank, guard, height-coded and two-dimensional variants built
// on the same drawing contract.
package module

import (
	"fmt"
	"slices"
	"strings"

	"github.com/ericlevine/barcodego/output"
)

// Module is a printable unit. Implementations are immutable and safe for
// concurrent use once constructed.
type Module interface {
	// Symbol returns the source character(s) the module encodes.
	Symbol() string

	// Widths returns a copy of the bar/space widths, bar first.
	Widths() []int

	// WidthInBars returns the total width in bar units.
	WidthInBars() int

	// Height returns the pixel height drawn for the given unit sizes.
	Height(barWidth, barHeight int) int

	// Draw paints the module at (x, y) and returns the pixel width used.
	Draw(out output.Output, x, y, barWidth, barHeight int) int
}

// Bars is the basic module: widths alternate bar, space, bar, ...
// A leading zero width lets a pattern start with a space.
type Bars struct {
	widths []int
	symbol string
}

// New creates a Bars module. It panics on a negative width, since module
// tables are static data.
func New(symbol string, widths ...int) *Bars {
	for _, w := range widths {
		if w < 0 {
			panic(fmt.Sprintf("module: negative width in %q", symbol))
		}
	}
	return &Bars{widths: slices.Clone(widths), symbol: symbol}
}

// WithSymbol returns a copy of b associated with symbol.
func (b *Bars) WithSymbol(symbol string) *Bars {
	return &Bars{widths: b.widths, symbol: symbol}
}

func (b *Bars) Symbol() string { return b.symbol }

func (b *Bars) Widths() []int { return slices.Clone(b.widths) }

func (b *Bars) WidthInBars() int { return sum(b.widths) }

func (b *Bars) Height(_, barHeight int) int { return barHeight }

func (b *Bars) Draw(out output.Output, x, y, barWidth, barHeight int) int {
	return drawWidths(out, b.widths, x, y, barWidth, barHeight)
}

func (b *Bars) String() string {
	return fmt.Sprintf("%q%v", b.symbol, b.widths)
}

// Guard is a Bars module drawn taller than the data bars, extending below
// them by Extra bar widths.
type Guard struct {
	Bars
	extra int
}

// NewGuard creates a guard pattern extending extra bar widths below the
// data bars.
func NewGuard(symbol string, extra int, widths ...int) *Guard {
	return &Guard{Bars: *New(symbol, widths...), extra: extra}
}

func (g *Guard) Height(barWidth, barHeight int) int {
	return barHeight + g.extra*barWidth
}

func (g *Guard) Draw(out output.Output, x, y, barWidth, barHeight int) int {
	return drawWidths(out, g.widths, x, y, barWidth, g.Height(barWidth, barHeight))
}

// Blank is a single space of the given width. It always paints with the
// background colour and is used for quiet zones.
type Blank struct {
	width int
}

// NewBlank creates a blank module width bar units wide.
func NewBlank(width int) *Blank {
	return &Blank{width: width}
}

func (b *Blank) Symbol() string { return "" }

func (b *Blank) Widths() []int { return []int{b.width} }

func (b *Blank) WidthInBars() int { return b.width }

func (b *Blank) Height(_, barHeight int) int { return barHeight }

func (b *Blank) Draw(out output.Output, x, y, barWidth, barHeight int) int {
	return out.DrawBar(x, y, b.width*barWidth, barHeight, false)
}

// Separator is a single inter-character gap. It paints a bar with the
// drawing colours swapped, erasing whatever is underneath.
type Separator struct {
	width int
}

// NewSeparator creates a separator width bar units wide.
func NewSeparator(width int) *Separator {
	return &Separator{width: width}
}

func (s *Separator) Symbol() string { return "" }

func (s *Separator) Widths() []int { return []int{0, s.width} }

func (s *Separator) WidthInBars() int { return s.width }

func (s *Separator) Height(_, barHeight int) int { return barHeight }

func (s *Separator) Draw(out output.Output, x, y, barWidth, barHeight int) int {
	out.ToggleDrawingColor()
	w := out.DrawBar(x, y, s.width*barWidth, barHeight, true)
	out.ToggleDrawingColor()
	return w
}

// Composite draws its children one after another.
type Composite struct {
	children []Module
}

// NewComposite creates a composite of the non-nil children, in order.
func NewComposite(children ...Module) *Composite {
	c := &Composite{}
	for _, m := range children {
		if m != nil {
			c.children = append(c.children, m)
		}
	}
	return c
}

// Children returns the child modules in drawing order.
func (c *Composite) Children() []Module { return slices.Clone(c.children) }

func (c *Composite) Symbol() string {
	var sb strings.Builder
	for _, m := range c.children {
		sb.WriteString(m.Symbol())
	}
	return sb.String()
}

func (c *Composite) Widths() []int {
	var widths []int
	for _, m := range c.children {
		widths = append(widths, m.Widths()...)
	}
	return widths
}

func (c *Composite) WidthInBars() int {
	total := 0
	for _, m := range c.children {
		total += m.WidthInBars()
	}
	return total
}

func (c *Composite) Height(barWidth, barHeight int) int {
	h := 0
	for _, m := range c.children {
		h = max(h, m.Height(barWidth, barHeight))
	}
	return h
}

func (c *Composite) Draw(out output.Output, x, y, barWidth, barHeight int) int {
	drawn := 0
	for _, m := range c.children {
		drawn += m.Draw(out, x+drawn, y, barWidth, barHeight)
	}
	return drawn
}

// WithoutBlanks returns m with every Blank removed, descending into
// composites. It returns nil when nothing but blanks remains.
func WithoutBlanks(m Module) Module {
	switch v := m.(type) {
	case nil:
		return nil
	case *Blank:
		return nil
	case *Composite:
		var kept []Module
		for _, child := range v.children {
			if k := WithoutBlanks(child); k != nil {
				kept = append(kept, k)
			}
		}
		if len(kept) == 0 {
			return nil
		}
		return NewComposite(kept...)
	default:
		return m
	}
}

func drawWidths(out output.Output, widths []int, x, y, barWidth, height int) int {
	drawn := 0
	for i, w := range widths {
		if w == 0 {
			continue
		}
		drawn += out.DrawBar(x+drawn, y, w*barWidth, height, i%2 == 0)
	}
	return drawn
}

func sum(widths []int) int {
	total := 0
	for _, w := range widths {
		total += w
	}
	return total
}
