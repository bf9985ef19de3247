package module

import (
	"fmt"

	"github.com/ericlevine/barcodego/output"
)

// Postnet is a height-coded module: every bar is one unit wide, followed
// by a one-unit space, and is either full or half height.
type Postnet struct {
	tall   []bool
	symbol string
}

// NewPostnet creates a height-coded module from a pattern such as "11000",
// where '1' is a full bar and '0' a half bar.
func NewPostnet(symbol, pattern string) *Postnet {
	p := &Postnet{symbol: symbol, tall: make([]bool, len(pattern))}
	for i, c := range pattern {
		switch c {
		case '1':
			p.tall[i] = true
		case '0':
		default:
			panic(fmt.Sprintf("module: invalid postnet pattern %q", pattern))
		}
	}
	return p
}

func (p *Postnet) Symbol() string { return p.symbol }

func (p *Postnet) Widths() []int {
	widths := make([]int, 2*len(p.tall))
	for i := range widths {
		widths[i] = 1
	}
	return widths
}

// Heights returns 2 for every full bar and 1 for every half bar.
func (p *Postnet) Heights() []int {
	heights := make([]int, len(p.tall))
	for i, t := range p.tall {
		heights[i] = 1
		if t {
			heights[i] = 2
		}
	}
	return heights
}

func (p *Postnet) WidthInBars() int { return 2 * len(p.tall) }

func (p *Postnet) Height(_, barHeight int) int { return barHeight }

func (p *Postnet) Draw(out output.Output, x, y, barWidth, barHeight int) int {
	short := max(barHeight/2, 1)
	drawn := 0
	for _, t := range p.tall {
		h := short
		if t {
			h = barHeight
		}
		drawn += out.DrawBar(x+drawn, y+barHeight-h, barWidth, h, true)
		drawn += out.DrawBar(x+drawn, y, barWidth, barHeight, false)
	}
	return drawn
}

func (p *Postnet) String() string {
	return fmt.Sprintf("%q%v", p.symbol, p.Heights())
}

