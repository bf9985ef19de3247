package module

import (
	"github.com/ericlevine/barcodego/bitutil"
	"github.com/ericlevine/barcodego/output"
)

// Matrix is a two-dimensional module. Each set bit is one bar unit wide and
// one row tall; a row is barHeight pixels high.
type Matrix struct {
	bits   *bitutil.BitMatrix
	symbol string
}

// NewMatrix wraps bits, which must not be modified afterwards.
func NewMatrix(symbol string, bits *bitutil.BitMatrix) *Matrix {
	return &Matrix{bits: bits, symbol: symbol}
}

// Bits returns a copy of the underlying matrix.
func (m *Matrix) Bits() *bitutil.BitMatrix { return m.bits.Clone() }

// Rows returns the number of rows.
func (m *Matrix) Rows() int { return m.bits.Height() }

func (m *Matrix) Symbol() string { return m.symbol }

// Widths returns the run lengths of the first row.
func (m *Matrix) Widths() []int {
	if m.bits.Height() == 0 {
		return nil
	}
	return runs(m.bits.Row(0, nil))
}

func (m *Matrix) WidthInBars() int { return m.bits.Width() }

func (m *Matrix) Height(_, barHeight int) int { return m.bits.Height() * barHeight }

func (m *Matrix) Draw(out output.Output, x, y, barWidth, barHeight int) int {
	var row *bitutil.BitArray
	for r := 0; r < m.bits.Height(); r++ {
		row = m.bits.Row(r, row)
		drawWidths(out, runs(row), x, y+r*barHeight, barWidth, barHeight)
	}
	return m.bits.Width() * barWidth
}

// runs converts a row into alternating bar/space run lengths, starting with
// a (possibly empty) bar.
func runs(row *bitutil.BitArray) []int {
	var widths []int
	pos, set := 0, true
	for pos < row.Size() {
		var next int
		if set {
			next = row.GetNextUnset(pos)
		} else {
			next = row.GetNextSet(pos)
		}
		widths = append(widths, next-pos)
		pos, set = next, !set
	}
	return widths
}
