package bitutil

import "strings"

// BitMatrix is a packed two-dimensional bit grid. x is the column and y the
// row; the origin is the top-left corner.
type BitMatrix struct {
	width   int
	height  int
	rowSize int
	data    []uint32
}

// NewBitMatrixWithSize creates a zeroed width x height matrix.
func NewBitMatrixWithSize(width, height int) *BitMatrix {
	if width < 1 || height < 1 {
		panic("bitmatrix: dimensions must be greater than 0")
	}
	rowSize := (width + 31) / 32
	return &BitMatrix{
		width:   width,
		height:  height,
		rowSize: rowSize,
		data:    make([]uint32, rowSize*height),
	}
}

// ParseStringMatrix builds a matrix from rows of setStr/unsetStr tokens
// separated by newlines.
func ParseStringMatrix(repr, setStr, unsetStr string) *BitMatrix {
	var rows [][]bool
	for _, line := range strings.FieldsFunc(repr, func(r rune) bool { return r == '\n' || r == '\r' }) {
		var row []bool
		for len(line) > 0 {
			switch {
			case strings.HasPrefix(line, setStr):
				row = append(row, true)
				line = line[len(setStr):]
			case strings.HasPrefix(line, unsetStr):
				row = append(row, false)
				line = line[len(unsetStr):]
			default:
				panic("bitmatrix: illegal character encountered")
			}
		}
		if len(rows) > 0 && len(row) != len(rows[0]) {
			panic("bitmatrix: row lengths do not match")
		}
		rows = append(rows, row)
	}
	if len(rows) == 0 {
		panic("bitmatrix: empty matrix")
	}
	bm := NewBitMatrixWithSize(len(rows[0]), len(rows))
	for y, row := range rows {
		for x, on := range row {
			if on {
				bm.Set(x, y)
			}
		}
	}
	return bm
}

// Get reports whether (x, y) is set.
func (bm *BitMatrix) Get(x, y int) bool {
	return (bm.data[y*bm.rowSize+x/32]>>uint(x&0x1f))&1 != 0
}

// Set sets (x, y).
func (bm *BitMatrix) Set(x, y int) {
	bm.data[y*bm.rowSize+x/32] |= 1 << uint(x&0x1f)
}

// Unset clears (x, y).
func (bm *BitMatrix) Unset(x, y int) {
	bm.data[y*bm.rowSize+x/32] &^= 1 << uint(x&0x1f)
}

// Clear unsets every bit.
func (bm *BitMatrix) Clear() {
	clear(bm.data)
}

// SetRegion sets the width x height rectangle at (left, top).
func (bm *BitMatrix) SetRegion(left, top, width, height int) {
	bm.region(left, top, width, height, true)
}

// UnsetRegion clears the width x height rectangle at (left, top).
func (bm *BitMatrix) UnsetRegion(left, top, width, height int) {
	bm.region(left, top, width, height, false)
}

func (bm *BitMatrix) region(left, top, width, height int, on bool) {
	if top < 0 || left < 0 {
		panic("bitmatrix: left and top must be nonnegative")
	}
	if height < 1 || width < 1 {
		panic("bitmatrix: height and width must be at least 1")
	}
	right, bottom := left+width, top+height
	if bottom > bm.height || right > bm.width {
		panic("bitmatrix: region must fit inside the matrix")
	}
	for y := top; y < bottom; y++ {
		offset := y * bm.rowSize
		for x := left; x < right; x++ {
			if on {
				bm.data[offset+x/32] |= 1 << uint(x&0x1f)
			} else {
				bm.data[offset+x/32] &^= 1 << uint(x&0x1f)
			}
		}
	}
}

// Row copies row y into row, allocating when row is nil or too small.
func (bm *BitMatrix) Row(y int, row *BitArray) *BitArray {
	if row == nil || row.Size() < bm.width {
		row = NewBitArray(bm.width)
	} else {
		row.Clear()
	}
	offset := y * bm.rowSize
	for x := 0; x < bm.rowSize; x++ {
		row.SetBulk(x*32, bm.data[offset+x])
	}
	return row
}

// SetRow replaces row y with the first Width bits of row.
func (bm *BitMatrix) SetRow(y int, row *BitArray) {
	n := copy(bm.data[y*bm.rowSize:(y+1)*bm.rowSize], row.BitData())
	clear(bm.data[y*bm.rowSize+n : (y+1)*bm.rowSize])
	if extra := bm.width & 0x1f; extra != 0 {
		bm.data[(y+1)*bm.rowSize-1] &= (1 << uint(extra)) - 1
	}
}

// Width returns the number of columns.
func (bm *BitMatrix) Width() int { return bm.width }

// Height returns the number of rows.
func (bm *BitMatrix) Height() int { return bm.height }

// Clone returns a deep copy.
func (bm *BitMatrix) Clone() *BitMatrix {
	c := *bm
	c.data = append([]uint32(nil), bm.data...)
	return &c
}

// String renders the matrix with "X " for set bits and "  " for unset.
func (bm *BitMatrix) String() string {
	return bm.StringWithChars("X ", "  ")
}

// StringWithChars renders the matrix one line per row.
func (bm *BitMatrix) StringWithChars(setString, unsetString string) string {
	var sb strings.Builder
	sb.Grow(bm.height * (bm.width*len(setString) + 1))
	for y := 0; y < bm.height; y++ {
		for x := 0; x < bm.width; x++ {
			if bm.Get(x, y) {
				sb.WriteString(setString)
			} else {
				sb.WriteString(unsetString)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Equals reports whether other has the same size and bits.
func (bm *BitMatrix) Equals(other *BitMatrix) bool {
	if other == nil || bm.width != other.width || bm.height != other.height {
		return false
	}
	for i := range bm.data {
		if bm.data[i] != other.data[i] {
			return false
		}
	}
	return true
}
