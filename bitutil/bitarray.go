// Package bitutil provides the packed bit row and bit matrix used to hold
// rendered symbols: a BitArray is one row of modules, a BitMatrix a whole
// two-dimensional symbol or bitmap.
package bitutil

import (
	"math/bits"
	"strings"
)

// BitArray is a growable row of bits packed into uint32 words.
type BitArray struct {
	bits []uint32
	size int
}

// NewBitArray creates a zeroed BitArray of size bits.
func NewBitArray(size int) *BitArray {
	if size <= 0 {
		return &BitArray{}
	}
	return &BitArray{bits: words(size), size: size}
}

// Size returns the number of bits.
func (ba *BitArray) Size() int { return ba.size }

// Get reports whether bit i is set.
func (ba *BitArray) Get(i int) bool {
	return ba.bits[i/32]&(1<<uint(i&0x1F)) != 0
}

// Set sets bit i.
func (ba *BitArray) Set(i int) {
	ba.bits[i/32] |= 1 << uint(i&0x1F)
}

// SetBulk replaces the 32-bit word holding bit i.
func (ba *BitArray) SetBulk(i int, newBits uint32) {
	ba.bits[i/32] = newBits
}

// SetRange sets bits [start, end).
func (ba *BitArray) SetRange(start, end int) {
	if end < start || start < 0 || end > ba.size {
		panic("bitarray: invalid range")
	}
	for i := start; i < end; {
		if i&0x1F == 0 && end-i >= 32 {
			ba.bits[i/32] = ^uint32(0)
			i += 32
			continue
		}
		ba.Set(i)
		i++
	}
}

// Clear unsets every bit.
func (ba *BitArray) Clear() {
	clear(ba.bits)
}

// GetNextSet returns the index of the first set bit at or after from, or
// Size if there is none.
func (ba *BitArray) GetNextSet(from int) int {
	return ba.next(from, 0)
}

// GetNextUnset returns the index of the first unset bit at or after from,
// or Size if there is none.
func (ba *BitArray) GetNextUnset(from int) int {
	return ba.next(from, ^uint32(0))
}

func (ba *BitArray) next(from int, invert uint32) int {
	if from >= ba.size {
		return ba.size
	}
	w := from / 32
	cur := (ba.bits[w] ^ invert) & (^uint32(0) << uint(from&0x1F))
	for cur == 0 {
		w++
		if w == len(ba.bits) {
			return ba.size
		}
		cur = ba.bits[w] ^ invert
	}
	return min(w*32+bits.TrailingZeros32(cur), ba.size)
}

// AppendBit appends one bit.
func (ba *BitArray) AppendBit(bit bool) {
	ba.grow(ba.size + 1)
	if bit {
		ba.Set(ba.size)
	}
	ba.size++
}

// AppendBits appends the low numBits bits of value, most significant first.
func (ba *BitArray) AppendBits(value uint32, numBits int) {
	if numBits < 0 || numBits > 32 {
		panic("bitarray: numBits must be between 0 and 32")
	}
	ba.grow(ba.size + numBits)
	for n := numBits - 1; n >= 0; n-- {
		if value&(1<<uint(n)) != 0 {
			ba.Set(ba.size)
		}
		ba.size++
	}
}

// AppendBitArray appends every bit of other.
func (ba *BitArray) AppendBitArray(other *BitArray) {
	ba.grow(ba.size + other.size)
	for i := 0; i < other.size; i++ {
		ba.AppendBit(other.Get(i))
	}
}

// BitData returns the backing words.
func (ba *BitArray) BitData() []uint32 { return ba.bits }

// Clone returns a deep copy.
func (ba *BitArray) Clone() *BitArray {
	return &BitArray{bits: append([]uint32(nil), ba.bits...), size: ba.size}
}

// String renders the row with 'X' for set bits and '.' for unset ones.
func (ba *BitArray) String() string {
	var sb strings.Builder
	sb.Grow(ba.size)
	for i := 0; i < ba.size; i++ {
		if ba.Get(i) {
			sb.WriteByte('X')
		} else {
			sb.WriteByte('.')
		}
	}
	return sb.String()
}

func (ba *BitArray) grow(size int) {
	if size > len(ba.bits)*32 {
		nb := words(size + size/2)
		copy(nb, ba.bits)
		ba.bits = nb
	}
}

func words(size int) []uint32 {
	return make([]uint32, (size+31)/32)
}
