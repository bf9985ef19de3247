package module

import (
	"encoding/binary"
	"slices"

	"github.com/cespare/xxhash/v2"
)

type heighted interface {
	Heights() []int
}

// Equal reports whether a and b print identically: same widths and, for
// height-coded and matrix modules, the same heights or bits. Symbols are
// not compared.
func Equal(a, b Module) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ma, aMatrix := a.(*Matrix)
	mb, bMatrix := b.(*Matrix)
	if aMatrix || bMatrix {
		return aMatrix && bMatrix && ma.bits.Equals(mb.bits)
	}
	if !slices.Equal(a.Widths(), b.Widths()) {
		return false
	}
	ha, aok := a.(heighted)
	hb, bok := b.(heighted)
	if aok != bok {
		return false
	}
	return !aok || slices.Equal(ha.Heights(), hb.Heights())
}

// Hash returns a hash consistent with Equal.
func Hash(m Module) uint64 {
	if m == nil {
		return 0
	}
	d := xxhash.New()
	if mx, ok := m.(*Matrix); ok {
		d.WriteString(mx.bits.String())
		return d.Sum64()
	}
	var buf [8]byte
	write := func(v int) {
		binary.LittleEndian.PutUint64(buf[:], uint64(v))
		d.Write(buf[:])
	}
	for _, w := range m.Widths() {
		write(w)
	}
	if h, ok := m.(heighted); ok {
		write(-1)
		for _, v := range h.Heights() {
			write(v)
		}
	}
	return d.Sum64()
}
