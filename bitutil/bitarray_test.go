package bitutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBitArrayGetSet(t *testing.T) {
	ba := NewBitArray(33)
	for i := 0; i < 33; i++ {
		assert.False(t, ba.Get(i), "bit %d", i)
	}
	ba.Set(0)
	ba.Set(31)
	ba.Set(32)
	assert.True(t, ba.Get(0))
	assert.True(t, ba.Get(31))
	assert.True(t, ba.Get(32))
	assert.False(t, ba.Get(1))
	assert.False(t, ba.Get(30))
}

func TestBitArrayGetNext(t *testing.T) {
	ba := NewBitArray(64)
	ba.Set(10)
	ba.Set(40)
	assert.Equal(t, 10, ba.GetNextSet(0))
	assert.Equal(t, 10, ba.GetNextSet(10))
	assert.Equal(t, 40, ba.GetNextSet(11))
	assert.Equal(t, 64, ba.GetNextSet(41))

	assert.Equal(t, 0, ba.GetNextUnset(0))
	assert.Equal(t, 11, ba.GetNextUnset(10))

	full := NewBitArray(40)
	full.SetRange(0, 40)
	assert.Equal(t, 40, full.GetNextUnset(0))
}

func TestBitArraySetRange(t *testing.T) {
	ba := NewBitArray(80)
	ba.SetRange(4, 70)
	for i := 0; i < 80; i++ {
		assert.Equal(t, i >= 4 && i < 70, ba.Get(i), "bit %d", i)
	}
	assert.Panics(t, func() { ba.SetRange(10, 5) })
}

func TestBitArrayAppend(t *testing.T) {
	ba := &BitArray{}
	ba.AppendBit(true)
	ba.AppendBit(false)
	ba.AppendBits(0x1E, 6) // 011110
	require.Equal(t, 8, ba.Size())
	assert.Equal(t, "X..XXXX.", ba.String())

	other := NewBitArray(3)
	other.Set(2)
	ba.AppendBitArray(other)
	assert.Equal(t, "X..XXXX...X", ba.String())
}

func TestBitArrayAppendAcrossWords(t *testing.T) {
	ba := &BitArray{}
	for i := 0; i < 4; i++ {
		ba.AppendBits(0x1fea8, 17)
	}
	require.Equal(t, 68, ba.Size())
	for i := 0; i < 4; i++ {
		assert.True(t, ba.Get(i*17), "first bit of word %d", i)
	}
}

func TestBitArrayClone(t *testing.T) {
	ba := NewBitArray(16)
	ba.Set(5)
	clone := ba.Clone()
	clone.Set(10)
	assert.False(t, ba.Get(10))
	assert.True(t, clone.Get(5))
	assert.True(t, clone.Get(10))
}
