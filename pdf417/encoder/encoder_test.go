package encoder

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ericlevine/barcodego/bitutil"
	"github.com/ericlevine/barcodego/charset"
	"github.com/ericlevine/barcodego/reedsolomon"
)

func TestEncodeHighLevel(t *testing.T) {
	tests := []struct {
		name       string
		msg        string
		compaction Compaction
		want       []int
	}{
		{"byte sixpack", "ABCDEF", CompactionByte, []int{924, 109, 326, 368, 127, 330}},
		{"byte padded", "AB", CompactionByte, []int{901, 65, 66}},
		{"text alpha", "ABC", CompactionText, []int{1, 89}},
		{"text lower latch", "Ab", CompactionText, []int{27, 59}},
		{"text mixed latch", "A1", CompactionText, []int{28, 59}},
		{"numeric", "1234567890123", CompactionNumeric, []int{902, 17, 110, 836, 811, 223}},
		{"auto numeric", "1234567890123", CompactionAuto, []int{902, 17, 110, 836, 811, 223}},
		{"auto text then byte shift", "ABCDE\xff", CompactionAuto, []int{1, 63, 149, 913, 255}},
		{"auto short bytes", "ab", CompactionAuto, []int{901, 97, 98}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := EncodeHighLevel([]byte(tc.msg), tc.compaction)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestEncodeHighLevelErrors(t *testing.T) {
	_, err := EncodeHighLevel(nil, CompactionByte)
	assert.ErrorIs(t, err, ErrNotEncodable)
	_, err = EncodeHighLevel([]byte("A\xffB"), CompactionText)
	assert.ErrorIs(t, err, ErrNotEncodable)
	_, err = EncodeHighLevel([]byte("12a"), CompactionNumeric)
	assert.ErrorIs(t, err, ErrNotEncodable)
	_, err = EncodeHighLevel([]byte("x"), Compaction(42))
	assert.ErrorIs(t, err, ErrInvalidOptions)
}

func TestCodewordCount(t *testing.T) {
	for _, n := range []int{1, 5, 6, 7, 12, 30, 31, 47, 48, 60, 100, 250} {
		t.Run(fmt.Sprint(n), func(t *testing.T) {
			sym, err := Encode([]byte(strings.Repeat("x", n)), Options{})
			require.NoError(t, err)

			outlen := 2 + (n/6)*5 + n%6 + 2
			rows := max((outlen+DefaultColumns-1)/DefaultColumns, MinRowsInBarcode)
			assert.Equal(t, rows, sym.Rows)
			assert.Equal(t, DefaultColumns, sym.Columns)
			assert.Len(t, sym.Codewords, rows*DefaultColumns)
			assert.Equal(t, rows*DefaultColumns-2, sym.Codewords[0], "length descriptor")
			for _, cw := range sym.Codewords[outlen-2 : len(sym.Codewords)-2] {
				assert.Equal(t, padCodeword, cw)
			}
		})
	}
}

func TestErrorCorrectionRoots(t *testing.T) {
	field := reedsolomon.PDF417Field
	for level := 0; level <= 4; level++ {
		t.Run(fmt.Sprint(level), func(t *testing.T) {
			sym, err := Encode([]byte("PDF417 error correction"), Options{ErrorCorrectionLevel: level, Columns: 5})
			require.NoError(t, err)
			poly := reedsolomon.NewPoly(field, sym.Codewords)
			for i := 1; i <= ErrorCorrectionCount(level); i++ {
				assert.Zero(t, poly.EvaluateAt(field.Exp(i)), "root 3^%d", i)
			}
		})
	}
}

func TestMatrixLayout(t *testing.T) {
	sym, err := Encode([]byte("Hello, World!"), Options{Columns: 3})
	require.NoError(t, err)
	m := sym.Matrix
	assert.Equal(t, (3+4)*ModulesInCodeword+1, m.Width())
	assert.Equal(t, sym.Rows, m.Height())

	start := bitutil.NewBitArray(0)
	start.AppendBits(startPattern, ModulesInCodeword)
	stop := bitutil.NewBitArray(0)
	stop.AppendBits(stopPattern, ModulesInStopPattern)
	var row *bitutil.BitArray
	for y := 0; y < m.Height(); y++ {
		row = m.Row(y, row)
		for i := 0; i < ModulesInCodeword; i++ {
			assert.Equal(t, start.Get(i), row.Get(i), "row %d start module %d", y, i)
		}
		offset := m.Width() - ModulesInStopPattern
		for i := 0; i < ModulesInStopPattern; i++ {
			assert.Equal(t, stop.Get(i), row.Get(offset+i), "row %d stop module %d", y, i)
		}
	}
}

func TestRowIndicators(t *testing.T) {
	tests := []struct {
		y, rows, cols, level int
		left, right          int
	}{
		{0, 3, 12, 0, 0, 11},
		{1, 3, 12, 0, 2, 0},
		{2, 3, 12, 0, 11, 2},
		{3, 10, 5, 2, 33, 34},
		{4, 10, 5, 2, 36, 33},
		{5, 10, 5, 2, 34, 36},
	}
	for _, tc := range tests {
		left, right := rowIndicators(tc.y, tc.rows, tc.cols, tc.level)
		assert.Equal(t, tc.left, left, "left indicator of row %d", tc.y)
		assert.Equal(t, tc.right, right, "right indicator of row %d", tc.y)
	}
}

// Each cluster is identified by (b1 - b2 + b3 - b4 + 9) mod 9 over the
// widths of its four bars.
func TestClusterPatterns(t *testing.T) {
	for c := 0; c < 3; c++ {
		for v, pattern := range clusters[c] {
			var bars []int
			run, dark := 0, true
			for i := ModulesInCodeword - 1; i >= 0; i-- {
				bit := pattern&(1<<uint(i)) != 0
				if bit != dark {
					if dark {
						bars = append(bars, run)
					}
					run, dark = 0, bit
				}
				run++
			}
			require.Len(t, bars, 4, "cluster %d value %d", c, v)
			assert.Equal(t, c*3, (bars[0]-bars[1]+bars[2]-bars[3]+9)%9, "cluster %d value %d", c, v)
		}
	}
}

func TestEncodeErrors(t *testing.T) {
	tests := []struct {
		name string
		msg  []byte
		opts Options
		want error
	}{
		{"too many columns", []byte("x"), Options{Columns: 31}, ErrInvalidOptions},
		{"negative columns", []byte("x"), Options{Columns: -1}, ErrInvalidOptions},
		{"level too high", []byte("x"), Options{ErrorCorrectionLevel: 9}, ErrInvalidOptions},
		{"too long", make([]byte, 2000), Options{}, ErrDataTooLong},
		{"too many rows", make([]byte, 200), Options{Columns: 1}, ErrDataTooLong},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Encode(tc.msg, tc.opts)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tc.want), err)
		})
	}
}

func TestECICodewords(t *testing.T) {
	tests := []struct {
		value int
		want  []int
	}{
		{26, []int{927, 26}},
		{899, []int{927, 899}},
		{900, []int{926, 0, 0}},
		{1234, []int{926, 0, 334}},
		{810899, []int{926, 899, 899}},
		{810900, []int{925, 0}},
		{811799, []int{925, 899}},
	}
	for _, tc := range tests {
		got, err := eciCodewords(tc.value)
		require.NoError(t, err, tc.value)
		assert.Equal(t, tc.want, got, tc.value)
	}
	for _, v := range []int{-1, 811800} {
		_, err := eciCodewords(v)
		assert.ErrorIs(t, err, ErrInvalidOptions)
	}
}

func TestEncodeECI(t *testing.T) {
	sym, err := Encode([]byte("AB"), Options{ECI: charset.ECIUTF8})
	require.NoError(t, err)
	assert.Equal(t, []int{927, 26, 901, 65, 66}, sym.Codewords[1:6])
}
