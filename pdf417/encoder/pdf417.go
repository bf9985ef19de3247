// Copyright 2006 Jeremias Maerki in part, and ZXing Authors in part.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

// Package encoder builds PDF417 symbols: high-level compaction into
// codewords, error correction, and the row/cluster layout of the bar
// matrix.
package encoder

import (
	"errors"
	"fmt"

	"github.com/ericlevine/barcodego/bitutil"
	"github.com/ericlevine/barcodego/charset"
	"github.com/ericlevine/barcodego/reedsolomon"
)

// DefaultColumns is the number of data columns used when none is given.
const DefaultColumns = 12

var (
	// ErrNotEncodable is returned for input the chosen compaction cannot
	// represent.
	ErrNotEncodable = errors.New("pdf417: not encodable")
	// ErrDataTooLong is returned when the codewords do not fit a symbol.
	ErrDataTooLong = errors.New("pdf417: data too long")
	// ErrInvalidOptions is returned for out-of-range options.
	ErrInvalidOptions = errors.New("pdf417: invalid options")
)

var ecEncoder = reedsolomon.NewEncoder(reedsolomon.PDF417Field)

// Options configures Encode.
type Options struct {
	// Columns is the number of data columns, 1-30. Zero means DefaultColumns.
	Columns int
	// ErrorCorrectionLevel is 0-8; level n adds 2^(n+1) codewords.
	ErrorCorrectionLevel int
	Compaction           Compaction
	// ECI, when set, is designated before the data so readers decode the
	// message bytes in that character set.
	ECI *charset.ECI
}

// Symbol is an encoded PDF417 symbol.
type Symbol struct {
	Rows                 int
	Columns              int
	ErrorCorrectionLevel int
	// Codewords holds the length descriptor, data, padding and error
	// correction codewords in row-major order.
	Codewords []int
	// Matrix holds one bit per module, row 0 at the top.
	Matrix *bitutil.BitMatrix
}

// ErrorCorrectionCount returns the number of error correction codewords of
// level.
func ErrorCorrectionCount(level int) int {
	return 2 << level
}

// Dimensions returns the number of rows needed for dataCount codewords
// (length descriptor included) plus ecCount error correction codewords in
// columns data columns.
func Dimensions(dataCount, ecCount, columns int) int {
	total := dataCount + ecCount
	return max((total+columns-1)/columns, MinRowsInBarcode)
}

// Encode encodes msg into a symbol.
func Encode(msg []byte, opts Options) (*Symbol, error) {
	columns := opts.Columns
	if columns == 0 {
		columns = DefaultColumns
	}
	if columns < MinColumns || columns > MaxColumns {
		return nil, fmt.Errorf("%d columns, want %d-%d: %w", columns, MinColumns, MaxColumns, ErrInvalidOptions)
	}
	level := opts.ErrorCorrectionLevel
	if level < 0 || level > MaxErrorCorrection {
		return nil, fmt.Errorf("error correction level %d, want 0-%d: %w", level, MaxErrorCorrection, ErrInvalidOptions)
	}

	data, err := EncodeHighLevel(msg, opts.Compaction)
	if err != nil {
		return nil, err
	}
	if opts.ECI != nil {
		eci, err := eciCodewords(opts.ECI.Value)
		if err != nil {
			return nil, err
		}
		data = append(eci, data...)
	}

	ecCount := ErrorCorrectionCount(level)
	rows := Dimensions(len(data)+1, ecCount, columns)
	if rows > MaxRowsInBarcode || rows*columns > MaxCodewordsInBarcode {
		return nil, fmt.Errorf("%d data codewords need %d rows of %d columns: %w", len(data), rows, columns, ErrDataTooLong)
	}

	n := rows*columns - ecCount
	codewords := make([]int, 0, rows*columns)
	codewords = append(codewords, n)
	codewords = append(codewords, data...)
	for len(codewords) < n {
		codewords = append(codewords, padCodeword)
	}
	codewords = append(codewords, ecEncoder.Encode(codewords, ecCount)...)

	return &Symbol{
		Rows:                 rows,
		Columns:              columns,
		ErrorCorrectionLevel: level,
		Codewords:            codewords,
		Matrix:               encodeLowLevel(codewords, columns, rows, level).Matrix(),
	}, nil
}

// eciCodewords returns the ECI designator for value.
func eciCodewords(value int) ([]int, error) {
	switch {
	case value < 0:
	case value < 900:
		return []int{eciCharset, value}, nil
	case value < 810900:
		return []int{eciGeneralPurpose, value/900 - 1, value % 900}, nil
	case value < 811800:
		return []int{eciUserDefined, value - 810900}, nil
	}
	return nil, fmt.Errorf("ECI value %d: %w", value, ErrInvalidOptions)
}

// encodeLowLevel draws every row: start pattern, left row indicator, the
// data codewords, right row indicator and stop pattern.
func encodeLowLevel(codewords []int, columns, rows, level int) *BarcodeMatrix {
	m := NewBarcodeMatrix(rows, columns)
	idx := 0
	for y := 0; y < rows; y++ {
		cluster := y % 3
		m.StartRow()
		m.AddPattern(startPattern, ModulesInCodeword)

		left, right := rowIndicators(y, rows, columns, level)
		m.AddPattern(clusters[cluster][left], ModulesInCodeword)
		for x := 0; x < columns; x++ {
			m.AddPattern(clusters[cluster][codewords[idx]], ModulesInCodeword)
			idx++
		}
		m.AddPattern(clusters[cluster][right], ModulesInCodeword)
		m.AddPattern(stopPattern, ModulesInStopPattern)
	}
	return m
}

// rowIndicators returns the left and right row indicator codewords of row
// y. Together the three clusters carry the row count, the column count and
// the error correction level.
func rowIndicators(y, rows, columns, level int) (left, right int) {
	base := (y / 3) * 30
	rowsValue := (rows - 1) / 3
	levelValue := level*3 + (rows-1)%3
	switch y % 3 {
	case 0:
		return base + rowsValue, base + columns - 1
	case 1:
		return base + levelValue, base + rowsValue
	default:
		return base + columns - 1, base + levelValue
	}
}
