// Copyright 2011 ZXing authors. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

// Ported from Java ZXing library.

package encoder

import "github.com/ericlevine/barcodego/bitutil"

// BarcodeMatrix collects the rows of a symbol, one module per bit.
type BarcodeMatrix struct {
	rows       []*bitutil.BitArray
	currentRow int
	width      int
}

// NewBarcodeMatrix creates a BarcodeMatrix for height rows of columns data
// codewords each.
func NewBarcodeMatrix(height, columns int) *BarcodeMatrix {
	m := &BarcodeMatrix{
		rows:       make([]*bitutil.BitArray, height),
		currentRow: -1,
		width:      (columns+4)*ModulesInCodeword + 1,
	}
	for i := range m.rows {
		m.rows[i] = bitutil.NewBitArray(0)
	}
	return m
}

// StartRow moves on to the next row.
func (bm *BarcodeMatrix) StartRow() {
	bm.currentRow++
}

// AddPattern appends the low numModules bits of pattern to the current row.
func (bm *BarcodeMatrix) AddPattern(pattern uint32, numModules int) {
	bm.rows[bm.currentRow].AppendBits(pattern, numModules)
}

// Width returns the number of modules in a row.
func (bm *BarcodeMatrix) Width() int { return bm.width }

// Matrix returns the symbol with row 0 at the top.
func (bm *BarcodeMatrix) Matrix() *bitutil.BitMatrix {
	out := bitutil.NewBitMatrixWithSize(bm.width, len(bm.rows))
	for y, row := range bm.rows {
		out.SetRow(y, row)
	}
	return out
}
