// Copyright 2006 Jeremias Maerki in part, and ZXing Authors in part.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

// Ported from Java ZXing library.

package encoder

import (
	"fmt"
	"math/big"
)

// Compaction mode constants
const (
	textCompaction    = 0
	byteCompaction    = 1
	numericCompaction = 2
)

// Text compaction submode constants
const (
	submodeAlpha       = 0
	submodeLower       = 1
	submodeMixed       = 2
	submodePunctuation = 3
)

// Mode latch and shift constants
const (
	latchToText       = 900
	latchToBytePadded = 901
	latchToNumeric    = 902
	shiftToByte       = 913
	latchToByte       = 924
)

// Compaction selects how message bytes are packed into codewords.
type Compaction int

const (
	// CompactionByte packs six bytes into five codewords.
	CompactionByte Compaction = iota
	// CompactionAuto switches between text, numeric and byte compaction
	// as described in annex P of ISO/IEC 15438.
	CompactionAuto
	// CompactionText forces text compaction; only printable ASCII, tab,
	// CR and LF are allowed.
	CompactionText
	// CompactionNumeric forces numeric compaction; only digits are allowed.
	CompactionNumeric
)

func (c Compaction) String() string {
	switch c {
	case CompactionByte:
		return "byte"
	case CompactionAuto:
		return "auto"
	case CompactionText:
		return "text"
	case CompactionNumeric:
		return "numeric"
	}
	return fmt.Sprintf("Compaction(%d)", int(c))
}

// textMixedRaw is the raw code table for text compaction Mixed sub-mode.
var textMixedRaw = []byte{
	48, 49, 50, 51, 52, 53, 54, 55, 56, 57, 38, 13, 9, 44, 58,
	35, 45, 46, 36, 47, 43, 37, 42, 61, 94, 0, 32, 0, 0, 0,
}

// textPunctuationRaw is the raw code table for text compaction Punctuation sub-mode.
var textPunctuationRaw = []byte{
	59, 60, 62, 64, 91, 92, 93, 95, 96, 126, 33, 13, 9, 44, 58,
	10, 45, 46, 36, 47, 34, 124, 42, 40, 41, 63, 123, 125, 39, 0,
}

var (
	mixed       = inverse(textMixedRaw)
	punctuation = inverse(textPunctuationRaw)
)

func inverse(raw []byte) [128]int {
	var table [128]int
	for i := range table {
		table[i] = -1
	}
	for i, b := range raw {
		if b > 0 {
			table[b] = i
		}
	}
	return table
}

// EncodeHighLevel converts msg into data codewords, starting in text
// compaction as every symbol does. The result excludes the symbol length
// descriptor.
func EncodeHighLevel(msg []byte, compaction Compaction) ([]int, error) {
	if len(msg) == 0 {
		return nil, fmt.Errorf("empty message: %w", ErrNotEncodable)
	}

	var cw []int
	switch compaction {
	case CompactionByte:
		cw = encodeBinary(msg, byteCompaction, cw)

	case CompactionText:
		for i, ch := range msg {
			if !isText(ch) {
				return nil, fmt.Errorf("byte 0x%02x at position %d is not text: %w", ch, i, ErrNotEncodable)
			}
		}
		cw, _ = encodeText(msg, submodeAlpha, cw)

	case CompactionNumeric:
		for i, ch := range msg {
			if !isDigit(ch) {
				return nil, fmt.Errorf("byte 0x%02x at position %d is not a digit: %w", ch, i, ErrNotEncodable)
			}
		}
		cw = append(cw, latchToNumeric)
		cw = encodeNumeric(msg, cw)

	case CompactionAuto:
		cw = encodeAuto(msg, cw)

	default:
		return nil, fmt.Errorf("unknown compaction %v: %w", compaction, ErrInvalidOptions)
	}
	return cw, nil
}

func encodeAuto(msg []byte, cw []int) []int {
	encodingMode := textCompaction // Default mode, see 4.4.2.1
	textSubMode := submodeAlpha
	p := 0
	for p < len(msg) {
		n := consecutiveDigitCount(msg, p)
		if n >= 13 {
			cw = append(cw, latchToNumeric)
			encodingMode = numericCompaction
			textSubMode = submodeAlpha // Reset after latch
			cw = encodeNumeric(msg[p:p+n], cw)
			p += n
			continue
		}
		t := consecutiveTextCount(msg, p)
		if t >= 5 || n == len(msg) {
			if encodingMode != textCompaction {
				cw = append(cw, latchToText)
				encodingMode = textCompaction
				textSubMode = submodeAlpha // start with submode alpha after latch
			}
			cw, textSubMode = encodeText(msg[p:p+t], textSubMode, cw)
			p += t
			continue
		}
		b := max(consecutiveBinaryCount(msg, p), 1)
		if b == 1 && encodingMode == textCompaction {
			// Switch for one byte (instead of latch)
			cw = encodeBinary(msg[p:p+1], textCompaction, cw)
		} else {
			// Mode latch performed by encodeBinary()
			cw = encodeBinary(msg[p:p+b], encodingMode, cw)
			encodingMode = byteCompaction
			textSubMode = submodeAlpha // Reset after latch
		}
		p += b
	}
	return cw
}

// encodeText encodes msg using Text Compaction as described in ISO/IEC
// 15438:2001(E), chapter 4.4.2, and returns the submode it ends in.
func encodeText(msg []byte, initialSubmode int, cw []int) ([]int, int) {
	tmp := make([]int, 0, len(msg))
	submode := initialSubmode
	idx := 0

	for idx < len(msg) {
		ch := msg[idx]
		switch submode {
		case submodeAlpha:
			if isAlphaUpper(ch) {
				if ch == ' ' {
					tmp = append(tmp, 26) // space
				} else {
					tmp = append(tmp, int(ch-65))
				}
			} else if isAlphaLower(ch) {
				submode = submodeLower
				tmp = append(tmp, 27) // ll
				continue
			} else if isMixed(ch) {
				submode = submodeMixed
				tmp = append(tmp, 28) // ml
				continue
			} else {
				tmp = append(tmp, 29, punctuation[ch]) // ps
			}

		case submodeLower:
			if isAlphaLower(ch) {
				if ch == ' ' {
					tmp = append(tmp, 26) // space
				} else {
					tmp = append(tmp, int(ch-97))
				}
			} else if isAlphaUpper(ch) {
				tmp = append(tmp, 27, int(ch-65)) // as
			} else if isMixed(ch) {
				submode = submodeMixed
				tmp = append(tmp, 28) // ml
				continue
			} else {
				tmp = append(tmp, 29, punctuation[ch]) // ps
			}

		case submodeMixed:
			if isMixed(ch) {
				tmp = append(tmp, mixed[ch])
			} else if isAlphaUpper(ch) {
				submode = submodeAlpha
				tmp = append(tmp, 28) // al
				continue
			} else if isAlphaLower(ch) {
				submode = submodeLower
				tmp = append(tmp, 27) // ll
				continue
			} else if idx+1 < len(msg) && isPunctuation(msg[idx+1]) {
				submode = submodePunctuation
				tmp = append(tmp, 25) // pl
				continue
			} else {
				tmp = append(tmp, 29, punctuation[ch]) // ps
			}

		default: // submodePunctuation
			if isPunctuation(ch) {
				tmp = append(tmp, punctuation[ch])
			} else {
				submode = submodeAlpha
				tmp = append(tmp, 29) // al
				continue
			}
		}
		idx++
	}

	h := 0
	for i, v := range tmp {
		if i%2 != 0 {
			cw = append(cw, h*30+v)
		} else {
			h = v
		}
	}
	if len(tmp)%2 != 0 {
		cw = append(cw, h*30+29) // ps
	}
	return cw, submode
}

// encodeBinary encodes data using Byte Compaction as described in ISO/IEC
// 15438:2001(E), chapter 4.4.3.
func encodeBinary(data []byte, startmode int, cw []int) []int {
	switch {
	case len(data) == 1 && startmode == textCompaction:
		cw = append(cw, shiftToByte)
	case len(data)%6 == 0:
		cw = append(cw, latchToByte)
	default:
		cw = append(cw, latchToBytePadded)
	}

	idx := 0
	// Encode sixpacks
	var chars [5]int
	for len(data)-idx >= 6 {
		var t int64
		for i := 0; i < 6; i++ {
			t = t<<8 | int64(data[idx+i])
		}
		for i := 4; i >= 0; i-- {
			chars[i] = int(t % 900)
			t /= 900
		}
		cw = append(cw, chars[:]...)
		idx += 6
	}
	// Encode rest (remaining n<6 bytes if any)
	for _, b := range data[idx:] {
		cw = append(cw, int(b))
	}
	return cw
}

// encodeNumeric encodes digits using Numeric Compaction: groups of up to 44
// digits, prefixed with 1, written in base 900.
func encodeNumeric(digits []byte, cw []int) []int {
	num900 := big.NewInt(900)
	for idx := 0; idx < len(digits); {
		length := min(44, len(digits)-idx)
		bigint, _ := new(big.Int).SetString("1"+string(digits[idx:idx+length]), 10)

		var tmp []int
		mod := new(big.Int)
		for bigint.Sign() != 0 {
			bigint.DivMod(bigint, num900, mod)
			tmp = append(tmp, int(mod.Int64()))
		}
		for i := len(tmp) - 1; i >= 0; i-- {
			cw = append(cw, tmp[i])
		}
		idx += length
	}
	return cw
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isAlphaUpper(ch byte) bool {
	return ch == ' ' || (ch >= 'A' && ch <= 'Z')
}

func isAlphaLower(ch byte) bool {
	return ch == ' ' || (ch >= 'a' && ch <= 'z')
}

func isMixed(ch byte) bool {
	return ch < 128 && mixed[ch] != -1
}

func isPunctuation(ch byte) bool {
	return ch < 128 && punctuation[ch] != -1
}

func isText(ch byte) bool {
	return ch == '\t' || ch == '\n' || ch == '\r' || (ch >= 32 && ch <= 126)
}

// consecutiveDigitCount counts the digits starting at startpos.
func consecutiveDigitCount(msg []byte, startpos int) int {
	count := 0
	for idx := startpos; idx < len(msg) && isDigit(msg[idx]); idx++ {
		count++
	}
	return count
}

// consecutiveTextCount counts the characters starting at startpos that
// text compaction should take, stopping before a run of 13 digits.
func consecutiveTextCount(msg []byte, startpos int) int {
	idx := startpos
	for idx < len(msg) {
		numericCount := 0
		for numericCount < 13 && idx < len(msg) && isDigit(msg[idx]) {
			numericCount++
			idx++
		}
		if numericCount >= 13 {
			return idx - startpos - numericCount
		}
		if numericCount > 0 {
			// Heuristic: All text-encodable chars or digits are binary encodable
			continue
		}
		if !isText(msg[idx]) {
			break
		}
		idx++
	}
	return idx - startpos
}

// consecutiveBinaryCount counts the bytes starting at startpos that byte
// compaction should take, stopping before a run of 13 digits.
func consecutiveBinaryCount(msg []byte, startpos int) int {
	idx := startpos
	for idx < len(msg) {
		numericCount := 0
		for i := idx; numericCount < 13 && i < len(msg) && isDigit(msg[i]); i++ {
			numericCount++
		}
		if numericCount >= 13 {
			return idx - startpos
		}
		idx++
	}
	return idx - startpos
}
