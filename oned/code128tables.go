package oned

import (
	"fmt"

	"github.com/ericlevine/barcodego/module"
)

// Code 128 symbol values shared by every character set.
const (
	c128FNC3   = 96
	c128FNC2   = 97
	c128Shift  = 98
	c128CodeC  = 99
	c128FNC1   = 102
	c128StartA = 103
	c128StartB = 104
	c128StartC = 105
	c128Stop   = 106
)

// Module symbols for the Code 128 control values.
const (
	SymChangeToA = "CHANGE_TO_A"
	SymChangeToB = "CHANGE_TO_B"
	SymChangeToC = "CHANGE_TO_C"
	SymShift     = "SHIFT"
	SymFNC1      = "FNC1"
	SymFNC2      = "FNC2"
	SymFNC3      = "FNC3"
	SymFNC4      = "FNC4"
	SymStartA    = "START_A"
	SymStartB    = "START_B"
	SymStartC    = "START_C"
	SymStop      = "STOP"
)

// code128Widths holds the bar/space widths of every symbol value.
var code128Widths = [107][]int{
	{2, 1, 2, 2, 2, 2}, // 0
	{2, 2, 2, 1, 2, 2}, // 1
	{2, 2, 2, 2, 2, 1}, // 2
	{1, 2, 1, 2, 2, 3}, // 3
	{1, 2, 1, 3, 2, 2}, // 4
	{1, 3, 1, 2, 2, 2}, // 5
	{1, 2, 2, 2, 1, 3}, // 6
	{1, 2, 2, 3, 1, 2}, // 7
	{1, 3, 2, 2, 1, 2}, // 8
	{2, 2, 1, 2, 1, 3}, // 9
	{2, 2, 1, 3, 1, 2}, // 10
	{2, 3, 1, 2, 1, 2}, // 11
	{1, 1, 2, 2, 3, 2}, // 12
	{1, 2, 2, 1, 3, 2}, // 13
	{1, 2, 2, 2, 3, 1}, // 14
	{1, 1, 3, 2, 2, 2}, // 15
	{1, 2, 3, 1, 2, 2}, // 16
	{1, 2, 3, 2, 2, 1}, // 17
	{2, 2, 3, 2, 1, 1}, // 18
	{2, 2, 1, 1, 3, 2}, // 19
	{2, 2, 1, 2, 3, 1}, // 20
	{2, 1, 3, 2, 1, 2}, // 21
	{2, 2, 3, 1, 1, 2}, // 22
	{3, 1, 2, 1, 3, 1}, // 23
	{3, 1, 1, 2, 2, 2}, // 24
	{3, 2, 1, 1, 2, 2}, // 25
	{3, 2, 1, 2, 2, 1}, // 26
	{3, 1, 2, 2, 1, 2}, // 27
	{3, 2, 2, 1, 1, 2}, // 28
	{3, 2, 2, 2, 1, 1}, // 29
	{2, 1, 2, 1, 2, 3}, // 30
	{2, 1, 2, 3, 2, 1}, // 31
	{2, 3, 2, 1, 2, 1}, // 32
	{1, 1, 1, 3, 2, 3}, // 33
	{1, 3, 1, 1, 2, 3}, // 34
	{1, 3, 1, 3, 2, 1}, // 35
	{1, 1, 2, 3, 1, 3}, // 36
	{1, 3, 2, 1, 1, 3}, // 37
	{1, 3, 2, 3, 1, 1}, // 38
	{2, 1, 1, 3, 1, 3}, // 39
	{2, 3, 1, 1, 1, 3}, // 40
	{2, 3, 1, 3, 1, 1}, // 41
	{1, 1, 2, 1, 3, 3}, // 42
	{1, 1, 2, 3, 3, 1}, // 43
	{1, 3, 2, 1, 3, 1}, // 44
	{1, 1, 3, 1, 2, 3}, // 45
	{1, 1, 3, 3, 2, 1}, // 46
	{1, 3, 3, 1, 2, 1}, // 47
	{3, 1, 3, 1, 2, 1}, // 48
	{2, 1, 1, 3, 3, 1}, // 49
	{2, 3, 1, 1, 3, 1}, // 50
	{2, 1, 3, 1, 1, 3}, // 51
	{2, 1, 3, 3, 1, 1}, // 52
	{2, 1, 3, 1, 3, 1}, // 53
	{3, 1, 1, 1, 2, 3}, // 54
	{3, 1, 1, 3, 2, 1}, // 55
	{3, 3, 1, 1, 2, 1}, // 56
	{3, 1, 2, 1, 1, 3}, // 57
	{3, 1, 2, 3, 1, 1}, // 58
	{3, 3, 2, 1, 1, 1}, // 59
	{3, 1, 4, 1, 1, 1}, // 60
	{2, 2, 1, 4, 1, 1}, // 61
	{4, 3, 1, 1, 1, 1}, // 62
	{1, 1, 1, 2, 2, 4}, // 63
	{1, 1, 1, 4, 2, 2}, // 64
	{1, 2, 1, 1, 2, 4}, // 65
	{1, 2, 1, 4, 2, 1}, // 66
	{1, 4, 1, 1, 2, 2}, // 67
	{1, 4, 1, 2, 2, 1}, // 68
	{1, 1, 2, 2, 1, 4}, // 69
	{1, 1, 2, 4, 1, 2}, // 70
	{1, 2, 2, 1, 1, 4}, // 71
	{1, 2, 2, 4, 1, 1}, // 72
	{1, 4, 2, 1, 1, 2}, // 73
	{1, 4, 2, 2, 1, 1}, // 74
	{2, 4, 1, 2, 1, 1}, // 75
	{2, 2, 1, 1, 1, 4}, // 76
	{4, 1, 3, 1, 1, 1}, // 77
	{2, 4, 1, 1, 1, 2}, // 78
	{1, 3, 4, 1, 1, 1}, // 79
	{1, 1, 1, 2, 4, 2}, // 80
	{1, 2, 1, 1, 4, 2}, // 81
	{1, 2, 1, 2, 4, 1}, // 82
	{1, 1, 4, 2, 1, 2}, // 83
	{1, 2, 4, 1, 1, 2}, // 84
	{1, 2, 4, 2, 1, 1}, // 85
	{4, 1, 1, 2, 1, 2}, // 86
	{4, 2, 1, 1, 1, 2}, // 87
	{4, 2, 1, 2, 1, 1}, // 88
	{2, 1, 2, 1, 4, 1}, // 89
	{2, 1, 4, 1, 2, 1}, // 90
	{4, 1, 2, 1, 2, 1}, // 91
	{1, 1, 1, 1, 4, 3}, // 92
	{1, 1, 1, 3, 4, 1}, // 93
	{1, 3, 1, 1, 4, 1}, // 94
	{1, 1, 4, 1, 1, 3}, // 95
	{1, 1, 4, 3, 1, 1}, // 96
	{4, 1, 1, 1, 1, 3}, // 97
	{4, 1, 1, 3, 1, 1}, // 98
	{1, 1, 3, 1, 4, 1}, // 99
	{1, 1, 4, 1, 3, 1}, // 100
	{3, 1, 1, 1, 4, 1}, // 101
	{4, 1, 1, 1, 3, 1}, // 102
	{2, 1, 1, 4, 1, 2}, // 103
	{2, 1, 1, 2, 1, 4}, // 104
	{2, 1, 1, 2, 3, 2}, // 105
	{2, 3, 3, 1, 1, 1, 2}, // 106
}

var (
	code128A = buildCode128Table(setA)
	code128B = buildCode128Table(setB)
	code128C = buildCode128Table(setC)
)

// code128Table returns the symbol table of a character set.
func code128Table(s codeSet) *module.Table {
	switch s {
	case setA:
		return code128A
	case setB:
		return code128B
	default:
		return code128C
	}
}

func buildCode128Table(s codeSet) *module.Table {
	mods := make([]module.Module, len(code128Widths))
	for v, w := range code128Widths {
		mods[v] = module.New(code128Symbol(s, v), w...)
	}
	return module.NewTable(mods...)
}

// code128Symbol names value v in character set s.
func code128Symbol(s codeSet, v int) string {
	switch v {
	case c128FNC3:
		if s != setC {
			return SymFNC3
		}
	case c128FNC2:
		if s != setC {
			return SymFNC2
		}
	case c128Shift:
		if s != setC {
			return SymShift
		}
	case c128CodeC:
		if s != setC {
			return SymChangeToC
		}
	case 100:
		switch s {
		case setA:
			return SymChangeToB
		case setB:
			return SymFNC4
		default:
			return SymChangeToB
		}
	case 101:
		switch s {
		case setA:
			return SymFNC4
		default:
			return SymChangeToA
		}
	case c128FNC1:
		return SymFNC1
	case c128StartA:
		return SymStartA
	case c128StartB:
		return SymStartB
	case c128StartC:
		return SymStartC
	case c128Stop:
		return SymStop
	}
	switch s {
	case setA:
		if v < 64 {
			return string(rune(' ' + v))
		}
		return string(rune(v - 64))
	case setB:
		return string(rune(' ' + v))
	default:
		return fmt.Sprintf("%02d", v)
	}
}
