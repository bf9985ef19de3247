package oned

import (
	"strings"

	"github.com/ericlevine/barcodego"
	"github.com/ericlevine/barcodego/module"
)

// code93Alphabet lists the 47 Code 93 characters in check value order.
// The lower case letters stand for the four shift characters.
const code93Alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ-. $/+%abcd"

// code93Encodings are nine-module patterns, most significant bit first,
// where a set bit is a dark module.
var code93Encodings = [47]int{
	0x114, 0x148, 0x144, 0x142, 0x128, 0x124, 0x122, 0x150, 0x112, 0x10A, // 0-9
	0x1A8, 0x1A4, 0x1A2, 0x194, 0x192, 0x18A, 0x168, 0x164, 0x162, 0x134, // A-J
	0x11A, 0x158, 0x14C, 0x146, 0x12C, 0x116, 0x1B4, 0x1B2, 0x1AC, 0x1A6, // K-T
	0x196, 0x19A, 0x16C, 0x166, 0x136, 0x13A, // U-Z
	0x12E, 0x1D4, 0x1D2, 0x1CA, 0x16E, 0x176, 0x1AE, // - . space $ / + %
	0x126, 0x1DA, 0x1D6, 0x132, // shifts
}

const (
	code93Asterisk  = 0x15E
	code93MaxLength = 80
)

var (
	code93Table   = buildCode93Table()
	code93Start   = code93Module("*", code93Asterisk)
	code93TermBar = module.New("", 1)
)

func buildCode93Table() *module.Table {
	mods := make([]module.Module, len(code93Encodings))
	for i, enc := range code93Encodings {
		mods[i] = code93Module(code93Alphabet[i:i+1], enc)
	}
	return module.NewTable(mods...)
}

// code93Module converts a module pattern into run widths.
func code93Module(symbol string, enc int) *module.Bars {
	var widths []int
	prev := true
	run := 0
	for i := 8; i >= 0; i-- {
		dark := enc&(1<<uint(i)) != 0
		if dark != prev {
			widths = append(widths, run)
			run = 0
			prev = dark
		}
		run++
	}
	return module.New(symbol, append(widths, run)...)
}

// Code93 encodes Code 93 with its two mandatory check characters. Every
// ASCII character is accepted; those outside the base set are sent as a
// shift pair.
type Code93 struct {
	data    string
	encoded string
}

// NewCode93 validates data for Code 93.
func NewCode93(data string, _ *barcodego.EncodeOptions) (*Code93, error) {
	sym := barcodego.Code93
	var b strings.Builder
	for i, r := range []rune(data) {
		if r > 127 {
			return nil, barcodego.Errorf(sym, data, i, "character %q is not ASCII", r)
		}
		b.WriteString(code93Escape(byte(r)))
	}
	encoded := b.String()
	if len(encoded) > code93MaxLength {
		return nil, barcodego.Errorf(sym, data, -1, "encodes to %d characters, more than %d", len(encoded), code93MaxLength)
	}
	return &Code93{data: data, encoded: encoded}, nil
}

// Symbology returns barcodego.Code93.
func (c *Code93) Symbology() barcodego.Symbology { return barcodego.Code93 }

// Data returns the data as given.
func (c *Code93) Data() string { return c.data }

// Encoded returns the data after shift substitution.
func (c *Code93) Encoded() string { return c.encoded }

// Label returns the data as given.
func (c *Code93) Label() string { return c.data }

// EncodeData returns one module per character of Encoded.
func (c *Code93) EncodeData() []module.Module {
	mods := make([]module.Module, len(c.encoded))
	for i := 0; i < len(c.encoded); i++ {
		mods[i], _ = code93Table.Lookup(c.encoded[i : i+1])
	}
	return mods
}

// Checksum returns the C and K check characters.
func (c *Code93) Checksum() module.Module {
	check1 := code93CheckIndex(c.encoded, 20)
	check2 := code93CheckIndex(c.encoded+code93Alphabet[check1:check1+1], 15)
	return module.NewComposite(code93Table.At(check1), code93Table.At(check2))
}

// PreAmble returns the quiet zone and the start character.
func (c *Code93) PreAmble() module.Module {
	return leadIn(code93Start)
}

// PostAmble returns the stop character, the termination bar and the
// quiet zone.
func (c *Code93) PostAmble() module.Module {
	return leadOut(code93Start, code93TermBar)
}

// code93CheckIndex weights characters 1, 2, ... from the right, wrapping
// after maxWeight.
func code93CheckIndex(s string, maxWeight int) int {
	weight := 1
	total := 0
	for i := len(s) - 1; i >= 0; i-- {
		total += strings.IndexByte(code93Alphabet, s[i]) * weight
		weight++
		if weight > maxWeight {
			weight = 1
		}
	}
	return total % 47
}

// code93Escape returns the base characters for c, using the shift
// characters a-d for anything outside the base set.
func code93Escape(c byte) string {
	switch {
	case c == 0:
		return "bU"
	case c <= 26:
		return string([]byte{'a', 'A' + c - 1})
	case c <= 31:
		return string([]byte{'b', 'A' + c - 27})
	case c == ' ', c == '$', c == '%', c == '+':
		return string(c)
	case c <= ',':
		return string([]byte{'c', 'A' + c - '!'})
	case c <= '9':
		return string(c)
	case c == ':':
		return "cZ"
	case c <= '?':
		return string([]byte{'b', 'F' + c - ';'})
	case c == '@':
		return "bV"
	case c <= 'Z':
		return string(c)
	case c <= '_':
		return string([]byte{'b', 'K' + c - '['})
	case c == '`':
		return "bW"
	case c <= 'z':
		return string([]byte{'d', 'A' + c - 'a'})
	default:
		return string([]byte{'b', 'P' + c - '{'})
	}
}
