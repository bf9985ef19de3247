package oned

import (
	"strings"

	"github.com/ericlevine/barcodego"
	"github.com/ericlevine/barcodego/checksum"
	"github.com/ericlevine/barcodego/module"
)

// code39Encodings holds the nine-element pattern of every character in
// checksum.Code39Charset order; a set bit, most significant first, is a
// wide element.
var code39Encodings = [43]int{
	0x034, 0x121, 0x061, 0x160, 0x031, 0x130, 0x070, 0x025, 0x124, 0x064, // 0-9
	0x109, 0x049, 0x148, 0x019, 0x118, 0x058, 0x00D, 0x10C, 0x04C, 0x01C, // A-J
	0x103, 0x043, 0x142, 0x013, 0x112, 0x052, 0x007, 0x106, 0x046, 0x016, // K-T
	0x181, 0x0C1, 0x1C0, 0x091, 0x190, 0x0D0, 0x085, 0x184, 0x0C4, 0x0A8, // U-$
	0x0A2, 0x08A, 0x02A, // /-%
}

const code39Asterisk = 0x094

// code39MaxLength bounds the encoded length, escapes included.
const code39MaxLength = 80

var (
	code39Table = buildCode39Table()
	code39Start = code39Module("*", code39Asterisk)
)

func buildCode39Table() *module.Table {
	mods := make([]module.Module, len(code39Encodings))
	for i, enc := range code39Encodings {
		mods[i] = code39Module(checksum.Code39Charset[i:i+1], enc)
	}
	return module.NewTable(mods...)
}

func code39Module(symbol string, enc int) *module.Bars {
	widths := make([]int, 9)
	for i := range widths {
		widths[i] = 1
		if enc&(1<<uint(8-i)) != 0 {
			widths[i] = 2
		}
	}
	return module.New(symbol, widths...)
}

// Code39 encodes Code 39, optionally with the mod 43 check character and
// full ASCII escapes.
type Code39 struct {
	sym       barcodego.Symbology
	data      string
	encoded   string
	withCheck bool
}

// NewCode39 validates data for Code 39. With opts.Extended every ASCII
// character outside the base set is escaped with a two-character sequence;
// otherwise such characters are rejected. opts.Checksum appends the mod 43
// check character.
func NewCode39(data string, opts *barcodego.EncodeOptions) (*Code39, error) {
	o := options(opts)
	c := &Code39{sym: barcodego.Code39, data: data, withCheck: o.Checksum}
	if o.Extended {
		c.sym = barcodego.Code39Extended
	}
	var sb strings.Builder
	pos := 0
	for _, r := range data {
		switch {
		case strings.ContainsRune(checksum.Code39Charset, r):
			sb.WriteRune(r)
		case o.Extended && r < 128:
			sb.WriteString(code39Escape(byte(r)))
		case o.Extended:
			return nil, barcodego.Errorf(c.sym, data, pos, "character %q is not ASCII", r)
		default:
			return nil, barcodego.Errorf(c.sym, data, pos, "character %q is not in the code 39 set", r)
		}
		pos++
	}
	c.encoded = sb.String()
	if len(c.encoded) > code39MaxLength {
		return nil, barcodego.Errorf(c.sym, data, -1, "encoded length %d exceeds %d characters", len(c.encoded), code39MaxLength)
	}
	return c, nil
}

// NewCode39Extended is NewCode39 with full ASCII escapes enabled.
func NewCode39Extended(data string, opts *barcodego.EncodeOptions) (*Code39, error) {
	o := options(opts)
	o.Extended = true
	return NewCode39(data, &o)
}

// Symbology returns barcodego.Code39 or barcodego.Code39Extended.
func (c *Code39) Symbology() barcodego.Symbology { return c.sym }

// Data returns the data as given.
func (c *Code39) Data() string { return c.data }

// Encoded returns the data after full ASCII escaping.
func (c *Code39) Encoded() string { return c.encoded }

// Label returns the unescaped data.
func (c *Code39) Label() string { return c.data }

// EncodeData returns one module per input character, each followed by the
// inter-character gap. Escaped characters yield a two-character module.
func (c *Code39) EncodeData() []module.Module {
	var mods []module.Module
	for _, r := range c.data {
		var parts []module.Module
		s := string(r)
		if !strings.ContainsRune(checksum.Code39Charset, r) {
			s = code39Escape(byte(r))
		}
		for i := 0; i < len(s); i++ {
			m, _ := code39Table.Lookup(s[i : i+1])
			parts = append(parts, withSeparator(m))
		}
		if len(parts) == 1 {
			mods = append(mods, parts[0])
		} else {
			mods = append(mods, module.NewComposite(parts...))
		}
	}
	return mods
}

// Checksum returns the mod 43 check character when requested.
func (c *Code39) Checksum() module.Module {
	if !c.withCheck {
		return nil
	}
	// encoded holds only base characters
	idx, _ := checksum.Mod43CheckIndex(c.encoded)
	return withSeparator(code39Table.At(idx))
}

// PreAmble returns the quiet zone and the "*" start character.
func (c *Code39) PreAmble() module.Module {
	return leadIn(withSeparator(code39Start))
}

// PostAmble returns the "*" stop character and the quiet zone.
func (c *Code39) PostAmble() module.Module {
	return leadOut(code39Start)
}

// code39Escape returns the full ASCII escape sequence for c.
func code39Escape(c byte) string {
	switch {
	case c == 0:
		return "%U"
	case c == '@':
		return "%V"
	case c == '`':
		return "%W"
	case c <= 26:
		return "$" + string(rune('A'+c-1))
	case c < ' ':
		return "%" + string(rune('A'+c-27))
	case c <= ',' || c == '/' || c == ':':
		return "/" + string(rune('A'+c-33))
	case c <= '?':
		return "%" + string(rune('F'+c-59))
	case c <= '_':
		return "%" + string(rune('K'+c-91))
	case c <= 'z':
		return "+" + string(rune('A'+c-97))
	default:
		return "%" + string(rune('P'+c-123))
	}
}
