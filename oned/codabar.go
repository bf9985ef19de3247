package oned

import (
	"strings"

	"github.com/ericlevine/barcodego"
	"github.com/ericlevine/barcodego/module"
)

const codabarAlphabet = "0123456789-$:/.+ABCD"

// codabarWidths holds four bars and three spaces per character.
var codabarWidths = [20][7]int{
	{1, 1, 1, 1, 1, 2, 2}, // 0
	{1, 1, 1, 1, 2, 2, 1}, // 1
	{1, 1, 1, 2, 1, 1, 2}, // 2
	{2, 2, 1, 1, 1, 1, 1}, // 3
	{1, 1, 2, 1, 1, 2, 1}, // 4
	{2, 1, 1, 1, 1, 2, 1}, // 5
	{1, 2, 1, 1, 1, 1, 2}, // 6
	{1, 2, 1, 1, 2, 1, 1}, // 7
	{1, 2, 2, 1, 1, 1, 1}, // 8
	{2, 1, 1, 2, 1, 1, 1}, // 9
	{1, 1, 1, 2, 2, 1, 1}, // -
	{1, 1, 2, 2, 1, 1, 1}, // $
	{2, 1, 1, 1, 2, 1, 2}, // :
	{2, 1, 2, 1, 1, 1, 2}, // /
	{2, 1, 2, 1, 2, 1, 1}, // .
	{1, 1, 2, 1, 2, 1, 2}, // +
	{1, 1, 2, 2, 1, 2, 1}, // A
	{1, 2, 1, 2, 1, 1, 2}, // B
	{1, 1, 1, 2, 1, 2, 2}, // C
	{1, 1, 1, 2, 2, 2, 1}, // D
}

var codabarTable = buildCodabarTable()

func buildCodabarTable() *module.Table {
	mods := make([]module.Module, len(codabarAlphabet))
	for i := range codabarAlphabet {
		mods[i] = module.New(codabarAlphabet[i:i+1], codabarWidths[i][:]...)
	}
	return module.NewTable(mods...)
}

// Codabar encodes Codabar (NW-7). Data is framed by one start and one stop
// character from A-D; A and C are added when both are missing.
type Codabar struct {
	data string
}

// NewCodabar validates and normalizes data. The legacy start/stop aliases
// T, N, * and E (and lower case letters) map to A, B, C and D.
func NewCodabar(data string, _ *barcodego.EncodeOptions) (*Codabar, error) {
	sym := barcodego.Codabar
	runes := []rune(data)
	if len(runes) == 0 {
		return nil, barcodego.Errorf(sym, data, -1, "no data to encode")
	}
	first, last := codabarGuard(runes[0]), codabarGuard(runes[len(runes)-1])
	switch {
	case len(runes) == 1 && first != 0:
		return nil, barcodego.Errorf(sym, data, 0, "start character %q without data or stop character", runes[0])
	case first != 0 && last != 0:
		runes[0], runes[len(runes)-1] = first, last
	case first == 0 && last == 0:
		runes = append(append([]rune{'A'}, runes...), 'C')
	case first != 0:
		return nil, barcodego.Errorf(sym, data, len(runes)-1, "start character %q has no matching stop character", runes[0])
	default:
		return nil, barcodego.Errorf(sym, data, 0, "stop character %q has no matching start character", runes[len(runes)-1])
	}
	inserted := len(runes) - len([]rune(data))
	for i := 1; i < len(runes)-1; i++ {
		r := runes[i]
		if !strings.ContainsRune(codabarAlphabet[:16], r) {
			pos := i - inserted/2
			if codabarGuard(r) != 0 {
				return nil, barcodego.Errorf(sym, data, pos, "start/stop character %q inside data", r)
			}
			return nil, barcodego.Errorf(sym, data, pos, "character %q is not in the codabar set", r)
		}
	}
	return &Codabar{data: string(runes)}, nil
}

// codabarGuard returns the start/stop character r stands for, or 0.
func codabarGuard(r rune) rune {
	switch r {
	case 'A', 'a', 'T', 't':
		return 'A'
	case 'B', 'b', 'N', 'n':
		return 'B'
	case 'C', 'c', '*':
		return 'C'
	case 'D', 'd', 'E', 'e':
		return 'D'
	}
	return 0
}

// Symbology returns barcodego.Codabar.
func (c *Codabar) Symbology() barcodego.Symbology { return barcodego.Codabar }

// Data returns the data with its start and stop characters.
func (c *Codabar) Data() string { return c.data }

// Label returns the data, start and stop characters included.
func (c *Codabar) Label() string { return c.data }

// EncodeData returns one module per data character, each followed by the
// narrow inter-character space.
func (c *Codabar) EncodeData() []module.Module {
	body := c.data[1 : len(c.data)-1]
	mods := make([]module.Module, 0, len(body))
	for i := 0; i < len(body); i++ {
		m, _ := codabarTable.Lookup(body[i : i+1])
		mods = append(mods, withSeparator(m))
	}
	return mods
}

// Checksum returns nil; Codabar has no check character.
func (c *Codabar) Checksum() module.Module { return nil }

// PreAmble returns the quiet zone and the start character.
func (c *Codabar) PreAmble() module.Module {
	start, _ := codabarTable.Lookup(c.data[:1])
	return leadIn(withSeparator(start))
}

// PostAmble returns the stop character and the quiet zone.
func (c *Codabar) PostAmble() module.Module {
	stop, _ := codabarTable.Lookup(c.data[len(c.data)-1:])
	return leadOut(stop)
}
