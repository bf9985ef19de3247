package oned

import (
	"log/slog"
	"slices"
	"strings"

	"github.com/ericlevine/barcodego"
	"github.com/ericlevine/barcodego/internal/logging"
	"github.com/ericlevine/barcodego/module"
)

// Escape runes that stand for the Code 128 function characters in input.
const (
	EscapeFNC1 = 'ñ'
	EscapeFNC2 = 'ò'
	EscapeFNC3 = 'ó'
	EscapeFNC4 = 'ô'
)

// codeSet is a Code 128 character set.
type codeSet int

const (
	setA codeSet = iota
	setB
	setC
)

func (s codeSet) String() string {
	return [...]string{"A", "B", "C"}[s]
}

func (s codeSet) start() int {
	return c128StartA + int(s)
}

// codeword is one encoded symbol: its value for the checksum and the
// module drawn for it.
type codeword struct {
	value int
	mod   module.Module
}

// Code128 encodes Code 128 in a fixed character set or, by default,
// choosing the set per character.
type Code128 struct {
	sym    barcodego.Symbology
	data   []rune
	start  codeSet
	forced bool
	label  string
	log    logging.Logger
}

// NewCode128 validates data for Code 128. opts.ForceCodeSet restricts
// encoding to one character set.
func NewCode128(data string, opts *barcodego.EncodeOptions) (*Code128, error) {
	o := options(opts)
	c := &Code128{
		sym:  barcodego.Code128,
		data: []rune(data),
		log:  logging.New(o.Logger, "code128"),
	}
	switch strings.ToUpper(o.ForceCodeSet) {
	case "":
		c.start = initialCodeSet(c.data)
	case "A":
		c.sym, c.start, c.forced = barcodego.Code128A, setA, true
	case "B":
		c.sym, c.start, c.forced = barcodego.Code128B, setB, true
	case "C":
		c.sym, c.start, c.forced = barcodego.Code128C, setC, true
		if n := countDigits(c.data); n%2 == 1 {
			i := 0
			for i < len(c.data) && c.data[i] == EscapeFNC1 {
				i++
			}
			c.data = slices.Insert(c.data, i, '0')
		}
	default:
		return nil, barcodego.Errorf(barcodego.Code128, data, -1, "unsupported code set %q", o.ForceCodeSet)
	}
	c.label = labelWithoutEscapes(c.data)
	if _, _, err := c.codewords(); err != nil {
		return nil, err
	}
	return c, nil
}

// newUCCCode128 encodes data, which starts with FNC1, beginning in set C.
func newUCCCode128(sym barcodego.Symbology, data []rune, label string, logger *slog.Logger) (*Code128, error) {
	c := &Code128{
		sym:   sym,
		data:  data,
		start: setC,
		label: label,
		log:   logging.New(logger, "ucc128"),
	}
	if _, _, err := c.codewords(); err != nil {
		return nil, err
	}
	return c, nil
}

// Symbology returns the symbology the encoder was built for: one of the
// Code 128 sets or a UCC/EAN-128 variant.
func (c *Code128) Symbology() barcodego.Symbology { return c.sym }

// Data returns the encoded runes, function escapes included.
func (c *Code128) Data() string { return string(c.data) }

// Label returns the human-readable text. Function escapes are dropped and
// UCC/EAN-128 variants show each application identifier in parentheses.
func (c *Code128) Label() string { return c.label }

// CodeSet returns the starting character set: "A", "B" or "C".
func (c *Code128) CodeSet() string { return c.start.String() }

// EncodeData returns the symbol characters between the start character
// and the check character, set switches included.
func (c *Code128) EncodeData() []module.Module {
	cws, _, _ := c.codewords()
	mods := make([]module.Module, len(cws))
	for i, cw := range cws {
		mods[i] = cw.mod
	}
	return mods
}

// Checksum returns the module for (start + sum of value*position) mod 103,
// taken from the character set active at the end of the data.
func (c *Code128) Checksum() module.Module {
	cws, final, _ := c.codewords()
	sum := c.start.start()
	for i, cw := range cws {
		sum += cw.value * (i + 1)
	}
	return code128Table(final).At(sum % 103)
}

// PreAmble returns the quiet zone and the start character of the
// initial set.
func (c *Code128) PreAmble() module.Module {
	start := code128Table(c.start).At(c.start.start())
	return leadIn(start)
}

// PostAmble returns the stop pattern and the quiet zone.
func (c *Code128) PostAmble() module.Module {
	return leadOut(code128C.At(c128Stop))
}

// codewords encodes the data from scratch; the scan state is local so
// repeated calls return identical results. It also returns the set active
// at the end.
func (c *Code128) codewords() ([]codeword, codeSet, error) {
	e := code128Scan{c: c, set: c.start}
	for e.pos < len(c.data) {
		if err := e.step(); err != nil {
			return nil, e.set, err
		}
	}
	return e.out, e.set, nil
}

// code128Scan is the state of one encoding pass.
type code128Scan struct {
	c   *Code128
	set codeSet
	pos int
	out []codeword
}

func (e *code128Scan) emit(s codeSet, symbol string) {
	t := code128Table(s)
	i := t.Index(symbol)
	e.out = append(e.out, codeword{value: i, mod: t.At(i)})
}

func (e *code128Scan) latch(to codeSet) {
	if e.c.log.TraceEnabled() {
		e.c.log.Trace("code set switch",
			slog.Int("pos", e.pos),
			slog.String("from", e.set.String()),
			slog.String("to", to.String()))
	}
	e.emit(e.set, "CHANGE_TO_"+to.String())
	e.set = to
}

func (e *code128Scan) fail(format string, args ...any) error {
	return barcodego.Errorf(e.c.sym, string(e.c.data), e.pos, format, args...)
}

func (e *code128Scan) step() error {
	data := e.c.data
	r := data[e.pos]

	if e.set == setC {
		switch {
		case r == EscapeFNC1:
			e.emit(setC, SymFNC1)
			e.pos++
			return nil
		case isDigit(r) && e.pos+1 < len(data) && isDigit(data[e.pos+1]):
			e.emit(setC, string(data[e.pos:e.pos+2]))
			e.pos += 2
			return nil
		case e.c.forced:
			if isDigit(r) {
				return e.fail("odd number of digits before %s", SymFNC1)
			}
			return e.fail("character %q is not encodable in code set C", r)
		case isControl(r):
			e.latch(setA)
		default:
			e.latch(setB)
		}
		return nil
	}

	if fnc := fncSymbol(r); fnc != "" {
		e.emit(e.set, fnc)
		e.pos++
		return nil
	}
	if r > 127 {
		return e.fail("character %q is not encodable in code 128", r)
	}
	if !e.c.forced && digitRun(data, e.pos) >= 4 {
		e.latch(setC)
		return nil
	}

	other := setB
	if e.set == setB {
		other = setA
	}
	if !inSet(e.set, r) {
		if e.c.forced {
			return e.fail("character %q is not encodable in code set %s", r, e.set)
		}
		// a lone character from the other set is shifted, a run latches
		if e.pos+1 < len(data) && !inSet(e.set, data[e.pos+1]) && inSet(other, data[e.pos+1]) {
			e.latch(other)
		} else {
			e.emit(e.set, SymShift)
			e.emit(other, string(r))
			e.pos++
			return nil
		}
	}
	e.emit(e.set, string(r))
	e.pos++
	return nil
}

// initialCodeSet picks the start set: C for a leading run of at least four
// digits or data made only of an even number of digits, A when the data
// starts with a control character, B otherwise. Leading FNC1s are encodable
// in every set and are skipped.
func initialCodeSet(data []rune) codeSet {
	skip := 0
	for skip < len(data) && data[skip] == EscapeFNC1 {
		skip++
	}
	n := digitRun(data, skip)
	switch {
	case n >= 4, n > 0 && n == len(data)-skip && n%2 == 0:
		return setC
	case skip < len(data) && isControl(data[skip]):
		return setA
	default:
		return setB
	}
}

// digitRun counts consecutive digits starting at pos.
func digitRun(data []rune, pos int) int {
	n := 0
	for pos+n < len(data) && isDigit(data[pos+n]) {
		n++
	}
	return n
}

func countDigits(data []rune) int {
	n := 0
	for _, r := range data {
		if isDigit(r) {
			n++
		}
	}
	return n
}

func isControl(r rune) bool {
	return r < ' '
}

func inSet(s codeSet, r rune) bool {
	switch s {
	case setA:
		return r < 96
	case setB:
		return r >= ' ' && r <= 127
	default:
		return isDigit(r)
	}
}

func fncSymbol(r rune) string {
	switch r {
	case EscapeFNC1:
		return SymFNC1
	case EscapeFNC2:
		return SymFNC2
	case EscapeFNC3:
		return SymFNC3
	case EscapeFNC4:
		return SymFNC4
	}
	return ""
}

func labelWithoutEscapes(data []rune) string {
	var sb strings.Builder
	for _, r := range data {
		if fncSymbol(r) == "" {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
