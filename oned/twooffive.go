package oned

import (
	"strconv"

	"github.com/ericlevine/barcodego"
	"github.com/ericlevine/barcodego/checksum"
	"github.com/ericlevine/barcodego/module"
)

// twoOfFiveWidths holds the five elements of every digit; two of them are
// wide.
var twoOfFiveWidths = [10][5]int{
	{1, 1, 3, 3, 1}, // 0
	{3, 1, 1, 1, 3}, // 1
	{1, 3, 1, 1, 3}, // 2
	{3, 3, 1, 1, 1}, // 3
	{1, 1, 3, 1, 3}, // 4
	{3, 1, 3, 1, 1}, // 5
	{1, 3, 3, 1, 1}, // 6
	{1, 1, 1, 3, 3}, // 7
	{3, 1, 1, 3, 1}, // 8
	{1, 3, 1, 3, 1}, // 9
}

var (
	std2of5Start = module.New("", 3, 1, 3, 1, 1, 1)
	std2of5Stop  = module.New("", 3, 1, 1, 1, 3)
	int2of5Start = module.New("", 1, 1, 1, 1)
	int2of5Stop  = module.New("", 3, 1, 1)

	std2of5Digits = buildStd2of5Digits()
)

// buildStd2of5Digits lays each digit out as five bars, each followed by a
// narrow space.
func buildStd2of5Digits() [10]module.Module {
	var mods [10]module.Module
	for d, bars := range twoOfFiveWidths {
		widths := make([]int, 0, 10)
		for _, b := range bars {
			widths = append(widths, b, 1)
		}
		mods[d] = module.New(strconv.Itoa(d), widths...)
	}
	return mods
}

// mod10 is the 2 of 5 check digit: weight 3 on the rightmost digit and
// every second digit before it.
func mod10(data string) (int, error) {
	return checksum.Mod10CheckDigit(data, 3, 1, len(data)%2 == 1)
}

// Std2of5 encodes Standard (Industrial) 2 of 5, where only the bars carry
// information.
type Std2of5 struct {
	data  string
	check int
}

// NewStd2of5 validates digits; opts.Checksum appends the mod 10 check
// digit.
func NewStd2of5(data string, opts *barcodego.EncodeOptions) (*Std2of5, error) {
	if err := checkNumeric(barcodego.Std2of5, data); err != nil {
		return nil, err
	}
	s := &Std2of5{data: data, check: -1}
	if options(opts).Checksum {
		check, err := mod10(data)
		if err != nil {
			return nil, barcodego.Errorf(barcodego.Std2of5, data, -1, "%v", err)
		}
		s.check = check
	}
	return s, nil
}

// Symbology returns barcodego.Std2of5.
func (s *Std2of5) Symbology() barcodego.Symbology { return barcodego.Std2of5 }

// Data returns the digits as given.
func (s *Std2of5) Data() string { return s.data }

// Label returns the digits followed by the check digit when one was
// requested.
func (s *Std2of5) Label() string {
	if s.check < 0 {
		return s.data
	}
	return s.data + strconv.Itoa(s.check)
}

// EncodeData returns one five-bar module per digit.
func (s *Std2of5) EncodeData() []module.Module {
	mods := make([]module.Module, len(s.data))
	for i := 0; i < len(s.data); i++ {
		mods[i] = std2of5Digits[s.data[i]-'0']
	}
	return mods
}

// Checksum returns the mod 10 check digit module, or nil when no check
// digit was requested.
func (s *Std2of5) Checksum() module.Module {
	if s.check < 0 {
		return nil
	}
	return std2of5Digits[s.check]
}

// PreAmble returns the quiet zone and the start pattern.
func (s *Std2of5) PreAmble() module.Module {
	return leadIn(std2of5Start)
}

// PostAmble returns the stop pattern and the quiet zone.
func (s *Std2of5) PostAmble() module.Module {
	return leadOut(std2of5Stop)
}

// Int2of5 encodes Interleaved 2 of 5: the first digit of each pair is
// carried by the bars, the second by the spaces between them.
type Int2of5 struct {
	data      string
	withCheck bool
}

// NewInt2of5 validates digits. Without opts.Checksum the data needs an
// even length. With it the check digit is appended and, when the result
// would be odd, a leading zero is added.
func NewInt2of5(data string, opts *barcodego.EncodeOptions) (*Int2of5, error) {
	sym := barcodego.Int2of5
	if err := checkNumeric(sym, data); err != nil {
		return nil, err
	}
	if !options(opts).Checksum {
		if len(data)%2 != 0 {
			return nil, barcodego.Errorf(sym, data, -1, "requires an even number of digits, got %d", len(data))
		}
		return &Int2of5{data: data}, nil
	}
	check, err := mod10(data)
	if err != nil {
		return nil, barcodego.Errorf(sym, data, -1, "%v", err)
	}
	digits := data + strconv.Itoa(check)
	if len(digits)%2 != 0 {
		digits = "0" + digits
	}
	return &Int2of5{data: digits, withCheck: true}, nil
}

// Symbology returns barcodego.Int2of5.
func (i *Int2of5) Symbology() barcodego.Symbology { return barcodego.Int2of5 }

// Data returns the encoded digits less the check digit, including any
// leading zero added for pairing.
func (i *Int2of5) Data() string {
	if i.withCheck {
		return i.data[:len(i.data)-1]
	}
	return i.data
}

// Label returns the encoded digits, the pairing zero and the check digit
// included.
func (i *Int2of5) Label() string { return i.data }

// EncodeData returns one module per digit pair, bars from the first digit
// interleaved with spaces from the second. The pair carrying the check
// digit is left to Checksum.
func (i *Int2of5) EncodeData() []module.Module {
	n := len(i.data)
	if i.withCheck {
		n -= 2
	}
	mods := make([]module.Module, 0, n/2)
	for p := 0; p < n; p += 2 {
		mods = append(mods, int2of5Pair(i.data[p:p+2]))
	}
	return mods
}

// Checksum returns the last pair, whose spaces carry the check digit, or
// nil when no check digit was requested.
func (i *Int2of5) Checksum() module.Module {
	if !i.withCheck {
		return nil
	}
	return int2of5Pair(i.data[len(i.data)-2:])
}

func int2of5Pair(pair string) module.Module {
	bars, spaces := twoOfFiveWidths[pair[0]-'0'], twoOfFiveWidths[pair[1]-'0']
	widths := make([]int, 0, 10)
	for j := range bars {
		widths = append(widths, bars[j], spaces[j])
	}
	return module.New(pair, widths...)
}

// PreAmble returns the quiet zone and the narrow bar-space start pattern.
func (i *Int2of5) PreAmble() module.Module {
	return leadIn(int2of5Start)
}

// PostAmble returns the wide-bar stop pattern and the quiet zone.
func (i *Int2of5) PostAmble() module.Module {
	return leadOut(int2of5Stop)
}
