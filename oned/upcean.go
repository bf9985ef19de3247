package oned

import (
	"strconv"

	"github.com/ericlevine/barcodego"
	"github.com/ericlevine/barcodego/checksum"
	"github.com/ericlevine/barcodego/module"
)

// upceanLWidths are the odd parity ("L") digit patterns, space first.
var upceanLWidths = [10][4]int{
	{3, 2, 1, 1}, // 0
	{2, 2, 2, 1}, // 1
	{2, 1, 2, 2}, // 2
	{1, 4, 1, 1}, // 3
	{1, 1, 3, 2}, // 4
	{1, 2, 3, 1}, // 5
	{1, 1, 1, 4}, // 6
	{1, 3, 1, 2}, // 7
	{1, 2, 1, 3}, // 8
	{3, 1, 1, 2}, // 9
}

// ean13Parity selects, per number system digit, which of the six left
// digits use the even parity ("G") patterns; bit 5 is the first digit.
var ean13Parity = [10]int{0x00, 0x0B, 0x0D, 0x0E, 0x13, 0x19, 0x1C, 0x15, 0x16, 0x1A}

// guardExtra is how far, in bar widths, guard bars reach below the digits.
const guardExtra = 5

var (
	upceanL, upceanG, upceanR = buildUPCEANTables()

	upceanEdgeGuard   = module.NewGuard("", guardExtra, 1, 1, 1)
	upceanCenterGuard = module.NewGuard("", guardExtra, 0, 1, 1, 1, 1, 1)
)

func buildUPCEANTables() (l, g, r [10]module.Module) {
	for d, w := range upceanLWidths {
		sym := strconv.Itoa(d)
		l[d] = module.New(sym, 0, w[0], w[1], w[2], w[3])
		g[d] = module.New(sym, 0, w[3], w[2], w[1], w[0])
		r[d] = module.New(sym, w[0], w[1], w[2], w[3])
	}
	return l, g, r
}

// UPCEAN encodes the fixed length retail symbologies UPC-A, EAN-13 and
// EAN-8. The check digit is always present.
type UPCEAN struct {
	sym   barcodego.Symbology
	data  string
	check int
}

// NewUPCA accepts 11 digits, or 12 when the last one is a valid check
// digit.
func NewUPCA(data string, _ *barcodego.EncodeOptions) (*UPCEAN, error) {
	return newUPCEAN(barcodego.UPCA, data, 11, checksum.UPCA)
}

// NewEAN13 accepts 12 digits, or 13 when the last one is a valid check
// digit.
func NewEAN13(data string, _ *barcodego.EncodeOptions) (*UPCEAN, error) {
	return newUPCEAN(barcodego.EAN13, data, 12, checksum.EAN13)
}

// NewEAN8 accepts 7 digits, or 8 when the last one is a valid check digit.
func NewEAN8(data string, _ *barcodego.EncodeOptions) (*UPCEAN, error) {
	return newUPCEAN(barcodego.EAN8, data, 7, checksum.UPCA)
}

func newUPCEAN(sym barcodego.Symbology, data string, n int, compute func(string) (int, error)) (*UPCEAN, error) {
	if err := checkNumeric(sym, data); err != nil {
		return nil, err
	}
	switch len(data) {
	case n:
	case n + 1:
		if !checksum.Valid(data, compute) {
			return nil, barcodego.Errorf(sym, data, n, "invalid check digit %q", data[n])
		}
		data = data[:n]
	default:
		return nil, barcodego.Errorf(sym, data, -1, "requires %d or %d digits, got %d", n, n+1, len(data))
	}
	check, err := compute(data)
	if err != nil {
		return nil, barcodego.Errorf(sym, data, -1, "%v", err)
	}
	return &UPCEAN{sym: sym, data: data, check: check}, nil
}

// Symbology returns barcodego.UPCA, barcodego.EAN13 or barcodego.EAN8.
func (u *UPCEAN) Symbology() barcodego.Symbology { return u.sym }

// Data returns the digits without the check digit.
func (u *UPCEAN) Data() string { return u.data }

// CheckDigit returns the computed check digit.
func (u *UPCEAN) CheckDigit() int { return u.check }

// Label returns the digits followed by the check digit.
func (u *UPCEAN) Label() string { return u.data + strconv.Itoa(u.check) }

// EncodeData returns the left half, the center guard and the right half
// less the check digit. The EAN-13 number system digit is carried by the
// parity of the left half rather than by bars of its own.
func (u *UPCEAN) EncodeData() []module.Module {
	digits := u.data
	parity := 0
	if u.sym == barcodego.EAN13 {
		parity = ean13Parity[digits[0]-'0']
		digits = digits[1:]
	}
	half := (len(digits) + 1) / 2
	mods := make([]module.Module, 0, len(digits)+1)
	for i := 0; i < half; i++ {
		d := digits[i] - '0'
		if parity>>(half-1-i)&1 == 1 {
			mods = append(mods, upceanG[d])
		} else {
			mods = append(mods, upceanL[d])
		}
	}
	mods = append(mods, upceanCenterGuard)
	for i := half; i < len(digits); i++ {
		mods = append(mods, upceanR[digits[i]-'0'])
	}
	return mods
}

// Checksum returns the check digit in the right half pattern.
func (u *UPCEAN) Checksum() module.Module { return upceanR[u.check] }

// PreAmble returns the quiet zone and the left guard bars.
func (u *UPCEAN) PreAmble() module.Module {
	return leadIn(upceanEdgeGuard)
}

// PostAmble returns the right guard bars and the quiet zone.
func (u *UPCEAN) PostAmble() module.Module {
	return leadOut(upceanEdgeGuard)
}
