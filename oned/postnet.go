package oned

import (
	"strconv"

	"github.com/ericlevine/barcodego"
	"github.com/ericlevine/barcodego/checksum"
	"github.com/ericlevine/barcodego/module"
)

// postnetPatterns are the five bar heights of each digit; '1' is a full
// bar. Every digit has exactly two full bars.
var postnetPatterns = [10]string{
	"11000", "00011", "00101", "00110", "01001",
	"01010", "01100", "10001", "10010", "10100",
}

var (
	postnetDigits = buildPostnetDigits()
	postnetFrame  = module.NewPostnet("", "1")
)

func buildPostnetDigits() [10]module.Module {
	var mods [10]module.Module
	for d, p := range postnetPatterns {
		mods[d] = module.NewPostnet(strconv.Itoa(d), p)
	}
	return mods
}

// Postnet encodes the USPS POSTNET height-modulated code.
type Postnet struct {
	data  string
	check int
}

// NewPostnet accepts a ZIP (5 digits), ZIP+4 (9) or delivery point (11)
// code. Dashes and spaces are ignored.
func NewPostnet(data string, _ *barcodego.EncodeOptions) (*Postnet, error) {
	sym := barcodego.Postnet
	digits := stripChars(data, "- ")
	if err := checkNumeric(sym, digits); err != nil {
		return nil, err
	}
	switch len(digits) {
	case 5, 9, 11:
	default:
		return nil, barcodego.Errorf(sym, data, -1, "requires 5, 9 or 11 digits, got %d", len(digits))
	}
	check, err := checksum.Mod10CheckDigit(digits, 1, 1, true)
	if err != nil {
		return nil, barcodego.Errorf(sym, data, -1, "%v", err)
	}
	return &Postnet{data: digits, check: check}, nil
}

// Symbology returns barcodego.Postnet.
func (p *Postnet) Symbology() barcodego.Symbology { return barcodego.Postnet }

// Data returns the digits with separators removed.
func (p *Postnet) Data() string { return p.data }

// Label returns the digits without the check digit.
func (p *Postnet) Label() string { return p.data }

// CheckDigit returns the digit that brings the digit sum to a multiple of
// ten.
func (p *Postnet) CheckDigit() int { return p.check }

// EncodeData returns five half- or full-height bars per digit.
func (p *Postnet) EncodeData() []module.Module {
	mods := make([]module.Module, len(p.data))
	for i := 0; i < len(p.data); i++ {
		mods[i] = postnetDigits[p.data[i]-'0']
	}
	return mods
}

// Checksum returns the bars of the check digit.
func (p *Postnet) Checksum() module.Module { return postnetDigits[p.check] }

// PreAmble returns the quiet zone and the leading frame bar.
func (p *Postnet) PreAmble() module.Module {
	return leadIn(postnetFrame)
}

// PostAmble returns the trailing frame bar and the quiet zone.
func (p *Postnet) PostAmble() module.Module {
	return leadOut(postnetFrame)
}
