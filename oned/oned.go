// Package oned implements the linear symbologies: Code 128 and UCC/EAN-128,
// Code 39, Codabar, UPC-A, EAN-13, EAN-8, the 2 of 5 family and POSTNET.
// Importing the package registers every encoder with barcodego.
package oned

import (
	"strings"

	"github.com/ericlevine/barcodego"
	"github.com/ericlevine/barcodego/module"
)

// QuietZone is the blank margin, in bar units, framing each symbol.
const QuietZone = 10

// leadIn prefixes the start pattern parts with the quiet zone.
func leadIn(start ...module.Module) module.Module {
	return module.NewComposite(append([]module.Module{module.NewBlank(QuietZone)}, start...)...)
}

// leadOut follows the stop pattern parts with the quiet zone.
func leadOut(stop ...module.Module) module.Module {
	return module.NewComposite(append(stop, module.NewBlank(QuietZone))...)
}

// withSeparator appends a one-unit inter-character gap to m.
func withSeparator(m module.Module) module.Module {
	return module.NewComposite(m, module.NewSeparator(1))
}

// checkNumeric returns an encoding error naming the first non-digit.
func checkNumeric(s barcodego.Symbology, data string) error {
	pos := 0
	for _, c := range data {
		if c < '0' || c > '9' {
			return barcodego.Errorf(s, data, pos, "character %q is not a digit", c)
		}
		pos++
	}
	return nil
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// options returns opts, or the zero options when opts is nil.
func options(opts *barcodego.EncodeOptions) barcodego.EncodeOptions {
	if opts == nil {
		return barcodego.EncodeOptions{}
	}
	return *opts
}

// stripChars removes every rune in cutset from s.
func stripChars(s, cutset string) string {
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(cutset, r) {
			return -1
		}
		return r
	}, s)
}
