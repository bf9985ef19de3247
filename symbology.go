// Package barcodego encodes text into one- and two-dimensional barcode
// symbologies and draws the result onto a pluggable output surface.
//
// Symbology encoders live in sub-packages that register themselves on
// import:
//
//	import (
//		"github.com/ericlevine/barcodego"
//		_ "github.com/ericlevine/barcodego/oned"
//		_ "github.com/ericlevine/barcodego/pdf417"
//	)
//
//	bc, err := barcodego.New(barcodego.Code128, "BBQ1234", nil)
package barcodego

import (
	"fmt"
	"slices"
	"strings"
)

// Symbology identifies a barcode encoding standard.
type Symbology int

const (
	// Code128 selects the character set per character (optimal mode).
	Code128 Symbology = iota
	Code128A
	Code128B
	Code128C
	// UCCEAN128 is Code 128 prefixed with FNC1 and an optional
	// application identifier.
	UCCEAN128
	// EAN128 parses "(AI)value" groups.
	EAN128
	SSCC18
	SCC14
	GTIN
	ShipmentID
	Code39
	Code39Extended
	// Code93 always carries its two check characters and encodes full
	// ASCII through shift pairs.
	Code93
	Codabar
	UPCA
	EAN13
	EAN8
	Std2of5
	Int2of5
	Postnet
	PDF417
)

var symbologyNames = map[Symbology]string{
	Code128:        "CODE_128",
	Code128A:       "CODE_128_A",
	Code128B:       "CODE_128_B",
	Code128C:       "CODE_128_C",
	UCCEAN128:      "UCC_EAN_128",
	EAN128:         "EAN_128",
	SSCC18:         "SSCC_18",
	SCC14:          "SCC_14",
	GTIN:           "GTIN",
	ShipmentID:     "SHIPMENT_ID",
	Code39:         "CODE_39",
	Code39Extended: "CODE_39_EXTENDED",
	Code93:         "CODE_93",
	Codabar:        "CODABAR",
	UPCA:           "UPC_A",
	EAN13:          "EAN_13",
	EAN8:           "EAN_8",
	Std2of5:        "STD_2_OF_5",
	Int2of5:        "INT_2_OF_5",
	Postnet:        "POSTNET",
	PDF417:         "PDF_417",
}

var symbologyAliases = map[string]Symbology{
	"USD3":       Code39,
	"USD4":       Codabar,
	"NW7":        Codabar,
	"MONARCH":    Codabar,
	"2OF7":       Codabar,
	"ITF":        Int2of5,
	"ITF14":      Int2of5,
	"UCC128":     UCCEAN128,
	"GS1128":     EAN128,
	"EAN":        EAN13,
	"UPC":        UPCA,
	"PDF":        PDF417,
	"SIN":        ShipmentID,
	"CODE128OPT": Code128,
}

// String returns the canonical name of the symbology.
func (s Symbology) String() string {
	if name, ok := symbologyNames[s]; ok {
		return name
	}
	return "UNKNOWN"
}

// Is2D reports whether the symbology stacks rows of codewords.
func (s Symbology) Is2D() bool {
	return s == PDF417
}

// ParseSymbology looks up a symbology by name. Case, '-', '_' and spaces
// are ignored, so "code128", "Code-128" and "CODE_128" are equivalent.
func ParseSymbology(name string) (Symbology, error) {
	key := normalizeName(name)
	for s, n := range symbologyNames {
		if normalizeName(n) == key {
			return s, nil
		}
	}
	if s, ok := symbologyAliases[key]; ok {
		return s, nil
	}
	return 0, fmt.Errorf("unknown symbology %q", name)
}

// Symbologies returns every known symbology in declaration order.
func Symbologies() []Symbology {
	all := make([]Symbology, 0, len(symbologyNames))
	for s := range symbologyNames {
		all = append(all, s)
	}
	slices.Sort(all)
	return all
}

func normalizeName(name string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '-', '_', ' ':
			return -1
		}
		if r >= 'a' && r <= 'z' {
			return r - 'a' + 'A'
		}
		return r
	}, name)
}
