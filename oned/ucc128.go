package oned

import (
	"log/slog"
	"strconv"
	"strings"

	"github.com/ericlevine/barcodego"
	"github.com/ericlevine/barcodego/checksum"
)

// NewUCCEAN128 encodes data as UCC/EAN-128: FNC1, then
// opts.ApplicationIdentifier, then data. With opts.Checksum a check digit
// is appended; for AI 01 it is the GTIN check digit.
func NewUCCEAN128(data string, opts *barcodego.EncodeOptions) (*Code128, error) {
	o := options(opts)
	return newUCC(barcodego.UCCEAN128, o.ApplicationIdentifier, data, o.Checksum, o.Logger)
}

// NewSSCC18 encodes a Serial Shipping Container Code: AI 00 with 17
// digits and a check digit. An 18-digit input must carry a valid check
// digit.
func NewSSCC18(data string, opts *barcodego.EncodeOptions) (*Code128, error) {
	return newFixedUCC(barcodego.SSCC18, "00", data, 17, opts)
}

// NewSCC14 encodes a Shipping Container Code: AI 01 with 13 digits and a
// check digit.
func NewSCC14(data string, opts *barcodego.EncodeOptions) (*Code128, error) {
	return newFixedUCC(barcodego.SCC14, "01", data, 13, opts)
}

// NewGTIN encodes a Global Trade Item Number under AI 01. GTIN-8, GTIN-12
// and GTIN-13 payloads are padded with leading zeros.
func NewGTIN(data string, opts *barcodego.EncodeOptions) (*Code128, error) {
	if err := checkNumeric(barcodego.GTIN, data); err != nil {
		return nil, err
	}
	if len(data) < 13 && len(data) >= 7 {
		data = strings.Repeat("0", 13-len(data)) + data
	}
	return newFixedUCC(barcodego.GTIN, "01", data, 13, opts)
}

// NewShipmentID encodes a Shipment Identification Number: AI 402 with 16
// digits and a check digit.
func NewShipmentID(data string, opts *barcodego.EncodeOptions) (*Code128, error) {
	return newFixedUCC(barcodego.ShipmentID, "402", data, 16, opts)
}

func newFixedUCC(sym barcodego.Symbology, ai, data string, n int, opts *barcodego.EncodeOptions) (*Code128, error) {
	if err := checkNumeric(sym, data); err != nil {
		return nil, err
	}
	switch len(data) {
	case n:
	case n + 1:
		if !checksum.Valid(data, checksum.GTIN) {
			return nil, barcodego.Errorf(sym, data, n, "invalid check digit %q", data[n])
		}
		data = data[:n]
	default:
		return nil, barcodego.Errorf(sym, data, -1, "want %d digits, got %d", n, len(data))
	}
	return newUCC(sym, ai, data, true, options(opts).Logger)
}

func newUCC(sym barcodego.Symbology, ai, data string, withCheck bool, logger *slog.Logger) (*Code128, error) {
	value := data
	if withCheck {
		if err := checkNumeric(sym, data); err != nil {
			return nil, err
		}
		var d int
		var err error
		if ai == "01" {
			d, err = checksum.GTIN(data)
		} else {
			d, err = checksum.Mod10CheckDigit(data, 3, 1, len(data)%2 == 1)
		}
		if err != nil {
			return nil, barcodego.Errorf(sym, data, -1, "%v", err)
		}
		value += strconv.Itoa(d)
	}
	label := value
	if ai != "" {
		if err := checkAIValue(sym, data, ai, value, false); err != nil {
			return nil, err
		}
		label = aiLabel(ai, value)
	}
	runes := append([]rune{EscapeFNC1}, []rune(ai+value)...)
	return newUCCCode128(sym, runes, label, logger)
}

// NewEAN128 encodes pre-formatted "(AI)value" groups such as
// "(01)09501101530003(17)140704(10)AB-123". Variable-length values that
// are not last are terminated with FNC1. The label separates the groups
// with spaces: "(01) 09501101530003 (17) 140704 (10) AB-123".
func NewEAN128(data string, opts *barcodego.EncodeOptions) (*Code128, error) {
	sym := barcodego.EAN128
	groups, err := parseAIGroups(data)
	if err != nil {
		return nil, err
	}
	runes := []rune{EscapeFNC1}
	labels := make([]string, 0, len(groups))
	for i, g := range groups {
		if err := checkAIValue(sym, data, g.ai, g.value, true); err != nil {
			return nil, err
		}
		n, fixed := fixedAILength(g.ai)
		if fixed && len(g.ai)+len(g.value) != n {
			return nil, barcodego.Errorf(sym, data, -1, "application identifier %s needs %d characters with its value, got %d", g.ai, n, len(g.ai)+len(g.value))
		}
		runes = append(runes, []rune(g.ai+g.value)...)
		if !fixed && i < len(groups)-1 {
			runes = append(runes, EscapeFNC1)
		}
		labels = append(labels, aiLabel(g.ai, g.value))
	}
	return newUCCCode128(sym, runes, strings.Join(labels, " "), options(opts).Logger)
}

type aiGroup struct {
	ai, value string
}

func parseAIGroups(data string) ([]aiGroup, error) {
	sym := barcodego.EAN128
	var groups []aiGroup
	pos := 0
	for pos < len(data) {
		if data[pos] != '(' {
			return nil, barcodego.Errorf(sym, data, pos, "expected '(' before application identifier")
		}
		end := strings.IndexByte(data[pos:], ')')
		if end < 0 {
			return nil, barcodego.Errorf(sym, data, pos, "unterminated application identifier")
		}
		ai := data[pos+1 : pos+end]
		if len(ai) < 2 || len(ai) > 4 || checkNumeric(sym, ai) != nil {
			return nil, barcodego.Errorf(sym, data, pos+1, "invalid application identifier %q", ai)
		}
		pos += end + 1
		next := strings.IndexByte(data[pos:], '(')
		if next < 0 {
			next = len(data) - pos
		}
		value := data[pos : pos+next]
		if value == "" {
			return nil, barcodego.Errorf(sym, data, pos, "no value for application identifier %s", ai)
		}
		groups = append(groups, aiGroup{ai: ai, value: value})
		pos += next
	}
	return groups, nil
}

// checkAIValue validates value against the application identifier table.
// verifyCheck additionally verifies embedded GS1 check digits.
func checkAIValue(sym barcodego.Symbology, data, ai, value string, verifyCheck bool) error {
	def, ok := lookupAI(ai)
	if !ok {
		return barcodego.Errorf(sym, data, -1, "unknown application identifier %q", ai)
	}
	if len(value) < def.min || len(value) > def.max {
		if def.min == def.max {
			return barcodego.Errorf(sym, data, -1, "application identifier %s needs %d characters, got %d", ai, def.min, len(value))
		}
		return barcodego.Errorf(sym, data, -1, "application identifier %s needs %d to %d characters, got %d", ai, def.min, def.max, len(value))
	}
	for i := 0; i < len(value); i++ {
		c := value[i]
		if def.numeric && !isDigit(rune(c)) {
			return barcodego.Errorf(sym, data, -1, "application identifier %s needs digits, got %q", ai, c)
		}
		if c < ' ' || c > 126 {
			return barcodego.Errorf(sym, data, -1, "character %q is not allowed in application identifier %s", c, ai)
		}
	}
	if verifyCheck && def.gtinCheck && !checksum.Valid(value, checksum.GTIN) {
		return barcodego.Errorf(sym, data, -1, "invalid check digit in application identifier %s", ai)
	}
	return nil
}
