// Package pdf417 registers the PDF417 stacked symbology with barcodego.
// The symbol is drawn as a single matrix module framed by quiet zones.
package pdf417

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/ericlevine/barcodego"
	"github.com/ericlevine/barcodego/charset"
	"github.com/ericlevine/barcodego/internal/logging"
	"github.com/ericlevine/barcodego/module"
	"github.com/ericlevine/barcodego/pdf417/encoder"
)

// QuietZone is the blank margin, in modules, left and right of the symbol.
const QuietZone = 2

// PDF417 is a PDF417 encoder. Data is converted to ISO-8859-1, or to the
// character set named in the options, before compaction.
type PDF417 struct {
	data   string
	symbol *encoder.Symbol
}

// NewPDF417 encodes data. opts selects the number of data columns, the
// error correction level, the compaction mode and the character set.
func NewPDF417(data string, opts *barcodego.EncodeOptions) (*PDF417, error) {
	var o barcodego.EncodeOptions
	if opts != nil {
		o = *opts
	}
	log := logging.New(o.Logger, "pdf417")

	eci, err := charsetOf(o.Charset)
	if err != nil {
		return nil, barcodego.Errorf(barcodego.PDF417, data, -1, "%v", err)
	}
	msg, err := eci.Encode(data)
	if err != nil {
		var ue *charset.UnencodableError
		if errors.As(err, &ue) {
			return nil, barcodego.Errorf(barcodego.PDF417, data, ue.Pos, "character %q is not in %s", ue.Rune, ue.Charset)
		}
		return nil, barcodego.Errorf(barcodego.PDF417, data, -1, "%v", err)
	}
	var designator *charset.ECI
	if eci != charset.ECIISO8859_1 {
		designator = eci
	}
	compaction, err := compactionOf(o.PDF417Compaction)
	if err != nil {
		return nil, barcodego.Errorf(barcodego.PDF417, data, -1, "%v", err)
	}
	sym, err := encoder.Encode(msg, encoder.Options{
		Columns:              o.PDF417Columns,
		ErrorCorrectionLevel: o.PDF417ErrorCorrection,
		Compaction:           compaction,
		ECI:                  designator,
	})
	if err != nil {
		return nil, barcodego.Errorf(barcodego.PDF417, data, -1, "%v", err)
	}
	log.Debug("pdf417 layout",
		slog.Int("rows", sym.Rows),
		slog.Int("columns", sym.Columns),
		slog.Int("codewords", len(sym.Codewords)),
		slog.Int("level", sym.ErrorCorrectionLevel),
		slog.String("compaction", compaction.String()),
		slog.String("charset", eci.Name))
	return &PDF417{data: data, symbol: sym}, nil
}

// charsetOf looks up a character set by name. Empty selects ISO-8859-1.
func charsetOf(name string) (*charset.ECI, error) {
	if name == "" {
		return charset.ECIISO8859_1, nil
	}
	eci := charset.GetECIByName(name)
	if eci == nil {
		return nil, fmt.Errorf("unknown character set %q", name)
	}
	return eci, nil
}

func compactionOf(c barcodego.Compaction) (encoder.Compaction, error) {
	switch c {
	case barcodego.CompactionByte:
		return encoder.CompactionByte, nil
	case barcodego.CompactionAuto:
		return encoder.CompactionAuto, nil
	case barcodego.CompactionText:
		return encoder.CompactionText, nil
	case barcodego.CompactionNumeric:
		return encoder.CompactionNumeric, nil
	}
	return 0, errors.New("unknown compaction mode")
}

// Symbology returns barcodego.PDF417.
func (p *PDF417) Symbology() barcodego.Symbology { return barcodego.PDF417 }

// Data returns the data as given, before charset conversion.
func (p *PDF417) Data() string { return p.data }

// Label returns the data. The facade draws no text under 2D symbols.
func (p *PDF417) Label() string { return p.data }

// Rows returns the number of rows in the symbol.
func (p *PDF417) Rows() int { return p.symbol.Rows }

// Columns returns the number of data columns.
func (p *PDF417) Columns() int { return p.symbol.Columns }

// Codewords returns every codeword of the symbol: length descriptor, data,
// padding and error correction.
func (p *PDF417) Codewords() []int {
	return append([]int(nil), p.symbol.Codewords...)
}

// EncodeData returns the whole symbol as one matrix module.
func (p *PDF417) EncodeData() []module.Module {
	return []module.Module{module.NewMatrix(p.data, p.symbol.Matrix)}
}

// Checksum returns nil; the error correction codewords are part of the
// matrix.
func (p *PDF417) Checksum() module.Module { return nil }

// PreAmble returns the quiet zone left of the start pattern.
func (p *PDF417) PreAmble() module.Module { return module.NewBlank(QuietZone) }

// PostAmble returns the quiet zone right of the stop pattern.
func (p *PDF417) PostAmble() module.Module { return module.NewBlank(QuietZone) }
