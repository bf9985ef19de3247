package barcodego

import (
	"log/slog"

	"github.com/ericlevine/barcodego/module"
)

// Compaction selects how PDF417 packs data into codewords.
type Compaction int

const (
	// CompactionByte packs every byte with byte compaction.
	CompactionByte Compaction = iota
	// CompactionAuto switches between text, numeric and byte compaction.
	CompactionAuto
	// CompactionText accepts printable ASCII, tab, CR and LF only.
	CompactionText
	// CompactionNumeric accepts digits only.
	CompactionNumeric
)

// EncodeOptions configures symbology encoders. A nil *EncodeOptions selects
// every default.
type EncodeOptions struct {
	// ForceCodeSet restricts Code 128 to one character set: "A", "B" or "C".
	// Empty selects the set per character.
	ForceCodeSet string

	// Checksum appends the optional check character of Code 39 and the
	// 2 of 5 family, and the check digit of UCC/EAN-128 data.
	Checksum bool

	// Extended encodes full ASCII in Code 39 with two-character escapes.
	Extended bool

	// ApplicationIdentifier prefixes UCC/EAN-128 data, e.g. "01".
	ApplicationIdentifier string

	// PDF417Columns is the number of data columns, 1-30. Zero means 12.
	PDF417Columns int

	// PDF417ErrorCorrection is the error correction level, 0-8; level n
	// adds 2^(n+1) codewords.
	PDF417ErrorCorrection int

	// PDF417Compaction selects the PDF417 compaction mode.
	PDF417Compaction Compaction

	// Charset names the character set PDF417 data is converted to, e.g.
	// "UTF-8" or "Shift_JIS". Any set other than ISO-8859-1 is designated
	// with an ECI. Empty means ISO-8859-1.
	Charset string

	// Logger receives debug and trace output. Nil discards it.
	Logger *slog.Logger
}

// logger returns the configured logger, or nil.
func (o *EncodeOptions) logger() *slog.Logger {
	if o == nil {
		return nil
	}
	return o.Logger
}

// Encoder turns validated data into modules. Encoders are immutable after
// construction; every method is deterministic and safe for concurrent use.
type Encoder interface {
	// Symbology returns the symbology the encoder produces.
	Symbology() Symbology

	// Data returns the normalized data.
	Data() string

	// Label returns the human readable text.
	Label() string

	// EncodeData returns the data modules in drawing order.
	EncodeData() []module.Module

	// Checksum returns the check module, or nil.
	Checksum() module.Module

	// PreAmble returns the leading quiet zone and start pattern, or nil.
	PreAmble() module.Module

	// PostAmble returns the stop pattern and trailing quiet zone, or nil.
	PostAmble() module.Module
}
