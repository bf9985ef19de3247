// Package config loads render profiles: YAML documents that fix a
// symbology, its encoding options and the drawing geometry so repeated
// runs of the generator produce identical output.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ericlevine/barcodego"
	"github.com/ericlevine/barcodego/charset"
)

// ErrInvalidProfile is wrapped by every validation error.
var ErrInvalidProfile = errors.New("invalid profile")

// Formats lists the output formats a profile may name.
var Formats = []string{"png", "svg", "txt"}

// Profile is a render profile. Zero numeric fields select the library
// defaults; nil booleans leave the barcode's own default in place.
type Profile struct {
	Symbology  string `yaml:"symbology"`
	Format     string `yaml:"format,omitempty"`
	BarWidth   int    `yaml:"bar_width,omitempty"`
	BarHeight  int    `yaml:"bar_height,omitempty"`
	Resolution int    `yaml:"resolution,omitempty"`
	DrawText   *bool  `yaml:"draw_text,omitempty"`
	QuietZone  *bool  `yaml:"quiet_zone,omitempty"`

	// Width and Height scale a PNG to a target pixel size.
	Width  int `yaml:"width,omitempty"`
	Height int `yaml:"height,omitempty"`

	Foreground string `yaml:"foreground,omitempty"`
	Background string `yaml:"background,omitempty"`

	Checksum              bool   `yaml:"checksum,omitempty"`
	Extended              bool   `yaml:"extended,omitempty"`
	CodeSet               string `yaml:"code_set,omitempty"`
	ApplicationIdentifier string `yaml:"application_identifier,omitempty"`

	PDF417 PDF417 `yaml:"pdf417,omitempty"`
}

// PDF417 holds the PDF417 encoding options of a profile.
type PDF417 struct {
	Columns         int    `yaml:"columns,omitempty"`
	ErrorCorrection int    `yaml:"error_correction,omitempty"`
	Compaction      string `yaml:"compaction,omitempty"`
	// Charset names the character set of the data; anything other than
	// ISO-8859-1 is designated with an ECI.
	Charset string `yaml:"charset,omitempty"`
}

var compactions = map[string]barcodego.Compaction{
	"":        barcodego.CompactionByte,
	"byte":    barcodego.CompactionByte,
	"auto":    barcodego.CompactionAuto,
	"text":    barcodego.CompactionText,
	"numeric": barcodego.CompactionNumeric,
}

// Default returns the profile used when none is given: Code 128 rendered
// as PNG with black bars on white.
func Default() *Profile {
	return &Profile{
		Symbology:  barcodego.Code128.String(),
		Format:     "png",
		Foreground: "000000",
		Background: "ffffff",
	}
}

// Load reads and validates the profile at path.
func Load(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	p, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// Parse decodes a YAML profile over Default and validates it. Unknown keys
// are rejected.
func Parse(data []byte) (*Profile, error) {
	p := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(p); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidProfile, err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// Validate checks every field.
func (p *Profile) Validate() error {
	if _, err := p.SymbologyID(); err != nil {
		return invalid("%v", err)
	}
	if !isFormat(p.Format) {
		return invalid("format %q, want one of %s", p.Format, strings.Join(Formats, ", "))
	}
	for name, v := range map[string]int{
		"bar_width":  p.BarWidth,
		"bar_height": p.BarHeight,
		"resolution": p.Resolution,
		"width":      p.Width,
		"height":     p.Height,
	} {
		if v < 0 {
			return invalid("%s is negative", name)
		}
	}
	if _, err := ParseColor(p.Foreground); err != nil {
		return invalid("foreground: %v", err)
	}
	if _, err := ParseColor(p.Background); err != nil {
		return invalid("background: %v", err)
	}
	switch p.CodeSet {
	case "", "A", "B", "C":
	default:
		return invalid("code_set %q, want A, B or C", p.CodeSet)
	}
	if c := p.PDF417.Columns; c < 0 || c > 30 {
		return invalid("pdf417 columns %d, want 1-30", c)
	}
	if l := p.PDF417.ErrorCorrection; l < 0 || l > 8 {
		return invalid("pdf417 error_correction %d, want 0-8", l)
	}
	if _, ok := compactions[strings.ToLower(p.PDF417.Compaction)]; !ok {
		return invalid("pdf417 compaction %q, want byte, auto, text or numeric", p.PDF417.Compaction)
	}
	if cs := p.PDF417.Charset; cs != "" && charset.GetECIByName(cs) == nil {
		return invalid("pdf417 charset %q is unknown", cs)
	}
	return nil
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidProfile, fmt.Sprintf(format, args...))
}

func isFormat(f string) bool {
	for _, v := range Formats {
		if f == v {
			return true
		}
	}
	return false
}

// SymbologyID returns the symbology the profile names.
func (p *Profile) SymbologyID() (barcodego.Symbology, error) {
	return barcodego.ParseSymbology(p.Symbology)
}

// EncodeOptions returns the encoding options of the profile. logger may
// be nil.
func (p *Profile) EncodeOptions(logger *slog.Logger) *barcodego.EncodeOptions {
	return &barcodego.EncodeOptions{
		ForceCodeSet:          p.CodeSet,
		Checksum:              p.Checksum,
		Extended:              p.Extended,
		ApplicationIdentifier: p.ApplicationIdentifier,
		PDF417Columns:         p.PDF417.Columns,
		PDF417ErrorCorrection: p.PDF417.ErrorCorrection,
		PDF417Compaction:      compactions[strings.ToLower(p.PDF417.Compaction)],
		Charset:               p.PDF417.Charset,
		Logger:                logger,
	}
}

// Apply sets the drawing geometry of bc from the profile. Zero and nil
// fields leave bc unchanged.
func (p *Profile) Apply(bc *barcodego.Barcode) {
	if p.BarWidth > 0 {
		bc.SetBarWidth(p.BarWidth)
	}
	if p.Resolution > 0 {
		bc.SetResolution(p.Resolution)
	}
	if p.BarHeight > 0 {
		bc.SetBarHeight(p.BarHeight)
	}
	if p.DrawText != nil {
		bc.SetDrawingText(*p.DrawText)
	}
	if p.QuietZone != nil {
		bc.SetDrawingQuietSection(*p.QuietZone)
	}
}

// Colors returns the parsed foreground and background colours.
func (p *Profile) Colors() (fg, bg color.RGBA, err error) {
	if fg, err = ParseColor(p.Foreground); err != nil {
		return fg, bg, err
	}
	bg, err = ParseColor(p.Background)
	return fg, bg, err
}

var namedColors = map[string]color.RGBA{
	"black":       {0x00, 0x00, 0x00, 0xff},
	"white":       {0xff, 0xff, 0xff, 0xff},
	"transparent": {},
}

// ParseColor parses a colour given as a name (black, white, transparent)
// or as 3, 6 or 8 hex digits with an optional leading '#'.
func ParseColor(s string) (color.RGBA, error) {
	if c, ok := namedColors[strings.ToLower(s)]; ok {
		return c, nil
	}
	h := strings.TrimPrefix(s, "#")
	n, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("%q: bad colour", s)
	}
	switch len(h) {
	case 3:
		r, g, b := uint8(n>>8&0xf), uint8(n>>4&0xf), uint8(n&0xf)
		return color.RGBA{r * 0x11, g * 0x11, b * 0x11, 0xff}, nil
	case 6:
		return color.RGBA{uint8(n >> 16), uint8(n >> 8), uint8(n), 0xff}, nil
	case 8:
		return color.RGBA{uint8(n >> 24), uint8(n >> 16), uint8(n >> 8), uint8(n)}, nil
	}
	return color.RGBA{}, fmt.Errorf("%q: bad colour", s)
}
