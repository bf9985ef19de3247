package barcodego

import (
	"fmt"

	"github.com/ericlevine/barcodego/module"
)

// Factory creates an encoder for data.
type Factory func(data string, opts *EncodeOptions) (Encoder, error)

var factories = map[Symbology]Factory{}

// RegisterEncoder registers the factory for a symbology. Sub-packages call
// it from init.
func RegisterEncoder(s Symbology, f Factory) {
	factories[s] = f
}

// Registered reports whether an encoder is registered for s.
func Registered(s Symbology) bool {
	_, ok := factories[s]
	return ok
}

// NewEncoder validates data and returns an encoder for it.
func NewEncoder(s Symbology, data string, opts *EncodeOptions) (Encoder, error) {
	f, ok := factories[s]
	if !ok {
		return nil, fmt.Errorf("no encoder registered for %s: %w", s, ErrEncoding)
	}
	if data == "" {
		return nil, Errorf(s, data, -1, "no data to encode")
	}
	return f(data, opts)
}

// Encode returns every module of data in drawing order: preamble, data,
// checksum and postamble.
func Encode(s Symbology, data string, opts *EncodeOptions) ([]module.Module, error) {
	enc, err := NewEncoder(s, data, opts)
	if err != nil {
		return nil, err
	}
	return Modules(enc), nil
}

// Modules lists the modules of enc in drawing order, skipping absent ones.
func Modules(enc Encoder) []module.Module {
	var all []module.Module
	if m := enc.PreAmble(); m != nil {
		all = append(all, m)
	}
	all = append(all, enc.EncodeData()...)
	if m := enc.Checksum(); m != nil {
		all = append(all, m)
	}
	if m := enc.PostAmble(); m != nil {
		all = append(all, m)
	}
	return all
}
