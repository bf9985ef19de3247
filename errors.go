package barcodego

import (
	"errors"
	"fmt"
)

// ErrEncoding is matched by every error returned for input a symbology
// cannot encode.
var ErrEncoding = errors.New("encoding error")

// EncodingError describes why data could not be encoded.
type EncodingError struct {
	Symbology Symbology
	Data      string
	// Pos is the rune offset of the offending character, or -1.
	Pos int
	Msg string
}

func (e *EncodingError) Error() string {
	if e.Pos >= 0 {
		return fmt.Sprintf("%s: %s (position %d)", e.Symbology, e.Msg, e.Pos)
	}
	return fmt.Sprintf("%s: %s", e.Symbology, e.Msg)
}

func (e *EncodingError) Unwrap() error { return ErrEncoding }

// Errorf returns an *EncodingError for data with a formatted message.
func Errorf(s Symbology, data string, pos int, format string, args ...any) error {
	return &EncodingError{Symbology: s, Data: data, Pos: pos, Msg: fmt.Sprintf(format, args...)}
}
