package ink

import (
	"errors"
	"fmt"
)

// Sentinel errors for the ink package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("ink: empty font data")

	// ErrUnsupportedFormat is returned when an image carries a compressed
	// format this build cannot decode (JPEG2000, JBIG2, CCITT).
	ErrUnsupportedFormat = errors.New("ink: unsupported image format")
)

// ArgumentError reports an invalid argument to a constructor in the data
// model layer (pixmap or image creation). The rendering call path itself
// never fails; validation happens once, up front, when values are built.
type ArgumentError struct {
	Op  string // the constructor that rejected the argument
	Msg string // what was wrong with it
}

func (e *ArgumentError) Error() string {
	return "ink: " + e.Op + ": " + e.Msg
}

// argErrorf builds an *ArgumentError with a formatted message.
func argErrorf(op, format string, args ...any) error {
	return &ArgumentError{Op: op, Msg: fmt.Sprintf(format, args...)}
}
