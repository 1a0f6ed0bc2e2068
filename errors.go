package memcomparable

import (
	"errors"
	"fmt"
)

// Sentinel errors that carry no dynamic detail.
var (
	// ErrUtf8 is returned when a byte string decoded as text is not valid UTF-8.
	ErrUtf8 = errors.New("memcomparable: invalid utf-8")

	// ErrTrailingCharacters is returned by FromSlice when bytes remain in
	// the input after a successful top-level decode.
	ErrTrailingCharacters = errors.New("memcomparable: trailing characters")

	// ErrUnexpectedEOF is returned whenever a Get call runs out of input
	// before a fixed-width field can be fully read.
	ErrUnexpectedEOF = errors.New("memcomparable: unexpected end of buffer")
)

// NotSupportedError is returned for requests that are structurally outside
// this format: maps, self-describing (deserialize_any-style) decoding,
// borrowed-from-buffer string decoding, and identifier/ignored-any requests.
type NotSupportedError struct {
	What string
}

func (e *NotSupportedError) Error() string {
	return fmt.Sprintf("memcomparable: not supported: %s", e.What)
}

// NotSupported constructs a NotSupportedError for the given unsupported shape.
func NotSupported(what string) error {
	return &NotSupportedError{What: what}
}

// InvalidBoolEncodingError is returned when a bool tag byte is not 0 or 1.
type InvalidBoolEncodingError struct {
	Value byte
}

func (e *InvalidBoolEncodingError) Error() string {
	return fmt.Sprintf("memcomparable: invalid bool encoding: %#x", e.Value)
}

// InvalidCharEncodingError is returned when a decoded uint32 is not a valid
// Unicode scalar value.
type InvalidCharEncodingError struct {
	Value uint32
}

func (e *InvalidCharEncodingError) Error() string {
	return fmt.Sprintf("memcomparable: invalid char encoding: %#x", e.Value)
}

// InvalidTagEncodingError is returned when an Option tag byte is not 0 or 1.
type InvalidTagEncodingError struct {
	Value byte
}

func (e *InvalidTagEncodingError) Error() string {
	return fmt.Sprintf("memcomparable: invalid option tag encoding: %#x", e.Value)
}

// InvalidSeqEncodingError is returned when a sequence element/terminator tag
// byte is not 0 or 1.
type InvalidSeqEncodingError struct {
	Value byte
}

func (e *InvalidSeqEncodingError) Error() string {
	return fmt.Sprintf("memcomparable: invalid sequence tag encoding: %#x", e.Value)
}

// InvalidBytesEncodingError is returned when a byte-string prefix byte or
// group trailer byte is out of range.
type InvalidBytesEncodingError struct {
	Value byte
}

func (e *InvalidBytesEncodingError) Error() string {
	return fmt.Sprintf("memcomparable: invalid byte string encoding: %#x", e.Value)
}

// InvalidDecimalEncodingError is returned when a decimal flag byte is
// outside the ranges defined in the format.
type InvalidDecimalEncodingError struct {
	Value byte
}

func (e *InvalidDecimalEncodingError) Error() string {
	return fmt.Sprintf("memcomparable: invalid decimal encoding: %#x", e.Value)
}

// TooManyVariantsError is returned when encoding a Sum variant index that
// does not fit in a single byte (more than 256 variants declared).
type TooManyVariantsError struct {
	Index int
}

func (e *TooManyVariantsError) Error() string {
	return fmt.Sprintf("memcomparable: variant index %d does not fit in a byte", e.Index)
}
