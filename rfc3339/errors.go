package rfc3339

import (
	"errors"
	"fmt"
)

// Error categories of a failed parse. Every *ParseError wraps exactly one of them,
// so callers can tell them apart with errors.Is.
var (
	// ErrStructural means the input has the wrong length for any accepted form,
	// a separator is missing or wrong, or the input ends before a field is complete.
	ErrStructural = errors.New("structural error")
	// ErrLexical means a character that must be an ASCII digit is not.
	ErrLexical = errors.New("lexical error")
	// ErrRange means a well-formed numeric field is out of its valid range.
	ErrRange = errors.New("range error")
	// ErrTrailing means input remains after a complete timestamp.
	ErrTrailing = errors.New("trailing data")
)

// Conversion errors returned by the DateTime accessors.
var (
	// ErrNoOffset is returned when an absolute instant is requested from a result without an offset.
	ErrNoOffset = errors.New("no zone offset information found")
	// ErrNotRepresentable is returned when the fields do not name a real calendar instant,
	// e.g. February 30 or a leap second numeral.
	ErrNotRepresentable = errors.New("not representable as an instant")
)

// ParseError describes a failed parse.
// It carries the original input and the 1-based column at which validation failed.
type ParseError struct {
	Input  string
	Column int
	Err    error
}

// Error returns a string representation of the parse error, implementing the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %q: column %d: %v", e.Input, e.Column, e.Err)
}

// Unwrap returns the underlying error, which wraps one of the category errors.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// GranularityError is returned when a conversion needs a field finer than the parsed granularity.
type GranularityError struct {
	Have Granularity // granularity of the parsed value
	Need Granularity // granularity the conversion requires
}

func (e *GranularityError) Error() string {
	return fmt.Sprintf("no %s field found: value has %s granularity", e.Need.field(), e.Have.field())
}
