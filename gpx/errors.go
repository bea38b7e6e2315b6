package gpx

import (
	"errors"
	"fmt"
)

var (
	// ErrNoRoot is returned when the input holds no root element at all.
	ErrNoRoot = errors.New("no root element")
	// ErrNotGPX is returned when the root element is not <gpx>.
	ErrNotGPX = errors.New("not a GPX document")
	// ErrTrailingContent is returned for elements or text after the root element.
	ErrTrailingContent = errors.New("content after root element")
	// ErrDuplicateAttr is returned when an element repeats an attribute.
	ErrDuplicateAttr = errors.New("duplicate attribute")
	// ErrUnboundPrefix is returned for a namespace prefix with no xmlns declaration.
	ErrUnboundPrefix = errors.New("undeclared namespace prefix")
)

// InputError reports a GPX file that could not be opened or read.
type InputError struct {
	Path string
	Err  error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("cannot read input file %q: %v", e.Path, e.Err)
}

func (e *InputError) Unwrap() error { return e.Err }

// ParseError reports input that is not well-formed XML or not GPX.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("error parsing GPX: %v", e.Err)
	}
	return fmt.Sprintf("error parsing GPX file %q: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
