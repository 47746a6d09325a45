package picocad

import (
	"errors"
	"fmt"
)

// ErrIdentifier is returned when the first header field is not the picocad
// magic token.
var ErrIdentifier = errors.New(`identifier is not "picocad"`)

// SplitError reports a document that is missing one of the two structural
// separators (the newline after the header, the '%' before the footer).
type SplitError struct {
	Sep string
}

func (e *SplitError) Error() string {
	return fmt.Sprintf("could not split file: missing %q separator", e.Sep)
}

// HeaderLengthError reports a header line with the wrong field count.
type HeaderLengthError struct {
	Fields int
}

func (e *HeaderLengthError) Error() string {
	return fmt.Sprintf("found %d header fields (expected 5)", e.Fields)
}

// FieldError reports a named field that is present but has the wrong shape
// or cannot be parsed. Scope is "header", "mesh" or "face".
type FieldError struct {
	Scope string
	Field string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("could not parse %s field %s", e.Scope, e.Field)
}

// FooterLengthError reports a footer whose filtered character count is not
// exactly one full 128x120 texture.
type FooterLengthError struct {
	Length int
}

func (e *FooterLengthError) Error() string {
	return fmt.Sprintf("footer with length %d (expected %d)", e.Length, footerLen)
}

// UVLengthError reports a face whose flat uv list does not pair up with its
// vertex indices.
type UVLengthError struct {
	Indices int
	Values  int
}

func (e *UVLengthError) Error() string {
	return fmt.Sprintf("face with %d vertex indices has %d uv values (expected %d)",
		e.Indices, e.Values, 2*e.Indices)
}

// TableLengthError reports a table literal with the wrong number of
// positional elements.
type TableLengthError struct {
	Got  int
	Want int
}

func (e *TableLengthError) Error() string {
	return fmt.Sprintf("found %d table elements (expected %d)", e.Got, e.Want)
}

// IndexError reports a pixel coordinate outside the footer texture.
type IndexError struct {
	U, V int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("index out of range: (%d,%d) (expected < (%d,%d))",
		e.U, e.V, TextureWidth, TextureHeight)
}
