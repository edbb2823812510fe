package kanjivg

import "fmt"

// InvalidIdentifierFormatError is returned when an input is neither a single
// glyph nor a 2-5 hex-digit codepoint. It is raised before any I/O happens.
type InvalidIdentifierFormatError struct {
	Input string
}

func (e *InvalidIdentifierFormatError) Error() string {
	return fmt.Sprintf("kanjivg: invalid identifier %q: want a single glyph or 2-5 hex digits", e.Input)
}

// UnknownIdentifierError is returned by a Source when a well-formed
// identifier matches no diagram.
type UnknownIdentifierError struct {
	ID  string
	Err error
}

func (e *UnknownIdentifierError) Error() string {
	return fmt.Sprintf("kanjivg: no diagram found for %q", e.ID)
}

func (e *UnknownIdentifierError) Unwrap() error { return e.Err }

// MalformedDiagramError is returned when a located diagram cannot be parsed:
// the document is not well-formed XML, the stroke container is missing, or
// it contains zero usable strokes. Fatal for that identifier only; the
// parser cache and other identifiers are unaffected.
type MalformedDiagramError struct {
	ID    string
	Cause string
	Err   error
}

func (e *MalformedDiagramError) Error() string {
	return fmt.Sprintf("kanjivg: malformed diagram %q: %s", e.ID, e.Cause)
}

func (e *MalformedDiagramError) Unwrap() error { return e.Err }
