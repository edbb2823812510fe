package kanjivg

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// NormalizeIdentifier canonicalizes a caller-supplied character reference
// into the identifier form the diagram files are keyed by: a 5-digit
// zero-padded lowercase hexadecimal codepoint, optionally followed by a
// "-variantName" suffix.
//
// Accepted inputs:
//   - a single glyph (NFC-normalized before its codepoint is taken)
//   - a 2-5 hex-digit codepoint, any case, with or without zero padding
//   - either of the above with a variant suffix, e.g. "04e2d-Kaisho"
//
// Everything else fails with *InvalidIdentifierFormatError. No I/O happens
// here; validation always precedes loading.
func NormalizeIdentifier(input string) (string, error) {
	if input == "" {
		return "", &InvalidIdentifierFormatError{Input: input}
	}

	// A single glyph, possibly a composed sequence that NFC collapses
	// into one codepoint.
	if g := norm.NFC.String(input); utf8.RuneCountInString(g) == 1 {
		r, _ := utf8.DecodeRuneInString(g)
		return fmt.Sprintf("%05x", r), nil
	}

	code, variant, _ := strings.Cut(input, "-")
	if len(code) < 2 || len(code) > 5 {
		return "", &InvalidIdentifierFormatError{Input: input}
	}
	n, err := strconv.ParseUint(code, 16, 32)
	if err != nil {
		return "", &InvalidIdentifierFormatError{Input: input}
	}

	id := fmt.Sprintf("%05x", n)
	if variant != "" {
		id += "-" + variant
	}
	return id, nil
}

// CharacterFromID decodes the glyph a canonical identifier refers to,
// ignoring any variant suffix. Returns "" if the identifier does not decode
// to a valid codepoint.
func CharacterFromID(id string) string {
	code, _, _ := strings.Cut(id, "-")
	n, err := strconv.ParseUint(code, 16, 32)
	if err != nil || !utf8.ValidRune(rune(n)) {
		return ""
	}
	return string(rune(n))
}
