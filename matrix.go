package kanjivg

import (
	"fmt"
	"strconv"
	"strings"
)

// Matrix represents a 2D affine transformation in the SVG column order
// matrix(a b c d e f):
//
//	| a  c  e |
//	| b  d  f |
//
// The number-label container positions its labels exclusively through such
// transforms; only the translation components (e, f) matter there.
type Matrix struct {
	A, B, C, D, E, F float64
}

// Translation returns the translation components of the transform.
func (m Matrix) Translation() Point {
	return Point{X: m.E, Y: m.F}
}

// ParseMatrix parses an SVG transform attribute of the form
// "matrix(a b c d e f)". Components may be separated by spaces, commas, or
// both. Other transform functions are not part of the diagram vocabulary
// and are rejected.
func ParseMatrix(s string) (Matrix, error) {
	s = strings.TrimSpace(s)
	open := strings.IndexByte(s, '(')
	if open < 0 || !strings.HasSuffix(s, ")") {
		return Matrix{}, fmt.Errorf("kanjivg: malformed transform %q", s)
	}
	if name := strings.TrimSpace(s[:open]); name != "matrix" {
		return Matrix{}, fmt.Errorf("kanjivg: unsupported transform function %q", name)
	}

	body := s[open+1 : len(s)-1]
	fields := strings.FieldsFunc(body, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t' || r == '\n'
	})
	if len(fields) != 6 {
		return Matrix{}, fmt.Errorf("kanjivg: transform %q: want 6 components, got %d", s, len(fields))
	}

	var vals [6]float64
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return Matrix{}, fmt.Errorf("kanjivg: transform component %q: %w", f, err)
		}
		vals[i] = v
	}
	return Matrix{A: vals[0], B: vals[1], C: vals[2], D: vals[3], E: vals[4], F: vals[5]}, nil
}
