package kanjivg

import "testing"

func TestParseMatrix(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Matrix
	}{
		{"space separated", "matrix(1 0 0 1 24.50 15.50)", Matrix{A: 1, D: 1, E: 24.5, F: 15.5}},
		{"comma separated", "matrix(1,0,0,1,10,20)", Matrix{A: 1, D: 1, E: 10, F: 20}},
		{"mixed separators", "matrix(1, 0 0,1  -5,-6)", Matrix{A: 1, D: 1, E: -5, F: -6}},
		{"leading space", "  matrix(2 0 0 3 0 0)", Matrix{A: 2, D: 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseMatrix(tt.input)
			if err != nil {
				t.Fatalf("ParseMatrix(%q) failed: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseMatrix(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseMatrixInvalid(t *testing.T) {
	inputs := []string{
		"",
		"matrix()",
		"matrix(1 2 3)",
		"matrix(1 2 3 4 5 6 7)",
		"rotate(45)",
		"translate(10 20)",
		"matrix(a b c d e f)",
		"matrix(1 0 0 1 10 20",
	}
	for _, in := range inputs {
		if _, err := ParseMatrix(in); err == nil {
			t.Errorf("ParseMatrix(%q) succeeded, want error", in)
		}
	}
}

func TestMatrixTranslation(t *testing.T) {
	m := Matrix{A: 1, D: 1, E: 47.5, F: 16.5}
	if got := m.Translation(); got != Pt(47.5, 16.5) {
		t.Errorf("Translation() = %v, want (47.5, 16.5)", got)
	}
}
