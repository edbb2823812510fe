package svgpath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLengthStraightSegments(t *testing.T) {
	tests := []struct {
		name string
		d    string
		want float64
	}{
		{"empty", "", 0},
		{"move only", "M10,10", 0},
		{"absolute line", "M0,0 L60,0", 60},
		{"relative line", "M0,0 l0,120", 120},
		{"horizontal", "M11,54 h88", 88},
		{"horizontal absolute", "M10,0 H70", 60},
		{"vertical", "M24,32 v60", 60},
		{"vertical absolute", "M0,10 V130", 120},
		{"polyline", "M0,0 L3,4 L3,8", 9},
		{"implicit lineto after move", "M0,0 10,0 10,10", 20},
		{"closed triangle", "M0,0 L3,0 L3,4 Z", 12},
		{"two subpaths", "M0,0 L10,0 M0,20 L0,30", 20},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Length(tt.d)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestLengthChordApproximation(t *testing.T) {
	// Curves contribute the chord from start point to end point, not the
	// true arc length. The numbers below are what timing consumers
	// depend on; do not "improve" them.
	tests := []struct {
		name string
		d    string
		want float64
	}{
		{"cubic chord", "M0,0 C0,40 60,40 60,0", 60},
		{"relative cubic chord", "M0,0 c0,40 60,40 60,0", 60},
		{"quadratic chord", "M0,0 Q30,50 60,0", 60},
		{"smooth cubic chord", "M0,0 S60,40 60,0", 60},
		{"smooth quadratic chord", "M0,0 T0,80", 80},
		{"arc chord", "M0,0 A30,30 0 0 1 60,0", 60},
		{"curve chain", "M0,0 c10,20 20,20 30,0 c10,20 20,20 30,0", 60},
		{"line then curve", "M0,0 h30 c10,20 20,20 30,0", 60},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Length(tt.d)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestLengthCompressedNumbers(t *testing.T) {
	// Real diagram data compresses separators: negative numbers glued to
	// the previous one, decimals without a leading zero.
	got, err := Length("M31,16c0,8-10,25-15,31")
	require.NoError(t, err)
	assert.InDelta(t, 34.438350715445125, got, 1e-9)

	got, err = Length("M0,0 L.5.5")
	require.NoError(t, err)
	assert.InDelta(t, 0.7071067811865476, got, 1e-9)
}

func TestLengthMalformed(t *testing.T) {
	inputs := []string{
		"L10,10",      // missing leading move is fine; bad data is not:
		"M0,0 L10",    // truncated parameters
		"M0,0 X10,10", // unknown command
		"10 20",       // no command at all
		"M0,0 Z 5",    // Z never repeats implicitly
	}
	for _, d := range inputs[1:] {
		_, err := Length(d)
		assert.Error(t, err, "Length(%q)", d)
	}

	// A path starting with L is tolerated: the current point is the
	// origin, matching lenient renderer behavior.
	got, err := Length("L3,4")
	require.NoError(t, err)
	assert.InDelta(t, 5, got, 1e-9)
}

func TestMustLength(t *testing.T) {
	assert.InDelta(t, 60.0, MustLength("M0,0 h60"), 1e-9)
	assert.Panics(t, func() { MustLength("M0,0 L") })
}
