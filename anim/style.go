package anim

import "image/color"

// LineCap is the cap and join shape a stroke is drawn with.
type LineCap int

const (
	// LineCapSquare draws square caps and miter joins.
	LineCapSquare LineCap = iota

	// LineCapRound draws round caps and joins.
	LineCapRound
)

// String returns "square" or "round".
func (c LineCap) String() string {
	if c == LineCapRound {
		return "round"
	}
	return "square"
}

// NumberMode is the numeral-label opacity program for a stroke.
type NumberMode int

const (
	// NumbersHidden draws no numeral.
	NumbersHidden NumberMode = iota

	// NumbersVisible keeps the numeral at full opacity permanently.
	NumbersVisible

	// NumbersFlash fades the numeral 0 to 1 to 0 once, synchronized
	// with the stroke's reveal duration.
	NumbersFlash
)

// String returns the mode name.
func (m NumberMode) String() string {
	switch m {
	case NumbersVisible:
		return "visible"
	case NumbersFlash:
		return "flash"
	default:
		return "hidden"
	}
}

// StrokeStyle is the resolved visual triple for one stroke.
type StrokeStyle struct {
	Color color.NRGBA
	Width float64
	Cap   LineCap
}

// resolveStyle computes one stroke's style from a block, cycling the
// palette by 1-based position when one is set. The block is assumed
// validated; an unparseable color resolves to opaque black rather than
// failing mid-plan.
func resolveStyle(b StyleBlock, position int) StrokeStyle {
	name := b.Color
	if len(b.Palette) > 0 {
		name = b.Palette[(position-1)%len(b.Palette)]
	}
	c, err := ParseColor(name)
	if err != nil {
		c = color.NRGBA{A: 255}
	}

	lineCap := LineCapSquare
	if b.CornerRadius > 0 {
		lineCap = LineCapRound
	}
	return StrokeStyle{Color: c, Width: b.Width, Cap: lineCap}
}

// numberMode picks the label program from the configuration. Permanent
// visibility wins when both it and flashing are requested.
func numberMode(cfg Config) NumberMode {
	switch {
	case cfg.ShowNumbers:
		return NumbersVisible
	case cfg.FlashNumbers:
		return NumbersFlash
	default:
		return NumbersHidden
	}
}
