package anim

import (
	"fmt"
	"image/color"
	"strings"

	"golang.org/x/image/colornames"
)

// ParseColor resolves a color string: "#RGB", "#RGBA", "#RRGGBB",
// "#RRGGBBAA", or an SVG 1.1 color keyword such as "crimson".
func ParseColor(s string) (color.NRGBA, error) {
	if strings.HasPrefix(s, "#") {
		return parseHexColor(s[1:])
	}
	if c, ok := colornames.Map[strings.ToLower(s)]; ok {
		// Keyword colors are fully opaque, so RGBA and NRGBA agree.
		return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}, nil
	}
	return color.NRGBA{}, fmt.Errorf("unknown color %q", s)
}

func parseHexColor(hex string) (color.NRGBA, error) {
	var r, g, b uint32
	a := uint32(255)

	switch len(hex) {
	case 3: // RGB
		if err := parseHexAll(hex, 1, &r, &g, &b); err != nil {
			return color.NRGBA{}, err
		}
		r, g, b = r*17, g*17, b*17
	case 4: // RGBA
		if err := parseHexAll(hex, 1, &r, &g, &b, &a); err != nil {
			return color.NRGBA{}, err
		}
		r, g, b, a = r*17, g*17, b*17, a*17
	case 6: // RRGGBB
		if err := parseHexAll(hex, 2, &r, &g, &b); err != nil {
			return color.NRGBA{}, err
		}
	case 8: // RRGGBBAA
		if err := parseHexAll(hex, 2, &r, &g, &b, &a); err != nil {
			return color.NRGBA{}, err
		}
	default:
		return color.NRGBA{}, fmt.Errorf("bad hex color %q", "#"+hex)
	}
	return color.NRGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: uint8(a)}, nil
}

func parseHexAll(hex string, width int, out ...*uint32) error {
	for i, p := range out {
		var v uint32
		for _, c := range hex[i*width : (i+1)*width] {
			v <<= 4
			switch {
			case c >= '0' && c <= '9':
				v |= uint32(c - '0')
			case c >= 'a' && c <= 'f':
				v |= uint32(c-'a') + 10
			case c >= 'A' && c <= 'F':
				v |= uint32(c-'A') + 10
			default:
				return fmt.Errorf("bad hex color %q", "#"+hex)
			}
		}
		*p = v
	}
	return nil
}
