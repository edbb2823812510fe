package svgpath

import (
	"fmt"
	"math"
	"strconv"
)

// paramCounts maps each path command to the number of parameters one
// segment consumes. Commands repeat implicitly while parameters remain.
var paramCounts = map[byte]int{
	'M': 2, 'L': 2, 'H': 1, 'V': 1,
	'C': 6, 'S': 4, 'Q': 4, 'T': 2,
	'A': 7, 'Z': 0,
}

// Length returns the approximate drawn length of an SVG path-data string.
// Empty path data has length 0. Malformed data fails with a descriptive
// error naming the offending command.
func Length(d string) (float64, error) {
	s := &scanner{data: d}

	var total float64
	var cur, start point
	haveStart := false
	var cmd byte

	for {
		c, ok := s.command()
		if ok {
			cmd = c
		} else if s.done() {
			break
		} else if cmd == 0 {
			return 0, fmt.Errorf("svgpath: path data %q does not start with a command", d)
		}
		// else: implicit repeat of the previous command

		upper := cmd &^ 0x20 // uppercase
		rel := cmd >= 'a'

		n, known := paramCounts[upper]
		if !known {
			return 0, fmt.Errorf("svgpath: unknown path command %q", string(cmd))
		}
		if !ok && n == 0 {
			// Z takes no parameters, so it never repeats implicitly.
			return 0, fmt.Errorf("svgpath: unexpected data after %q", string(cmd))
		}
		params, err := s.floats(n)
		if err != nil {
			return 0, fmt.Errorf("svgpath: command %q: %w", string(cmd), err)
		}

		switch upper {
		case 'M':
			p := point{params[0], params[1]}
			if rel {
				p = cur.add(p)
			}
			cur, start, haveStart = p, p, true
			// Subsequent coordinate pairs of an M are implicit lines.
			if cmd == 'M' {
				cmd = 'L'
			} else {
				cmd = 'l'
			}
		case 'L':
			p := point{params[0], params[1]}
			if rel {
				p = cur.add(p)
			}
			total += cur.dist(p)
			cur = p
		case 'H':
			p := point{params[0], cur.y}
			if rel {
				p.x += cur.x
			}
			total += cur.dist(p)
			cur = p
		case 'V':
			p := point{cur.x, params[0]}
			if rel {
				p.y += cur.y
			}
			total += cur.dist(p)
			cur = p
		case 'C', 'S', 'Q', 'T', 'A':
			// Chord approximation: only the segment end point matters.
			p := point{params[n-2], params[n-1]}
			if rel {
				p = cur.add(p)
			}
			total += cur.dist(p)
			cur = p
		case 'Z':
			if haveStart {
				total += cur.dist(start)
				cur = start
			}
		}
	}
	return total, nil
}

// MustLength is Length for known-good path data; it panics on malformed
// input. Intended for fixtures and examples.
func MustLength(d string) float64 {
	l, err := Length(d)
	if err != nil {
		panic(err)
	}
	return l
}

type point struct {
	x, y float64
}

func (p point) add(q point) point {
	return point{p.x + q.x, p.y + q.y}
}

func (p point) dist(q point) float64 {
	return math.Hypot(q.x-p.x, q.y-p.y)
}

// scanner tokenizes path data: single-letter commands and floats separated
// by whitespace or commas. Compressed forms ("1-2", ".5.5") are handled.
type scanner struct {
	data string
	pos  int
}

func (s *scanner) done() bool {
	s.skipSeparators()
	return s.pos >= len(s.data)
}

func (s *scanner) skipSeparators() {
	for s.pos < len(s.data) {
		switch s.data[s.pos] {
		case ' ', '\t', '\n', '\r', ',':
			s.pos++
		default:
			return
		}
	}
}

// command consumes the next byte if it is a path command letter.
func (s *scanner) command() (byte, bool) {
	s.skipSeparators()
	if s.pos >= len(s.data) {
		return 0, false
	}
	c := s.data[s.pos]
	if _, ok := paramCounts[c&^0x20]; ok && (c < '0' || c > '9') && c != '.' && c != '-' && c != '+' {
		s.pos++
		return c, true
	}
	return 0, false
}

// floats consumes exactly n numbers.
func (s *scanner) floats(n int) ([]float64, error) {
	out := make([]float64, n)
	for i := range out {
		v, err := s.float()
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func (s *scanner) float() (float64, error) {
	s.skipSeparators()
	begin := s.pos

	if s.pos < len(s.data) && (s.data[s.pos] == '-' || s.data[s.pos] == '+') {
		s.pos++
	}
	digits := s.digits()
	if s.pos < len(s.data) && s.data[s.pos] == '.' {
		s.pos++
		digits = s.digits() || digits
	}
	if !digits {
		return 0, fmt.Errorf("expected number at offset %d", begin)
	}
	if s.pos < len(s.data) && (s.data[s.pos] == 'e' || s.data[s.pos] == 'E') {
		mark := s.pos
		s.pos++
		if s.pos < len(s.data) && (s.data[s.pos] == '-' || s.data[s.pos] == '+') {
			s.pos++
		}
		if !s.digits() {
			s.pos = mark // not an exponent, likely a following command
		}
	}

	text := s.data[begin:s.pos]
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, fmt.Errorf("bad number %q at offset %d", text, begin)
	}
	return v, nil
}

func (s *scanner) digits() bool {
	seen := false
	for s.pos < len(s.data) && s.data[s.pos] >= '0' && s.data[s.pos] <= '9' {
		s.pos++
		seen = true
	}
	return seen
}
