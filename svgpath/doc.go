// Package svgpath scans SVG path-data strings and approximates their drawn
// length for speed-based animation timing.
//
// Straight segments (L, H, V, Z and the implicit lines of M) contribute
// their exact length. Curved segments (C, S, Q, T, A) contribute the chord
// from the segment's start point to its end point. This is a deliberate
// simplification: timing consumers depend on the approximation's exact
// numeric output, so it must not be replaced by true arc-length
// integration.
package svgpath
