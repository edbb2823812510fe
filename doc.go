// Package kanjivg parses KanjiVG-style stroke-order diagrams into a
// normalized data model of ordered strokes, nested component groups, and
// radical classification.
//
// # Overview
//
// A stroke-order diagram is an SVG document describing a single ideographic
// character: one path element per pen stroke, nested <g> groups marking
// components and radicals, and a separate container of numeral labels
// positioned by affine transforms. The parser walks that structure and
// produces a KanjiRecord: an immutable snapshot of stroke order, group
// membership, and numbering metadata.
//
// # Quick Start
//
//	p := kanjivg.NewParser()
//	rec, err := p.Parse("04e2d", markup)
//	if err != nil {
//	    // *kanjivg.MalformedDiagramError
//	}
//	for _, s := range rec.Strokes {
//	    fmt.Println(s.Number, s.Path)
//	}
//
// Animation timing and per-stroke styling live in the anim subpackage, which
// turns a KanjiRecord plus a configuration into a RenderPlan ready for an
// external drawing surface. Path-length approximation lives in svgpath.
//
// # Architecture
//
// The module is organized into:
//   - Root package: data model, structural parser, radical classifier, cache
//   - anim: timing scheduler, style resolver, RenderPlan assembly
//   - svgpath: path-data scanning and drawn-length approximation
//   - cmd/kanjivg: inspection CLI
//
// # Caching
//
// Each Parser owns its cache. Parsing the same identifier twice returns the
// reference-identical record until ClearCache is called. There is no shared
// module-level state.
//
// # Logging
//
// The package is silent by default. Call SetLogger to enable slog output;
// only best-effort degradations (skipped number labels) and cache activity
// are logged, at debug level.
package kanjivg

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
