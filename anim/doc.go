// Package anim computes deterministic animation plans for parsed
// stroke-order diagrams.
//
// Given a kanjivg.KanjiRecord and a Config, BuildPlan produces a
// RenderPlan: per stroke, the exact start offset and duration of its
// reveal plus the resolved color, width, and line cap. The plan is pure
// data — no timers live here. An external driver (a UI frame clock, a
// frame exporter) applies the offsets and owns cancellation; discarding
// the plan is all it takes to cancel.
//
// Two timing modes are supported, mutually exclusive per Config: a fixed
// per-stroke duration, or a drawing speed in path-length units per second
// with per-stroke durations derived from svgpath lengths.
//
// Plans are recomputed fresh for every call — they depend on the supplied
// Config and are never cached or mutated after construction.
package anim
