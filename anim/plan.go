package anim

import (
	"time"

	kanjivg "github.com/tempo-eng/kanjivg-go"
)

// PlanStroke is one stroke's complete render instruction: when to reveal
// it, how to draw it, and what to do with its numeral.
type PlanStroke struct {
	Number   int
	Path     string
	Start    time.Duration
	Duration time.Duration

	Style StrokeStyle

	// Radical reports whether the radical override styling applied.
	Radical bool

	// Numbers is the numeral opacity program for this stroke.
	Numbers NumberMode

	// NumberPos is the numeral position from the diagram, nil when the
	// diagram carries none.
	NumberPos *kanjivg.Point
}

// RenderPlan is the ready-to-play output of the core: one entry per stroke
// in canonical order, plus the optional static trace underlay. A plan is
// recomputed fresh for every call and never mutated afterwards.
type RenderPlan struct {
	Character string
	Strokes   []PlanStroke

	// Trace is the static underlay style, nil when tracing is off. The
	// underlay draws every stroke path once, beneath the animation,
	// unaffected by timing and radical overrides.
	Trace *StrokeStyle

	// Total is the schedule length including one trailing delay; a
	// looping driver restarts at this point.
	Total time.Duration
	Loop  bool
}

// BuildPlan composes the radical classifier, the timing scheduler, and the
// style resolver into a RenderPlan for one parsed record.
func BuildPlan(rec *kanjivg.KanjiRecord, cfg Config) (*RenderPlan, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	// Eligibility is computed whether or not override styling exists:
	// the plan reports highlighting even when the caller styles radical
	// strokes like any others.
	radicalStrokes := kanjivg.RadicalStrokeNumbers(rec.Groups, cfg.Radical.allowKinds())

	tl := Schedule(rec.Strokes, cfg)
	mode := numberMode(cfg)

	plan := &RenderPlan{
		Character: rec.Character,
		Strokes:   make([]PlanStroke, len(rec.Strokes)),
		Total:     tl.Total,
		Loop:      tl.Loop,
	}
	if cfg.Trace {
		ts := resolveStyle(cfg.TraceStyle, 1)
		plan.Trace = &ts
	}

	for i, s := range rec.Strokes {
		block := cfg.Stroke
		radical := radicalStrokes[s.Number]
		if radical && cfg.Radical != nil {
			// Override replaces the base block wholesale, with its
			// own independent palette cycling.
			block = cfg.Radical.styleBlock()
		}

		plan.Strokes[i] = PlanStroke{
			Number:    s.Number,
			Path:      s.Path,
			Start:     tl.Strokes[i].Start,
			Duration:  tl.Strokes[i].Duration,
			Style:     resolveStyle(block, s.Number),
			Radical:   radical,
			Numbers:   mode,
			NumberPos: s.NumberPos,
		}
	}
	return plan, nil
}
