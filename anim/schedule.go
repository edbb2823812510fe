package anim

import (
	"time"

	"github.com/tempo-eng/kanjivg-go/svgpath"

	kanjivg "github.com/tempo-eng/kanjivg-go"
)

// StrokeTiming is one stroke's slot on the plan's time axis.
type StrokeTiming struct {
	Number   int
	Start    time.Duration
	Duration time.Duration
}

// Timeline is the computed time axis of a plan: strictly non-decreasing
// start offsets, first stroke at the configured start delay.
type Timeline struct {
	Strokes []StrokeTiming

	// Total is the end of the last stroke plus one inter-stroke delay:
	// the point at which a looping playback restarts from offset zero.
	Total time.Duration

	// Loop is copied from the configuration. It changes nothing about
	// the computed offsets; restarting playback is the external driver's
	// job.
	Loop bool
}

// Schedule computes the reveal timing for an ordered stroke list.
//
// In fixed-duration mode (cfg.DurationMs set) every stroke takes the same
// time and stroke i starts at i*(duration+delay). In speed mode
// (cfg.Speed set) each stroke's duration is its path length divided by the
// speed, floored at 1ms, and each stroke starts when the previous one ends
// plus the delay. A malformed path contributes zero length rather than
// failing the schedule.
func Schedule(strokes []kanjivg.StrokeRecord, cfg Config) Timeline {
	tl := Timeline{
		Strokes: make([]StrokeTiming, 0, len(strokes)),
		Loop:    cfg.Loop,
	}

	delay := time.Duration(cfg.DelayMs) * time.Millisecond
	start := time.Duration(cfg.StartDelayMs) * time.Millisecond

	for _, s := range strokes {
		d := strokeDuration(s, cfg)
		tl.Strokes = append(tl.Strokes, StrokeTiming{
			Number:   s.Number,
			Start:    start,
			Duration: d,
		})
		start += d + delay
	}

	tl.Total = start
	return tl
}

func strokeDuration(s kanjivg.StrokeRecord, cfg Config) time.Duration {
	if cfg.Speed <= 0 {
		return time.Duration(cfg.DurationMs) * time.Millisecond
	}

	length, err := svgpath.Length(s.Path)
	if err != nil {
		kanjivg.Logger().Debug("unmeasurable stroke path", "stroke", s.Number, "err", err)
		length = 0
	}
	d := time.Duration(length / cfg.Speed * float64(time.Second))
	if d < time.Millisecond {
		d = time.Millisecond
	}
	return d
}
