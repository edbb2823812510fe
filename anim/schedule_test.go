package anim

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	kanjivg "github.com/tempo-eng/kanjivg-go"
)

func strokesWithPaths(paths ...string) []kanjivg.StrokeRecord {
	out := make([]kanjivg.StrokeRecord, len(paths))
	for i, p := range paths {
		out[i] = kanjivg.StrokeRecord{Number: i + 1, Path: p}
	}
	return out
}

func TestScheduleFixedDuration(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DurationMs = 800
	cfg.DelayMs = 200

	tl := Schedule(strokesWithPaths("M0,0 h10", "M0,0 h10", "M0,0 h10"), cfg)

	require.Len(t, tl.Strokes, 3)
	wantStarts := []time.Duration{0, 1000 * time.Millisecond, 2000 * time.Millisecond}
	for i, st := range tl.Strokes {
		assert.Equal(t, wantStarts[i], st.Start, "stroke %d start", i+1)
		assert.Equal(t, 800*time.Millisecond, st.Duration, "stroke %d duration", i+1)
	}
	assert.Equal(t, 3000*time.Millisecond, tl.Total)
}

func TestScheduleSpeedMode(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DurationMs = 0
	cfg.Speed = 1000 // length units per second
	cfg.DelayMs = 500

	// Path lengths 60 and 120.
	tl := Schedule(strokesWithPaths("M0,0 L60,0", "M0,0 l0,120"), cfg)

	require.Len(t, tl.Strokes, 2)
	assert.Equal(t, 60*time.Millisecond, tl.Strokes[0].Duration)
	assert.Equal(t, 120*time.Millisecond, tl.Strokes[1].Duration)
	assert.Equal(t, time.Duration(0), tl.Strokes[0].Start)
	assert.Equal(t, 560*time.Millisecond, tl.Strokes[1].Start)
}

func TestScheduleSpeedModeMinimumDuration(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DurationMs = 0
	cfg.Speed = 1e9

	tl := Schedule(strokesWithPaths("M0,0 h1"), cfg)
	assert.Equal(t, time.Millisecond, tl.Strokes[0].Duration, "durations are floored at 1ms")
}

func TestScheduleSpeedModeMalformedPath(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DurationMs = 0
	cfg.Speed = 100
	cfg.DelayMs = 0

	// A stroke with unmeasurable path data degrades to zero length
	// (1ms floor) instead of failing the whole schedule.
	tl := Schedule(strokesWithPaths("garbage", "M0,0 h50"), cfg)
	assert.Equal(t, time.Millisecond, tl.Strokes[0].Duration)
	assert.Equal(t, 500*time.Millisecond, tl.Strokes[1].Duration)
}

func TestScheduleStartDelay(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DurationMs = 100
	cfg.DelayMs = 50
	cfg.StartDelayMs = 1000

	tl := Schedule(strokesWithPaths("M0,0 h10", "M0,0 h10"), cfg)
	assert.Equal(t, 1000*time.Millisecond, tl.Strokes[0].Start)
	assert.Equal(t, 1150*time.Millisecond, tl.Strokes[1].Start)
}

func TestScheduleMonotonicStarts(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DurationMs = 0
	cfg.Speed = 250
	cfg.DelayMs = 20

	tl := Schedule(strokesWithPaths("M0,0 h5", "M0,0 h300", "M0,0 h1", "M0,0 h80"), cfg)
	for i := 1; i < len(tl.Strokes); i++ {
		assert.GreaterOrEqual(t, tl.Strokes[i].Start, tl.Strokes[i-1].Start)
	}
}

func TestScheduleLoopMetadata(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Loop = true

	plain := Schedule(strokesWithPaths("M0,0 h10"), cfg)
	assert.True(t, plain.Loop)

	// Looping changes no computed offset or duration.
	cfg.Loop = false
	still := Schedule(strokesWithPaths("M0,0 h10"), cfg)
	assert.Equal(t, plain.Strokes, still.Strokes)
	assert.Equal(t, plain.Total, still.Total)
}

func TestScheduleEmpty(t *testing.T) {
	tl := Schedule(nil, DefaultConfig())
	assert.Empty(t, tl.Strokes)
}
