package anim_test

import (
	"fmt"

	kanjivg "github.com/tempo-eng/kanjivg-go"
	"github.com/tempo-eng/kanjivg-go/anim"
)

func ExampleBuildPlan() {
	rec := &kanjivg.KanjiRecord{
		Character: "二",
		ID:        "04e8c",
		Strokes: []kanjivg.StrokeRecord{
			{Number: 1, Path: "M20,35 h70"},
			{Number: 2, Path: "M12,75 h86"},
		},
	}

	cfg := anim.DefaultConfig()
	cfg.DurationMs = 800
	cfg.DelayMs = 200

	plan, err := anim.BuildPlan(rec, cfg)
	if err != nil {
		panic(err)
	}
	for _, s := range plan.Strokes {
		fmt.Printf("stroke %d: start %s, duration %s\n", s.Number, s.Start, s.Duration)
	}
	// Output:
	// stroke 1: start 0s, duration 800ms
	// stroke 2: start 1s, duration 800ms
}
