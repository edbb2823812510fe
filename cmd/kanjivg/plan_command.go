package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/tempo-eng/kanjivg-go/anim"
)

func newPlanCommand(ctx *commandContext) *cobra.Command {
	var loop, trace, numbers bool
	var speed float64

	cmd := &cobra.Command{
		Use:   "plan <id|glyph>",
		Short: "Compute and print the animation plan for a diagram",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := anim.DefaultConfig()
			if *ctx.configFlag != "" {
				loaded, err := anim.LoadConfig(*ctx.configFlag)
				if err != nil {
					return err
				}
				cfg = loaded
			}
			if speed > 0 {
				cfg.Speed = speed
				cfg.DurationMs = 0
			}
			if loop {
				cfg.Loop = true
			}
			if trace {
				cfg.Trace = true
			}
			if numbers {
				cfg.ShowNumbers = true
			}

			rec, err := ctx.loadRecord(cmd, args[0])
			if err != nil {
				return err
			}
			plan, err := anim.BuildPlan(rec, cfg)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Character: %s, %d strokes, total %s", plan.Character, len(plan.Strokes), plan.Total)
			if plan.Loop {
				fmt.Fprint(out, ", looping")
			}
			fmt.Fprintln(out)
			if plan.Trace != nil {
				fmt.Fprintf(out, "Trace underlay: %s width %.1f, %s caps\n",
					colorString(plan.Trace.Color), plan.Trace.Width, plan.Trace.Cap)
			}
			fmt.Fprintln(out)

			rows := make([][]string, 0, len(plan.Strokes))
			for _, ps := range plan.Strokes {
				rows = append(rows, []string{
					strconv.Itoa(ps.Number),
					ps.Start.String(),
					ps.Duration.String(),
					colorString(ps.Style.Color),
					fmt.Sprintf("%.1f", ps.Style.Width),
					ps.Style.Cap.String(),
					boolMark(ps.Radical),
					ps.Numbers.String(),
				})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"#", "Start", "Duration", "Color", "Width", "Cap", "Radical", "Numbers"},
				rows,
				[]columnAlignment{alignRight, alignRight, alignRight, alignLeft, alignRight, alignLeft, alignLeft, alignLeft},
			))
			return nil
		},
	}

	cmd.Flags().Float64Var(&speed, "speed", 0, "Drawing speed in length units per second (switches to speed mode)")
	cmd.Flags().BoolVar(&loop, "loop", false, "Mark the plan for looping playback")
	cmd.Flags().BoolVar(&trace, "trace", false, "Include the static trace underlay")
	cmd.Flags().BoolVar(&numbers, "numbers", false, "Keep stroke numerals visible")

	return cmd
}
