package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

func newShowCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id|glyph>",
		Short: "Print the parsed structure of a diagram",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rec, err := ctx.loadRecord(cmd, args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Character: %s (%s), %d strokes\n", rec.Character, rec.ID, rec.StrokeCount())
			if len(rec.Components) > 0 {
				fmt.Fprintf(out, "Components: %s\n", strings.Join(rec.Components, " "))
			}
			if rec.RadicalSummary != nil {
				fmt.Fprintf(out, "Radical: %s (%s)\n", rec.RadicalSummary.Element, rec.RadicalSummary.Radical)
			}
			fmt.Fprintln(out)

			rows := make([][]string, 0, len(rec.Strokes))
			for _, s := range rec.Strokes {
				pos := ""
				if s.NumberPos != nil {
					pos = fmt.Sprintf("%.1f,%.1f", s.NumberPos.X, s.NumberPos.Y)
				}
				rows = append(rows, []string{
					strconv.Itoa(s.Number),
					s.TypeTag,
					s.GroupID,
					boolMark(s.Radical),
					pos,
				})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"#", "Type", "Group", "Radical", "Label at"},
				rows,
				[]columnAlignment{alignRight, alignLeft, alignLeft, alignLeft, alignLeft},
			))

			groupRows := make([][]string, 0, len(rec.Groups))
			for _, g := range rec.Groups {
				groupRows = append(groupRows, []string{
					g.ID,
					g.Element,
					string(g.Radical),
					g.Position,
					joinInts(g.StrokeNumbers),
				})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"Group", "Element", "Radical", "Position", "Strokes"},
				groupRows,
				[]columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft, alignLeft},
			))
			return nil
		},
	}
}

func boolMark(b bool) string {
	if b {
		return "yes"
	}
	return ""
}

func joinInts(nums []int) string {
	parts := make([]string, len(nums))
	for i, n := range nums {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, " ")
}
