package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	kanjivg "github.com/tempo-eng/kanjivg-go"
)

// commandContext carries the flags shared by every subcommand.
type commandContext struct {
	dirFlag     *string
	configFlag  *string
	verboseFlag *bool
}

func newRootCommand() *cobra.Command {
	var dirFlag, configFlag string
	var verboseFlag bool

	ctx := &commandContext{
		dirFlag:     &dirFlag,
		configFlag:  &configFlag,
		verboseFlag: &verboseFlag,
	}

	rootCmd := &cobra.Command{
		Use:           "kanjivg",
		Short:         "Inspect stroke-order diagrams and their animation plans",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verboseFlag {
				kanjivg.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
					Level: slog.LevelDebug,
				})))
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&dirFlag, "dir", "d", ".", "Directory holding <id>.svg diagram files")
	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Animation configuration file (TOML)")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(newShowCommand(ctx))
	rootCmd.AddCommand(newPlanCommand(ctx))

	return rootCmd
}

// loadRecord resolves an identifier or glyph argument against the diagram
// directory and parses it.
func (c *commandContext) loadRecord(cmd *cobra.Command, arg string) (*kanjivg.KanjiRecord, error) {
	id, err := kanjivg.NormalizeIdentifier(arg)
	if err != nil {
		return nil, err
	}

	src := kanjivg.NewDirSource(*c.dirFlag)
	markup, err := src.Fetch(cmd.Context(), id)
	if err != nil {
		return nil, err
	}

	return kanjivg.NewParser().Parse(id, markup)
}
