package main

import (
	"cellm/internal/app"

	"github.com/spf13/cobra"
)

var runConfig = app.NewConfig()

var rootCmd = &cobra.Command{
	Use:   "cellm [file]",
	Short: "Run cellular automata described by a small rule language",
	Long: `cellm reads a rule file, compiles it and runs the automaton:
- in a window, one generation per tick (build with -tags ebiten),
- or headless, printing the population of every generation.
Running cellm with a file and no subcommand is the same as cellm run.`,
	Args:          cobra.MaximumNArgs(1),
	RunE:          runRun,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func init() {
	runConfig.Bind(rootCmd.Flags())
}

func Execute(args []string) error {
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}
