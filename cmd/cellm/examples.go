package main

import (
	"fmt"

	"cellm/internal/programs"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "examples [name]",
		Short: "List the bundled programs or print one of them",
		Example: `  cellm examples
  cellm examples conway > conway.cell`,
		Args: cobra.MaximumNArgs(1),
		RunE: runExamples,
	}
	rootCmd.AddCommand(cmd)
}

func runExamples(cmd *cobra.Command, args []string) error {
	w := cmd.OutOrStdout()
	if len(args) == 0 {
		for _, name := range programs.Names() {
			ex, _ := programs.Lookup(name)
			fmt.Fprintf(w, "%-10s %s\n", name, ex.Summary)
		}
		return nil
	}

	ex, ok := programs.Lookup(args[0])
	if !ok {
		return fmt.Errorf("unknown example %q", args[0])
	}
	src, err := ex.Source()
	if err != nil {
		return err
	}
	_, err = w.Write(src)
	return err
}
