package main

import (
	"fmt"
	"io"
	"log"

	"cellm/internal/bio"

	"github.com/spf13/cobra"
)

var checkFlags = struct {
	example *string
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "check [file]",
		Short:   "Compile a rule file and print its rules and render settings",
		Example: `  cellm check life.cell`,
		Args:    cobra.MaximumNArgs(1),
		RunE:    runCheck,
	}
	checkFlags.example = cmd.Flags().String("example", "", "check a bundled program instead of a file")
	rootCmd.AddCommand(cmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	src, err := loadSource(args, *checkFlags.example)
	if err != nil {
		return err
	}
	prog, err := compileSource(src, log.New(io.Discard, "", 0))
	if err != nil {
		return err
	}
	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "%s: ok\n", src.name)
	prog.Rules.Dump(w)
	writeRender(w, prog.Render)
	return nil
}

func writeRender(w io.Writer, rr bio.RenderRules) {
	fmt.Fprintf(w, "render: cell size %d, grid %dx%d\n", rr.CellSize, rr.GridWidth, rr.GridHeight)
	for _, s := range rr.ColoredStates() {
		c, _ := rr.Color(s)
		fmt.Fprintf(w, "  color %d #%02x%02x%02x%02x\n", s, c.R, c.G, c.B, c.A)
	}
	for _, sp := range rr.Seeds {
		fmt.Fprintf(w, "  seed (%d, %d) state %d\n", sp.X, sp.Y, sp.State)
	}
}
