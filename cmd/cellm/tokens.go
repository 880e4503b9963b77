package main

import (
	"cellm/internal/lang"

	"github.com/spf13/cobra"
)

var tokensFlags = struct {
	example *string
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "tokens [file]",
		Short:   "Print the token stream of a rule file",
		Example: `  cellm tokens life.cell`,
		Args:    cobra.MaximumNArgs(1),
		RunE:    runTokens,
	}
	tokensFlags.example = cmd.Flags().String("example", "", "scan a bundled program instead of a file")
	rootCmd.AddCommand(cmd)
}

func runTokens(cmd *cobra.Command, args []string) error {
	src, err := loadSource(args, *tokensFlags.example)
	if err != nil {
		return err
	}
	toks, err := lang.Scan(src.text)
	if err != nil {
		return err
	}
	lang.WriteTokens(cmd.OutOrStdout(), toks)
	return nil
}
