package main

import (
	"errors"
	"time"

	"cellm/internal/app"
	"cellm/internal/engine"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "run [file]",
		Short: "Run a rule file in a window or headless",
		Example: `  cellm run life.cell --fill 2 --gen 1
  cellm run --example sand --headless --steps 50`,
		Args: cobra.MaximumNArgs(1),
		RunE: runRun,
	}
	runConfig.Bind(cmd.Flags())
	rootCmd.AddCommand(cmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	cfg := runConfig
	if err := cfg.Validate(); err != nil {
		return err
	}
	if !cfg.Headless && !app.WindowSupported {
		return errors.New("this build has no window support; rerun with --headless or build with -tags ebiten")
	}

	src, err := loadSource(args, cfg.Example)
	if err != nil {
		return err
	}
	logger := cfg.Logger(cmd.ErrOrStderr())
	prog, err := compileSource(src, logger)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	seed := cfg.Seed
	if !flags.Changed("seed") {
		seed = time.Now().UnixNano()
	}
	w, h := cfg.GridSize()
	p := engine.New(prog.Rules, prog.Render, engine.Config{
		Width:  w,
		Height: h,
		Seed:   seed,
		Logger: logger,
	})

	setup := app.Setup{Fill: cfg.Fill, Gen: cfg.Gen}
	if ex := src.example; ex != nil {
		if !flags.Changed("fill") {
			setup.Fill = ex.Fill
		}
		if !flags.Changed("gen") {
			setup.Gen = ex.Gen
		}
	}
	if err := app.Populate(p, setup); err != nil {
		return err
	}
	logger.Printf("seed %d, %dx%d grid, %d cells occupied", seed, p.Size().W, p.Size().H, p.Population())

	if cfg.Headless {
		return app.RunHeadless(p, cfg.Steps, cmd.OutOrStdout())
	}
	return app.RunWindow(p, setup, cfg.TPS, src.name)
}
