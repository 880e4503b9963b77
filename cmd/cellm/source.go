package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"cellm/internal/lang"
	"cellm/internal/programs"
)

// source is a rule file read from disk or from the bundled examples.
type source struct {
	name    string
	text    []byte
	example *programs.Example
}

func loadSource(args []string, example string) (*source, error) {
	if example != "" {
		if len(args) > 0 {
			return nil, errors.New("pass either a rule file or --example, not both")
		}
		ex, ok := programs.Lookup(example)
		if !ok {
			return nil, fmt.Errorf("unknown example %q; `cellm examples` lists them", example)
		}
		text, err := ex.Source()
		if err != nil {
			return nil, err
		}
		return &source{name: ex.Name, text: text, example: &ex}, nil
	}

	if len(args) == 0 {
		return nil, errors.New("no rule file given")
	}
	path := args[0]
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("file %q does not exist", path)
		}
		return nil, err
	}
	text, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}
	return &source{name: filepath.Base(path), text: text}, nil
}

// compileSource compiles src and, when the logger is verbose, dumps the
// tokens and the rule set through it.
func compileSource(src *source, logger *log.Logger) (*lang.Program, error) {
	prog, err := lang.Compile(src.text)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", src.name, err)
	}
	logger.Printf("%s: %d tokens", src.name, len(prog.Tokens))
	lang.WriteTokens(logger.Writer(), prog.Tokens)
	prog.Rules.Dump(logger.Writer())
	return prog, nil
}
