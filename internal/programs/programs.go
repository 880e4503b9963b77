// Package programs bundles example rule files with the binary.
package programs

import (
	"embed"
	"fmt"
	"sort"

	"cellm/internal/lang"
)

//go:embed cells/*.cell
var files embed.FS

// Example is a bundled rule file together with the grid setup it expects.
type Example struct {
	Name    string
	Summary string
	// Fill is written to every cell before seeding. Zero leaves the grid empty.
	Fill int
	// Gen lists the states scattered over a random quarter of the grid.
	Gen  []int
	file string
}

var examples = map[string]Example{}

// Register adds an example under its name. Empty names are ignored.
func Register(ex Example) {
	if ex.Name == "" {
		return
	}
	examples[ex.Name] = ex
}

// Lookup returns the named example.
func Lookup(name string) (Example, bool) {
	ex, ok := examples[name]
	return ex, ok
}

// Names returns the registered example names in sorted order.
func Names() []string {
	names := make([]string, 0, len(examples))
	for name := range examples {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Source returns the rule text of the example.
func (ex Example) Source() ([]byte, error) {
	src, err := files.ReadFile(ex.file)
	if err != nil {
		return nil, fmt.Errorf("example %q has no source: %w", ex.Name, err)
	}
	return src, nil
}

// Compile scans and parses the example.
func (ex Example) Compile() (*lang.Program, error) {
	src, err := ex.Source()
	if err != nil {
		return nil, err
	}
	prog, err := lang.Compile(src)
	if err != nil {
		return nil, fmt.Errorf("example %q: %w", ex.Name, err)
	}
	return prog, nil
}

func init() {
	Register(Example{
		Name:    "conway",
		Summary: "Conway's Game of Life with a glider",
		Fill:    2,
		file:    "cells/conway.cell",
	})
	Register(Example{
		Name:    "brain",
		Summary: "Brian's Brain from random firing cells",
		Fill:    3,
		Gen:     []int{1},
		file:    "cells/brain.cell",
	})
	Register(Example{
		Name:    "sand",
		Summary: "grains falling from three emitters onto a ledge",
		file:    "cells/sand.cell",
	})
	Register(Example{
		Name:    "walkers",
		Summary: "random walkers leaving fading trails",
		file:    "cells/walkers.cell",
	})
}
