package core

import (
	"fmt"
	"io"
	"strconv"
)

// ParamType enumerates supported parameter value kinds.
type ParamType string

const (
	// ParamTypeInt denotes integer-valued parameters.
	ParamTypeInt ParamType = "int"
	// ParamTypeText denotes free-form values.
	ParamTypeText ParamType = "text"
)

// Parameter describes a single value reported by a running simulation.
type Parameter struct {
	Key   string
	Label string
	Type  ParamType
	Value string
}

// ParameterGroup clusters related parameters for presentation purposes.
type ParameterGroup struct {
	Name   string
	Params []Parameter
}

// ParameterSnapshot captures the values shown on the HUD and by `cellm check`.
type ParameterSnapshot struct {
	Groups []ParameterGroup
}

// IntParam builds an integer parameter.
func IntParam(key, label string, value int) Parameter {
	return Parameter{Key: key, Label: label, Type: ParamTypeInt, Value: strconv.Itoa(value)}
}

// TextParam builds a text parameter.
func TextParam(key, label, value string) Parameter {
	return Parameter{Key: key, Label: label, Type: ParamTypeText, Value: value}
}

// Lookup finds a parameter by key across all groups.
func (s ParameterSnapshot) Lookup(key string) (Parameter, bool) {
	for _, g := range s.Groups {
		for _, p := range g.Params {
			if p.Key == key {
				return p, true
			}
		}
	}
	return Parameter{}, false
}

// Write prints the snapshot as an indented listing.
func (s ParameterSnapshot) Write(w io.Writer) {
	for _, g := range s.Groups {
		fmt.Fprintf(w, "%s:\n", g.Name)
		for _, p := range g.Params {
			fmt.Fprintf(w, "  %-16s %s\n", p.Label, p.Value)
		}
	}
}
