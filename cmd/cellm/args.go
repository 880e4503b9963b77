package main

import (
	"strconv"
	"strings"
)

// normalizeArgs rewrites the single-dash flags of older cellm releases into
// the double-dash forms cobra understands. `-size W H` and `-gen A B ...`
// take space separated values and become comma lists.
func normalizeArgs(args []string) []string {
	out := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch arg {
		case "-verbose":
			out = append(out, "--verbose")
		case "-fill":
			out = append(out, "--fill")
		case "-size":
			vals := intsFrom(args[i+1:], 2)
			out = append(out, "--size")
			if len(vals) > 0 {
				out = append(out, strings.Join(vals, ","))
			}
			i += len(vals)
		case "-gen":
			vals := intsFrom(args[i+1:], -1)
			out = append(out, "--gen")
			if len(vals) > 0 {
				out = append(out, strings.Join(vals, ","))
			}
			i += len(vals)
		default:
			out = append(out, arg)
		}
	}
	return out
}

// intsFrom returns the leading integer arguments, at most max of them when
// max is not negative.
func intsFrom(args []string, max int) []string {
	var vals []string
	for _, a := range args {
		if max >= 0 && len(vals) == max {
			break
		}
		if _, err := strconv.Atoi(a); err != nil {
			break
		}
		vals = append(vals, a)
	}
	return vals
}
