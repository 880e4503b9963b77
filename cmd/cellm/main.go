package main

import (
	"fmt"
	"os"
)

func main() {
	err := Execute(normalizeArgs(os.Args[1:]))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
