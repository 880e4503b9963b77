//go:build !ebiten

package app

import (
	"errors"

	"cellm/internal/engine"
)

// WindowSupported reports whether this build can open a window.
const WindowSupported = false

// ErrNoWindow is returned by RunWindow in builds without the ebiten tag.
var ErrNoWindow = errors.New("the window requires building with the 'ebiten' tag; use --headless")

// RunWindow always fails in the headless build.
func RunWindow(*engine.Processor, Setup, int, string) error {
	return ErrNoWindow
}
