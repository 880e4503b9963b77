//go:build ebiten

package ui

import (
	"image/color"

	"cellm/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

type parameterProvider interface {
	Parameters() core.ParameterSnapshot
}

// HUD renders the parameter panel to the right of the grid.
type HUD struct {
	src        parameterProvider
	title      string
	width      int
	visible    bool
	panel      *ebiten.Image
	lastHeight int
	lines      []string
}

// NewHUD constructs a visible HUD reading from src.
func NewHUD(src parameterProvider, title string, width int) *HUD {
	if width < 0 {
		width = 0
	}
	return &HUD{src: src, title: title, width: width, visible: true}
}

// Toggle shows or hides the panel.
func (h *HUD) Toggle() {
	if h == nil {
		return
	}
	h.visible = !h.visible
}

// Width is the horizontal space the panel takes, zero while hidden.
func (h *HUD) Width() int {
	if h == nil || !h.visible {
		return 0
	}
	return h.width
}

// Update refreshes the cached parameter lines.
func (h *HUD) Update() {
	if h == nil || !h.visible {
		return
	}
	h.lines = hudLines(h.src.Parameters())
}

// Draw paints the panel at offsetX.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int) {
	if h.Width() <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})

	face := basicfont.Face7x13
	y := panelPadding + headerBaseline
	text.Draw(h.panel, h.title, face, panelPadding, y, color.RGBA{R: 200, G: 200, B: 210, A: 255})
	y += headerSpacing
	for _, line := range h.lines {
		if y > height-panelPadding {
			break
		}
		text.Draw(h.panel, line, face, panelPadding, y, color.RGBA{R: 220, G: 220, B: 230, A: 255})
		y += lineHeight
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

const (
	panelPadding   = 12
	headerBaseline = 18
	headerSpacing  = 24
	lineHeight     = 16
)
