//go:build ebiten

package ui

import (
	"image/color"

	"cellm/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
)

// Overlay draws grid lines on top of the cells.
type Overlay struct {
	segs  []segment
	show  bool
	pixel *ebiten.Image
	col   color.RGBA
}

// NewOverlay prepares the lines for a grid drawn at cell pixels per cell.
func NewOverlay(size core.Size, cell int) *Overlay {
	o := &Overlay{
		segs: gridSegments(size, cell),
		show: true,
		col:  color.RGBA{R: 0, G: 0, B: 0, A: 90},
	}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Toggle shows or hides the grid lines.
func (o *Overlay) Toggle() { o.show = !o.show }

// Draw renders the lines onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.show {
		return
	}
	for _, s := range o.segs {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(float64(s.w), float64(s.h))
		op.GeoM.Translate(float64(s.x), float64(s.y))
		op.ColorM.Scale(float64(o.col.R)/255.0, float64(o.col.G)/255.0, float64(o.col.B)/255.0, float64(o.col.A)/255.0)
		screen.DrawImage(o.pixel, op)
	}
}
