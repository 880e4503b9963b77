//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter keeps one RGBA image of the grid, one pixel per cell.
type GridPainter struct {
	w, h    int
	img     *ebiten.Image
	buf     []byte
	palette []color.RGBA
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int, palette []color.RGBA) *GridPainter {
	gp := &GridPainter{w: w, h: h, buf: make([]byte, 4*w*h), palette: palette}
	gp.img = ebiten.NewImage(w, h)
	return gp
}

// Blit uploads the provided cells into the painter image and draws it scaled
// to the cell size.
func (gp *GridPainter) Blit(dst *ebiten.Image, cells []int, scale int) {
	if len(cells) != gp.w*gp.h {
		return
	}
	fillStateRGBA(gp.buf, cells, gp.palette)
	gp.img.ReplacePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
