//go:build ebiten

package render

import (
	"lifehash/internal/fingerprint"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter uploads a color grid into a single ebiten image.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int) *GridPainter {
	gp := &GridPainter{w: w, h: h, buf: make([]byte, 4*w*h)}
	gp.img = ebiten.NewImage(w, h)
	return gp
}

// Blit uploads colors into the painter image and draws it scaled at the
// given offset. Grids of the wrong size are ignored.
func (gp *GridPainter) Blit(dst *ebiten.Image, colors *fingerprint.ColorGrid, scale int, offsetX, offsetY float64) {
	if colors.W != gp.w || colors.H != gp.h {
		return
	}
	FillRGBA(gp.buf, colors)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	op.GeoM.Translate(offsetX, offsetY)
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
