package render

import (
	"image"

	"lifehash/internal/fingerprint"

	"golang.org/x/image/draw"
)

// FillRGBA writes colors into buf as opaque RGBA pixels, row-major. buf
// must hold four bytes per cell.
func FillRGBA(buf []byte, colors *fingerprint.ColorGrid) {
	for i, c := range colors.Cells() {
		base := i * 4
		px := c.NRGBA()
		buf[base+0] = px.R
		buf[base+1] = px.G
		buf[base+2] = px.B
		buf[base+3] = px.A
	}
}

// Image converts a color grid to an NRGBA image with one pixel per cell.
func Image(colors *fingerprint.ColorGrid) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, colors.W, colors.H))
	FillRGBA(img.Pix, colors)
	return img
}

// Scale enlarges src by an integer module size using nearest-neighbour
// sampling so every cell stays a crisp square. Module sizes below 2 return
// src unchanged.
func Scale(src *image.NRGBA, module int) *image.NRGBA {
	if module < 2 {
		return src
	}
	b := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx()*module, b.Dy()*module))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
	return dst
}

// Fingerprint renders img at the requested module size.
func Fingerprint(img *fingerprint.Image, module int) *image.NRGBA {
	return Scale(Image(img.Colors), module)
}
