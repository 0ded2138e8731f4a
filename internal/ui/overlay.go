//go:build ebiten

package ui

import (
	"image/color"
	"math"

	"lifehash/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Layers supplies per-cell intensities in [0, 1] for the overlay, one value
// per board cell in row-major order.
type Layers interface {
	BoardSize() core.Size
	LiveMask() []float32
	DensityMask() []float32
}

// Overlay tints the fingerprint with the Life board behind it. Key 1
// toggles the live cells of the current generation, key 2 the final
// density field.
type Overlay struct {
	src         Layers
	showLive    bool
	showDensity bool
	maskImg     *ebiten.Image
	maskBuf     []byte
}

// NewOverlay constructs an overlay reading from src.
func NewOverlay(src Layers) *Overlay {
	return &Overlay{src: src, showLive: true}
}

// Update handles the overlay's toggles.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showLive = !o.showLive
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.showDensity = !o.showDensity
	}
}

// Draw renders enabled layers stretched over a square view of side pixels.
func (o *Overlay) Draw(screen *ebiten.Image, side int) {
	size := o.src.BoardSize()
	total := size.W * size.H
	if total == 0 || side <= 0 {
		return
	}
	if o.maskImg == nil || o.maskImg.Bounds().Dx() != size.W || o.maskImg.Bounds().Dy() != size.H {
		o.maskImg = ebiten.NewImage(size.W, size.H)
		o.maskBuf = make([]byte, 4*total)
	}
	if o.showDensity {
		o.drawMask(screen, o.src.DensityMask(), side, color.RGBA{R: 255, G: 120, B: 40})
	}
	if o.showLive {
		o.drawMask(screen, o.src.LiveMask(), side, color.RGBA{R: 64, G: 164, B: 223})
	}
}

func (o *Overlay) drawMask(screen *ebiten.Image, mask []float32, side int, tint color.RGBA) {
	if len(mask)*4 != len(o.maskBuf) {
		return
	}
	const (
		maxAlpha      = 140.0
		glowBase      = 0.35
		glowRange     = 0.65
		intensityBias = 0.75
	)
	for i, v := range mask {
		base := i * 4
		intensity := clamp01(float64(v))
		if intensity == 0 {
			o.maskBuf[base+0] = 0
			o.maskBuf[base+1] = 0
			o.maskBuf[base+2] = 0
			o.maskBuf[base+3] = 0
			continue
		}
		// Premultiplied alpha.
		alpha := math.Round(maxAlpha * math.Pow(intensity, intensityBias))
		glow := (glowBase + glowRange*math.Sqrt(intensity)) * alpha / 255
		o.maskBuf[base+0] = scaleComponent(tint.R, glow)
		o.maskBuf[base+1] = scaleComponent(tint.G, glow)
		o.maskBuf[base+2] = scaleComponent(tint.B, glow)
		o.maskBuf[base+3] = uint8(alpha)
	}
	o.maskImg.WritePixels(o.maskBuf)

	bounds := o.maskImg.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(side)/float64(bounds.Dx()), float64(side)/float64(bounds.Dy()))
	screen.DrawImage(o.maskImg, op)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func scaleComponent(value uint8, factor float64) uint8 {
	return uint8(math.Round(clamp01(float64(value) / 255 * factor) * 255))
}
