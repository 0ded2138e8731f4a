package fingerprint

import (
	"image/color"
	"math"
)

// Color is an opaque RGB color with components in [0, 1].
type Color struct {
	R, G, B float64
}

var (
	// Black is the zero color.
	Black = Color{}
	// White has every component at full intensity.
	White = Color{R: 1, G: 1, B: 1}
)

// RGB8 builds a color from byte components.
func RGB8(r, g, b uint8) Color {
	return Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
}

// Gray returns a neutral color with the given brightness.
func Gray(brightness float64) Color {
	v := clamp01(brightness)
	return Color{R: v, G: v, B: v}
}

// Luminance returns the perceptual brightness used to order gradient anchors.
func (c Color) Luminance() float64 {
	return math.Sqrt(math.Pow(0.299*c.R, 2) + math.Pow(0.587*c.G, 2) + math.Pow(0.114*c.B, 2))
}

// Blend interpolates linearly from c toward other. t is clamped to [0, 1].
//
// Products throughout this package are converted explicitly before being
// added so the compiler cannot fuse them into multiply-adds; output bytes
// must not depend on the target architecture.
func (c Color) Blend(other Color, t float64) Color {
	f := clamp01(t)
	return Color{
		R: float64(c.R*(1-f)) + float64(other.R*f),
		G: float64(c.G*(1-f)) + float64(other.G*f),
		B: float64(c.B*(1-f)) + float64(other.B*f),
	}
}

// Darken blends toward black.
func (c Color) Darken(t float64) Color { return c.Blend(Black, t) }

// Lighten blends toward white.
func (c Color) Lighten(t float64) Color { return c.Blend(White, t) }

// Burn applies a color-burn with strength t, deepening saturated channels.
func (c Color) Burn(t float64) Color {
	f := math.Max(1-t, 1.0e-7)
	burn := func(v float64) float64 { return clamp01(1 - (1-v)/f) }
	return Color{R: burn(c.R), G: burn(c.G), B: burn(c.B)}
}

// Bytes converts the color to rounded 8-bit components.
func (c Color) Bytes() (r, g, b uint8) {
	return toByte(c.R), toByte(c.G), toByte(c.B)
}

// NRGBA converts the color to an opaque image/color value.
func (c Color) NRGBA() color.NRGBA {
	r, g, b := c.Bytes()
	return color.NRGBA{R: r, G: g, B: b, A: 255}
}

// HSB converts a hue/saturation/brightness triple to RGB. Hue wraps around
// the unit interval; saturation and brightness are clamped.
func HSB(hue, saturation, brightness float64) Color {
	v := clamp01(brightness)
	s := clamp01(saturation)
	if s <= 0 {
		return Color{R: v, G: v, B: v}
	}
	h := math.Mod(hue, 1)
	if h < 0 {
		h++
	}
	h *= 6
	i := int(math.Floor(h))
	f := h - float64(i)
	p := v * (1 - s)
	q := v * (1 - float64(s*f))
	t := v * (1 - float64(s*(1-f)))
	switch i {
	case 0:
		return Color{R: v, G: t, B: p}
	case 1:
		return Color{R: q, G: v, B: p}
	case 2:
		return Color{R: p, G: v, B: t}
	case 3:
		return Color{R: p, G: q, B: v}
	case 4:
		return Color{R: t, G: p, B: v}
	case 5:
		return Color{R: v, G: p, B: q}
	default:
		return Black
	}
}

func toByte(v float64) uint8 {
	return uint8(float64(clamp01(v)*255) + 0.5)
}

func clamp01(v float64) float64 {
	return math.Max(math.Min(v, 1), 0)
}

// lerpFrom maps t from the interval a..b onto 0..1.
func lerpFrom(a, b, t float64) float64 {
	return (a - t) / (a - b)
}
