package fingerprint

import "math"

// ColorFunc maps a fraction in [0, 1] to a color.
type ColorFunc func(t float64) Color

// TwoColor returns a linear blend between two colors.
func TwoColor(c1, c2 Color) ColorFunc {
	return func(t float64) Color { return c1.Blend(c2, t) }
}

// BlendColors returns a piecewise-linear blend across evenly spaced anchors.
func BlendColors(colors ...Color) ColorFunc {
	switch len(colors) {
	case 0:
		return func(float64) Color { return Black }
	case 1:
		c := colors[0]
		return func(float64) Color { return c }
	case 2:
		return TwoColor(colors[0], colors[1])
	}
	anchors := append([]Color(nil), colors...)
	segments := len(anchors) - 1
	return func(t float64) Color {
		if t >= 1 {
			return anchors[segments]
		}
		if t <= 0 {
			return anchors[0]
		}
		s := t * float64(segments)
		segment := int(s)
		return anchors[segment].Blend(anchors[segment+1], math.Mod(s, 1))
	}
}

// Reverse returns fn evaluated at 1-t.
func Reverse(fn ColorFunc) ColorFunc {
	return func(t float64) Color { return fn(1 - t) }
}

var spectrum = BlendColors(
	RGB8(0, 168, 222),
	RGB8(51, 51, 145),
	RGB8(233, 19, 136),
	RGB8(235, 45, 46),
	RGB8(253, 233, 43),
	RGB8(0, 158, 84),
	RGB8(0, 168, 222),
)

var spectrumSafe = BlendColors(
	RGB8(0, 168, 222),
	RGB8(41, 60, 130),
	RGB8(210, 59, 130),
	RGB8(217, 63, 53),
	RGB8(244, 228, 81),
	RGB8(0, 158, 84),
	RGB8(0, 168, 222),
)

func hueCircle(t float64) Color { return HSB(t, 1, 1) }
