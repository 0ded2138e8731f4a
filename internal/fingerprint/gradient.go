package fingerprint

import (
	"fmt"
	"math"
	"sort"

	pcore "lifehash/pkg/core"
)

// Strategy names the color harmony a gradient was built from.
type Strategy int

const (
	Monochromatic Strategy = iota
	Complementary
	Triadic
	Analogous
	Grayscale
)

func (s Strategy) String() string {
	switch s {
	case Monochromatic:
		return "monochromatic"
	case Complementary:
		return "complementary"
	case Triadic:
		return "triadic"
	case Analogous:
		return "analogous"
	case Grayscale:
		return "grayscale"
	default:
		return fmt.Sprintf("strategy(%d)", int(s))
	}
}

// Entropy bits each palette reads for gradient selection, selector
// included, and the bit read for pattern selection.
const (
	colorGradientBits    = 2 + 16 + 1 + 1 + 16 + 16
	fiducialGradientBits = 2 + 16 + 8 + 1 + 1
	patternBits          = 1
)

func gradientBits(p Palette) int {
	switch p {
	case PaletteHSB, PaletteSafe:
		return colorGradientBits
	case PaletteFiducial:
		return fiducialGradientBits
	default:
		return 0
	}
}

// Gradient maps a density fraction to a color.
type Gradient struct {
	Strategy Strategy
	Reversed bool
	// Anchors are the colors blended across [0, 1] before any reversal.
	Anchors []Color

	fn ColorFunc
}

// NewGradient blends anchors evenly across [0, 1], reversed if requested.
func NewGradient(s Strategy, reversed bool, anchors ...Color) Gradient {
	fn := BlendColors(anchors...)
	if reversed {
		fn = Reverse(fn)
	}
	return Gradient{Strategy: s, Reversed: reversed, Anchors: anchors, fn: fn}
}

// At evaluates the gradient at t.
func (g Gradient) At(t float64) Color {
	if g.fn == nil {
		return Black
	}
	return g.fn(t)
}

// Reverse returns the same gradient evaluated at 1-t.
func (g Gradient) Reverse() Gradient {
	return NewGradient(g.Strategy, !g.Reversed, g.Anchors...)
}

// reader wraps an entropy stream for callers that have already checked the
// stream holds enough bits. Running dry is a programming error.
type reader struct{ e *pcore.Entropy }

func (r reader) bit() bool {
	b, ok := r.e.Bit()
	if !ok {
		panic("fingerprint: entropy exhausted")
	}
	return b
}

func (r reader) uint2() uint8 {
	v, ok := r.e.Uint2()
	if !ok {
		panic("fingerprint: entropy exhausted")
	}
	return v
}

func (r reader) uint8() uint8 {
	v, ok := r.e.Uint8()
	if !ok {
		panic("fingerprint: entropy exhausted")
	}
	return v
}

func (r reader) frac() float64 {
	v, ok := r.e.Frac()
	if !ok {
		panic("fingerprint: entropy exhausted")
	}
	return v
}

// palette resolves the hue functions a color palette draws from.
type palette struct {
	key      ColorFunc
	harmonic ColorFunc
}

func paletteFuncs(p Palette) palette {
	if p == PaletteHSB {
		return palette{key: hueCircle, harmonic: spectrum}
	}
	return palette{key: spectrumSafe, harmonic: spectrumSafe}
}

// SelectGradient reads a gradient from e. The stream must hold at least
// gradientBits(p) unread bits; the grayscale palette reads nothing.
func SelectGradient(e *pcore.Entropy, p Palette) Gradient {
	r := reader{e}
	switch p {
	case PaletteGrayscale:
		return NewGradient(Grayscale, false, Black, White)
	case PaletteFiducial:
		switch r.uint2() {
		case 0:
			return monochromaticFiducial(r)
		case 1:
			return complementaryFiducial(r)
		case 2:
			return triadicFiducial(r)
		default:
			return analogousFiducial(r)
		}
	}
	pf := paletteFuncs(p)
	switch r.uint2() {
	case 0:
		return monochromatic(r, pf)
	case 1:
		return complementary(r, pf)
	case 2:
		return triadic(r, pf)
	default:
		return analogous(r, pf)
	}
}

func monochromatic(r reader, pf palette) Gradient {
	hue := r.frac()
	tint := r.bit()
	reversed := r.bit()
	keyAdvance := float64(r.frac()*0.3) + 0.05
	neutralAdvance := float64(r.frac()*0.3) + 0.05

	key := pf.key(hue)
	neutral := Black
	if tint {
		neutral = White
		key = key.Darken(0.5)
	}
	return NewGradient(Monochromatic, reversed,
		key.Blend(neutral, keyAdvance),
		neutral.Blend(key, neutralAdvance),
	)
}

func complementary(r reader, pf palette) Gradient {
	s1 := r.frac()
	s2 := math.Mod(s1+0.5, 1)
	lighterAdvance := r.frac() * 0.3
	darkerAdvance := r.frac() * 0.3
	reversed := r.bit()

	c1, c2 := pf.harmonic(s1), pf.harmonic(s2)
	darker, lighter := c1, c2
	if c1.Luminance() > c2.Luminance() {
		darker, lighter = c2, c1
	}
	return NewGradient(Complementary, reversed,
		darker.Darken(darkerAdvance),
		lighter.Lighten(lighterAdvance),
	)
}

func triadic(r reader, pf palette) Gradient {
	s1 := r.frac()
	s2 := math.Mod(s1+1.0/3, 1)
	s3 := math.Mod(s1+2.0/3, 1)
	lighterAdvance := r.frac() * 0.3
	darkerAdvance := r.frac() * 0.3
	reversed := r.bit()

	colors := []Color{pf.harmonic(s1), pf.harmonic(s2), pf.harmonic(s3)}
	sort.SliceStable(colors, func(i, j int) bool {
		return colors[i].Luminance() < colors[j].Luminance()
	})
	return NewGradient(Triadic, reversed,
		colors[2].Lighten(lighterAdvance),
		colors[1],
		colors[0].Darken(darkerAdvance),
	)
}

func analogous(r reader, pf palette) Gradient {
	s1 := r.frac()
	advance := float64(r.frac()*0.5) + 0.2
	reversed := r.bit()

	var c [4]Color
	for i := range c {
		c[i] = pf.harmonic(math.Mod(s1+float64(i)/12, 1))
	}
	if c[0].Luminance() >= c[3].Luminance() {
		c[0], c[1], c[2], c[3] = c[3], c[2], c[1], c[0]
	}
	return NewGradient(Analogous, reversed,
		c[0].Darken(advance),
		c[1].Darken(advance/2),
		c[2].Lighten(advance/2),
		c[3].Lighten(advance),
	)
}

// Fiducial gradients keep a neutral anchor and push hues away from it so
// markers stay legible at small sizes.

const contrastThreshold = 0.6

// adjustForLuminance pushes c away from contrast when their luminances are
// closer than contrastThreshold. The closer they are, the harder the push.
func adjustForLuminance(c, contrast Color) Color {
	offset := math.Abs(c.Luminance() - contrast.Luminance())
	if offset > contrastThreshold {
		return c
	}
	amount := (1 - offset/contrastThreshold) * 0.5
	if contrast.Luminance() > c.Luminance() {
		return c.Darken(amount)
	}
	return c.Lighten(amount)
}

func fiducialNeutral(tint bool) Color {
	if tint {
		return White
	}
	return Black
}

func monochromaticFiducial(r reader) Gradient {
	hue := r.frac()
	reversed := r.bit()
	tint := r.bit()

	contrast := fiducialNeutral(tint)
	key := adjustForLuminance(spectrumSafe(hue), contrast)
	return NewGradient(Monochromatic, reversed, key, contrast, key)
}

func complementaryFiducial(r reader) Gradient {
	s1 := r.frac()
	s2 := math.Mod(s1+0.5, 1)
	tint := r.bit()
	reversed := r.bit()
	useFirst := r.bit()

	c1, c2 := spectrumSafe(s1), spectrumSafe(s2)
	bias := c2
	if useFirst {
		bias = c1
	}
	biased := fiducialNeutral(tint).Blend(bias, 0.2).Burn(0.1)
	return NewGradient(Complementary, reversed,
		adjustForLuminance(c1, biased),
		biased,
		adjustForLuminance(c2, biased),
	)
}

func triadicFiducial(r reader) Gradient {
	return harmonyFiducial(r, Triadic, 1.0/3)
}

func analogousFiducial(r reader) Gradient {
	return harmonyFiducial(r, Analogous, 1.0/10)
}

// harmonyFiducial builds three hues spaced by step and inserts the neutral
// anchor at position 1 or 2.
func harmonyFiducial(r reader, s Strategy, step float64) Gradient {
	s1 := r.frac()
	tint := r.bit()
	insertAt := int(r.uint8()%2) + 1
	reversed := r.bit()

	neutral := fiducialNeutral(tint)
	c := [3]Color{
		spectrumSafe(s1),
		spectrumSafe(math.Mod(s1+step, 1)),
		spectrumSafe(math.Mod(s1+float64(2*step), 1)),
	}
	if insertAt == 1 {
		c[0] = adjustForLuminance(c[0], neutral)
		c[1] = adjustForLuminance(c[1], neutral)
		c[2] = adjustForLuminance(c[2], c[1])
	} else {
		c[1] = adjustForLuminance(c[1], neutral)
		c[2] = adjustForLuminance(c[2], neutral)
		c[0] = adjustForLuminance(c[0], c[1])
	}
	anchors := make([]Color, 0, 4)
	anchors = append(anchors, c[:insertAt]...)
	anchors = append(anchors, neutral)
	anchors = append(anchors, c[insertAt:]...)
	return NewGradient(s, reversed, anchors...)
}
