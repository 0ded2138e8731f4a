package fingerprint

import (
	"fmt"
	"strconv"

	"lifehash/internal/core"
	pcore "lifehash/pkg/core"
)

// Image is a generated fingerprint together with the choices that shaped it.
type Image struct {
	Version     Version
	Colors      *ColorGrid
	Generations int
	Cycled      bool
	Gradient    Gradient
	Pattern     Pattern

	// History and Density are the intermediate results the colors were
	// computed from. Both are nil for images restored from a store.
	History *History
	Density *Density
}

// Generate renders digest under version v. Identical inputs always produce
// identical output.
func Generate(digest []byte, v Version) (*Image, error) {
	cfg, err := v.Config()
	if err != nil {
		return nil, err
	}
	img, err := GenerateConfig(digest, cfg)
	if err != nil {
		return nil, fmt.Errorf("generate %s: %w", v, err)
	}
	img.Version = v
	return img, nil
}

// GenerateConfig renders digest under an arbitrary configuration. The
// returned image's Version is left zero; callers using a named version
// should call Generate.
func GenerateConfig(digest []byte, cfg Config) (*Image, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if need := cfg.EntropyBytes(); len(digest) < need {
		return nil, fmt.Errorf("%w: have %d bytes, need %d", ErrInsufficientEntropy, len(digest), need)
	}

	history := Simulate(Seed(digest, cfg), cfg.Size(), cfg.MaxGenerations)
	density := NewDensity(history)
	if cfg.Normalize {
		density.Normalize()
	}

	entropy := pcore.NewEntropy(digest)
	for i := 0; i < cfg.DiscardBits; i++ {
		entropy.Bit()
	}
	gradient := SelectGradient(entropy, cfg.Palette)
	pattern := FiducialPattern
	if !cfg.ForceFiducial {
		pattern = SelectPattern(entropy)
	}

	return &Image{
		Colors:      Render(density, gradient, pattern),
		Generations: history.Len(),
		Cycled:      history.Cycled,
		Gradient:    gradient,
		Pattern:     pattern,
		History:     history,
		Density:     density,
	}, nil
}

// Size returns the pixel dimensions.
func (img *Image) Size() core.Size { return img.Colors.Size() }

// Pixels packs the image row-major as RGB, or RGBA with opaque alpha when
// hasAlpha is set.
func (img *Image) Pixels(hasAlpha bool) []byte {
	stride := 3
	if hasAlpha {
		stride = 4
	}
	cells := img.Colors.Cells()
	out := make([]byte, 0, len(cells)*stride)
	for _, c := range cells {
		r, g, b := c.Bytes()
		out = append(out, r, g, b)
		if hasAlpha {
			out = append(out, 255)
		}
	}
	return out
}

// Parameters describes the generation outcome for display.
func (img *Image) Parameters() core.ParameterSnapshot {
	size := img.Size()
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Fingerprint",
			Params: []core.Parameter{
				core.StringParam("version", "Version", img.Version.String()),
				core.IntParam("generations", "Generations", img.Generations),
				core.BoolParam("cycled", "Stopped on cycle", img.Cycled),
				core.StringParam("size", "Size", strconv.Itoa(size.W)+"x"+strconv.Itoa(size.H)),
			},
		},
		{
			Name: "Palette",
			Params: []core.Parameter{
				core.StringParam("strategy", "Gradient", img.Gradient.Strategy.String()),
				core.BoolParam("reversed", "Reversed", img.Gradient.Reversed),
				core.IntParam("anchors", "Anchor colors", len(img.Gradient.Anchors)),
				core.StringParam("pattern", "Pattern", img.Pattern.String()),
			},
		},
	}}
}
