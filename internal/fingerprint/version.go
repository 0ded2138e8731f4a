package fingerprint

import (
	"errors"
	"fmt"
	"strings"

	"lifehash/internal/core"
)

// Version names one reproducible output variant. Values are stable; a
// version's output for a given digest never changes.
type Version int

const (
	// Version1 is the original baseline: direct seeding, HSB hues, no
	// density normalization.
	Version1 Version = iota
	// Version2 reseeds from a hash of the digest and uses the print-safe
	// spectrum.
	Version2
	// Detailed doubles the board side and seeds from a four-block hash chain.
	Detailed
	// Fiducial is a high-contrast variant with a fixed layout, intended for
	// machine-readable markers.
	Fiducial
	// GrayscaleFiducial is Fiducial rendered on a black to white gradient.
	GrayscaleFiducial
)

// Palette selects how gradient anchors are derived.
type Palette int

const (
	// PaletteHSB uses the HSB hue circle for single-hue gradients and the
	// original spectrum for multi-hue harmonies.
	PaletteHSB Palette = iota
	// PaletteSafe uses the print-safe spectrum for every strategy.
	PaletteSafe
	// PaletteFiducial uses high-contrast harmonies with a neutral anchor.
	PaletteFiducial
	// PaletteGrayscale is a fixed black to white gradient.
	PaletteGrayscale
)

var (
	// ErrUnknownVersion is returned when a version name or value is not
	// recognised.
	ErrUnknownVersion = errors.New("fingerprint: unknown version")
	// ErrInvalidConfig is returned by Config.Validate.
	ErrInvalidConfig = errors.New("fingerprint: invalid config")
	// ErrInsufficientEntropy is returned when a digest cannot supply the bits
	// gradient and pattern selection need.
	ErrInsufficientEntropy = errors.New("fingerprint: digest too short for version")
)

// Config holds every parameter that distinguishes one version from another.
type Config struct {
	Name string

	// Side is the width and height of the automaton board.
	Side int
	// MaxGenerations caps the recorded history.
	MaxGenerations int

	// SeedBlocks is the number of chained hash blocks concatenated to form
	// the seed; LeadingRehashes is how many times the digest is hashed
	// before the first block. One block with no rehash seeds directly from
	// the digest.
	SeedBlocks      int
	LeadingRehashes int

	// DiscardBits are skipped at the start of the entropy stream so sibling
	// versions read different bits.
	DiscardBits int

	Palette       Palette
	ForceFiducial bool
	Normalize     bool
}

var configs = [...]Config{
	Version1: {
		Name:           "version1",
		Side:           16,
		MaxGenerations: 150,
		SeedBlocks:     1,
		Palette:        PaletteHSB,
	},
	Version2: {
		Name:            "version2",
		Side:            16,
		MaxGenerations:  150,
		SeedBlocks:      1,
		LeadingRehashes: 1,
		DiscardBits:     2,
		Palette:         PaletteSafe,
		Normalize:       true,
	},
	Detailed: {
		Name:           "detailed",
		Side:           32,
		MaxGenerations: 300,
		SeedBlocks:     4,
		DiscardBits:    1,
		Palette:        PaletteSafe,
		Normalize:      true,
	},
	Fiducial: {
		Name:           "fiducial",
		Side:           32,
		MaxGenerations: 300,
		SeedBlocks:     4,
		Palette:        PaletteFiducial,
		ForceFiducial:  true,
		Normalize:      true,
	},
	GrayscaleFiducial: {
		Name:            "grayscale-fiducial",
		Side:            32,
		MaxGenerations:  300,
		SeedBlocks:      4,
		LeadingRehashes: 1,
		Palette:         PaletteGrayscale,
		ForceFiducial:   true,
		Normalize:       true,
	},
}

// Versions lists every version in declaration order.
func Versions() []Version {
	out := make([]Version, len(configs))
	for i := range configs {
		out[i] = Version(i)
	}
	return out
}

// Config returns the parameters of v.
func (v Version) Config() (Config, error) {
	if v < 0 || int(v) >= len(configs) {
		return Config{}, fmt.Errorf("%w: %d", ErrUnknownVersion, int(v))
	}
	return configs[v], nil
}

// String returns the version's canonical name.
func (v Version) String() string {
	if v < 0 || int(v) >= len(configs) {
		return fmt.Sprintf("version(%d)", int(v))
	}
	return configs[v].Name
}

// ParseVersion resolves a version name. Matching ignores case, and "1"/"2"
// are accepted as shorthands.
func ParseVersion(name string) (Version, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	switch n {
	case "1", "v1":
		return Version1, nil
	case "2", "v2":
		return Version2, nil
	case "grayscale_fiducial", "grayscalefiducial":
		return GrayscaleFiducial, nil
	}
	for i, c := range configs {
		if c.Name == n {
			return Version(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownVersion, name)
}

// MarshalText implements encoding.TextMarshaler.
func (v Version) MarshalText() ([]byte, error) {
	if v < 0 || int(v) >= len(configs) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownVersion, int(v))
	}
	return []byte(v.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *Version) UnmarshalText(text []byte) error {
	parsed, err := ParseVersion(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// String returns the palette name.
func (p Palette) String() string {
	switch p {
	case PaletteHSB:
		return "hsb"
	case PaletteSafe:
		return "safe"
	case PaletteFiducial:
		return "fiducial"
	case PaletteGrayscale:
		return "grayscale"
	default:
		return fmt.Sprintf("palette(%d)", int(p))
	}
}

// Size returns the board dimensions.
func (c Config) Size() core.Size { return core.Square(c.Side) }

// OutputSize returns the dimensions of the rendered color grid.
func (c Config) OutputSize() core.Size {
	if c.ForceFiducial {
		return c.Size()
	}
	return c.Size().Scale(2)
}

// EntropyBits is the most bits gradient and pattern selection can read,
// including the discarded prefix.
func (c Config) EntropyBits() int {
	bits := c.DiscardBits + gradientBits(c.Palette)
	if !c.ForceFiducial {
		bits += patternBits
	}
	return bits
}

// EntropyBytes is EntropyBits rounded up to whole bytes.
func (c Config) EntropyBytes() int { return (c.EntropyBits() + 7) / 8 }

// Validate checks that the configuration can run to completion.
func (c Config) Validate() error {
	switch {
	case c.Side <= 0:
		return fmt.Errorf("%w: side %d", ErrInvalidConfig, c.Side)
	case c.MaxGenerations <= 0:
		return fmt.Errorf("%w: max generations %d", ErrInvalidConfig, c.MaxGenerations)
	case c.SeedBlocks <= 0:
		return fmt.Errorf("%w: seed blocks %d", ErrInvalidConfig, c.SeedBlocks)
	case c.LeadingRehashes < 0 || c.DiscardBits < 0:
		return fmt.Errorf("%w: negative rehash or discard count", ErrInvalidConfig)
	case c.Palette < PaletteHSB || c.Palette > PaletteGrayscale:
		return fmt.Errorf("%w: %v", ErrInvalidConfig, c.Palette)
	}
	return nil
}

// Parameters describes the configuration for display.
func (c Config) Parameters() core.ParameterSnapshot {
	out := c.OutputSize()
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Board",
			Params: []core.Parameter{
				core.StringParam("version", "Version", c.Name),
				core.IntParam("side", "Side", c.Side),
				core.IntParam("max_generations", "Max generations", c.MaxGenerations),
				core.BoolParam("normalize", "Normalize density", c.Normalize),
			},
		},
		{
			Name: "Seeding",
			Params: []core.Parameter{
				core.IntParam("seed_blocks", "Seed blocks", c.SeedBlocks),
				core.IntParam("leading_rehashes", "Leading rehashes", c.LeadingRehashes),
				core.IntParam("discard_bits", "Discarded entropy bits", c.DiscardBits),
				core.IntParam("entropy_bits", "Entropy bits read", c.EntropyBits()),
			},
		},
		{
			Name: "Rendering",
			Params: []core.Parameter{
				core.StringParam("palette", "Palette", c.Palette.String()),
				core.BoolParam("fiducial", "Fiducial layout", c.ForceFiducial),
				core.IntParam("output_side", "Output side", out.W),
			},
		},
	}}
}
