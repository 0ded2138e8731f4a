package app

import (
	"fmt"
	"log/slog"
	"strconv"

	"lifehash/internal/core"
	"lifehash/internal/digest"
	"lifehash/internal/fingerprint"
)

// Playback pairs a generated fingerprint with a replay of the Life run that
// produced it. It is the state behind the viewer, kept free of any
// windowing code.
type Playback struct {
	logger *slog.Logger

	fp      digest.Fingerprint
	version fingerprint.Version
	image   *fingerprint.Image
	history *fingerprint.History
	density []float32
	live    []float32
	frame   int
}

// NewPlayback generates fp under v.
func NewPlayback(logger *slog.Logger, fp digest.Fingerprint, v fingerprint.Version) (*Playback, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	p := &Playback{logger: logger}
	if err := p.Load(fp, v); err != nil {
		return nil, err
	}
	return p, nil
}

// Load replaces the current fingerprint and rewinds playback. The replayed
// history and density are the ones the image was colored from.
func (p *Playback) Load(fp digest.Fingerprint, v fingerprint.Version) error {
	img, err := fingerprint.Generate(fp.Digest, v)
	if err != nil {
		return fmt.Errorf("load %s: %w", fp.Identifier(0), err)
	}
	history := img.History

	p.fp, p.version, p.image, p.history = fp, v, img, history
	p.density = toFloat32(img.Density.Cells())
	p.live = make([]float32, len(p.density))
	p.frame = 0
	p.refreshLive()
	p.logger.Debug("loaded fingerprint",
		"digest", fp.Identifier(0),
		"version", v.String(),
		"generations", history.Len(),
	)
	return nil
}

// NextVersion reloads the current digest under the version after the
// current one, wrapping around.
func (p *Playback) NextVersion() error {
	versions := fingerprint.Versions()
	next := versions[0]
	for i, v := range versions {
		if v == p.version && i+1 < len(versions) {
			next = versions[i+1]
		}
	}
	return p.Load(p.fp, next)
}

// Advance moves playback forward by n generations, stopping at the last
// recorded one. It reports whether the frame changed.
func (p *Playback) Advance(n int) bool {
	target := min(p.frame+n, p.history.Len()-1)
	if target == p.frame {
		return false
	}
	p.frame = target
	p.refreshLive()
	return true
}

// Rewind returns playback to the seeded board.
func (p *Playback) Rewind() {
	p.frame = 0
	p.refreshLive()
}

// Done reports whether playback has reached the final generation.
func (p *Playback) Done() bool { return p.frame == p.history.Len()-1 }

// Frame returns the index of the displayed generation.
func (p *Playback) Frame() int { return p.frame }

// Image returns the generated fingerprint.
func (p *Playback) Image() *fingerprint.Image { return p.image }

// Fingerprint returns the digest being displayed.
func (p *Playback) Fingerprint() digest.Fingerprint { return p.fp }

// Version returns the version being displayed.
func (p *Playback) Version() fingerprint.Version { return p.version }

// BoardSize returns the Life board dimensions.
func (p *Playback) BoardSize() core.Size { return p.history.Size }

// LiveMask marks the cells alive in the displayed generation.
func (p *Playback) LiveMask() []float32 { return p.live }

// DensityMask returns the density field the fingerprint was colored from.
func (p *Playback) DensityMask() []float32 { return p.density }

// Parameters describes the fingerprint and playback position.
func (p *Playback) Parameters() core.ParameterSnapshot {
	snap := core.ParameterSnapshot{Groups: []core.ParameterGroup{{
		Name: "Input",
		Params: []core.Parameter{
			core.StringParam("digest", "Digest", p.fp.Identifier(16)),
		},
	}}}
	snap.Groups = append(snap.Groups, p.image.Parameters().Groups...)
	snap.Groups = append(snap.Groups, core.ParameterGroup{
		Name: "Playback",
		Params: []core.Parameter{
			core.StringParam("frame", "Generation", strconv.Itoa(p.frame+1)+"/"+strconv.Itoa(p.history.Len())),
			core.IntParam("alive", "Alive", p.alive()),
		},
	})
	return snap
}

func (p *Playback) refreshLive() {
	board := p.history.Board(p.frame)
	for i, alive := range board.Cells() {
		if alive {
			p.live[i] = 1
		} else {
			p.live[i] = 0
		}
	}
}

func (p *Playback) alive() int {
	n := 0
	for _, v := range p.live {
		if v > 0 {
			n++
		}
	}
	return n
}

func toFloat32(src []float64) []float32 {
	out := make([]float32, len(src))
	for i, v := range src {
		out[i] = float32(v)
	}
	return out
}
