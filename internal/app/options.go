package app

import (
	"log/slog"

	"lifehash/internal/fingerprint"
)

// Options configures the viewer window.
type Options struct {
	// Scale is the screen pixel size of one cell of the largest output.
	Scale int
	// TPS is the playback rate in generations per second.
	TPS int
	// HUDWidth is the parameter panel width; zero hides it.
	HUDWidth int
	// Seed drives the random digests picked with the R key.
	Seed   int64
	Logger *slog.Logger
}

func (o Options) withDefaults() Options {
	if o.Scale <= 0 {
		o.Scale = 8
	}
	if o.TPS <= 0 {
		o.TPS = 15
	}
	if o.HUDWidth < 0 {
		o.HUDWidth = 0
	}
	if o.Logger == nil {
		o.Logger = slog.New(slog.DiscardHandler)
	}
	return o
}

// ViewSide returns the side in screen pixels of the square fingerprint view.
// Every version's output is stretched to fill it.
func ViewSide(scale int) int {
	side := 0
	for _, v := range fingerprint.Versions() {
		cfg, _ := v.Config()
		side = max(side, cfg.OutputSize().W)
	}
	return side * scale
}
