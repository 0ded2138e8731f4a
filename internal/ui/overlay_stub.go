//go:build !ebiten

package ui

import "lifehash/internal/core"

// Layers supplies per-cell intensities in [0, 1] for the overlay.
type Layers interface {
	BoardSize() core.Size
	LiveMask() []float32
	DensityMask() []float32
}

// Overlay is a no-op placeholder used when the ebiten build tag is absent.
type Overlay struct{}

// NewOverlay constructs a stub overlay.
func NewOverlay(Layers) *Overlay { return &Overlay{} }

// Update is a no-op in headless builds.
func (o *Overlay) Update() {}

// Draw is a no-op placeholder.
func (o *Overlay) Draw(any, int) {}
