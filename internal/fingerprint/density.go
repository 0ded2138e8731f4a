package fingerprint

import (
	"lifehash/internal/core"
	"lifehash/pkg/sims/life"
)

// Density holds, per cell, how late in the history the cell was last alive.
type Density struct {
	*core.Grid[float64]
}

// NewDensity overlays every history entry in chronological order. Entry i
// writes (i+1)/len to each cell alive in it, so the last live entry wins.
func NewDensity(h *History) *Density {
	d := &Density{Grid: core.NewGrid(h.Size.W, h.Size.H, 0.0)}
	scratch := life.NewCellGrid(h.Size.W, h.Size.H)
	n := float64(h.Len())
	for i, entry := range h.Entries {
		scratch.SetBytes(entry)
		d.Overlay(scratch, clamp01(float64(i+1)/n))
	}
	return d
}

// Overlay writes frac into every cell alive in cells.
func (d *Density) Overlay(cells *life.CellGrid, frac float64) {
	src := cells.Cells()
	dst := d.Cells()
	for i, alive := range src {
		if alive {
			dst[i] = frac
		}
	}
}

// Range returns the smallest and largest values in the field.
func (d *Density) Range() (lo, hi float64) {
	cells := d.Cells()
	lo, hi = cells[0], cells[0]
	for _, v := range cells[1:] {
		lo = min(lo, v)
		hi = max(hi, v)
	}
	return lo, hi
}

// Normalize rescales the field so its values span [0, 1] exactly. A uniform
// field has no span to stretch and is left unchanged; Normalize reports
// whether it rescaled.
func (d *Density) Normalize() bool {
	lo, hi := d.Range()
	if lo == hi {
		return false
	}
	cells := d.Cells()
	for i, v := range cells {
		cells[i] = lerpFrom(lo, hi, v)
	}
	return true
}
