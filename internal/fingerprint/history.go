package fingerprint

import (
	"lifehash/internal/core"
	"lifehash/pkg/sims/life"
)

// History is the sequence of distinct boards visited by a run, oldest first,
// each packed one bit per cell.
type History struct {
	Size    core.Size
	Entries [][]byte
	// Cycled reports that the run stopped because a board repeated rather
	// than because the generation cap was reached.
	Cycled bool
}

// Len returns the number of recorded generations.
func (h *History) Len() int { return len(h.Entries) }

// Board unpacks generation i into a cell grid.
func (h *History) Board(i int) *life.CellGrid {
	g := life.NewCellGrid(h.Size.W, h.Size.H)
	g.SetBytes(h.Entries[i])
	return g
}

// Simulate seeds a board of the given size and records generations until one
// repeats an earlier board or maxGenerations boards have been recorded.
func Simulate(seed []byte, size core.Size, maxGenerations int) *History {
	sim := life.New(size.W, size.H)
	sim.Seed(seed)

	h := &History{Size: size}
	seen := make(map[string]struct{}, maxGenerations)
	for len(h.Entries) < maxGenerations {
		state := sim.Cells().Bytes()
		key := string(state)
		if _, ok := seen[key]; ok {
			h.Cycled = true
			break
		}
		seen[key] = struct{}{}
		h.Entries = append(h.Entries, state)
		sim.Step()
	}
	return h
}
