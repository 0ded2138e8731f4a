package life

import (
	"lifehash/internal/core"
)

// Life runs Conway's Game of Life on a torus using a pair of cell grids and a
// pair of change grids that are swapped after every generation.
type Life struct {
	w, h      int
	cur, nxt  *CellGrid
	curChange *ChangeGrid
	nxtChange *ChangeGrid
}

// New returns a Life simulation with the provided dimensions.
func New(w, h int) *Life {
	return &Life{
		w:         w,
		h:         h,
		cur:       NewCellGrid(w, h),
		nxt:       NewCellGrid(w, h),
		curChange: NewChangeGrid(w, h),
		nxtChange: NewChangeGrid(w, h),
	}
}

// Size returns the grid dimensions.
func (l *Life) Size() core.Size { return core.Size{W: l.w, H: l.h} }

// Cells exposes the current generation.
func (l *Life) Cells() *CellGrid { return l.cur }

// Seed loads the board from packed bits and marks every cell for
// recomputation.
func (l *Life) Seed(data []byte) {
	l.cur.SetBytes(data)
	l.curChange.Fill(true)
}

// Step advances the simulation by one generation.
func (l *Life) Step() {
	NextGeneration(l.cur, l.curChange, l.nxt, l.nxtChange)
	l.cur, l.nxt = l.nxt, l.cur
	l.curChange, l.nxtChange = l.nxtChange, l.curChange
}
