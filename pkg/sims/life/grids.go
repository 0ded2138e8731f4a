package life

import (
	"lifehash/internal/core"
	pcore "lifehash/pkg/core"
)

// CellGrid holds alive/dead state for every cell of a toroidal board.
type CellGrid struct {
	*core.Grid[bool]
}

// NewCellGrid returns an all-dead board.
func NewCellGrid(w, h int) *CellGrid {
	return &CellGrid{Grid: core.NewGrid(w, h, false)}
}

// Bytes serializes the board row-major, one bit per cell, MSB first.
func (c *CellGrid) Bytes() []byte {
	return pcore.PackBits(c.Cells())
}

// SetBytes loads the board from its packed form. Missing bits are dead and
// surplus bits are ignored.
func (c *CellGrid) SetBytes(data []byte) {
	pcore.UnpackBits(c.Cells(), data)
}

// CountNeighbors returns the number of live cells among the eight toroidal
// neighbors of (x, y).
func (c *CellGrid) CountNeighbors(x, y int) int {
	count := 0
	c.ForNeighborhood(x, y, func(dx, dy, nx, ny int) {
		if dx == 0 && dy == 0 {
			return
		}
		if c.At(nx, ny) {
			count++
		}
	})
	return count
}

// Alive returns the number of live cells.
func (c *CellGrid) Alive() int {
	n := 0
	for _, v := range c.Cells() {
		if v {
			n++
		}
	}
	return n
}

// ChangeGrid marks the cells whose neighborhood must be recomputed on the
// next generation.
type ChangeGrid struct {
	*core.Grid[bool]
}

// NewChangeGrid returns a grid with nothing marked.
func NewChangeGrid(w, h int) *ChangeGrid {
	return &ChangeGrid{Grid: core.NewGrid(w, h, false)}
}

// MarkChanged flags (x, y) and its eight neighbors.
func (g *ChangeGrid) MarkChanged(x, y int) {
	g.ForNeighborhood(x, y, func(_, _, nx, ny int) {
		g.Set(nx, ny, true)
	})
}

// NextAlive applies Conway's rule: a live cell survives with two or three
// live neighbors, a dead cell is born with exactly three.
func NextAlive(alive bool, neighbors int) bool {
	if alive {
		return neighbors == 2 || neighbors == 3
	}
	return neighbors == 3
}

// NextGeneration writes the successor of cur into next, recomputing only the
// cells flagged in change. Unflagged cells carry their state forward. Every
// cell whose state flips is marked, with its neighbors, in nextChange.
func NextGeneration(cur *CellGrid, change *ChangeGrid, next *CellGrid, nextChange *ChangeGrid) {
	next.Fill(false)
	nextChange.Fill(false)
	w, h := cur.W, cur.H
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			alive := cur.At(x, y)
			if !change.At(x, y) {
				next.Set(x, y, alive)
				continue
			}
			nextAlive := NextAlive(alive, cur.CountNeighbors(x, y))
			next.Set(x, y, nextAlive)
			if nextAlive != alive {
				nextChange.MarkChanged(x, y)
			}
		}
	}
}

// FullStep writes the successor of cur into next by recomputing every cell.
func FullStep(cur, next *CellGrid) {
	w, h := cur.W, cur.H
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			next.Set(x, y, NextAlive(cur.At(x, y), cur.CountNeighbors(x, y)))
		}
	}
}
