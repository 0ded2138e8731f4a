package core

import "fmt"

// Grid stores a fixed-size 2D grid of values in row-major order. Direct
// access through At/Set panics on out-of-range coordinates; neighbor access
// goes through the wrapping accessors, which treat the grid as a torus.
type Grid[T any] struct {
	W, H int
	data []T
}

// NewGrid allocates a grid with every cell set to initial.
func NewGrid[T any](w, h int, initial T) *Grid[T] {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	g := &Grid[T]{W: w, H: h, data: make([]T, w*h)}
	g.Fill(initial)
	return g
}

// Size returns the grid dimensions.
func (g *Grid[T]) Size() Size { return Size{W: g.W, H: g.H} }

// Cells exposes the backing slice so callers can read/write values directly.
func (g *Grid[T]) Cells() []T { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid[T]) Index(x, y int) int {
	if x < 0 || y < 0 || x >= g.W || y >= g.H {
		panic(fmt.Sprintf("core: grid coordinate (%d,%d) outside %dx%d", x, y, g.W, g.H))
	}
	return y*g.W + x
}

// At returns the value at (x, y).
func (g *Grid[T]) At(x, y int) T { return g.data[g.Index(x, y)] }

// Set stores v at (x, y).
func (g *Grid[T]) Set(x, y int, v T) { g.data[g.Index(x, y)] = v }

// Wrap applies toroidal wrapping to the provided coordinates.
func (g *Grid[T]) Wrap(x, y int) (int, int) {
	return WrapIndex(x, g.W), WrapIndex(y, g.H)
}

// AtWrap returns the value at (x, y) after wrapping.
func (g *Grid[T]) AtWrap(x, y int) T {
	x, y = g.Wrap(x, y)
	return g.data[y*g.W+x]
}

// SetWrap stores v at (x, y) after wrapping.
func (g *Grid[T]) SetWrap(x, y int, v T) {
	x, y = g.Wrap(x, y)
	g.data[y*g.W+x] = v
}

// Fill sets every cell to v.
func (g *Grid[T]) Fill(v T) {
	for i := range g.data {
		g.data[i] = v
	}
}

// ForEach visits every coordinate, y outer and x inner.
func (g *Grid[T]) ForEach(fn func(x, y int)) {
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			fn(x, y)
		}
	}
}

// ForNeighborhood visits the 3x3 block centred on (x, y), including the
// centre itself, passing the offset and the wrapped coordinate.
func (g *Grid[T]) ForNeighborhood(x, y int, fn func(dx, dy, nx, ny int)) {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			nx, ny := g.Wrap(x+dx, y+dy)
			fn(dx, dy, nx, ny)
		}
	}
}

// WrapIndex maps i onto [0, n) with modular arithmetic that also handles
// negative values.
func WrapIndex(i, n int) int {
	if n <= 0 {
		return 0
	}
	return ((i % n) + n) % n
}
