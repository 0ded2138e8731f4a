package core

// Size describes the dimensions of a grid.
type Size struct {
	W int
	H int
}

// Point addresses a single grid cell.
type Point struct {
	X int
	Y int
}

// Square returns a Size with equal sides.
func Square(side int) Size { return Size{W: side, H: side} }

// Area returns the number of cells.
func (s Size) Area() int { return s.W * s.H }

// Scale returns the size multiplied by k on both axes.
func (s Size) Scale(k int) Size { return Size{W: s.W * k, H: s.H * k} }
