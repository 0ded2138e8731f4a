package fingerprint

import (
	"fmt"

	"lifehash/internal/core"
	pcore "lifehash/pkg/core"
)

// Pattern is the symmetry group used to expand the density field.
type Pattern int

const (
	// Snowflake mirrors the field across both axes.
	Snowflake Pattern = iota
	// Pinwheel places the field in four quarter-turn rotations.
	Pinwheel
	// FiducialPattern draws the field once, unmirrored and at its own size.
	FiducialPattern
)

func (p Pattern) String() string {
	switch p {
	case Snowflake:
		return "snowflake"
	case Pinwheel:
		return "pinwheel"
	case FiducialPattern:
		return "fiducial"
	default:
		return fmt.Sprintf("pattern(%d)", int(p))
	}
}

// SelectPattern reads the pattern bit from e. A set bit selects Snowflake.
func SelectPattern(e *pcore.Entropy) Pattern {
	if (reader{e}).bit() {
		return Snowflake
	}
	return Pinwheel
}

type transform struct {
	transpose, reflectX, reflectY bool
}

var (
	snowflakeTransforms = []transform{
		{},
		{reflectX: true},
		{reflectY: true},
		{reflectX: true, reflectY: true},
	}
	pinwheelTransforms = []transform{
		{},
		{transpose: true, reflectX: true},
		{transpose: true, reflectY: true},
		{reflectX: true, reflectY: true},
	}
	fiducialTransforms = []transform{{}}
)

func (p Pattern) transforms() ([]transform, int) {
	switch p {
	case Snowflake:
		return snowflakeTransforms, 2
	case Pinwheel:
		return pinwheelTransforms, 2
	default:
		return fiducialTransforms, 1
	}
}

func (t transform) apply(x, y, maxX, maxY int) (int, int) {
	if t.transpose {
		x, y = y, x
	}
	if t.reflectX {
		x = maxX - x
	}
	if t.reflectY {
		y = maxY - y
	}
	return x, y
}

// ColorGrid is a rendered fingerprint, one color per output pixel.
type ColorGrid = core.Grid[Color]

// Render evaluates g at every density cell and writes the color at each
// position the pattern maps that cell to.
func Render(d *Density, g Gradient, p Pattern) *ColorGrid {
	transforms, k := p.transforms()
	out := core.NewGrid(d.W*k, d.H*k, Black)
	maxX, maxY := out.W-1, out.H-1
	d.ForEach(func(x, y int) {
		c := g.At(d.At(x, y))
		for _, t := range transforms {
			tx, ty := t.apply(x, y, maxX, maxY)
			out.Set(tx, ty, c)
		}
	})
	return out
}
