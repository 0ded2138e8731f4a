package fingerprint

import (
	"testing"

	"lifehash/internal/core"
	pcore "lifehash/pkg/core"
	"lifehash/pkg/sims/life"
)

func boardBytes(size core.Size, alive ...core.Point) []byte {
	g := life.NewCellGrid(size.W, size.H)
	for _, p := range alive {
		g.Set(p.X, p.Y, true)
	}
	return g.Bytes()
}

func TestDensityLastAliveWins(t *testing.T) {
	size := core.Square(2)
	h := &History{
		Size: size,
		Entries: [][]byte{
			boardBytes(size, core.Point{X: 0, Y: 0}),
			boardBytes(size, core.Point{X: 1, Y: 1}),
		},
	}
	d := NewDensity(h)
	cases := []struct {
		x, y int
		want float64
	}{
		{0, 0, 0.5},
		{1, 1, 1},
		{1, 0, 0},
		{0, 1, 0},
	}
	for _, tc := range cases {
		if got := d.At(tc.x, tc.y); got != tc.want {
			t.Errorf("density(%d,%d) = %v, want %v", tc.x, tc.y, got, tc.want)
		}
	}
}

func TestDensityLaterEntryOverwrites(t *testing.T) {
	size := core.Square(2)
	p := core.Point{X: 1, Y: 0}
	h := &History{
		Size: size,
		Entries: [][]byte{
			boardBytes(size, p),
			boardBytes(size),
			boardBytes(size, p),
			boardBytes(size),
		},
	}
	if got := NewDensity(h).At(p.X, p.Y); got != 0.75 {
		t.Fatalf("density = %v, want 0.75", got)
	}
}

func TestNormalizeSpansUnitInterval(t *testing.T) {
	rng := pcore.NewRNG(4)
	cfg, _ := Version2.Config()
	for i := 0; i < 16; i++ {
		h := Simulate(Seed(rng.Digest(32), cfg), cfg.Size(), cfg.MaxGenerations)
		d := NewDensity(h)
		if !d.Normalize() {
			continue
		}
		lo, hi := d.Range()
		if lo != 0 || hi != 1 {
			t.Fatalf("range after normalize = [%v, %v]", lo, hi)
		}
	}
}

func TestNormalizeUniformField(t *testing.T) {
	d := &Density{Grid: core.NewGrid(3, 3, 0.4)}
	if d.Normalize() {
		t.Fatalf("uniform field reported as rescaled")
	}
	for _, v := range d.Cells() {
		if v != 0.4 {
			t.Fatalf("uniform field changed to %v", v)
		}
	}
}

func TestDensityRangeWithinUnit(t *testing.T) {
	cfg, _ := Version1.Config()
	h := Simulate(Seed(pcore.NewRNG(8).Digest(32), cfg), cfg.Size(), cfg.MaxGenerations)
	lo, hi := NewDensity(h).Range()
	if lo < 0 || hi > 1 {
		t.Fatalf("range [%v, %v] outside unit interval", lo, hi)
	}
}
