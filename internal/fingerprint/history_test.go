package fingerprint

import (
	"testing"

	"lifehash/internal/core"
	pcore "lifehash/pkg/core"
)

func TestSimulateBlinkerCycles(t *testing.T) {
	size := core.Square(5)
	seed := boardBytes(size,
		core.Point{X: 2, Y: 1},
		core.Point{X: 2, Y: 2},
		core.Point{X: 2, Y: 3},
	)
	h := Simulate(seed, size, 100)
	if h.Len() != 2 || !h.Cycled {
		t.Fatalf("len=%d cycled=%v, want 2 true", h.Len(), h.Cycled)
	}
	if !h.Board(1).At(1, 2) || h.Board(1).At(2, 1) {
		t.Fatalf("second generation is not the horizontal phase")
	}
}

func TestSimulateEmptyBoard(t *testing.T) {
	h := Simulate(nil, core.Square(4), 10)
	if h.Len() != 1 || !h.Cycled {
		t.Fatalf("len=%d cycled=%v, want 1 true", h.Len(), h.Cycled)
	}
}

func TestSimulateCap(t *testing.T) {
	size := core.Square(16)
	seed := pcore.NewRNG(1).Digest(32)
	h := Simulate(seed, size, 1)
	if h.Len() != 1 || h.Cycled {
		t.Fatalf("len=%d cycled=%v, want 1 false", h.Len(), h.Cycled)
	}
}

func TestHistoryDistinctAndBounded(t *testing.T) {
	rng := pcore.NewRNG(12)
	for _, v := range Versions() {
		cfg, _ := v.Config()
		for i := 0; i < 8; i++ {
			h := Simulate(Seed(rng.Digest(32), cfg), cfg.Size(), cfg.MaxGenerations)
			if h.Len() > cfg.MaxGenerations {
				t.Fatalf("%s: history length %d exceeds %d", v, h.Len(), cfg.MaxGenerations)
			}
			if !h.Cycled && h.Len() != cfg.MaxGenerations {
				t.Fatalf("%s: stopped at %d without a cycle", v, h.Len())
			}
			seen := make(map[string]bool, h.Len())
			for _, e := range h.Entries {
				if seen[string(e)] {
					t.Fatalf("%s: duplicate history entry", v)
				}
				seen[string(e)] = true
			}
		}
	}
}
