// Package sweep measures how strongly fingerprints react to single-bit
// changes in their digest, and how generation choices are distributed,
// across many random digests.
package sweep

import (
	"context"
	"fmt"
	"runtime"
	"sort"
	"sync"

	"lifehash/internal/fingerprint"
	pcore "lifehash/pkg/core"
)

// Sample is one digest and the bit flipped to produce its neighbour.
type Sample struct {
	Digest []byte
	Bit    int
}

// Samples draws n reproducible samples of size-byte digests.
func Samples(seed int64, n, size int) []Sample {
	rng := pcore.NewRNG(seed)
	out := make([]Sample, n)
	for i := range out {
		out[i] = Sample{Digest: rng.Digest(size), Bit: rng.IntN(size * 8)}
	}
	return out
}

// Result summarises one version over every sample.
type Result struct {
	Version fingerprint.Version
	Samples int

	// MeanDiff, MinDiff and MaxDiff are fractions of output pixels that
	// changed when the sample bit was flipped.
	MeanDiff float64
	MinDiff  float64
	MaxDiff  float64

	MeanGenerations float64
	Cycled          int
	Strategies      map[fingerprint.Strategy]int
	Patterns        map[fingerprint.Pattern]int
}

type job struct {
	version fingerprint.Version
	sample  Sample
}

type outcome struct {
	version     fingerprint.Version
	diff        float64
	generations int
	cycled      bool
	strategy    fingerprint.Strategy
	pattern     fingerprint.Pattern
	err         error
}

// Run evaluates every sample under every version using a pool of workers.
// A non-positive worker count means one per CPU. Results follow the order
// of versions.
func Run(ctx context.Context, versions []fingerprint.Version, samples []Sample, workers int) ([]Result, error) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	jobs := make(chan job)
	outcomes := make(chan outcome)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				select {
				case outcomes <- evaluate(j):
				case <-ctx.Done():
					return
				}
			}
		}()
	}

	go func() {
		wg.Wait()
		close(outcomes)
	}()

	go func() {
		defer close(jobs)
		for _, v := range versions {
			for _, s := range samples {
				select {
				case jobs <- job{version: v, sample: s}:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	results := make(map[fingerprint.Version]*Result, len(versions))
	for _, v := range versions {
		results[v] = &Result{
			Version:    v,
			MinDiff:    1,
			Strategies: make(map[fingerprint.Strategy]int),
			Patterns:   make(map[fingerprint.Pattern]int),
		}
	}
	var firstErr error
	for o := range outcomes {
		if o.err != nil {
			if firstErr == nil {
				firstErr = o.err
				cancel()
			}
			continue
		}
		r := results[o.version]
		r.Samples++
		r.MeanDiff += o.diff
		r.MinDiff = min(r.MinDiff, o.diff)
		r.MaxDiff = max(r.MaxDiff, o.diff)
		r.MeanGenerations += float64(o.generations)
		if o.cycled {
			r.Cycled++
		}
		r.Strategies[o.strategy]++
		r.Patterns[o.pattern]++
	}
	if firstErr != nil {
		return nil, firstErr
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out := make([]Result, 0, len(versions))
	for _, v := range versions {
		r := results[v]
		if r.Samples > 0 {
			r.MeanDiff /= float64(r.Samples)
			r.MeanGenerations /= float64(r.Samples)
		} else {
			r.MinDiff = 0
		}
		out = append(out, *r)
	}
	return out, nil
}

func evaluate(j job) outcome {
	a, err := fingerprint.Generate(j.sample.Digest, j.version)
	if err != nil {
		return outcome{err: err}
	}
	b, err := fingerprint.Generate(pcore.FlipBit(j.sample.Digest, j.sample.Bit), j.version)
	if err != nil {
		return outcome{err: err}
	}
	return outcome{
		version:     j.version,
		diff:        DiffFraction(a, b),
		generations: a.Generations,
		cycled:      a.Cycled,
		strategy:    a.Gradient.Strategy,
		pattern:     a.Pattern,
	}
}

// DiffFraction returns the fraction of pixels whose 8-bit color differs.
// Images of different sizes differ everywhere.
func DiffFraction(a, b *fingerprint.Image) float64 {
	pa, pb := a.Pixels(false), b.Pixels(false)
	if len(pa) != len(pb) || len(pa) == 0 {
		return 1
	}
	diff := 0
	for i := 0; i < len(pa); i += 3 {
		if pa[i] != pb[i] || pa[i+1] != pb[i+1] || pa[i+2] != pb[i+2] {
			diff++
		}
	}
	return float64(diff) / float64(len(pa)/3)
}

// Counts formats a histogram as "name=count" pairs sorted by name.
func Counts[K interface {
	comparable
	fmt.Stringer
}](m map[K]int) []string {
	out := make([]string, 0, len(m))
	for k, n := range m {
		out = append(out, fmt.Sprintf("%s=%d", k, n))
	}
	sort.Strings(out)
	return out
}
