package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
// It is used to draw sample digests for sweeps and tests, never by the
// fingerprint pipeline itself.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// IntN returns a random int in [0, n).
func (r *RNG) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return r.r.IntN(n)
}

// Digest returns n random bytes.
func (r *RNG) Digest(n int) []byte {
	buf := make([]byte, n)
	FillBytes(r.r, buf)
	return buf
}

// FillBytes fills the buffer with random bytes using the RNG.
func FillBytes(r *rand.Rand, buf []byte) {
	for i := range buf {
		buf[i] = uint8(r.IntN(256))
	}
}

// FlipBit returns a copy of data with bit i (MSB-first) inverted.
func FlipBit(data []byte, i int) []byte {
	out := append([]byte(nil), data...)
	out[i/8] ^= 0x80 >> uint(i%8)
	return out
}
