package fingerprint

import (
	"bytes"
	"crypto/sha256"
	"testing"

	pcore "lifehash/pkg/core"
)

func TestSeedChains(t *testing.T) {
	digest := pcore.NewRNG(1).Digest(32)
	h1 := sha256.Sum256(digest)
	h2 := sha256.Sum256(h1[:])
	h3 := sha256.Sum256(h2[:])
	h4 := sha256.Sum256(h3[:])

	cases := []struct {
		v    Version
		want [][]byte
	}{
		{Version1, [][]byte{digest}},
		{Version2, [][]byte{h1[:]}},
		{Detailed, [][]byte{digest, h1[:], h2[:], h3[:]}},
		{Fiducial, [][]byte{digest, h1[:], h2[:], h3[:]}},
		{GrayscaleFiducial, [][]byte{h1[:], h2[:], h3[:], h4[:]}},
	}
	for _, tc := range cases {
		cfg, _ := tc.v.Config()
		got := Seed(digest, cfg)
		if want := bytes.Join(tc.want, nil); !bytes.Equal(got, want) {
			t.Errorf("%s: seed mismatch", tc.v)
		}
		if bits := len(got) * 8; bits != cfg.Size().Area() {
			t.Errorf("%s: seed has %d bits for %d cells", tc.v, bits, cfg.Size().Area())
		}
	}
}

func TestSeedDoesNotAliasDigest(t *testing.T) {
	digest := []byte{1, 2, 3, 4}
	cfg, _ := Version1.Config()
	seed := Seed(digest, cfg)
	seed[0] = 9
	if digest[0] != 1 {
		t.Fatalf("seed aliases digest")
	}
}

func TestSeedingDistinctAcrossVersions(t *testing.T) {
	rng := pcore.NewRNG(2)
	v1, _ := Version1.Config()
	v2, _ := Version2.Config()
	detailed, _ := Detailed.Config()
	gray, _ := GrayscaleFiducial.Config()
	for i := 0; i < 16; i++ {
		digest := rng.Digest(32)
		a := Simulate(Seed(digest, v1), v1.Size(), 1).Entries[0]
		b := Simulate(Seed(digest, v2), v2.Size(), 1).Entries[0]
		if bytes.Equal(a, b) {
			t.Fatalf("version1 and version2 share an initial board")
		}
		c := Simulate(Seed(digest, detailed), detailed.Size(), 1).Entries[0]
		d := Simulate(Seed(digest, gray), gray.Size(), 1).Entries[0]
		if bytes.Equal(c, d) {
			t.Fatalf("detailed and grayscale-fiducial share an initial board")
		}
	}
}
