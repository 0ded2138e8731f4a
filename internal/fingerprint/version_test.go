package fingerprint

import (
	"errors"
	"testing"
)

func TestParseVersionRoundTrip(t *testing.T) {
	for _, v := range Versions() {
		got, err := ParseVersion(v.String())
		if err != nil || got != v {
			t.Fatalf("ParseVersion(%q) = %v, %v", v.String(), got, err)
		}
		text, err := v.MarshalText()
		if err != nil {
			t.Fatalf("marshal %v: %v", v, err)
		}
		var back Version
		if err := back.UnmarshalText(text); err != nil || back != v {
			t.Fatalf("unmarshal %q = %v, %v", text, back, err)
		}
	}
	if v, err := ParseVersion(" V2 "); err != nil || v != Version2 {
		t.Fatalf("shorthand = %v, %v", v, err)
	}
	if _, err := ParseVersion("version3"); !errors.Is(err, ErrUnknownVersion) {
		t.Fatalf("err = %v", err)
	}
}

func TestEntropyBits(t *testing.T) {
	want := map[Version]int{
		Version1:          53,
		Version2:          55,
		Detailed:          54,
		Fiducial:          28,
		GrayscaleFiducial: 0,
	}
	for v, bits := range want {
		cfg, err := v.Config()
		if err != nil {
			t.Fatalf("%v: %v", v, err)
		}
		if got := cfg.EntropyBits(); got != bits {
			t.Errorf("%s: entropy bits %d, want %d", v, got, bits)
		}
		if cfg.EntropyBytes() > 32 {
			t.Errorf("%s: needs more than a SHA-256 digest", v)
		}
	}
}

func TestConfigValidate(t *testing.T) {
	for _, v := range Versions() {
		cfg, _ := v.Config()
		if err := cfg.Validate(); err != nil {
			t.Fatalf("%s: %v", v, err)
		}
	}
	bad := []Config{
		{Side: 0, MaxGenerations: 1, SeedBlocks: 1},
		{Side: 4, MaxGenerations: 0, SeedBlocks: 1},
		{Side: 4, MaxGenerations: 1, SeedBlocks: 0},
		{Side: 4, MaxGenerations: 1, SeedBlocks: 1, DiscardBits: -1},
		{Side: 4, MaxGenerations: 1, SeedBlocks: 1, Palette: Palette(9)},
	}
	for i, cfg := range bad {
		if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("case %d: err = %v", i, err)
		}
	}
}

func TestConfigParameters(t *testing.T) {
	cfg, _ := Detailed.Config()
	params := cfg.Parameters()
	cases := map[string]string{
		"version":      "detailed",
		"side":         "32",
		"output_side":  "64",
		"palette":      "safe",
		"entropy_bits": "54",
	}
	for key, want := range cases {
		p, ok := params.Lookup(key)
		if !ok || p.Value != want {
			t.Errorf("%s = %+v (found %v), want %s", key, p, ok, want)
		}
	}
}
