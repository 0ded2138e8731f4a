package digest

import (
	"crypto/sha256"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/zeebo/blake3"
	"golang.org/x/crypto/blake2b"
)

func TestFromStringAlgorithms(t *testing.T) {
	input := "Hello"
	sha := sha256.Sum256([]byte(input))
	b3 := blake3.Sum256([]byte(input))
	b2 := blake2b.Sum256([]byte(input))
	cases := []struct {
		alg  Algorithm
		want []byte
	}{
		{SHA256, sha[:]},
		{BLAKE3, b3[:]},
		{BLAKE2b, b2[:]},
	}
	for _, tc := range cases {
		fp, err := FromString(input, tc.alg)
		if err != nil {
			t.Fatalf("%v: %v", tc.alg, err)
		}
		if string(fp.Digest) != string(tc.want) {
			t.Errorf("%v: digest mismatch", tc.alg)
		}
		if len(fp.Digest) != Size {
			t.Errorf("%v: digest length %d", tc.alg, len(fp.Digest))
		}
	}
}

func TestIdentifier(t *testing.T) {
	fp, err := FromString("Hello", SHA256)
	if err != nil {
		t.Fatal(err)
	}
	// sha256("Hello") = 185f8db3...
	if got := fp.Identifier(0); got != "185f8db" {
		t.Fatalf("identifier = %q", got)
	}
	if got := fp.Identifier(4); got != "185f" {
		t.Fatalf("identifier(4) = %q", got)
	}
	if got := fp.Identifier(1000); got != fp.String() {
		t.Fatalf("long identifier = %q", got)
	}
}

func TestParseHex(t *testing.T) {
	hexDigest := strings.Repeat("ab", Size)
	fp, err := ParseHex("0x" + hexDigest)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if fp.String() != hexDigest {
		t.Fatalf("round trip = %s", fp.String())
	}
	for _, bad := range []string{"abc", strings.Repeat("ab", 31), strings.Repeat("zz", 32)} {
		if _, err := ParseHex(bad); !errors.Is(err, ErrInvalidDigest) {
			t.Errorf("ParseHex(%q) err = %v", bad, err)
		}
	}
}

func TestFromFileMatchesBytes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.bin")
	data := []byte("fingerprint me")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	a, err := FromFile(path, BLAKE3)
	if err != nil {
		t.Fatalf("file: %v", err)
	}
	b, _ := FromBytes(data, BLAKE3)
	if !a.Equal(b) {
		t.Fatalf("file and byte digests differ")
	}
	if _, err := FromFile(filepath.Join(t.TempDir(), "missing"), SHA256); err == nil {
		t.Fatalf("missing file did not fail")
	}
}

func TestResolveAuto(t *testing.T) {
	hexDigest := strings.Repeat("01", Size)
	fp, err := Resolve(hexDigest, KindAuto, SHA256)
	if err != nil || fp.String() != hexDigest {
		t.Fatalf("auto hex = %v, %v", fp, err)
	}

	id := uuid.MustParse("3d1b7d5e-93a4-4bd0-9b1c-0c6ad1f4a1b0")
	fp, err = Resolve(id.String(), KindAuto, SHA256)
	if err != nil {
		t.Fatal(err)
	}
	want, _ := FromUUID(id, SHA256)
	if !fp.Equal(want) {
		t.Fatalf("auto uuid not hashed as raw bytes")
	}

	fp, _ = Resolve("plain text", KindAuto, SHA256)
	want, _ = FromString("plain text", SHA256)
	if !fp.Equal(want) {
		t.Fatalf("auto string mismatch")
	}
}

func TestParseNames(t *testing.T) {
	for _, a := range []Algorithm{SHA256, BLAKE3, BLAKE2b} {
		got, err := ParseAlgorithm(a.String())
		if err != nil || got != a {
			t.Fatalf("ParseAlgorithm(%q) = %v, %v", a.String(), got, err)
		}
	}
	if _, err := ParseAlgorithm("md5"); err == nil {
		t.Fatalf("md5 accepted")
	}
	if k, err := ParseKind(""); err != nil || k != KindAuto {
		t.Fatalf("empty kind = %v, %v", k, err)
	}
	if _, err := ParseKind("url"); err == nil {
		t.Fatalf("url kind accepted")
	}
}
