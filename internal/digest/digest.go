// Package digest turns caller inputs into the fixed-length digests that
// fingerprints are generated from.
package digest

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"hash"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/zeebo/blake3"
	"golang.org/x/crypto/blake2b"
)

// Size is the length in bytes of every digest this package produces.
const Size = 32

// DefaultIdentifierLength is the number of hex characters Identifier uses
// when given a non-positive length.
const DefaultIdentifierLength = 7

// ErrInvalidDigest is returned when a hex digest does not decode to Size
// bytes.
var ErrInvalidDigest = errors.New("digest: invalid hex digest")

// Algorithm selects the hash applied to non-digest inputs.
type Algorithm uint8

const (
	SHA256 Algorithm = iota
	BLAKE3
	BLAKE2b
)

// String returns the algorithm's configuration name.
func (a Algorithm) String() string {
	switch a {
	case SHA256:
		return "sha256"
	case BLAKE3:
		return "blake3"
	case BLAKE2b:
		return "blake2b"
	default:
		return fmt.Sprintf("unknown(%d)", a)
	}
}

// ParseAlgorithm parses an algorithm from its configuration name.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch strings.ToLower(name) {
	case "sha256", "sha-256", "":
		return SHA256, nil
	case "blake3":
		return BLAKE3, nil
	case "blake2b", "blake2b-256":
		return BLAKE2b, nil
	default:
		return 0, fmt.Errorf("unknown hash algorithm: %q", name)
	}
}

func (a Algorithm) newHash() (hash.Hash, error) {
	switch a {
	case SHA256:
		return sha256.New(), nil
	case BLAKE3:
		return blake3.New(), nil
	case BLAKE2b:
		return blake2b.New256(nil)
	default:
		return nil, fmt.Errorf("unknown hash algorithm: %d", a)
	}
}

// Fingerprint is a Size-byte digest identifying one input.
type Fingerprint struct {
	Digest []byte
}

// String returns the lowercase hex form of the digest.
func (f Fingerprint) String() string { return hex.EncodeToString(f.Digest) }

// Identifier returns the first n hex characters of the digest, a short
// human-comparable label.
func (f Fingerprint) Identifier(n int) string {
	if n <= 0 {
		n = DefaultIdentifierLength
	}
	s := f.String()
	if n > len(s) {
		n = len(s)
	}
	return s[:n]
}

// Equal reports whether two fingerprints carry the same digest.
func (f Fingerprint) Equal(other Fingerprint) bool {
	return string(f.Digest) == string(other.Digest)
}

// FromBytes hashes data.
func FromBytes(data []byte, alg Algorithm) (Fingerprint, error) {
	h, err := alg.newHash()
	if err != nil {
		return Fingerprint{}, err
	}
	h.Write(data)
	return Fingerprint{Digest: h.Sum(nil)[:Size]}, nil
}

// FromString hashes the UTF-8 bytes of s.
func FromString(s string, alg Algorithm) (Fingerprint, error) {
	return FromBytes([]byte(s), alg)
}

// FromUUID hashes the sixteen raw bytes of id.
func FromUUID(id uuid.UUID, alg Algorithm) (Fingerprint, error) {
	return FromBytes(id[:], alg)
}

// FromReader hashes everything read from r.
func FromReader(r io.Reader, alg Algorithm) (Fingerprint, error) {
	h, err := alg.newHash()
	if err != nil {
		return Fingerprint{}, err
	}
	if _, err := io.Copy(h, r); err != nil {
		return Fingerprint{}, fmt.Errorf("hash input: %w", err)
	}
	return Fingerprint{Digest: h.Sum(nil)[:Size]}, nil
}

// FromFile hashes the contents of the file at path.
func FromFile(path string, alg Algorithm) (Fingerprint, error) {
	f, err := os.Open(path)
	if err != nil {
		return Fingerprint{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	fp, err := FromReader(f, alg)
	if err != nil {
		return Fingerprint{}, fmt.Errorf("%s: %w", path, err)
	}
	return fp, nil
}

// ParseHex decodes an existing digest. It is used as-is, not rehashed.
func ParseHex(s string) (Fingerprint, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "0x")
	raw, err := hex.DecodeString(s)
	if err != nil {
		return Fingerprint{}, fmt.Errorf("%w: %v", ErrInvalidDigest, err)
	}
	if len(raw) != Size {
		return Fingerprint{}, fmt.Errorf("%w: %d bytes, want %d", ErrInvalidDigest, len(raw), Size)
	}
	return Fingerprint{Digest: raw}, nil
}
