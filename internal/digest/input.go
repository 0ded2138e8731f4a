package digest

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Kind says how a command-line argument should be interpreted.
type Kind string

const (
	KindHex    Kind = "hex"
	KindString Kind = "string"
	KindFile   Kind = "file"
	KindUUID   Kind = "uuid"
	// KindAuto treats a 64-character hex argument as a digest, a UUID as a
	// UUID, and anything else as a string.
	KindAuto Kind = "auto"
)

// ParseKind validates an input kind name.
func ParseKind(name string) (Kind, error) {
	k := Kind(strings.ToLower(name))
	switch k {
	case KindHex, KindString, KindFile, KindUUID, KindAuto:
		return k, nil
	case "":
		return KindAuto, nil
	default:
		return "", fmt.Errorf("unknown input kind: %q", name)
	}
}

// Resolve produces the fingerprint for arg according to kind.
func Resolve(arg string, kind Kind, alg Algorithm) (Fingerprint, error) {
	switch kind {
	case KindHex:
		return ParseHex(arg)
	case KindString:
		return FromString(arg, alg)
	case KindFile:
		return FromFile(arg, alg)
	case KindUUID:
		id, err := uuid.Parse(arg)
		if err != nil {
			return Fingerprint{}, fmt.Errorf("parse uuid: %w", err)
		}
		return FromUUID(id, alg)
	case KindAuto:
		if len(arg) == Size*2 {
			if fp, err := ParseHex(arg); err == nil {
				return fp, nil
			}
		}
		if id, err := uuid.Parse(arg); err == nil && len(arg) == 36 {
			return FromUUID(id, alg)
		}
		return FromString(arg, alg)
	default:
		return Fingerprint{}, fmt.Errorf("unknown input kind: %q", kind)
	}
}
