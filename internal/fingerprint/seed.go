package fingerprint

import "crypto/sha256"

// Seed builds the initial board bits for cfg from digest. The first block is
// the digest hashed LeadingRehashes times and each further block hashes the
// previous one, so a single block with no rehash is the digest itself.
func Seed(digest []byte, cfg Config) []byte {
	block := append([]byte(nil), digest...)
	for i := 0; i < cfg.LeadingRehashes; i++ {
		block = rehash(block)
	}
	seed := make([]byte, 0, len(block)*max(cfg.SeedBlocks, 1))
	for i := 0; i < cfg.SeedBlocks; i++ {
		if i > 0 {
			block = rehash(block)
		}
		seed = append(seed, block...)
	}
	return seed
}

func rehash(b []byte) []byte {
	sum := sha256.Sum256(b)
	return sum[:]
}
