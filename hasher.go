package chainhash

import (
	"github.com/cespare/xxhash/v2"
	"github.com/zeebo/xxh3"

	"github.com/theflywheel/chainhash/internal/murmur3"
)

// Hasher maps a key's bytes to a 32-bit digest used to select a bucket.
// It must be deterministic and free of side effects.
type Hasher func(b []byte) uint32

// Murmur3 is the default hasher: MurmurHash3 x86_32 with seed 0.
func Murmur3(b []byte) uint32 {
	return murmur3.Sum32(b)
}

// XXHash hashes with 64-bit xxHash and folds the digest to 32 bits.
func XXHash(b []byte) uint32 {
	return fold64(xxhash.Sum64(b))
}

// XXH3 hashes with 64-bit XXH3 and folds the digest to 32 bits.
func XXH3(b []byte) uint32 {
	return fold64(xxh3.Hash(b))
}

func fold64(h uint64) uint32 {
	return uint32(h) ^ uint32(h>>32)
}
