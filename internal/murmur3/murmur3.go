package murmur3

import "encoding/binary"

const (
	c1 = uint32(0xcc9e2d51)
	c2 = uint32(0x1b873593)
)

func fmix32(h uint32) uint32 {
	h ^= h >> 16
	h *= 0x85ebca6b
	h ^= h >> 13
	h *= 0xc2b2ae35
	h ^= h >> 16
	return h
}

func rotl32(x, r uint32) uint32 {
	return (x << r) | (x >> (32 - r))
}

func mixK1(k1 uint32) uint32 {
	k1 *= c1
	k1 = rotl32(k1, 15)
	k1 *= c2
	return k1
}

// Sum32 returns the MurmurHash3 x86_32 digest of data with seed 0.
func Sum32(data []byte) uint32 {
	return Sum32WithSeed(data, 0)
}

// Sum32WithSeed returns the MurmurHash3 x86_32 digest of data.
// Empty input always hashes to 0 when seed is 0.
func Sum32WithSeed(data []byte, seed uint32) uint32 {
	if len(data) == 0 && seed == 0 {
		return 0
	}

	h1 := seed
	nblocks := len(data) / 4

	// body
	for i := 0; i < nblocks; i++ {
		k1 := binary.LittleEndian.Uint32(data[i*4:])
		h1 ^= mixK1(k1)
		h1 = rotl32(h1, 13)
		h1 = h1*5 + 0xe6546b64
	}

	// tail
	tail := data[nblocks*4:]
	k1 := uint32(0)
	switch len(data) & 3 {
	case 3:
		k1 ^= uint32(tail[2]) << 16
		fallthrough
	case 2:
		k1 ^= uint32(tail[1]) << 8
		fallthrough
	case 1:
		k1 ^= uint32(tail[0])
		h1 ^= mixK1(k1)
	}

	// finalization
	h1 ^= uint32(len(data))
	return fmix32(h1)
}
