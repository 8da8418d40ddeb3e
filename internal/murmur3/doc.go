// Package murmur3 implements the 32-bit x86 variant of MurmurHash3.
//
// The table uses it to pick a bucket, so the only contract that matters is
// bit-exact agreement with the published reference implementation:
//
//	Sum32(nil)                    == 0
//	Sum32([]byte{1, 2, 3})        == 0x80d1d204
//	Sum32([]byte("hello"))        == 0x248bfa47
//
// Blocks are read as little-endian words regardless of the host byte order.
package murmur3
