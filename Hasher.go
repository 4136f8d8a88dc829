package Go_Collections

import (
	"hash/maphash"
	"math/bits"

	"github.com/cespare/xxhash"
)

// HashString hashes s with xxhash. Suitable as the hash function of string keyed tables.
func HashString(s string) uint {
	return uint(xxhash.Sum64String(s))
}

// HashBytes hashes b with xxhash.
func HashBytes(b []byte) uint {
	return uint(xxhash.Sum64(b))
}

// HashInt mixes the bits of v, so that keys differing only in the high bits don't collide after
// the modulo by the table length.
func HashInt(v int) uint {
	x := uint64(v)
	x ^= x >> 33
	x *= 0xff51afd7ed558ccd
	x ^= x >> 33
	x *= 0xc4ceb9fe1a85ec53
	x ^= x >> 33
	if bits.UintSize == 32 {
		return uint(x ^ x>>32)
	}
	return uint(x)
}

// Hasher hashes any comparable key through hash/maphash with a fixed seed. Create it using NewHasher.
// The zero value isn't usable.
type Hasher[K comparable] struct {
	seed maphash.Seed
}

func NewHasher[K comparable]() Hasher[K] {
	return Hasher[K]{maphash.MakeSeed()}
}

// Hash of k. Equal keys have equal hashes for the same Hasher.
func (u Hasher[K]) Hash(k K) uint {
	return uint(maphash.Comparable(u.seed, k))
}
