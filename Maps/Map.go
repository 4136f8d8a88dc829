// Package Maps implements hash tables and the small list map used as their buckets.
//
// Tables take the hash function of their keys, HashF, as a public field set by the constructors; a
// nil hash function passed to a constructor selects Go_Collections.Hasher. A good hash function for
// the key type, such as Go_Collections.HashString for strings, is worth supplying.
// Tables aren't safe for concurrent use, and the result of their iterators is undefined if the table
// is modified during the iteration.
package Maps

import Go_Collections "github.com/g-m-twostay/go-collections"

var (
	_ Go_Collections.Map[int, int] = (*ListMap[int, int])(nil)
	_ Go_Collections.Map[int, int] = (*ClosedMap[int, int])(nil)
	_ Go_Collections.Map[int, int] = (*ChainMap[int, int])(nil)
)

func hashOrDefault[K comparable](hashF func(K) uint) func(K) uint {
	if hashF == nil {
		return Go_Collections.NewHasher[K]().Hash
	}
	return hashF
}

// tableLen for capacity entries at load factor.
func tableLen(capacity int, load float64) int {
	if capacity <= 0 {
		capacity = Go_Collections.DefaultCapacity
	}
	return Go_Collections.NextPrime(int(float64(capacity) / load))
}
