package Maps

import (
	Go_Collections "github.com/g-m-twostay/go-collections"
	"github.com/g-m-twostay/go-collections/Iterators"
)

const (
	closedIdealLoad = 0.5 //sizes the initial table.
	closedMaxLoad   = 0.8 //the table grows once an insertion would go over it.
)

type slotState byte

const (
	empty slotState = iota
	tombstone
	occupied
)

// slot of a ClosedMap. A tombstone is a removed entry: searches go past it, insertions may reuse it.
type slot[K comparable, V any] struct {
	e  Go_Collections.Entry[K, V]
	st slotState
}

// ClosedMap is a hash table with open addressing and linear probing: key k is looked for at slots
// (HashF(k)+i) mod len for i=0,1,... until it's found or an empty slot ends the search.
// Every present key is reachable this way, as removals leave tombstones instead of empty slots.
// The table grows to the next prime >= twice its length when an insertion would bring the size over
// maxSize, which drops the tombstones.
type ClosedMap[K comparable, V any] struct {
	slots       []slot[K, V]
	sz, maxSize int
	HashF       func(K) uint
}

// NewClosedMap returns a table that can hold capacity entries at the ideal load factor before
// growing. capacity<=0 means Go_Collections.DefaultCapacity.
func NewClosedMap[K comparable, V any](capacity int, hashF func(K) uint) *ClosedMap[K, V] {
	u := &ClosedMap[K, V]{HashF: hashOrDefault(hashF)}
	u.init(tableLen(capacity, closedIdealLoad))
	return u
}

func (u *ClosedMap[K, V]) init(n int) {
	u.slots = make([]slot[K, V], n)
	u.sz, u.maxSize = 0, int(float64(n)*closedMaxLoad)
}

// search for key. Returns the index of its slot, or -1 if it's absent.
// Time: O(1) on average, O(len) worst case.
func (u *ClosedMap[K, V]) search(key K) int {
	l := uint(len(u.slots))
	start := u.HashF(key) % l
	for i := uint(0); i < l; i++ {
		j := (start + i) % l
		if s := &u.slots[j]; s.st == empty {
			break
		} else if s.st == occupied && s.e.Key == key {
			return int(j)
		}
	}
	return -1
}

// freeSlot on the probe path of key: the first tombstone or empty slot. key must be absent and the
// table not full.
func (u *ClosedMap[K, V]) freeSlot(key K) int {
	l := uint(len(u.slots))
	start := u.HashF(key) % l
	for i := uint(0); ; i++ {
		if j := (start + i) % l; u.slots[j].st != occupied {
			return int(j)
		}
	}
}

func (u *ClosedMap[K, V]) expand() {
	old := u.slots
	u.init(Go_Collections.NextPrime(len(old) * 2))
	for i := range old {
		if old[i].st == occupied {
			u.slots[u.freeSlot(old[i].e.Key)] = old[i]
			u.sz++
		}
	}
}

// Put [Go_Collections.Map.Put]
// Time: amortized O(1) on average.
func (u *ClosedMap[K, V]) Put(key K, val V) (V, bool) {
	if j := u.search(key); j >= 0 {
		old := u.slots[j].e.Val
		u.slots[j].e.Val = val
		return old, true
	}
	if u.sz+1 > u.maxSize {
		u.expand()
	}
	u.slots[u.freeSlot(key)] = slot[K, V]{Go_Collections.Entry[K, V]{Key: key, Val: val}, occupied}
	u.sz++
	return *new(V), false
}

// Get [Go_Collections.Map.Get]
// Time: O(1) on average.
func (u *ClosedMap[K, V]) Get(key K) (V, bool) {
	if j := u.search(key); j >= 0 {
		return u.slots[j].e.Val, true
	}
	return *new(V), false
}

// Remove [Go_Collections.Map.Remove]. The slot becomes a tombstone.
// Time: O(1) on average.
func (u *ClosedMap[K, V]) Remove(key K) (V, bool) {
	j := u.search(key)
	if j < 0 {
		return *new(V), false
	}
	old := u.slots[j].e.Val
	u.slots[j] = slot[K, V]{st: tombstone}
	u.sz--
	return old, true
}

func (u *ClosedMap[K, V]) Size() int {
	return u.sz
}

func (u *ClosedMap[K, V]) IsEmpty() bool {
	return u.sz == 0
}

// Capacity is the number of slots of the table.
func (u *ClosedMap[K, V]) Capacity() int {
	return len(u.slots)
}

// MaxSize is the size above which the table grows.
func (u *ClosedMap[K, V]) MaxSize() int {
	return u.maxSize
}

// Iterator in slot order. It's a filter over the current slot array, so it doesn't see anything
// added after a later growth of the table.
// Time: O(len) for a full iteration.
func (u *ClosedMap[K, V]) Iterator() Go_Collections.Iterator[Go_Collections.Entry[K, V]] {
	return Iterators.NewTransform[slot[K, V]](
		Iterators.NewFilter[slot[K, V]](Iterators.NewArray(u.slots), func(s slot[K, V]) bool { return s.st == occupied }),
		func(s slot[K, V]) Go_Collections.Entry[K, V] { return s.e },
	)
}

func (u *ClosedMap[K, V]) Keys() Go_Collections.Iterator[K] {
	return Iterators.NewKeys(u.Iterator())
}

func (u *ClosedMap[K, V]) Values() Go_Collections.Iterator[V] {
	return Iterators.NewValues(u.Iterator())
}
