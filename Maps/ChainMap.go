package Maps

import (
	Go_Collections "github.com/g-m-twostay/go-collections"
	"github.com/g-m-twostay/go-collections/Iterators"
)

const (
	chainIdealLoad = 0.75 //sizes the initial bucket array.
	chainMaxLoad   = 0.9  //the table grows once the size goes over it.
)

// ChainMap is a hash table with separate chaining: key k lives in the bucket HashF(k) mod len,
// each bucket being a ListMap. The bucket array grows to the next prime >= twice its length once
// the size exceeds maxSize.
type ChainMap[K comparable, V any] struct {
	buckets     []ListMap[K, V]
	sz, maxSize int
	HashF       func(K) uint
}

// NewChainMap returns a table that can hold capacity entries at the ideal load factor before
// growing. capacity<=0 means Go_Collections.DefaultCapacity.
func NewChainMap[K comparable, V any](capacity int, hashF func(K) uint) *ChainMap[K, V] {
	u := &ChainMap[K, V]{HashF: hashOrDefault(hashF)}
	u.init(tableLen(capacity, chainIdealLoad))
	return u
}

func (u *ChainMap[K, V]) init(n int) {
	u.buckets = make([]ListMap[K, V], n)
	u.sz, u.maxSize = 0, int(float64(n)*chainMaxLoad)
}

func (u *ChainMap[K, V]) bucket(key K) *ListMap[K, V] {
	return &u.buckets[u.HashF(key)%uint(len(u.buckets))]
}

// expand moves every node to its bucket in the new array. Nodes are relinked, not copied.
func (u *ChainMap[K, V]) expand() {
	old, sz := u.buckets, u.sz
	u.init(Go_Collections.NextPrime(len(old) * 2))
	for i := range old {
		for cur := old[i].head; cur != nil; {
			nx := cur.nx
			b := u.bucket(cur.e.Key)
			cur.nx = b.head
			b.head = cur
			b.sz++
			cur = nx
		}
		old[i] = ListMap[K, V]{}
	}
	u.sz = sz
}

// Put [Go_Collections.Map.Put]
// Time: amortized O(1) on average.
func (u *ChainMap[K, V]) Put(key K, val V) (V, bool) {
	old, ok := u.bucket(key).Put(key, val)
	if !ok {
		if u.sz++; u.sz > u.maxSize {
			u.expand()
		}
	}
	return old, ok
}

// Get [Go_Collections.Map.Get]
// Time: O(1) on average.
func (u *ChainMap[K, V]) Get(key K) (V, bool) {
	return u.bucket(key).Get(key)
}

// Remove [Go_Collections.Map.Remove]
// Time: O(1) on average.
func (u *ChainMap[K, V]) Remove(key K) (V, bool) {
	old, ok := u.bucket(key).Remove(key)
	if ok {
		u.sz--
	}
	return old, ok
}

func (u *ChainMap[K, V]) Size() int {
	return u.sz
}

func (u *ChainMap[K, V]) IsEmpty() bool {
	return u.sz == 0
}

// Buckets is the length of the bucket array.
func (u *ChainMap[K, V]) Buckets() int {
	return len(u.buckets)
}

// MaxSize is the size above which the table grows.
func (u *ChainMap[K, V]) MaxSize() int {
	return u.maxSize
}

// Iterator bucket by bucket. It holds the current bucket array; the entries it gives after a later
// growth of the table are undefined.
func (u *ChainMap[K, V]) Iterator() Go_Collections.Iterator[Go_Collections.Entry[K, V]] {
	return newChainIterator(u.buckets)
}

func (u *ChainMap[K, V]) Keys() Go_Collections.Iterator[K] {
	return Iterators.NewKeys(u.Iterator())
}

func (u *ChainMap[K, V]) Values() Go_Collections.Iterator[V] {
	return Iterators.NewValues(u.Iterator())
}

// chainIterator goes through the buckets in order, keeping an iterator on the current one.
// cur is nil once every bucket is exhausted.
type chainIterator[K comparable, V any] struct {
	buckets []ListMap[K, V]
	bi      int
	cur     Go_Collections.Iterator[Go_Collections.Entry[K, V]]
}

func newChainIterator[K comparable, V any](buckets []ListMap[K, V]) *chainIterator[K, V] {
	u := &chainIterator[K, V]{buckets: buckets}
	u.Rewind()
	return u
}

// advance to the next non empty bucket unless the current one has more.
func (u *chainIterator[K, V]) advance() {
	if u.cur != nil && u.cur.HasNext() {
		return
	}
	for u.bi++; u.bi < len(u.buckets); u.bi++ {
		if !u.buckets[u.bi].IsEmpty() {
			u.cur = u.buckets[u.bi].Iterator()
			return
		}
	}
	u.cur = nil
}

// HasNext [Go_Collections.Iterator.HasNext]
// Time: O(1)
func (u *chainIterator[K, V]) HasNext() bool {
	return u.cur != nil
}

// Next [Go_Collections.Iterator.Next]
// Time: amortized O(1) when the table isn't sparse.
func (u *chainIterator[K, V]) Next() (Go_Collections.Entry[K, V], error) {
	if u.cur == nil {
		return Go_Collections.Entry[K, V]{}, &Go_Collections.NoSuchElementError{}
	}
	e, err := u.cur.Next()
	u.advance()
	return e, err
}

// Rewind to the first non empty bucket.
func (u *chainIterator[K, V]) Rewind() {
	u.bi, u.cur = -1, nil
	u.advance()
}
