package Go_Collections

// Entry is a key value pair stored in maps.
type Entry[K any, V any] struct {
	Key K
	Val V
}

// Map from unique keys to values.
// Receivers that has a bool as the second return value indicates whether the first one is defined,
// for Put and Remove that means whether the key was present before the call.
type Map[K any, V any] interface {
	//Put val at key. Returns the previous value if key was present.
	Put(key K, val V) (V, bool)
	//Get the value at key.
	Get(key K) (V, bool)
	//Remove key. Returns the removed value if key was present.
	Remove(key K) (V, bool)
	Size() int
	IsEmpty() bool
	//Iterator over all entries.
	Iterator() Iterator[Entry[K, V]]
	//Keys in the same order as Iterator.
	Keys() Iterator[K]
	//Values in the same order as Iterator.
	Values() Iterator[V]
}

// SortedMap is a Map whose Iterator gives entries in ascending key order.
type SortedMap[K any, V any] interface {
	Map[K, V]
	//MinEntry is the entry with the smallest key. Returns an EmptyStructureError on an empty map.
	MinEntry() (Entry[K, V], error)
	//MaxEntry is the entry with the largest key. Returns an EmptyStructureError on an empty map.
	MaxEntry() (Entry[K, V], error)
}
