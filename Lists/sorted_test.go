package Lists

import (
	"math/rand"
	"slices"
	"strings"
	"testing"

	Go_Collections "github.com/g-m-twostay/go-collections"
	"github.com/g-m-twostay/go-collections/Iterators"
	"github.com/stretchr/testify/require"
)

func TestSortedDoublyLinkedList(t *testing.T) {
	l := NewSorted[int]()
	_, err := l.Min()
	require.ErrorIs(t, err, Go_Collections.ErrEmptyStructure)
	_, err = l.Max()
	require.ErrorIs(t, err, Go_Collections.ErrEmptyStructure)

	r := rand.New(rand.NewSource(1))
	var ref []int
	for range 500 {
		v := r.Intn(100)
		l.Add(v)
		ref = append(ref, v)
	}
	slices.Sort(ref)
	require.Equal(t, ref, Iterators.Collect(l.Iterator()))
	mn, _ := l.Min()
	mx, _ := l.Max()
	require.Equal(t, ref[0], mn)
	require.Equal(t, ref[len(ref)-1], mx)

	for _, v := range []int{ref[0], ref[250], ref[len(ref)-1]} {
		got, ok := l.Remove(v)
		require.True(t, ok)
		require.Equal(t, v, got)
		i, _ := slices.BinarySearch(ref, v)
		ref = slices.Delete(ref, i, i+1)
	}
	_, ok := l.Remove(1000)
	require.False(t, ok)
	require.Equal(t, len(ref), l.Size())
	require.Equal(t, ref, Iterators.Collect(l.Iterator()))

	it := l.TwoWayIterator()
	it.FullForward()
	var back []int
	for it.HasPrevious() {
		v, _ := it.Previous()
		back = append(back, v)
	}
	slices.Reverse(back)
	require.Equal(t, ref, back)
}

// Equal elements keep their insertion order.
func TestSortedDoublyLinkedList_Stable(t *testing.T) {
	type service struct {
		name  string
		stars int
	}
	l := NewSortedFunc(func(a, b service) int { return b.stars - a.stars })
	for _, s := range []service{{"a", 3}, {"b", 5}, {"c", 3}, {"d", 4}, {"e", 5}} {
		l.Add(s)
	}
	var names []string
	for s := range Iterators.Seq(l.Iterator()) {
		names = append(names, s.name)
	}
	require.Equal(t, "bedac", strings.Join(names, ""))

	got, ok := l.Get(service{stars: 4})
	require.True(t, ok)
	require.Equal(t, "d", got.name)
	require.True(t, l.Contains(service{stars: 3}))
	require.False(t, l.Contains(service{stars: 1}))
}

func TestArrayList(t *testing.T) {
	l := NewArrayList[int](1)
	_, err := l.GetFirst()
	require.ErrorIs(t, err, Go_Collections.ErrEmptyStructure)
	_, err = l.RemoveLast()
	require.ErrorIs(t, err, Go_Collections.ErrEmptyStructure)
	require.ErrorIs(t, l.Add(1, 0), Go_Collections.ErrInvalidPosition)

	var ref []int
	for i := range 200 {
		switch i % 3 {
		case 0:
			l.AddFirst(i)
			ref = slices.Insert(ref, 0, i)
		case 1:
			l.AddLast(i)
			ref = append(ref, i)
		default:
			p := len(ref) / 2
			require.NoError(t, l.Add(p, i))
			ref = slices.Insert(ref, p, i)
		}
	}
	require.Equal(t, ref, Iterators.Collect(l.Iterator()))
	for _, p := range []int{0, 50, len(ref) - 1} {
		v, err := l.Get(p)
		require.NoError(t, err)
		require.Equal(t, ref[p], v)
		require.Equal(t, p, l.IndexOf(ref[p]))
	}
	_, err = l.Get(len(ref))
	require.ErrorIs(t, err, Go_Collections.ErrInvalidPosition)

	v, _ := l.Remove(10)
	require.Equal(t, ref[10], v)
	ref = slices.Delete(ref, 10, 11)
	v, _ = l.RemoveFirst()
	require.Equal(t, ref[0], v)
	v, _ = l.RemoveLast()
	require.Equal(t, ref[len(ref)-1], v)
	ref = ref[1 : len(ref)-1]
	first, _ := l.GetFirst()
	last, _ := l.GetLast()
	require.Equal(t, ref[0], first)
	require.Equal(t, ref[len(ref)-1], last)
	require.Equal(t, len(ref), l.Size())
	require.Equal(t, -1, l.IndexOf(-1))
}
