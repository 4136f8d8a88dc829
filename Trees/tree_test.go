package Trees

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/emirpasic/gods/maps/treemap"
	Go_Collections "github.com/g-m-twostay/go-collections"
	"github.com/g-m-twostay/go-collections/Iterators"
	"github.com/stretchr/testify/require"
)

var rg = *rand.New(rand.NewSource(0))

const (
	tAddN        = 40000
	tAddValRange = 80000
)

type sortedMap interface {
	Go_Collections.SortedMap[int, int]
	Corrupt() bool
	Height() int
}

func trees() map[string]func() sortedMap {
	return map[string]func() sortedMap{
		"avl": func() sortedMap { return NewAVL[int, int]() },
		"bst": func() sortedMap { return NewBST[int, int]() },
	}
}

// keys collects the keys in iteration order and reports whether they are strictly increasing.
func keys(tree sortedMap) ([]int, bool) {
	ks := Iterators.Collect(tree.Keys())
	for i := 1; i < len(ks); i++ {
		if ks[i-1] >= ks[i] {
			return ks, false
		}
	}
	return ks, true
}

func TestTree_Add(t *testing.T) {
	for name, mk := range trees() {
		tree := mk()
		content := make(map[int]int)
		for i := range tAddN {
			b := rg.Intn(tAddValRange)
			old, in := content[b]
			if v, had := tree.Put(b, i); had != in || (in && v != old) {
				t.Errorf("%s: Put(%d) returned (%d,%v), want (%d,%v)", name, b, v, had, old, in)
			}
			content[b] = i
		}
		if tree.Size() != len(content) {
			t.Errorf("%s: tree size is %d, want %d", name, tree.Size(), len(content))
		}
		if tree.Corrupt() {
			t.Errorf("%s: tree is corrupted", name)
		}
		t.Logf("%s: height: %d, size: %d.\n", name, tree.Height(), tree.Size())
		for k, want := range content {
			if v, ok := tree.Get(k); !ok || v != want {
				t.Errorf("%s: Get(%d)=(%d,%v), want %d", name, k, v, ok, want)
			}
		}
		if ks, ok := keys(tree); !ok || len(ks) != len(content) {
			t.Errorf("%s: in-order keys aren't strictly increasing or miss entries", name)
		}
	}
}

func TestTree_AddDel(t *testing.T) {
	for name, mk := range trees() {
		tree := mk()
		content := make(map[int]struct{})
		a := make([]int, tAddN)
		for i := range a {
			a[i] = rg.Intn(tAddValRange)
			tree.Put(a[i], a[i])
			content[a[i]] = struct{}{}
		}
		if _, ok := tree.Remove(-1); ok {
			t.Errorf("%s: removed non existent key", name)
		}
		for i := range rg.Intn(len(a)) {
			_, in := content[a[i]]
			if v, ok := tree.Remove(a[i]); ok != in || (ok && v != a[i]) {
				t.Errorf("%s: failed to delete key %v", name, a[i])
			}
			if _, ok := tree.Remove(a[i]); ok {
				t.Errorf("%s: can delete a second time key %v", name, a[i])
			}
			delete(content, a[i])
		}
		if tree.Corrupt() {
			t.Errorf("%s: tree is corrupted after deletions", name)
		}
		for range tAddN / 2 {
			b := rg.Intn(tAddValRange)
			tree.Put(b, b)
			content[b] = struct{}{}
		}
		if tree.Size() != len(content) {
			t.Errorf("%s: tree size is %d, want %d", name, tree.Size(), len(content))
		}
		if tree.Corrupt() {
			t.Errorf("%s: tree is corrupted after reinsertion", name)
		}
		for k := range content {
			if _, ok := tree.Get(k); !ok {
				t.Errorf("%s: tree does not have key %v", name, k)
			}
		}
	}
}

// Every single operation keeps the tree valid, not only the end result.
func TestAVLTree_EveryStep(t *testing.T) {
	tree := NewAVL[int, int]()
	for range 3000 {
		k := rg.Intn(300)
		if rg.Intn(3) == 0 {
			tree.Remove(k)
		} else {
			tree.Put(k, k)
		}
		if tree.Corrupt() {
			t.Fatalf("tree is corrupted after touching %d", k)
		}
	}
}

func TestAVLTree_Height(t *testing.T) {
	tree := NewAVL[int, struct{}]()
	require.Equal(t, -1, tree.Height())
	for i := range 1 << 12 {
		tree.Put(i, struct{}{})
	}
	//ascending insertion degrades a BST to a list but a balanced tree stays logarithmic.
	require.LessOrEqual(t, tree.Height(), 17)
	require.False(t, tree.Corrupt())

	bst := NewBST[int, struct{}]()
	for i := range 100 {
		bst.Put(i, struct{}{})
	}
	require.Equal(t, 99, bst.Height())
	require.False(t, bst.Corrupt())
}

// The AVL tree agrees with the gods red-black treemap on every operation.
func TestAVLTree_Treemap(t *testing.T) {
	tree, oracle := NewAVL[int, int](), treemap.NewWithIntComparator()
	for i := range tAddN {
		k := rg.Intn(tAddValRange / 8)
		if rg.Intn(4) == 0 {
			_, want := oracle.Get(k)
			if _, ok := tree.Remove(k); ok != want {
				t.Fatalf("Remove(%d) reported %v, want %v", k, ok, want)
			}
			oracle.Remove(k)
		} else {
			tree.Put(k, i)
			oracle.Put(k, i)
		}
	}
	require.Equal(t, oracle.Size(), tree.Size())
	want := make([]int, 0, oracle.Size())
	for _, k := range oracle.Keys() {
		want = append(want, k.(int))
	}
	require.Equal(t, want, Iterators.Collect(tree.Keys()))
	vals := make([]int, 0, oracle.Size())
	for _, v := range oracle.Values() {
		vals = append(vals, v.(int))
	}
	require.Equal(t, vals, Iterators.Collect(tree.Values()))

	mk, _ := oracle.Min()
	mx, _ := oracle.Max()
	mn, err := tree.MinEntry()
	require.NoError(t, err)
	require.Equal(t, mk, mn.Key)
	me, err := tree.MaxEntry()
	require.NoError(t, err)
	require.Equal(t, mx, me.Key)
}

func TestTree_Entries(t *testing.T) {
	for name, mk := range trees() {
		tree := mk()
		require.True(t, tree.IsEmpty(), name)
		_, err := tree.MinEntry()
		require.ErrorIs(t, err, Go_Collections.ErrEmptyStructure, name)
		_, err = tree.MaxEntry()
		require.ErrorIs(t, err, Go_Collections.ErrEmptyStructure, name)
		require.False(t, tree.Iterator().HasNext(), name)

		_, had := tree.Put(5, 50)
		require.False(t, had)
		old, had := tree.Put(5, 51)
		require.True(t, had)
		require.Equal(t, 50, old)
		v, ok := tree.Get(5)
		require.True(t, ok)
		require.Equal(t, 51, v)
		require.Equal(t, 1, tree.Size())

		for _, k := range []int{3, 8, 1, 4, 7, 9} {
			tree.Put(k, k*10)
		}
		mn, _ := tree.MinEntry()
		mx, _ := tree.MaxEntry()
		require.Equal(t, Go_Collections.Entry[int, int]{Key: 1, Val: 10}, mn)
		require.Equal(t, Go_Collections.Entry[int, int]{Key: 9, Val: 90}, mx)

		var got []int
		for k, v := range Iterators.Seq2(tree.Iterator()) {
			require.Equal(t, k*10+boolInt(k == 5), v)
			got = append(got, k)
		}
		require.Equal(t, []int{1, 3, 4, 5, 7, 8, 9}, got)

		old, ok = tree.Remove(5)
		require.True(t, ok)
		require.Equal(t, 51, old)
		_, ok = tree.Get(5)
		require.False(t, ok)
		require.False(t, tree.Corrupt(), name)
	}
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func TestTree_TwoWayIterator(t *testing.T) {
	tree := NewAVL[int, string]()
	for _, k := range []int{2, 1, 3} {
		tree.Put(k, "")
	}
	it := tree.TwoWayIterator()
	step := func(forward bool, want int) {
		t.Helper()
		var e Go_Collections.Entry[int, string]
		var err error
		if forward {
			e, err = it.Next()
		} else {
			e, err = it.Previous()
		}
		require.NoError(t, err)
		require.Equal(t, want, e.Key)
	}
	step(true, 1)
	step(true, 2)
	step(false, 2)
	step(false, 1)
	require.False(t, it.HasPrevious())
	step(true, 1)
	step(true, 2)
	step(true, 3)
	require.False(t, it.HasNext())
	_, err := it.Next()
	require.ErrorIs(t, err, Go_Collections.ErrNoSuchElement)

	it.FullForward()
	var back []int
	for it.HasPrevious() {
		e, _ := it.Previous()
		back = append(back, e.Key)
	}
	require.Equal(t, []int{3, 2, 1}, back)
	it.Rewind()
	require.Equal(t, 3, Iterators.Count[Go_Collections.Entry[int, string]](it))
}

// Removing a node with two children keeps the in-order successor's entry in its place.
func TestBSTree_RemoveCases(t *testing.T) {
	tree := NewBST[int, int]()
	for _, k := range []int{50, 30, 70, 20, 40, 60, 80, 65} {
		tree.Put(k, k)
	}
	ref := []int{20, 30, 40, 50, 60, 65, 70, 80}
	for _, k := range []int{20, 60, 50, 30, 70} { // leaf, one child, two children, ...
		_, ok := tree.Remove(k)
		require.True(t, ok)
		i, _ := slices.BinarySearch(ref, k)
		ref = slices.Delete(ref, i, i+1)
		require.False(t, tree.Corrupt())
		require.Equal(t, ref, Iterators.Collect(tree.Keys()))
	}
	tree.Clear()
	require.True(t, tree.IsEmpty())
	require.Equal(t, -1, tree.Height())
	tree.Put(1, 1)
	require.Equal(t, 1, tree.Size())
}

// Freed nodes are reused, so a tree that shrinks and grows back doesn't grow its arena.
func TestAVLTree_ArenaReuse(t *testing.T) {
	tree := NewAVL[int, int]()
	for i := range 1000 {
		tree.Put(i, i)
	}
	n := len(tree.ns)
	for i := range 500 {
		tree.Remove(i * 2)
	}
	for i := range 500 {
		tree.Put(-i-1, i)
	}
	require.Equal(t, n, len(tree.ns))
	require.Equal(t, 1000, tree.Size())
	require.False(t, tree.Corrupt())
}

func TestNewAVLFunc(t *testing.T) {
	tree := NewAVLFunc[string, int](func(a, b string) int { return len(a) - len(b) })
	tree.Put("ccc", 3)
	tree.Put("a", 1)
	tree.Put("bb", 2)
	old, had := tree.Put("zz", 22)
	require.True(t, had)
	require.Equal(t, 2, old)
	require.Equal(t, []string{"a", "zz", "ccc"}, Iterators.Collect(tree.Keys()))
}
