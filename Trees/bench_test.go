package Trees

import (
	"cmp"
	"testing"

	"github.com/google/btree"
	"github.com/petar/GoLLRB/llrb"
)

var (
	bAddN = 100000
	bQryN = bAddN / 2
)

func randKeys() []int {
	all := make([]int, bAddN)
	for i := range all {
		all[i] = rg.Int()
	}
	return all
}

var sideEff int

func BenchmarkAVL(b *testing.B) {
	all := randKeys()
	b.ResetTimer()
	for range b.N {
		tree := NewAVL[int, int]()
		for _, v := range all {
			tree.Put(v, v)
		}
		for _, v := range all[:bQryN] {
			sideEff, _ = tree.Get(v)
		}
		for _, v := range all {
			tree.Remove(v)
		}
	}
}

func BenchmarkBST(b *testing.B) {
	all := randKeys()
	b.ResetTimer()
	for range b.N {
		tree := NewBST[int, int]()
		for _, v := range all {
			tree.Put(v, v)
		}
		for _, v := range all[:bQryN] {
			sideEff, _ = tree.Get(v)
		}
		for _, v := range all {
			tree.Remove(v)
		}
	}
}

func BenchmarkBTree(b *testing.B) {
	all := randKeys()
	b.ResetTimer()
	for range b.N {
		tree := btree.NewG[int](32, cmp.Less[int])
		for _, v := range all {
			tree.ReplaceOrInsert(v)
		}
		for _, v := range all[:bQryN] {
			sideEff, _ = tree.Get(v)
		}
		for _, v := range all {
			tree.Delete(v)
		}
	}
}

func BenchmarkLLRB(b *testing.B) {
	all := randKeys()
	b.ResetTimer()
	for range b.N {
		tree := llrb.New()
		for _, v := range all {
			tree.ReplaceOrInsert(llrb.Int(v))
		}
		for _, v := range all[:bQryN] {
			if x := tree.Get(llrb.Int(v)); x != nil {
				sideEff = int(x.(llrb.Int))
			}
		}
		for _, v := range all {
			tree.Delete(llrb.Int(v))
		}
	}
}
