// Package Trees implements sorted maps on binary search trees.
//
// Nodes live in an arena owned by the tree and are addressed by handles(indexes), the parent of a
// node being a plain handle rather than a second owner. Freed nodes are reused by later insertions.
// Trees aren't safe for concurrent use.
package Trees

import Go_Collections "github.com/g-m-twostay/go-collections"

var (
	_ Go_Collections.SortedMap[int, int] = (*BSTree[int, int])(nil)
	_ Go_Collections.SortedMap[int, int] = (*AVLTree[int, int])(nil)
)

// corrupt checks the order, the links, and if balanced is set, the heights and balance factors of
// every node.
// Time: O(n); Space: O(D)
func (u *base[K, V]) corrupt(balanced bool) bool {
	if u.ns[0].h != -1 || (u.root != 0 && u.ns[u.root].p != 0) {
		return true
	}
	count := 0
	var check func(i handle) bool
	check = func(i handle) bool {
		if i == 0 {
			return false
		}
		count++
		n := &u.ns[i]
		if n.l != 0 && (u.ns[n.l].p != i || u.cmp(u.ns[n.l].e.Key, n.e.Key) >= 0) {
			return true
		}
		if n.r != 0 && (u.ns[n.r].p != i || u.cmp(u.ns[n.r].e.Key, n.e.Key) <= 0) {
			return true
		}
		if check(n.l) || check(n.r) {
			return true
		}
		if balanced {
			if n.h != 1+max(u.ns[n.l].h, u.ns[n.r].h) {
				return true
			}
			if b := u.balance(i); b > 1 || b < -1 {
				return true
			}
		}
		return false
	}
	if check(u.root) || count != u.sz {
		return true
	}
	//in-order must be strictly increasing, which also covers keys out of place deeper down.
	if u.root != 0 {
		prev := u.minimum(u.root)
		for cur := u.successor(prev); cur != 0; prev, cur = cur, u.successor(cur) {
			if u.cmp(u.ns[prev].e.Key, u.ns[cur].e.Key) >= 0 {
				return true
			}
		}
	}
	return false
}
