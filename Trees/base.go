package Trees

import Go_Collections "github.com/g-m-twostay/go-collections"

// base is the arena shared by the trees. ns[0] is the nil node: it's never linked as a real node
// and keeps h=-1, so height lookups of missing children need no branch.
// Freed nodes are kept in a linked list rooting at free, node.l represents next.
type base[K any, V any] struct {
	ns         []node[K, V]
	root, free handle
	sz         int
	cmp        func(a, b K) int
}

func makeBase[K any, V any](cmp func(a, b K) int) base[K, V] {
	return base[K, V]{ns: []node[K, V]{{h: -1}}, cmp: cmp}
}

// addFree index once.
func (u *base[K, V]) addFree(a handle) {
	u.ns[a] = node[K, V]{l: u.free}
	u.free = a
}

// popFree index once. Returns 0 when there's no free index(when u.free==0).
func (u *base[K, V]) popFree() handle {
	b := u.free
	u.free = u.ns[b].l
	return b
}

// alloc a leaf holding e under parent p. Reuses freed nodes before growing the arena.
// Pointers into u.ns are invalidated by alloc.
func (u *base[K, V]) alloc(e Go_Collections.Entry[K, V], p handle) handle {
	n := node[K, V]{e: e, p: p}
	if i := u.popFree(); i != 0 {
		u.ns[i] = n
		return i
	}
	u.ns = append(u.ns, n)
	return handle(len(u.ns) - 1)
}

func (u *base[K, V]) setParent(c, p handle) {
	if c != 0 {
		u.ns[c].p = p
	}
}

// replaceChild makes p point to nc where it pointed to oc. p==0 means oc was the root.
func (u *base[K, V]) replaceChild(p, oc, nc handle) {
	if p == 0 {
		u.root = nc
	} else if u.ns[p].l == oc {
		u.ns[p].l = nc
	} else {
		u.ns[p].r = nc
	}
	u.setParent(nc, p)
}

func (u *base[K, V]) updateHeight(i handle) {
	u.ns[i].h = 1 + max(u.ns[u.ns[i].l].h, u.ns[u.ns[i].r].h)
}

// balance factor of i.
func (u *base[K, V]) balance(i handle) int32 {
	return u.ns[u.ns[i].l].h - u.ns[u.ns[i].r].h
}

// find the node holding key. Returns (i,0) when it's found; otherwise i is the node under which key
// would be inserted and c is the comparison result of key against it. i is 0 for an empty tree.
// Time: O(D); Space: O(1)
func (u *base[K, V]) find(key K) (i handle, c int) {
	for cur := u.root; cur != 0; {
		i = cur
		if c = u.cmp(key, u.ns[cur].e.Key); c < 0 {
			cur = u.ns[cur].l
		} else if c > 0 {
			cur = u.ns[cur].r
		} else {
			return
		}
	}
	return
}

// insertUnder adds a new leaf as the left(c<0) or right child of p, or as the root if p==0.
func (u *base[K, V]) insertUnder(p handle, c int, e Go_Collections.Entry[K, V]) handle {
	n := u.alloc(e, p)
	if p == 0 {
		u.root = n
	} else if c < 0 {
		u.ns[p].l = n
	} else {
		u.ns[p].r = n
	}
	u.sz++
	return n
}

// removeNode detaches the entry at i from the tree: a leaf is cut off, a node with one child is
// spliced out, a node with two children takes the entry of its in-order successor, which is then
// removed instead. Returns the parent of the node actually detached, where rebalancing starts.
// Time: O(D)
func (u *base[K, V]) removeNode(i handle) handle {
	if u.ns[i].l != 0 && u.ns[i].r != 0 {
		s := u.minimum(u.ns[i].r)
		u.ns[i].e = u.ns[s].e
		i = s
	}
	c := u.ns[i].l
	if c == 0 {
		c = u.ns[i].r
	}
	p := u.ns[i].p
	u.replaceChild(p, i, c)
	u.addFree(i)
	u.sz--
	return p
}

// minimum of the subtree rooting at i. i!=0
func (u *base[K, V]) minimum(i handle) handle {
	for u.ns[i].l != 0 {
		i = u.ns[i].l
	}
	return i
}

// maximum of the subtree rooting at i. i!=0
func (u *base[K, V]) maximum(i handle) handle {
	for u.ns[i].r != 0 {
		i = u.ns[i].r
	}
	return i
}

// successor of i in in-order, 0 if i is the maximum.
// Time: amortized O(1) over a full traversal.
func (u *base[K, V]) successor(i handle) handle {
	if r := u.ns[i].r; r != 0 {
		return u.minimum(r)
	}
	p := u.ns[i].p
	for p != 0 && u.ns[p].r == i {
		i, p = p, u.ns[p].p
	}
	return p
}

// predecessor of i in in-order, 0 if i is the minimum.
func (u *base[K, V]) predecessor(i handle) handle {
	if l := u.ns[i].l; l != 0 {
		return u.maximum(l)
	}
	p := u.ns[i].p
	for p != 0 && u.ns[p].l == i {
		i, p = p, u.ns[p].p
	}
	return p
}

// Size of the tree.
// Time: O(1); Space: O(1)
func (u *base[K, V]) Size() int {
	return u.sz
}

func (u *base[K, V]) IsEmpty() bool {
	return u.sz == 0
}

// Get [Go_Collections.Map.Get]
// Time: O(D); Space: O(1)
func (u *base[K, V]) Get(key K) (V, bool) {
	if i, c := u.find(key); i != 0 && c == 0 {
		return u.ns[i].e.Val, true
	}
	return *new(V), false
}

// MinEntry [Go_Collections.SortedMap.MinEntry]
// Time: O(D); Space: O(1)
func (u *base[K, V]) MinEntry() (Go_Collections.Entry[K, V], error) {
	if u.root == 0 {
		return Go_Collections.Entry[K, V]{}, &Go_Collections.EmptyStructureError{Op: "MinEntry"}
	}
	return u.ns[u.minimum(u.root)].e, nil
}

// MaxEntry [Go_Collections.SortedMap.MaxEntry]
// Time: O(D); Space: O(1)
func (u *base[K, V]) MaxEntry() (Go_Collections.Entry[K, V], error) {
	if u.root == 0 {
		return Go_Collections.Entry[K, V]{}, &Go_Collections.EmptyStructureError{Op: "MaxEntry"}
	}
	return u.ns[u.maximum(u.root)].e, nil
}

// Height of the tree, -1 when empty. Computed by walking the tree, so it's correct for both trees.
// Time: O(n); Space: O(D)
func (u *base[K, V]) Height() int {
	type item struct {
		i handle
		d int
	}
	h := -1
	if u.root == 0 {
		return h
	}
	for st := []item{{u.root, 0}}; len(st) > 0; {
		top := st[len(st)-1]
		st = st[:len(st)-1]
		h = max(h, top.d)
		if l := u.ns[top.i].l; l != 0 {
			st = append(st, item{l, top.d + 1})
		}
		if r := u.ns[top.i].r; r != 0 {
			st = append(st, item{r, top.d + 1})
		}
	}
	return h
}

// Clear the tree. The arena keeps its memory.
func (u *base[K, V]) Clear() {
	clear(u.ns[1:])
	u.ns = u.ns[:1]
	u.root, u.free, u.sz = 0, 0, 0
}
