package Trees

import Go_Collections "github.com/g-m-twostay/go-collections"

// handle of a node in the arena. 0 is the nil handle.
type handle = uint32

// A node in the arena.
// l and r own the children; p is a plain back reference to the parent. h is the cached height of
// the subtree rooting at the node, maintained by the AVLTree only. The nil node has h=-1.
type node[K any, V any] struct {
	e       Go_Collections.Entry[K, V]
	p, l, r handle
	h       int32
}

// rotateLeft around z. z must have a right child y, which takes the place of z; z becomes the left
// child of y and the former left child of y becomes the right child of z.
// Heights of z and y are recomputed, the ones above aren't.
// Time: O(1); Space: O(1)
func (u *base[K, V]) rotateLeft(z handle) {
	y := u.ns[z].r
	ed := u.ns[y].l
	u.ns[z].r = ed
	u.setParent(ed, z)
	u.ns[y].l = z
	u.replaceChild(u.ns[z].p, z, y)
	u.ns[z].p = y
	u.updateHeight(z)
	u.updateHeight(y)
}

// rotateRight is the mirror of rotateLeft. z must have a left child.
// Time: O(1); Space: O(1)
func (u *base[K, V]) rotateRight(z handle) {
	y := u.ns[z].l
	ed := u.ns[y].r
	u.ns[z].l = ed
	u.setParent(ed, z)
	u.ns[y].r = z
	u.replaceChild(u.ns[z].p, z, y)
	u.ns[z].p = y
	u.updateHeight(z)
	u.updateHeight(y)
}

// restructure performs the tri-node restructuring on x, its parent y and its grandparent z: a
// single rotation when the three are aligned, a double rotation otherwise. Returns the new root of
// the restructured subtree.
//
//	     z=c       z=c        z=a         z=a
//	     /  \      /  \       /  \        /  \
//	   y=b  t4   y=a  t4    t1  y=c     t1  y=b
//	  /  \      /  \           /  \         /  \
//	x=a  t3    t1 x=b        x=b  t4       t2 x=c
//	/  \          /  \       /  \             /  \
//	t1  t2        t2  t3     t2  t3           t3  t4
//
// Time: O(1); Space: O(1)
func (u *base[K, V]) restructure(x handle) handle {
	y := u.ns[x].p
	z := u.ns[y].p
	yLeft, xLeft := u.ns[z].l == y, u.ns[y].l == x
	switch {
	case yLeft && xLeft:
		u.rotateRight(z)
		return y
	case !yLeft && !xLeft:
		u.rotateLeft(z)
		return y
	case yLeft:
		u.rotateLeft(y)
		u.rotateRight(z)
	default:
		u.rotateRight(y)
		u.rotateLeft(z)
	}
	return x
}
