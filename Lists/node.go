package Lists

// node of a doubly linked list. pv and nx are plain links, the list owns every node.
type node[E any] struct {
	v      E
	pv, nx *node[E]
}

// unlink u from its neighbours. The caller fixes head and tail.
func (u *node[E]) unlink() {
	if u.pv != nil {
		u.pv.nx = u.nx
	}
	if u.nx != nil {
		u.nx.pv = u.pv
	}
	u.pv, u.nx = nil, nil
}
