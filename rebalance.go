package avltree

// rotate promotes p's child on side d into p's position and returns it.
// For d == Right this is the classic left rotation:
//
//	  -> p            c
//	    / \          / \
//	   m   c   ->   p   q
//	      / \      / \
//	     o   q    m   o
//
// The demoted node p is refreshed here; the promoted node c is refreshed by
// the caller once its surroundings are final.
func (t *Tree[K, S]) rotate(p *Node[K, S], d Dir) *Node[K, S] {
	fromParent := t.fromParent(p)
	c := p.children[d]
	assert(c != nil, "rotate: no child on the rotation side")

	p.children[d] = c.children[d.other()]
	setParent(p.children[d], p)

	c.children[d.other()] = p
	c.parent = p.parent
	p.parent = c

	*fromParent = c
	t.update(p)
	return c
}

// restore rebalances p, whose side ic is exactly two levels taller than the
// other side, and returns the new root of the subtree. If the taller child is
// itself inner-heavy (a zig-zag shape), an inner pre-rotation converts the
// shape into a zig-zig before the main rotation.
func (t *Tree[K, S]) restore(p *Node[K, S], ic Dir) *Node[K, S] {
	c := p.children[ic]
	assert(c.Height() == p.children[ic.other()].Height()+2,
		"restore: height difference must be exactly 2")
	if c.children[ic].Height() < c.children[ic.other()].Height() {
		t.rotate(c, ic.other())
	}
	nr := t.rotate(p, ic)
	t.update(nr)
	return nr
}

// rebalance walks from n up to the root. At every visited node it restores
// the AVL invariant if violated and refreshes the cached height and summary,
// so that after any single-node height change the whole path to the root is
// consistent again.
func (t *Tree[K, S]) rebalance(n *Node[K, S]) {
	for p := n; p != nil; p = p.parent {
		lh := p.children[Left].Height()
		rh := p.children[Right].Height()
		switch {
		case lh > rh+1:
			p = t.restore(p, Left)
		case rh > lh+1:
			p = t.restore(p, Right)
		default:
			t.update(p)
		}
	}
}
