package avltree

// Delete removes the node holding a key equivalent to key. It returns false,
// without mutating anything, if no such key is present.
func (t *Tree[K, S]) Delete(key K) bool {
	p := t.Find(key)
	if p == nil || t.cfg.Compare(key, p.key) != 0 {
		return false
	}
	t.remove(p)
	return true
}

// remove unlinks p from the tree. Three shapes are distinguished by where the
// in-order successor of p sits; in each case rebalancing starts at the node
// whose subtree height changed first.
func (t *Tree[K, S]) remove(p *Node[K, S]) {
	fromParent := t.fromParent(p)
	if p.children[Right] == nil {
		t.spliceLeftChild(fromParent, p)
		return
	}
	next := p.children[Right]
	for next.children[Left] != nil {
		next = next.children[Left]
	}
	if next == p.children[Right] {
		t.liftImmediateSuccessor(fromParent, p, next)
	} else {
		t.liftDistantSuccessor(fromParent, p, next)
	}
}

// spliceLeftChild handles a node without a right child: its left child (which
// may be absent) moves up into its slot.
func (t *Tree[K, S]) spliceLeftChild(fromParent **Node[K, S], p *Node[K, S]) {
	*fromParent = p.children[Left]
	setParent(p.children[Left], p.parent)
	t.rebalance(p.parent)
}

// liftImmediateSuccessor handles the case where p's right child has no left
// child: the successor takes p's slot, keeping its own right subtree and
// adopting p's left child.
func (t *Tree[K, S]) liftImmediateSuccessor(fromParent **Node[K, S], p, next *Node[K, S]) {
	*fromParent = next
	next.children[Left] = p.children[Left]
	setParent(next.children[Left], next)
	next.parent = p.parent
	t.rebalance(next)
}

// liftDistantSuccessor handles the general case: next is the leftmost
// descendant of p's right subtree. next's right child takes next's former
// slot, then next takes p's slot adopting both of p's children. The first
// height change happens at next's original parent, so rebalancing starts
// there, not at next's new position.
func (t *Tree[K, S]) liftDistantSuccessor(fromParent **Node[K, S], p, next *Node[K, S]) {
	nextParent := next.parent
	assert(nextParent.children[Left] == next, "liftDistantSuccessor: successor must be a left child")

	nextParent.children[Left] = next.children[Right]
	setParent(nextParent.children[Left], nextParent)

	next.children[Left] = p.children[Left]
	setParent(next.children[Left], next)
	next.children[Right] = p.children[Right]
	setParent(next.children[Right], next)

	*fromParent = next
	next.parent = p.parent
	t.rebalance(nextParent)
}
