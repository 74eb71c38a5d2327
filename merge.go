package avltree

// extractMax detaches and returns the maximum node of a non-empty tree. The
// returned node has no children and no parent.
func (t *Tree[K, S]) extractMax() *Node[K, S] {
	assert(t.root != nil, "extractMax: tree must be non-empty")
	p := t.root
	for p.children[Right] != nil {
		p = p.children[Right]
	}
	fromParent := t.fromParent(p)
	parent := p.parent

	*fromParent = p.children[Left]
	setParent(p.children[Left], parent)
	p.children[Left] = nil
	p.parent = nil

	t.rebalance(parent)
	return p
}

// graft wraps root (a detached, childless node) around the two subtrees and
// plants it in the given owning slot.
func (t *Tree[K, S]) graft(fromParent **Node[K, S], root, left, right, parent *Node[K, S]) {
	assert(root != nil && root.children[Left] == nil && root.children[Right] == nil,
		"graft: pivot must be a detached single node")
	setParent(left, root)
	setParent(right, root)

	*fromParent = root
	root.parent = parent
	root.children[Left] = left
	root.children[Right] = right
	t.update(root)
}

// joinWithRoot combines the receiver (all keys < root's key), the pivot node
// root, and the right tree (all keys > root's key) into the receiver, leaving
// right empty. If the two trees' heights differ by at most one, the pivot
// simply becomes the new root. Otherwise we descend the taller tree along the
// side facing the shorter one until the height gap closes to at most one, and
// splice the pivot in there; a single rebalance walk from the splice point
// restores the AVL invariant. Cost is O(height difference), and no key is ever
// re-inserted: subtrees move wholesale.
func (t *Tree[K, S]) joinWithRoot(root *Node[K, S], right *Tree[K, S]) {
	h1 := t.root.Height()
	h2 := right.root.Height()
	tracer().Debugf("avltree join: heights %d + %d around key %v", h1, h2, root.key)

	if h1+1 >= h2 && h1 <= h2+1 {
		t.graft(&t.root, root, t.root, right.root, nil)
		right.root = nil
		return
	}

	// toHang is the owning slot of the shorter tree; p descends the taller
	// tree along dir, the side adjacent to the shorter tree's key range.
	var toHang **Node[K, S]
	var dir Dir
	var hMin int
	var p *Node[K, S]
	if h1 > h2 {
		toHang, dir, hMin, p = &right.root, Right, h2, t.root
	} else {
		toHang, dir, hMin, p = &t.root, Left, h1, right.root
	}

	for {
		hNext := p.children[dir].Height()
		if hNext == hMin || hNext == hMin+1 {
			displaced := p.children[dir]
			left, rgt := *toHang, displaced
			if dir == Right {
				left, rgt = displaced, *toHang
			}
			*toHang = nil
			t.graft(&p.children[dir], root, left, rgt, p)
			if h1 < h2 {
				// the combined tree grew inside right; hand it over
				t.root, right.root = right.root, t.root
			}
			t.rebalance(p)
			return
		}
		p = p.children[dir]
	}
}

// Merge concatenates other into the receiver and leaves other empty.
//
// Precondition: every key of the receiver compares less than every key of
// other. The precondition is a documented contract and is not validated at
// runtime; violating it leaves both trees in an undefined state. Check can be
// used around a Merge in tests and debug builds.
func (t *Tree[K, S]) Merge(other *Tree[K, S]) {
	if other == nil || other.root == nil {
		return
	}
	if t.root == nil {
		t.Swap(other)
		return
	}
	t.joinWithRoot(t.extractMax(), other)
}
