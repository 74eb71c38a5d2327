package avltree

import "fmt"

// Split partitions the tree at node p into the keys strictly less than p's
// key and the keys strictly greater; p's own key joins whichever side
// pivotGoesLeft selects. The receiver ends up owning the left part and the
// right part is returned as a new tree sharing the receiver's configuration.
//
// Splitting an empty tree yields an empty tree; a nil handle yields
// ErrInvalidHandle. p must be a node of the receiver.
//
// The walk from p to the root performs one join per level, so the total cost
// is O(log N), and every subtree hanging off the path is reused wholesale.
func (t *Tree[K, S]) Split(p *Node[K, S], pivotGoesLeft bool) (*Tree[K, S], error) {
	if t.root == nil {
		return t.derive(nil), nil
	}
	if p == nil {
		return nil, fmt.Errorf("%w: Split requires a node within the tree", ErrInvalidHandle)
	}
	tracer().Debugf("avltree split: at key %v, pivot goes left=%v", p.key, pivotGoesLeft)

	lt, rt := t.derive(nil), t.derive(nil)
	parent := p.parent
	wasLeftChild := t.splitDetachPivot(p, lt, rt, pivotGoesLeft)

	for p = parent; p != nil; p = parent {
		parent = p.parent
		wasLeftChild = t.splitConsumeAncestor(p, wasLeftChild, lt, rt)
	}

	t.Swap(lt)
	return rt, nil
}

// splitDetachPivot moves p's subtrees into lt and rt, detaches p itself and
// folds its singleton tree into the side selected by pivotGoesLeft. It
// reports whether p was the left child of its parent, which tells the
// ancestor walk which side the consumed subtree was on.
func (t *Tree[K, S]) splitDetachPivot(p *Node[K, S], lt, rt *Tree[K, S], pivotGoesLeft bool) bool {
	lt.root = p.children[Left]
	setParent(lt.root, nil)
	p.children[Left] = nil

	rt.root = p.children[Right]
	setParent(rt.root, nil)
	p.children[Right] = nil

	fromParent := t.fromParent(p)
	wasLeftChild := p.parent != nil && p == p.parent.children[Left]
	p.parent = nil
	*fromParent = nil

	mid := t.derive(p)
	t.update(p) // p is a singleton now
	if pivotGoesLeft {
		lt.Merge(mid)
	} else {
		mid.Merge(rt)
		mid.Swap(rt)
	}
	return wasLeftChild
}

// splitConsumeAncestor consumes one ancestor a on the walk from the split
// point to the root. The child slot the walk came up through has already been
// emptied; the other child is a's unconsumed subtree. A left-child ancestor
// lies entirely above the split point, so its key and right subtree join the
// right accumulator; a right-child ancestor joins the left accumulator
// symmetrically. In both joins a itself is the pivot, of known height
// relative to the accumulator.
func (t *Tree[K, S]) splitConsumeAncestor(a *Node[K, S], wasLeftChild bool, lt, rt *Tree[K, S]) bool {
	fromParent := t.fromParent(a)
	nextLeftChild := a.parent != nil && a == a.parent.children[Left]
	a.parent = nil

	consumed := Right
	if wasLeftChild {
		consumed = Left
	}
	assert(a.children[consumed] == nil, "splitConsumeAncestor: consumed slot must be empty")

	rest := t.derive(a.children[consumed.other()])
	a.children[consumed.other()] = nil

	*fromParent = nil
	t.update(a)

	if wasLeftChild {
		rt.joinWithRoot(a, rest)
	} else {
		rest.joinWithRoot(a, lt)
		lt.Swap(rest)
	}
	return nextLeftChild
}
