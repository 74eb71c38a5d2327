package avltree

import "iter"

// EachInOrder visits every key in ascending order.
//
// Visitation stops early if fn returns false. A completed pass applies fn to
// every key exactly once; the pass is not restartable, use All for a range
// iterator.
func (t *Tree[K, S]) EachInOrder(fn func(key K) bool) {
	if t == nil || fn == nil {
		return
	}
	t.root.eachInOrder(fn)
}

// EachPreOrder visits every key parent-first (node, left subtree, right
// subtree). Visitation stops early if fn returns false.
func (t *Tree[K, S]) EachPreOrder(fn func(key K) bool) {
	if t == nil || fn == nil {
		return
	}
	t.root.eachPreOrder(fn)
}

// EachPostOrder visits every key children-first (left subtree, right subtree,
// node). Visitation stops early if fn returns false.
func (t *Tree[K, S]) EachPostOrder(fn func(key K) bool) {
	if t == nil || fn == nil {
		return
	}
	t.root.eachPostOrder(fn)
}

// All returns an iterator over all keys in ascending order.
func (t *Tree[K, S]) All() iter.Seq[K] {
	return func(yield func(K) bool) {
		t.EachInOrder(yield)
	}
}

// Recursion depth is bounded by the tree height, which the AVL invariant
// keeps logarithmic in the key count.

func (n *Node[K, S]) eachInOrder(fn func(K) bool) bool {
	if n == nil {
		return true
	}
	return n.children[Left].eachInOrder(fn) &&
		fn(n.key) &&
		n.children[Right].eachInOrder(fn)
}

func (n *Node[K, S]) eachPreOrder(fn func(K) bool) bool {
	if n == nil {
		return true
	}
	return fn(n.key) &&
		n.children[Left].eachPreOrder(fn) &&
		n.children[Right].eachPreOrder(fn)
}

func (n *Node[K, S]) eachPostOrder(fn func(K) bool) bool {
	if n == nil {
		return true
	}
	return n.children[Left].eachPostOrder(fn) &&
		n.children[Right].eachPostOrder(fn) &&
		fn(n.key)
}
