package avltree

import (
	"cmp"
	"fmt"
)

// Config configures a tree. Compare must implement a total strict weak
// ordering over keys and must not panic; the tree calls it on every descent.
type Config[K, S any] struct {
	// Compare orders keys: negative for a<b, zero for equivalence, positive
	// for a>b.
	Compare func(a, b K) int
	// Summarizer maintains per-node summaries. Use NewOrdered for trees that
	// need no augmentation.
	Summarizer Summarizer[K, S]
}

func (cfg Config[K, S]) validate() error {
	if cfg.Compare == nil {
		return fmt.Errorf("%w: comparator is required", ErrInvalidConfig)
	}
	if cfg.Summarizer == nil {
		return fmt.Errorf("%w: summarizer is required", ErrInvalidConfig)
	}
	return nil
}

// Tree is an ordered set of keys, stored as a height-balanced binary search
// tree. Duplicate keys (equivalent under the comparator) are rejected.
//
// A Tree owns its node subgraph exclusively: Split and Merge move subtrees
// between trees without copying, and the donor tree is left empty as a
// documented post-condition. Trees must not be mutated concurrently.
type Tree[K, S any] struct {
	cfg  Config[K, S]
	root *Node[K, S]
}

// New creates an empty tree with validated configuration.
func New[K, S any](cfg Config[K, S]) (*Tree[K, S], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Tree[K, S]{cfg: cfg}, nil
}

// NewOrdered creates an empty tree for a naturally ordered key type, without
// summary augmentation.
func NewOrdered[K cmp.Ordered]() *Tree[K, NoSummary] {
	return &Tree[K, NoSummary]{cfg: Config[K, NoSummary]{
		Compare:    cmp.Compare[K],
		Summarizer: noSummarizer[K]{},
	}}
}

// Config returns a copy of the tree configuration.
func (t *Tree[K, S]) Config() Config[K, S] {
	return t.cfg
}

// derive creates a tree sharing t's configuration and owning the given root.
func (t *Tree[K, S]) derive(root *Node[K, S]) *Tree[K, S] {
	setParent(root, nil)
	return &Tree[K, S]{cfg: t.cfg, root: root}
}

// Root returns the root node, or nil for an empty tree.
func (t *Tree[K, S]) Root() *Node[K, S] {
	if t == nil {
		return nil
	}
	return t.root
}

// IsEmpty reports whether the tree has no keys.
func (t *Tree[K, S]) IsEmpty() bool {
	return t == nil || t.root == nil
}

// Height returns the tree height, where 0 means empty and 1 means a sole root.
func (t *Tree[K, S]) Height() int {
	return t.Root().Height()
}

// Len returns the number of keys in the tree. It counts by traversal and is
// O(N); attach a size summary (package stats) for O(1) subtree counts.
func (t *Tree[K, S]) Len() int {
	n := 0
	t.EachInOrder(func(K) bool { n++; return true })
	return n
}

// Swap exchanges the contents of two trees. Both trees keep their own
// configuration, so the configurations should be equivalent.
func (t *Tree[K, S]) Swap(other *Tree[K, S]) {
	t.root, other.root = other.root, t.root
}

// update recomputes n's cached height and summary from its current children.
func (t *Tree[K, S]) update(n *Node[K, S]) {
	n.height = 1 + max(n.children[Left].Height(), n.children[Right].Height())
	n.summary = t.cfg.Summarizer.Combine(n.key,
		childSummary(n.children[Left]), childSummary(n.children[Right]))
}

// fromParent returns the owning slot referencing p: the tree's root slot, or
// one of p's parent's child slots.
func (t *Tree[K, S]) fromParent(p *Node[K, S]) **Node[K, S] {
	if p.parent == nil {
		return &t.root
	}
	if p.parent.children[Left] == p {
		return &p.parent.children[Left]
	}
	return &p.parent.children[Right]
}

// Find locates key in the tree. If an equivalent key is present, its node is
// returned. Otherwise Find returns the last node visited on the search path,
// which is the node whose empty child slot is where key would attach; use
// Contains for a plain membership test. Find returns nil only on an empty
// tree.
func (t *Tree[K, S]) Find(key K) *Node[K, S] {
	p := t.Root()
	if p == nil {
		return nil
	}
	for {
		var d Dir
		switch c := t.cfg.Compare(key, p.key); {
		case c < 0:
			d = Left
		case c > 0:
			d = Right
		default:
			return p
		}
		if p.children[d] == nil {
			return p
		}
		p = p.children[d]
	}
}

// Contains reports whether a key equivalent to key is present.
func (t *Tree[K, S]) Contains(key K) bool {
	n := t.Find(key)
	return n != nil && t.cfg.Compare(key, n.key) == 0
}

// Add inserts key into the tree. It returns false, without mutating anything,
// if an equivalent key is already present.
func (t *Tree[K, S]) Add(key K) bool {
	if t.root == nil {
		t.root = t.newNode(key)
		return true
	}
	w := t.Find(key)
	var d Dir
	switch c := t.cfg.Compare(key, w.key); {
	case c < 0:
		d = Left
	case c > 0:
		d = Right
	default: // key already present
		return false
	}
	assert(w.children[d] == nil, "Add: attachment slot is occupied")
	n := t.newNode(key)
	w.children[d] = n
	n.parent = w
	t.update(w)
	t.rebalance(w.parent)
	return true
}

func (t *Tree[K, S]) newNode(key K) *Node[K, S] {
	return &Node[K, S]{
		key:     key,
		height:  1,
		summary: t.cfg.Summarizer.FromKey(key),
	}
}

// Min returns the node holding the smallest key, or nil on an empty tree.
func (t *Tree[K, S]) Min() *Node[K, S] { return t.extreme(Left) }

// Max returns the node holding the largest key, or nil on an empty tree.
func (t *Tree[K, S]) Max() *Node[K, S] { return t.extreme(Right) }

func (t *Tree[K, S]) extreme(d Dir) *Node[K, S] {
	p := t.Root()
	if p == nil {
		return nil
	}
	for p.children[d] != nil {
		p = p.children[d]
	}
	return p
}

// Next returns the in-order successor of n, or nil if n holds the largest
// key. A nil handle yields ErrInvalidHandle.
func (t *Tree[K, S]) Next(n *Node[K, S]) (*Node[K, S], error) {
	return t.adjacent(n, Right)
}

// Prev returns the in-order predecessor of n, or nil if n holds the smallest
// key. A nil handle yields ErrInvalidHandle.
func (t *Tree[K, S]) Prev(n *Node[K, S]) (*Node[K, S], error) {
	return t.adjacent(n, Left)
}

func (t *Tree[K, S]) adjacent(n *Node[K, S], d Dir) (*Node[K, S], error) {
	if n == nil {
		return nil, fmt.Errorf("%w: nil node", ErrInvalidHandle)
	}
	if p := n.children[d]; p != nil {
		for p.children[d.other()] != nil {
			p = p.children[d.other()]
		}
		return p, nil
	}
	// climb until we leave a subtree on side d.other()
	for p := n; p.parent != nil; p = p.parent {
		if p == p.parent.children[d.other()] {
			return p.parent, nil
		}
	}
	return nil, nil
}
