package avltree

// Dir selects one of a node's two child slots.
type Dir int

// Child slot indices. Keeping directions as indices (rather than separate
// left/right fields) lets rotations, successor walks and the join descent run
// the same code for both symmetric variants.
const (
	Left Dir = iota
	Right
)

func (d Dir) other() Dir { return 1 - d }

// Node is a position within a tree. Nodes are created by Add (as leaves) and
// by Split's internal restructuring; they are owned exclusively through their
// parent's child slot (or the tree's root slot). The parent field is a
// non-owning back-reference used for upward walks only.
//
// Handles stay valid as long as the node remains in some tree; all accessors
// are read-only and O(1).
type Node[K, S any] struct {
	key      K
	height   int
	summary  S
	parent   *Node[K, S]
	children [2]*Node[K, S]
}

// Key returns the key stored at this node.
func (n *Node[K, S]) Key() K { return n.key }

// Height returns the height of the subtree rooted at n, where a leaf has
// height 1. A nil node reports 0, so absent children can be measured directly.
func (n *Node[K, S]) Height() int {
	if n == nil {
		return 0
	}
	return n.height
}

// Child returns the child in slot d, or nil. d must be Left or Right.
func (n *Node[K, S]) Child(d Dir) *Node[K, S] { return n.children[d] }

// Parent returns the parent node, or nil at the root.
func (n *Node[K, S]) Parent() *Node[K, S] { return n.parent }

// Summary returns the summary value for the subtree rooted at n.
func (n *Node[K, S]) Summary() S { return n.summary }

func setParent[K, S any](child, parent *Node[K, S]) {
	if child != nil {
		child.parent = parent
	}
}

func childSummary[K, S any](n *Node[K, S]) *S {
	if n == nil {
		return nil
	}
	return &n.summary
}
