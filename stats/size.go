package stats

import (
	"cmp"
	"fmt"

	avltree "github.com/AlexChertov/avl-tree"
)

// SizeOf is a summary policy that maintains subtree node counts. A tree
// configured with it answers order-statistic queries in O(log N).
type SizeOf[K any] struct{}

func (SizeOf[K]) FromKey(K) int { return 1 }

func (SizeOf[K]) Combine(_ K, left, right *int) int {
	size := 1
	if left != nil {
		size += *left
	}
	if right != nil {
		size += *right
	}
	return size
}

// NewSizeTree creates an empty tree that keeps subtree sizes for a naturally
// ordered key type.
func NewSizeTree[K cmp.Ordered]() *avltree.Tree[K, int] {
	t, err := avltree.New(avltree.Config[K, int]{
		Compare:    cmp.Compare[K],
		Summarizer: SizeOf[K]{},
	})
	if err != nil {
		panic(err) // both config fields are set
	}
	return t
}

// NthSmallest returns the node holding the i-th smallest key (0-based) of a
// tree carrying the SizeOf summary. Ranks outside [0, size) yield
// ErrRankOutOfBounds.
func NthSmallest[K any](t *avltree.Tree[K, int], i int) (*avltree.Node[K, int], error) {
	n := t.Root()
	if n == nil || i < 0 || i >= n.Summary() {
		return nil, fmt.Errorf("%w: rank %d", ErrRankOutOfBounds, i)
	}
	for {
		ls := 0
		if l := n.Child(avltree.Left); l != nil {
			ls = l.Summary()
		}
		switch {
		case i < ls:
			n = n.Child(avltree.Left)
		case i == ls:
			return n, nil
		default:
			i -= ls + 1
			n = n.Child(avltree.Right)
		}
	}
}

// RankOf returns the 0-based in-order position of a node within a tree
// carrying the SizeOf summary. A nil handle yields ErrInvalidHandle.
func RankOf[K any](n *avltree.Node[K, int]) (int, error) {
	if n == nil {
		return 0, fmt.Errorf("%w: nil node", avltree.ErrInvalidHandle)
	}
	rank := 0
	if l := n.Child(avltree.Left); l != nil {
		rank = l.Summary()
	}
	for p := n; p.Parent() != nil; p = p.Parent() {
		if p.Parent().Child(avltree.Right) == p {
			rank++
			if l := p.Parent().Child(avltree.Left); l != nil {
				rank += l.Summary()
			}
		}
	}
	return rank, nil
}
