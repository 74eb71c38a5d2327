package stats

import (
	"cmp"

	avltree "github.com/AlexChertov/avl-tree"
)

// Addable constrains key types whose values can be accumulated with +.
type Addable interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// SumOf is a summary policy that maintains subtree key sums. A tree
// configured with it answers range-sum queries in O(log N + matches).
type SumOf[K Addable] struct{}

func (SumOf[K]) FromKey(k K) K { return k }

func (SumOf[K]) Combine(k K, left, right *K) K {
	sum := k
	if left != nil {
		sum += *left
	}
	if right != nil {
		sum += *right
	}
	return sum
}

// NewSumTree creates an empty tree that keeps subtree key sums.
func NewSumTree[K Addable]() *avltree.Tree[K, K] {
	t, err := avltree.New(avltree.Config[K, K]{
		Compare:    cmp.Compare[K],
		Summarizer: SumOf[K]{},
	})
	if err != nil {
		panic(err) // both config fields are set
	}
	return t
}

// RangeSum returns the sum of all keys within [lo, hi] (inclusive bounds) of
// a tree carrying the SumOf summary. Empty ranges and ranges outside the
// tree's key span sum to zero.
//
// The descent tracks, for every visited subtree, the tightest key bounds
// already known from the path above. Once both bounds of a subtree are known
// to lie inside [lo, hi] its precomputed sum is taken without descending
// further, which bounds the cost by the two range-boundary paths.
func RangeSum[K Addable](t *avltree.Tree[K, K], lo, hi K) K {
	return rangeSum(t.Root(), t.Config().Compare, false, lo, false, hi, lo, hi)
}

// rangeSum sums the in-range keys of the subtree rooted at p. minV and maxV
// are the subtree's key bounds; knowMin/knowMax record whether the respective
// bound is tight (inherited from an ancestor key) rather than just the query
// bound itself.
func rangeSum[K Addable](p *avltree.Node[K, K], compare func(K, K) int,
	knowMin bool, minV K, knowMax bool, maxV K, lo, hi K) K {
	var zero K
	if p == nil {
		return zero
	}
	less := func(a, b K) bool { return compare(a, b) < 0 }
	if knowMin && knowMax && !less(minV, lo) && !less(hi, maxV) {
		return p.Summary() // subtree provably inside [lo, hi]
	}
	res := zero
	key := p.Key()
	if !less(key, lo) && !less(hi, key) {
		res += key
	}
	if (!knowMin && less(lo, key)) ||
		!less(minK(key, hi, compare), maxK(minV, lo, compare)) {
		res += rangeSum(p.Child(avltree.Left), compare, knowMin, minV, true, key, lo, hi)
	}
	if (!knowMax && less(key, hi)) ||
		!less(minK(maxV, hi, compare), maxK(key, lo, compare)) {
		res += rangeSum(p.Child(avltree.Right), compare, true, key, knowMax, maxV, lo, hi)
	}
	return res
}

func minK[K any](a, b K, compare func(K, K) int) K {
	if compare(b, a) < 0 {
		return b
	}
	return a
}

func maxK[K any](a, b K, compare func(K, K) int) K {
	if compare(a, b) < 0 {
		return b
	}
	return a
}
