package stats

import (
	"testing"

	"github.com/stretchr/testify/require"

	avltree "github.com/AlexChertov/avl-tree"
)

func TestSizeSummaryMaintained(t *testing.T) {
	tree := NewSizeTree[int]()
	for i := 0; i < 21; i++ {
		require.True(t, tree.Add(i*5%21), "Add(%d)", i*5%21)
		require.NoError(t, tree.Check())
	}
	require.Equal(t, 21, tree.Root().Summary())
	tree.Delete(13)
	require.NoError(t, tree.Check())
	require.Equal(t, 20, tree.Root().Summary())
}

func TestNthSmallest(t *testing.T) {
	tree := NewSizeTree[int]()
	for i := 0; i < 16; i++ {
		tree.Add(i * 7 % 16) // a permutation of 0..15
	}
	for i := 0; i < 16; i++ {
		n, err := NthSmallest(tree, i)
		require.NoError(t, err, "rank %d", i)
		require.Equal(t, i, n.Key(), "rank %d", i)
	}
	_, err := NthSmallest(tree, -1)
	require.ErrorIs(t, err, ErrRankOutOfBounds)
	_, err = NthSmallest(tree, 16)
	require.ErrorIs(t, err, ErrRankOutOfBounds)
}

func TestNthSmallestEmptyTree(t *testing.T) {
	tree := NewSizeTree[int]()
	_, err := NthSmallest(tree, 0)
	require.ErrorIs(t, err, ErrRankOutOfBounds)
}

func TestRankOf(t *testing.T) {
	tree := NewSizeTree[int]()
	for i := 0; i < 16; i++ {
		tree.Add(i * 7 % 16)
	}
	for i := 0; i < 16; i++ {
		rank, err := RankOf(tree.Find(i))
		require.NoError(t, err)
		require.Equal(t, i, rank, "key %d", i)
	}
	_, err := RankOf[int](nil)
	require.ErrorIs(t, err, avltree.ErrInvalidHandle)
}

func TestRangeSum(t *testing.T) {
	keys := []int{2, 3, 5, 7, 11, 13, 17, 19, 23}
	tree := NewSumTree[int]()
	for _, k := range keys {
		tree.Add(k)
	}
	require.NoError(t, tree.Check())

	brute := func(lo, hi int) int {
		sum := 0
		for _, k := range keys {
			if lo <= k && k <= hi {
				sum += k
			}
		}
		return sum
	}
	cases := [][2]int{
		{-10, 100}, // everything
		{2, 23},    // tight on both ends
		{3, 17},
		{4, 4},   // empty, inside the span
		{5, 5},   // a single key
		{24, 90}, // entirely above
		{-9, 1},  // entirely below
		{0, 10},
		{11, 23},
	}
	for _, c := range cases {
		require.Equal(t, brute(c[0], c[1]), RangeSum(tree, c[0], c[1]),
			"range [%d, %d]", c[0], c[1])
	}
}

func TestRangeSumEmptyTree(t *testing.T) {
	tree := NewSumTree[int]()
	require.Equal(t, 0, RangeSum(tree, 1, 10))
}

func TestSummariesSurviveSurgery(t *testing.T) {
	// split and merge must leave summaries fresh in both trees
	tree := NewSumTree[int]()
	total := 0
	for k := 1; k <= 32; k++ {
		tree.Add(k)
		total += k
	}
	right, err := tree.Split(tree.Find(20), true)
	require.NoError(t, err)
	require.NoError(t, tree.Check())
	require.NoError(t, right.Check())
	require.Equal(t, 20*21/2, tree.Root().Summary())
	require.Equal(t, total-20*21/2, right.Root().Summary())

	tree.Merge(right)
	require.NoError(t, tree.Check())
	require.True(t, right.IsEmpty())
	require.Equal(t, total, tree.Root().Summary())
	require.Equal(t, total, RangeSum(tree, 1, 32))
}
