package avltree

import (
	"errors"
	"testing"
)

func rangeTree(t *testing.T, lo, hi int) *Tree[int, NoSummary] {
	t.Helper()
	tree := NewOrdered[int]()
	for k := lo; k <= hi; k++ {
		tree.Add(k)
	}
	if err := tree.Check(); err != nil {
		t.Fatalf("setup tree [%d..%d] invalid: %v", lo, hi, err)
	}
	return tree
}

func TestMergeBasic(t *testing.T) {
	t1 := rangeTree(t, 1, 5)
	t2 := rangeTree(t, 10, 15)
	t1.Merge(t2)
	want := []int{1, 2, 3, 4, 5, 10, 11, 12, 13, 14, 15}
	if got := inorderKeys(t1); !equalKeys(got, want) {
		t.Fatalf("merged in-order = %v, want %v", got, want)
	}
	if !t2.IsEmpty() {
		t.Fatalf("donor tree must be left empty, holds %v", inorderKeys(t2))
	}
	if err := t1.Check(); err != nil {
		t.Fatalf("invariants broken after Merge: %v", err)
	}
}

func TestMergeIntoEmpty(t *testing.T) {
	t1 := NewOrdered[int]()
	t2 := rangeTree(t, 1, 8)
	t1.Merge(t2)
	if !equalKeys(inorderKeys(t1), []int{1, 2, 3, 4, 5, 6, 7, 8}) || !t2.IsEmpty() {
		t.Fatalf("Merge into an empty tree must hand over the donor's contents")
	}
}

func TestMergeEmptyDonor(t *testing.T) {
	t1 := rangeTree(t, 1, 3)
	t2 := NewOrdered[int]()
	t1.Merge(t2)
	if !equalKeys(inorderKeys(t1), []int{1, 2, 3}) {
		t.Fatalf("Merge with an empty donor mutated the receiver")
	}
	t1.Merge(nil)
	if err := t1.Check(); err != nil {
		t.Fatalf("invariants broken: %v", err)
	}
}

func TestMergeUnevenHeights(t *testing.T) {
	// tall left tree, short right tree: the join descends the left tree
	t1 := rangeTree(t, 1, 64)
	t2 := rangeTree(t, 70, 72)
	t1.Merge(t2)
	if err := t1.Check(); err != nil {
		t.Fatalf("tall-left merge broke invariants: %v", err)
	}
	if got := t1.Len(); got != 67 {
		t.Fatalf("merged tree has %d keys, want 67", got)
	}

	// short left tree, tall right tree: the join descends the right tree
	t3 := rangeTree(t, 1, 3)
	t4 := rangeTree(t, 10, 80)
	t3.Merge(t4)
	if err := t3.Check(); err != nil {
		t.Fatalf("tall-right merge broke invariants: %v", err)
	}
	if !t4.IsEmpty() {
		t.Fatalf("donor tree must be left empty")
	}
	if got, want := t3.Len(), 3+71; got != want {
		t.Fatalf("merged tree has %d keys, want %d", got, want)
	}
	if t3.Min().Key() != 1 || t3.Max().Key() != 80 {
		t.Fatalf("merged range = [%d..%d], want [1..80]", t3.Min().Key(), t3.Max().Key())
	}
}

func TestSplitScenario(t *testing.T) {
	// build, delete 5, then split at 6 keeping the pivot on the left side
	tree := buildTree(t, 5, 3, 8, 1, 4, 7, 9, 2, 6)
	tree.Delete(5)
	p := tree.Find(6)
	right, err := tree.Split(p, true)
	if err != nil {
		t.Fatalf("Split failed: %v", err)
	}
	if got := inorderKeys(tree); !equalKeys(got, []int{1, 2, 3, 4, 6}) {
		t.Fatalf("left part = %v, want [1 2 3 4 6]", got)
	}
	if got := inorderKeys(right); !equalKeys(got, []int{7, 8, 9}) {
		t.Fatalf("right part = %v, want [7 8 9]", got)
	}
	if err := tree.Check(); err != nil {
		t.Fatalf("left part invalid: %v", err)
	}
	if err := right.Check(); err != nil {
		t.Fatalf("right part invalid: %v", err)
	}
}

func TestSplitPivotGoesRight(t *testing.T) {
	tree := rangeTree(t, 1, 8)
	right, err := tree.Split(tree.Find(6), false)
	if err != nil {
		t.Fatalf("Split failed: %v", err)
	}
	if got := inorderKeys(tree); !equalKeys(got, []int{1, 2, 3, 4, 5}) {
		t.Fatalf("left part = %v", got)
	}
	if got := inorderKeys(right); !equalKeys(got, []int{6, 7, 8}) {
		t.Fatalf("right part = %v", got)
	}
}

func TestSplitAtEveryNode(t *testing.T) {
	const n = 20
	for k := 1; k <= n; k++ {
		for _, pivotGoesLeft := range []bool{true, false} {
			tree := rangeTree(t, 1, n)
			right, err := tree.Split(tree.Find(k), pivotGoesLeft)
			if err != nil {
				t.Fatalf("Split at %d failed: %v", k, err)
			}
			wantLeft, wantRight := []int{}, []int{}
			for i := 1; i <= n; i++ {
				switch {
				case i < k || (i == k && pivotGoesLeft):
					wantLeft = append(wantLeft, i)
				default:
					wantRight = append(wantRight, i)
				}
			}
			if got := inorderKeys(tree); !equalKeys(got, wantLeft) {
				t.Fatalf("split at %d (left=%v): left part = %v, want %v",
					k, pivotGoesLeft, got, wantLeft)
			}
			if got := inorderKeys(right); !equalKeys(got, wantRight) {
				t.Fatalf("split at %d (left=%v): right part = %v, want %v",
					k, pivotGoesLeft, got, wantRight)
			}
			if err := tree.Check(); err != nil {
				t.Fatalf("split at %d: left part invalid: %v", k, err)
			}
			if err := right.Check(); err != nil {
				t.Fatalf("split at %d: right part invalid: %v", k, err)
			}
		}
	}
}

func TestSplitMergeRoundTrip(t *testing.T) {
	const n = 20
	for k := 1; k <= n; k++ {
		tree := rangeTree(t, 1, n)
		right, err := tree.Split(tree.Find(k), true)
		if err != nil {
			t.Fatalf("Split at %d failed: %v", k, err)
		}
		tree.Merge(right)
		want := make([]int, 0, n)
		for i := 1; i <= n; i++ {
			want = append(want, i)
		}
		if got := inorderKeys(tree); !equalKeys(got, want) {
			t.Fatalf("round trip at %d lost keys: %v", k, got)
		}
		if err := tree.Check(); err != nil {
			t.Fatalf("round trip at %d broke invariants: %v", k, err)
		}
	}
}

func TestSplitEmptyTree(t *testing.T) {
	tree := NewOrdered[int]()
	right, err := tree.Split(nil, true)
	if err != nil {
		t.Fatalf("splitting an empty tree must succeed, got %v", err)
	}
	if !right.IsEmpty() || !tree.IsEmpty() {
		t.Fatalf("splitting an empty tree must yield empty trees")
	}
}

func TestSplitNilHandle(t *testing.T) {
	tree := rangeTree(t, 1, 3)
	if _, err := tree.Split(nil, true); !errors.Is(err, ErrInvalidHandle) {
		t.Fatalf("expected ErrInvalidHandle, got %v", err)
	}
	if got := inorderKeys(tree); !equalKeys(got, []int{1, 2, 3}) {
		t.Fatalf("failed Split mutated the tree: %v", got)
	}
}
