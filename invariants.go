package avltree

import (
	"fmt"
	"reflect"
)

// Check validates structural tree invariants: binary-search ordering, the AVL
// balance bound, cached height correctness, parent-link consistency and
// summary freshness.
//
// This checker is intentionally strict and O(N); it is meant for tests and
// debugging, not for production paths. Summary freshness is compared with
// reflection, so summary types should be comparable by value.
func (t *Tree[K, S]) Check() error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrInvalidConfig)
	}
	if err := t.cfg.validate(); err != nil {
		return err
	}
	if t.root == nil {
		return nil
	}
	if t.root.parent != nil {
		return fmt.Errorf("%w: root has a parent", ErrInvalidConfig)
	}
	_, err := t.checkNode(t.root, nil, nil)
	return err
}

func (t *Tree[K, S]) checkNode(n *Node[K, S], lo, hi *K) (height int, err error) {
	if lo != nil && t.cfg.Compare(n.key, *lo) <= 0 {
		return 0, fmt.Errorf("%w: BST order violated at key %v", ErrInvalidConfig, n.key)
	}
	if hi != nil && t.cfg.Compare(n.key, *hi) >= 0 {
		return 0, fmt.Errorf("%w: BST order violated at key %v", ErrInvalidConfig, n.key)
	}
	var lh, rh int
	if l := n.children[Left]; l != nil {
		if l.parent != n {
			return 0, fmt.Errorf("%w: broken parent link below key %v", ErrInvalidConfig, n.key)
		}
		if lh, err = t.checkNode(l, lo, &n.key); err != nil {
			return 0, err
		}
	}
	if r := n.children[Right]; r != nil {
		if r.parent != n {
			return 0, fmt.Errorf("%w: broken parent link below key %v", ErrInvalidConfig, n.key)
		}
		if rh, err = t.checkNode(r, &n.key, hi); err != nil {
			return 0, err
		}
	}
	if lh > rh+1 || rh > lh+1 {
		return 0, fmt.Errorf("%w: AVL balance violated at key %v (%d vs %d)",
			ErrInvalidConfig, n.key, lh, rh)
	}
	height = 1 + max(lh, rh)
	if n.height != height {
		return 0, fmt.Errorf("%w: cached height %d at key %v, recomputed %d",
			ErrInvalidConfig, n.height, n.key, height)
	}
	want := t.cfg.Summarizer.Combine(n.key,
		childSummary(n.children[Left]), childSummary(n.children[Right]))
	if !reflect.DeepEqual(n.summary, want) {
		return 0, fmt.Errorf("%w: stale summary at key %v (%v, recomputed %v)",
			ErrInvalidConfig, n.key, n.summary, want)
	}
	return height, nil
}
