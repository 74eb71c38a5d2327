/*
Package avltree implements a self-balancing ordered-set container: an AVL
(height-balanced binary search) tree over a generic key type, with pluggable
per-node summary augmentation maintained bottom-up through every structural
change.

Beyond the usual dictionary operations (Find, Add, Delete, Min/Max, Next/Prev)
the tree supports O(log N) structural surgery: Split decomposes a tree at an
arbitrary node into two balanced trees, and Merge concatenates two trees whose
key ranges do not overlap. Both reuse subtrees by ownership transfer instead of
re-inserting elements, which is what makes them logarithmic.

# Summaries

A summary is auxiliary state attached to every node, derived purely from the
node's key and the summaries of its two children. The tree core never
interprets summary values; it only calls the Summarizer contract whenever a
subtree changes, bottom-up, exactly once per affected node. Package stats
provides two ready-made policies (subtree size and subtree key sum) together
with the order-statistic and range-aggregate queries they enable.

Current status:
  - dictionary operations with strict AVL rebalancing,
  - dir-indexed node layout with non-owning parent back-references,
  - summary contract (Summarizer) and a no-op default,
  - join-based Merge and Split with subtree reuse,
  - in-/pre-/post-order visitors and an in-order range iterator,
  - strict invariant checker (Check) for tests,
  - Graphviz DOT export for debugging.

Trees are not safe for concurrent mutation; callers that share a tree across
goroutines must synchronize externally.

# BSD 3-Clause License

Copyright (c) 2026, Alex Chertov

Please refer to the LICENSE file for details.
*/
package avltree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'avltree'
func tracer() tracing.Trace {
	return tracing.Select("avltree")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
