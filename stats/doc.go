/*
Package stats provides some pre-manufactured summary policies for AVL trees,
together with the queries they enable: order statistics on a subtree-size
summary and range aggregates on a subtree-sum summary.

The policies are ordinary Summarizer implementations; the tree core never
learns what they mean. Queries work on node handles and the public read
accessors only, so clients can use them as templates for their own
augmentations.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2026, Alex Chertov

Please refer to the LICENSE file for details.
*/
package stats

import "errors"

// ErrRankOutOfBounds signals a rank outside [0, size) passed to NthSmallest.
var ErrRankOutOfBounds = errors.New("stats: rank out of bounds")
