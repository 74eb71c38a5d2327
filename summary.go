package avltree

// Summarizer defines how per-node summaries are derived and re-derived as the
// tree changes shape. Both methods must be pure.
//
// FromKey produces the summary of a fresh leaf. Combine recomputes the summary
// of a node from its key and its children's summaries, where a nil pointer
// stands for an absent child. The two must agree on leaves:
//
//	FromKey(k) == Combine(k, nil, nil)
//
// The tree calls Combine bottom-up, exactly once per node whose subtree
// changed, after that node's children have been finalized.
type Summarizer[K, S any] interface {
	FromKey(key K) S
	Combine(key K, left, right *S) S
}

// NoSummary is the summary type of trees that carry no augmentation.
type NoSummary struct{}

type noSummarizer[K any] struct{}

func (noSummarizer[K]) FromKey(K) NoSummary { return NoSummary{} }

func (noSummarizer[K]) Combine(K, *NoSummary, *NoSummary) NoSummary { return NoSummary{} }
