package stat

import (
	"github.com/revelaction/treebank/ud"
)

type Handler struct {
	stats Stats
}

type Stats struct {
	NumSentences          int
	NumTokens             int
	TokensPerSentenceMean int
	TokensPerSentenceDis  map[int]int

	// Tag distributions over all aggregated trees. The underscore
	// placeholder is counted as its own bucket.
	UposDis   map[string]int
	DeprelDis map[string]int
}

func (h *Handler) Get() Stats {
	return h.stats
}

func NewHandler() *Handler {
	stats := Stats{
		TokensPerSentenceDis: map[int]int{},
		UposDis:              map[string]int{},
		DeprelDis:            map[string]int{},
	}
	return &Handler{
		stats: stats,
	}
}

func (h *Handler) Aggregate(trees []*ud.Tree) {
	h.stats.NumSentences += len(trees)

	for _, tree := range trees {
		h.stats.NumTokens += len(tree.Keys)
		h.stats.TokensPerSentenceDis[len(tree.Keys)]++

		for _, key := range tree.Keys {
			node := tree.Nodes[key]
			h.stats.UposDis[node.Upos]++
			h.stats.DeprelDis[node.Deprel]++
		}
	}

	if h.stats.NumSentences > 0 {
		h.stats.TokensPerSentenceMean = h.stats.NumTokens / h.stats.NumSentences
	}
}
