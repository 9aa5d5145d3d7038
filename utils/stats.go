package utils

import (
	"sort"
)

type TermCount struct {
	Term  string `json:"term" yaml:"term"`
	Count int    `json:"count" yaml:"count"`
}

// Stats summarizes a processed corpus. Document lengths are measured in
// surface tokens; MeanTokens uses integer division.
type Stats struct {
	Documents      int         `json:"documents" yaml:"documents"`
	VocabularySize int         `json:"vocabulary_size" yaml:"vocabulary_size"`
	SurfaceTokens  int         `json:"surface_tokens" yaml:"surface_tokens"`
	LemmaTokens    int         `json:"lemma_tokens" yaml:"lemma_tokens"`
	MinTokens      int         `json:"min_tokens" yaml:"min_tokens"`
	MaxTokens      int         `json:"max_tokens" yaml:"max_tokens"`
	MeanTokens     int         `json:"mean_tokens" yaml:"mean_tokens"`
	TopTerms       []TermCount `json:"top_terms" yaml:"top_terms"`
}

// Summarize computes corpus statistics. An empty corpus yields all zeros.
func (a *Analyzer) Summarize(docs []Document, vocab *Vocabulary, topK int) Stats {
	lengths := make([]int, len(docs))
	lemmaLengths := make([]int, len(docs))
	tc := newTermCounter(a.shards)

	forEachDocument(len(docs), a.workers, func(i int) {
		surface := a.SurfaceForms(docs[i].Text)
		lengths[i] = len(surface)
		lemmaLengths[i] = len(a.lemmatize(surface))
		DocumentTokens.Update(int64(len(surface)))
		tc.Add(surface)
	})

	stats := Stats{
		Documents:      len(docs),
		VocabularySize: vocab.Len(),
		TopTerms:       topTerms(tc.Counts(), topK),
	}
	for i, n := range lengths {
		stats.SurfaceTokens += n
		stats.LemmaTokens += lemmaLengths[i]
		if i == 0 || n < stats.MinTokens {
			stats.MinTokens = n
		}
		if n > stats.MaxTokens {
			stats.MaxTokens = n
		}
	}
	if len(docs) > 0 {
		stats.MeanTokens = stats.SurfaceTokens / len(docs)
	}
	return stats
}

// topTerms orders by count descending, then term ascending.
func topTerms(counts map[string]int, k int) []TermCount {
	out := make([]TermCount, 0, len(counts))
	for term, n := range counts {
		out = append(out, TermCount{Term: term, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Term < out[j].Term
	})
	if k < 0 {
		k = 0
	}
	if len(out) > k {
		out = out[:k]
	}
	return out
}
