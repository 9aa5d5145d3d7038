package utils

import (
	"sort"
	"time"

	"go.uber.org/zap"
)

// Vocabulary is a term <-> index bijection with indices assigned in
// lexicographic term order. It is never modified after construction.
type Vocabulary struct {
	terms []string
	index map[string]int
}

// NewVocabulary deduplicates and sorts terms.
func NewVocabulary(terms []string) *Vocabulary {
	index := make(map[string]int, len(terms))
	for _, t := range terms {
		index[t] = 0
	}
	sorted := make([]string, 0, len(index))
	for t := range index {
		sorted = append(sorted, t)
	}
	sort.Strings(sorted)
	for i, t := range sorted {
		index[t] = i
	}
	return &Vocabulary{terms: sorted, index: index}
}

func (v *Vocabulary) Len() int {
	if v == nil {
		return 0
	}
	return len(v.terms)
}

func (v *Vocabulary) Index(term string) (int, bool) {
	if v == nil {
		return 0, false
	}
	i, ok := v.index[term]
	return i, ok
}

// Term returns the term at index i. It panics if i is out of range; a nil
// or empty vocabulary has no valid index.
func (v *Vocabulary) Term(i int) string {
	return v.terms[i]
}

// Terms returns a copy of all terms in index order.
func (v *Vocabulary) Terms() []string {
	if v == nil {
		return nil
	}
	out := make([]string, len(v.terms))
	copy(out, v.terms)
	return out
}

// BuildVocabulary collects surface and lemma forms of every document into
// one vocabulary. The result does not depend on document order.
func (a *Analyzer) BuildVocabulary(docs []Document) *Vocabulary {
	start := time.Now()
	tc := newTermCounter(a.shards)

	forEachDocument(len(docs), a.workers, func(i int) {
		surface := a.SurfaceForms(docs[i].Text)
		tc.Add(surface)
		tc.Add(a.lemmatize(surface))
	})

	counts := tc.Counts()
	terms := make([]string, 0, len(counts))
	for t := range counts {
		terms = append(terms, t)
	}
	vocab := NewVocabulary(terms)
	VocabularyTimer.UpdateSince(start)

	a.logger.Info("vocabulary built",
		zap.Int("documents", len(docs)),
		zap.Int("terms", vocab.Len()),
		zap.Duration("took", time.Since(start)),
	)
	return vocab
}
