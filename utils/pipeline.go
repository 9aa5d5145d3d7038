package utils

import (
	"go.uber.org/zap"
)

// Result is the output of one corpus run. Vectors are only comparable with
// vectors from the same Result.
type Result struct {
	Names      []string
	Vocabulary *Vocabulary
	Surface    []FrequencyVector
	Lemma      []FrequencyVector
	Stats      Stats
}

// Process builds the vocabulary over all docs, then the surface and lemma
// vectors of each document, then the corpus statistics.
func (a *Analyzer) Process(docs []Document, topK int) *Result {
	vocab := a.BuildVocabulary(docs)

	names := make([]string, len(docs))
	for i, d := range docs {
		names[i] = d.Name
	}

	res := &Result{
		Names:      names,
		Vocabulary: vocab,
		Surface:    a.VectorizeAll(docs, vocab, SurfaceForm),
		Lemma:      a.VectorizeAll(docs, vocab, LemmaForm),
		Stats:      a.Summarize(docs, vocab, topK),
	}
	a.logger.Info("corpus processed",
		zap.Int("documents", res.Stats.Documents),
		zap.Int("vocabulary", res.Stats.VocabularySize),
		zap.Int("surface_tokens", res.Stats.SurfaceTokens),
		zap.Int("lemma_tokens", res.Stats.LemmaTokens),
	)
	return res
}

// Query vectorizes free text against the run's vocabulary and ranks the
// documents by cosine similarity.
func (a *Analyzer) Query(res *Result, text string, mode Mode, k int) []Match {
	query := countInto(a.Forms(text, mode), res.Vocabulary)
	vectors := res.Surface
	if mode == LemmaForm {
		vectors = res.Lemma
	}
	return Rank(query, vectors, k)
}
