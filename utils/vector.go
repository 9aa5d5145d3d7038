package utils

import (
	"math"
	"sort"
	"time"

	"go.uber.org/zap"
)

// FrequencyVector holds one count per vocabulary index.
type FrequencyVector []int

func (v FrequencyVector) Sum() int {
	total := 0
	for _, n := range v {
		total += n
	}
	return total
}

// Vectorize counts the document's tokens of the given mode at their
// vocabulary indices. Terms missing from the vocabulary are skipped. The
// vector length always equals vocab.Len().
func (a *Analyzer) Vectorize(doc Document, vocab *Vocabulary, mode Mode) FrequencyVector {
	return countInto(a.Forms(doc.Text, mode), vocab)
}

func countInto(tokens []string, vocab *Vocabulary) FrequencyVector {
	vector := make(FrequencyVector, vocab.Len())
	for _, t := range tokens {
		if i, ok := vocab.Index(t); ok {
			vector[i]++
		}
	}
	return vector
}

// VectorizeAll vectorizes docs in parallel; result i belongs to docs[i].
func (a *Analyzer) VectorizeAll(docs []Document, vocab *Vocabulary, mode Mode) []FrequencyVector {
	start := time.Now()
	vectors := make([]FrequencyVector, len(docs))
	forEachDocument(len(docs), a.workers, func(i int) {
		vectors[i] = a.Vectorize(docs[i], vocab, mode)
	})
	VectorizeTimer.UpdateSince(start)

	a.logger.Info("vectors built",
		zap.Int("documents", len(docs)),
		zap.Stringer("mode", mode),
		zap.Duration("took", time.Since(start)),
	)
	return vectors
}

// CosineSimilarity returns 0 for vectors of different length or zero norm.
func CosineSimilarity(a, b FrequencyVector) float64 {
	if len(a) != len(b) {
		return 0
	}
	var dotProduct, normA, normB float64
	for i := range a {
		x, y := float64(a[i]), float64(b[i])
		dotProduct += x * y
		normA += x * x
		normB += y * y
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dotProduct / (math.Sqrt(normA) * math.Sqrt(normB))
}

type Match struct {
	Index int
	Score float64
}

// Rank scores every vector against query and returns up to k matches with
// a positive score, best first. Equal scores keep index order.
func Rank(query FrequencyVector, vectors []FrequencyVector, k int) []Match {
	var ranked []Match
	for i, v := range vectors {
		if score := CosineSimilarity(query, v); score > 0 {
			ranked = append(ranked, Match{Index: i, Score: score})
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	if k >= 0 && len(ranked) > k {
		return ranked[:k]
	}
	return ranked
}
