package utils_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/viranchils96/text-vectorizer/utils"
)

func TestVectorize(t *testing.T) {
	a := utils.NewAnalyzer()
	docs := sampleCorpus()
	vocab := a.BuildVocabulary(docs)

	// vocabulary: играл, играла, играли, кот, собака
	assert.Equal(t, utils.FrequencyVector{0, 0, 1, 2, 0}, a.Vectorize(docs[0], vocab, utils.SurfaceForm))
	assert.Equal(t, utils.FrequencyVector{1, 0, 0, 2, 0}, a.Vectorize(docs[0], vocab, utils.LemmaForm))
	assert.Equal(t, utils.FrequencyVector{0, 1, 0, 0, 1}, a.Vectorize(docs[1], vocab, utils.SurfaceForm))
	assert.Equal(t, utils.FrequencyVector{0, 1, 0, 0, 1}, a.Vectorize(docs[1], vocab, utils.LemmaForm))
}

func TestVectorizeSumMatchesTokens(t *testing.T) {
	a := utils.NewAnalyzer()
	docs := []utils.Document{
		{Name: "a", Text: "Связь медицины и физической культуры уходит корнями в глубокую древность."},
		{Name: "b", Text: "Медицины, медицины и ещё раз медицины!"},
	}
	vocab := a.BuildVocabulary(docs)

	for _, d := range docs {
		for _, mode := range []utils.Mode{utils.SurfaceForm, utils.LemmaForm} {
			v := a.Vectorize(d, vocab, mode)
			assert.Len(t, v, vocab.Len())
			assert.Equal(t, len(a.Forms(d.Text, mode)), v.Sum(), "%s/%s", d.Name, mode)
		}
	}
}

func TestVectorizeSkipsUnknownTerms(t *testing.T) {
	a := utils.NewAnalyzer()
	vocab := a.BuildVocabulary(sampleCorpus())

	v := a.Vectorize(utils.Document{Name: "q", Text: "кот мышь"}, vocab, utils.SurfaceForm)
	assert.Equal(t, utils.FrequencyVector{0, 0, 0, 1, 0}, v)
}

func TestVectorizeEmptyVocabulary(t *testing.T) {
	a := utils.NewAnalyzer()
	vocab := a.BuildVocabulary(nil)

	v := a.Vectorize(utils.Document{Name: "q", Text: "кот играли"}, vocab, utils.SurfaceForm)
	assert.Len(t, v, 0)
	assert.Len(t, a.Vectorize(utils.Document{Text: "кот"}, nil, utils.LemmaForm), 0)
}

func TestIdenticalMultisetsGiveIdenticalVectors(t *testing.T) {
	a := utils.NewAnalyzer()
	docs := []utils.Document{
		{Name: "a", Text: "кот играли кот"},
		{Name: "b", Text: "Играли, кот! И кот."},
	}
	vectors := a.VectorizeAll(docs, a.BuildVocabulary(docs), utils.SurfaceForm)

	assert.Equal(t, vectors[0], vectors[1])
}

func TestCosineSimilarity(t *testing.T) {
	score := utils.CosineSimilarity(utils.FrequencyVector{1, 0, 1}, utils.FrequencyVector{0, 1, 1})
	assert.InDelta(t, 0.5, score, 0.0001)

	assert.Zero(t, utils.CosineSimilarity(utils.FrequencyVector{1}, utils.FrequencyVector{1, 2}))
	assert.Zero(t, utils.CosineSimilarity(utils.FrequencyVector{0, 0}, utils.FrequencyVector{1, 2}))
	assert.InDelta(t, 1.0, utils.CosineSimilarity(utils.FrequencyVector{2, 4}, utils.FrequencyVector{1, 2}), 1e-9)
}

func TestRank(t *testing.T) {
	vectors := []utils.FrequencyVector{
		{0, 1, 0},
		{1, 1, 0},
		{1, 0, 0},
		{2, 0, 0},
	}

	matches := utils.Rank(utils.FrequencyVector{1, 0, 0}, vectors, 2)

	assert.Equal(t, []utils.Match{{Index: 2, Score: 1}, {Index: 3, Score: 1}}, matches)

	all := utils.Rank(utils.FrequencyVector{1, 0, 0}, vectors, 10)
	assert.Len(t, all, 3)
	assert.InDelta(t, 1/math.Sqrt2, all[2].Score, 1e-9)
}
