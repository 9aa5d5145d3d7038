package utils_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/viranchils96/text-vectorizer/utils"
)

func TestProcess(t *testing.T) {
	a := utils.NewAnalyzer(utils.WithLogger(zap.NewExample()))
	res := a.Process(sampleCorpus(), 10)

	assert.Equal(t, []string{"doc1", "doc2"}, res.Names)
	assert.Equal(t, 5, res.Vocabulary.Len())
	assert.Equal(t, []utils.FrequencyVector{{0, 0, 1, 2, 0}, {0, 1, 0, 0, 1}}, res.Surface)
	assert.Equal(t, []utils.FrequencyVector{{1, 0, 0, 2, 0}, {0, 1, 0, 0, 1}}, res.Lemma)
	assert.Equal(t, 2, res.Stats.Documents)
}

func TestProcessEmpty(t *testing.T) {
	res := utils.NewAnalyzer().Process(nil, 10)

	assert.Equal(t, 0, res.Vocabulary.Len())
	assert.Empty(t, res.Surface)
	assert.Equal(t, 0, res.Stats.Documents)
}

func TestQuery(t *testing.T) {
	a := utils.NewAnalyzer()
	res := a.Process(sampleCorpus(), 10)

	matches := a.Query(res, "Собака!", utils.SurfaceForm, 10)
	require.Len(t, matches, 1)
	assert.Equal(t, "doc2", res.Names[matches[0].Index])

	// "играли" and "играл" share a lemma only in the lemma stream.
	matches = a.Query(res, "играл", utils.LemmaForm, 10)
	require.Len(t, matches, 1)
	assert.Equal(t, "doc1", res.Names[matches[0].Index])

	assert.Empty(t, a.Query(res, "мышь", utils.SurfaceForm, 10))
}

func TestAnalyzerSnowball(t *testing.T) {
	a := utils.NewAnalyzer(utils.WithLemmatizer(utils.SnowballLemmatizer{Language: "russian"}))

	assert.Equal(t, []string{"книгами"}, a.SurfaceForms("с книгами"))
	assert.Equal(t, []string{"книг"}, a.LemmaForms("с книгами"))
}

func TestModeString(t *testing.T) {
	assert.Equal(t, "surface", utils.SurfaceForm.String())
	assert.Equal(t, "lemma", utils.LemmaForm.String())
	assert.Equal(t, "unknown", utils.Mode(9).String())
}

func TestVectorizeAllLogsPhase(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	a := utils.NewAnalyzer(utils.WithLogger(zap.New(core)))
	docs := sampleCorpus()

	a.VectorizeAll(docs, a.BuildVocabulary(docs), utils.LemmaForm)

	entries := logs.FilterMessage("vectors built").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, int64(2), fields["documents"])
	assert.Equal(t, "lemma", fields["mode"])
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in       string
		expected utils.Mode
		wantErr  bool
	}{
		{"surface", utils.SurfaceForm, false},
		{"lemma", utils.LemmaForm, false},
		{"surfce", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			m, err := utils.ParseMode(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, m)
		})
	}
}
