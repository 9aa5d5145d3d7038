package utils

import (
	"github.com/rcrowley/go-metrics"
)

var (
	VocabularyTimer = metrics.NewRegisteredTimer("vocabulary_build", nil)
	VectorizeTimer  = metrics.NewRegisteredTimer("documents_vectorized", nil)
	DocumentTokens  = metrics.NewRegisteredHistogram("document_tokens", nil, metrics.NewUniformSample(512))
)
