package utils

import (
	"fmt"

	"go.uber.org/zap"
)

// Mode selects which token stream of a document is used.
type Mode int

const (
	SurfaceForm Mode = iota
	LemmaForm
)

func (m Mode) String() string {
	switch m {
	case SurfaceForm:
		return "surface"
	case LemmaForm:
		return "lemma"
	default:
		return "unknown"
	}
}

// ParseMode accepts "surface" or "lemma".
func ParseMode(s string) (Mode, error) {
	switch s {
	case "surface":
		return SurfaceForm, nil
	case "lemma":
		return LemmaForm, nil
	default:
		return 0, fmt.Errorf("unknown mode %q", s)
	}
}

// DefaultMinLength is the shortest token length kept by the filter.
const DefaultMinLength = 3

// Analyzer turns raw text into surface and lemma token streams. It holds
// only read-only state and is safe for concurrent use.
type Analyzer struct {
	tokenizer  *Tokenizer
	stopwords  *StopWords
	minLength  int
	lemmatizer Lemmatizer
	workers    int
	shards     int
	logger     *zap.Logger
}

type Option func(*Analyzer)

func WithTokenizer(t *Tokenizer) Option {
	return func(a *Analyzer) { a.tokenizer = t }
}

func WithStopWords(sw *StopWords) Option {
	return func(a *Analyzer) { a.stopwords = sw }
}

func WithMinLength(n int) Option {
	return func(a *Analyzer) { a.minLength = n }
}

func WithLemmatizer(l Lemmatizer) Option {
	return func(a *Analyzer) { a.lemmatizer = l }
}

// WithWorkers bounds the number of documents processed at once.
func WithWorkers(n int) Option {
	return func(a *Analyzer) { a.workers = n }
}

func WithShards(n int) Option {
	return func(a *Analyzer) { a.shards = n }
}

func WithLogger(l *zap.Logger) Option {
	return func(a *Analyzer) { a.logger = l }
}

// NewAnalyzer builds an analyzer with the Russian tables by default.
func NewAnalyzer(opts ...Option) *Analyzer {
	a := &Analyzer{
		tokenizer:  NewTokenizer(CyrillicLatin, true),
		stopwords:  RussianStopWords(),
		minLength:  DefaultMinLength,
		lemmatizer: RussianRules(),
		workers:    8,
		shards:     16,
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// SurfaceForms returns the filtered tokens of text.
func (a *Analyzer) SurfaceForms(text string) []string {
	return Filter(a.tokenizer.Tokenize(text), a.stopwords, a.minLength)
}

// LemmaForms lemmatizes each filtered token of text.
func (a *Analyzer) LemmaForms(text string) []string {
	return a.lemmatize(a.SurfaceForms(text))
}

func (a *Analyzer) Forms(text string, mode Mode) []string {
	if mode == LemmaForm {
		return a.LemmaForms(text)
	}
	return a.SurfaceForms(text)
}

func (a *Analyzer) Lemmatize(token string) string {
	return a.lemmatizer.Lemmatize(token)
}

func (a *Analyzer) lemmatize(tokens []string) []string {
	r := make([]string, len(tokens))
	for i, token := range tokens {
		r[i] = a.lemmatizer.Lemmatize(token)
	}
	return r
}
