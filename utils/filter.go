package utils

import (
	_ "embed"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

//go:embed data/stopwords_ru.yaml
var russianStopwordsYAML []byte

// StopWords is an immutable set of function words.
type StopWords struct {
	language string
	terms    map[string]struct{}
}

type stopwordTable struct {
	Language string   `yaml:"language"`
	Terms    []string `yaml:"terms"`
}

// ParseStopWords reads a YAML table with `language` and `terms` keys.
func ParseStopWords(data []byte) (*StopWords, error) {
	var table stopwordTable
	if err := yaml.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("parse stopwords: %w", err)
	}
	return NewStopWords(table.Language, table.Terms), nil
}

// LoadStopWords reads a stop-word table from a YAML file.
func LoadStopWords(path string) (*StopWords, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read stopwords %s: %w", path, err)
	}
	return ParseStopWords(data)
}

func NewStopWords(language string, terms []string) *StopWords {
	set := make(map[string]struct{}, len(terms))
	for _, term := range terms {
		term = strings.ToLower(strings.TrimSpace(term))
		if term != "" {
			set[term] = struct{}{}
		}
	}
	return &StopWords{language: language, terms: set}
}

// RussianStopWords returns the embedded Russian table.
func RussianStopWords() *StopWords {
	sw, err := ParseStopWords(russianStopwordsYAML)
	if err != nil {
		panic(err)
	}
	return sw
}

func (s *StopWords) Contains(token string) bool {
	if s == nil {
		return false
	}
	_, ok := s.terms[token]
	return ok
}

func (s *StopWords) Len() int {
	if s == nil {
		return 0
	}
	return len(s.terms)
}

func (s *StopWords) Language() string {
	if s == nil {
		return ""
	}
	return s.language
}

// Filter drops stop words and tokens shorter than minLength runes. The input
// slice is left untouched.
func Filter(tokens []string, stopwords *StopWords, minLength int) []string {
	out := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if stopwords.Contains(token) || utf8.RuneCountInString(token) < minLength {
			continue
		}
		out = append(out, token)
	}
	return out
}
