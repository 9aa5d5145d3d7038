package utils

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// CyrillicLatin accepts lowercase a-z, а-я and ё.
var CyrillicLatin = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 'a', Hi: 'z', Stride: 1},
		{Lo: 'а', Hi: 'я', Stride: 1},
		{Lo: 'ё', Hi: 'ё', Stride: 1},
	},
	LatinOffset: 1,
}

// Tokenizer splits lowercased text into maximal runs of alphabet characters.
type Tokenizer struct {
	alphabet  *unicode.RangeTable
	normalize bool
}

func NewTokenizer(alphabet *unicode.RangeTable, normalize bool) *Tokenizer {
	if alphabet == nil {
		alphabet = CyrillicLatin
	}
	return &Tokenizer{alphabet: alphabet, normalize: normalize}
}

// Tokenize returns tokens in order of appearance. Everything outside the
// alphabet, digits included, separates tokens.
func (t *Tokenizer) Tokenize(text string) []string {
	if t.normalize {
		text = norm.NFC.String(text)
	}
	text = strings.ToLower(text)

	var tokens []string
	start := -1
	for i, r := range text {
		if unicode.Is(t.alphabet, r) {
			if start < 0 {
				start = i
			}
		} else if start >= 0 {
			tokens = append(tokens, text[start:i])
			start = -1
		}
	}

	if start >= 0 {
		tokens = append(tokens, text[start:])
	}
	return tokens
}
