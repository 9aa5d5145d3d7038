package utils

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/kljensen/snowball"
	"gopkg.in/yaml.v3"
)

//go:embed data/lemma_rules_ru.yaml
var russianRulesYAML []byte

// Lemmatizer maps a surface token to its base form.
type Lemmatizer interface {
	Lemmatize(token string) string
}

// Rule rewrites a token ending in one of Suffixes: Strip runes are cut from
// the end and Append is added. MinBase, when set, is the minimum rune length
// of the stripped base for the rule to apply.
type Rule struct {
	Suffixes []string `yaml:"suffixes"`
	Strip    int      `yaml:"strip"`
	Append   string   `yaml:"append"`
	MinBase  int      `yaml:"min_base"`
}

type RuleGroup struct {
	Name  string `yaml:"name"`
	Rules []Rule `yaml:"rules"`
}

// RuleSet is an ordered suffix rewrite table. Tokens no longer than
// SkipMaxLength runes are returned as is. Groups and the rules inside them
// are tried in order; the first rule whose suffix matches decides the
// result and nothing after it is consulted.
type RuleSet struct {
	SkipMaxLength int         `yaml:"skip_max_length"`
	Groups        []RuleGroup `yaml:"groups"`
}

var errEmptyRuleSet = errors.New("rule set has no rules")

func ParseRuleSet(data []byte) (*RuleSet, error) {
	var rs RuleSet
	if err := yaml.Unmarshal(data, &rs); err != nil {
		return nil, fmt.Errorf("parse lemma rules: %w", err)
	}
	if err := rs.Validate(); err != nil {
		return nil, fmt.Errorf("parse lemma rules: %w", err)
	}
	return &rs, nil
}

func LoadRuleSet(path string) (*RuleSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read lemma rules %s: %w", path, err)
	}
	return ParseRuleSet(data)
}

// RussianRules returns the embedded Russian rule table.
func RussianRules() *RuleSet {
	rs, err := ParseRuleSet(russianRulesYAML)
	if err != nil {
		panic(err)
	}
	return rs
}

func (rs *RuleSet) Validate() error {
	n := 0
	for _, g := range rs.Groups {
		for i, r := range g.Rules {
			if len(r.Suffixes) == 0 {
				return fmt.Errorf("group %q rule %d: no suffixes", g.Name, i)
			}
			if r.Strip <= 0 {
				return fmt.Errorf("group %q rule %d: strip must be positive, got %d", g.Name, i, r.Strip)
			}
			for _, s := range r.Suffixes {
				if s == "" {
					return fmt.Errorf("group %q rule %d: empty suffix", g.Name, i)
				}
				if utf8.RuneCountInString(s) < r.Strip {
					return fmt.Errorf("group %q rule %d: strip %d longer than suffix %q", g.Name, i, r.Strip, s)
				}
			}
			n++
		}
	}
	if n == 0 {
		return errEmptyRuleSet
	}
	return nil
}

func (rs *RuleSet) Lemmatize(token string) string {
	length := utf8.RuneCountInString(token)
	if length <= rs.SkipMaxLength {
		return token
	}
	for _, g := range rs.Groups {
		for _, r := range g.Rules {
			if !r.matches(token) {
				continue
			}
			if length-r.Strip < r.MinBase {
				return token
			}
			return trimRunes(token, r.Strip) + r.Append
		}
	}
	return token
}

func (r Rule) matches(token string) bool {
	for _, s := range r.Suffixes {
		if strings.HasSuffix(token, s) {
			return true
		}
	}
	return false
}

// trimRunes cuts n runes off the end of s.
func trimRunes(s string, n int) string {
	end := len(s)
	for ; n > 0 && end > 0; n-- {
		_, size := utf8.DecodeLastRuneInString(s[:end])
		end -= size
	}
	return s[:end]
}

// SnowballLemmatizer delegates to a snowball stemmer. Stems are not
// dictionary forms, but they serve the same role in the lemma stream.
type SnowballLemmatizer struct {
	Language string
}

func (s SnowballLemmatizer) Lemmatize(token string) string {
	stemmed, err := snowball.Stem(token, s.Language, false)
	if err != nil || stemmed == "" {
		return token
	}
	return stemmed
}
