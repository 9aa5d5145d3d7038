package utils

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

type reportRow struct {
	Document string `json:"document" yaml:"document"`
	Vector   []int  `json:"vector" yaml:"vector,flow"`
}

type report struct {
	Terms   []string    `json:"terms" yaml:"terms,flow"`
	Surface []reportRow `json:"surface_forms" yaml:"surface_forms"`
	Lemma   []reportRow `json:"lemma_forms" yaml:"lemma_forms"`
	Stats   Stats       `json:"stats" yaml:"stats"`
}

func rows(names []string, vectors []FrequencyVector) []reportRow {
	out := make([]reportRow, len(vectors))
	for i, v := range vectors {
		out[i] = reportRow{Document: names[i], Vector: v}
	}
	return out
}

// WriteReport writes the vocabulary header, both vector matrices and the
// statistics of res. format is "json" or "yaml".
func WriteReport(w io.Writer, res *Result, format string) error {
	r := report{
		Terms:   res.Vocabulary.Terms(),
		Surface: rows(res.Names, res.Surface),
		Lemma:   rows(res.Names, res.Lemma),
		Stats:   res.Stats,
	}
	if r.Terms == nil {
		r.Terms = []string{}
	}

	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("encode json report: %w", err)
		}
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("encode yaml report: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("encode yaml report: %w", err)
		}
	default:
		return fmt.Errorf("unknown report format %q", format)
	}
	return nil
}
