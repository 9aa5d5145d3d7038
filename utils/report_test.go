package utils_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/viranchils96/text-vectorizer/utils"
)

type decodedReport struct {
	Terms   []string `json:"terms" yaml:"terms"`
	Surface []struct {
		Document string `json:"document" yaml:"document"`
		Vector   []int  `json:"vector" yaml:"vector"`
	} `json:"surface_forms" yaml:"surface_forms"`
	Stats utils.Stats `json:"stats" yaml:"stats"`
}

func TestWriteReport(t *testing.T) {
	res := utils.NewAnalyzer().Process(sampleCorpus(), 10)

	for _, format := range []string{"json", "yaml"} {
		t.Run(format, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, utils.WriteReport(&buf, res, format))

			var got decodedReport
			if format == "json" {
				require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
			} else {
				require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
			}

			assert.Equal(t, res.Vocabulary.Terms(), got.Terms)
			require.Len(t, got.Surface, 2)
			assert.Equal(t, "doc1", got.Surface[0].Document)
			assert.Equal(t, []int{0, 0, 1, 2, 0}, got.Surface[0].Vector)
			assert.Equal(t, res.Stats, got.Stats)
		})
	}
}

func TestWriteReportUnknownFormat(t *testing.T) {
	res := utils.NewAnalyzer().Process(nil, 10)
	assert.Error(t, utils.WriteReport(&bytes.Buffer{}, res, "xlsx"))
}
