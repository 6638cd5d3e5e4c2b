package corpus

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcward/promptsmith/utils"
)

func TestParseListLiteral(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []string
		wantErr bool
	}{
		{
			name:  "json array",
			input: `["Transformer", "ResNet"]`,
			want:  []string{"Transformer", "ResNet"},
		},
		{
			name:  "single quoted",
			input: `['Transformer', 'ResNet']`,
			want:  []string{"Transformer", "ResNet"},
		},
		{
			name:  "mixed quotes",
			input: `['BERT', "GPT-2"]`,
			want:  []string{"BERT", "GPT-2"},
		},
		{
			name:  "whitespace stripped",
			input: `[' BERT ', '  GPT-2']`,
			want:  []string{"BERT", "GPT-2"},
		},
		{
			name:  "apostrophe inside double quotes",
			input: `["model's head", 'plain']`,
			want:  []string{"model's head", "plain"},
		},
		{
			name:  "escaped quote",
			input: `['it\'s fine']`,
			want:  []string{"it's fine"},
		},
		{
			name:  "sentinel",
			input: `["NA"]`,
			want:  []string{"NA"},
		},
		{
			name:  "empty list",
			input: `[]`,
			want:  []string{},
		},
		{
			name:  "surrounding whitespace",
			input: "  ['LSTM']\n",
			want:  []string{"LSTM"},
		},
		{
			name:    "no brackets",
			input:   "Transformer, ResNet",
			wantErr: true,
		},
		{
			name:    "prose",
			input:   "I could not find any models.",
			wantErr: true,
		},
		{
			name:    "unterminated string",
			input:   `['open`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseListLiteral(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseListLiteralEncodingsAgree(t *testing.T) {
	// A string-encoded literal and a real list must yield the same labels.
	fromString, err := ParseListLiteral(`['Transformer', 'ResNet']`)
	require.NoError(t, err)
	fromJSON, err := ParseListLiteral(`["Transformer", "ResNet"]`)
	require.NoError(t, err)
	assert.Equal(t, fromJSON, fromString)
}

func writeCorpusFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "corpus.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	logger := utils.NewNopLogger()

	t.Run("list and string-literal labels", func(t *testing.T) {
		path := writeCorpusFile(t, `[
			{"id": "p1", "input_text": "Uses a Transformer.", "gold_labels": ["Transformer"]},
			{"id": "p2", "input_text": "Compares BERT and GPT-2.", "gold_labels": "['BERT', 'GPT-2']"}
		]`)

		items, err := Load(path, logger)
		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, []string{"Transformer"}, items[0].GoldLabels)
		assert.Equal(t, []string{"BERT", "GPT-2"}, items[1].GoldLabels)
	})

	t.Run("alternate field names", func(t *testing.T) {
		path := writeCorpusFile(t, `[
			{"paper": "attention.pdf", "abstract": "We propose the Transformer.", "gold_labels": ["Transformer"]}
		]`)

		items, err := Load(path, logger)
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "attention.pdf", items[0].ID)
		assert.Equal(t, "We propose the Transformer.", items[0].Input)
	})

	t.Run("missing id falls back to index", func(t *testing.T) {
		path := writeCorpusFile(t, `[
			{"input_text": "No id here.", "gold_labels": ["NA"]}
		]`)

		items, err := Load(path, logger)
		require.NoError(t, err)
		assert.Equal(t, "0", items[0].ID)
	})

	t.Run("bad labels degrade to empty set", func(t *testing.T) {
		path := writeCorpusFile(t, `[
			{"id": "p1", "input_text": "Broken labels.", "gold_labels": "not a list"},
			{"id": "p2", "input_text": "Fine.", "gold_labels": ["CNN"]}
		]`)

		items, err := Load(path, logger)
		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Empty(t, items[0].GoldLabels)
		assert.Equal(t, []string{"CNN"}, items[1].GoldLabels)
	})

	t.Run("duplicates collapsed in order", func(t *testing.T) {
		path := writeCorpusFile(t, `[
			{"id": "p1", "input_text": "x", "gold_labels": [" BERT", "GPT-2", "BERT "]}
		]`)

		items, err := Load(path, logger)
		require.NoError(t, err)
		assert.Equal(t, []string{"BERT", "GPT-2"}, items[0].GoldLabels)
	})

	t.Run("missing file is fatal", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.json"), logger)
		assert.Error(t, err)
	})

	t.Run("malformed json is fatal", func(t *testing.T) {
		path := writeCorpusFile(t, `{"not": "an array"`)
		_, err := Load(path, logger)
		assert.Error(t, err)
	})
}
