package optimizer

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcward/promptsmith/corpus"
	"github.com/marcward/promptsmith/llm"
	"github.com/marcward/promptsmith/utils"
)

func TestParsePredictionLabels(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{
			name: "json array",
			raw:  `["Transformer", "ResNet"]`,
			want: []string{"Transformer", "ResNet"},
		},
		{
			name: "single quoted",
			raw:  `['BERT']`,
			want: []string{"BERT"},
		},
		{
			name: "label prefix stripped",
			raw:  `Tags: ["GPT-2"]`,
			want: []string{"GPT-2"},
		},
		{
			name: "list embedded in prose",
			raw:  `The models mentioned are ["BERT", "RoBERTa"] as far as I can tell.`,
			want: []string{"BERT", "RoBERTa"},
		},
		{
			name: "prose without list",
			raw:  "I could not find any model names in this abstract.",
			want: []string{SentinelLabel},
		},
		{
			name: "empty list degrades to sentinel",
			raw:  "[]",
			want: []string{SentinelLabel},
		},
		{
			name: "empty response",
			raw:  "",
			want: []string{SentinelLabel},
		},
		{
			name: "sentinel passes through",
			raw:  `["NA"]`,
			want: []string{"NA"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParsePredictionLabels(tt.raw))
		})
	}
}

func TestPredict(t *testing.T) {
	items := []corpus.Item{
		{ID: "p1", Input: "We introduce the Transformer.", GoldLabels: []string{"Transformer"}},
		{ID: "p2", Input: "A study of optimizers.", GoldLabels: []string{"NA"}},
	}

	t.Run("one prediction per item in order", func(t *testing.T) {
		gateway := llm.NewMockLLM()
		gateway.EnqueueResponse(`["Transformer"]`)
		gateway.EnqueueResponse(`["NA"]`)

		p := NewPredictor(gateway, utils.NewNopLogger())
		predictions := p.Predict(context.Background(), items, "extract model names")

		require.Len(t, predictions, 2)
		assert.Equal(t, "p1", predictions[0].ItemID)
		assert.Equal(t, []string{"Transformer"}, predictions[0].Labels)
		assert.Equal(t, "p2", predictions[1].ItemID)
		assert.Equal(t, []string{"NA"}, predictions[1].Labels)

		// Every call carries the candidate prompt and runs at temperature zero.
		require.Len(t, gateway.Calls, 2)
		assert.Equal(t, "extract model names", gateway.Calls[0][0].Content)
		assert.Equal(t, "Abstract: We introduce the Transformer.", gateway.Calls[0][1].Content)
		assert.Equal(t, float64(0), gateway.Options[0]["temperature"])
	})

	t.Run("gateway failure yields sentinel, rest continues", func(t *testing.T) {
		gateway := llm.NewMockLLM()
		gateway.EnqueueError(errors.New("rate limited"))
		gateway.EnqueueResponse(`["ResNet"]`)

		p := NewPredictor(gateway, utils.NewNopLogger())
		predictions := p.Predict(context.Background(), items, "prompt")

		require.Len(t, predictions, 2)
		assert.Equal(t, []string{SentinelLabel}, predictions[0].Labels)
		assert.Equal(t, []string{"ResNet"}, predictions[1].Labels)
	})
}
