package optimizer

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcward/promptsmith/corpus"
	"github.com/marcward/promptsmith/llm"
	"github.com/marcward/promptsmith/utils"
)

var judgeItem = corpus.Item{
	ID:         "p1",
	Input:      "We introduce the Transformer architecture.",
	GoldLabels: []string{"Transformer"},
}

var judgePrediction = Prediction{
	ItemID:  "p1",
	RawText: `["Transformer"]`,
	Labels:  []string{"Transformer"},
}

func newTextJudge(gateway *llm.MockLLM) *Judge {
	gateway.SetSupportsJSONSchema(false)
	return NewJudge(gateway, "o3-mini", "low", utils.NewNopLogger())
}

func TestJudgeDelimitedParsing(t *testing.T) {
	tests := []struct {
		name            string
		response        string
		wantScore       float64
		wantExplanation string
	}{
		{
			name:            "well formed",
			response:        "<evaluation>\nScore: 0.85\nExplanation: Close match, one label missed.\n</evaluation>",
			wantScore:       0.85,
			wantExplanation: "Close match, one label missed.",
		},
		{
			name:            "perfect score",
			response:        "Some preamble.\n<evaluation>\nScore: 1.0\nExplanation: Exact match.\n</evaluation>\nTrailing text.",
			wantScore:       1.0,
			wantExplanation: "Exact match.",
		},
		{
			name:            "multi line explanation",
			response:        "<evaluation>\nScore: 0.5\nExplanation: Partial credit.\nOne correct, one missing.\n</evaluation>",
			wantScore:       0.5,
			wantExplanation: "Partial credit.\nOne correct, one missing.",
		},
		{
			name:            "missing delimiters",
			response:        "Score: 0.9\nExplanation: fine",
			wantScore:       0.0,
			wantExplanation: ErrParsingEvaluation,
		},
		{
			name:            "missing score line",
			response:        "<evaluation>\nExplanation: no score given\n</evaluation>",
			wantScore:       0.0,
			wantExplanation: ErrParsingEvaluation,
		},
		{
			name:            "non numeric score",
			response:        "<evaluation>\nScore: high\nExplanation: vague\n</evaluation>",
			wantScore:       0.0,
			wantExplanation: ErrParsingEvaluation,
		},
		{
			name:            "score above one",
			response:        "<evaluation>\nScore: 1.5\nExplanation: enthusiastic\n</evaluation>",
			wantScore:       0.0,
			wantExplanation: ErrParsingEvaluation,
		},
		{
			name:            "negative score",
			response:        "<evaluation>\nScore: -0.2\nExplanation: harsh\n</evaluation>",
			wantScore:       0.0,
			wantExplanation: ErrParsingEvaluation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gateway := llm.NewMockLLM()
			gateway.EnqueueResponse(tt.response)

			jp := newTextJudge(gateway).Evaluate(context.Background(), judgeItem, judgePrediction)

			assert.Equal(t, tt.wantScore, jp.Score)
			assert.Equal(t, tt.wantExplanation, jp.Explanation)
		})
	}
}

func TestJudgeStructured(t *testing.T) {
	t.Run("valid verdict", func(t *testing.T) {
		gateway := llm.NewMockLLM()
		gateway.EnqueueResponse(`{"score": 0.75, "explanation": "Mostly right."}`)

		j := NewJudge(gateway, "o3-mini", "low", utils.NewNopLogger())
		jp := j.Evaluate(context.Background(), judgeItem, judgePrediction)

		assert.Equal(t, 0.75, jp.Score)
		assert.Equal(t, "Mostly right.", jp.Explanation)
	})

	t.Run("malformed json", func(t *testing.T) {
		gateway := llm.NewMockLLM()
		gateway.EnqueueResponse(`{"score": oops`)

		j := NewJudge(gateway, "o3-mini", "low", utils.NewNopLogger())
		jp := j.Evaluate(context.Background(), judgeItem, judgePrediction)

		assert.Equal(t, 0.0, jp.Score)
		assert.Equal(t, ErrParsingEvaluation, jp.Explanation)
	})

	t.Run("score out of range fails validation", func(t *testing.T) {
		gateway := llm.NewMockLLM()
		gateway.EnqueueResponse(`{"score": 2.0, "explanation": "too generous"}`)

		j := NewJudge(gateway, "o3-mini", "low", utils.NewNopLogger())
		jp := j.Evaluate(context.Background(), judgeItem, judgePrediction)

		assert.Equal(t, 0.0, jp.Score)
		assert.Equal(t, ErrParsingEvaluation, jp.Explanation)
	})
}

func TestJudgeGatewayFailure(t *testing.T) {
	gateway := llm.NewMockLLM()
	gateway.EnqueueError(errors.New("boom"))

	jp := newTextJudge(gateway).Evaluate(context.Background(), judgeItem, judgePrediction)

	assert.Equal(t, 0.0, jp.Score)
	assert.Equal(t, ErrParsingEvaluation, jp.Explanation)
	assert.Equal(t, judgeItem, jp.Item)
	assert.Equal(t, judgePrediction, jp.Prediction)
}

func TestJudgePromptContents(t *testing.T) {
	gateway := llm.NewMockLLM()
	gateway.EnqueueResponse("<evaluation>\nScore: 1.0\nExplanation: ok\n</evaluation>")

	newTextJudge(gateway).Evaluate(context.Background(), judgeItem, judgePrediction)

	require.Len(t, gateway.Calls, 1)
	prompt := gateway.Calls[0][0].Content
	assert.Contains(t, prompt, "<abstract>\n"+judgeItem.Input+"\n</abstract>")
	assert.Contains(t, prompt, `<prediction>`)
	assert.Contains(t, prompt, `["Transformer"]`)
	assert.Contains(t, prompt, `<gold>`)
	assert.True(t, strings.Contains(prompt, "<evaluation>"))

	// The judge model and its reasoning effort ride on the call options.
	assert.Equal(t, "o3-mini", gateway.Options[0]["model"])
	assert.Equal(t, "low", gateway.Options[0]["reasoning_effort"])
}
