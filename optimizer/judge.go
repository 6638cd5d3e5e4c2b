package optimizer

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/marcward/promptsmith/corpus"
	"github.com/marcward/promptsmith/llm"
	"github.com/marcward/promptsmith/types"
	"github.com/marcward/promptsmith/utils"
)

// Textual delimiters keep the judge model from confusing which span is the
// abstract, the prediction and the gold labels.
const (
	abstractOpen    = "<abstract>"
	abstractClose   = "</abstract>"
	predictionOpen  = "<prediction>"
	predictionClose = "</prediction>"
	goldOpen        = "<gold>"
	goldClose       = "</gold>"
	evalOpen        = "<evaluation>"
	evalClose       = "</evaluation>"
)

const scoreMarker = "Score:"
const explanationMarker = "Explanation:"

// ErrParsingEvaluation is the explanation recorded when a judge response
// cannot be parsed.
const ErrParsingEvaluation = "Error parsing evaluation"

// evaluation is the schema-constrained judge verdict.
type evaluation struct {
	Score       float64 `json:"score" validate:"min=0,max=1"`
	Explanation string  `json:"explanation"`
}

// Judge scores predictions against gold labels with a second, reasoning
// oriented model call.
type Judge struct {
	gateway llm.LLM
	model   string
	effort  string
	logger  utils.Logger
}

// NewJudge creates a Judge. Model selects the judge model (empty keeps the
// gateway default); effort is the reasoning-effort level for that model.
func NewJudge(gateway llm.LLM, model, effort string, logger utils.Logger) *Judge {
	return &Judge{gateway: gateway, model: model, effort: effort, logger: logger}
}

// Evaluate scores a single prediction. Any gateway or parse failure yields
// score 0.0 with an error explanation instead of failing the round.
func (j *Judge) Evaluate(ctx context.Context, item corpus.Item, prediction Prediction) JudgedPrediction {
	score, explanation := j.evaluate(ctx, item, prediction)
	return JudgedPrediction{
		Item:        item,
		Prediction:  prediction,
		Score:       score,
		Explanation: explanation,
	}
}

func (j *Judge) evaluate(ctx context.Context, item corpus.Item, prediction Prediction) (float64, string) {
	opts := []llm.GenerateOption{llm.WithReasoningEffort(j.effort)}
	if j.model != "" {
		opts = append(opts, llm.WithModel(j.model))
	}

	// Schema-constrained extraction is preferred when the provider supports
	// it; the delimited-text protocol is the fallback.
	if j.gateway.SupportsJSONSchema() {
		schema, err := llm.GenerateJSONSchema(&evaluation{})
		if err == nil {
			messages := []types.Message{types.UserMessage(j.structuredPrompt(item, prediction))}
			resp, err := j.gateway.GenerateWithSchema(ctx, messages, schema, opts...)
			if err != nil {
				j.logger.Warn("judge call failed", "id", item.ID, "error", err)
				return 0.0, ErrParsingEvaluation
			}
			return j.parseStructured(item.ID, resp.Content)
		}
		j.logger.Warn("failed to generate evaluation schema", "error", err)
	}

	messages := []types.Message{types.UserMessage(j.delimitedPrompt(item, prediction))}
	resp, err := j.gateway.Generate(ctx, messages, opts...)
	if err != nil {
		j.logger.Warn("judge call failed", "id", item.ID, "error", err)
		return 0.0, ErrParsingEvaluation
	}
	return j.parseDelimited(item.ID, resp.Content)
}

func (j *Judge) parseStructured(id, content string) (float64, string) {
	var verdict evaluation
	if err := json.Unmarshal([]byte(content), &verdict); err != nil {
		j.logger.Warn("error parsing evaluation", "id", id, "raw", content, "error", err)
		return 0.0, ErrParsingEvaluation
	}
	if err := llm.Validate(verdict); err != nil {
		j.logger.Warn("evaluation out of range", "id", id, "score", verdict.Score, "error", err)
		return 0.0, ErrParsingEvaluation
	}
	return verdict.Score, verdict.Explanation
}

// parseDelimited extracts a Score line and explanation from an
// <evaluation> block.
func (j *Judge) parseDelimited(id, content string) (float64, string) {
	block, ok := cutDelimited(content, evalOpen, evalClose)
	if !ok {
		j.logger.Warn("error parsing evaluation", "id", id, "raw", content)
		return 0.0, ErrParsingEvaluation
	}

	lines := strings.Split(block, "\n")
	scoreIdx := -1
	for i, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), scoreMarker) {
			scoreIdx = i
			break
		}
	}
	if scoreIdx < 0 {
		j.logger.Warn("error parsing evaluation", "id", id, "raw", content)
		return 0.0, ErrParsingEvaluation
	}

	scoreText := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(lines[scoreIdx]), scoreMarker))
	score, err := strconv.ParseFloat(scoreText, 64)
	if err != nil || score < 0.0 || score > 1.0 {
		j.logger.Warn("error parsing evaluation", "id", id, "score_text", scoreText)
		return 0.0, ErrParsingEvaluation
	}

	rest := append(append([]string{}, lines[:scoreIdx]...), lines[scoreIdx+1:]...)
	explanation := strings.TrimSpace(strings.Join(rest, "\n"))
	explanation = strings.TrimSpace(strings.TrimPrefix(explanation, explanationMarker))
	return score, explanation
}

func cutDelimited(text, open, close string) (string, bool) {
	start := strings.Index(text, open)
	if start < 0 {
		return "", false
	}
	rest := text[start+len(open):]
	end := strings.Index(rest, close)
	if end < 0 {
		return "", false
	}
	return strings.TrimSpace(rest[:end]), true
}

func formatLabels(labels []string) string {
	raw, err := json.Marshal(labels)
	if err != nil {
		return "[]"
	}
	return string(raw)
}

func (j *Judge) criteria(item corpus.Item, prediction Prediction) string {
	return fmt.Sprintf(`%s
%s
%s

%s
%s
%s

%s
%s
%s

Your task is to evaluate how well the prediction matches the gold labels for extracting model names from a machine learning paper abstract.

Evaluation criteria:
1. Precision: Are all predicted model names actually present in the abstract and are they actual model names?
2. Recall: Did the prediction capture all model names in the abstract?
3. Accuracy: Did the prediction correctly identify model names vs. non-model names?

First, analyze the abstract to identify which model names are actually mentioned.
Then compare the prediction to the gold labels.

Give a score between 0.0 (completely wrong) and 1.0 (perfect match), with partial credit for partial matches.
Explain your scoring with specific details about what was correct and incorrect in the prediction.`,
		abstractOpen, item.Input, abstractClose,
		predictionOpen, formatLabels(prediction.Labels), predictionClose,
		goldOpen, formatLabels(item.GoldLabels), goldClose)
}

func (j *Judge) structuredPrompt(item corpus.Item, prediction Prediction) string {
	return j.criteria(item, prediction) + `

Respond with a JSON object holding the numeric score and the explanation.`
}

func (j *Judge) delimitedPrompt(item corpus.Item, prediction Prediction) string {
	return fmt.Sprintf(`%s

Your response should be in the format:
%s
Score: [score between 0.0 and 1.0]
Explanation: [detailed explanation]
%s`, j.criteria(item, prediction), evalOpen, evalClose)
}
