package optimizer

import (
	"context"
	"regexp"
	"strings"

	"github.com/marcward/promptsmith/corpus"
	"github.com/marcward/promptsmith/llm"
	"github.com/marcward/promptsmith/types"
	"github.com/marcward/promptsmith/utils"
)

// labelPrefix is sometimes prepended by the model despite the prompt asking
// for a bare array.
const labelPrefix = "Tags: "

var bracketed = regexp.MustCompile(`\[[^\[\]]*\]`)

// Predictor applies a candidate prompt to corpus items at temperature zero
// and parses each response into a label list.
type Predictor struct {
	gateway llm.LLM
	logger  utils.Logger
}

// NewPredictor creates a Predictor using the given gateway.
func NewPredictor(gateway llm.LLM, logger utils.Logger) *Predictor {
	return &Predictor{gateway: gateway, logger: logger}
}

// Predict returns exactly one prediction per item, in input order. A gateway
// failure on an item yields the sentinel prediction for that item; the rest
// of the corpus is still processed.
func (p *Predictor) Predict(ctx context.Context, items []corpus.Item, prompt string) []Prediction {
	predictions := make([]Prediction, 0, len(items))
	for _, item := range items {
		predictions = append(predictions, p.predictOne(ctx, item, prompt))
	}
	p.logger.Info("predictions generated", "items", len(predictions))
	return predictions
}

func (p *Predictor) predictOne(ctx context.Context, item corpus.Item, prompt string) Prediction {
	messages := []types.Message{
		types.SystemMessage(prompt),
		types.UserMessage("Abstract: " + item.Input),
	}

	resp, err := p.gateway.Generate(ctx, messages, llm.WithTemperature(0))
	if err != nil {
		p.logger.Warn("prediction call failed", "id", item.ID, "error", err)
		return Prediction{ItemID: item.ID, Labels: []string{SentinelLabel}}
	}

	raw := resp.Content
	return Prediction{
		ItemID:  item.ID,
		RawText: raw,
		Labels:  ParsePredictionLabels(raw),
	}
}

// ParsePredictionLabels turns raw model output into a label list. It strips
// the known label prefix, tries the whole text as a list literal, then the
// first bracketed substring, and finally degrades to the sentinel list. The
// result is never empty.
func ParsePredictionLabels(raw string) []string {
	text := strings.TrimSpace(strings.ReplaceAll(raw, labelPrefix, ""))

	if labels, err := corpus.ParseListLiteral(text); err == nil && len(labels) > 0 {
		return labels
	}

	if match := bracketed.FindString(text); match != "" {
		if labels, err := corpus.ParseListLiteral(match); err == nil && len(labels) > 0 {
			return labels
		}
	}

	return []string{SentinelLabel}
}
