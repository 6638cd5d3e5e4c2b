package optimizer

import (
	"context"
	"fmt"
	"strings"

	"github.com/marcward/promptsmith/llm"
	"github.com/marcward/promptsmith/types"
	"github.com/marcward/promptsmith/utils"
)

const (
	promptOpen  = "<prompt>"
	promptClose = "</prompt>"
)

// Metaprompter rewrites the instruction region of a candidate prompt based
// on the judged predictions of the last round. Only the instruction region
// leaves the process: the surrounding boilerplate is reassembled from the
// PromptDocument, never from model output.
type Metaprompter struct {
	gateway llm.LLM
	model   string
	effort  string
	logger  utils.Logger
}

// NewMetaprompter creates a Metaprompter. Model selects the rewriting model
// (empty keeps the gateway default); effort is its reasoning-effort level.
func NewMetaprompter(gateway llm.LLM, model, effort string, logger utils.Logger) *Metaprompter {
	return &Metaprompter{gateway: gateway, model: model, effort: effort, logger: logger}
}

// Propose returns the next candidate document. On gateway failure the
// current document is returned unchanged along with the error so the loop
// can continue with the prompt it already has.
func (m *Metaprompter) Propose(ctx context.Context, doc PromptDocument, judged []JudgedPrediction) (PromptDocument, error) {
	opts := []llm.GenerateOption{llm.WithReasoningEffort(m.effort)}
	if m.model != "" {
		opts = append(opts, llm.WithModel(m.model))
	}

	messages := []types.Message{types.UserMessage(m.metaprompt(doc, judged))}
	resp, err := m.gateway.Generate(ctx, messages, opts...)
	if err != nil {
		m.logger.Warn("metaprompt call failed", "error", err)
		return doc, fmt.Errorf("failed to propose revised prompt: %w", err)
	}

	instructions := cleanInstructions(resp.Content)
	if instructions == "" {
		m.logger.Warn("metaprompt returned no instructions", "raw", resp.Content)
		return doc, fmt.Errorf("revised instruction region is empty")
	}

	return doc.WithInstructions("\n" + instructions + "\n"), nil
}

// cleanInstructions strips markdown fences and echoed instruction markers
// from the model's output.
func cleanInstructions(text string) string {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	text = strings.TrimSpace(text)

	if block, ok := cutDelimited(text, instructionsOpen, instructionsClose); ok {
		return block
	}
	text = strings.TrimPrefix(text, instructionsOpen)
	text = strings.TrimSuffix(text, instructionsClose)
	return strings.TrimSpace(text)
}

func (m *Metaprompter) metaprompt(doc PromptDocument, judged []JudgedPrediction) string {
	var examples strings.Builder
	for _, jp := range judged {
		fmt.Fprintf(&examples, `
Paper: %s
Abstract: %s
Gold Labels: %s
Prediction: %s
Score: %g
Explanation: %s
`,
			jp.Item.ID,
			jp.Item.Input,
			formatLabels(jp.Item.GoldLabels),
			formatLabels(jp.Prediction.Labels),
			jp.Score,
			jp.Explanation)
	}

	return fmt.Sprintf(`You are an expert prompt engineer tasked with improving a system prompt for extracting model names from machine learning paper abstracts.

Here is the current prompt to improve:
%s
%s
%s

Here are evaluations of model predictions using the current prompt:
<eval_examples>
%s
</eval_examples>

Based on these evaluations and their scores and explanations, rewrite the instructions found inside of %s%s.
Output ONLY the new instruction text, without the %s%s markers and without anything else. Everything outside the instruction region is fixed and will be kept as is.`,
		promptOpen, doc.String(), promptClose,
		examples.String(),
		instructionsOpen, instructionsClose,
		instructionsOpen, instructionsClose)
}
