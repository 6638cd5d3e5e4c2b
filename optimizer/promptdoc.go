package optimizer

import "strings"

// Instruction region markers inside a candidate prompt.
const (
	instructionsOpen  = "<instructions>"
	instructionsClose = "</instructions>"
)

// DefaultInitialPrompt is the zero-shot starting prompt for model-name
// extraction from paper abstracts.
const DefaultInitialPrompt = `Your task is to extract model names from machine learning paper abstracts. Your response is an array of the model names in the format ["model_name"]. If you don't find model names in the abstract or you are not sure, return ["NA"].
<instructions>
- Extract model names only, avoid things that are not model names like architectures and dataset names
</instructions>
`

// PromptDocument is a candidate prompt split into a fixed preamble, an
// editable instruction region and a fixed postamble. The metaprompter only
// ever replaces the instruction region; the document is reassembled
// mechanically, so the boilerplate around it cannot drift between rounds no
// matter what the rewriting model returns.
type PromptDocument struct {
	Preamble     string `json:"preamble"`
	Instructions string `json:"instructions"`
	Postamble    string `json:"postamble"`
}

// ParsePromptDocument splits prompt text around the instruction markers.
// When the markers are absent the whole text becomes the editable region.
func ParsePromptDocument(text string) PromptDocument {
	open := strings.Index(text, instructionsOpen)
	if open < 0 {
		return PromptDocument{Instructions: text}
	}
	rest := text[open+len(instructionsOpen):]
	closeIdx := strings.Index(rest, instructionsClose)
	if closeIdx < 0 {
		return PromptDocument{Instructions: text}
	}

	return PromptDocument{
		Preamble:     text[:open],
		Instructions: rest[:closeIdx],
		Postamble:    rest[closeIdx+len(instructionsClose):],
	}
}

// WithInstructions returns a copy of the document with the editable region
// replaced.
func (d PromptDocument) WithInstructions(instructions string) PromptDocument {
	d.Instructions = instructions
	return d
}

// String reassembles the full prompt text.
func (d PromptDocument) String() string {
	if d.Preamble == "" && d.Postamble == "" {
		return d.Instructions
	}
	var sb strings.Builder
	sb.WriteString(d.Preamble)
	sb.WriteString(instructionsOpen)
	sb.WriteString(d.Instructions)
	sb.WriteString(instructionsClose)
	sb.WriteString(d.Postamble)
	return sb.String()
}
