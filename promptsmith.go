// Package promptsmith is the public entry point of the library. It wires
// configuration, provider registry and gateway together and offers generic
// structured extraction on top.
package promptsmith

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/marcward/promptsmith/config"
	"github.com/marcward/promptsmith/llm"
	"github.com/marcward/promptsmith/providers"
	"github.com/marcward/promptsmith/types"
	"github.com/marcward/promptsmith/utils"
)

// LLM is the gateway interface, re-exported for callers that only import
// the root package.
type LLM = llm.LLM

// ConfigOption is re-exported from the config package.
type ConfigOption = config.ConfigOption

// New builds a gateway from the environment plus the given overrides.
func New(opts ...ConfigOption) (LLM, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	config.ApplyOptions(cfg, opts...)

	if err := llm.Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	logger := utils.NewLogger(cfg.LogLevel)
	registry := providers.NewProviderRegistry()
	return llm.NewLLM(cfg, logger, registry)
}

// ExtractStructuredData asks the model to fill a value of type T from the
// given text. The reflected JSON schema constrains the response where the
// provider supports it; the decoded value is checked against its validation
// tags either way.
func ExtractStructuredData[T any](ctx context.Context, l LLM, text string) (*T, error) {
	var value T
	schema, err := llm.GenerateJSONSchema(&value)
	if err != nil {
		return nil, fmt.Errorf("failed to generate JSON schema: %w", err)
	}

	messages := []types.Message{
		types.SystemMessage("Extract the requested information from the text. If a field cannot be confidently filled, leave it empty."),
		types.UserMessage(text),
	}
	resp, err := l.GenerateWithSchema(ctx, messages, schema)
	if err != nil {
		return nil, fmt.Errorf("failed to generate structured data: %w", err)
	}

	if err := json.Unmarshal([]byte(resp.Content), &value); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	if err := llm.Validate(value); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	return &value, nil
}
