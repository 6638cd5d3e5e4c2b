// Package llm provides a unified gateway to chat-completion model APIs with
// retries, schema-constrained output and function calling.
package llm

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/marcward/promptsmith/config"
	"github.com/marcward/promptsmith/providers"
	"github.com/marcward/promptsmith/types"
	"github.com/marcward/promptsmith/utils"
)

// Response is re-exported so callers outside the providers package do not
// need to import it directly.
type Response = providers.Response

// Usage is re-exported token accounting.
type Usage = providers.Usage

// LLM is the gateway interface. Components that talk to a model take an LLM
// as an explicit dependency so tests can substitute a fake.
type LLM interface {
	Generate(ctx context.Context, messages []types.Message, opts ...GenerateOption) (*Response, error)
	GenerateWithSchema(ctx context.Context, messages []types.Message, schema any, opts ...GenerateOption) (*Response, error)
	GenerateWithTools(ctx context.Context, messages []types.Message, tools []types.Tool, opts ...GenerateOption) (*Response, error)
	SupportsJSONSchema() bool
	SetOption(key string, value any)
	GetLogger() utils.Logger
}

// GenerateOption adjusts a single call without touching provider defaults.
type GenerateOption func(map[string]any)

// WithTemperature sets the sampling temperature for this call.
func WithTemperature(temperature float64) GenerateOption {
	return func(options map[string]any) {
		options["temperature"] = temperature
	}
}

// WithModel overrides the model for this call. The judge and metaprompter
// use this to target a reasoning model while sharing one gateway.
func WithModel(model string) GenerateOption {
	return func(options map[string]any) {
		options["model"] = model
	}
}

// WithReasoningEffort requests extended reasoning at the given effort level.
func WithReasoningEffort(effort string) GenerateOption {
	return func(options map[string]any) {
		options["reasoning_effort"] = effort
	}
}

// WithToolChoice controls how the model selects tools for this call.
func WithToolChoice(choice any) GenerateOption {
	return func(options map[string]any) {
		options["tool_choice"] = choice
	}
}

// LLMImpl is the HTTP-backed implementation of the LLM interface.
type LLMImpl struct {
	Provider   providers.Provider
	Options    map[string]any
	client     *http.Client
	logger     utils.Logger
	MaxRetries int
	RetryDelay time.Duration
}

// NewLLM builds a gateway from configuration using the given registry.
func NewLLM(cfg *config.Config, logger utils.Logger, registry *providers.ProviderRegistry) (LLM, error) {
	provider, err := registry.Get(cfg.Provider, cfg.APIKeys[cfg.Provider], cfg.Model, cfg.ExtraHeaders)
	if err != nil {
		return nil, NewLLMError(ErrorTypeProvider, "failed to resolve provider", err)
	}

	provider.SetDefaultOptions(cfg)
	provider.SetLogger(logger)

	return &LLMImpl{
		Provider:   provider,
		Options:    make(map[string]any),
		client:     &http.Client{Timeout: cfg.Timeout},
		logger:     logger,
		MaxRetries: cfg.MaxRetries,
		RetryDelay: cfg.RetryDelay,
	}, nil
}

func (l *LLMImpl) SetOption(key string, value any) {
	l.Options[key] = value
	l.logger.Debug("option set", "key", key, "value", value)
}

func (l *LLMImpl) GetLogger() utils.Logger {
	return l.logger
}

func (l *LLMImpl) SupportsJSONSchema() bool {
	return l.Provider.SupportsJSONSchema()
}

func (l *LLMImpl) callOptions(opts []GenerateOption) map[string]any {
	options := make(map[string]any, len(l.Options)+len(opts))
	for k, v := range l.Options {
		options[k] = v
	}
	for _, opt := range opts {
		opt(options)
	}
	return options
}

// Generate requests a free-text completion for the given messages.
func (l *LLMImpl) Generate(ctx context.Context, messages []types.Message, opts ...GenerateOption) (*Response, error) {
	options := l.callOptions(opts)
	return l.withRetries(ctx, func() (*Response, error) {
		reqBody, err := l.Provider.PrepareRequest(messages, options)
		if err != nil {
			return nil, NewLLMError(ErrorTypeRequest, "failed to prepare request", err)
		}
		return l.send(ctx, reqBody)
	})
}

// GenerateWithSchema requests a completion constrained by the given JSON
// schema. Providers without schema support get the schema embedded in the
// final user message instead.
func (l *LLMImpl) GenerateWithSchema(ctx context.Context, messages []types.Message, schema any, opts ...GenerateOption) (*Response, error) {
	options := l.callOptions(opts)
	return l.withRetries(ctx, func() (*Response, error) {
		var reqBody []byte
		var err error
		if l.SupportsJSONSchema() {
			reqBody, err = l.Provider.PrepareRequestWithSchema(messages, options, schema)
		} else {
			reqBody, err = l.Provider.PrepareRequest(appendSchemaMessage(messages, schema), options)
		}
		if err != nil {
			return nil, NewLLMError(ErrorTypeRequest, "failed to prepare request", err)
		}
		return l.send(ctx, reqBody)
	})
}

// GenerateWithTools requests a completion with function tools available.
func (l *LLMImpl) GenerateWithTools(ctx context.Context, messages []types.Message, tools []types.Tool, opts ...GenerateOption) (*Response, error) {
	options := l.callOptions(opts)
	return l.withRetries(ctx, func() (*Response, error) {
		reqBody, err := l.Provider.PrepareRequestWithTools(messages, options, tools)
		if err != nil {
			return nil, NewLLMError(ErrorTypeRequest, "failed to prepare request", err)
		}
		return l.send(ctx, reqBody)
	})
}

func (l *LLMImpl) withRetries(ctx context.Context, attempt func() (*Response, error)) (*Response, error) {
	var lastErr error
	for try := 0; try <= l.MaxRetries; try++ {
		resp, err := attempt()
		if err == nil {
			return resp, nil
		}
		lastErr = err
		l.logger.Warn("generation attempt failed", "error", err, "attempt", try+1)

		if try < l.MaxRetries {
			if err := l.wait(ctx); err != nil {
				return nil, err
			}
		}
	}
	return nil, fmt.Errorf("failed to generate after %d attempts: %w", l.MaxRetries+1, lastErr)
}

func (l *LLMImpl) wait(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(l.RetryDelay):
		return nil
	}
}

func statusErrorType(code int) ErrorType {
	switch code {
	case http.StatusTooManyRequests:
		return ErrorTypeRateLimit
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrorTypeAuthentication
	default:
		return ErrorTypeAPI
	}
}

func (l *LLMImpl) send(ctx context.Context, reqBody []byte) (*Response, error) {
	l.logger.Debug("request body", "provider", l.Provider.Name(), "body", string(reqBody))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, l.Provider.Endpoint(), bytes.NewReader(reqBody))
	if err != nil {
		return nil, NewLLMError(ErrorTypeRequest, "failed to create request", err)
	}

	for k, v := range l.Provider.Headers() {
		req.Header.Set(k, v)
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, NewLLMError(ErrorTypeRequest, "failed to send request", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, NewLLMError(ErrorTypeResponse, "failed to read response body", err)
	}

	if resp.StatusCode != http.StatusOK {
		l.logger.Error("API error", "provider", l.Provider.Name(), "status", resp.StatusCode, "body", string(body))
		return nil, NewLLMError(statusErrorType(resp.StatusCode), fmt.Sprintf("API error: status code %d", resp.StatusCode), nil)
	}

	result, err := l.Provider.ParseResponse(body)
	if err != nil {
		return nil, NewLLMError(ErrorTypeResponse, "failed to parse response", err)
	}

	l.logger.Debug("text generated", "tokens", result.Usage)
	return result, nil
}

func appendSchemaMessage(messages []types.Message, schema any) []types.Message {
	schemaJSON, err := marshalSchema(schema)
	if err != nil {
		return messages
	}
	out := make([]types.Message, len(messages), len(messages)+1)
	copy(out, messages)
	return append(out, types.UserMessage(
		"Respond with a JSON object conforming to this schema:\n"+schemaJSON))
}
