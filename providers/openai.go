package providers

import (
	"encoding/json"
	"fmt"

	"github.com/marcward/promptsmith/config"
	"github.com/marcward/promptsmith/types"
	"github.com/marcward/promptsmith/utils"
)

// OpenAIProvider implements the Provider interface for OpenAI's
// chat-completions API and for any API that speaks the same format.
type OpenAIProvider struct {
	apiKey       string
	model        string
	extraHeaders map[string]string
	options      map[string]any
	logger       utils.Logger
}

// NewOpenAIProvider creates a new OpenAI provider instance.
func NewOpenAIProvider(apiKey, model string, extraHeaders map[string]string) Provider {
	if extraHeaders == nil {
		extraHeaders = make(map[string]string)
	}
	return &OpenAIProvider{
		apiKey:       apiKey,
		model:        model,
		extraHeaders: extraHeaders,
		options:      make(map[string]any),
		logger:       utils.NewLogger(utils.LogLevelInfo),
	}
}

// SetLogger sets the logger for the provider.
func (p *OpenAIProvider) SetLogger(logger utils.Logger) {
	p.logger = logger
}

// SetOption sets a request option for the provider.
func (p *OpenAIProvider) SetOption(key string, value any) {
	p.options[key] = value
	p.logger.Debug("option set", "key", key, "value", value)
}

// SetDefaultOptions sets default options based on the provided configuration.
func (p *OpenAIProvider) SetDefaultOptions(cfg *config.Config) {
	p.SetOption("temperature", cfg.Temperature)
	p.SetOption("max_tokens", cfg.MaxTokens)
}

// Name returns the provider's name.
func (p *OpenAIProvider) Name() string {
	return "openai"
}

// Endpoint returns the chat-completions endpoint.
func (p *OpenAIProvider) Endpoint() string {
	return "https://api.openai.com/v1/chat/completions"
}

// SupportsJSONSchema indicates that OpenAI supports schema-constrained output.
func (p *OpenAIProvider) SupportsJSONSchema() bool {
	return true
}

// SetExtraHeaders replaces the extra headers sent with each request.
func (p *OpenAIProvider) SetExtraHeaders(extraHeaders map[string]string) {
	p.extraHeaders = extraHeaders
}

// Headers returns the headers for API requests.
func (p *OpenAIProvider) Headers() map[string]string {
	headers := map[string]string{
		"Content-Type":  "application/json",
		"Authorization": "Bearer " + p.apiKey,
	}
	for key, value := range p.extraHeaders {
		headers[key] = value
	}
	return headers
}

// PrepareRequest prepares a plain chat-completion request body.
func (p *OpenAIProvider) PrepareRequest(messages []types.Message, options map[string]any) ([]byte, error) {
	request := p.createBaseRequest(messages, options)
	return json.Marshal(request)
}

// PrepareRequestWithSchema prepares a request constrained by a JSON schema
// via the response_format field.
func (p *OpenAIProvider) PrepareRequestWithSchema(messages []types.Message, options map[string]any, schema any) ([]byte, error) {
	request := p.createBaseRequest(messages, options)
	request["response_format"] = map[string]any{
		"type": "json_schema",
		"json_schema": map[string]any{
			"name":   "response",
			"strict": true,
			"schema": schema,
		},
	}
	return json.Marshal(request)
}

// PrepareRequestWithTools prepares a request that exposes function tools.
func (p *OpenAIProvider) PrepareRequestWithTools(messages []types.Message, options map[string]any, tools []types.Tool) ([]byte, error) {
	request := p.createBaseRequest(messages, options)
	request["tools"] = tools
	if choice, ok := options["tool_choice"]; ok {
		request["tool_choice"] = choice
	}
	return json.Marshal(request)
}

func (p *OpenAIProvider) createBaseRequest(messages []types.Message, options map[string]any) map[string]any {
	request := map[string]any{
		"model":    p.model,
		"messages": messages,
	}

	merged := make(map[string]any, len(p.options)+len(options))
	for k, v := range p.options {
		merged[k] = v
	}
	for k, v := range options {
		merged[k] = v
	}

	if model, ok := merged["model"].(string); ok && model != "" {
		request["model"] = model
		delete(merged, "model")
	}

	// Reasoning models reject sampling parameters.
	if _, reasoning := merged["reasoning_effort"]; reasoning {
		delete(merged, "temperature")
		delete(merged, "top_p")
		delete(merged, "max_tokens")
	}

	for k, v := range merged {
		if k == "tool_choice" {
			continue
		}
		request[k] = v
	}
	return request
}

// ParseResponse extracts content, tool calls and usage from an API response.
func (p *OpenAIProvider) ParseResponse(body []byte) (*Response, error) {
	var response struct {
		Choices []struct {
			Message struct {
				Content   string           `json:"content"`
				ToolCalls []types.ToolCall `json:"tool_calls"`
			} `json:"message"`
		} `json:"choices"`
		Usage struct {
			PromptTokens        int `json:"prompt_tokens"`
			CompletionTokens    int `json:"completion_tokens"`
			TotalTokens         int `json:"total_tokens"`
			PromptTokensDetails struct {
				CachedTokens int `json:"cached_tokens"`
			} `json:"prompt_tokens_details"`
		} `json:"usage"`
		Error *struct {
			Message string `json:"message"`
			Type    string `json:"type"`
		} `json:"error"`
	}

	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("error parsing response: %w", err)
	}

	if response.Error != nil {
		return nil, fmt.Errorf("API error: %s (%s)", response.Error.Message, response.Error.Type)
	}

	if len(response.Choices) == 0 {
		return nil, fmt.Errorf("empty response from API")
	}

	msg := response.Choices[0].Message
	return &Response{
		Content:   msg.Content,
		ToolCalls: msg.ToolCalls,
		Usage: &Usage{
			PromptTokens:     response.Usage.PromptTokens,
			CompletionTokens: response.Usage.CompletionTokens,
			TotalTokens:      response.Usage.TotalTokens,
			CachedTokens:     response.Usage.PromptTokensDetails.CachedTokens,
		},
	}, nil
}
