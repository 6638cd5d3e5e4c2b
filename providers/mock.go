package providers

import (
	"encoding/json"
	"errors"

	"github.com/marcward/promptsmith/config"
	"github.com/marcward/promptsmith/types"
	"github.com/marcward/promptsmith/utils"
)

// MockProvider implements the Provider interface for testing purposes.
// It replays a queue of canned responses and can be scripted to fail on
// specific calls, which is how gateway timeouts are simulated in tests.
type MockProvider struct {
	endpoint     string
	model        string
	extraHeaders map[string]string
	options      map[string]any
	logger       utils.Logger

	responseText  string
	shouldError   bool
	errorMsg      string
	responses     []string
	errorAt       map[int]string // call index -> error message
	callCount     int
	currentIndex  int
	loopResponses bool
	jsonSchema    bool
}

// NewMockProvider creates a new mock provider instance for testing.
func NewMockProvider(endpoint, model string, extraHeaders map[string]string) Provider {
	if extraHeaders == nil {
		extraHeaders = make(map[string]string)
	}
	return &MockProvider{
		endpoint:     endpoint,
		model:        model,
		extraHeaders: extraHeaders,
		options:      make(map[string]any),
		logger:       utils.NewNopLogger(),
		responseText: "This is a mock response",
		errorAt:      make(map[int]string),
		jsonSchema:   true,
	}
}

// SetMockResponse configures the fallback response text.
func (p *MockProvider) SetMockResponse(response string) {
	p.responseText = response
}

// SetMockError configures the mock to return an error on every call.
func (p *MockProvider) SetMockError(shouldError bool, errorMsg string) {
	p.shouldError = shouldError
	p.errorMsg = errorMsg
}

// SetResponses configures a list of responses to be returned in sequence.
func (p *MockProvider) SetResponses(responses []string, loop bool) {
	p.responses = responses
	p.currentIndex = 0
	p.loopResponses = loop
}

// FailCall makes the n-th ParseResponse call (0-based) return an error.
func (p *MockProvider) FailCall(n int, errorMsg string) {
	p.errorAt[n] = errorMsg
}

// SetSupportsJSONSchema toggles the schema capability, letting tests force
// the text-delimiter parsing path.
func (p *MockProvider) SetSupportsJSONSchema(supported bool) {
	p.jsonSchema = supported
}

// CallCount returns the number of ParseResponse calls seen so far.
func (p *MockProvider) CallCount() int {
	return p.callCount
}

func (p *MockProvider) SetLogger(logger utils.Logger)             { p.logger = logger }
func (p *MockProvider) Name() string                              { return "mock" }
func (p *MockProvider) Endpoint() string                          { return p.endpoint }
func (p *MockProvider) SetOption(key string, value any)           { p.options[key] = value }
func (p *MockProvider) SupportsJSONSchema() bool                  { return p.jsonSchema }
func (p *MockProvider) SetExtraHeaders(headers map[string]string) { p.extraHeaders = headers }

func (p *MockProvider) SetDefaultOptions(cfg *config.Config) {
	p.SetOption("temperature", cfg.Temperature)
	p.SetOption("max_tokens", cfg.MaxTokens)
}

func (p *MockProvider) Headers() map[string]string {
	headers := map[string]string{
		"Content-Type": "application/json",
	}
	for k, v := range p.extraHeaders {
		headers[k] = v
	}
	return headers
}

func (p *MockProvider) PrepareRequest(messages []types.Message, options map[string]any) ([]byte, error) {
	if p.shouldError {
		return nil, errors.New(p.errorMsg)
	}
	requestBody := map[string]any{
		"model":    p.model,
		"messages": messages,
	}
	for k, v := range options {
		requestBody[k] = v
	}
	return json.Marshal(requestBody)
}

func (p *MockProvider) PrepareRequestWithSchema(messages []types.Message, options map[string]any, schema any) ([]byte, error) {
	return p.PrepareRequest(messages, options)
}

func (p *MockProvider) PrepareRequestWithTools(messages []types.Message, options map[string]any, tools []types.Tool) ([]byte, error) {
	return p.PrepareRequest(messages, options)
}

func (p *MockProvider) getNextResponse() (string, error) {
	if len(p.responses) == 0 {
		return p.responseText, nil
	}

	if p.currentIndex >= len(p.responses) {
		if p.loopResponses {
			p.currentIndex = 0
		} else {
			return "", errors.New("mock responses exhausted")
		}
	}

	response := p.responses[p.currentIndex]
	p.currentIndex++
	return response, nil
}

func (p *MockProvider) ParseResponse(body []byte) (*Response, error) {
	call := p.callCount
	p.callCount++

	if msg, ok := p.errorAt[call]; ok {
		return nil, errors.New(msg)
	}
	if p.shouldError {
		return nil, errors.New(p.errorMsg)
	}

	content, err := p.getNextResponse()
	if err != nil {
		return nil, err
	}
	return &Response{
		Content: content,
		Usage:   &Usage{PromptTokens: 10, CompletionTokens: 5, TotalTokens: 15},
	}, nil
}
