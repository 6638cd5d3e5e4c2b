// Package providers implements the wire formats of the supported model APIs
// behind a single Provider interface. The rest of the library only ever sees
// role-tagged messages in and a parsed Response out.
package providers

import (
	"github.com/marcward/promptsmith/config"
	"github.com/marcward/promptsmith/types"
	"github.com/marcward/promptsmith/utils"
)

// Provider defines the interface that all model providers must implement.
type Provider interface {
	// Core identification and configuration
	Name() string
	Endpoint() string
	Headers() map[string]string
	SetExtraHeaders(extraHeaders map[string]string)
	SetDefaultOptions(cfg *config.Config)
	SetOption(key string, value any)
	SetLogger(logger utils.Logger)

	// Request preparation
	PrepareRequest(messages []types.Message, options map[string]any) ([]byte, error)
	PrepareRequestWithSchema(messages []types.Message, options map[string]any, schema any) ([]byte, error)
	PrepareRequestWithTools(messages []types.Message, options map[string]any, tools []types.Tool) ([]byte, error)

	// Response handling
	ParseResponse(body []byte) (*Response, error)

	// Capability checks
	SupportsJSONSchema() bool
}

// Response is the provider-independent result of a generation call.
type Response struct {
	Content   string
	ToolCalls []types.ToolCall
	Usage     *Usage
}

// HasToolCalls reports whether the model asked for a tool invocation.
func (r *Response) HasToolCalls() bool {
	return len(r.ToolCalls) > 0
}

// Usage contains token accounting for a single call. CachedTokens is the
// portion of the prompt served from the provider's prompt cache.
type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
	CachedTokens     int `json:"cached_tokens"`
}

// CacheHitRatio returns the fraction of prompt tokens served from cache.
func (u *Usage) CacheHitRatio() float64 {
	if u == nil || u.PromptTokens == 0 {
		return 0
	}
	return float64(u.CachedTokens) / float64(u.PromptTokens)
}

// IsCacheHit reports whether any part of the prompt was served from cache.
func (u *Usage) IsCacheHit() bool {
	return u != nil && u.CachedTokens > 0
}

// ProviderConstructor defines a function type for creating new provider
// instances. Each provider implementation registers one of these.
type ProviderConstructor func(apiKey, model string, extraHeaders map[string]string) Provider
