package llm

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/marcward/promptsmith/providers"
	"github.com/marcward/promptsmith/types"
	"github.com/marcward/promptsmith/utils"
)

// MockLLM is an in-process gateway double for component tests. Calls consume
// a queue of scripted results; when the queue runs dry the fallback content
// is returned. It is safe for concurrent use.
type MockLLM struct {
	mu            sync.Mutex
	queue         []mockResult
	fallback      string
	schemaSupport bool
	logger        utils.Logger

	// Calls records the message list of every call, in order.
	Calls [][]types.Message
	// Options records the per-call options of every call, in order.
	Options []map[string]any
}

type mockResult struct {
	resp *Response
	err  error
}

// NewMockLLM creates a mock gateway with schema support enabled.
func NewMockLLM() *MockLLM {
	return &MockLLM{
		fallback:      "mock response",
		schemaSupport: true,
		logger:        utils.NewNopLogger(),
	}
}

// SetFallback sets the content returned once the queue is exhausted.
func (m *MockLLM) SetFallback(content string) {
	m.fallback = content
}

// SetSupportsJSONSchema toggles the schema capability.
func (m *MockLLM) SetSupportsJSONSchema(supported bool) {
	m.schemaSupport = supported
}

// EnqueueResponse queues a plain text response.
func (m *MockLLM) EnqueueResponse(content string) {
	m.enqueue(mockResult{resp: &Response{Content: content, Usage: &Usage{PromptTokens: 10, TotalTokens: 12}}})
}

// EnqueueUsage queues a text response with explicit usage numbers.
func (m *MockLLM) EnqueueUsage(content string, usage *Usage) {
	m.enqueue(mockResult{resp: &Response{Content: content, Usage: usage}})
}

// EnqueueToolCall queues a response asking to invoke the named tool.
func (m *MockLLM) EnqueueToolCall(name string, arguments string) {
	var tc types.ToolCall
	tc.ID = "call_0"
	tc.Type = "function"
	tc.Function.Name = name
	tc.Function.Arguments = json.RawMessage(arguments)
	m.enqueue(mockResult{resp: &Response{ToolCalls: []types.ToolCall{tc}}})
}

// EnqueueError queues a failed call.
func (m *MockLLM) EnqueueError(err error) {
	m.enqueue(mockResult{err: err})
}

func (m *MockLLM) enqueue(r mockResult) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.queue = append(m.queue, r)
}

func (m *MockLLM) next(ctx context.Context, messages []types.Message, opts []GenerateOption) (*Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	options := make(map[string]any)
	for _, opt := range opts {
		opt(options)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls = append(m.Calls, messages)
	m.Options = append(m.Options, options)

	if len(m.queue) == 0 {
		return &Response{Content: m.fallback, Usage: &providers.Usage{}}, nil
	}
	r := m.queue[0]
	m.queue = m.queue[1:]
	return r.resp, r.err
}

func (m *MockLLM) Generate(ctx context.Context, messages []types.Message, opts ...GenerateOption) (*Response, error) {
	return m.next(ctx, messages, opts)
}

func (m *MockLLM) GenerateWithSchema(ctx context.Context, messages []types.Message, schema any, opts ...GenerateOption) (*Response, error) {
	return m.next(ctx, messages, opts)
}

func (m *MockLLM) GenerateWithTools(ctx context.Context, messages []types.Message, tools []types.Tool, opts ...GenerateOption) (*Response, error) {
	return m.next(ctx, messages, opts)
}

func (m *MockLLM) SupportsJSONSchema() bool {
	return m.schemaSupport
}

func (m *MockLLM) SetOption(key string, value any) {}

func (m *MockLLM) GetLogger() utils.Logger {
	return m.logger
}
