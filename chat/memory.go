// Package chat implements a function-calling restaurant order bot with a
// token-bounded conversation memory.
package chat

import (
	"fmt"
	"sync"

	"github.com/pkoukk/tiktoken-go"

	"github.com/marcward/promptsmith/types"
	"github.com/marcward/promptsmith/utils"
)

// Memory manages conversation history with token-based truncation. The
// system message is pinned: truncation only ever drops the oldest
// non-system messages.
type Memory struct {
	mutex       sync.Mutex
	system      *types.Message
	messages    []types.Message
	tokens      []int
	totalTokens int
	maxTokens   int
	encoding    *tiktoken.Tiktoken
	logger      utils.Logger
}

// NewMemory creates a Memory with the given token budget, using the token
// encoding of the named model.
func NewMemory(maxTokens int, model string, logger utils.Logger) (*Memory, error) {
	encoding, err := tiktoken.EncodingForModel(model)
	if err != nil {
		logger.Warn("failed to get encoding for model, defaulting to gpt-4o", "model", model, "error", err)
		encoding, err = tiktoken.EncodingForModel("gpt-4o")
		if err != nil {
			return nil, fmt.Errorf("failed to get default encoding: %w", err)
		}
	}

	return &Memory{
		maxTokens: maxTokens,
		encoding:  encoding,
		logger:    logger,
	}, nil
}

// SetSystem pins the system message. Its tokens count against the budget
// but it is never truncated.
func (m *Memory) SetSystem(content string) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	msg := types.SystemMessage(content)
	m.system = &msg
}

// Add appends a message to the history, truncating the oldest messages if
// the token budget is exceeded.
func (m *Memory) Add(msg types.Message) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	tokens := len(m.encoding.Encode(msg.Content, nil, nil))
	m.messages = append(m.messages, msg)
	m.tokens = append(m.tokens, tokens)
	m.totalTokens += tokens

	m.truncate()
	m.logger.Debug("message added to memory", "role", msg.Role, "tokens", tokens, "total_tokens", m.totalTokens)
}

func (m *Memory) truncate() {
	budget := m.maxTokens
	if m.system != nil {
		budget -= len(m.encoding.Encode(m.system.Content, nil, nil))
	}
	for m.totalTokens > budget && len(m.messages) > 1 {
		m.totalTokens -= m.tokens[0]
		m.logger.Debug("message truncated from memory", "role", m.messages[0].Role, "tokens", m.tokens[0])
		m.messages = m.messages[1:]
		m.tokens = m.tokens[1:]
	}
}

// Messages returns the system message (if set) followed by the retained
// history, ready to send to the gateway.
func (m *Memory) Messages() []types.Message {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	out := make([]types.Message, 0, len(m.messages)+1)
	if m.system != nil {
		out = append(out, *m.system)
	}
	out = append(out, m.messages...)
	return out
}

// Len returns the number of retained non-system messages.
func (m *Memory) Len() int {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	return len(m.messages)
}

// Clear empties the history, keeping the pinned system message.
func (m *Memory) Clear() {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.messages = nil
	m.tokens = nil
	m.totalTokens = 0
}
