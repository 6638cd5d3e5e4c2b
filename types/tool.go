package types

import "encoding/json"

// Function describes a callable function exposed to the model.
type Function struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Parameters  map[string]any `json:"parameters"`
}

// Tool wraps a Function in the tool envelope used by chat-completion APIs.
type Tool struct {
	Type     string   `json:"type"`
	Function Function `json:"function"`
}

// NewFunctionTool builds a function tool definition.
func NewFunctionTool(fn Function) Tool {
	return Tool{Type: "function", Function: fn}
}

// ToolCall is a request from the model to invoke a tool.
type ToolCall struct {
	ID       string `json:"id"`
	Type     string `json:"type"`
	Function struct {
		Name      string          `json:"name"`
		Arguments json.RawMessage `json:"arguments"`
	} `json:"function"`
}
