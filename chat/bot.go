package chat

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/marcward/promptsmith/llm"
	"github.com/marcward/promptsmith/menu"
	"github.com/marcward/promptsmith/types"
	"github.com/marcward/promptsmith/utils"
)

// defaultMemoryTokens bounds the conversation history sent per turn.
const defaultMemoryTokens = 4096

// Bot is a restaurant order chatbot. It exposes the order-total calculator
// as a function tool; when the model asks for it, the tool runs locally and
// the result is fed back for the final answer.
type Bot struct {
	gateway llm.LLM
	memory  *Memory
	logger  utils.Logger
}

// NewBot creates a Bot with the menu embedded in its system prompt.
func NewBot(gateway llm.LLM, model string, logger utils.Logger) (*Bot, error) {
	memory, err := NewMemory(defaultMemoryTokens, model, logger)
	if err != nil {
		return nil, err
	}
	memory.SetSystem(systemPrompt())

	return &Bot{
		gateway: gateway,
		memory:  memory,
		logger:  logger,
	}, nil
}

// Send processes one user turn and returns the bot's reply.
func (b *Bot) Send(ctx context.Context, userInput string) (string, error) {
	b.memory.Add(types.UserMessage(userInput))

	tools := []types.Tool{menu.CalculateTotalTool()}
	resp, err := b.gateway.GenerateWithTools(ctx, b.memory.Messages(), tools, llm.WithToolChoice("auto"))
	if err != nil {
		return "", fmt.Errorf("chat turn failed: %w", err)
	}

	if resp.HasToolCalls() {
		reply, err := b.handleToolCalls(ctx, resp, tools)
		if err != nil {
			return "", err
		}
		b.memory.Add(types.AssistantMessage(reply))
		return reply, nil
	}

	b.memory.Add(types.AssistantMessage(resp.Content))
	return resp.Content, nil
}

// handleToolCalls executes each requested tool, appends the results to the
// conversation and asks the model again for the user-facing answer.
func (b *Bot) handleToolCalls(ctx context.Context, resp *llm.Response, tools []types.Tool) (string, error) {
	assistant := types.Message{Role: types.RoleAssistant, ToolCalls: resp.ToolCalls}
	b.memory.Add(assistant)

	for _, call := range resp.ToolCalls {
		result, err := b.invokeTool(call)
		if err != nil {
			b.logger.Warn("tool invocation failed", "tool", call.Function.Name, "error", err)
			result = fmt.Sprintf(`{"error": %q}`, err.Error())
		}
		b.memory.Add(types.ToolMessage(call.ID, result))
	}

	// The tool results are already in the conversation; force a user-facing
	// answer instead of another round of calls.
	final, err := b.gateway.GenerateWithTools(ctx, b.memory.Messages(), tools, llm.WithToolChoice("none"))
	if err != nil {
		return "", fmt.Errorf("final chat response failed: %w", err)
	}
	return final.Content, nil
}

func (b *Bot) invokeTool(call types.ToolCall) (string, error) {
	if call.Function.Name != "calculate_total" {
		return "", fmt.Errorf("unknown tool: %s", call.Function.Name)
	}

	var args struct {
		Items []string `json:"items"`
	}
	if err := json.Unmarshal(call.Function.Arguments, &args); err != nil {
		return "", fmt.Errorf("bad calculate_total arguments: %w", err)
	}

	b.logger.Info("calling tool", "tool", "calculate_total", "items", args.Items)
	total := menu.CalculateTotal(args.Items)
	result, err := json.Marshal(total)
	if err != nil {
		return "", fmt.Errorf("failed to encode tool result: %w", err)
	}
	return string(result), nil
}

func systemPrompt() string {
	return fmt.Sprintf(`You are a friendly restaurant chatbot that helps customers with their orders.
Below is our complete menu. Please use these exact item names when calling the calculate_total function.

%s

Instructions for handling orders:
1. When a customer wants to order items, identify which menu items they're referring to.
2. Call the calculate_total function with the EXACT menu item names from above.
3. Present the order clearly with individual items and prices, followed by the total.

If a customer mentions an item not on our menu (like "hamburger" instead of "Mini Cheeseburger"), use your judgment to match it to the closest menu item. Then use that exact menu item name when calling the calculate_total function.`, menu.FormatForPrompt())
}
