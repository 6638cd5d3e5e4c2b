package optimizer

import (
	"context"

	"golang.org/x/time/rate"

	"github.com/marcward/promptsmith/llm"
	"github.com/marcward/promptsmith/types"
)

// limitedGateway throttles every model call behind a shared rate limiter.
// The loop issues one call per corpus item per round, which adds up fast
// against provider rate limits.
type limitedGateway struct {
	llm.LLM
	limiter *rate.Limiter
}

// LimitGateway wraps a gateway so all calls pass through the limiter.
func LimitGateway(gateway llm.LLM, limiter *rate.Limiter) llm.LLM {
	if limiter == nil {
		return gateway
	}
	return &limitedGateway{LLM: gateway, limiter: limiter}
}

func (g *limitedGateway) Generate(ctx context.Context, messages []types.Message, opts ...llm.GenerateOption) (*llm.Response, error) {
	if err := g.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	return g.LLM.Generate(ctx, messages, opts...)
}

func (g *limitedGateway) GenerateWithSchema(ctx context.Context, messages []types.Message, schema any, opts ...llm.GenerateOption) (*llm.Response, error) {
	if err := g.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	return g.LLM.GenerateWithSchema(ctx, messages, schema, opts...)
}

func (g *limitedGateway) GenerateWithTools(ctx context.Context, messages []types.Message, tools []types.Tool, opts ...llm.GenerateOption) (*llm.Response, error) {
	if err := g.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	return g.LLM.GenerateWithTools(ctx, messages, tools, opts...)
}
