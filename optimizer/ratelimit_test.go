package optimizer

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"

	"github.com/marcward/promptsmith/llm"
	"github.com/marcward/promptsmith/types"
)

func TestLimitGateway(t *testing.T) {
	t.Run("nil limiter is a passthrough", func(t *testing.T) {
		gateway := llm.NewMockLLM()
		assert.Same(t, gateway, LimitGateway(gateway, nil))
	})

	t.Run("calls wait on the limiter", func(t *testing.T) {
		gateway := llm.NewMockLLM()
		limited := LimitGateway(gateway, rate.NewLimiter(rate.Every(10*time.Millisecond), 1))

		start := time.Now()
		for i := 0; i < 3; i++ {
			_, err := limited.Generate(context.Background(), []types.Message{types.UserMessage("hi")})
			require.NoError(t, err)
		}
		// Burst of one, so the second and third calls each wait a tick.
		assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
		assert.Len(t, gateway.Calls, 3)
	})

	t.Run("cancelled context aborts the wait", func(t *testing.T) {
		gateway := llm.NewMockLLM()
		limited := LimitGateway(gateway, rate.NewLimiter(rate.Every(time.Hour), 1))

		// Drain the burst allowance.
		_, err := limited.Generate(context.Background(), nil)
		require.NoError(t, err)

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		defer cancel()
		_, err = limited.Generate(ctx, nil)
		assert.Error(t, err)
		assert.Len(t, gateway.Calls, 1)
	})
}
