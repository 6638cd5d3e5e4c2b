package promptsmith

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcward/promptsmith/config"
	"github.com/marcward/promptsmith/llm"
)

func TestNew(t *testing.T) {
	t.Run("mock provider from options", func(t *testing.T) {
		gateway, err := New(config.SetProvider("mock"), config.SetModel("test-model"))
		require.NoError(t, err)
		assert.True(t, gateway.SupportsJSONSchema())
		assert.NotNil(t, gateway.GetLogger())
	})

	t.Run("unknown provider", func(t *testing.T) {
		_, err := New(config.SetProvider("does-not-exist"))
		assert.Error(t, err)
	})
}

type bookInfo struct {
	Title  string `json:"title" validate:"required"`
	Author string `json:"author" validate:"required"`
	Year   int    `json:"year" validate:"min=0"`
}

func TestExtractStructuredData(t *testing.T) {
	t.Run("valid extraction", func(t *testing.T) {
		gateway := llm.NewMockLLM()
		gateway.EnqueueResponse(`{"title": "The Go Programming Language", "author": "Donovan and Kernighan", "year": 2015}`)

		book, err := ExtractStructuredData[bookInfo](context.Background(), gateway,
			"The Go Programming Language was written by Donovan and Kernighan in 2015.")
		require.NoError(t, err)
		assert.Equal(t, "The Go Programming Language", book.Title)
		assert.Equal(t, 2015, book.Year)
	})

	t.Run("missing required field fails validation", func(t *testing.T) {
		gateway := llm.NewMockLLM()
		gateway.EnqueueResponse(`{"title": "Untitled"}`)

		_, err := ExtractStructuredData[bookInfo](context.Background(), gateway, "some text")
		assert.ErrorContains(t, err, "validation")
	})

	t.Run("malformed response", func(t *testing.T) {
		gateway := llm.NewMockLLM()
		gateway.EnqueueResponse(`{{{`)

		_, err := ExtractStructuredData[bookInfo](context.Background(), gateway, "some text")
		assert.ErrorContains(t, err, "parse")
	})
}
