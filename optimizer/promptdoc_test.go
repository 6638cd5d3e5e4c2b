package optimizer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePromptDocument(t *testing.T) {
	t.Run("marked text splits into regions", func(t *testing.T) {
		text := "Preamble here.\n<instructions>\n- rule one\n</instructions>\nPostamble."
		doc := ParsePromptDocument(text)

		assert.Equal(t, "Preamble here.\n", doc.Preamble)
		assert.Equal(t, "\n- rule one\n", doc.Instructions)
		assert.Equal(t, "\nPostamble.", doc.Postamble)
		assert.Equal(t, text, doc.String())
	})

	t.Run("unmarked text is fully editable", func(t *testing.T) {
		doc := ParsePromptDocument("just a plain prompt")

		assert.Empty(t, doc.Preamble)
		assert.Equal(t, "just a plain prompt", doc.Instructions)
		assert.Empty(t, doc.Postamble)
		assert.Equal(t, "just a plain prompt", doc.String())
	})

	t.Run("unclosed marker treated as plain text", func(t *testing.T) {
		text := "Prompt with a stray <instructions> marker"
		doc := ParsePromptDocument(text)

		assert.Equal(t, text, doc.Instructions)
		assert.Equal(t, text, doc.String())
	})

	t.Run("default prompt round-trips", func(t *testing.T) {
		doc := ParsePromptDocument(DefaultInitialPrompt)

		assert.Contains(t, doc.Preamble, "extract model names")
		assert.Contains(t, doc.Instructions, "avoid things that are not model names")
		assert.Equal(t, DefaultInitialPrompt, doc.String())
	})
}

func TestWithInstructions(t *testing.T) {
	doc := ParsePromptDocument(DefaultInitialPrompt)
	revised := doc.WithInstructions("\n- new rule\n")

	// Only the editable region changes; the boilerplate reassembles exactly.
	assert.Equal(t, doc.Preamble, revised.Preamble)
	assert.Equal(t, doc.Postamble, revised.Postamble)
	assert.Contains(t, revised.String(), "<instructions>\n- new rule\n</instructions>")
	assert.True(t, strings.HasPrefix(revised.String(), doc.Preamble))

	// The original is untouched.
	assert.Contains(t, doc.Instructions, "avoid things")
}
