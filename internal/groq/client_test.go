package groq

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewClient_DefaultModel(t *testing.T) {
	t.Setenv("GROQ_CHAT_MODEL", "")

	c := NewClient(NewKeyPool())

	assert.Equal(t, defaultChatModel, c.chatModel)
}

func TestNewClient_ModelOverride(t *testing.T) {
	t.Setenv("GROQ_CHAT_MODEL", "llama-3.1-8b-instant")

	c := NewClient(NewKeyPool())

	assert.Equal(t, "llama-3.1-8b-instant", c.chatModel)
}
