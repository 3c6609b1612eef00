package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConversationAppend(t *testing.T) {
	c := NewConversation()
	assert.Zero(t, c.Len())

	c.AddMessage(RoleHuman, "hello")
	c.AddMessage(RoleAI, "hi there")

	require.Equal(t, 2, c.Len())
	assert.Equal(t, "Human: hello\nAI: hi there", c.String())
}

func TestConversationFromMessages(t *testing.T) {
	stored := []Message{
		{Role: RoleHuman, Content: "q"},
		{Role: RoleAI, Content: "a"},
	}
	c := ConversationFromMessages(stored)

	assert.Equal(t, 2, c.Len())
	assert.Equal(t, 2, c.SavedIndex)

	// The conversation owns its copy of the history.
	stored[0].Content = "mutated"
	assert.Equal(t, "q", c.Messages[0].Content)
}

func TestConversationToMessagesCopies(t *testing.T) {
	c := NewConversation()
	c.AddMessage(RoleHuman, "q")

	out := c.ToMessages()
	require.Len(t, out, 1)
	out[0].Content = "mutated"
	assert.Equal(t, "q", c.Messages[0].Content)
}

func TestResponseEnvelope(t *testing.T) {
	ok := OK([]string{"a"})
	assert.True(t, ok.Success)
	_, err := ok.WithRaise()
	assert.NoError(t, err)

	fail := Fail("user %s not found", "bob")
	assert.False(t, fail.Success)
	assert.Equal(t, "user bob not found", fail.Error)
	_, err = fail.WithRaise()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "user bob not found")
}
