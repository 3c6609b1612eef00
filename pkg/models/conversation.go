package models

import (
	"fmt"
	"strings"
)

// Role identifies the author of a conversation message.
type Role string

const (
	RoleHuman  Role = "Human"
	RoleAI     Role = "AI"
	RoleSystem Role = "System"
	// RoleUser and RoleAgent are reserved for co-pilot flows where the
	// "user" is itself an automated client.
	RoleUser  Role = "User"
	RoleAgent Role = "Agent"
)

// Message is a single conversation turn.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// Conversation is an ordered, append-only log of messages. It is serialized
// to the chat session's history column and reconstructed on load.
type Conversation struct {
	Messages []Message `json:"messages"`
	// SavedIndex marks how many messages were already persisted.
	SavedIndex int `json:"saved_index"`
}

// NewConversation returns an empty conversation.
func NewConversation() *Conversation {
	return &Conversation{}
}

// ConversationFromMessages rebuilds a conversation from stored history.
func ConversationFromMessages(messages []Message) *Conversation {
	c := &Conversation{
		Messages:   make([]Message, len(messages)),
		SavedIndex: len(messages),
	}
	copy(c.Messages, messages)
	return c
}

// AddMessage appends a turn to the conversation.
func (c *Conversation) AddMessage(role Role, content string) {
	c.Messages = append(c.Messages, Message{Role: role, Content: content})
}

// Len returns the number of messages.
func (c *Conversation) Len() int {
	return len(c.Messages)
}

// ToMessages returns a copy of the message list for persistence.
func (c *Conversation) ToMessages() []Message {
	out := make([]Message, len(c.Messages))
	copy(out, c.Messages)
	return out
}

// String renders the conversation as "Role: content" lines, the form fed to
// the query refinement prompt.
func (c *Conversation) String() string {
	lines := make([]string, 0, len(c.Messages))
	for _, m := range c.Messages {
		lines = append(lines, fmt.Sprintf("%s: %s", m.Role, m.Content))
	}
	return strings.Join(lines, "\n")
}
