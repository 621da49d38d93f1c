// Package types provides type definitions for structured data used throughout the franchise-advisor system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Role identifies the author of a conversation message.
type Role string

// Role values
const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is a single conversation entry.
type Message struct {
	Role Role   `json:"role"`
	Text string `json:"text"`
}

// History is the append-only transcript of one conversation. Entries are
// never mutated or removed.
type History []Message

// Append returns the history with one more message added.
func (h History) Append(role Role, text string) History {
	return append(h, Message{Role: role, Text: text})
}
