// Package types provides type definitions for structured data used throughout the franchise-advisor system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// CreateSessionResponse is returned when a new chat session is opened.
type CreateSessionResponse struct {
	SessionID uuid.UUID `json:"session_id"`
	Token     string    `json:"token"`
	Greeting  string    `json:"greeting"`
}

// SendMessageRequest carries one user turn to an existing session.
type SendMessageRequest struct {
	Text string `json:"text" validate:"required,min=1,max=2000"`
}

// SendMessageResponse carries everything the assistant said during one turn.
type SendMessageResponse struct {
	Messages []string `json:"messages"`
	Stage    string   `json:"stage"`
	Done     bool     `json:"done"`
}

// HistoryResponse is the full transcript of a session.
type HistoryResponse struct {
	SessionID uuid.UUID `json:"session_id"`
	Messages  []Message `json:"messages"`
}

// Validate validates the SendMessageRequest using the validator.
func (r *SendMessageRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
