// Package chat holds conversation histories keyed by conversation id.
package chat

import (
	"context"
	"errors"
)

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

var ErrNotFound = errors.New("conversation not found")

// Message is one entry of a conversation history.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Store is an append-only history per conversation id. A conversation exists
// from its first Append until Delete or Reset.
type Store interface {
	Append(ctx context.Context, id, role, content string) error
	Get(ctx context.Context, id string) ([]Message, error)
	Delete(ctx context.Context, id string) error
	Reset(ctx context.Context) error
}
