// Package events describes what the assistant announces after each turn.
package events

import (
	"context"
	"time"
)

type Channel string

const (
	ChannelText  Channel = "text"
	ChannelVoice Channel = "voice"
)

// TurnEvent is emitted once a user/assistant pair has been stored.
type TurnEvent struct {
	ConversationID string    `json:"conversation_id"`
	Channel        Channel   `json:"channel"`
	Language       string    `json:"language"`
	Audio          bool      `json:"audio"`
	At             time.Time `json:"at"`
}

type Publisher interface {
	PublishTurn(ctx context.Context, ev TurnEvent) error
	Close() error
}

// Nop drops every event.
type Nop struct{}

func (Nop) PublishTurn(context.Context, TurnEvent) error { return nil }
func (Nop) Close() error                                 { return nil }
