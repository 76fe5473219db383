package handlers

import (
	"context"
	"time"

	"github.com/janseva/assistant/internal/assistant"
	"github.com/janseva/assistant/internal/chat"
)

// Assistant is what the HTTP layer needs from the orchestrator.
type Assistant interface {
	Chat(ctx context.Context, in assistant.ChatInput) (*assistant.ChatOutput, error)
	VoiceChat(ctx context.Context, in assistant.VoiceInput) (*assistant.VoiceOutput, error)
	History(ctx context.Context, id string) ([]chat.Message, error)
	DeleteConversation(ctx context.Context, id string) error
	Audio(ctx context.Context, id string) ([]byte, error)
}

type Handler struct {
	Svc Assistant
	// MaxUploadBytes caps voice uploads.
	MaxUploadBytes int64
	Now            func() time.Time
}

const defaultMaxUploadBytes = 25 << 20

func NewHandler(svc Assistant) *Handler {
	return &Handler{Svc: svc, MaxUploadBytes: defaultMaxUploadBytes, Now: time.Now}
}

func unixSeconds(t time.Time) float64 {
	return float64(t.UnixNano()) / float64(time.Second)
}
