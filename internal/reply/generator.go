// Package reply produces a single scheme-assistant answer in one language.
package reply

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/janseva/assistant/internal/ai"
	"github.com/janseva/assistant/internal/lang"
)

var (
	ErrGeneration = errors.New("generation failed")
	ErrEmptyReply = errors.New("provider returned an empty reply")
)

const (
	DefaultTemperature = 0.3
	DefaultMaxTokens   = 800
)

// Error wraps the upstream cause of a failed generation.
type Error struct {
	Provider string
	Err      error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s (%s): %v", ErrGeneration, e.Provider, e.Err)
}

func (e *Error) Unwrap() []error { return []error{ErrGeneration, e.Err} }

type Generator struct {
	registry *ai.Registry
	provider string
	model    string
}

func NewGenerator(registry *ai.Registry, provider, model string) (*Generator, error) {
	if registry == nil {
		return nil, errors.New("reply: provider registry must not be nil")
	}
	provider = strings.TrimSpace(provider)
	if provider == "" {
		return nil, errors.New("reply: provider name must not be empty")
	}
	return &Generator{registry: registry, provider: provider, model: model}, nil
}

// Generate answers userText in the target language. The reply is trimmed.
func (g *Generator) Generate(ctx context.Context, userText string, code lang.Code) (string, error) {
	p, err := g.registry.Get(ctx, g.provider, g.model)
	if err != nil {
		return "", &Error{Provider: g.provider, Err: err}
	}

	raw, err := p.Chat(ctx, []ai.Message{
		{Role: ai.RoleSystem, Content: SystemPrompt(code)},
		{Role: ai.RoleUser, Content: userText},
	})
	if err != nil {
		log.Error().Err(err).Str("provider", g.provider).Str("lang", code.String()).Msg("generation failed")
		return "", &Error{Provider: g.provider, Err: err}
	}

	reply := strings.TrimSpace(raw)
	if reply == "" {
		return "", &Error{Provider: g.provider, Err: ErrEmptyReply}
	}
	return reply, nil
}
