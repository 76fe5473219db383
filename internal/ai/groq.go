package ai

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

const (
	DefaultGroqBaseURL = "https://api.groq.com/openai/v1"
	DefaultGroqModel   = "llama-3.3-70b-versatile"
)

// GroqProvider talks to Groq's OpenAI-compatible chat completions endpoint.
type GroqProvider struct {
	BaseURL string
	APIKey  string
	Model   string
	Opts    Options
	Client  *http.Client
}

type groqChatReq struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Temperature float64   `json:"temperature"`
	MaxTokens   int       `json:"max_tokens,omitempty"`
	Stream      bool      `json:"stream"`
}

type groqChatResp struct {
	Choices []struct {
		Message Message `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

func NewGroqProvider(baseURL, apiKey, model string, opts Options, timeout time.Duration) *GroqProvider {
	if baseURL == "" {
		baseURL = DefaultGroqBaseURL
	}
	if model == "" {
		model = DefaultGroqModel
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &GroqProvider{
		BaseURL: baseURL,
		APIKey:  apiKey,
		Model:   model,
		Opts:    opts,
		Client:  &http.Client{Timeout: timeout},
	}
}

func (p *GroqProvider) Chat(ctx context.Context, messages []Message) (string, error) {
	if strings.TrimSpace(p.APIKey) == "" {
		return "", errors.New("groq: api key is required")
	}

	var decoded groqChatResp
	err := postJSON(ctx, p.Client, "groq", endpoint(p.BaseURL, "/chat/completions"),
		http.Header{"Authorization": {"Bearer " + p.APIKey}},
		groqChatReq{
			Model:       p.Model,
			Messages:    messages,
			Temperature: p.Opts.Temperature,
			MaxTokens:   p.Opts.MaxTokens,
		}, &decoded)
	if err != nil {
		return "", err
	}
	if decoded.Error != nil && decoded.Error.Message != "" {
		return "", errors.New("groq: " + decoded.Error.Message)
	}
	if len(decoded.Choices) == 0 {
		return "", fmt.Errorf("groq: %w", errEmptyResponse)
	}
	return decoded.Choices[0].Message.Content, nil
}
