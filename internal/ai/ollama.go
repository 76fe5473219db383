package ai

import (
	"context"
	"errors"
	"net/http"
	"time"
)

const (
	DefaultOllamaBaseURL = "http://localhost:11434"
	DefaultOllamaModel   = "llama3:latest"
)

// OllamaProvider serves generation from a self-hosted Ollama instance.
type OllamaProvider struct {
	BaseURL string
	Model   string
	Opts    Options
	Client  *http.Client
}

type ollamaChatReq struct {
	Model    string        `json:"model"`
	Messages []Message     `json:"messages"`
	Stream   bool          `json:"stream"`
	Options  ollamaOptions `json:"options"`
}

type ollamaOptions struct {
	Temperature float64 `json:"temperature"`
	NumPredict  int     `json:"num_predict,omitempty"`
}

type ollamaChatResp struct {
	Message Message `json:"message"`
	Error   string  `json:"error,omitempty"`
}

func NewOllamaProvider(baseURL, model string, opts Options, timeout time.Duration) *OllamaProvider {
	if baseURL == "" {
		baseURL = DefaultOllamaBaseURL
	}
	if model == "" {
		model = DefaultOllamaModel
	}
	if timeout <= 0 {
		timeout = 90 * time.Second
	}
	return &OllamaProvider{
		BaseURL: baseURL,
		Model:   model,
		Opts:    opts,
		Client:  &http.Client{Timeout: timeout},
	}
}

func (p *OllamaProvider) Chat(ctx context.Context, messages []Message) (string, error) {
	var decoded ollamaChatResp
	err := postJSON(ctx, p.Client, "ollama", endpoint(p.BaseURL, "/api/chat"), nil,
		ollamaChatReq{
			Model:    p.Model,
			Messages: messages,
			Options: ollamaOptions{
				Temperature: p.Opts.Temperature,
				NumPredict:  p.Opts.MaxTokens,
			},
		}, &decoded)
	if err != nil {
		return "", err
	}
	if decoded.Error != "" {
		return "", errors.New("ollama: " + decoded.Error)
	}
	return decoded.Message.Content, nil
}
