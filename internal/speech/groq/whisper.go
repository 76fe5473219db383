// Package groq transcribes audio through Groq's hosted Whisper endpoint.
package groq

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/janseva/assistant/internal/ai"
)

const (
	DefaultBaseURL = "https://api.groq.com/openai/v1"
	DefaultModel   = "whisper-large-v3-turbo"
)

type Whisper struct {
	BaseURL string
	APIKey  string
	Model   string
	Client  *http.Client
}

func NewWhisper(baseURL, apiKey, model string, timeout time.Duration) *Whisper {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if model == "" {
		model = DefaultModel
	}
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &Whisper{
		BaseURL: strings.TrimRight(baseURL, "/"),
		APIKey:  apiKey,
		Model:   model,
		Client:  &http.Client{Timeout: timeout},
	}
}

// TranscribeFile uploads the file as multipart form data. The language is
// left unset so Whisper detects it.
func (w *Whisper) TranscribeFile(ctx context.Context, path, filename string) (string, error) {
	if strings.TrimSpace(w.APIKey) == "" {
		return "", errors.New("groq whisper: api key is required")
	}
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("groq whisper: open audio: %w", err)
	}
	defer f.Close()

	if filename == "" {
		filename = filepath.Base(path)
	}

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return "", fmt.Errorf("groq whisper: form file: %w", err)
	}
	if _, err := io.Copy(part, f); err != nil {
		return "", fmt.Errorf("groq whisper: copy audio: %w", err)
	}
	_ = mw.WriteField("model", w.Model)
	_ = mw.WriteField("response_format", "text")
	if err := mw.Close(); err != nil {
		return "", fmt.Errorf("groq whisper: close form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.BaseURL+"/audio/transcriptions", &body)
	if err != nil {
		return "", fmt.Errorf("groq whisper: build request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+w.APIKey)

	resp, err := w.Client.Do(req)
	if err != nil {
		return "", fmt.Errorf("groq whisper: do request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("groq whisper: read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &ai.StatusError{Provider: "groq-whisper", StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(raw))}
	}
	return strings.TrimSpace(string(raw)), nil
}
