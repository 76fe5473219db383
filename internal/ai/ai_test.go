package ai

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestGroqProvider_Chat(t *testing.T) {
	var got groqChatReq
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/openai/v1/chat/completions", r.URL.Path)
		require.Equal(t, "Bearer gsk-test", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":" hello "}}]}`))
	}))
	defer srv.Close()

	p := NewGroqProvider(srv.URL+"/openai/v1/", "gsk-test", "", Options{Temperature: 0.3, MaxTokens: 800}, time.Second)
	reply, err := p.Chat(context.Background(), []Message{{Role: RoleUser, Content: "hi"}})
	require.NoError(t, err)
	require.Equal(t, " hello ", reply)
	require.Equal(t, DefaultGroqModel, got.Model)
	require.Equal(t, 800, got.MaxTokens)
	require.InDelta(t, 0.3, got.Temperature, 1e-9)
	require.False(t, got.Stream)
}

func TestGroqProvider_StatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte("rate limited"))
	}))
	defer srv.Close()

	p := NewGroqProvider(srv.URL, "gsk-test", "m", Options{}, time.Second)
	_, err := p.Chat(context.Background(), nil)
	var se *StatusError
	require.True(t, errors.As(err, &se))
	require.Equal(t, http.StatusTooManyRequests, se.HTTPStatusCode())
	require.Contains(t, err.Error(), "rate limited")
}

func TestGroqProvider_RequiresKey(t *testing.T) {
	p := NewGroqProvider("", " ", "", Options{}, 0)
	_, err := p.Chat(context.Background(), nil)
	require.ErrorContains(t, err, "api key")
}

func TestGroqProvider_EmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	defer srv.Close()

	_, err := NewGroqProvider(srv.URL, "k", "", Options{}, time.Second).Chat(context.Background(), nil)
	require.ErrorContains(t, err, "empty response")
}

func TestOllamaProvider_Chat(t *testing.T) {
	var got ollamaChatReq
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/chat", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"message":{"role":"assistant","content":"namaskar"}}`))
	}))
	defer srv.Close()

	p := NewOllamaProvider(srv.URL, "", Options{Temperature: 0.3, MaxTokens: 800}, time.Second)
	reply, err := p.Chat(context.Background(), []Message{{Role: RoleUser, Content: "hi"}})
	require.NoError(t, err)
	require.Equal(t, "namaskar", reply)
	require.Equal(t, DefaultOllamaModel, got.Model)
	require.Equal(t, 800, got.Options.NumPredict)
}

func TestOllamaProvider_ErrorField(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"error":"model not found"}`))
	}))
	defer srv.Close()

	_, err := NewOllamaProvider(srv.URL, "x", Options{}, time.Second).Chat(context.Background(), nil)
	require.ErrorContains(t, err, "model not found")
}

type staticProvider string

func (s staticProvider) Chat(context.Context, []Message) (string, error) { return string(s), nil }

func TestRegistry(t *testing.T) {
	reg := NewRegistry()
	reg.Register(" Groq ", func(ctx context.Context, model string) (Provider, error) {
		return staticProvider(model), nil
	})
	reg.Register("ollama", func(ctx context.Context, model string) (Provider, error) {
		return staticProvider("local"), nil
	})

	p, err := reg.Get(context.Background(), "GROQ", "llama")
	require.NoError(t, err)
	reply, _ := p.Chat(context.Background(), nil)
	require.Equal(t, "llama", reply)

	_, err = reg.Get(context.Background(), "openai", "")
	require.ErrorIs(t, err, ErrUnknownProvider)
	require.Equal(t, []string{"groq", "ollama"}, reg.Names())
}

func TestPostJSON_NilClient(t *testing.T) {
	p := &OllamaProvider{BaseURL: "http://unused"}
	_, err := p.Chat(context.Background(), nil)
	require.ErrorContains(t, err, "http client is nil")
}
