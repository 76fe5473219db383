// Package gtts renders MP3 speech through the Google Translate TTS endpoint.
package gtts

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	DefaultBaseURL = "https://translate.google.com/translate_tts"

	// The endpoint rejects long queries; keep each request short.
	maxChunkRunes = 100
	maxAudioBytes = 8 << 20
)

type Engine struct {
	BaseURL   string
	UserAgent string
	Client    *http.Client
}

func New(baseURL string, timeout time.Duration) *Engine {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Engine{
		BaseURL:   baseURL,
		UserAgent: "Mozilla/5.0 (X11; Linux x86_64) janseva-assistant",
		Client:    &http.Client{Timeout: timeout},
	}
}

// Synthesize fetches each chunk in order and concatenates the MP3 frames.
func (e *Engine) Synthesize(ctx context.Context, text, voiceLang string) ([]byte, error) {
	chunks := Chunk(text, maxChunkRunes)
	if len(chunks) == 0 {
		return nil, errors.New("gtts: empty text")
	}

	var out bytes.Buffer
	for i, c := range chunks {
		b, err := e.fetch(ctx, c, voiceLang, i, len(chunks))
		if err != nil {
			return nil, fmt.Errorf("gtts: chunk %d/%d: %w", i+1, len(chunks), err)
		}
		out.Write(b)
	}
	return out.Bytes(), nil
}

func (e *Engine) fetch(ctx context.Context, chunk, voiceLang string, idx, total int) ([]byte, error) {
	q := url.Values{}
	q.Set("ie", "UTF-8")
	q.Set("client", "tw-ob")
	q.Set("tl", voiceLang)
	q.Set("q", chunk)
	q.Set("idx", strconv.Itoa(idx))
	q.Set("total", strconv.Itoa(total))
	q.Set("textlen", strconv.Itoa(utf8.RuneCountInString(chunk)))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, e.BaseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", e.UserAgent)
	req.Header.Set("Referer", "https://translate.google.com/")

	resp, err := e.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("status %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}
	return io.ReadAll(io.LimitReader(resp.Body, maxAudioBytes))
}

// Chunk splits text on whitespace into pieces of at most limit runes.
// Words longer than limit are cut.
func Chunk(text string, limit int) []string {
	var (
		chunks []string
		cur    strings.Builder
		n      int
	)
	flush := func() {
		if n > 0 {
			chunks = append(chunks, cur.String())
			cur.Reset()
			n = 0
		}
	}
	for _, w := range strings.Fields(text) {
		wr := []rune(w)
		for len(wr) > limit {
			flush()
			chunks = append(chunks, string(wr[:limit]))
			wr = wr[limit:]
		}
		need := len(wr)
		if n > 0 {
			need++
		}
		if n+need > limit {
			flush()
			need = len(wr)
		}
		if n > 0 {
			cur.WriteByte(' ')
		}
		cur.WriteString(string(wr))
		n += need
	}
	flush()
	return chunks
}
