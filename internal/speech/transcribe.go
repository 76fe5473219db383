package speech

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
)

// DefaultExt is used when the upload name carries no extension.
const DefaultExt = ".webm"

// Engine transcribes an audio file in automatic language detection mode.
type Engine interface {
	TranscribeFile(ctx context.Context, path, filename string) (string, error)
}

type Transcriber struct {
	engine Engine
	dir    string
}

// NewTranscriber stages uploads under dir, or the OS temp dir when empty.
func NewTranscriber(engine Engine, dir string) (*Transcriber, error) {
	if engine == nil {
		return nil, errors.New("speech: transcription engine must not be nil")
	}
	return &Transcriber{engine: engine, dir: dir}, nil
}

func (t *Transcriber) Transcribe(ctx context.Context, audio []byte, filename string) (text string, err error) {
	ext := filepath.Ext(filename)
	if ext == "" {
		ext = DefaultExt
	}
	if strings.TrimSpace(filename) == "" {
		filename = "audio" + ext
	}

	f, err := os.CreateTemp(t.dir, "janseva-upload-*"+ext)
	if err != nil {
		return "", fmt.Errorf("%w: create temp file: %w", ErrTranscription, err)
	}
	path := f.Name()
	defer func() {
		if rmErr := os.Remove(path); rmErr != nil && !errors.Is(rmErr, os.ErrNotExist) {
			log.Warn().Err(rmErr).Str("path", path).Msg("failed to remove temp audio file")
		}
	}()

	_, werr := f.Write(audio)
	cerr := f.Close()
	if werr != nil {
		return "", fmt.Errorf("%w: write temp file: %w", ErrTranscription, werr)
	}
	if cerr != nil {
		return "", fmt.Errorf("%w: close temp file: %w", ErrTranscription, cerr)
	}

	raw, err := t.engine.TranscribeFile(ctx, path, filename)
	if err != nil {
		log.Error().Err(err).Str("filename", filename).Int("bytes", len(audio)).Msg("transcription error")
		return "", fmt.Errorf("%w: %w", ErrTranscription, err)
	}
	return strings.TrimSpace(raw), nil
}
