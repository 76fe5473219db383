// Package google transcribes audio with Google Cloud Speech-to-Text.
package google

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	speech "cloud.google.com/go/speech/apiv1"
	"cloud.google.com/go/speech/apiv1/speechpb"
	"github.com/googleapis/gax-go/v2"
)

// Recognizer is the slice of *speech.Client the engine needs.
type Recognizer interface {
	Recognize(ctx context.Context, req *speechpb.RecognizeRequest, opts ...gax.CallOption) (*speechpb.RecognizeResponse, error)
}

type Engine struct {
	client       Recognizer
	primary      string
	alternatives []string
}

// New dials the Speech API using application default credentials.
func New(ctx context.Context) (*Engine, *speech.Client, error) {
	c, err := speech.NewClient(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("google speech: new client: %w", err)
	}
	return NewWithClient(c), c, nil
}

// NewWithClient recognizes Indian English first with Hindi and Marathi as
// alternatives, which is how the API approximates auto detection.
func NewWithClient(c Recognizer) *Engine {
	return &Engine{
		client:       c,
		primary:      "en-IN",
		alternatives: []string{"hi-IN", "mr-IN"},
	}
}

type encoding struct {
	enc  speechpb.RecognitionConfig_AudioEncoding
	rate int32
}

var encodings = map[string]encoding{
	".webm": {speechpb.RecognitionConfig_WEBM_OPUS, 48000},
	".ogg":  {speechpb.RecognitionConfig_OGG_OPUS, 48000},
	".opus": {speechpb.RecognitionConfig_OGG_OPUS, 48000},
	".flac": {speechpb.RecognitionConfig_FLAC, 0},
	".wav":  {speechpb.RecognitionConfig_LINEAR16, 0},
	".mp3":  {speechpb.RecognitionConfig_MP3, 0},
}

func encodingFor(filename string) encoding {
	if e, ok := encodings[strings.ToLower(filepath.Ext(filename))]; ok {
		return e
	}
	return encoding{enc: speechpb.RecognitionConfig_ENCODING_UNSPECIFIED}
}

func (e *Engine) TranscribeFile(ctx context.Context, path, filename string) (string, error) {
	if e.client == nil {
		return "", errors.New("google speech: client is nil")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("google speech: read audio: %w", err)
	}
	if filename == "" {
		filename = path
	}
	enc := encodingFor(filename)

	resp, err := e.client.Recognize(ctx, &speechpb.RecognizeRequest{
		Config: &speechpb.RecognitionConfig{
			Encoding:                   enc.enc,
			SampleRateHertz:            enc.rate,
			LanguageCode:               e.primary,
			AlternativeLanguageCodes:   e.alternatives,
			EnableAutomaticPunctuation: true,
		},
		Audio: &speechpb.RecognitionAudio{
			AudioSource: &speechpb.RecognitionAudio_Content{Content: data},
		},
	})
	if err != nil {
		return "", fmt.Errorf("google speech: recognize: %w", err)
	}

	parts := make([]string, 0, len(resp.GetResults()))
	for _, r := range resp.GetResults() {
		alts := r.GetAlternatives()
		if len(alts) == 0 {
			continue
		}
		if t := strings.TrimSpace(alts[0].GetTranscript()); t != "" {
			parts = append(parts, t)
		}
	}
	return strings.Join(parts, " "), nil
}
