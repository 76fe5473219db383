package speech

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/rs/zerolog/log"

	"github.com/janseva/assistant/internal/lang"
)

// SpeechEngine renders text to audio bytes in the given voice language.
type SpeechEngine interface {
	Synthesize(ctx context.Context, text, voiceLang string) ([]byte, error)
}

var voiceLanguages = map[lang.Code]string{
	lang.English: "en",
	lang.Hindi:   "hi",
	lang.Marathi: "mr",
}

var currencyWords = map[lang.Code]string{
	lang.English: "rupees ",
	lang.Hindi:   "रुपये ",
	lang.Marathi: "रुपये ",
}

var bulletReplacer = strings.NewReplacer("•", " ", "●", " ", "▪", " ", "–", " ", "—", " ")

// VoiceLanguage maps a reply language to the engine's voice code.
func VoiceLanguage(code lang.Code) string {
	if v, ok := voiceLanguages[code]; ok {
		return v
	}
	return voiceLanguages[lang.English]
}

// Sanitize strips what speech engines read out badly or reject.
func Sanitize(text string, code lang.Code) string {
	word, ok := currencyWords[code]
	if !ok {
		word = currencyWords[lang.English]
	}
	text = strings.ReplaceAll(text, "₹", word)
	text = bulletReplacer.Replace(text)
	text = strings.Map(func(r rune) rune {
		switch {
		case unicode.IsLetter(r), unicode.IsMark(r), unicode.IsDigit(r), unicode.IsNumber(r):
			return r
		case r == '_', r == '.', r == ',', unicode.IsSpace(r):
			return r
		}
		return ' '
	}, text)
	return strings.Join(strings.Fields(text), " ")
}

type Synthesizer struct {
	engine SpeechEngine
}

func NewSynthesizer(engine SpeechEngine) (*Synthesizer, error) {
	if engine == nil {
		return nil, errors.New("speech: synthesis engine must not be nil")
	}
	return &Synthesizer{engine: engine}, nil
}

func (s *Synthesizer) Synthesize(ctx context.Context, text string, code lang.Code) ([]byte, error) {
	clean := Sanitize(text, code)
	if clean == "" {
		return nil, fmt.Errorf("%w: nothing to speak after sanitizing", ErrSynthesis)
	}

	voice := VoiceLanguage(code)
	audio, err := s.engine.Synthesize(ctx, clean, voice)
	if err != nil {
		log.Error().Err(err).Str("voice", voice).Msg("tts error")
		return nil, fmt.Errorf("%w: %w", ErrSynthesis, err)
	}
	if len(audio) == 0 {
		return nil, fmt.Errorf("%w: %w", ErrSynthesis, ErrEmptyAudio)
	}
	return audio, nil
}
