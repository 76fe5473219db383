// Package translit converts romanized Hindi and Marathi into Devanagari
// before the text reaches the generation model.
package translit

import (
	"github.com/janseva/assistant/internal/lang"
	"github.com/rs/zerolog/log"
)

// Transliterator maps text from one script to another.
type Transliterator interface {
	Transliterate(text string) (string, error)
}

// Normalizer applies a Transliterator to romanized native-script input.
// It never fails: any problem degrades to returning the original text.
type Normalizer struct {
	t Transliterator
}

func NewNormalizer(t Transliterator) *Normalizer {
	if t == nil {
		t = HarvardKyoto{}
	}
	return &Normalizer{t: t}
}

// Normalize returns text in native script when code is written in Devanagari
// and text is romanized. Otherwise text is returned unchanged.
func (n *Normalizer) Normalize(text string, code lang.Code) string {
	if !code.NativeScript() || lang.HasDevanagari(text) {
		return text
	}
	return n.transliterateOrOriginal(text)
}

func (n *Normalizer) transliterateOrOriginal(text string) (out string) {
	defer func() {
		if r := recover(); r != nil {
			log.Debug().Interface("panic", r).Msg("transliteration panicked, using original text")
			out = text
		}
	}()

	converted, err := n.t.Transliterate(text)
	if err != nil {
		log.Debug().Err(err).Msg("transliteration failed, using original text")
		return text
	}
	if converted == text || converted == "" {
		return text
	}
	return converted
}
