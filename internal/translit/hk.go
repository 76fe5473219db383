package translit

import (
	"errors"
	"strings"
	"unicode/utf8"
)

var ErrInvalidUTF8 = errors.New("translit: input is not valid utf-8")

const virama = "्"

type vowel struct {
	independent string
	sign        string
}

var hkVowels = map[string]vowel{
	"a":   {"अ", ""},
	"A":   {"आ", "ा"},
	"i":   {"इ", "ि"},
	"I":   {"ई", "ी"},
	"u":   {"उ", "ु"},
	"U":   {"ऊ", "ू"},
	"R":   {"ऋ", "ृ"},
	"RR":  {"ॠ", "ॄ"},
	"lR":  {"ऌ", "ॢ"},
	"lRR": {"ॡ", "ॣ"},
	"e":   {"ए", "े"},
	"ai":  {"ऐ", "ै"},
	"o":   {"ओ", "ो"},
	"au":  {"औ", "ौ"},
}

var hkConsonants = map[string]string{
	"k": "क", "kh": "ख", "g": "ग", "gh": "घ", "G": "ङ",
	"c": "च", "ch": "छ", "j": "ज", "jh": "झ", "J": "ञ",
	"T": "ट", "Th": "ठ", "D": "ड", "Dh": "ढ", "N": "ण",
	"t": "त", "th": "थ", "d": "द", "dh": "ध", "n": "न",
	"p": "प", "ph": "फ", "b": "ब", "bh": "भ", "m": "म",
	"y": "य", "r": "र", "l": "ल", "v": "व", "L": "ळ",
	"z": "श", "S": "ष", "s": "स", "h": "ह",
}

var hkMarks = map[string]string{
	"M":  "ं",
	"H":  "ः",
	"~":  "ँ",
	"'":  "ऽ",
	"|":  "।",
	"||": "॥",
	"OM": "ॐ",
	"0":  "०", "1": "१", "2": "२", "3": "३", "4": "४",
	"5": "५", "6": "६", "7": "७", "8": "८", "9": "९",
}

const maxTokenLen = 3

// HarvardKyoto maps Harvard-Kyoto romanization to Devanagari.
type HarvardKyoto struct{}

func (HarvardKyoto) Transliterate(text string) (string, error) {
	if !utf8.ValidString(text) {
		return "", ErrInvalidUTF8
	}

	var b strings.Builder
	b.Grow(len(text) * 3)

	pending := false
	for i := 0; i < len(text); {
		tok, kind := nextToken(text[i:])
		if kind == tokenNone {
			if pending {
				b.WriteString(virama)
				pending = false
			}
			_, size := utf8.DecodeRuneInString(text[i:])
			b.WriteString(text[i : i+size])
			i += size
			continue
		}
		i += len(tok)

		switch kind {
		case tokenVowel:
			v := hkVowels[tok]
			if pending {
				b.WriteString(v.sign)
			} else {
				b.WriteString(v.independent)
			}
			pending = false
		case tokenConsonant:
			if pending {
				b.WriteString(virama)
			}
			b.WriteString(hkConsonants[tok])
			pending = true
		case tokenMark:
			if pending {
				b.WriteString(virama)
				pending = false
			}
			b.WriteString(hkMarks[tok])
		}
	}
	if pending {
		b.WriteString(virama)
	}
	return b.String(), nil
}

type tokenKind int

const (
	tokenNone tokenKind = iota
	tokenVowel
	tokenConsonant
	tokenMark
)

// nextToken returns the longest HK token at the start of s.
func nextToken(s string) (string, tokenKind) {
	for n := maxTokenLen; n > 0; n-- {
		if n > len(s) {
			continue
		}
		tok := s[:n]
		if _, ok := hkVowels[tok]; ok {
			return tok, tokenVowel
		}
		if _, ok := hkConsonants[tok]; ok {
			return tok, tokenConsonant
		}
		if _, ok := hkMarks[tok]; ok {
			return tok, tokenMark
		}
	}
	return "", tokenNone
}
