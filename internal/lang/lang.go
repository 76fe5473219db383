// Package lang resolves the reply language of a request.
//
// Detection is heuristic: explicit overrides always win, Devanagari text is
// Hindi unless a Marathi marker is present, and romanized text is matched
// against small marker lists before defaulting to English.
package lang

import "strings"

type Code string

const (
	English Code = "en"
	Hindi   Code = "hi"
	Marathi Code = "mr"
)

// All lists the supported codes in display order.
var All = []Code{English, Hindi, Marathi}

type profile struct {
	name           string
	nativeMarkers  []string
	romanMarkers   []string
	requiresNative bool
}

// profiles drives detection, normalization and speech per code.
var profiles = map[Code]profile{
	English: {
		name: "English",
	},
	Hindi: {
		name:           "Hindi (हिंदी)",
		romanMarkers:   []string{"kya", "kaise", "liye", "yojana"},
		requiresNative: true,
	},
	Marathi: {
		name:           "Marathi (मराठी)",
		nativeMarkers:  []string{"आहे", "काय", "साठी", "मिळते"},
		romanMarkers:   []string{"aahe", "kay", "sathi", "milte"},
		requiresNative: true,
	},
}

// Parse validates a caller-supplied code.
func Parse(s string) (Code, bool) {
	c := Code(strings.ToLower(strings.TrimSpace(s)))
	_, ok := profiles[c]
	return c, ok
}

func (c Code) String() string { return string(c) }

// Valid reports whether c is a supported code.
func (c Code) Valid() bool {
	_, ok := profiles[c]
	return ok
}

// Name is the human readable language name.
func (c Code) Name() string {
	if p, ok := profiles[c]; ok {
		return p.name
	}
	return profiles[English].name
}

// NativeScript reports whether replies in c are written in Devanagari.
func (c Code) NativeScript() bool {
	return profiles[c].requiresNative
}

// Names maps every code to its display name.
func Names() map[string]string {
	out := make(map[string]string, len(All))
	for _, c := range All {
		out[string(c)] = c.Name()
	}
	return out
}

// Detect returns preferred when it is a valid code, otherwise classifies text.
func Detect(text, preferred string) Code {
	if c, ok := Parse(preferred); ok {
		return c
	}

	if HasDevanagari(text) {
		if containsAny(text, profiles[Marathi].nativeMarkers) {
			return Marathi
		}
		return Hindi
	}

	lower := strings.ToLower(text)
	if containsAny(lower, profiles[Marathi].romanMarkers) {
		return Marathi
	}
	if containsAny(lower, profiles[Hindi].romanMarkers) {
		return Hindi
	}
	return English
}

// HasDevanagari reports whether text has any rune in U+0900..U+097F.
func HasDevanagari(text string) bool {
	for _, r := range text {
		if r >= 0x0900 && r <= 0x097F {
			return true
		}
	}
	return false
}

func containsAny(text string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(text, m) {
			return true
		}
	}
	return false
}
