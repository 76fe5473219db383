// Package speech converts between audio and text around the chat pipeline.
//
// Transcription stages the upload in a scoped temporary file for the engine
// and always removes it. Synthesis sanitizes the reply for the speech engine
// and picks a voice language from the reply language.
package speech

import "errors"

var (
	ErrTranscription = errors.New("audio transcription failed")
	ErrSynthesis     = errors.New("text-to-speech failed")
	ErrEmptyAudio    = errors.New("speech engine returned no audio")
)
