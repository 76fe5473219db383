package assistant

import (
	"errors"
	"fmt"
)

type ErrorKind string

const (
	KindValidation    ErrorKind = "validation"
	KindGeneration    ErrorKind = "generation"
	KindTranscription ErrorKind = "transcription"
	KindSynthesis     ErrorKind = "synthesis"
	KindNotFound      ErrorKind = "not_found"
	KindInternal      ErrorKind = "internal"
)

type Error struct {
	Kind   ErrorKind
	Reason string
	Err    error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err == nil {
		return fmt.Sprintf("assistant: %s (%s)", e.Kind, e.Reason)
	}
	return fmt.Sprintf("assistant: %s (%s): %v", e.Kind, e.Reason, e.Err)
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Detail is the message shown to API callers.
func (e *Error) Detail() string {
	if e.Err == nil {
		return e.Reason
	}
	return e.Err.Error()
}

func newError(kind ErrorKind, reason string, err error) *Error {
	return &Error{Kind: kind, Reason: reason, Err: err}
}

// KindOf reports the kind of err, or KindInternal for foreign errors.
func KindOf(err error) ErrorKind {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return KindInternal
}
