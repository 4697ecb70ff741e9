package pipeline

import (
	"errors"
	"fmt"
)

// ErrorKind categorizes stage failures.
type ErrorKind string

const (
	// KindInput indicates a malformed or missing input to a stage
	// (empty image buffer, empty OCR text). Retrying cannot help.
	KindInput ErrorKind = "input"

	// KindNoText indicates the OCR provider succeeded but found no
	// text. Terminal: there is nothing for the formatter to work on.
	KindNoText ErrorKind = "no_text_found"

	// KindUpstream indicates a failure from the OCR or language-model
	// provider (auth, rate limit, transport, malformed response).
	KindUpstream ErrorKind = "upstream"
)

// Error is a stage failure. Every failure aborts the remaining stages
// and is mapped to exactly one HTTP response at the relay endpoint.
type Error struct {
	Kind    ErrorKind
	Stage   string // "annotate" or "format"
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s %s: %s: %v", e.Stage, e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s %s: %s", e.Stage, e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// NewInputError reports a missing or empty required input.
func NewInputError(stage, message string) *Error {
	return &Error{Kind: KindInput, Stage: stage, Message: message}
}

// NewNoTextError reports OCR success with no detected text.
func NewNoTextError(stage string) *Error {
	return &Error{Kind: KindNoText, Stage: stage, Message: "no text found in image"}
}

// NewUpstreamError wraps a provider failure, keeping its message.
func NewUpstreamError(stage string, err error) *Error {
	return &Error{Kind: KindUpstream, Stage: stage, Message: "provider call failed", Err: err}
}

// KindOf returns the kind of a stage error, or KindUpstream for errors
// that did not originate in a stage (a conservative default: unknown
// failures are treated as provider trouble, not caller mistakes).
func KindOf(err error) ErrorKind {
	var se *Error
	if errors.As(err, &se) {
		return se.Kind
	}
	return KindUpstream
}

// IsInput reports whether err is an input error. Uses errors.As to
// handle wrapped errors.
func IsInput(err error) bool {
	var se *Error
	return errors.As(err, &se) && se.Kind == KindInput
}

// IsNoText reports whether err is a no-text-found error.
func IsNoText(err error) bool {
	var se *Error
	return errors.As(err, &se) && se.Kind == KindNoText
}
