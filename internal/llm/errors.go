package llm

import (
	"errors"
	"fmt"
)

var (
	// ErrUnavailable indicates the provider could not be reached.
	ErrUnavailable = errors.New("llm provider unavailable")

	// ErrTimeout indicates the LLM request exceeded the configured timeout.
	ErrTimeout = errors.New("llm request timed out")

	// ErrStatus indicates the provider answered with a non-2xx status.
	ErrStatus = errors.New("llm provider returned an error status")

	// ErrEmptyResponse indicates the provider answered without any content.
	ErrEmptyResponse = errors.New("llm returned no content")
)

// ErrorKind classifies a failed completion.
type ErrorKind string

const (
	KindTimeout     ErrorKind = "timeout"
	KindUnavailable ErrorKind = "unavailable"
	KindStatus      ErrorKind = "status"
	KindEmpty       ErrorKind = "empty"
)

// Error is returned by Client implementations for every failed call.
// errors.Is matches it against the sentinel for its kind.
type Error struct {
	Kind       ErrorKind
	StatusCode int    // set for KindStatus
	Message    string // provider or transport message
	Err        error
}

func (e *Error) Error() string {
	switch {
	case e.StatusCode != 0:
		return fmt.Sprintf("llm %s (HTTP %d): %s", e.Kind, e.StatusCode, e.Message)
	case e.Message != "":
		return fmt.Sprintf("llm %s: %s", e.Kind, e.Message)
	default:
		return "llm " + string(e.Kind)
	}
}

func (e *Error) Unwrap() []error {
	errs := []error{e.sentinel()}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

func (e *Error) sentinel() error {
	switch e.Kind {
	case KindTimeout:
		return ErrTimeout
	case KindStatus:
		return ErrStatus
	case KindEmpty:
		return ErrEmptyResponse
	default:
		return ErrUnavailable
	}
}

// KindOf returns the kind of err, or "" when err is not an *Error.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}
