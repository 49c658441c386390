package stgen

import "errors"

type Error struct {
	Type    ErrorType
	Message string
	Base    error
}

func (e Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Base != nil {
		return e.Base.Error()
	}
	return "stgen - no error message"
}

func (e Error) Unwrap() error { return e.Base }

//go:generate stringer --type=ErrorType --output=errors_string.go
type ErrorType byte

const (
	ErrUnknown ErrorType = iota
	// ErrContract marks a degenerate rate/window combination that violated
	// the sampler's buffer size contract. Caller-side misuse, never retried.
	ErrContract
)

func newSimpleError(t ErrorType, msg string) error {
	return Error{Type: t, Message: msg}
}

// TypeOf returns the ErrorType of err, or ErrUnknown for foreign errors.
func TypeOf(err error) ErrorType {
	var e Error
	if errors.As(err, &e) {
		return e.Type
	}
	return ErrUnknown
}
