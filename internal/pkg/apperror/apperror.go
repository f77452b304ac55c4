package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Error is an error that knows how it is shown to API clients. Optional fields
// are only rendered when set.
type Error struct {
	Status   int
	Message  string
	Details  interface{}
	Hint     string
	Required []string
	Action   string
	Err      error

	relay bool
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("api error (%d)", e.Status)
}

func (e *Error) Unwrap() error { return e.Err }

// Cause is the client facing text of Err. Relayed upstream answers show only
// their details.
func (e *Error) Cause() string {
	if e.Err == nil || e.relay {
		return ""
	}
	return e.Err.Error()
}

func New(status int, message string, err error) *Error {
	return &Error{Status: status, Message: message, Err: err}
}

func Validation(message string) *Error {
	return &Error{Status: http.StatusBadRequest, Message: message}
}

func InsufficientSignal(message, hint string) *Error {
	return &Error{Status: http.StatusBadRequest, Message: message, Hint: hint}
}

func Config(message string, required ...string) *Error {
	return &Error{Status: http.StatusInternalServerError, Message: message, Required: required}
}

func Unauthorized(message, action string) *Error {
	return &Error{Status: http.StatusUnauthorized, Message: message, Action: action}
}

// Upstream relays a failed third-party call with the given status.
func Upstream(status int, message string, details interface{}, err error) *Error {
	return &Error{Status: status, Message: message, Details: details, Err: err, relay: true}
}

// Provider reports a failed embedding call as 502 with the cause and the
// provider's answer.
func Provider(message string, details interface{}, err error) *Error {
	return &Error{Status: http.StatusBadGateway, Message: message, Details: details, Err: err}
}

func Internal(message string, err error) *Error {
	return &Error{Status: http.StatusInternalServerError, Message: message, Err: err}
}

// As extracts an *Error from err's chain.
func As(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}
