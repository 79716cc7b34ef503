package errs

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrInvalidData is the wire message for schema violations, so it keeps
// the capitalized form clients match on.
var ErrInvalidData = errors.New("Invalid data")

// FieldError describes a single schema violation in a request body.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ApiErr struct {
	StatusCode int
	err        error
	Fields     []FieldError // per-field detail for validation errors
	Cause      error        // the underlying cause, logged but never sent to clients
}

// implements error interface. this allows us to pass an instance of ApiErr as an argument of type `error`
func (e *ApiErr) Error() string {
	return e.err.Error()
}

// GetFullError returns a recursive error message including all causes
func (e *ApiErr) GetFullError() string {
	msg := e.Error()
	if e.Cause != nil {
		if apiErr, ok := e.Cause.(*ApiErr); ok {
			msg = fmt.Sprintf("%s -> %s", msg, apiErr.GetFullError())
		} else {
			msg = fmt.Sprintf("%s -> %s", msg, e.Cause.Error())
		}
	}
	return msg
}

// this function allows us to do the following:
// err := &ApiErr{StatusCode: ..., err: someSentinelError}
// errors.Is(err, someSentinelError) ==> evaluates to true
func (e *ApiErr) Unwrap() error {
	return e.err
}

// Common error constructors with appropriate HTTP status codes
func NewBadRequestError(message string) *ApiErr {
	return &ApiErr{StatusCode: http.StatusBadRequest, err: errors.New(message)}
}

func NewUnauthorizedError(message string) *ApiErr {
	return &ApiErr{StatusCode: http.StatusUnauthorized, err: errors.New(message)}
}

// NewConfigurationError reports missing or unusable server configuration.
// Deliberately opaque: the client learns only that the server is misconfigured.
func NewConfigurationError(cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		err:        errors.New("Server configuration error"),
		Cause:      cause,
	}
}

// NewValidationError carries per-field schema violations for a 400 response.
func NewValidationError(fields []FieldError) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadRequest,
		err:        ErrInvalidData,
		Fields:     fields,
	}
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
