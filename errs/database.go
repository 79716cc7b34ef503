package errs

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var (
	ErrAlreadyExists = errors.New("already exists")
	ErrNotFound      = errors.New("not found")
)

func NewAlreadyExists(entity string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusConflict,
		err:        fmt.Errorf("%s %w", entity, ErrAlreadyExists),
	}
}

func NewNotFound(entity string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusNotFound,
		err:        fmt.Errorf("%s %w", entity, ErrNotFound),
	}
}

// NewDatabaseError classifies a persistence-layer fault into an ApiErr. The
// client-facing message stays generic; the cause is attached for logging only.
func NewDatabaseError(operation, entity string, cause error) *ApiErr {
	if cause != nil {
		errStr := cause.Error()
		if strings.Contains(errStr, "duplicate key") || strings.Contains(errStr, "UNIQUE constraint") {
			apiErr := NewAlreadyExists(entity)
			apiErr.Cause = cause
			return apiErr
		}
	}

	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		err:        fmt.Errorf("Failed to %s %s", operation, entity),
		Cause:      cause,
	}
}
