package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"devfolio/errs"

	"github.com/rs/zerolog"
)

type Responder struct {
	logger zerolog.Logger
}

func NewResponder(logger zerolog.Logger) Responder {
	return Responder{logger}
}

// WriteJSON writes data with the given status code. Marshal failures are
// logged and degrade to a bare 500.
func (r Responder) WriteJSON(w http.ResponseWriter, status int, data any) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		r.logger.Error().Err(err).Msg("error marshaling response data")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if _, err := w.Write(jsonData); err != nil {
		r.logger.Error().Err(err).Msg("error writing response")
	}
}

// WriteError translates err into an HTTP response. Expected errors carry
// their own status code; anything else is logged and reported as an opaque
// 500. Causes are logged server-side and never leak into the body.
func (r Responder) WriteError(w http.ResponseWriter, err error) {
	var apiErr *errs.ApiErr
	if !errors.As(err, &apiErr) {
		r.logger.Error().Msg(err.Error())
		r.WriteJSON(w, http.StatusInternalServerError, MessageResponse{
			Message: "Internal Server Error",
		})
		return
	}

	if apiErr.Cause != nil {
		r.logger.Error().
			Int("status", apiErr.StatusCode).
			Msg(apiErr.GetFullError())
	}

	if len(apiErr.Fields) > 0 {
		r.WriteJSON(w, apiErr.StatusCode, ValidationErrorResponse{
			Message: apiErr.Error(),
			Errors:  apiErr.Fields,
		})
		return
	}

	r.WriteJSON(w, apiErr.StatusCode, MessageResponse{Message: apiErr.Error()})
}

// wrapDatabaseError wraps a database error with context information
func wrapDatabaseError(operation, entity string, cause error) error {
	return errs.NewDatabaseError(operation, entity, cause)
}
