package api

import "devfolio/errs"

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	authHandler    authHandler
	profileHandler profileHandler
	projectHandler projectHandler
	productHandler productHandler
	statusHandler  statusHandler
}

// MessageResponse is the uniform error/body shape `{message: ...}`.
type MessageResponse struct {
	Message string `json:"message" example:"Project not found"`
}

// ValidationErrorResponse carries per-field schema violations.
type ValidationErrorResponse struct {
	Message string            `json:"message" example:"Invalid data"`
	Errors  []errs.FieldError `json:"errors"`
}

// SuccessResponse acknowledges a mutation with no payload to return.
type SuccessResponse struct {
	Success bool `json:"success" example:"true"`
}

// AuthCheckResponse reports the session state for the dashboard client.
type AuthCheckResponse struct {
	Authenticated bool `json:"authenticated"`
}

// LoginRequest is the credential pair submitted to /api/auth/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
