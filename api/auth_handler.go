package api

import (
	"crypto/subtle"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"devfolio/errs"
	"devfolio/session"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type authHandler struct {
	responder     Responder
	logger        zerolog.Logger
	sessions      *session.Store
	adminUsername string
	adminPassword string
}

func newAuthHandler(sessions *session.Store, adminUsername, adminPassword string) authHandler {
	logger := log.With().Str("handlerName", "authHandler").Logger()

	return authHandler{
		responder:     NewResponder(logger),
		logger:        logger,
		sessions:      sessions,
		adminUsername: adminUsername,
		adminPassword: adminPassword,
	}
}

// login checks the submitted credentials against the configured admin pair.
// @Summary Log in
// @Description Starts an authenticated admin session on exact credential match
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Admin credentials"
// @Success 200 {object} SuccessResponse "Session started"
// @Failure 401 {object} MessageResponse "Invalid credentials"
// @Failure 500 {object} MessageResponse "Admin credentials not configured"
// @Router /api/auth/login [post]
func (h authHandler) login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Refusing to compare against empty secrets keeps an unconfigured
		// deployment from accepting an implicit default.
		if h.adminUsername == "" || h.adminPassword == "" {
			h.responder.WriteError(w, errs.NewConfigurationError(
				errors.New("ADMIN_USERNAME and ADMIN_PASSWORD must be set")))
			return
		}

		// An empty body counts as empty credentials, so it falls through to the
		// comparison below rather than a decode failure.
		var creds LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&creds); err != nil && !errors.Is(err, io.EOF) {
			h.logger.Error().Err(err).Msg("Failed to decode login request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		usernameMatch := subtle.ConstantTimeCompare([]byte(creds.Username), []byte(h.adminUsername))
		passwordMatch := subtle.ConstantTimeCompare([]byte(creds.Password), []byte(h.adminPassword))
		// Single failure message regardless of which field mismatched.
		if usernameMatch&passwordMatch != 1 {
			h.responder.WriteError(w, errs.NewUnauthorizedError("Invalid credentials"))
			return
		}

		h.sessions.Issue(w)
		h.responder.WriteJSON(w, http.StatusOK, SuccessResponse{Success: true})
	}
}

// logout destroys the current session unconditionally.
// @Summary Log out
// @Tags Auth
// @Produce json
// @Success 200 {object} SuccessResponse "Session destroyed"
// @Router /api/auth/logout [post]
func (h authHandler) logout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.sessions.Destroy(w, r)
		h.responder.WriteJSON(w, http.StatusOK, SuccessResponse{Success: true})
	}
}

// check reports whether the caller holds an authenticated session.
// @Summary Check session
// @Tags Auth
// @Produce json
// @Success 200 {object} AuthCheckResponse "Authenticated"
// @Failure 401 {object} AuthCheckResponse "Not authenticated"
// @Router /api/auth/check [get]
func (h authHandler) check() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if h.sessions.Authenticated(r) {
			h.responder.WriteJSON(w, http.StatusOK, AuthCheckResponse{Authenticated: true})
			return
		}
		h.responder.WriteJSON(w, http.StatusUnauthorized, AuthCheckResponse{Authenticated: false})
	}
}
