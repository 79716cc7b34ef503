package api

import (
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
)

type statusHandler struct {
	responder   Responder
	startupTime time.Time
}

func newStatusHandler(startupTime time.Time) statusHandler {
	logger := log.With().Str("handlerName", "statusHandler").Logger()
	return statusHandler{
		responder:   NewResponder(logger),
		startupTime: startupTime,
	}
}

// health is an unauthenticated liveness probe.
// @Summary Health check
// @Tags Status
// @Produce json
// @Success 200 {object} map[string]string "Server status and uptime"
// @Router /api/health [get]
func (h statusHandler) health() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.responder.WriteJSON(w, http.StatusOK, map[string]string{
			"status": "ok",
			"uptime": time.Since(h.startupTime).Round(time.Second).String(),
		})
	}
}
