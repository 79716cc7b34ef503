package api

import (
	"encoding/json"
	"net/http"

	"devfolio/database"
	"devfolio/errs"
	"devfolio/models"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type profileHandler struct {
	responder   Responder
	logger      zerolog.Logger
	profileRepo *database.ProfileRepo
}

func newProfileHandler(profileRepo *database.ProfileRepo) profileHandler {
	logger := log.With().Str("handlerName", "profileHandler").Logger()

	return profileHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		profileRepo: profileRepo,
	}
}

// getProfile returns the singleton profile.
// @Summary Get profile
// @Description Retrieves the site owner's profile
// @Tags Profile
// @Produce json
// @Success 200 {object} models.Profile "Profile"
// @Failure 404 {object} MessageResponse "No profile has been created yet"
// @Failure 500 {object} MessageResponse "Error fetching profile"
// @Router /api/profile [get]
func (h profileHandler) getProfile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		profile, err := h.profileRepo.Get()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("fetch", "profile", err))
			return
		}

		if profile == nil {
			h.responder.WriteError(w, errs.NewNotFound("Profile"))
			return
		}

		h.responder.WriteJSON(w, http.StatusOK, profile)
	}
}

// createProfile inserts the profile.
// @Summary Create profile
// @Tags Profile
// @Accept json
// @Produce json
// @Param profile body models.Profile true "Profile data"
// @Success 201 {object} models.Profile "Created profile"
// @Failure 400 {object} ValidationErrorResponse "Invalid profile data"
// @Failure 401 {object} MessageResponse "Unauthorized"
// @Failure 500 {object} MessageResponse "Error creating profile"
// @Router /api/profile [post]
func (h profileHandler) createProfile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var profile models.Profile
		if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode profile request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if apiErr := validateStruct(&profile); apiErr != nil {
			h.responder.WriteError(w, apiErr)
			return
		}

		// id is store-generated
		profile.ID = 0

		if err := h.profileRepo.Add(&profile); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "profile", err))
			return
		}

		h.responder.WriteJSON(w, http.StatusCreated, profile)
	}
}

// updateProfile replaces every field of the profile, creating it when no row
// exists yet.
// @Summary Update profile
// @Tags Profile
// @Accept json
// @Produce json
// @Param profile body models.Profile true "Profile data"
// @Success 200 {object} models.Profile "Updated profile"
// @Failure 400 {object} ValidationErrorResponse "Invalid profile data"
// @Failure 401 {object} MessageResponse "Unauthorized"
// @Failure 500 {object} MessageResponse "Error updating profile"
// @Router /api/profile [put]
func (h profileHandler) updateProfile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var profile models.Profile
		if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode profile request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if apiErr := validateStruct(&profile); apiErr != nil {
			h.responder.WriteError(w, apiErr)
			return
		}

		updated, err := h.profileRepo.Update(&profile)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "profile", err))
			return
		}

		h.responder.WriteJSON(w, http.StatusOK, updated)
	}
}
