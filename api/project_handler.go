package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"devfolio/database"
	"devfolio/errs"
	"devfolio/models"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type projectHandler struct {
	responder   Responder
	logger      zerolog.Logger
	projectRepo *database.ProjectRepo
}

func newProjectHandler(projectRepo *database.ProjectRepo) projectHandler {
	logger := log.With().Str("handlerName", "projectHandler").Logger()

	return projectHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		projectRepo: projectRepo,
	}
}

// parseID extracts an integer id from the route, rejecting anything that
// does not parse.
func parseID(r *http.Request, param string) (int, *errs.ApiErr) {
	raw := chi.URLParam(r, param)
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errs.NewBadRequestError("invalid " + param)
	}
	return id, nil
}

// getAllProjects lists every project.
// @Summary Get all projects
// @Description Retrieves all projects; order is unspecified
// @Tags Projects
// @Produce json
// @Success 200 {array} models.Project "List of projects"
// @Failure 500 {object} MessageResponse "Error fetching projects"
// @Router /api/projects [get]
func (h projectHandler) getAllProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projects, err := h.projectRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("fetch", "projects", err))
			return
		}

		h.responder.WriteJSON(w, http.StatusOK, projects)
	}
}

// getProject retrieves a specific project by ID.
// @Summary Get project
// @Tags Projects
// @Produce json
// @Param id path int true "Project ID"
// @Success 200 {object} models.Project "Project details"
// @Failure 400 {object} MessageResponse "Invalid id"
// @Failure 404 {object} MessageResponse "Project not found"
// @Failure 500 {object} MessageResponse "Error fetching project"
// @Router /api/projects/{id} [get]
func (h projectHandler) getProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, apiErr := parseID(r, "id")
		if apiErr != nil {
			h.responder.WriteError(w, apiErr)
			return
		}

		project, err := h.projectRepo.FindByID(id)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("fetch", "project", err))
			return
		}

		if project == nil {
			h.responder.WriteError(w, errs.NewNotFound("Project"))
			return
		}

		h.responder.WriteJSON(w, http.StatusOK, project)
	}
}

// createProject creates a new project.
// @Summary Create project
// @Tags Projects
// @Accept json
// @Produce json
// @Param project body models.Project true "Project data"
// @Success 201 {object} models.Project "Created project"
// @Failure 400 {object} ValidationErrorResponse "Invalid project data"
// @Failure 401 {object} MessageResponse "Unauthorized"
// @Failure 500 {object} MessageResponse "Error creating project"
// @Router /api/projects [post]
func (h projectHandler) createProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var project models.Project
		if err := json.NewDecoder(r.Body).Decode(&project); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode project request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if apiErr := validateStruct(&project); apiErr != nil {
			h.responder.WriteError(w, apiErr)
			return
		}

		project.ID = 0

		if err := h.projectRepo.Add(&project); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "project", err))
			return
		}

		h.responder.WriteJSON(w, http.StatusCreated, project)
	}
}

// updateProject fully replaces an existing project.
// @Summary Update project
// @Tags Projects
// @Accept json
// @Produce json
// @Param id path int true "Project ID"
// @Param project body models.Project true "Updated project data"
// @Success 200 {object} models.Project "Updated project"
// @Failure 400 {object} ValidationErrorResponse "Invalid project data"
// @Failure 401 {object} MessageResponse "Unauthorized"
// @Failure 404 {object} MessageResponse "Project not found"
// @Failure 500 {object} MessageResponse "Error updating project"
// @Router /api/projects/{id} [put]
func (h projectHandler) updateProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, apiErr := parseID(r, "id")
		if apiErr != nil {
			h.responder.WriteError(w, apiErr)
			return
		}

		var project models.Project
		if err := json.NewDecoder(r.Body).Decode(&project); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode project request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if apiErr := validateStruct(&project); apiErr != nil {
			h.responder.WriteError(w, apiErr)
			return
		}

		updated, err := h.projectRepo.Update(id, &project)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "project", err))
			return
		}

		if updated == nil {
			h.responder.WriteError(w, errs.NewNotFound("Project"))
			return
		}

		h.responder.WriteJSON(w, http.StatusOK, updated)
	}
}

// deleteProject deletes a project by ID.
// @Summary Delete project
// @Tags Projects
// @Produce json
// @Param id path int true "Project ID"
// @Success 200 {object} SuccessResponse "Project deleted"
// @Failure 400 {object} MessageResponse "Invalid id"
// @Failure 401 {object} MessageResponse "Unauthorized"
// @Failure 404 {object} MessageResponse "Project not found"
// @Failure 500 {object} MessageResponse "Error deleting project"
// @Router /api/projects/{id} [delete]
func (h projectHandler) deleteProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, apiErr := parseID(r, "id")
		if apiErr != nil {
			h.responder.WriteError(w, apiErr)
			return
		}

		deleted, err := h.projectRepo.Delete(id)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "project", err))
			return
		}

		if !deleted {
			h.responder.WriteError(w, errs.NewNotFound("Project"))
			return
		}

		h.responder.WriteJSON(w, http.StatusOK, SuccessResponse{Success: true})
	}
}
