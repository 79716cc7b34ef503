package api

import (
	"time"

	"devfolio/database"
	"devfolio/session"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(database database.Database, sessions *session.Store, adminUsername, adminPassword string, startupTime time.Time) *routeHandlers {
	return &routeHandlers{
		authHandler:    newAuthHandler(sessions, adminUsername, adminPassword),
		profileHandler: newProfileHandler(database.ProfileRepo()),
		projectHandler: newProjectHandler(database.ProjectRepo()),
		productHandler: newProductHandler(database.ProductRepo()),
		statusHandler:  newStatusHandler(startupTime),
	}
}
