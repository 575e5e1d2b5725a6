package api

import (
	"github.com/danielsolis/portfolio-site-backend/database"
	"github.com/danielsolis/portfolio-site-backend/services"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(database database.Database, notifier services.Notifier, sessions sessionManager) *routeHandlers {
	helper := viewHelper{
		sessions:     sessions,
		categoryRepo: database.CategoryRepo(),
	}

	return &routeHandlers{
		siteHandler:    newSiteHandler(helper, database.ProjectRepo()),
		projectHandler: newProjectHandler(helper, database.ProjectRepo(), database.UserRepo()),
		contactHandler: newContactHandler(helper, notifier),
		authHandler:    newAuthHandler(helper, database.UserRepo()),
	}
}
