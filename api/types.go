package api

import (
	"github.com/danielsolis/portfolio-site-backend/forms"
	"github.com/danielsolis/portfolio-site-backend/models"
)

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	siteHandler    siteHandler
	projectHandler projectHandler
	contactHandler contactHandler
	authHandler    authHandler
}

// PageMeta is embedded in every view model: the caller's role plus the
// category list the navigation renders from.
type PageMeta struct {
	Role       string             `json:"role"`
	Categories []*models.Category `json:"categories"`
}

// HomeView backs the home page: overview projects sampled per category.
type HomeView struct {
	PageMeta
	Projects []*models.Project `json:"projects"`
}

// CategoryProjectsView backs the per-category project listing.
type CategoryProjectsView struct {
	PageMeta
	Category *models.Category  `json:"category"`
	Projects []*models.Project `json:"projects"`
}

// ProjectView backs the single-project page.
type ProjectView struct {
	PageMeta
	Project  *models.Project  `json:"project"`
	Category *models.Category `json:"category"`
}

// ProjectFormView backs the create/edit form pages; Action distinguishes the
// two and Errors carries per-field validation messages on re-render.
type ProjectFormView struct {
	PageMeta
	Action       string            `json:"action"`
	CategoryName string            `json:"category_name"`
	Form         forms.ProjectForm `json:"form"`
	Errors       forms.Errors      `json:"errors,omitempty"`
}

// ContactView backs the contact page. Sent is true only after the notifier
// confirmed delivery.
type ContactView struct {
	PageMeta
	Form   forms.ContactForm `json:"form"`
	Sent   bool              `json:"sent"`
	Errors forms.Errors      `json:"errors,omitempty"`
}

// LoginView backs the admin login page; Flash carries the generic
// authentication failure message.
type LoginView struct {
	PageMeta
	Flash  string       `json:"flash,omitempty"`
	Errors forms.Errors `json:"errors,omitempty"`
}

// HobbiesView backs the static hobbies page.
type HobbiesView struct {
	PageMeta
}

// ErrorResponse represents an error response from the API
type ErrorResponse struct {
	Error   string `json:"error"`
	Status  string `json:"status"`
	Field   string `json:"field,omitempty"`
	Details string `json:"details,omitempty"`
	Cause   string `json:"cause,omitempty"`
}
