package api

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/danielsolis/portfolio-site-backend/database"
	"github.com/danielsolis/portfolio-site-backend/errs"
	"github.com/danielsolis/portfolio-site-backend/forms"
	"github.com/danielsolis/portfolio-site-backend/models"
)

// dateLayout renders project dates like "March 04, 2024".
const dateLayout = "January 02, 2006"

type projectHandler struct {
	viewHelper
	responder   Responder
	logger      zerolog.Logger
	projectRepo *database.ProjectRepo
	userRepo    *database.UserRepo
}

func newProjectHandler(helper viewHelper, projectRepo *database.ProjectRepo, userRepo *database.UserRepo) projectHandler {
	logger := log.With().Str("handlerName", "projectHandler").Logger()

	return projectHandler{
		viewHelper:  helper,
		responder:   NewResponder(logger),
		logger:      logger,
		projectRepo: projectRepo,
		userRepo:    userRepo,
	}
}

func parseUintParam(r *http.Request, name string) (uint, error) {
	raw := chi.URLParam(r, name)
	if raw == "" {
		return 0, errs.NewBadRequestError("missing " + name)
	}
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, errs.NewBadRequestError("invalid " + name)
	}
	return uint(id), nil
}

// listByCategory lists all projects of one category.
func (h projectHandler) listByCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categoryID, err := parseUintParam(r, "categoryID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		category, err := h.categoryRepo.FindByID(categoryID)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		projects, err := h.projectRepo.FindByCategory(category.ID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "projects", err))
			return
		}

		meta, err := h.pageMeta(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, CategoryProjectsView{
			PageMeta: meta,
			Category: category,
			Projects: projects,
		})
	}
}

// showProject renders one project together with its category page context.
func (h projectHandler) showProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := parseUintParam(r, "projectID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		project, err := h.projectRepo.FindByID(projectID)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		category, err := h.categoryRepo.FindByName(chi.URLParam(r, "category"))
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		meta, err := h.pageMeta(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, ProjectView{
			PageMeta: meta,
			Project:  project,
			Category: category,
		})
	}
}

// showCreateForm renders the empty create-project form.
func (h projectHandler) showCreateForm() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categoryID, err := parseUintParam(r, "categoryID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if _, err := h.categoryRepo.FindByID(categoryID); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		meta, err := h.pageMeta(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, ProjectFormView{
			PageMeta:     meta,
			Action:       "Create",
			CategoryName: chi.URLParam(r, "category"),
		})
	}
}

// createProject validates the submitted form and inserts a project owned by
// the seed administrator, then redirects to the project page.
func (h projectHandler) createProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categoryID, err := parseUintParam(r, "categoryID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		category, err := h.categoryRepo.FindByID(categoryID)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := r.ParseForm(); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed form body"))
			return
		}
		form := forms.NewProjectForm(r.PostForm)

		if fieldErrors := forms.Validate(form); fieldErrors != nil {
			h.rerenderForm(w, r, "Create", form, fieldErrors, http.StatusUnprocessableEntity)
			return
		}

		admin, err := h.userRepo.FindByID(database.SeedAdminID)
		if err != nil {
			h.responder.WriteError(w, errs.NewInternalError("administrator account missing"))
			return
		}

		project := models.Project{
			UserID:      admin.ID,
			CategoryID:  category.ID,
			Title:       form.Title,
			Description: form.Description,
			Body:        form.Body,
			Date:        time.Now().Format(dateLayout),
			ImgURL:      form.ImgURL,
		}

		if err := h.projectRepo.Add(&project); err != nil {
			if errs.IsAlreadyExists(err) {
				h.rerenderForm(w, r, "Create", form,
					forms.Errors{"title": "A project with this title already exists."},
					http.StatusConflict)
				return
			}
			h.responder.WriteError(w, err)
			return
		}

		h.logger.Info().Uint("projectID", project.ID).Str("title", project.Title).Msg("Project created")
		h.redirectToProject(w, r, chi.URLParam(r, "category"), project.ID)
	}
}

// showEditForm renders the edit form prefilled from the stored project.
func (h projectHandler) showEditForm() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := parseUintParam(r, "projectID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		project, err := h.projectRepo.FindByID(projectID)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		meta, err := h.pageMeta(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, ProjectFormView{
			PageMeta:     meta,
			Action:       "Edit",
			CategoryName: chi.URLParam(r, "category"),
			Form: forms.ProjectForm{
				Title:       project.Title,
				Description: project.Description,
				ImgURL:      project.ImgURL,
				Body:        project.Body,
			},
		})
	}
}

// editProject validates the submitted form and updates the stored project in
// place, refreshing the date and resetting the owner to the administrator.
func (h projectHandler) editProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := parseUintParam(r, "projectID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		project, err := h.projectRepo.FindByID(projectID)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := r.ParseForm(); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed form body"))
			return
		}
		form := forms.NewProjectForm(r.PostForm)

		if fieldErrors := forms.Validate(form); fieldErrors != nil {
			h.rerenderForm(w, r, "Edit", form, fieldErrors, http.StatusUnprocessableEntity)
			return
		}

		project.Title = form.Title
		project.Description = form.Description
		project.ImgURL = form.ImgURL
		project.Body = form.Body
		project.UserID = database.SeedAdminID
		project.Date = time.Now().Format(dateLayout)

		if err := h.projectRepo.Update(project); err != nil {
			if errs.IsAlreadyExists(err) {
				h.rerenderForm(w, r, "Edit", form,
					forms.Errors{"title": "A project with this title already exists."},
					http.StatusConflict)
				return
			}
			h.responder.WriteError(w, err)
			return
		}

		h.logger.Info().Uint("projectID", project.ID).Msg("Project updated")
		h.redirectToProject(w, r, chi.URLParam(r, "category"), project.ID)
	}
}

// deleteProject removes a project and redirects to its category listing.
func (h projectHandler) deleteProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := parseUintParam(r, "projectID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		// resolve the redirect target before mutating anything so a bad
		// category name 404s without deleting the row
		category, err := h.categoryRepo.FindByName(chi.URLParam(r, "category"))
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.projectRepo.Delete(projectID); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.logger.Info().Uint("projectID", projectID).Msg("Project deleted")
		http.Redirect(w, r, fmt.Sprintf("/projects/%s/%d", category.Name, category.ID), http.StatusSeeOther)
	}
}

func (h projectHandler) rerenderForm(w http.ResponseWriter, r *http.Request, action string, form forms.ProjectForm, fieldErrors forms.Errors, status int) {
	meta, err := h.pageMeta(r)
	if err != nil {
		h.responder.WriteError(w, err)
		return
	}
	h.responder.WriteJSONStatus(w, status, ProjectFormView{
		PageMeta:     meta,
		Action:       action,
		CategoryName: chi.URLParam(r, "category"),
		Form:         form,
		Errors:       fieldErrors,
	})
}

func (h projectHandler) redirectToProject(w http.ResponseWriter, r *http.Request, categoryName string, projectID uint) {
	http.Redirect(w, r, fmt.Sprintf("/project/%s/%d", categoryName, projectID), http.StatusSeeOther)
}
