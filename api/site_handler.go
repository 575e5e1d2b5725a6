package api

import (
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/danielsolis/portfolio-site-backend/database"
	"github.com/danielsolis/portfolio-site-backend/models"
)

// overviewLimit caps how many projects each category contributes to the home
// page sampling.
const overviewLimit = 2

// viewHelper builds the PageMeta every view model carries.
type viewHelper struct {
	sessions     sessionManager
	categoryRepo *database.CategoryRepo
}

func (v viewHelper) pageMeta(r *http.Request) (PageMeta, error) {
	categories, err := v.categoryRepo.FindAll()
	if err != nil {
		return PageMeta{}, wrapDatabaseError("find", "categories", err)
	}
	return PageMeta{
		Role:       v.sessions.Role(r),
		Categories: categories,
	}, nil
}

type siteHandler struct {
	viewHelper
	responder   Responder
	logger      zerolog.Logger
	projectRepo *database.ProjectRepo
}

func newSiteHandler(helper viewHelper, projectRepo *database.ProjectRepo) siteHandler {
	logger := log.With().Str("handlerName", "siteHandler").Logger()

	return siteHandler{
		viewHelper:  helper,
		responder:   NewResponder(logger),
		logger:      logger,
		projectRepo: projectRepo,
	}
}

// home renders the category list plus the overview project sampling.
func (h siteHandler) home() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		meta, err := h.pageMeta(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		overview, err := h.overviewProjects(meta.Categories)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, HomeView{
			PageMeta: meta,
			Projects: overview,
		})
	}
}

// overviewProjects samples each category's projects: none when the category
// is empty, the single one when there is exactly one, otherwise the first two
// in insertion order. Deterministic, not random.
func (h siteHandler) overviewProjects(categories []*models.Category) ([]*models.Project, error) {
	overview := []*models.Project{}
	for _, category := range categories {
		projects, err := h.projectRepo.FindByCategory(category.ID)
		if err != nil {
			return nil, wrapDatabaseError("find", "projects", err)
		}
		if len(projects) > overviewLimit {
			projects = projects[:overviewLimit]
		}
		overview = append(overview, projects...)
	}
	return overview, nil
}

// hobbies renders the static hobbies page context.
func (h siteHandler) hobbies() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		meta, err := h.pageMeta(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSON(w, HobbiesView{PageMeta: meta})
	}
}
