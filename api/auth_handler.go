package api

import (
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/danielsolis/portfolio-site-backend/database"
	"github.com/danielsolis/portfolio-site-backend/errs"
	"github.com/danielsolis/portfolio-site-backend/forms"
)

// loginFlash is deliberately identical for unknown emails and wrong
// passwords so responses never reveal which emails are registered.
const loginFlash = "The email or password is not correct, please try again."

type authHandler struct {
	viewHelper
	responder Responder
	logger    zerolog.Logger
	userRepo  *database.UserRepo
}

func newAuthHandler(helper viewHelper, userRepo *database.UserRepo) authHandler {
	logger := log.With().Str("handlerName", "authHandler").Logger()

	return authHandler{
		viewHelper: helper,
		responder:  NewResponder(logger),
		logger:     logger,
		userRepo:   userRepo,
	}
}

// showLogin renders the admin login form.
func (h authHandler) showLogin() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		meta, err := h.pageMeta(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSON(w, LoginView{PageMeta: meta})
	}
}

// login checks the submitted credentials against the stored user and promotes
// the caller's session to admin on success.
func (h authHandler) login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed form body"))
			return
		}
		form := forms.NewLoginForm(r.PostForm)

		meta, err := h.pageMeta(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if fieldErrors := forms.Validate(form); fieldErrors != nil {
			h.responder.WriteJSONStatus(w, http.StatusUnprocessableEntity, LoginView{
				PageMeta: meta,
				Errors:   fieldErrors,
			})
			return
		}

		user, err := h.userRepo.FindByEmail(form.Email)
		if err != nil {
			if errs.IsNotFound(err) {
				h.rejectLogin(w, meta)
				return
			}
			h.responder.WriteError(w, err)
			return
		}

		if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(form.Password)) != nil {
			h.rejectLogin(w, meta)
			return
		}

		if err := h.sessions.SetRole(w, r, RoleAdmin); err != nil {
			h.responder.WriteError(w, errs.NewInternalError("saving the session failed"))
			return
		}

		h.logger.Info().Str("email", user.Email).Msg("Administrator logged in")
		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}

func (h authHandler) rejectLogin(w http.ResponseWriter, meta PageMeta) {
	h.responder.WriteJSONStatus(w, http.StatusUnauthorized, LoginView{
		PageMeta: meta,
		Flash:    loginFlash,
	})
}

// logout resets the caller's role to visitor and redirects home.
func (h authHandler) logout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := h.sessions.SetRole(w, r, RoleVisitor); err != nil {
			h.responder.WriteError(w, errs.NewInternalError("saving the session failed"))
			return
		}
		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}
