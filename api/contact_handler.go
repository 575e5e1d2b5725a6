package api

import (
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/danielsolis/portfolio-site-backend/errs"
	"github.com/danielsolis/portfolio-site-backend/forms"
	"github.com/danielsolis/portfolio-site-backend/services"
)

type contactHandler struct {
	viewHelper
	responder Responder
	logger    zerolog.Logger
	notifier  services.Notifier
}

func newContactHandler(helper viewHelper, notifier services.Notifier) contactHandler {
	logger := log.With().Str("handlerName", "contactHandler").Logger()

	return contactHandler{
		viewHelper: helper,
		responder:  NewResponder(logger),
		logger:     logger,
		notifier:   notifier,
	}
}

// showForm renders the empty contact form.
func (h contactHandler) showForm() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		meta, err := h.pageMeta(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSON(w, ContactView{PageMeta: meta})
	}
}

// submit validates the contact form and forwards it by email. The route
// blocks on the send; a delivery failure is returned to the caller instead of
// a false success.
func (h contactHandler) submit() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed form body"))
			return
		}
		form := forms.NewContactForm(r.PostForm)

		meta, err := h.pageMeta(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if fieldErrors := forms.Validate(form); fieldErrors != nil {
			h.responder.WriteJSONStatus(w, http.StatusUnprocessableEntity, ContactView{
				PageMeta: meta,
				Form:     form,
				Errors:   fieldErrors,
			})
			return
		}

		message := services.ContactMessage{
			Name:    form.Name,
			Email:   form.Email,
			Phone:   form.Phone,
			Message: form.Message,
		}
		if err := h.notifier.Send(r.Context(), message); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, ContactView{
			PageMeta: meta,
			Form:     form,
			Sent:     true,
		})
	}
}
