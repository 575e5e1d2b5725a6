package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"testing"

	"github.com/danielsolis/portfolio-site-backend/errs"
)

func contactForm() url.Values {
	return url.Values{
		"name":    {"Ada Lovelace"},
		"email":   {"ada@example.com"},
		"phone":   {"+44 123 456"},
		"message": {"Let's build an analytical engine."},
	}
}

func TestContactSubmissionSendsExactlyOnce(t *testing.T) {
	notifier := &fakeNotifier{}
	router, _ := newTestRouter(t, notifier)

	rec := doPostForm(router, "/contact", contactForm(), nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	var view ContactView
	if err := json.Unmarshal(rec.Body.Bytes(), &view); err != nil {
		t.Fatalf("decode contact view: %v", err)
	}
	if !view.Sent {
		t.Error("expected sent=true")
	}

	if notifier.sentCount() != 1 {
		t.Fatalf("sends = %d, want 1", notifier.sentCount())
	}
	sent := notifier.sent[0]
	if sent.Name != "Ada Lovelace" || sent.Email != "ada@example.com" ||
		sent.Phone != "+44 123 456" || sent.Message != "Let's build an analytical engine." {
		t.Fatalf("message fields not verbatim: %+v", sent)
	}
}

func TestContactValidationFailureSendsNothing(t *testing.T) {
	notifier := &fakeNotifier{}
	router, _ := newTestRouter(t, notifier)

	form := contactForm()
	form.Set("email", "not-an-email")
	rec := doPostForm(router, "/contact", form, nil)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rec.Code)
	}

	var view ContactView
	if err := json.Unmarshal(rec.Body.Bytes(), &view); err != nil {
		t.Fatalf("decode contact view: %v", err)
	}
	if view.Sent {
		t.Error("sent=true on invalid form")
	}
	if view.Errors["email"] == "" {
		t.Errorf("expected email error, got %v", view.Errors)
	}

	if notifier.sentCount() != 0 {
		t.Fatalf("sends = %d, want 0", notifier.sentCount())
	}
}

func TestContactDeliveryFailureIsNotReportedAsSuccess(t *testing.T) {
	notifier := &fakeNotifier{err: errs.NewDeliveryError(errors.New("relay refused connection"))}
	router, _ := newTestRouter(t, notifier)

	rec := doPostForm(router, "/contact", contactForm(), nil)
	if rec.Code != http.StatusBadGateway {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadGateway)
	}

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	if sent, ok := body["sent"].(bool); ok && sent {
		t.Fatal("delivery failure reported as success")
	}
}

func TestContactFormPage(t *testing.T) {
	router, _ := newTestRouter(t, &fakeNotifier{})

	rec := doGet(router, "/contact", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var view ContactView
	if err := json.Unmarshal(rec.Body.Bytes(), &view); err != nil {
		t.Fatalf("decode contact view: %v", err)
	}
	if view.Sent {
		t.Error("fresh form claims sent")
	}
	if len(view.Categories) != 4 {
		t.Errorf("categories = %d, want 4", len(view.Categories))
	}
}
