package forms

import (
	"net/url"
	"testing"
)

func TestContactFormValid(t *testing.T) {
	form := NewContactForm(url.Values{
		"name":    {"Ada Lovelace"},
		"email":   {"ada@example.com"},
		"phone":   {"+44 123 456"},
		"message": {"I would like to talk about a project."},
	})

	if errs := Validate(form); errs != nil {
		t.Fatalf("expected no errors, got %v", errs)
	}
}

func TestContactFormMissingFields(t *testing.T) {
	form := NewContactForm(url.Values{"email": {"ada@example.com"}})

	errs := Validate(form)
	if errs == nil {
		t.Fatal("expected errors")
	}
	for _, field := range []string{"name", "phone", "message"} {
		if _, ok := errs[field]; !ok {
			t.Errorf("expected error for %q, got %v", field, errs)
		}
	}
	if _, ok := errs["email"]; ok {
		t.Errorf("did not expect error for email, got %v", errs)
	}
}

func TestContactFormMalformedEmail(t *testing.T) {
	form := NewContactForm(url.Values{
		"name":    {"Ada"},
		"email":   {"not-an-email"},
		"phone":   {"123"},
		"message": {"hi"},
	})

	errs := Validate(form)
	if errs == nil {
		t.Fatal("expected errors")
	}
	if msg := errs["email"]; msg != "Invalid email address." {
		t.Fatalf("email error = %q", msg)
	}
}

func TestProjectFormMalformedURL(t *testing.T) {
	form := NewProjectForm(url.Values{
		"title":       {"Line Follower"},
		"description": {"A small robot"},
		"img_url":     {"not-a-url"},
		"body":        {"<p>details</p>"},
	})

	errs := Validate(form)
	if errs == nil {
		t.Fatal("expected errors")
	}
	if msg := errs["img_url"]; msg != "Invalid URL." {
		t.Fatalf("img_url error = %q", msg)
	}
	if len(errs) != 1 {
		t.Fatalf("expected only the img_url error, got %v", errs)
	}
}

func TestProjectFormValid(t *testing.T) {
	form := NewProjectForm(url.Values{
		"title":       {"Line Follower"},
		"description": {"A small robot"},
		"img_url":     {"https://example.com/robot.png"},
		"body":        {"<p>details</p>"},
	})

	if errs := Validate(form); errs != nil {
		t.Fatalf("expected no errors, got %v", errs)
	}
}

func TestLoginFormRequiresBothFields(t *testing.T) {
	errs := Validate(NewLoginForm(url.Values{}))
	if errs == nil {
		t.Fatal("expected errors")
	}
	if _, ok := errs["email"]; !ok {
		t.Errorf("expected error for email, got %v", errs)
	}
	if _, ok := errs["password"]; !ok {
		t.Errorf("expected error for password, got %v", errs)
	}
}

func TestFormsTrimWhitespace(t *testing.T) {
	form := NewContactForm(url.Values{
		"name":    {"  Ada  "},
		"email":   {" ada@example.com "},
		"phone":   {" 123 "},
		"message": {"hello"},
	})
	if form.Name != "Ada" || form.Email != "ada@example.com" || form.Phone != "123" {
		t.Fatalf("fields not trimmed: %+v", form)
	}
}
