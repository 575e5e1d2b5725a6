// Package forms holds the four input shapes accepted over POST and their
// structural validation. Validation is presence + format only; business rules
// like title uniqueness live at the persistence layer.
package forms

import (
	"net/url"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// report errors under the form field name, not the Go field name
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("form"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Errors maps a form field name to its validation message.
type Errors map[string]string

// ContactForm is the public contact submission.
type ContactForm struct {
	Name    string `form:"name" json:"name" validate:"required"`
	Email   string `form:"email" json:"email" validate:"required,email"`
	Phone   string `form:"phone" json:"phone" validate:"required"`
	Message string `form:"message" json:"message" validate:"required"`
}

// LoginForm is the administrator login submission.
type LoginForm struct {
	Email    string `form:"email" json:"email" validate:"required"`
	Password string `form:"password" json:"-" validate:"required"`
}

// ProjectForm is the shared field set of the create-project and edit-project
// flows.
type ProjectForm struct {
	Title       string `form:"title" json:"title" validate:"required"`
	Description string `form:"description" json:"description" validate:"required"`
	ImgURL      string `form:"img_url" json:"img_url" validate:"required,url"`
	Body        string `form:"body" json:"body" validate:"required"`
}

func NewContactForm(values url.Values) ContactForm {
	return ContactForm{
		Name:    strings.TrimSpace(values.Get("name")),
		Email:   strings.TrimSpace(values.Get("email")),
		Phone:   strings.TrimSpace(values.Get("phone")),
		Message: strings.TrimSpace(values.Get("message")),
	}
}

func NewLoginForm(values url.Values) LoginForm {
	return LoginForm{
		Email:    strings.TrimSpace(values.Get("email")),
		Password: values.Get("password"),
	}
}

func NewProjectForm(values url.Values) ProjectForm {
	return ProjectForm{
		Title:       strings.TrimSpace(values.Get("title")),
		Description: strings.TrimSpace(values.Get("description")),
		ImgURL:      strings.TrimSpace(values.Get("img_url")),
		Body:        values.Get("body"),
	}
}

// Validate checks a form and returns per-field messages, or nil when the form
// is acceptable.
func Validate(form any) Errors {
	err := validate.Struct(form)
	if err == nil {
		return nil
	}

	fieldErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return Errors{"form": "The submitted form could not be processed."}
	}

	errors := make(Errors, len(fieldErrors))
	for _, fieldError := range fieldErrors {
		errors[fieldError.Field()] = message(fieldError)
	}
	return errors
}

func message(fieldError validator.FieldError) string {
	switch fieldError.Tag() {
	case "required":
		return "This field is required."
	case "email":
		return "Invalid email address."
	case "url":
		return "Invalid URL."
	default:
		return "Invalid value."
	}
}
