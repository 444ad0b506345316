package relief

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/ce-fello/relief-hub/src/internal/model"
)

type RequestDraft struct {
	Title       string         `json:"title" validate:"notblank"`
	Description string         `json:"description" validate:"notblank"`
	Location    string         `json:"location" validate:"notblank"`
	Category    model.Category `json:"category" validate:"enum"`
	Urgency     model.Urgency  `json:"urgency" validate:"enum"`
	IsPrivate   bool           `json:"isPrivate"`
}

type OfferDraft struct {
	Author  string `json:"author" validate:"notblank"`
	Message string `json:"message" validate:"notblank"`
	Contact string `json:"contact" validate:"notblank"`
}

type CommentDraft struct {
	Author  string `json:"author" validate:"notblank"`
	Message string `json:"message" validate:"notblank"`
}

type AssignmentDraft struct {
	VolunteerID string `json:"volunteerId" validate:"notblank"`
	Message     string `json:"message" validate:"notblank"`
}

type VolunteerDraft struct {
	Name         string   `json:"name" validate:"notblank"`
	Email        string   `json:"email" validate:"required,email"`
	Phone        string   `json:"phone" validate:"notblank"`
	Skills       []string `json:"skills" validate:"dive,notblank"`
	Availability string   `json:"availability"`
	Experience   string   `json:"experience"`
}

type LoginInput struct {
	Email string     `json:"email" validate:"required,email"`
	Role  model.Role `json:"role" validate:"enum"`
}

type RegisterInput struct {
	Name  string     `json:"name" validate:"notblank"`
	Email string     `json:"email" validate:"required,email"`
	Role  model.Role `json:"role" validate:"enum"`
	Phone string     `json:"phone"`
}

type validEnum interface {
	Valid() bool
}

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	_ = validate.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	_ = validate.RegisterValidation("enum", func(fl validator.FieldLevel) bool {
		e, ok := fl.Field().Interface().(validEnum)
		return ok && e.Valid()
	})
}

// Validate runs the struct tags on an input and reports the first failing field.
func Validate(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return &ValidationError{Field: fe.Field(), Reason: reason(fe.Tag())}
	}
	return &ValidationError{Reason: err.Error()}
}

func reason(tag string) string {
	switch tag {
	case "required", "notblank":
		return "is required"
	case "email":
		return "must be a valid email"
	case "enum":
		return "is not a recognised value"
	}
	return "failed " + tag
}
