package handlers

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

// newValidator reports field errors under their form names.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("form"), ",")
		if name == "" || name == "-" {
			return field.Name
		}
		return name
	})
	return v
}

// fieldErrors maps a validation failure onto form field names. Errors that are not
// validation failures are returned unchanged.
func fieldErrors(err error) (map[string]string, error) {
	if err == nil {
		return nil, nil
	}
	var invalid validator.ValidationErrors
	if !errors.As(err, &invalid) {
		return nil, err
	}
	out := make(map[string]string, len(invalid))
	for _, fe := range invalid {
		if _, seen := out[fe.Field()]; seen {
			continue
		}
		out[fe.Field()] = describe(fe)
	}
	return out, nil
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "email":
		return "Enter a valid email address."
	case "min":
		return fmt.Sprintf("Must be at least %s characters.", fe.Param())
	case "max":
		return fmt.Sprintf("Must be at most %s characters.", fe.Param())
	case "oneof":
		return fmt.Sprintf("Choose one of: %s.", strings.ReplaceAll(fe.Param(), " ", ", "))
	case "eqfield":
		return "Values do not match."
	case "e164":
		return "Enter a phone number such as +15551234567."
	default:
		return "Invalid value."
	}
}

type userInput struct {
	Name     string `form:"name" validate:"required,max=120"`
	Email    string `form:"email" validate:"required,email,max=254"`
	Role     string `form:"role" validate:"required,oneof=user moderator admin"`
	Status   string `form:"status" validate:"required,oneof=active inactive"`
	Phone    string `form:"phone" validate:"omitempty,e164"`
	Location string `form:"location" validate:"max=120"`
}

// newUserInput adds the initial password required when creating an account.
type newUserInput struct {
	userInput
	Password string `form:"password" validate:"required,min=8,max=72"`
}

type profileInput struct {
	Name     string `form:"name" validate:"required,max=120"`
	Email    string `form:"email" validate:"required,email,max=254"`
	Phone    string `form:"phone" validate:"omitempty,e164"`
	Location string `form:"location" validate:"max=120"`
	Bio      string `form:"bio" validate:"max=500"`
}

type accountInput struct {
	Current string `form:"current_password" validate:"required"`
	New     string `form:"new_password" validate:"required,min=8,max=72"`
	Confirm string `form:"confirm_password" validate:"required,eqfield=New"`
}
