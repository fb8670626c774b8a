// Package forms implements the client-side field validation the product's
// login, registration, and profile forms run before anything touches the
// network. Failures are reported per field; a form that fails validation is
// never submitted.
package forms

import (
	"errors"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"

	colorwish "github.com/nikas90/kids-coloring-ai"
	"github.com/nikas90/kids-coloring-ai/session"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report errors under the form field names, not Go struct names.
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("form"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Errors maps form field names to inline messages. It satisfies error so a
// failed validation can flow through the same result path as any other
// failure.
type Errors map[string]string

// Error renders the field messages in a stable order.
func (e Errors) Error() string {
	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, field+": "+e[field])
	}
	return strings.Join(parts, "; ")
}

// Login is the sign-in form.
type Login struct {
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"required"`
}

// Validate checks the form and returns per-field messages, or nil.
func (f Login) Validate() Errors {
	return check(f)
}

// Register is the account-creation form. ConfirmPassword is a client-side
// check only; Request drops it before submission.
type Register struct {
	Username        string `form:"username" validate:"required"`
	Email           string `form:"email" validate:"required,email"`
	Password        string `form:"password" validate:"required,min=6"`
	ConfirmPassword string `form:"confirmPassword" validate:"required,eqfield=Password"`
	AgeRange        string `form:"ageRange" validate:"required,oneof='3-5 years' '6-8 years' '9-12 years' '13+ years' 'Parent/Guardian'"`
}

// Validate checks the form and returns per-field messages, or nil.
func (f Register) Validate() Errors {
	return check(f)
}

// Request converts the validated form into the wire payload. The
// confirmation password is deliberately not part of it.
func (f Register) Request() colorwish.RegisterRequest {
	return colorwish.RegisterRequest{
		Username: f.Username,
		Email:    f.Email,
		Password: f.Password,
		AgeRange: f.AgeRange,
	}
}

// Profile is the profile-edit form. The password fields are validated only
// when a password change is attempted (any of the three filled in).
type Profile struct {
	Username        string `form:"username" validate:"required"`
	Email           string `form:"email" validate:"required,email"`
	AgeRange        string `form:"ageRange" validate:"omitempty,oneof='3-5 years' '6-8 years' '9-12 years' '13+ years' 'Parent/Guardian'"`
	CurrentPassword string `form:"currentPassword" validate:"required_with=NewPassword ConfirmPassword"`
	NewPassword     string `form:"newPassword" validate:"required_with=CurrentPassword ConfirmPassword,omitempty,min=6"`
	ConfirmPassword string `form:"confirmPassword" validate:"eqfield=NewPassword"`
}

// Validate checks the form and returns per-field messages, or nil.
func (f Profile) Validate() Errors {
	return check(f)
}

// Update converts the form into the session-store profile update. Password
// fields stay local; credential rotation is not part of the consumed
// contract.
func (f Profile) Update() session.ProfileUpdate {
	return session.ProfileUpdate{
		Username: f.Username,
		Email:    f.Email,
		AgeRange: f.AgeRange,
	}
}

func check(form interface{}) Errors {
	err := validate.Struct(form)
	if err == nil {
		return nil
	}

	var invalid validator.ValidationErrors
	if !errors.As(err, &invalid) {
		return Errors{"form": err.Error()}
	}

	errs := make(Errors, len(invalid))
	for _, fe := range invalid {
		if _, ok := errs[fe.Field()]; !ok {
			errs[fe.Field()] = message(fe)
		}
	}
	return errs
}

// message maps a failed rule to the text the product's forms show inline.
func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		switch fe.Field() {
		case "username":
			return "Username is required"
		case "email":
			return "Email is required"
		case "password":
			return "Password is required"
		case "confirmPassword":
			return "Please confirm your password"
		case "ageRange":
			return "Please select an age range"
		default:
			return "This field is required"
		}
	case "email":
		return "Please enter a valid email address"
	case "min":
		return "Password must be at least 6 characters"
	case "eqfield":
		return "Passwords do not match"
	case "oneof":
		return "Please select an age range"
	case "required_with":
		if fe.Field() == "currentPassword" {
			return "Current password is required to change password"
		}
		return "New password is required"
	default:
		return "Invalid value"
	}
}
