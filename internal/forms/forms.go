// Package forms implements the submission forms of the account subsystem.
// Each form runs a structural pass (presence, length, format, cross-field
// equality) and, only when that succeeds, a semantic pass against the user
// store (uniqueness, credentials). Semantic checks go through UserFinder so
// tests can run against an in-memory fake.
package forms

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"account-service/internal/model"
	"account-service/internal/store"

	"github.com/go-playground/validator/v10"
)

// UserFinder is the store lookup contract the semantic pass depends on.
// Implementations return store.ErrNotFound (possibly wrapped) when no row
// matches.
type UserFinder interface {
	FindByUsername(ctx context.Context, username string) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
}

// Kind classifies a field error so handlers can pick a status code.
type Kind int

const (
	// KindValidation marks structural failures (presence, length, format).
	KindValidation Kind = iota
	// KindUniqueness marks collisions with an existing row.
	KindUniqueness
	// KindAuthentication marks credential and account-state failures.
	KindAuthentication
)

// FieldError is a user-visible, field-scoped form failure.
type FieldError struct {
	Field   string
	Message string
	Kind    Kind
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Message
}

// Status maps the error kind to its HTTP status code.
func (e *FieldError) Status() int {
	switch e.Kind {
	case KindUniqueness:
		return http.StatusConflict
	case KindAuthentication:
		return http.StatusUnauthorized
	}
	return http.StatusBadRequest
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// report errors under the submitted field name, not the Go one
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// structural runs the storage-independent pass and converts the first
// failure into a FieldError.
func structural(form any) error {
	err := validate.Struct(form)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}
	fe := verrs[0]
	return &FieldError{Field: fe.Field(), Message: fieldMessage(fe), Kind: KindValidation}
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "email":
		return "Invalid email address."
	case "min":
		return fmt.Sprintf("Field must be at least %s characters long.", fe.Param())
	case "max":
		return fmt.Sprintf("Field must be at most %s characters long.", fe.Param())
	case "eqfield":
		return "Passwords must match"
	}
	return fmt.Sprintf("%s failed validation (%s)", fe.Field(), fe.Tag())
}

func notFound(err error) bool {
	return errors.Is(err, store.ErrNotFound)
}
