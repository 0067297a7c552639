package forms

import (
	"context"
	"fmt"
)

// RegisterForm is the registration submission.
type RegisterForm struct {
	Username string `form:"username" validate:"required,min=3,max=25"`
	Email    string `form:"email" validate:"required,email,min=6,max=40"`
	Password string `form:"password" validate:"required,min=6,max=40"`
	Confirm  string `form:"confirm" validate:"required,eqfield=Password"`
}

// Validate runs the structural pass, then checks username and email against
// existing rows.
func (f *RegisterForm) Validate(ctx context.Context, users UserFinder) error {
	if err := structural(f); err != nil {
		return err
	}

	if _, err := users.FindByUsername(ctx, f.Username); err == nil {
		return &FieldError{Field: "username", Message: "Username already registered", Kind: KindUniqueness}
	} else if !notFound(err) {
		return fmt.Errorf("register: %w", err)
	}

	if _, err := users.FindByEmail(ctx, f.Email); err == nil {
		return &FieldError{Field: "email", Message: "Email already registered", Kind: KindUniqueness}
	} else if !notFound(err) {
		return fmt.Errorf("register: %w", err)
	}

	return nil
}
