package forms

import (
	"context"
	"fmt"

	"account-service/internal/model"
)

// EditProfileForm is the profile-edit submission.
type EditProfileForm struct {
	Username  string `form:"username" validate:"required,min=3,max=25"`
	Email     string `form:"email" validate:"required,email,min=6,max=40"`
	FirstName string `form:"first_name" validate:"required"`
	LastName  string `form:"last_name" validate:"required"`
}

// Validate runs the structural pass, then checks uniqueness for username
// and email only when they differ from the current user's values, so
// keeping a field unchanged never collides with itself.
func (f *EditProfileForm) Validate(ctx context.Context, users UserFinder, current model.User) error {
	if err := structural(f); err != nil {
		return err
	}

	if f.Username != current.Username {
		if _, err := users.FindByUsername(ctx, f.Username); err == nil {
			return &FieldError{Field: "username", Message: "Username already registered", Kind: KindUniqueness}
		} else if !notFound(err) {
			return fmt.Errorf("edit profile: %w", err)
		}
	}

	if f.Email != current.Email {
		if _, err := users.FindByEmail(ctx, f.Email); err == nil {
			return &FieldError{Field: "email", Message: "Email already registered", Kind: KindUniqueness}
		} else if !notFound(err) {
			return fmt.Errorf("edit profile: %w", err)
		}
	}

	return nil
}
