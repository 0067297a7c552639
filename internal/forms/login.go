package forms

import (
	"context"
	"fmt"

	"account-service/internal/model"
	"account-service/internal/service"
)

// LoginForm is the login submission.
type LoginForm struct {
	Username string `form:"username" validate:"required"`
	Password string `form:"password" validate:"required"`
}

// Validate resolves the username, checks the password against the stored
// hash, and requires an activated account. On success it returns the
// matched user for the caller to establish a session with.
//
// Unknown usernames and wrong passwords are reported distinctly, matching
// the observed behavior even though forgot-password deliberately does not
// disclose account existence.
func (f *LoginForm) Validate(ctx context.Context, users UserFinder) (*model.User, error) {
	if err := structural(f); err != nil {
		return nil, err
	}

	user, err := users.FindByUsername(ctx, f.Username)
	if err != nil {
		if notFound(err) {
			return nil, &FieldError{Field: "username", Message: "Unknown username", Kind: KindAuthentication}
		}
		return nil, fmt.Errorf("login: %w", err)
	}

	if !service.CheckPassword(*user, f.Password) {
		return nil, &FieldError{Field: "password", Message: "Invalid password", Kind: KindAuthentication}
	}

	if !user.Active {
		return nil, &FieldError{Field: "username", Message: "User not activated", Kind: KindAuthentication}
	}

	return user, nil
}
