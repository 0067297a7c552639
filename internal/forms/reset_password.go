package forms

import "context"

// ForgotPasswordForm requests a reset link. It deliberately has no
// semantic pass: whether the email belongs to an account is never
// disclosed to the caller.
type ForgotPasswordForm struct {
	Email string `form:"email" validate:"required,email"`
}

func (f *ForgotPasswordForm) Validate(_ context.Context) error {
	return structural(f)
}

// ResetPasswordForm submits the new password. The target account comes
// from a pre-verified token, so only structural checks apply.
type ResetPasswordForm struct {
	Password string `form:"password" validate:"required,min=6,max=40"`
	Confirm  string `form:"confirm" validate:"required,eqfield=Password"`
}

func (f *ResetPasswordForm) Validate(_ context.Context) error {
	return structural(f)
}
