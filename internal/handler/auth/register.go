package auth

import (
	"errors"
	"net/http"
	"strings"

	"account-service/internal/api"
	"account-service/internal/database"
	"account-service/internal/forms"
	"account-service/internal/handler"
	"account-service/internal/mail"
	"account-service/internal/metrics"
	"account-service/internal/model"
	"account-service/internal/store"

	"github.com/labstack/echo/v4"
)

// @Summary     Register a new account
// @Description Creates an account from the registration form. The account is active immediately.
// @Tags        auth
// @Accept      application/x-www-form-urlencoded
// @Produce     json
// @Param       username formData string true "Username (3-25 characters)"
// @Param       email    formData string true "Email (lowercased on write)"
// @Param       password formData string true "Password (6-40 characters)"
// @Param       confirm  formData string true "Password confirmation"
// @Success     201 {object} api.UserResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     409 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /auth/register [post]
func RegisterHandler(db database.DB, mailer *mail.Dispatcher, sender string) echo.HandlerFunc {
	return func(c echo.Context) error {
		var f forms.RegisterForm
		if err := c.Bind(&f); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid form data"})
		}
		f.Email = strings.ToLower(strings.TrimSpace(f.Email))

		ctx := c.Request().Context()
		if err := f.Validate(ctx, &store.Users{DB: db}); err != nil {
			return handler.FormError(c, err)
		}

		hash, err := hashPassword(f.Password)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to hash password"})
		}

		user, err := createUser(ctx, db, &model.User{
			Username:     f.Username,
			Email:        f.Email,
			PasswordHash: &hash,
			Active:       true,
		})
		if err != nil {
			// the unique constraint is the backstop when a duplicate
			// lands between the form check and the insert
			switch {
			case errors.Is(err, store.ErrUsernameTaken):
				return c.JSON(http.StatusConflict, api.ErrorResponse{Field: "username", Message: "Username already registered"})
			case errors.Is(err, store.ErrEmailTaken):
				return c.JSON(http.StatusConflict, api.ErrorResponse{Field: "email", Message: "Email already registered"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		metrics.UsersRegisteredTotal.Inc()
		_ = mailer.Send(mail.NewWelcome(*user, sender), false)

		return c.JSON(http.StatusCreated, api.NewUserResponse(*user))
	}
}
