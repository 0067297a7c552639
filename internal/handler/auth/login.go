package auth

import (
	"errors"
	"net/http"

	"account-service/internal/api"
	"account-service/internal/database"
	"account-service/internal/forms"
	"account-service/internal/handler"
	"account-service/internal/metrics"
	"account-service/internal/service"
	"account-service/internal/store"

	"github.com/labstack/echo/v4"
)

// @Summary     Log in
// @Description Verifies username and password and returns a bearer token for the session.
// @Tags        auth
// @Accept      application/x-www-form-urlencoded
// @Produce     json
// @Param       username formData string true "Username"
// @Param       password formData string true "Password"
// @Success     200 {object} api.LoginResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /auth/login [post]
func LoginHandler(db database.DB, tokens *service.AccessTokens) echo.HandlerFunc {
	return func(c echo.Context) error {
		var f forms.LoginForm
		if err := c.Bind(&f); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid form data"})
		}

		user, err := f.Validate(c.Request().Context(), &store.Users{DB: db})
		if err != nil {
			metrics.LoginsTotal.WithLabelValues(loginResult(err)).Inc()
			return handler.FormError(c, err)
		}

		token, err := tokens.Issue(*user)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to issue token"})
		}

		metrics.LoginsTotal.WithLabelValues("ok").Inc()
		return c.JSON(http.StatusOK, api.LoginResponse{
			AccessToken: token,
			TokenType:   "bearer",
			ExpiresIn:   int64(tokens.TTL().Seconds()),
		})
	}
}

func loginResult(err error) string {
	var fe *forms.FieldError
	if !errors.As(err, &fe) || fe.Kind != forms.KindAuthentication {
		return "invalid"
	}
	switch fe.Message {
	case "Unknown username":
		return "unknown_username"
	case "User not activated":
		return "inactive"
	}
	return "invalid_password"
}
