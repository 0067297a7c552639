package auth

import (
	"net/http"

	"account-service/internal/api"
	"account-service/internal/database"
	"account-service/internal/forms"
	"account-service/internal/handler"
	"account-service/internal/metrics"
	"account-service/internal/service"

	"github.com/labstack/echo/v4"
)

// @Summary     Reset a password
// @Description Verifies the reset token from the final path segment, then sets the submitted password.
// @Tags        auth
// @Accept      application/x-www-form-urlencoded
// @Produce     json
// @Param       token    path     string true "Reset token"
// @Param       password formData string true "New password (6-40 characters)"
// @Param       confirm  formData string true "Password confirmation"
// @Success     200 {object} api.MessageResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /auth/reset_password/{token} [post]
func ResetPasswordHandler(db database.DB, tokens *service.ResetTokens) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		// the token identifies the target account; verify before
		// looking at the form at all
		user, err := tokens.Verify(ctx, db, c.Param("token"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "Invalid or expired token"})
		}

		var f forms.ResetPasswordForm
		if err := c.Bind(&f); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid form data"})
		}
		if err := f.Validate(ctx); err != nil {
			return handler.FormError(c, err)
		}

		hash, err := hashPassword(f.Password)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to hash password"})
		}
		if err := updateUserPassword(ctx, db, user.ID, hash); err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		metrics.ResetsCompletedTotal.Inc()
		return c.JSON(http.StatusOK, api.MessageResponse{Message: "Your password has been reset."})
	}
}
