package auth

import (
	"errors"
	"net/http"
	"strings"

	"account-service/internal/api"
	"account-service/internal/cache"
	"account-service/internal/database"
	"account-service/internal/forms"
	"account-service/internal/handler"
	"account-service/internal/mail"
	"account-service/internal/metrics"
	"account-service/internal/service"
	"account-service/internal/store"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

const resetRequestedMessage = "Check your email for the instructions to reset your password"

// @Summary     Request a password reset
// @Description Sends a reset link when the email belongs to an account. The response is identical whether or not the email exists.
// @Tags        auth
// @Accept      application/x-www-form-urlencoded
// @Produce     json
// @Param       email formData string true "Account email"
// @Success     200 {object} api.MessageResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /auth/forgot_password [post]
func ForgotPasswordHandler(db database.DB, rdb cache.Cache, tokens *service.ResetTokens, mailer *mail.Dispatcher, baseURL, sender string, log zerolog.Logger) echo.HandlerFunc {
	throttle := cache.NewResetThrottle(rdb)
	return func(c echo.Context) error {
		var f forms.ForgotPasswordForm
		if err := c.Bind(&f); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid form data"})
		}
		f.Email = strings.ToLower(strings.TrimSpace(f.Email))

		ctx := c.Request().Context()
		if err := f.Validate(ctx); err != nil {
			return handler.FormError(c, err)
		}

		user, err := getUserByEmail(ctx, db, f.Email)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				// no disclosure: same response as the success path,
				// no token issued, no mail sent
				metrics.ResetRequestsTotal.WithLabelValues("unknown_email").Inc()
				return c.JSON(http.StatusOK, api.MessageResponse{Message: resetRequestedMessage})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		if allowed, err := throttle.Allow(ctx, f.Email); err != nil {
			// throttle is best-effort; a cache outage must not block resets
			log.Warn().Err(err).Msg("reset throttle unavailable")
		} else if !allowed {
			metrics.ResetRequestsTotal.WithLabelValues("throttled").Inc()
			return c.JSON(http.StatusOK, api.MessageResponse{Message: resetRequestedMessage})
		}

		token, err := tokens.Issue(*user)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to issue token"})
		}

		msg, err := mail.NewPasswordReset(*user, baseURL+"/api/auth/reset_password/"+token, sender)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		// reset mail goes out synchronously so transport failures are
		// observable to the requester
		if err := mailer.Send(msg, true); err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to send reset email"})
		}

		log.Info().Str("email", user.Email).Msg("password reset email sent")
		metrics.ResetRequestsTotal.WithLabelValues("issued").Inc()
		return c.JSON(http.StatusOK, api.MessageResponse{Message: resetRequestedMessage})
	}
}
