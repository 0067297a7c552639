package handler

import (
	"errors"
	"net/http"

	"account-service/internal/api"
	"account-service/internal/forms"

	"github.com/labstack/echo/v4"
)

// FormError renders a form validation failure. Field-scoped errors keep
// their field and message and map their kind to a status code; anything
// else is an internal error.
func FormError(c echo.Context, err error) error {
	var fe *forms.FieldError
	if errors.As(err, &fe) {
		return c.JSON(fe.Status(), api.ErrorResponse{Field: fe.Field, Message: fe.Message})
	}
	return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
}
