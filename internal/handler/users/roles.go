package users

import (
	"errors"
	"net/http"
	"strconv"

	"account-service/internal/api"
	"account-service/internal/database"
	"account-service/internal/model"
	"account-service/internal/store"

	"github.com/labstack/echo/v4"
)

// @Summary     Create a role
// @Description Creates an unassigned role with a unique name.
// @Tags        roles
// @Accept      application/x-www-form-urlencoded
// @Produce     json
// @Param       name formData string true "Role name"
// @Success     201 {object} api.RoleResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     409 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /roles [post]
func CreateRoleHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.CreateRoleRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid form data"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		role, err := createRole(c.Request().Context(), db, &model.Role{Name: req.Name})
		if err != nil {
			if errors.Is(err, store.ErrRoleNameTaken) {
				return c.JSON(http.StatusConflict, api.ErrorResponse{Field: "name", Message: "Role name already taken"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		return c.JSON(http.StatusCreated, api.NewRoleResponse(*role))
	}
}

// @Summary     Assign a role to a user
// @Description Points an existing role at a user.
// @Tags        roles
// @Accept      application/x-www-form-urlencoded
// @Produce     json
// @Param       role_id path     int true "Role ID"
// @Param       user_id formData int true "User ID"
// @Success     204 "No Content"
// @Failure     400 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /roles/{role_id}/assign [put]
func AssignRoleHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		roleID, err := strconv.Atoi(c.Param("role_id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid role ID"})
		}

		var req api.AssignRoleRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid form data"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		if err := assignRole(c.Request().Context(), db, roleID, req.UserID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "role not found"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		return c.NoContent(http.StatusNoContent)
	}
}
