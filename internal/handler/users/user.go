// Package users carries the authenticated profile and member endpoints.
package users

import (
	"errors"
	"net/http"
	"strings"

	"account-service/internal/api"
	"account-service/internal/database"
	"account-service/internal/forms"
	"account-service/internal/handler"
	"account-service/internal/middleware"
	"account-service/internal/service"
	"account-service/internal/store"

	"github.com/labstack/echo/v4"
)

// stubbable seams for handler tests
var (
	getUserByID       = store.GetUserByID
	listUsers         = store.ListUsers
	updateUser        = store.UpdateUser
	createRole        = store.CreateRole
	assignRole        = store.AssignRole
	listRolesByUserID = store.ListRolesByUserID
)

func currentClaims(c echo.Context) (*service.CustomClaims, bool) {
	claims, ok := c.Get(middleware.ContextUserKey).(*service.CustomClaims)
	return claims, ok && claims.UserID != 0
}

// @Summary     List members
// @Description Returns all registered users.
// @Tags        users
// @Produce     json
// @Success     200 {array} api.UserResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /users [get]
func ListUsersHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		users, err := listUsers(c.Request().Context(), db)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		resp := make([]api.UserResponse, 0, len(users))
		for _, u := range users {
			resp = append(resp, api.NewUserResponse(u))
		}
		return c.JSON(http.StatusOK, resp)
	}
}

// @Summary     Get own profile
// @Description Returns the authenticated user's profile.
// @Tags        users
// @Produce     json
// @Success     200 {object} api.UserResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /users/me [get]
func GetMyUserHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := currentClaims(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid or missing token"})
		}
		user, err := getUserByID(c.Request().Context(), db, claims.UserID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		return c.JSON(http.StatusOK, api.NewUserResponse(*user))
	}
}

// @Summary     Edit own profile
// @Description Updates username, email and names. Changed username or email must not collide with another account.
// @Tags        users
// @Accept      application/x-www-form-urlencoded
// @Produce     json
// @Param       username   formData string true "Username (3-25 characters)"
// @Param       email      formData string true "Email"
// @Param       first_name formData string true "First name"
// @Param       last_name  formData string true "Last name"
// @Success     204 "No Content"
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     409 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /users/me [put]
func UpdateMyProfileHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := currentClaims(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid or missing token"})
		}

		var f forms.EditProfileForm
		if err := c.Bind(&f); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid form data"})
		}
		f.Email = strings.ToLower(strings.TrimSpace(f.Email))

		ctx := c.Request().Context()
		current, err := getUserByID(ctx, db, claims.UserID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		if err := f.Validate(ctx, &store.Users{DB: db}, *current); err != nil {
			return handler.FormError(c, err)
		}

		current.Username = f.Username
		current.Email = f.Email
		current.FirstName = f.FirstName
		current.LastName = f.LastName
		if err := updateUser(ctx, db, current); err != nil {
			switch {
			case errors.Is(err, store.ErrUsernameTaken):
				return c.JSON(http.StatusConflict, api.ErrorResponse{Field: "username", Message: "Username already registered"})
			case errors.Is(err, store.ErrEmailTaken):
				return c.JSON(http.StatusConflict, api.ErrorResponse{Field: "email", Message: "Email already registered"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		return c.NoContent(http.StatusNoContent)
	}
}

// @Summary     List own roles
// @Description Returns the roles assigned to the authenticated user.
// @Tags        users
// @Produce     json
// @Success     200 {array} api.RoleResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /users/me/roles [get]
func ListMyRolesHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := currentClaims(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid or missing token"})
		}
		roles, err := listRolesByUserID(c.Request().Context(), db, claims.UserID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}
		resp := make([]api.RoleResponse, 0, len(roles))
		for _, r := range roles {
			resp = append(resp, api.NewRoleResponse(r))
		}
		return c.JSON(http.StatusOK, resp)
	}
}
