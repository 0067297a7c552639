package router

import (
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"account-service/internal/cache"
	"account-service/internal/database"
	"account-service/internal/handler"
	"account-service/internal/handler/auth"
	"account-service/internal/handler/users"
	"account-service/internal/mail"
	"account-service/internal/middleware"
	"account-service/internal/service"
)

// Deps bundles everything the routes close over.
type Deps struct {
	DB      database.DB
	Cache   cache.Cache
	Access  *service.AccessTokens
	Reset   *service.ResetTokens
	Mailer  *mail.Dispatcher
	BaseURL string
	Sender  string
	Log     zerolog.Logger
}

// Setup registers all routes and their middleware.
func Setup(e *echo.Echo, d Deps) {
	api := e.Group("/api")

	api.GET("/ping", handler.PingHandler(d.DB, d.Cache))

	api.POST("/auth/register", auth.RegisterHandler(d.DB, d.Mailer, d.Sender))
	api.POST("/auth/login", auth.LoginHandler(d.DB, d.Access))
	api.POST("/auth/forgot_password", auth.ForgotPasswordHandler(d.DB, d.Cache, d.Reset, d.Mailer, d.BaseURL, d.Sender, d.Log))
	// the reset endpoint extracts the token as the last path segment
	api.POST("/auth/reset_password/:token", auth.ResetPasswordHandler(d.DB, d.Reset))

	apiUsers := api.Group("/users", middleware.RequireAuth(d.Access))
	apiUsers.GET("", users.ListUsersHandler(d.DB))
	apiUsers.GET("/me", users.GetMyUserHandler(d.DB))
	apiUsers.PUT("/me", users.UpdateMyProfileHandler(d.DB))
	apiUsers.GET("/me/roles", users.ListMyRolesHandler(d.DB))

	apiRoles := api.Group("/roles", middleware.RequireAdmin(d.Access))
	apiRoles.POST("", users.CreateRoleHandler(d.DB))
	apiRoles.PUT("/:role_id/assign", users.AssignRoleHandler(d.DB))
}
