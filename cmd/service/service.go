// @title        Account Service API
// @version      1.0
// @description  Registration, login, password reset and profile management.
// @host         localhost:8080
// @BasePath     /api
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"log"
	"os"

	"account-service/internal/cache"
	"account-service/internal/config"
	"account-service/internal/database"
	"account-service/internal/logging"
	"account-service/internal/mail"
	"account-service/internal/router"
	"account-service/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	_ "account-service/docs" // swag generated docs

	echoSwagger "github.com/swaggo/echo-swagger"
)

// CustomValidator wraps go-playground/validator for Echo
// swagger:ignore
type CustomValidator struct {
	validator *validator.Validate
}

// Validate calls the underlying validator
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

var (
	loadConfig      = config.Load
	newPgxPool      = database.NewPgxPool
	newRedisClient  = cache.NewRedisClient
	runMigrationsFn = database.RunMigrations
	newMailSender   = func(cfg mail.SMTPConfig) mail.Sender { return mail.NewClient(cfg) }
	startServer     = func(e *echo.Echo, addr string) error { return e.Start(addr) }
	exitFunc        = os.Exit
)

func run() error {
	ctx := context.Background()

	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	logger := logging.New(cfg.LogLevel, cfg.LogPretty, os.Stdout)

	if err := runMigrationsFn(cfg.DatabaseURL); err != nil {
		return err
	}

	db, err := newPgxPool(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer db.Close()

	rdb, err := newRedisClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		return err
	}
	defer rdb.Close()

	sender := newMailSender(mail.SMTPConfig{
		Host:     cfg.SMTP.Host,
		Port:     cfg.SMTP.Port,
		Username: cfg.SMTP.Username,
		Password: cfg.SMTP.Password,
		UseTLS:   cfg.SMTP.UseTLS,
	})
	mailer := mail.NewDispatcher(sender, cfg.WorkerCount, logger)
	defer mailer.Stop()

	access := service.NewAccessTokens([]byte(cfg.JWTSecret), cfg.AccessTokenTTL)
	reset := service.NewResetTokens([]byte(cfg.JWTSecret), cfg.ResetTokenTTL, logger)

	e := echo.New()
	e.Validator = &CustomValidator{validator: validator.New()}
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(echoprometheus.NewMiddleware("accounts"))
	e.GET("/metrics", echoprometheus.NewHandler())

	router.Setup(e, router.Deps{
		DB:      db,
		Cache:   rdb,
		Access:  access,
		Reset:   reset,
		Mailer:  mailer,
		BaseURL: cfg.BaseURL,
		Sender:  cfg.SMTP.Sender,
		Log:     logger,
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	logger.Info().Str("port", cfg.Port).Msg("starting account service")
	return startServer(e, ":"+cfg.Port)
}

func main() {
	if err := run(); err != nil {
		log.Print(err)
		exitFunc(1)
	}
}
