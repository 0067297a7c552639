package main

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"account-service/internal/cache"
	"account-service/internal/config"
	"account-service/internal/database"
	"account-service/internal/mail"
)

func restoreGlobals() {
	loadConfig = config.Load
	newPgxPool = database.NewPgxPool
	newRedisClient = cache.NewRedisClient
	runMigrationsFn = database.RunMigrations
	newMailSender = func(cfg mail.SMTPConfig) mail.Sender { return mail.NewClient(cfg) }
	startServer = func(e *echo.Echo, addr string) error { return e.Start(addr) }
	exitFunc = func(code int) {}
}

func setEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DATABASE_URL", "postgres://localhost/accounts")
	t.Setenv("JWT_SECRET", "secret")
}

func stubHappyPath(called map[string]bool) {
	newPgxPool = func(ctx context.Context, url string) (database.DB, error) {
		called["pgx"] = true
		return &database.FakeDB{CloseFn: func() { called["dbClose"] = true }}, nil
	}
	newRedisClient = func(addr, pwd string, db int) (cache.Cache, error) {
		called["redis"] = true
		return &cache.FakeCache{CloseFn: func() error { called["redisClose"] = true; return nil }}, nil
	}
	runMigrationsFn = func(url string) error { called["migrate"] = true; return nil }
	newMailSender = func(mail.SMTPConfig) mail.Sender { called["mail"] = true; return &mail.FakeSender{} }
	startServer = func(e *echo.Echo, addr string) error {
		called["start"] = true
		called["addr-ok"] = addr == ":8080"
		return nil
	}
}

func TestCustomValidator(t *testing.T) {
	cv := &CustomValidator{validator: validator.New()}
	type s struct {
		Name string `validate:"required"`
	}
	require.NoError(t, cv.Validate(&s{Name: "ok"}))
	require.Error(t, cv.Validate(&s{}))
}

func TestRunSuccess(t *testing.T) {
	t.Cleanup(restoreGlobals)
	setEnv(t)

	called := make(map[string]bool)
	stubHappyPath(called)

	require.NoError(t, run())
	require.True(t, called["pgx"])
	require.True(t, called["redis"])
	require.True(t, called["migrate"])
	require.True(t, called["mail"])
	require.True(t, called["start"])
	require.True(t, called["addr-ok"])
	require.True(t, called["dbClose"])
	require.True(t, called["redisClose"])
}

func TestRunErrors(t *testing.T) {
	t.Cleanup(restoreGlobals)

	// missing required configuration
	t.Setenv("DATABASE_URL", "")
	t.Setenv("JWT_SECRET", "")
	require.NoError(t, os.Unsetenv("DATABASE_URL"))
	require.NoError(t, os.Unsetenv("JWT_SECRET"))
	require.Error(t, run())

	setEnv(t)

	runMigrationsFn = func(string) error { return errors.New("migrate") }
	require.Error(t, run())
	runMigrationsFn = func(string) error { return nil }

	newPgxPool = func(context.Context, string) (database.DB, error) { return nil, errors.New("db") }
	require.Error(t, run())
	newPgxPool = func(context.Context, string) (database.DB, error) { return &database.FakeDB{}, nil }

	newRedisClient = func(string, string, int) (cache.Cache, error) { return nil, errors.New("redis") }
	require.Error(t, run())
	newRedisClient = func(string, string, int) (cache.Cache, error) { return &cache.FakeCache{}, nil }

	newMailSender = func(mail.SMTPConfig) mail.Sender { return &mail.FakeSender{} }
	startServer = func(*echo.Echo, string) error { return errors.New("start") }
	require.Error(t, run())
}

func TestMainFunction(t *testing.T) {
	t.Cleanup(restoreGlobals)
	setEnv(t)
	stubHappyPath(make(map[string]bool))
	main()
}

func TestMainExit(t *testing.T) {
	t.Cleanup(restoreGlobals)
	setEnv(t)

	exitCode := 0
	exitFunc = func(code int) { exitCode = code }
	runMigrationsFn = func(string) error { return errors.New("fail") }
	main()
	require.Equal(t, 1, exitCode)
}
