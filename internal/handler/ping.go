package handler

import (
	"errors"
	"net/http"

	"account-service/internal/api"
	"account-service/internal/cache"
	"account-service/internal/database"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
)

func isRedisNil(err error) bool {
	return errors.Is(err, redis.Nil)
}

// swagger:model handler.PingResponse
type PingResponse struct {
	Message string `json:"message" example:"pong"`
}

// @Summary     Health check
// @Description Returns pong after verifying database and redis connectivity
// @Tags        health
// @Produce     json
// @Success     200 {object} PingResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /ping [get]
func PingHandler(db database.DB, rdb cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		if err := db.Ping(ctx); err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "database unhealthy"})
		}
		if err := rdb.Get(ctx, "ping").Err(); err != nil && !isRedisNil(err) {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "cache unhealthy"})
		}
		return c.JSON(http.StatusOK, PingResponse{Message: "pong"})
	}
}
