package app

import (
	"net/http"
	"os"

	"leave-report/internal/config"
	"leave-report/internal/middleware"
	"leave-report/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BuildApp wires infrastructure and routes for the HTTP surface.
func BuildApp(router *gin.Engine) error {
	gormDB, err := connection.ConnectGORMWithRetry(
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_SSLMODE"),
		5,
	)
	if err != nil {
		return err
	}

	redisClient, err := connection.ConnectRedisWithRetry(os.Getenv("REDIS_ADDR"), 5)
	if err != nil {
		return err
	}

	cfg := config.Load()

	router.Use(middleware.RequestID())
	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	if err := registerModules(router, gormDB, redisClient, cfg); err != nil {
		return err
	}

	zap.L().Info("application wired",
		zap.Int("days_range", cfg.DaysRange),
		zap.String("remote_category", cfg.RemoteCategory),
	)
	return nil
}
