package report

import (
	"leave-report/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rdb *redis.Client,
) {
	reports := r.Group("/reports/upcoming-absences")
	reports.Use(middleware.RateLimitByIP(rate.Limit(5), 10))
	{
		reports.POST("/run", middleware.Idempotency(rdb), handler.Run)
		reports.GET("/preview", handler.Preview)
	}
}
