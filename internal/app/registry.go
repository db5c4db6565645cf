package app

import (
	"leave-report/internal/config"
	"leave-report/internal/employee"
	"leave-report/internal/leave"
	"leave-report/internal/mailer"
	"leave-report/internal/report"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	gormDB *gorm.DB,
	rdb *redis.Client,
	cfg *config.Config,
) error {
	// --- Repositories ---
	leaveRepo := leave.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)

	// --- Outbound ---
	sender, err := mailer.NewSMTPSender(mailer.SMTPOptions{
		Host:        cfg.SMTP.Host,
		Port:        cfg.SMTP.Port,
		Username:    cfg.SMTP.Username,
		Password:    cfg.SMTP.Password,
		DialTimeout: cfg.SMTP.DialTimeout,
	})
	if err != nil {
		return err
	}

	// --- Services ---
	reportService := report.NewService(leaveRepo, employeeRepo, sender, cfg)

	// --- Handlers ---
	reportHandler := report.NewHandlerWithRedis(reportService, rdb)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		report.RegisterRoutes(api, reportHandler, rdb)
	}

	return nil
}
