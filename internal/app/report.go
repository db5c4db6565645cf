package app

import (
	"context"
	"fmt"
	"os"

	"leave-report/internal/config"
	"leave-report/internal/employee"
	"leave-report/internal/leave"
	"leave-report/internal/mailer"
	"leave-report/internal/report"
	"leave-report/internal/shared/connection"

	"go.uber.org/zap"
)

// RunReport executes one report run and exits. The host scheduler (cron or
// similar) decides when it happens.
func RunReport() error {
	logger := zap.L().Named("app.report")

	cfg := config.Load()
	if cfg.EmailFrom == "" {
		return fmt.Errorf("REPORT_EMAIL_FROM is required")
	}

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

	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

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

	reportService := report.NewService(
		leave.NewRepository(gormDB),
		employee.NewRepository(gormDB),
		sender,
		cfg,
	)

	resp, err := reportService.Run(context.Background())
	if err != nil {
		return err
	}

	logger.Info("report run completed",
		zap.String("window_start", resp.WindowStart),
		zap.String("window_end", resp.WindowEnd),
		zap.Int("employees", resp.Employees),
		zap.Int("recipients", resp.Recipients),
		zap.Bool("sent", resp.Sent),
	)
	return nil
}
