package report

import (
	"context"
	"time"

	"leave-report/internal/config"
	"leave-report/internal/employee"
	"leave-report/internal/leave"
	"leave-report/internal/mailer"
	reporterrors "leave-report/internal/report/errors"
	"leave-report/internal/workday"

	"go.uber.org/zap"
)

//go:generate mockgen -source=report_service.go -destination=mock/report_service_mock.go -package=mock
type Service interface {
	Run(ctx context.Context) (RunResponse, error)
	Preview(ctx context.Context, daysRange int) (PreviewResponse, error)
}

type service struct {
	leaves    leave.Repository
	employees employee.Repository
	sender    mailer.Sender
	cfg       *config.Config
	now       func() time.Time
	logger    *zap.Logger
}

func NewService(
	leaves leave.Repository,
	employees employee.Repository,
	sender mailer.Sender,
	cfg *config.Config,
	logger ...*zap.Logger,
) Service {
	return NewServiceWithClock(leaves, employees, sender, cfg, time.Now, logger...)
}

// NewServiceWithClock injects the "today" source, keeping runs reproducible
// in tests.
func NewServiceWithClock(
	leaves leave.Repository,
	employees employee.Repository,
	sender mailer.Sender,
	cfg *config.Config,
	now func() time.Time,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("report.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("report.service")
	}
	return &service{
		leaves:    leaves,
		employees: employees,
		sender:    sender,
		cfg:       cfg,
		now:       now,
		logger:    l,
	}
}

func (s *service) Run(ctx context.Context) (RunResponse, error) {
	if s.cfg.EmailFrom == "" {
		s.logger.Warn("run refused, sender address not configured")
		return RunResponse{}, reporterrors.ErrSenderNotConfigured
	}

	doc, sched, win, err := s.build(ctx, s.cfg.DaysRange)
	if err != nil {
		return RunResponse{}, err
	}

	recipients, err := s.resolveRecipients(ctx)
	if err != nil {
		s.logger.Error("resolve recipients failed", zap.Error(err))
		return RunResponse{}, err
	}

	resp := RunResponse{
		Subject:     doc.Subject,
		WindowStart: win.StartLabel(),
		WindowEnd:   win.EndLabel(),
		Employees:   len(sched.Employees),
		Recipients:  len(recipients),
	}

	if len(recipients) == 0 {
		s.logger.Info("no recipients, skipping send", zap.String("subject", doc.Subject))
		return resp, nil
	}

	if err := s.sender.Send(ctx, mailer.Message{
		Subject:  doc.Subject,
		HTMLBody: doc.HTML,
		From:     s.cfg.EmailFrom,
		To:       recipients,
	}); err != nil {
		s.logger.Error("report dispatch failed", zap.Error(err))
		return RunResponse{}, err
	}

	resp.Sent = true
	s.logger.Info("report run finished",
		zap.String("window_start", resp.WindowStart),
		zap.String("window_end", resp.WindowEnd),
		zap.Int("employees", resp.Employees),
		zap.Int("recipients", resp.Recipients),
	)
	return resp, nil
}

func (s *service) Preview(ctx context.Context, daysRange int) (PreviewResponse, error) {
	if daysRange == 0 {
		daysRange = s.cfg.DaysRange
	}
	if daysRange < 0 {
		return PreviewResponse{}, reporterrors.ErrInvalidDaysRange
	}

	doc, sched, win, err := s.build(ctx, daysRange)
	if err != nil {
		return PreviewResponse{}, err
	}

	return PreviewResponse{
		Subject:      doc.Subject,
		WindowStart:  win.StartLabel(),
		WindowEnd:    win.EndLabel(),
		BusinessDays: len(win.Days),
		Employees:    len(sched.Employees),
		HTML:         doc.HTML,
	}, nil
}

// build runs the shared part of the pipeline: window, fetch, fold, render.
func (s *service) build(ctx context.Context, daysRange int) (Document, Schedule, workday.Window, error) {
	today := workday.DateOnly(s.now())
	win := workday.BuildWindow(today, daysRange, s.cfg.WeekdayNames)

	s.logger.Debug("report window built",
		zap.String("window_start", win.StartLabel()),
		zap.String("window_end", win.EndLabel()),
		zap.Int("business_days", len(win.Days)),
	)

	records, err := s.leaves.FindApprovedOverlapping(ctx, win.Start, win.End)
	if err != nil {
		s.logger.Error("fetch approved leaves failed", zap.Error(err))
		return Document{}, Schedule{}, win, err
	}

	sched := Aggregate(win, records, AggregateOptions{
		RemoteCategory: s.cfg.RemoteCategory,
		NameSuffixTag:  s.cfg.NameSuffixTag,
	})

	return BuildDocument(sched, win), sched, win, nil
}

// resolveRecipients returns the distinct addresses of active employees with
// an email set, preserving the repository order.
func (s *service) resolveRecipients(ctx context.Context) ([]string, error) {
	employees, err := s.employees.FindActiveWithEmail(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(employees))
	addresses := make([]string, 0, len(employees))
	for _, e := range employees {
		if e.Email == "" || seen[e.Email] {
			continue
		}
		seen[e.Email] = true
		addresses = append(addresses, e.Email)
	}
	return addresses, nil
}
