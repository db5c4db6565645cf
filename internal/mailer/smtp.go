package mailer

import (
	"context"
	"time"

	"github.com/wneessen/go-mail"
	"go.uber.org/zap"
)

type SMTPOptions struct {
	Host        string
	Port        int
	Username    string
	Password    string
	DialTimeout time.Duration
}

type smtpSender struct {
	client *mail.Client
	logger *zap.Logger
}

func NewSMTPSender(opts SMTPOptions, logger ...*zap.Logger) (Sender, error) {
	l := zap.L().Named("mailer.smtp")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("mailer.smtp")
	}

	clientOpts := []mail.Option{
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithSSL(),
		mail.WithPort(opts.Port),
		mail.WithUsername(opts.Username),
		mail.WithPassword(opts.Password),
	}
	if opts.DialTimeout > 0 {
		clientOpts = append(clientOpts, mail.WithTimeout(opts.DialTimeout))
	}

	client, err := mail.NewClient(opts.Host, clientOpts...)
	if err != nil {
		return nil, err
	}

	return &smtpSender{client: client, logger: l}, nil
}

func (s *smtpSender) Send(ctx context.Context, msg Message) error {
	m, err := buildMsg(msg)
	if err != nil {
		s.logger.Error("build mail message failed", zap.Error(err))
		return err
	}

	if err := s.client.DialAndSendWithContext(ctx, m); err != nil {
		s.logger.Error("smtp send failed",
			zap.String("subject", msg.Subject),
			zap.Int("recipients", len(msg.To)),
			zap.Error(err),
		)
		return err
	}

	s.logger.Info("mail sent",
		zap.String("subject", msg.Subject),
		zap.Int("recipients", len(msg.To)),
	)
	return nil
}

func buildMsg(msg Message) (*mail.Msg, error) {
	m := mail.NewMsg()
	if err := m.From(msg.From); err != nil {
		return nil, err
	}
	if err := m.To(msg.To...); err != nil {
		return nil, err
	}
	m.Subject(msg.Subject)
	m.SetBodyString(mail.TypeTextHTML, msg.HTMLBody)
	return m, nil
}
