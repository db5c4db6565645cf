package mailer

import "context"

// Message is one outgoing email. All recipients receive a single delivery.
type Message struct {
	Subject  string
	HTMLBody string
	From     string
	To       []string
}

//go:generate mockgen -source=mailer.go -destination=mock/mailer_mock.go -package=mock
type Sender interface {
	Send(ctx context.Context, msg Message) error
}
