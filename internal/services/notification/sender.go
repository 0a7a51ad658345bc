package notification

import "log/slog"

// Sender is the outbound notification contract. Delivery is best effort:
// no retry, no confirmation, no ordering relative to other notifications.
type Sender interface {
	Send(to, subject, body string) error
}

// LogSender writes notifications to the log instead of an email gateway.
// The real transport lives outside this service.
type LogSender struct {
	log *slog.Logger
}

func NewLogSender(log *slog.Logger) *LogSender {
	return &LogSender{log: log}
}

func (s *LogSender) Send(to, subject, body string) error {
	s.log.Info("email sent", "to", to, "subject", subject, "body", body)
	return nil
}
