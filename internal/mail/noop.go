package mail

import (
	"context"
	"log/slog"
)

// NoopSender logs sends instead of delivering them. Used in development
// and whenever no provider API key is configured.
type NoopSender struct{}

func NewNoopSender() *NoopSender {
	return &NoopSender{}
}

func (s *NoopSender) Send(_ context.Context, req SendRequest) error {
	slog.Info("email send skipped, no provider configured", "to", req.To, "subject", req.Subject)
	return nil
}
