package provider

import (
	"context"

	"github.com/opusline/royaltyd/internal/notification/domain"
	"go.uber.org/zap"
)

// LogProvider writes notifications to the structured log. Default delivery
// channel; real push/email/websocket delivery sits behind the same interface
// outside this core.
type LogProvider struct {
	log *zap.Logger
}

func NewLog(log *zap.Logger) *LogProvider {
	return &LogProvider{log: log.Named("notification.log")}
}

func (p *LogProvider) Send(ctx context.Context, n domain.Notification) error {
	_ = ctx
	p.log.Info("notification",
		zap.String("recipient_id", n.RecipientID.String()),
		zap.String("role", string(n.Role)),
		zap.String("kind", string(n.Kind)),
		zap.String("message", n.Message),
	)
	return nil
}

// NoOpProvider drops every notification. Used in tests.
type NoOpProvider struct{}

func (p *NoOpProvider) Send(ctx context.Context, n domain.Notification) error {
	return nil
}
