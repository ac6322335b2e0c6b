package service

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"github.com/opusline/royaltyd/internal/identity"
	"github.com/opusline/royaltyd/internal/notification/domain"
	obsmetrics "github.com/opusline/royaltyd/internal/observability/metrics"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type Params struct {
	fx.In

	Log      *zap.Logger
	Provider domain.Provider
	Metrics  *obsmetrics.Metrics `optional:"true"`
}

type Service struct {
	log      *zap.Logger
	provider domain.Provider
	metrics  *obsmetrics.Metrics
}

func New(p Params) domain.Service {
	return &Service{
		log:      p.Log.Named("notification.service"),
		provider: p.Provider,
		metrics:  p.Metrics,
	}
}

// Notify delivers best-effort. A provider failure is logged and swallowed;
// the mutation that triggered the notification must never roll back on it.
func (s *Service) Notify(ctx context.Context, recipientID snowflake.ID, role identity.Role, kind domain.Kind, message string) {
	if recipientID == 0 {
		return
	}

	err := s.provider.Send(ctx, domain.Notification{
		RecipientID: recipientID,
		Role:        role,
		Kind:        kind,
		Message:     message,
	})
	if err != nil {
		s.metrics.RecordNotificationFailure()
		s.log.Warn("notification delivery failed",
			zap.String("recipient_id", recipientID.String()),
			zap.String("kind", string(kind)),
			zap.Error(err),
		)
	}
}
