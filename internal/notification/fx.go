package notification

import (
	"github.com/opusline/royaltyd/internal/config"
	"github.com/opusline/royaltyd/internal/notification/domain"
	"github.com/opusline/royaltyd/internal/notification/provider"
	"github.com/opusline/royaltyd/internal/notification/service"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

func ProvideFromConfig(cfg config.Config, log *zap.Logger) domain.Provider {
	switch cfg.NotificationProvider {
	case "smtp":
		return provider.NewSMTP(provider.SMTPConfig{
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			Username: cfg.SMTPUsername,
			Password: cfg.SMTPPassword,
			From:     cfg.SMTPFrom,
		})
	default:
		return provider.NewLog(log)
	}
}

var Module = fx.Module("notification.service",
	fx.Provide(ProvideFromConfig),
	fx.Provide(service.New),
)
