package provider

import (
	"context"
	"fmt"
	"net/smtp"

	"github.com/opusline/royaltyd/internal/notification/domain"
)

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// SMTPProvider delivers notifications as plain-text mail. Recipient ids are
// resolved to addresses as "<id>@" the configured domain by the deployment's
// mail router.
type SMTPProvider struct {
	cfg SMTPConfig
}

func NewSMTP(cfg SMTPConfig) *SMTPProvider {
	return &SMTPProvider{cfg: cfg}
}

func (p *SMTPProvider) Send(ctx context.Context, n domain.Notification) error {
	_ = ctx
	auth := smtp.PlainAuth("", p.cfg.Username, p.cfg.Password, p.cfg.Host)
	addr := fmt.Sprintf("%s:%d", p.cfg.Host, p.cfg.Port)

	to := fmt.Sprintf("%s@%s", n.RecipientID.String(), p.cfg.Host)
	subject := fmt.Sprintf("royaltyd: %s", n.Kind)
	msg := []byte(fmt.Sprintf("To: %s\r\nSubject: %s\r\n\r\n%s", to, subject, n.Message))

	return smtp.SendMail(addr, auth, p.cfg.From, []string{to}, msg)
}
