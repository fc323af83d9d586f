package gateway

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net/textproto"
	"strings"

	mail "github.com/go-mail/mail"
	"github.com/google/uuid"

	"github.com/altostack/tenantdesk/internal/pkg/logger"
	"github.com/altostack/tenantdesk/internal/pkg/models"
)

// SMTPGateway dispatches email through tenant gateways, falling back to
// the deployment-wide default transport when a tenant has no usable
// gateway of their own. The default is injected here once; nothing in
// the send path reads the environment.
type SMTPGateway struct {
	defaultCfg models.SMTPDefaultConfig
}

// NewSMTPGateway creates a new SMTP gateway instance
func NewSMTPGateway(defaultCfg models.SMTPDefaultConfig) *SMTPGateway {
	return &SMTPGateway{defaultCfg: defaultCfg}
}

// Send transmits one message. When gw is nil or inactive the default
// transport is used so critical mail still goes out with a broken
// tenant configuration. Returns the assigned message identifier.
func (g *SMTPGateway) Send(ctx context.Context, gw *models.EmailGateway, subject, htmlBody, recipient string) (string, error) {
	cfg := g.pickConfig(gw)

	messageID := fmt.Sprintf("<%s@%s>", uuid.New().String(), cfg.Host)

	m := mail.NewMessage()
	m.SetHeader("From", m.FormatAddress(cfg.Username, cfg.FromName))
	m.SetHeader("To", recipient)
	m.SetHeader("Subject", subject)
	m.SetHeader("Message-ID", messageID)
	m.SetBody("text/html", htmlBody)

	d := dialer(cfg)

	// Scoped session: closed after the send attempt either way.
	s, err := d.Dial()
	if err != nil {
		return "", classifySMTPError(err)
	}
	defer s.Close()

	if err := mail.Send(s, m); err != nil {
		return "", classifySMTPError(err)
	}

	logger.Debug("Email dispatched",
		logger.String("host", cfg.Host),
		logger.String("to", recipient),
		logger.String("message_id", messageID))

	return messageID, nil
}

// VerifyCredentials opens and closes a session against the given
// configuration. Used when a gateway is provisioned so bad credentials
// are rejected before they are stored.
func (g *SMTPGateway) VerifyCredentials(ctx context.Context, cfg models.SMTPConfig) error {
	s, err := dialer(cfg).Dial()
	if err != nil {
		return classifySMTPError(err)
	}
	return s.Close()
}

// pickConfig resolves which transport to dial.
func (g *SMTPGateway) pickConfig(gw *models.EmailGateway) models.SMTPConfig {
	if gw != nil && gw.IsActive {
		return models.ConfigFromGateway(gw)
	}
	return models.SMTPConfig{
		Host:     g.defaultCfg.Host,
		Port:     g.defaultCfg.Port,
		Security: g.defaultCfg.Security,
		Username: g.defaultCfg.Username,
		Password: g.defaultCfg.Password,
		FromName: g.defaultCfg.FromName,
	}
}

func dialer(cfg models.SMTPConfig) *mail.Dialer {
	d := mail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	d.TLSConfig = &tls.Config{ServerName: cfg.Host}

	switch cfg.Security {
	case models.SMTPSecuritySSL:
		d.SSL = true
	case models.SMTPSecurityNone:
		d.StartTLSPolicy = mail.NoStartTLS
	default:
		// STARTTLS negotiated opportunistically
	}
	return d
}

// classifySMTPError surfaces authentication rejections (reply codes 535
// and 534) as a distinct error so callers can tell configuration
// problems apart from transient network faults.
func classifySMTPError(err error) error {
	var tpErr *textproto.Error
	if errors.As(err, &tpErr) && (tpErr.Code == 535 || tpErr.Code == 534) {
		return fmt.Errorf("%w: %v", models.ErrSMTPCredentials, err)
	}
	if strings.Contains(err.Error(), "535 ") {
		return fmt.Errorf("%w: %v", models.ErrSMTPCredentials, err)
	}
	return fmt.Errorf("smtp send failed: %w", err)
}
