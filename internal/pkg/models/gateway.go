package models

import (
	"time"

	"github.com/google/uuid"
)

// EmailGateway is an outbound SMTP configuration owned by a user. The
// platform holds at most one super-admin level gateway; every other user
// holds at most one of their own.
type EmailGateway struct {
	ID                  uuid.UUID  `json:"id" db:"id"`
	FromName            string     `json:"from_name" db:"from_name"`
	ReplyToEmailAddress string     `json:"reply_to_email_address" db:"reply_to_email_address"`
	SMTPServerHost      string     `json:"smtp_server_host" db:"smtp_server_host"`
	SMTPServerPort      int        `json:"smtp_server_port" db:"smtp_server_port"`
	SMTPSecurity        string     `json:"smtp_security" db:"smtp_security"`
	SMTPUsername        string     `json:"smtp_username" db:"smtp_username"`
	SMTPPassword        string     `json:"-" db:"smtp_password"`
	UserID              *uuid.UUID `json:"user_id,omitempty" db:"user_id"`
	IsActive            bool       `json:"is_active" db:"is_active"`
	CreatedBySuperAdmin bool       `json:"created_by_super_admin" db:"created_by_super_admin"`
	CreatedAt           time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at" db:"updated_at"`
}

// SMTPSecurity modes accepted on a gateway.
const (
	SMTPSecuritySSL      = "SSL"
	SMTPSecurityStartTLS = "STARTTLS"
	SMTPSecurityNone     = "NONE"
)

// SMTPConfig is a resolved transport configuration, either taken from a
// tenant gateway or from the deployment-wide default. The dispatcher
// receives the default explicitly at construction time; it never reads
// the environment at call time.
type SMTPConfig struct {
	Host     string
	Port     int
	Security string
	Username string
	Password string
	FromName string
}

// ConfigFromGateway maps a stored gateway onto a dial configuration.
func ConfigFromGateway(gw *EmailGateway) SMTPConfig {
	port := gw.SMTPServerPort
	if port == 0 {
		port = 465
	}
	return SMTPConfig{
		Host:     gw.SMTPServerHost,
		Port:     port,
		Security: gw.SMTPSecurity,
		Username: gw.SMTPUsername,
		Password: gw.SMTPPassword,
		FromName: gw.FromName,
	}
}
