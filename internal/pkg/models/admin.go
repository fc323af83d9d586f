package models

import "github.com/google/uuid"

// EmailGatewayRequest carries gateway create/update input. The password
// arrives in the request but never leaves in a response.
type EmailGatewayRequest struct {
	FromName            string `json:"from_name" validate:"required"`
	ReplyToEmailAddress string `json:"reply_to_email_address" validate:"required"`
	SMTPServerHost      string `json:"smtp_server_host" validate:"required"`
	SMTPServerPort      int    `json:"smtp_server_port"`
	SMTPSecurity        string `json:"smtp_security"`
	SMTPUsername        string `json:"smtp_username" validate:"required"`
	SMTPPassword        string `json:"smtp_password" validate:"required"`
}

// EmailTemplateRequest carries template create/update input.
type EmailTemplateRequest struct {
	Subject  string       `json:"subject" validate:"required"`
	Content  string       `json:"content" validate:"required"`
	Type     TemplateType `json:"type" validate:"required"`
	IsShared bool         `json:"is_shared"`
}

// CreateCompanyRequest provisions a company account. The initial
// password is generated server-side and mailed out, never returned.
type CreateCompanyRequest struct {
	CompanyName  string     `json:"company_name" validate:"required"`
	FullName     string     `json:"full_name"`
	EmailAddress string     `json:"email_address" validate:"required"`
	PhoneNo      string     `json:"phone_no"`
	City         string     `json:"city"`
	PackageID    *uuid.UUID `json:"package_id,omitempty"`
}

// SetStatusRequest flips the active flag on a resource.
type SetStatusRequest struct {
	IsActive *bool `json:"is_active"`
}
