package models

import (
	"time"

	"github.com/google/uuid"
)

// TemplateType is the enumerated category of notification a template
// serves. Each owning scope holds at most one template per type.
type TemplateType string

const (
	TemplateAccountCreation    TemplateType = "ACCOUNT_CREATION"
	TemplateAccountDeletion    TemplateType = "ACCOUNT_DELETION"
	TemplateLoginAuthorization TemplateType = "ACCOUNT_AUTHORIZATION"
	TemplatePasswordReset      TemplateType = "PASSWORD_RESET"
)

// ValidTemplateType reports whether t is one of the known kinds.
func ValidTemplateType(t TemplateType) bool {
	switch t {
	case TemplateAccountCreation, TemplateAccountDeletion,
		TemplateLoginAuthorization, TemplatePasswordReset:
		return true
	}
	return false
}

// EmailTemplate holds the subject and body markup for one notification
// kind. Bodies use {{placeholder}} substitution markup; rendering is
// plain string substitution, unknown placeholders come out empty.
type EmailTemplate struct {
	ID                  uuid.UUID    `json:"id" db:"id"`
	Subject             string       `json:"subject" db:"subject"`
	Content             string       `json:"content" db:"content"`
	Type                TemplateType `json:"type" db:"type"`
	UserID              *uuid.UUID   `json:"user_id,omitempty" db:"user_id"`
	CreatedBySuperAdmin bool         `json:"created_by_super_admin" db:"created_by_super_admin"`
	IsActive            bool         `json:"is_active" db:"is_active"`
	IsShared            bool         `json:"is_shared" db:"is_shared"`
	CreatedAt           time.Time    `json:"created_at" db:"created_at"`
	UpdatedAt           time.Time    `json:"updated_at" db:"updated_at"`
}
