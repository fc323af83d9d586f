package models

import (
	"time"

	"github.com/google/uuid"
)

// Role is the closed set of account kinds. A single users table carries
// every role; role-specific fields stay nullable instead of living in
// separate tables.
type Role string

const (
	RoleSuperAdmin Role = "SUPER_ADMIN"
	RoleCompany    Role = "COMPANY"
	RoleEmployee   Role = "EMPLOYEE"
	RoleViewer     Role = "VIEWER"
)

// User represents an account in the system (super admin, company or employee)
type User struct {
	ID                    uuid.UUID  `json:"id" db:"id"`
	FullName              string     `json:"full_name" db:"full_name"`
	CompanyName           string     `json:"company_name,omitempty" db:"company_name"`
	EmailAddress          string     `json:"email_address" db:"email_address"`
	Password              string     `json:"-" db:"password"`
	PhoneNo               string     `json:"phone_no" db:"phone_no"`
	City                  string     `json:"city,omitempty" db:"city"`
	Role                  Role       `json:"role" db:"role"`
	CompanyID             *uuid.UUID `json:"company_id,omitempty" db:"company_id"`
	PackageID             *uuid.UUID `json:"package_id,omitempty" db:"package_id"`
	IsActive              bool       `json:"is_active" db:"is_active"`
	IsSecurityCodeEnabled bool       `json:"is_security_code_enabled" db:"is_security_code_enabled"`
	CreatedAt             time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt             time.Time  `json:"updated_at" db:"updated_at"`
}

// DisplayName returns the name used when addressing the user in email
// content. Companies often have no contact full name set, so the company
// name is the fallback.
func (u *User) DisplayName() string {
	if u.FullName != "" {
		return u.FullName
	}
	return u.CompanyName
}

// SubscriptionPackage is the subscription plan a company is on. Only the
// name is needed by the notification pipeline; plan management itself
// lives elsewhere.
type SubscriptionPackage struct {
	ID          uuid.UUID `json:"id" db:"id"`
	PackageName string    `json:"package_name" db:"package_name"`
	Price       float64   `json:"price" db:"price"`
	Duration    string    `json:"duration" db:"duration"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}
