package models

import "errors"

// Domain failures as stable sentinels. Each component returns these up
// to its caller; only the HTTP layer turns them into status codes and
// user-facing message constants. None of them is fatal to the process.
var (
	// Validation
	ErrEmptyRequiredFields = errors.New("required fields are empty")
	ErrInvalidEmail        = errors.New("invalid email address")
	ErrWeakPassword        = errors.New("password does not meet strength requirements")
	ErrInvalidTemplateType = errors.New("invalid email template type")

	// Authentication
	ErrUserNotFound      = errors.New("user not found")
	ErrAccountInactive   = errors.New("account is deactivated")
	ErrIncorrectPassword = errors.New("incorrect password")
	ErrOTPInvalid        = errors.New("otp is invalid")
	ErrOTPExpired        = errors.New("otp has expired")
	ErrForbidden         = errors.New("not allowed to perform this action")
	ErrNotCompanyMember  = errors.New("user does not belong to this company")

	// Conflicts
	ErrUserAlreadyExists     = errors.New("user already exists")
	ErrGatewayAlreadyExists  = errors.New("email gateway already exists")
	ErrTemplateAlreadyExists = errors.New("email template of this type already exists")

	// Notification pipeline
	ErrNoGatewayUser      = errors.New("no gateway user found for this role")
	ErrGatewayNotFound    = errors.New("email gateway not found")
	ErrGatewayDeactivated = errors.New("email gateway is deactivated")
	ErrTemplateNotFound   = errors.New("email template not found")
	ErrSMTPCredentials    = errors.New("invalid smtp credentials")
)
