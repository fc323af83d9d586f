package models

import (
	"time"
)

// OTPPurpose distinguishes why a one-time passcode was issued. A code
// issued for one purpose cannot complete the other flow.
type OTPPurpose string

const (
	OTPPurposeLogin         OTPPurpose = "LOGIN"
	OTPPurposePasswordReset OTPPurpose = "PASSWORD_RESET"
)

// OTPTTL is the single validity window for issued passcodes. Both the
// store-level automatic purge and the explicit verification check use
// this constant; they must never diverge.
const OTPTTL = 120 * time.Second

// OTP represents a one-time passcode issued to an email address
type OTP struct {
	EmailAddress string     `json:"email_address"`
	Purpose      OTPPurpose `json:"purpose"`
	Code         string     `json:"code"`
	CreatedAt    time.Time  `json:"created_at"`
}

// Expired reports whether the passcode has outlived its validity window
// at the given instant.
func (o *OTP) Expired(now time.Time) bool {
	return now.Sub(o.CreatedAt) > OTPTTL
}

// OTPVerifyResult is the outcome of a verification attempt.
type OTPVerifyResult int

const (
	// OTPNotFound means no passcode matched the email/code pair: the code
	// is wrong, was never issued, or was already consumed or purged.
	OTPNotFound OTPVerifyResult = iota
	// OTPExpired means the passcode matched but its window had elapsed.
	// The record is deleted as a side effect.
	OTPExpired
	// OTPValid means the passcode matched within its window. The record
	// is deleted as a side effect; a code never validates twice.
	OTPValid
)

func (r OTPVerifyResult) String() string {
	switch r {
	case OTPExpired:
		return "expired"
	case OTPValid:
		return "valid"
	default:
		return "not_found"
	}
}
