package models

// LoginRequest carries credential-check input.
type LoginRequest struct {
	EmailAddress string `json:"email_address" validate:"required"`
	Password     string `json:"password" validate:"required"`
}

// VerifyOTPRequest completes an OTP challenge.
type VerifyOTPRequest struct {
	EmailAddress string `json:"email_address" validate:"required"`
	OTP          string `json:"otp" validate:"required"`
}

// SendResetOTPRequest starts the password-reset flow.
type SendResetOTPRequest struct {
	EmailAddress string `json:"email_address" validate:"required"`
}

// ResetPasswordRequest terminates the password-reset flow.
type ResetPasswordRequest struct {
	EmailAddress string `json:"email_address" validate:"required"`
	NewPassword  string `json:"new_password" validate:"required"`
}

// ToggleSecurityCodeRequest flips the OTP requirement on an account.
type ToggleSecurityCodeRequest struct {
	IsSecurityCodeEnabled *bool `json:"is_security_code_enabled"`
}

// AuthResponse is returned once a login reaches the authenticated state.
type AuthResponse struct {
	Token        string `json:"auth_token"`
	UserID       string `json:"user_id"`
	FullName     string `json:"full_name"`
	EmailAddress string `json:"email_address"`
	Role         string `json:"role"`
	ExpiresAt    int64  `json:"expires_at"`
}

// LoginResult is the outcome of a credential check: either a token was
// issued directly, or an OTP challenge went out and the caller must
// complete verification before any token exists.
type LoginResult struct {
	ChallengeRequired bool          `json:"challenge_required"`
	Auth              *AuthResponse `json:"auth,omitempty"`
}

// AuthEvent is published on the message bus for login and OTP activity.
type AuthEvent struct {
	EmailAddress string `json:"email_address"`
	Kind         string `json:"kind"`
}
