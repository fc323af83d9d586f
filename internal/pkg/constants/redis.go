package constants

// Redis key formats
const (
	// Auth service
	KeyUserOTP = "user:otp:%s" // Format: user:otp:{email_address}
)
