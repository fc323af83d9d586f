package constants

// NATS subjects for domain events
const (
	SubjectUserLogin        = "auth.login"
	SubjectOTPIssued        = "auth.otp.issued"
	SubjectNotificationSent = "notification.sent"
)
