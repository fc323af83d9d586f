package constants

// Stable user-facing message constants. Responses never carry anything
// beyond these; internal error detail stays in the logs.
const (
	// Validation
	MsgEmptyRequiredFields = "Required fields are empty."
	MsgInvalidEmail        = "The email address provided is not valid."
	MsgInvalidPassword     = "Password must contain at least 8 characters, including uppercase, lowercase, digit & special char."
	MsgInvalidTemplateType = "Email template type is invalid."
	MsgInvalidInput        = "Invalid input. Please provide valid data."

	// Authentication
	MsgUserNotFound      = "No user found with this email address."
	MsgInactiveAccount   = "Your account is deactivated, please contact your admin."
	MsgIncorrectPassword = "Incorrect password."
	MsgOTPInvalid        = "OTP is invalid."
	MsgOTPExpired        = "OTP has expired."
	MsgOTPSent           = "OTP sent successfully."
	MsgOTPVerified       = "OTP verified successfully."
	MsgLoggedIn          = "Logged in successfully."
	MsgPasswordReset     = "Password reset successfully."
	MsgUnauthorized      = "You are not authorized to perform this action."
	MsgNotCompanyMember  = "User does not belong to your company."

	// Email gateway
	MsgGatewayNotFound      = "Email gateway not found."
	MsgGatewayDeactivated   = "Email gateway is deactivated."
	MsgGatewayAlreadyExists = "Email gateway already exists."
	MsgInvalidSMTP          = "Invalid SMTP credentials provided."
	MsgGatewayError         = "Error occurred while processing email gateway."

	// Email template
	MsgTemplateNotFound      = "Email template not found."
	MsgTemplateAlreadyExists = "Email template of this type already exists."

	// Company
	MsgCompanyNotFound  = "Company not found."
	MsgDuplicateCompany = "Company with this email already exists."

	// General
	MsgServerError = "Something went wrong on the server. Please try again later."
	MsgOTPSendFail = "Failed to send OTP. Please try again later."
	MsgNotFound    = "Not Found."
	MsgCreated     = "Created successfully."
	MsgUpdated     = "Updated successfully."
	MsgDeleted     = "Deleted successfully."
	MsgRetrieved   = "Retrieved successfully."
)
