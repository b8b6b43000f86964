// Package constants provides shared constant values used throughout the application.
//
// The errorcodes.go file defines constants related to error handling, categorization,
// and messaging. User-facing messages here are the exact strings the screens and
// the logging function return, so they double as the response contract.
package constants

// Error Types define the categories of errors that can occur in the application.
const (
	// ErrorBadRequest indicates that the request was malformed or invalid.
	ErrorBadRequest = "invalid request"

	// ErrorInternalServer indicates an unexpected internal error.
	ErrorInternalServer = "internal server error"

	// ErrorValidation indicates that input validation failed.
	ErrorValidation = "validation error"

	// ErrorUpstream indicates that a collaborator call failed.
	ErrorUpstream = "upstream call failed"
)

// User-Facing Error Messages define standardized messages that can be safely presented to users.
const (
	// MsgPasswordsDoNotMatch is reported next to the confirmation field.
	MsgPasswordsDoNotMatch = "Passwords do not match"

	// MsgPasswordRequired is reported when the new password is empty.
	MsgPasswordRequired = "Password is required"

	// MsgPasswordTooWeak is reported when strength enforcement is on and a requirement is unmet.
	MsgPasswordTooWeak = "Password must contain at least 8 characters, a number, an uppercase letter and a special character"

	// MsgInternalServerError provides a generic server error message.
	MsgInternalServerError = "An internal server error occurred"

	// MsgRequestBodyTooLarge indicates that the request payload exceeds size limits.
	MsgRequestBodyTooLarge = "Request body too large"

	// MsgEmptyRequestBody indicates that a request body was expected but not provided.
	MsgEmptyRequestBody = "Request body must not be empty"

	// MsgMalformedJSON indicates that the request body contains invalid JSON.
	MsgMalformedJSON = "Request body contains malformed JSON"

	// MsgMalformedForm indicates that a form submission could not be parsed.
	MsgMalformedForm = "Request body contains a malformed form"

	// MsgResourceNotFound indicates that the requested resource does not exist.
	MsgResourceNotFound = "The requested resource could not be found"

	// MsgMethodNotAllowed indicates that the HTTP method is not supported for the endpoint.
	MsgMethodNotAllowed = "This method is not allowed for this resource"

	// MsgValidationFailed heads the details map of a validation error response.
	MsgValidationFailed = "Validation failed"
)

// Logging Function Contract define the fixed bodies of the password-reset logging function.
const (
	// LogFunctionPreflightBody is the body of the OPTIONS response.
	LogFunctionPreflightBody = "ok"

	// LogFunctionStatusLogged is the status value of a successful log call.
	LogFunctionStatusLogged = "logged"

	// MsgFailedToLogPasswordReset is the error value of a failed log call.
	MsgFailedToLogPasswordReset = "Failed to log password reset"

	// MsgFunctionNon2xx is used when the function fails without an error body.
	MsgFunctionNon2xx = "Edge Function returned a non-2xx status code"

	// MsgFunctionUnreachable is used when the function could not be reached at all.
	MsgFunctionUnreachable = "Failed to send a request to the Edge Function"
)

// Logger Constants define values used for structured logging.
const (
	// LogCategoryReset is the log category for password-reset events.
	LogCategoryReset = "password_reset"

	// LogEventResetLogged is the message written by the logging function.
	LogEventResetLogged = "Password reset logged"

	// LogEventResetLogFailed is the message written when the logging function cannot decode a request.
	LogEventResetLogFailed = "Error logging password reset"

	// LogRedactedValue is used to replace sensitive values in logs.
	LogRedactedValue = "[REDACTED]"
)
