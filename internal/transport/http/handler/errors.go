package handler

// Wire error codes. The message strings are intentionally generic; internal
// error detail stays in the logs.
const (
	codeValidationError = "VALIDATION_ERROR"
	codeDuplicateEmail  = "DUPLICATE_EMAIL"
	codeEmailNotFound   = "EMAIL_NOT_FOUND"
	codeBadPassword     = "BAD_PASSWORD"
	codeInvalidToken    = "INVALID_TOKEN"
	codeInternalError   = "INTERNAL_ERROR"

	msgValidationError = "Required field missing or malformed"
	msgDuplicateEmail  = "Email is already registered"
	msgEmailNotFound   = "Email not found"
	msgBadPassword     = "Incorrect password"
	msgInvalidToken    = "Invalid token"
	msgInternalError   = "Internal server error"
)
