// Package constants provides shared constant values used throughout the application.
//
// The errorcodes.go file defines constants related to error handling, categorization,
// and messaging. The AUTH_00x codes form the stable machine-readable contract that
// clients key on; changing a code is a breaking API change. User-facing messages are
// crafted to be informative without revealing implementation details that could aid
// an attacker.
package constants

// Authentication Error Codes define the stable machine-readable codes returned for
// authentication failures. Expired and tampered tokens are distinguished internally
// for audit logging but share CodeInvalidToken externally.
const (
	// CodeMissingToken is returned when no bearer credentials were supplied.
	CodeMissingToken = "AUTH_001"

	// CodeUserNotFound is returned when the token's subject has no matching identity.
	CodeUserNotFound = "AUTH_002"

	// CodeAccountInactive is returned when the identity exists but is suspended.
	CodeAccountInactive = "AUTH_003"

	// CodeInvalidToken is returned for malformed, tampered, or expired tokens.
	CodeInvalidToken = "AUTH_004"

	// CodeAuthInternalError is returned when authentication fails for an internal reason.
	CodeAuthInternalError = "AUTH_006"
)

// General Error Codes define machine-readable codes for non-authentication failures.
const (
	// CodeBadRequest indicates a malformed or invalid request.
	CodeBadRequest = "bad_request"

	// CodeValidationError indicates that input validation failed.
	CodeValidationError = "validation_error"

	// CodeNotFound indicates that a requested resource could not be found.
	CodeNotFound = "not_found"

	// CodeDuplicateResource indicates an attempt to create a resource that already exists.
	CodeDuplicateResource = "duplicate_resource"

	// CodeInvalidCredentials indicates that login credentials are incorrect.
	CodeInvalidCredentials = "invalid_credentials"

	// CodeUnauthorized indicates that authentication is required.
	CodeUnauthorized = "unauthorized"

	// CodeForbidden indicates that the requester lacks sufficient permissions.
	CodeForbidden = "forbidden"

	// CodeMethodNotAllowed indicates an unsupported HTTP method.
	CodeMethodNotAllowed = "method_not_allowed"

	// CodeConflict indicates a state conflict.
	CodeConflict = "conflict"

	// CodeInternalError indicates an unexpected internal error.
	CodeInternalError = "internal_error"
)

// User-Facing Error Messages define standardized messages that can be safely presented
// to clients.
const (
	// MsgAuthRequired indicates that the user must authenticate to access the resource.
	MsgAuthRequired = "Authentication required"

	// MsgInvalidToken is the generic message for malformed or tampered tokens.
	MsgInvalidToken = "Invalid token"

	// MsgTokenExpired indicates that the presented token is past its expiry.
	MsgTokenExpired = "Token has expired"

	// MsgUserNotFound indicates that the token did not resolve to a known account.
	MsgUserNotFound = "Invalid token - user not found"

	// MsgAccountInactive indicates that the account is suspended or deactivated.
	MsgAccountInactive = "Account is suspended or deactivated"

	// MsgInvalidCredentials indicates that login credentials are incorrect.
	MsgInvalidCredentials = "Invalid email or password"

	// MsgAccessDenied indicates that the user lacks permission for the requested action.
	MsgAccessDenied = "You don't have permission to access this resource"

	// MsgInternalServerError provides a generic server error message.
	MsgInternalServerError = "An internal server error occurred"

	// MsgResourceNotFound provides a generic not-found message.
	MsgResourceNotFound = "The requested resource could not be found"

	// MsgMethodNotAllowed indicates an unsupported HTTP method.
	MsgMethodNotAllowed = "Method not allowed"

	// MsgRefreshTokenRequired indicates that the refresh endpoint was called without a token.
	MsgRefreshTokenRequired = "Refresh token is required"

	// MsgEmptyRequestBody indicates a request with no body where one was expected.
	MsgEmptyRequestBody = "Request body must not be empty"

	// MsgMalformedJSON indicates a request body that could not be parsed.
	MsgMalformedJSON = "Request body contains malformed JSON"

	// MsgRequestBodyTooLarge indicates a request body exceeding the configured limit.
	MsgRequestBodyTooLarge = "Request body must not be larger than 1MB"
)
