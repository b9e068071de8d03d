// Package constants provides shared constant values used throughout the application.
//
// The httpcodes.go file defines HTTP-related constants such as status codes,
// headers, and content types. These constants ensure consistent HTTP
// communication patterns across the application. The security header values
// implement recommended web security practices.
package constants

// HTTP Status Codes define the standard HTTP response status codes used in the application.
const (
	// StatusOK indicates that the request has succeeded.
	StatusOK = 200

	// StatusCreated indicates that the request has succeeded and a new resource has been created.
	StatusCreated = 201

	// StatusNoContent indicates that the request has succeeded but there is no content to send.
	StatusNoContent = 204

	// StatusBadRequest indicates that the server cannot process the request due to client error.
	StatusBadRequest = 400

	// StatusUnauthorized indicates that the request lacks valid authentication credentials.
	StatusUnauthorized = 401

	// StatusForbidden indicates that the server understood the request but refuses to authorize it.
	StatusForbidden = 403

	// StatusNotFound indicates that the server cannot find the requested resource.
	StatusNotFound = 404

	// StatusMethodNotAllowed indicates that the request method is not supported for the requested resource.
	StatusMethodNotAllowed = 405

	// StatusConflict indicates that the request conflicts with the current state of the server.
	StatusConflict = 409

	// StatusInternalServerError indicates that the server encountered an unexpected condition.
	StatusInternalServerError = 500
)

// HTTP Response Flags used by the standard response envelope.
const (
	// ResponseSuccess indicates that the request was processed successfully.
	ResponseSuccess = true

	// ResponseFailure indicates that the request processing failed.
	ResponseFailure = false
)

// HTTP Headers define the standard header names used by the application.
const (
	// HeaderAuthorization is the header carrying bearer credentials.
	HeaderAuthorization = "Authorization"

	// HeaderContentType specifies the media type of the request or response body.
	HeaderContentType = "Content-Type"

	// HeaderXRequestID carries a unique identifier for request correlation.
	HeaderXRequestID = "X-Request-ID"

	// HeaderUserAgent identifies the client software making the request.
	HeaderUserAgent = "User-Agent"

	// HeaderXContentTypeOptions prevents MIME type sniffing.
	HeaderXContentTypeOptions = "X-Content-Type-Options"

	// HeaderXFrameOptions controls whether the page can be embedded in frames.
	HeaderXFrameOptions = "X-Frame-Options"

	// HeaderXXSSProtection enables cross-site scripting filtering.
	HeaderXXSSProtection = "X-XSS-Protection"

	// HeaderReferrerPolicy controls how much referrer information is sent.
	HeaderReferrerPolicy = "Referrer-Policy"

	// HeaderContentSecurityPolicy restricts the sources of loaded content.
	HeaderContentSecurityPolicy = "Content-Security-Policy"
)

// Header Values define the standard values for security and content headers.
const (
	// ContentTypeJSON is the media type for JSON payloads.
	ContentTypeJSON = "application/json"

	// ContentTypeOptionsNoSniff disables MIME type sniffing.
	ContentTypeOptionsNoSniff = "nosniff"

	// FrameOptionsDeny prevents the page from being displayed in a frame.
	FrameOptionsDeny = "DENY"

	// XSSProtectionModeBlock enables XSS filtering and blocks rendering on detection.
	XSSProtectionModeBlock = "1; mode=block"

	// ReferrerPolicyStrictOrigin sends the origin only for same-security-level requests.
	ReferrerPolicyStrictOrigin = "strict-origin-when-cross-origin"

	// CSPDefaultSrc restricts content sources to the same origin.
	CSPDefaultSrc = "default-src 'self'"

	// BearerTokenPrefix is the expected prefix of the Authorization header value.
	BearerTokenPrefix = "Bearer "

	// TokenTypeBearer is the token_type value reported in token responses.
	TokenTypeBearer = "Bearer"
)
