// Package auth provides the token-based authentication core for the LexAid API:
// token issuance and validation, the refresh exchange primitives, and the
// request gate that turns a raw request into an authenticated identity or a
// typed rejection.
package auth

import (
	"fmt"

	"github.com/lexaidhq/lexaid-backend/internal/constants"
)

// RejectionReason enumerates the ways an authentication attempt can fail.
// Every failure maps to exactly one reason; only truly unexpected faults
// collapse to RejectionInternalError. Expired and tampered tokens share an
// external code but remain distinct here for audit logging.
type RejectionReason int

const (
	// RejectionMissingToken means no bearer credentials were supplied.
	RejectionMissingToken RejectionReason = iota

	// RejectionMalformedToken means the token is not a structurally valid JWT.
	RejectionMalformedToken

	// RejectionExpiredToken means the token signature verified but the token is past expiry.
	RejectionExpiredToken

	// RejectionBadSignature means the token signature did not verify, the signing
	// algorithm was unexpected, or the subject did not match the expected identity.
	RejectionBadSignature

	// RejectionIdentityNotFound means the token's subject has no matching
	// non-deleted identity in the user store.
	RejectionIdentityNotFound

	// RejectionIdentityInactive means the identity exists but is suspended.
	RejectionIdentityInactive

	// RejectionInternalError means authentication could not complete for an
	// internal reason, such as an unavailable or timed-out user store.
	RejectionInternalError
)

// String returns the internal name of the reason, used in audit logs.
func (r RejectionReason) String() string {
	switch r {
	case RejectionMissingToken:
		return "missing_token"
	case RejectionMalformedToken:
		return "malformed_token"
	case RejectionExpiredToken:
		return "expired_token"
	case RejectionBadSignature:
		return "bad_signature"
	case RejectionIdentityNotFound:
		return "identity_not_found"
	case RejectionIdentityInactive:
		return "identity_inactive"
	default:
		return "internal_error"
	}
}

// HTTPStatus returns the HTTP status code the reason maps to.
func (r RejectionReason) HTTPStatus() int {
	switch r {
	case RejectionIdentityInactive:
		return constants.StatusForbidden
	case RejectionInternalError:
		return constants.StatusInternalServerError
	default:
		return constants.StatusUnauthorized
	}
}

// Code returns the stable machine-readable error code for the reason.
// Malformed, tampered, and expired tokens deliberately share AUTH_004: the
// external contract does not distinguish them even though audit logs do.
func (r RejectionReason) Code() string {
	switch r {
	case RejectionMissingToken:
		return constants.CodeMissingToken
	case RejectionIdentityNotFound:
		return constants.CodeUserNotFound
	case RejectionIdentityInactive:
		return constants.CodeAccountInactive
	case RejectionMalformedToken, RejectionExpiredToken, RejectionBadSignature:
		return constants.CodeInvalidToken
	default:
		return constants.CodeAuthInternalError
	}
}

// Message returns the user-facing message for the reason.
func (r RejectionReason) Message() string {
	switch r {
	case RejectionMissingToken:
		return constants.MsgAuthRequired
	case RejectionExpiredToken:
		return constants.MsgTokenExpired
	case RejectionIdentityNotFound:
		return constants.MsgUserNotFound
	case RejectionIdentityInactive:
		return constants.MsgAccountInactive
	case RejectionMalformedToken, RejectionBadSignature:
		return constants.MsgInvalidToken
	default:
		return constants.MsgInternalServerError
	}
}

// Rejection is the typed result of a failed authentication attempt. It carries
// the reason plus the underlying cause for logging; the cause is never exposed
// to the caller.
type Rejection struct {
	Reason RejectionReason
	Err    error
}

// Error implements the error interface.
func (r *Rejection) Error() string {
	if r.Err != nil {
		return fmt.Sprintf("authentication rejected (%s): %v", r.Reason, r.Err)
	}
	return fmt.Sprintf("authentication rejected (%s)", r.Reason)
}

// Unwrap returns the underlying cause.
func (r *Rejection) Unwrap() error {
	return r.Err
}

// Reject creates a Rejection with the given reason and underlying cause.
func Reject(reason RejectionReason, err error) *Rejection {
	return &Rejection{Reason: reason, Err: err}
}
