package errors

import "errors"

// Credential failures. Surface as 401 except ErrKeySetUnavailable (503).
var (
	ErrNoCredential      = errors.New("no credential")
	ErrInvalidCredential = errors.New("invalid credential")
	ErrCredentialExpired = errors.New("credential expired")
	ErrKeySetUnavailable = errors.New("signing key set unavailable")
	ErrUnknownSigningKey = errors.New("unknown signing key")
	ErrUnsupportedIssuer = errors.New("unsupported token issuer")
)

// Authorization failures.
var (
	ErrNotOwner         = errors.New("not owner")
	ErrRoleForbidden    = errors.New("role forbidden")
	ErrResourceNotFound = errors.New("resource not found")
)

// Secret codec failures.
var (
	ErrMalformedToken = errors.New("malformed token")
	ErrTagMismatch    = errors.New("authentication tag mismatch")
	ErrMarkerMismatch = errors.New("marker mismatch")
)
