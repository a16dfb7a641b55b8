package minfraud

import (
	"fmt"

	"github.com/tjfontaine/minfraud-go/pkg/record"
)

// ErrorKind is the category of a client error. Kinds form a closed taxonomy:
// unknown server-declared error codes degrade to KindInvalidRequest rather
// than growing the set, so server-side additions never break callers.
type ErrorKind string

const (
	// KindValidation means the record failed client-side validation. No
	// network request was made.
	KindValidation ErrorKind = "validation"

	// KindAuthentication means the account ID or license key was rejected.
	KindAuthentication ErrorKind = "authentication"

	// KindInsufficientFunds means the account is out of funds for the
	// service queried.
	KindInsufficientFunds ErrorKind = "insufficient_funds"

	// KindPermission means the account lacks permission for the service.
	KindPermission ErrorKind = "permission_required"

	// KindInvalidRequest means the server rejected the request as
	// malformed, or returned a 4xx the client could not interpret.
	KindInvalidRequest ErrorKind = "invalid_request"

	// KindMissingIdentifier means the server reported a required
	// identifying field as absent.
	KindMissingIdentifier ErrorKind = "missing_identifier"

	// KindServer is a 5xx from the service, carried uninterpreted.
	KindServer ErrorKind = "server"

	// KindUnexpectedContent means a success status arrived with a body
	// that is not the expected JSON, or an HTTP status outside the
	// 2xx/4xx/5xx ranges.
	KindUnexpectedContent ErrorKind = "unexpected_content"

	// KindTransport is a failure below HTTP: timeout, connection refused,
	// cancelled context. No status code was received.
	KindTransport ErrorKind = "transport"
)

// Error is the error type returned by every Client method. Kind is always
// set; the remaining fields are filled as far as the failure allows.
type Error struct {
	Kind    ErrorKind
	Message string

	// Code is the server-declared error code, when the response carried one.
	Code string

	// StatusCode is the raw HTTP status, when a response was received.
	StatusCode int

	// Body is the raw decoded response body, kept for diagnostics.
	Body string

	// Violations is the full defect list for KindValidation errors.
	Violations []record.Violation
}

func (e *Error) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s (%s): %s", e.Kind, e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func validationError(verr *record.ValidationError) *Error {
	return &Error{
		Kind:       KindValidation,
		Message:    verr.Error(),
		Violations: verr.Violations,
	}
}

func transportError(uri string, err error) *Error {
	return &Error{
		Kind:    KindTransport,
		Message: fmt.Sprintf("request to %s failed: %v", uri, err),
	}
}
