package minfraud

import (
	"encoding/json"
	"fmt"
	"strings"
)

// serviceError is the JSON shape of an error body from the web service.
type serviceError struct {
	Code  string `json:"code"`
	Error string `json:"error"`
}

// decodeSuccess handles a response with a success status: the body must be
// JSON of the expected content type and must decode into out. Anything else
// is a KindUnexpectedContent error, never silently coerced into success.
func decodeSuccess(contentType string, body []byte, out any) *Error {
	if !strings.Contains(contentType, "json") {
		return &Error{
			Kind:       KindUnexpectedContent,
			StatusCode: 200,
			Body:       string(body),
			Message:    fmt.Sprintf("received a success response with content type %q instead of JSON", contentType),
		}
	}
	if err := json.Unmarshal(body, out); err != nil {
		return &Error{
			Kind:       KindUnexpectedContent,
			StatusCode: 200,
			Body:       string(body),
			Message:    fmt.Sprintf("received a success response but could not decode the body: %v", err),
		}
	}
	return nil
}

// classifyError maps a non-success status and body onto the error taxonomy.
// Pure classification: no retries, no downgrades, invoked exactly once per
// call outcome.
func classifyError(status int, body []byte) *Error {
	switch {
	case status >= 400 && status < 500:
		return classifyClientError(status, body)
	case status >= 500 && status < 600:
		return &Error{
			Kind:       KindServer,
			StatusCode: status,
			Body:       string(body),
			Message:    fmt.Sprintf("received a server error (%d)", status),
		}
	default:
		return &Error{
			Kind:       KindUnexpectedContent,
			StatusCode: status,
			Body:       string(body),
			Message:    fmt.Sprintf("received an unexpected HTTP status (%d)", status),
		}
	}
}

func classifyClientError(status int, body []byte) *Error {
	fallback := func(msg string) *Error {
		return &Error{
			Kind:       KindInvalidRequest,
			StatusCode: status,
			Body:       string(body),
			Message:    msg,
		}
	}

	if len(body) == 0 {
		return fallback(fmt.Sprintf("received a %d error with no body", status))
	}

	var svcErr serviceError
	if err := json.Unmarshal(body, &svcErr); err != nil {
		return fallback(fmt.Sprintf("received a %d error but the body was not the expected JSON: %s", status, body))
	}
	if svcErr.Code == "" {
		return fallback(fmt.Sprintf("received a %d error whose JSON body specifies no error code: %s", status, body))
	}

	message := svcErr.Error
	if message == "" {
		message = fmt.Sprintf("the server returned error code %s", svcErr.Code)
	}
	return &Error{
		Kind:       kindForCode(svcErr.Code),
		Code:       svcErr.Code,
		StatusCode: status,
		Body:       string(body),
		Message:    message,
	}
}

// kindForCode maps server-declared error codes onto the closed kind set.
// Unrecognized codes, including future server-side additions, degrade to
// KindInvalidRequest.
func kindForCode(code string) ErrorKind {
	switch code {
	case "ACCOUNT_ID_REQUIRED", "AUTHORIZATION_INVALID", "LICENSE_KEY_REQUIRED", "USER_ID_REQUIRED":
		return KindAuthentication
	case "INSUFFICIENT_FUNDS":
		return KindInsufficientFunds
	case "PERMISSION_REQUIRED":
		return KindPermission
	}
	// Other *_REQUIRED codes all report a missing identifying field, e.g.
	// IP_ADDRESS_REQUIRED on the report endpoint.
	if strings.HasSuffix(code, "_REQUIRED") {
		return KindMissingIdentifier
	}
	return KindInvalidRequest
}
