package colorwish

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Sentinel errors
var (
	// ErrNoAccessToken is returned when a token endpoint answers 200 without
	// an access token in the body.
	ErrNoAccessToken = errors.New("colorwish: no access token received")
)

// Error represents an API error response.
type Error struct {
	// StatusCode is the HTTP status code.
	StatusCode int `json:"-"`
	// Code is the error code (e.g., "unauthorized", "validation_error").
	Code string `json:"code"`
	// Message is a human-readable error message.
	Message string `json:"message"`
	// Details contains per-field details for validation errors.
	Details map[string]interface{} `json:"details,omitempty"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return e.Message
}

// IsUnauthorized returns true if the error is an authorization error.
func (e *Error) IsUnauthorized() bool {
	return e.StatusCode == http.StatusUnauthorized || e.Code == "unauthorized"
}

// IsNotFound returns true if the error is a not found error.
func (e *Error) IsNotFound() bool {
	return e.StatusCode == http.StatusNotFound || e.Code == "not_found"
}

// IsValidationError returns true if the backend rejected the request payload.
func (e *Error) IsValidationError() bool {
	return e.StatusCode == http.StatusBadRequest ||
		e.StatusCode == http.StatusUnprocessableEntity ||
		e.Code == "validation_error"
}

// IsServerError returns true for 5xx responses.
func (e *Error) IsServerError() bool {
	return e.StatusCode >= 500
}

// codeForStatus maps an HTTP status to a stable error code for responses
// that carry no code of their own.
func codeForStatus(statusCode int) string {
	switch statusCode {
	case http.StatusUnauthorized:
		return "unauthorized"
	case http.StatusForbidden:
		return "forbidden"
	case http.StatusNotFound:
		return "not_found"
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return "validation_error"
	default:
		if statusCode >= 500 {
			return "server_error"
		}
		return strings.ToLower(strings.ReplaceAll(http.StatusText(statusCode), " ", "_"))
	}
}

// parseError parses an error response from the API.
//
// The backend answers in FastAPI's formats: {"detail": "message"} for plain
// errors and {"detail": [{"loc": [...], "msg": "...", ...}]} for 422
// validation errors. Anything else falls back to the raw body.
func parseError(statusCode int, body []byte) error {
	var envelope struct {
		Detail  json.RawMessage `json:"detail"`
		Message string          `json:"message"`
	}

	if err := json.Unmarshal(body, &envelope); err == nil {
		// Plain detail string
		var detail string
		if err := json.Unmarshal(envelope.Detail, &detail); err == nil && detail != "" {
			return &Error{
				StatusCode: statusCode,
				Code:       codeForStatus(statusCode),
				Message:    detail,
			}
		}

		// Validation detail list
		var items []struct {
			Loc []interface{} `json:"loc"`
			Msg string        `json:"msg"`
		}
		if err := json.Unmarshal(envelope.Detail, &items); err == nil && len(items) > 0 {
			details := make(map[string]interface{}, len(items))
			msgs := make([]string, 0, len(items))
			for _, item := range items {
				field := "body"
				if n := len(item.Loc); n > 0 {
					field = fmt.Sprint(item.Loc[n-1])
				}
				details[field] = item.Msg
				msgs = append(msgs, fmt.Sprintf("%s: %s", field, item.Msg))
			}
			return &Error{
				StatusCode: statusCode,
				Code:       "validation_error",
				Message:    strings.Join(msgs, "; "),
				Details:    details,
			}
		}

		// Alternative {"message": "..."} format
		if envelope.Message != "" {
			return &Error{
				StatusCode: statusCode,
				Code:       codeForStatus(statusCode),
				Message:    envelope.Message,
			}
		}
	}

	// Fallback to generic error
	return &Error{
		StatusCode: statusCode,
		Code:       codeForStatus(statusCode),
		Message:    strings.TrimSpace(string(body)),
	}
}

// IsAPIError checks if an error is an API error and returns it.
func IsAPIError(err error) (*Error, bool) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
