package attendancesdk

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// APIError is a non-2xx response from the attendance service.
type APIError struct {
	// StatusCode is the HTTP status code of the response
	StatusCode int

	// Message is the server's "error" field, or the status text when the body
	// carried none
	Message string

	// Body is the raw response body, kept so callers can decode endpoint
	// specific error payloads such as MarkAttendanceError
	Body []byte
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Message)
}

// MarkError decodes the body as a mark-attendance failure.
func (e *APIError) MarkError() (*MarkAttendanceError, error) {
	var out MarkAttendanceError
	if err := json.Unmarshal(e.Body, &out); err != nil {
		return nil, fmt.Errorf("failed to decode mark error: %w", err)
	}
	return &out, nil
}

// IsStatus reports whether err is an APIError with the given status code.
func IsStatus(err error, code int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == code
}

// parseErrorResponse turns a non-2xx response into an *APIError.
// Returns nil if the response indicates success (2xx status code).
func parseErrorResponse(resp *http.Response, body []byte) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	var errResp ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != "" {
		return &APIError{StatusCode: resp.StatusCode, Message: errResp.Error, Body: body}
	}

	// Fallback: create generic error from status code
	return &APIError{
		StatusCode: resp.StatusCode,
		Message:    http.StatusText(resp.StatusCode),
		Body:       body,
	}
}
