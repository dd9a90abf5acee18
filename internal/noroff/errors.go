package noroff

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrMissingAPIKey = errors.New("API key is not configured")
	errEmptyResponse = errors.New("empty response")
)

// APIError is a non-2xx answer from the API. Message is what the user gets to see.
type APIError struct {
	Status  int
	Message string
	Errors  []ErrorDetail
}

type ErrorDetail struct {
	Code    string `json:"code,omitempty"`
	Message string `json:"message"`
}

func (e *APIError) Error() string {
	return e.Message
}

// DecodeError means the API answered 2xx with a body that does not match the expected schema.
type DecodeError struct {
	Endpoint string
	Err      error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("unexpected response from %s: %v", e.Endpoint, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

func IsNotFound(err error) bool {
	return HasStatus(err, http.StatusNotFound)
}

func HasStatus(err error, status int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == status
}

type errorPayload struct {
	Errors     []ErrorDetail `json:"errors"`
	Message    string        `json:"message"`
	StatusCode any           `json:"statusCode"`
}

// newAPIError picks the first error message, then the top-level message, then the status code,
// then the HTTP status text.
func newAPIError(status int, body []byte) *APIError {
	var payload errorPayload
	_ = json.Unmarshal(body, &payload)

	apiErr := &APIError{Status: status, Errors: payload.Errors}

	switch {
	case len(payload.Errors) > 0 && payload.Errors[0].Message != "":
		apiErr.Message = payload.Errors[0].Message
	case payload.Message != "":
		apiErr.Message = payload.Message
	case payload.StatusCode != nil:
		apiErr.Message = fmt.Sprint(payload.StatusCode)
	default:
		apiErr.Message = "API Error: " + http.StatusText(status)
	}

	return apiErr
}
