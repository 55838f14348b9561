package geo

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// Common static errors that can be wrapped with context.
var (
	ErrMissingRequiredParameter = errors.New("missing required parameter")
	ErrConfigRequired           = errors.New("config is required")
	ErrDomainRequired           = errors.New("domain must be specified")
	ErrUnknownEndpoint          = errors.New("unknown endpoint")
)

// MissingParameterError builds the error returned when name is absent.
func MissingParameterError(name string) error {
	return fmt.Errorf("%w: %s", ErrMissingRequiredParameter, name)
}

// APIError is the error envelope some API responses carry.
type APIError struct {
	Message    string `json:"message"              yaml:"message"`
	StatusCode int    `json:"statusCode,omitempty" yaml:"statusCode,omitempty"`
}

// ResponseError is returned for any non-2xx response. The full Result,
// including the decoded body, stays available to the caller.
type ResponseError struct {
	Result *Result
}

// Error implements the error interface.
func (e *ResponseError) Error() string {
	if e.Result == nil {
		return "unexpected response"
	}

	if apiErr := e.APIError(); apiErr != nil && apiErr.Message != "" {
		return fmt.Sprintf("API error (status %d): %s", e.Result.StatusCode, apiErr.Message)
	}

	status := e.Result.Status
	if status == "" {
		status = http.StatusText(e.Result.StatusCode)
	}

	return fmt.Sprintf("API error (status %d): %s", e.Result.StatusCode, status)
}

// APIError extracts the {"error": {...}} envelope from the body, if any.
func (e *ResponseError) APIError() *APIError {
	if e.Result == nil || len(e.Result.RawBody) == 0 {
		return nil
	}

	var envelope struct {
		Error *APIError `json:"error"`
	}

	err := json.Unmarshal(e.Result.RawBody, &envelope)
	if err != nil {
		return nil
	}

	return envelope.Error
}

// StatusCode returns the HTTP status code carried by err, or 0.
func StatusCode(err error) int {
	respErr := &ResponseError{}
	if errors.As(err, &respErr) && respErr.Result != nil {
		return respErr.Result.StatusCode
	}

	return 0
}

// IsResponseError checks if the error came from a non-2xx response.
func IsResponseError(err error) bool {
	respErr := &ResponseError{}

	return errors.As(err, &respErr)
}

// IsNotFound checks if the error is a not found error.
func IsNotFound(err error) bool {
	return StatusCode(err) == http.StatusNotFound
}

// IsUnauthorized checks if the error is an unauthorized error.
func IsUnauthorized(err error) bool {
	return StatusCode(err) == http.StatusUnauthorized
}

// IsForbidden checks if the error is a forbidden error.
func IsForbidden(err error) bool {
	return StatusCode(err) == http.StatusForbidden
}

// IsMissingParameter checks if the error reports a missing required parameter.
func IsMissingParameter(err error) bool {
	return errors.Is(err, ErrMissingRequiredParameter)
}
