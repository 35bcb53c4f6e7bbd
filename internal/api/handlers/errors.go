package handlers

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

// APIError is the error envelope returned by every operation.
type APIError struct {
	status int

	Status     string   `json:"status"                doc:"Outcome label"                      example:"ERROR"`
	Message    string   `json:"error"                 doc:"Human readable error"               example:"catalog not synced yet"`
	Details    []string `json:"details,omitempty"     doc:"Underlying causes"`
	RetryAfter int      `json:"retry_after,omitempty" doc:"Seconds until a new sync is allowed" example:"1800"`
}

func (e *APIError) Error() string { return e.Message }

// GetStatus returns the HTTP status code of the error.
func (e *APIError) GetStatus() int { return e.status }

// NewAPIError builds the envelope for status. It replaces huma.NewError so
// that validation and framework errors share the same shape.
func NewAPIError(status int, msg string, errs ...error) huma.StatusError {
	var details []string
	for _, err := range errs {
		if err != nil {
			details = append(details, err.Error())
		}
	}
	return &APIError{
		status:  status,
		Status:  envelopeStatus(status),
		Message: msg,
		Details: details,
	}
}

func envelopeStatus(code int) string {
	switch code {
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return "INVALID"
	case http.StatusUnauthorized:
		return "UNAUTHORIZED"
	case http.StatusNotFound:
		return "NOT_FOUND"
	case http.StatusConflict:
		return "IN_PROGRESS"
	case http.StatusTooManyRequests:
		return "COOLDOWN"
	default:
		return "ERROR"
	}
}

func init() {
	huma.NewError = NewAPIError
}
