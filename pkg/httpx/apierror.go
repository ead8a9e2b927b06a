package httpx

import (
	"fmt"
	"net/http"
)

// APIError is the single error shape this service returns. It implements the
// error interface so handlers can both return it and write it.
type APIError struct {
	// StatusCode is the HTTP status code for this error.
	StatusCode int `json:"-"`

	// Code is a short machine-readable error code.
	Code string `json:"error"`

	// Description is a human-readable description of the error.
	Description string `json:"error_description"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Description)
}

// WriteError writes this APIError to an HTTP response writer.
func (e *APIError) WriteError(w http.ResponseWriter) {
	NoCache(w)
	WriteJSON(w, e.StatusCode, map[string]string{
		"error":             e.Code,
		"error_description": e.Description,
	})
}

var (
	// ErrInvalidRequest covers malformed bodies and missing required fields.
	ErrInvalidRequest = &APIError{
		StatusCode:  http.StatusBadRequest,
		Code:        "invalid_request",
		Description: "the request is malformed or missing required parameters",
	}

	// ErrInvalidCredentials covers both unknown usernames and wrong
	// passwords. The two cases must stay indistinguishable to the caller.
	ErrInvalidCredentials = &APIError{
		StatusCode:  http.StatusUnauthorized,
		Code:        "invalid_credentials",
		Description: "username or password is incorrect",
	}

	// ErrInvalidToken covers every token validation failure: missing,
	// malformed, expired, not yet valid, or bad signature. No sub-reason
	// is leaked.
	ErrInvalidToken = &APIError{
		StatusCode:  http.StatusUnauthorized,
		Code:        "invalid_token",
		Description: "the access token is missing or invalid",
	}

	// ErrForbidden is returned for authenticated callers lacking the
	// required role.
	ErrForbidden = &APIError{
		StatusCode:  http.StatusForbidden,
		Code:        "forbidden",
		Description: "the authenticated user is not allowed to perform this action",
	}

	ErrNotFound = &APIError{
		StatusCode:  http.StatusNotFound,
		Code:        "not_found",
		Description: "the requested resource does not exist",
	}

	ErrConflict = &APIError{
		StatusCode:  http.StatusConflict,
		Code:        "already_exists",
		Description: "the resource already exists",
	}

	ErrRateLimited = &APIError{
		StatusCode:  http.StatusTooManyRequests,
		Code:        "rate_limit_exceeded",
		Description: "too many requests, please try again later",
	}

	ErrServerError = &APIError{
		StatusCode:  http.StatusInternalServerError,
		Code:        "server_error",
		Description: "an unexpected error occurred",
	}
)
