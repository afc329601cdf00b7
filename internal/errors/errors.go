package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrEmailTaken is returned when registering an email that already exists.
	ErrEmailTaken = errors.New("email already registered")
	// ErrAuthTypeConflict is returned when a Google login targets an email
	// that is registered with password authentication.
	ErrAuthTypeConflict = errors.New("email already registered with password authentication")
	// ErrInvalidCredentials is returned on bad password or unknown email.
	// The message is deliberately identical for both cases.
	ErrInvalidCredentials = errors.New("incorrect email or password")
	// ErrInvalidToken is returned for expired, malformed or tampered tokens,
	// failed Google verification, and tokens whose subject no longer exists.
	ErrInvalidToken = errors.New("invalid token")
	// ErrTopicNotFound is returned when a topic does not exist or belongs to
	// another user.
	ErrTopicNotFound = errors.New("topic not found")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps business errors to HTTP errors. Anything outside the
// taxonomy becomes a generic 500 with no internal detail leaked.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrEmailTaken):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "EMAIL_TAKEN")
	case errors.Is(err, ErrAuthTypeConflict):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "AUTH_TYPE_CONFLICT")
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "INVALID_CREDENTIALS")
	case errors.Is(err, ErrInvalidToken):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "INVALID_TOKEN")
	case errors.Is(err, ErrTopicNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "TOPIC_NOT_FOUND")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
