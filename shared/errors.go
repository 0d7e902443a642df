package shared

import (
	"errors"
	"fmt"
	"net/http"
)

// Error taxonomy codes. The API client classifies every failure into one of
// these; callers branch on the code, never on message text.
const (
	ErrCodeNetwork            = "network"
	ErrCodeSessionExpired     = "session_expired"
	ErrCodeInvalidCredentials = "invalid_credentials"
	ErrCodeDecode             = "decode"
	ErrCodeAPI                = "api"
	ErrCodeBadRequest         = "bad_request"
	ErrCodeNotFound           = "not_found"
	ErrCodeConflict           = "conflict"
	ErrCodeInternal           = "internal"
)

type AppError struct {
	Code       string
	StatusCode int
	Message    string
	Err        error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewNetworkError(err error, message string) *AppError {
	return &AppError{Code: ErrCodeNetwork, Message: message, Err: err}
}

func NewSessionExpiredError(message string) *AppError {
	return &AppError{Code: ErrCodeSessionExpired, StatusCode: http.StatusUnauthorized, Message: message}
}

func NewInvalidCredentialsError(message string) *AppError {
	return &AppError{Code: ErrCodeInvalidCredentials, StatusCode: http.StatusUnauthorized, Message: message}
}

func NewDecodeError(err error, message string) *AppError {
	return &AppError{Code: ErrCodeDecode, Message: message, Err: err}
}

func NewAPIError(statusCode int, message string) *AppError {
	return &AppError{Code: ErrCodeAPI, StatusCode: statusCode, Message: message}
}

func NewBadRequestError(err error, message string) *AppError {
	return &AppError{Code: ErrCodeBadRequest, StatusCode: http.StatusBadRequest, Message: message, Err: err}
}

func NewNotFoundError(err error, message string) *AppError {
	return &AppError{Code: ErrCodeNotFound, StatusCode: http.StatusNotFound, Message: message, Err: err}
}

func NewConflictError(err error, message string) *AppError {
	return &AppError{Code: ErrCodeConflict, StatusCode: http.StatusConflict, Message: message, Err: err}
}

func NewInternalError(err error, message string) *AppError {
	return &AppError{Code: ErrCodeInternal, Message: message, Err: err}
}

// GetAppError unwraps err to the first AppError in its chain.
func GetAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

func HasCode(err error, code string) bool {
	if appErr, ok := GetAppError(err); ok {
		return appErr.Code == code
	}
	return false
}

func IsSessionExpired(err error) bool {
	return HasCode(err, ErrCodeSessionExpired)
}

func IsInvalidCredentials(err error) bool {
	return HasCode(err, ErrCodeInvalidCredentials)
}

func IsNetworkError(err error) bool {
	return HasCode(err, ErrCodeNetwork)
}
