package utils

import (
	"context"
	"errors"
	"fmt"
)

type ErrorCode string

const (
	CodeDatabaseError   ErrorCode = "DATABASE_ERROR"
	CodeNotFound        ErrorCode = "NOT_FOUND"
	CodeInsertFailed    ErrorCode = "INSERT_FAILED"
	CodeUserNotFound    ErrorCode = "USER_NOT_FOUND"
	CodeInvalidUser     ErrorCode = "INVALID_USER"
	CodeValidationError ErrorCode = "VALIDATION_ERROR"
	CodeAuthError       ErrorCode = "AUTH_ERROR"
	CodeAPIError        ErrorCode = "API_ERROR"
	CodeUnknownError    ErrorCode = "UNKNOWN_ERROR"
	CodeNetworkError    ErrorCode = "NETWORK_ERROR"
)

// AppError is the only error shape that leaves the service layer.
// Cause is kept for logs and is never rendered to the client.
type AppError struct {
	Message   string
	Code      ErrorCode
	Cause     error
	Transient bool
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error { return e.Cause }

// Is matches on code so errors.Is(err, ErrInvalidUser) works for any
// AppError carrying the same code.
func (e *AppError) Is(target error) bool {
	var t *AppError
	if !errors.As(target, &t) {
		return false
	}
	return t.Code == e.Code
}

func NewAppError(code ErrorCode, message string, cause error) *AppError {
	return &AppError{Message: message, Code: code, Cause: cause}
}

// NewTransientError marks a failure the retry policy may retry.
func NewTransientError(message string, cause error) *AppError {
	return &AppError{Message: message, Code: CodeNetworkError, Cause: cause, Transient: true}
}

var (
	ErrDatabaseError = &AppError{Code: CodeDatabaseError, Message: "database error"}
	ErrNotFound      = &AppError{Code: CodeNotFound, Message: "record not found"}
	ErrInsertFailed  = &AppError{Code: CodeInsertFailed, Message: "insert returned no row"}
	ErrUserNotFound  = &AppError{Code: CodeUserNotFound, Message: "user not found"}
	ErrInvalidUser   = &AppError{Code: CodeInvalidUser, Message: "user id does not match session"}
	ErrValidation    = &AppError{Code: CodeValidationError, Message: "validation failed"}
	ErrAuth          = &AppError{Code: CodeAuthError, Message: "authentication failed"}
	ErrNetwork       = &AppError{Code: CodeNetworkError, Message: "network error"}
)

func ValidationError(message string) *AppError {
	return &AppError{Code: CodeValidationError, Message: message}
}

func AuthError(message string, cause error) *AppError {
	return &AppError{Code: CodeAuthError, Message: message, Cause: cause}
}

func DatabaseError(message string, cause error) *AppError {
	return &AppError{Code: CodeDatabaseError, Message: message, Cause: cause}
}

// IsTransient reports whether err carries the transient classification.
func IsTransient(err error) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Transient
	}
	return false
}

// CodeOf returns the taxonomy code of err, or "" for foreign errors.
func CodeOf(err error) ErrorCode {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ""
}

// Normalize coerces any error into the taxonomy. AppErrors pass through.
func Normalize(err error) error {
	if err == nil {
		return nil
	}
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return &AppError{Code: CodeNetworkError, Message: err.Error(), Cause: err}
	}
	return &AppError{Code: CodeAPIError, Message: err.Error(), Cause: err}
}

// NormalizePanic is used by the recovery middleware for values that are not errors.
func NormalizePanic(v any) *AppError {
	if err, ok := v.(error); ok {
		var appErr *AppError
		if errors.As(err, &appErr) {
			return appErr
		}
		return &AppError{Code: CodeUnknownError, Message: "an unexpected error occurred", Cause: err}
	}
	return &AppError{Code: CodeUnknownError, Message: "an unexpected error occurred", Cause: fmt.Errorf("%v", v)}
}

const defaultUserMessage = "Ha ocurrido un error. Por favor, inténtalo de nuevo"

var userMessages = map[ErrorCode]string{
	CodeDatabaseError:   "No se pudo acceder a tus datos. Por favor, inténtalo de nuevo",
	CodeNotFound:        "No se encontró el recurso solicitado",
	CodeInsertFailed:    "No se pudo guardar el registro",
	CodeUserNotFound:    "No se encontró el usuario",
	CodeInvalidUser:     "ID de usuario no válido",
	CodeValidationError: "Los datos proporcionados no son válidos",
	CodeAuthError:       "No estás autorizado para realizar esta acción",
	CodeNetworkError:    "Error de conexión. Por favor, verifica tu conexión a internet",
}

// UserMessage returns the localized text for err. Validation and auth
// errors keep their own message since it names the offending field.
func UserMessage(err error) string {
	var appErr *AppError
	if !errors.As(err, &appErr) {
		return defaultUserMessage
	}
	switch appErr.Code {
	case CodeValidationError, CodeAuthError:
		if appErr.Message != "" {
			return appErr.Message
		}
	}
	if msg, ok := userMessages[appErr.Code]; ok {
		return msg
	}
	return defaultUserMessage
}

// IsRecoverableBySessionRefresh is true for identity problems the client
// fixes by reloading its session.
func IsRecoverableBySessionRefresh(err error) bool {
	switch CodeOf(err) {
	case CodeInvalidUser, CodeUserNotFound:
		return true
	}
	return false
}
