package apperror

import (
	"errors"
	"fmt"
)

type ErrorType string

const (
	TypeNotFound      ErrorType = "NOT_FOUND"
	TypeAuthorization ErrorType = "AUTHORIZATION"
	TypeValidation    ErrorType = "VALIDATION"
	TypeTransient     ErrorType = "TRANSIENT"
)

// AppError is the domain error every usecase operation fails with. Fields
// carries per-field messages for validation failures.
type AppError struct {
	Type    ErrorType
	Message string
	Fields  map[string]string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NotFound(message string) *AppError {
	return &AppError{Type: TypeNotFound, Message: message}
}

func Authorization(message string) *AppError {
	return &AppError{Type: TypeAuthorization, Message: message}
}

func Validation(message string, fields map[string]string) *AppError {
	return &AppError{Type: TypeValidation, Message: message, Fields: fields}
}

func Transient(message string, err error) *AppError {
	return &AppError{Type: TypeTransient, Message: message, Err: err}
}

// As extracts an *AppError from an error chain, or nil.
func As(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

func IsType(err error, t ErrorType) bool {
	appErr := As(err)
	return appErr != nil && appErr.Type == t
}
