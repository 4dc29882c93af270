package common

import (
	"errors"
	"fmt"
)

// ProcessingFailedMessage is the single user-facing message for a failed analysis.
const ProcessingFailedMessage = "Fallo al procesar el documento."

// AppError represents application-specific errors
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// Common application errors
var (
	ErrNotFound         = errors.New("resource not found")
	ErrInvalidInput     = errors.New("invalid input")
	ErrValidation       = errors.New("validation failed")
	ErrProcessingFailed = errors.New("document processing failed")
	ErrAmbiguousMode    = errors.New("both replaced person and cessation reason are populated")
)

// Error codes
const (
	CodeConfig           = "CONFIG_ERROR"
	CodeProcessingFailed = "PROCESSING_FAILED"
	CodeInvalidInput     = "INVALID_INPUT"
)

// Error constructors
func NewAppError(code, message string, cause error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// ProcessingFailed wraps cause so that errors.Is(err, ErrProcessingFailed) holds
// while the original cause stays reachable for logs.
func ProcessingFailed(cause error) *AppError {
	return NewAppError(CodeProcessingFailed, ProcessingFailedMessage, errors.Join(ErrProcessingFailed, cause))
}

func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// UserMessage returns the message meant for the person at the terminal.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return err.Error()
}
