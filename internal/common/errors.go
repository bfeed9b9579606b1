// Package common provides shared utilities and types used across the application.
package common

import (
	"errors"
	"fmt"
)

// Common application errors.
var (
	// Configuration errors.
	ErrMissingConfig = errors.New("missing configuration")
	ErrInvalidConfig = errors.New("invalid configuration")

	// Model errors. Download failures surface to the caller of the explicit
	// download operation; load and inference failures never leave the
	// adapter, they only degrade detection to the basic path.
	ErrDownloadFailed = errors.New("model download failed")
	ErrModelLoad      = errors.New("model load failed")
	ErrInference      = errors.New("model inference failed")
	ErrTokenRequired  = errors.New("huggingface token required")
)

// UserError represents an error that should be shown to the user.
type UserError struct {
	Err         error
	UserMessage string
}

func (e *UserError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.UserMessage, e.Err)
	}
	return e.UserMessage
}

func (e *UserError) Unwrap() error {
	return e.Err
}

// NewUserError creates a new user-friendly error.
func NewUserError(userMessage string, err error) error {
	return &UserError{
		UserMessage: userMessage,
		Err:         err,
	}
}
