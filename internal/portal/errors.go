package portal

import (
	"errors"
	"fmt"
)

var (
	ErrLoginRejected     = errors.New("login rejected")
	ErrNavigationTimeout = errors.New("navigation timeout")
	ErrUnknownStatusMark = errors.New("unknown status mark")
	ErrElementNotFound   = errors.New("element not found")
	ErrRowMismatch       = errors.New("subject and row counts differ")
	ErrNotAuthenticated  = errors.New("session is not authenticated")
	ErrInvalidQuarter    = errors.New("invalid quarter")
	ErrAttendRejected    = errors.New("attendance code rejected")
)

// LoginRejectedError carries the portal's own error text.
type LoginRejectedError struct {
	Message string
}

func (e *LoginRejectedError) Error() string {
	return fmt.Sprintf("login rejected: %s", e.Message)
}

func (e *LoginRejectedError) Is(target error) bool {
	return target == ErrLoginRejected
}

// UnknownStatusMarkError reports an attendance glyph outside the closed vocabulary.
type UnknownStatusMarkError struct {
	Mark string
}

func (e *UnknownStatusMarkError) Error() string {
	return fmt.Sprintf("unknown status mark %q", e.Mark)
}

func (e *UnknownStatusMarkError) Is(target error) bool {
	return target == ErrUnknownStatusMark
}

// AttendRejectedError carries the portal's reply to a refused attendance code.
type AttendRejectedError struct {
	Message string
}

func (e *AttendRejectedError) Error() string {
	return fmt.Sprintf("attendance code rejected: %s", e.Message)
}

func (e *AttendRejectedError) Is(target error) bool {
	return target == ErrAttendRejected
}
