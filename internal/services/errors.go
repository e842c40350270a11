package services

import (
	"errors"
	"fmt"
)

var (
	ErrNoAttributes         = errors.New("no attributes provided")
	ErrNoUserID             = errors.New("no user id provided")
	ErrAttributeNotFound    = errors.New("attribute not found")
	ErrInvalidAttributeType = errors.New("invalid attribute type")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrInvalidToken         = errors.New("invalid or expired refresh token")
)

// StoreError wraps a data-store failure with the logical operation that
// issued it and, for multi-step mutations, which step failed. The underlying
// store error stays in the chain so callers can branch on it.
type StoreError struct {
	Op   string
	Step string
	Err  error
}

func (e *StoreError) Error() string {
	if e.Step != "" {
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Step, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

func storeErr(op, step string, err error) error {
	return &StoreError{Op: op, Step: step, Err: err}
}
