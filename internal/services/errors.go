package services

import (
	"errors"
	"fmt"

	"github.com/mentorhub/mentorship-service/internal/validator"
)

// The error taxonomy spans all services so every failure maps to exactly one
// transport status: validation -> 400, conflict -> 409, not found -> 404,
// authentication -> 401, store -> 500.

// ValidationErrors reuses the validator's field-level error list.
type ValidationErrors = validator.ValidationErrors

// ErrInvalidCredentials carries the uniform login failure message. The same
// value is returned for an unknown username and a wrong password so callers
// cannot enumerate usernames.
var ErrInvalidCredentials = errors.New("invalid username or password")

// NotFoundError reports an unknown identifier or an unresolved reference,
// naming the resource it points at.
type NotFoundError struct {
	Resource string
	ID       int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with id %d does not exist", e.Resource, e.ID)
}

// ConflictError reports a duplicate unique key. No mutation was performed.
type ConflictError struct {
	Resource string
	Field    string
	Value    interface{}
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s with this %s already exists", e.Resource, e.Field)
}

// StoreError wraps a failure of the external store. It is surfaced to the
// caller as a generic failure and never retried here.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store operation %s failed: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}
