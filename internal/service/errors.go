package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-blog/internal/guard"
)

var (
	// ErrInvalidCredentials is returned by Authenticate for any failed login.
	// It is always accompanied by ErrUserNotFound or ErrWrongPassword.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrWrongPassword      = errors.New("wrong password")

	ErrNotFound     = errors.New("not found")
	ErrUnauthorized = errors.New("unauthorized")

	// ErrStore wraps every unexpected storage failure.
	ErrStore = errors.New("storage failure")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)

// Entity names carried by [NotFoundError].
const (
	EntityPost = "post"
	EntityUser = "user"
)

// NotFoundError reports a missing entity. It matches [ErrNotFound].
type NotFoundError struct {
	Entity string
	ID     int64
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Entity, e.ID)
}

func (e NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// UnauthorizedError reports a guard denial. It matches [ErrUnauthorized].
type UnauthorizedError struct {
	Reason guard.Reason
}

func (e UnauthorizedError) Error() string {
	return fmt.Sprintf("unauthorized: %s", e.Reason)
}

func (e UnauthorizedError) Is(target error) bool {
	return target == ErrUnauthorized
}

func storeError(err error) error {
	return fmt.Errorf("%w: %w", ErrStore, err)
}
