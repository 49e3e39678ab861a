// errors/user_errors.go
package errors

import "errors"

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrInvalidUserData   = errors.New("invalid user data")
	ErrUserConflict      = errors.New("user conflict")
	ErrGuardianConflict  = errors.New("guardian already protects another user")
	ErrAdminNotFound     = errors.New("admin not found")
	ErrInvalidLogin      = errors.New("invalid admin id or password")
	ErrNotificationError = errors.New("notification delivery failed")
)
