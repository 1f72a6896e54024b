package services

import "errors"

// Define common service errors
var (
	ErrNotFound             = errors.New("resource not found")
	ErrForbidden            = errors.New("forbidden")
	ErrValidation           = errors.New("validation failed")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrInvalidToken         = errors.New("invalid token")
	ErrDuplicateEmail       = errors.New("email already registered")
	ErrDuplicateApplication = errors.New("already applied for this job")
)
