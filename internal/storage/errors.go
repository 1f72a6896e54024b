package storage

import "errors"

var (
	ErrNotFound             = errors.New("resource not found")
	ErrConflict             = errors.New("resource conflict (e.g., duplicate key)")
	ErrDuplicateEmail       = errors.New("email already registered")
	ErrDuplicateApplication = errors.New("application already exists for this job and applicant")
)
