package service

import "errors"

// Authentication errors.
var (
	ErrAccountNotFound    = errors.New("account not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenMissing       = errors.New("token missing")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenMalformed     = errors.New("token malformed")
	ErrTokenRevoked       = errors.New("token revoked")
)

// Authorization errors.
var (
	ErrUnauthenticated = errors.New("authentication required")
	ErrAccessDenied    = errors.New("access denied")
)

// Domain errors.
var (
	ErrEnrollmentNotFound  = errors.New("enrollment not found")
	ErrDuplicateEnrollment = errors.New("student is already enrolled in this module for the semester")
	ErrMarkOutOfRange      = errors.New("mark must be between 0 and 100")
	ErrInvalidTransition   = errors.New("enrollment status transition not allowed")
	ErrInvalidReference    = errors.New("referenced student, module, semester or programme does not exist")
	ErrModuleNotFound      = errors.New("module not found")
	ErrModuleExists        = errors.New("module code already exists")
	ErrStudentNotFound     = errors.New("student not found")
	ErrEmailTaken          = errors.New("email already in use")
	ErrHasDependents       = errors.New("record is referenced by enrollments")
)
