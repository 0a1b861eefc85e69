package response

// ErrCode is a typed error code enum for consistent API error identification.
type ErrCode string

const (
	// ─── Authentication ────────────────────────────────────────────────
	ErrInvalidCredentials ErrCode = "INVALID_CREDENTIALS"
	ErrTokenRequired      ErrCode = "TOKEN_REQUIRED"
	ErrTokenInvalid       ErrCode = "TOKEN_INVALID"
	ErrTokenExpired       ErrCode = "TOKEN_EXPIRED"
	ErrTokenRevoked       ErrCode = "TOKEN_REVOKED"

	// ─── Authorization ─────────────────────────────────────────────────
	ErrForbidden ErrCode = "FORBIDDEN"

	// ─── Validation ────────────────────────────────────────────────────
	ErrValidation        ErrCode = "VALIDATION_ERROR"
	ErrInvalidID         ErrCode = "INVALID_ID"
	ErrMarkOutOfRange    ErrCode = "MARK_OUT_OF_RANGE"
	ErrInvalidReference  ErrCode = "INVALID_REFERENCE"
	ErrInvalidTransition ErrCode = "INVALID_TRANSITION"

	// ─── Resources ─────────────────────────────────────────────────────
	ErrNotFound            ErrCode = "NOT_FOUND"
	ErrConflict            ErrCode = "CONFLICT"
	ErrDuplicateEnrollment ErrCode = "DUPLICATE_ENROLLMENT"
	ErrHasDependents       ErrCode = "HAS_DEPENDENTS"

	// ─── Rate Limiting ─────────────────────────────────────────────────
	ErrRateLimitExceeded ErrCode = "RATE_LIMIT_EXCEEDED"

	// ─── Server ────────────────────────────────────────────────────────
	ErrInternal ErrCode = "INTERNAL_ERROR"
)

// GetMessage returns a human-readable message for a given error code.
func GetMessage(code ErrCode) string {
	switch code {
	case ErrInvalidCredentials:
		return "Invalid credentials"
	case ErrTokenRequired:
		return "No token provided"
	case ErrTokenInvalid:
		return "Token invalid"
	case ErrTokenExpired:
		return "Token expired"
	case ErrTokenRevoked:
		return "Token has been revoked"

	case ErrForbidden:
		return "Access denied"

	case ErrValidation:
		return "Validation failed. Please check your input."
	case ErrInvalidID:
		return "Invalid ID format"
	case ErrMarkOutOfRange:
		return "Marks must be between 0 and 100"
	case ErrInvalidReference:
		return "Referenced student, module, programme or semester does not exist"
	case ErrInvalidTransition:
		return "Enrollment status cannot change once it has left Enrolled"

	case ErrNotFound:
		return "Resource not found"
	case ErrConflict:
		return "Resource already exists"
	case ErrDuplicateEnrollment:
		return "Student is already enrolled in this module for the selected semester"
	case ErrHasDependents:
		return "Cannot delete a record that is still referenced by enrollments"

	case ErrRateLimitExceeded:
		return "Too many requests. Please try again later."

	case ErrInternal:
		return "Something went wrong!"
	default:
		return "An unexpected error occurred"
	}
}
