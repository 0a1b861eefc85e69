package model

// Role distinguishes the two kinds of account that can sign in.
type Role string

const (
	RoleStudent Role = "student"
	RoleAdmin   Role = "admin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleStudent || r == RoleAdmin
}

// Principal is the authenticated identity attached to a request.
type Principal struct {
	ID    int    `json:"id"`
	Role  Role   `json:"userType"`
	Name  string `json:"name"`
	Email string `json:"email"`

	// Student only
	ProgrammeCode    *string        `json:"programmeCode,omitempty"`
	YearEnrolled     *int           `json:"yearEnrolled,omitempty"`
	EnrollmentStatus *StudentStatus `json:"enrollmentStatus,omitempty"`
}

// IsAdmin reports whether the principal holds the admin role.
func (p *Principal) IsAdmin() bool {
	return p != nil && p.Role == RoleAdmin
}

// LoginRequest is the payload for both student and admin authentication.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email,max=100"`
	Password string `json:"password" binding:"required,max=128"`
	UserType Role   `json:"userType" binding:"required,oneof=student admin"`
}

// LoginResponse is returned after a successful login.
type LoginResponse struct {
	Token    string     `json:"token"`
	User     *Principal `json:"user"`
	UserType Role       `json:"userType"`
}
