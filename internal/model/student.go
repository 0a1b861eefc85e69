package model

import "time"

// StudentStatus is the registration state of a student.
type StudentStatus string

const (
	StudentActive    StudentStatus = "Active"
	StudentInactive  StudentStatus = "Inactive"
	StudentGraduated StudentStatus = "Graduated"
	StudentWithdrawn StudentStatus = "Withdrawn"
)

// Student represents a student user.
type Student struct {
	ID               int           `json:"id"`
	Name             string        `json:"name"`
	DateOfBirth      *time.Time    `json:"dateOfBirth,omitempty"`
	Email            string        `json:"email"`
	ContactNumber    *string       `json:"contactNumber,omitempty"`
	ProgrammeCode    *string       `json:"programmeCode,omitempty"`
	ProgrammeName    *string       `json:"programmeName,omitempty"`
	YearEnrolled     *int          `json:"yearEnrolled,omitempty"`
	EnrollmentStatus StudentStatus `json:"enrollmentStatus"`
	PasswordHash     string        `json:"-"`
}

// Principal converts the student into an authenticated identity.
func (s *Student) Principal() *Principal {
	status := s.EnrollmentStatus
	return &Principal{
		ID:               s.ID,
		Role:             RoleStudent,
		Name:             s.Name,
		Email:            s.Email,
		ProgrammeCode:    s.ProgrammeCode,
		YearEnrolled:     s.YearEnrolled,
		EnrollmentStatus: &status,
	}
}

// StudentFilter narrows the admin student listing.
type StudentFilter struct {
	ProgrammeCode string
	Status        StudentStatus
	Search        string
}

// CreateStudentRequest is the payload for creating a new student account.
type CreateStudentRequest struct {
	Name             string        `json:"name" binding:"required,min=2,max=100"`
	DateOfBirth      *Date         `json:"dateOfBirth"`
	Email            string        `json:"email" binding:"required,email,max=100"`
	ContactNumber    *string       `json:"contactNumber" binding:"omitempty,max=20"`
	ProgrammeCode    *string       `json:"programmeCode" binding:"omitempty,catalogue_code"`
	YearEnrolled     *int          `json:"yearEnrolled" binding:"omitempty,min=1900,max=2200"`
	EnrollmentStatus StudentStatus `json:"enrollmentStatus" binding:"omitempty,oneof=Active Inactive Graduated Withdrawn"`
	Password         string        `json:"password" binding:"required,min=6,max=128"`
}

// UpdateStudentRequest is the payload for updating an existing student.
type UpdateStudentRequest struct {
	Name             string        `json:"name" binding:"required,min=2,max=100"`
	DateOfBirth      *Date         `json:"dateOfBirth"`
	Email            string        `json:"email" binding:"required,email,max=100"`
	ContactNumber    *string       `json:"contactNumber" binding:"omitempty,max=20"`
	ProgrammeCode    *string       `json:"programmeCode" binding:"omitempty,catalogue_code"`
	YearEnrolled     *int          `json:"yearEnrolled" binding:"omitempty,min=1900,max=2200"`
	EnrollmentStatus StudentStatus `json:"enrollmentStatus" binding:"required,oneof=Active Inactive Graduated Withdrawn"`
	Password         string        `json:"password" binding:"omitempty,min=6,max=128"`
}
