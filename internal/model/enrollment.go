package model

import "time"

// EnrollmentStatus is the lifecycle state of an enrollment.
type EnrollmentStatus string

const (
	EnrollmentEnrolled  EnrollmentStatus = "Enrolled"
	EnrollmentCompleted EnrollmentStatus = "Completed"
	EnrollmentWithdrawn EnrollmentStatus = "Withdrawn"
)

// Grade is the letter derived from a mark.
type Grade string

const (
	GradeA Grade = "A"
	GradeB Grade = "B"
	GradeC Grade = "C"
	GradeD Grade = "D"
	GradeF Grade = "F"
)

// Enrollment associates one student with one module in one semester.
type Enrollment struct {
	ID             int              `json:"enrollmentId"`
	StudentID      int              `json:"studentId"`
	ModuleCode     string           `json:"moduleCode"`
	SemesterCode   string           `json:"semesterCode"`
	MarkObtained   *float64         `json:"markObtained"`
	Grade          *Grade           `json:"grade"`
	EnrollmentDate time.Time        `json:"enrollmentDate"`
	Status         EnrollmentStatus `json:"status"`
}

// EnrollmentRecord is an enrollment joined with the names a transcript needs.
type EnrollmentRecord struct {
	Enrollment
	StudentName       *string `json:"studentName,omitempty"`
	ModuleName        *string `json:"moduleName,omitempty"`
	ModuleDescription *string `json:"moduleDescription,omitempty"`
	CreditHours       *int    `json:"creditHours,omitempty"`
	AcademicYear      *int    `json:"academicYear,omitempty"`
	SemesterNumber    *int    `json:"semesterNumber,omitempty"`
	ProgrammeName     *string `json:"programmeName,omitempty"`
}

// EnrollmentFilter narrows the admin enrollment listing.
type EnrollmentFilter struct {
	StudentID    *int
	ModuleCode   string
	SemesterCode string
	GradedOnly   bool
}

// CreateEnrollmentRequest is the payload for enrolling a student.
type CreateEnrollmentRequest struct {
	StudentID    int    `json:"studentId" binding:"required,min=1"`
	ModuleCode   string `json:"moduleCode" binding:"required,catalogue_code"`
	SemesterCode string `json:"semesterCode" binding:"required,catalogue_code"`
}

// RecordMarkRequest is the payload for recording a mark. The range check
// belongs to the grading rules, not binding, so any number is accepted here.
type RecordMarkRequest struct {
	EnrollmentID int      `json:"enrollmentId" binding:"required,min=1"`
	MarkObtained *float64 `json:"markObtained" binding:"required"`
}

// UpdateEnrollmentStatusRequest moves an enrollment out of Enrolled.
type UpdateEnrollmentStatusRequest struct {
	Status EnrollmentStatus `json:"status" binding:"required,oneof=Enrolled Completed Withdrawn"`
}
