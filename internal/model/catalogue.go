package model

import "time"

// Faculty groups programmes.
type Faculty struct {
	Code string `json:"facultyCode" yaml:"code"`
	Name string `json:"facultyName" yaml:"name"`
}

// Programme is a degree programme offered by a faculty.
type Programme struct {
	Code          string `json:"programmeCode" yaml:"code"`
	Name          string `json:"programmeName" yaml:"name"`
	FacultyCode   string `json:"facultyCode" yaml:"faculty"`
	FacultyName   string `json:"facultyName,omitempty" yaml:"-"`
	DurationYears *int   `json:"durationYears,omitempty" yaml:"durationYears"`
}

// Semester is one half of an academic year.
type Semester struct {
	Code           string     `json:"semesterCode" yaml:"code"`
	AcademicYear   int        `json:"academicYear" yaml:"academicYear"`
	SemesterNumber int        `json:"semesterNumber" yaml:"number"`
	StartDate      *time.Time `json:"startDate,omitempty" yaml:"startDate"`
	EndDate        *time.Time `json:"endDate,omitempty" yaml:"endDate"`
}
