package model

// Module is a taught course unit.
type Module struct {
	Code            string  `json:"moduleCode" yaml:"code"`
	Name            string  `json:"moduleName" yaml:"name"`
	Description     *string `json:"moduleDescription,omitempty" yaml:"description"`
	CreditHours     int     `json:"creditHours" yaml:"creditHours"`
	YearLevel       int     `json:"yearLevel" yaml:"yearLevel"`
	SemesterOffered *int    `json:"semesterOffered,omitempty" yaml:"semester"`
	ProgrammeCode   *string `json:"programmeCode,omitempty" yaml:"programme"`

	// Joined, read-only
	ProgrammeName *string `json:"programmeName,omitempty" yaml:"-"`
	FacultyName   *string `json:"facultyName,omitempty" yaml:"-"`
}

// CreateModuleRequest is the payload for adding a module.
type CreateModuleRequest struct {
	Code            string  `json:"moduleCode" binding:"required,catalogue_code"`
	Name            string  `json:"moduleName" binding:"required,max=100"`
	Description     *string `json:"moduleDescription"`
	CreditHours     int     `json:"creditHours" binding:"required,min=1,max=120"`
	YearLevel       int     `json:"yearLevel" binding:"required,min=1,max=10"`
	SemesterOffered *int    `json:"semesterOffered" binding:"omitempty,oneof=1 2"`
	ProgrammeCode   string  `json:"programmeCode" binding:"required,catalogue_code"`
}

// UpdateModuleRequest is the payload for editing a module. Omitted fields
// keep their stored value.
type UpdateModuleRequest struct {
	Name            *string `json:"moduleName" binding:"omitempty,min=1,max=100"`
	Description     *string `json:"moduleDescription"`
	CreditHours     *int    `json:"creditHours" binding:"omitempty,min=1,max=120"`
	YearLevel       *int    `json:"yearLevel" binding:"omitempty,min=1,max=10"`
	SemesterOffered *int    `json:"semesterOffered" binding:"omitempty,oneof=1 2"`
	ProgrammeCode   *string `json:"programmeCode" binding:"omitempty,catalogue_code"`
}

// Empty reports whether the update carries no changes.
func (r *UpdateModuleRequest) Empty() bool {
	return r.Name == nil && r.Description == nil && r.CreditHours == nil &&
		r.YearLevel == nil && r.SemesterOffered == nil && r.ProgrammeCode == nil
}
