package service

import "github.com/madibogo/records-backend/internal/model"

// Operation names a protected action for the access policy.
type Operation int

const (
	OpPublicRead Operation = iota
	OpReadCatalogue
	OpReadOwnRecords
	OpListEnrollments
	OpManageEnrollments
	OpListMarks
	OpRecordMarks
	OpManageModules
	OpManageStudents
	OpViewReports
)

var operationNames = map[Operation]string{
	OpPublicRead:        "public_read",
	OpReadCatalogue:     "read_catalogue",
	OpReadOwnRecords:    "read_own_records",
	OpListEnrollments:   "list_enrollments",
	OpManageEnrollments: "manage_enrollments",
	OpListMarks:         "list_marks",
	OpRecordMarks:       "record_marks",
	OpManageModules:     "manage_modules",
	OpManageStudents:    "manage_students",
	OpViewReports:       "view_reports",
}

func (op Operation) String() string {
	if name, ok := operationNames[op]; ok {
		return name
	}
	return "unknown"
}

// Authorize decides whether principal may perform op. ownerID is the student
// whose records are addressed and is only consulted for OpReadOwnRecords.
func Authorize(principal *model.Principal, op Operation, ownerID *int) error {
	if op == OpPublicRead {
		return nil
	}
	if principal == nil || !principal.Role.Valid() {
		return ErrUnauthenticated
	}

	switch op {
	case OpReadCatalogue:
		return nil
	case OpReadOwnRecords:
		if principal.IsAdmin() {
			return nil
		}
		if ownerID != nil && principal.Role == model.RoleStudent && principal.ID == *ownerID {
			return nil
		}
		return ErrAccessDenied
	case OpListEnrollments, OpManageEnrollments, OpListMarks, OpRecordMarks,
		OpManageModules, OpManageStudents, OpViewReports:
		if principal.IsAdmin() {
			return nil
		}
		return ErrAccessDenied
	}
	return ErrAccessDenied
}
