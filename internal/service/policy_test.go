package service

import (
	"errors"
	"testing"

	"github.com/madibogo/records-backend/internal/model"
)

func intPtr(v int) *int { return &v }

type authzCase struct {
	name      string
	principal *model.Principal
	op        Operation
	owner     *int
	want      error
}

func TestAuthorize(t *testing.T) {
	student := &model.Principal{ID: 7, Role: model.RoleStudent}
	admin := &model.Principal{ID: 1, Role: model.RoleAdmin}

	tests := []authzCase{
		{"public without principal", nil, OpPublicRead, nil, nil},
		{"catalogue needs principal", nil, OpReadCatalogue, nil, ErrUnauthenticated},
		{"catalogue for student", student, OpReadCatalogue, nil, nil},
		{"own records as self", student, OpReadOwnRecords, intPtr(7), nil},
		{"own records of another student", student, OpReadOwnRecords, intPtr(8), ErrAccessDenied},
		{"own records without owner", student, OpReadOwnRecords, nil, ErrAccessDenied},
		{"own records as admin", admin, OpReadOwnRecords, intPtr(8), nil},
		{"own records unauthenticated", nil, OpReadOwnRecords, intPtr(7), ErrUnauthenticated},
		{"unknown role", &model.Principal{ID: 7, Role: "guest"}, OpReadOwnRecords, intPtr(7), ErrUnauthenticated},
	}

	adminOnly := []Operation{
		OpListEnrollments, OpManageEnrollments, OpListMarks, OpRecordMarks,
		OpManageModules, OpManageStudents, OpViewReports,
	}
	for _, op := range adminOnly {
		tests = append(tests,
			authzCase{op.String() + " as student", student, op, intPtr(7), ErrAccessDenied},
			authzCase{op.String() + " as admin", admin, op, nil, nil},
			authzCase{op.String() + " unauthenticated", nil, op, nil, ErrUnauthenticated},
		)
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Authorize(tt.principal, tt.op, tt.owner)
			if !errors.Is(err, tt.want) {
				t.Fatalf("Authorize() = %v, want %v", err, tt.want)
			}
		})
	}
}
