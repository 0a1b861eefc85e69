package repository

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

func TestTranslate(t *testing.T) {
	if translate(nil) != nil {
		t.Fatal("translate(nil) should be nil")
	}
	if err := translate(fmt.Errorf("scan: %w", pgx.ErrNoRows)); !errors.Is(err, ErrNotFound) {
		t.Fatalf("no rows -> %v, want ErrNotFound", err)
	}

	dup := &pgconn.PgError{Code: "23505", ConstraintName: "uq_enrollment_triple"}
	err := translate(dup)
	if !errors.Is(err, ErrUniqueViolation) {
		t.Fatalf("23505 -> %v, want ErrUniqueViolation", err)
	}
	if Constraint(err) != "uq_enrollment_triple" {
		t.Fatalf("constraint = %q", Constraint(err))
	}

	fk := &pgconn.PgError{Code: "23503", ConstraintName: "student_enrollments_module_code_fkey"}
	if err := translate(fk); !errors.Is(err, ErrForeignKeyViolation) {
		t.Fatalf("23503 -> %v, want ErrForeignKeyViolation", err)
	}

	other := &pgconn.PgError{Code: "42P01"}
	if err := translate(other); errors.Is(err, ErrUniqueViolation) || errors.Is(err, ErrForeignKeyViolation) || err != other {
		t.Fatalf("unrelated pg error changed: %v", err)
	}
	if Constraint(errors.New("plain")) != "" {
		t.Fatal("plain error has no constraint")
	}
}

func TestEnrollmentFilterSQL(t *testing.T) {
	student := 7
	query, args, err := enrollmentRecordSelect().
		Where("e.student_id = ?", student).
		ToSql()
	if err != nil {
		t.Fatal(err)
	}
	if len(args) != 1 || args[0] != 7 {
		t.Fatalf("args = %v", args)
	}
	for _, want := range []string{"FROM student_enrollments e", "e.student_id = $1", "LEFT JOIN modules m"} {
		if !strings.Contains(query, want) {
			t.Errorf("query missing %q:\n%s", want, query)
		}
	}
}
