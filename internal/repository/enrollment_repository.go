package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/madibogo/records-backend/internal/model"
)

// EnrollmentRepository handles student enrollment data access.
type EnrollmentRepository struct {
	pool *pgxpool.Pool
}

// NewEnrollmentRepository creates a new EnrollmentRepository.
func NewEnrollmentRepository(pool *pgxpool.Pool) *EnrollmentRepository {
	return &EnrollmentRepository{pool: pool}
}

func enrollmentRecordSelect() squirrel.SelectBuilder {
	return psql.Select(
		"e.enrollment_id", "e.student_id", "e.module_code", "e.semester_code", "e.mark_obtained::float8",
		"e.grade", "e.enrollment_date", "e.status",
		"st.name", "m.module_name", "m.module_description", "m.credit_hours",
		"s.academic_year", "s.semester_number", "p.programme_name",
	).
		From("student_enrollments e").
		LeftJoin("students st ON st.student_id = e.student_id").
		LeftJoin("modules m ON m.module_code = e.module_code").
		LeftJoin("semesters s ON s.semester_code = e.semester_code").
		LeftJoin("programmes p ON p.programme_code = m.programme_code")
}

// List returns enrollment records matching the filter, newest semester first.
func (r *EnrollmentRepository) List(ctx context.Context, f model.EnrollmentFilter) ([]model.EnrollmentRecord, error) {
	b := enrollmentRecordSelect()
	if f.StudentID != nil {
		b = b.Where(squirrel.Eq{"e.student_id": *f.StudentID})
	}
	if f.ModuleCode != "" {
		b = b.Where(squirrel.Eq{"e.module_code": f.ModuleCode})
	}
	if f.SemesterCode != "" {
		b = b.Where(squirrel.Eq{"e.semester_code": f.SemesterCode})
	}
	if f.GradedOnly {
		b = b.Where(squirrel.NotEq{"e.mark_obtained": nil})
	}

	query, args, err := b.
		OrderBy("s.academic_year DESC", "s.semester_number DESC", "e.module_code", "e.enrollment_id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build enrollment query: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []model.EnrollmentRecord{}
	for rows.Next() {
		var rec model.EnrollmentRecord
		if err := rows.Scan(
			&rec.ID, &rec.StudentID, &rec.ModuleCode, &rec.SemesterCode, &rec.MarkObtained,
			&rec.Grade, &rec.EnrollmentDate, &rec.Status,
			&rec.StudentName, &rec.ModuleName, &rec.ModuleDescription, &rec.CreditHours,
			&rec.AcademicYear, &rec.SemesterNumber, &rec.ProgrammeName,
		); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// GetByID retrieves a single enrollment.
func (r *EnrollmentRepository) GetByID(ctx context.Context, id int) (*model.Enrollment, error) {
	e := &model.Enrollment{}
	err := r.pool.QueryRow(ctx,
		`SELECT enrollment_id, student_id, module_code, semester_code, mark_obtained::float8, grade, enrollment_date, status
		 FROM student_enrollments WHERE enrollment_id = $1`, id,
	).Scan(&e.ID, &e.StudentID, &e.ModuleCode, &e.SemesterCode, &e.MarkObtained, &e.Grade, &e.EnrollmentDate, &e.Status)
	if err != nil {
		return nil, translate(err)
	}
	return e, nil
}

// Exists reports whether the student already holds the module in the semester.
func (r *EnrollmentRepository) Exists(ctx context.Context, studentID int, moduleCode, semesterCode string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (
		   SELECT 1 FROM student_enrollments
		   WHERE student_id = $1 AND module_code = $2 AND semester_code = $3
		 )`, studentID, moduleCode, semesterCode,
	).Scan(&exists)
	return exists, err
}

// Create inserts an ungraded enrollment in the Enrolled state.
func (r *EnrollmentRepository) Create(ctx context.Context, e *model.Enrollment) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO student_enrollments (student_id, module_code, semester_code, enrollment_date, status)
		 VALUES ($1, $2, $3, CURRENT_DATE, $4)
		 RETURNING enrollment_id, enrollment_date`,
		e.StudentID, e.ModuleCode, e.SemesterCode, string(model.EnrollmentEnrolled),
	).Scan(&e.ID, &e.EnrollmentDate)
	if err != nil {
		return translate(err)
	}
	e.Status = model.EnrollmentEnrolled
	return nil
}

// SetMark writes mark and grade in one statement.
func (r *EnrollmentRepository) SetMark(ctx context.Context, id int, mark float64, grade model.Grade) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE student_enrollments SET mark_obtained = $1, grade = $2 WHERE enrollment_id = $3`,
		mark, string(grade), id,
	)
	if err != nil {
		return translate(err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// TransitionFromEnrolled moves an Enrolled row to status. It reports false
// when no row in the Enrolled state matched.
func (r *EnrollmentRepository) TransitionFromEnrolled(ctx context.Context, id int, status model.EnrollmentStatus) (bool, error) {
	tag, err := r.pool.Exec(ctx,
		`UPDATE student_enrollments SET status = $1 WHERE enrollment_id = $2 AND status = $3`,
		string(status), id, string(model.EnrollmentEnrolled),
	)
	if err != nil {
		return false, translate(err)
	}
	return tag.RowsAffected() == 1, nil
}

// Delete removes an enrollment by ID.
func (r *EnrollmentRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM student_enrollments WHERE enrollment_id = $1`, id)
	if err != nil {
		return translate(err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// CountByModule returns how many enrollments reference the module.
func (r *EnrollmentRepository) CountByModule(ctx context.Context, moduleCode string) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM student_enrollments WHERE module_code = $1`, moduleCode,
	).Scan(&n)
	return n, err
}

// CountByStudent returns how many enrollments belong to the student.
func (r *EnrollmentRepository) CountByStudent(ctx context.Context, studentID int) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM student_enrollments WHERE student_id = $1`, studentID,
	).Scan(&n)
	return n, err
}
