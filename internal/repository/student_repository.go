package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/madibogo/records-backend/internal/model"
)

// StudentRepository handles student data access.
type StudentRepository struct {
	pool *pgxpool.Pool
}

// NewStudentRepository creates a new StudentRepository.
func NewStudentRepository(pool *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{pool: pool}
}

var studentColumns = []string{
	"s.student_id", "s.name", "s.date_of_birth", "s.email", "s.contact_number",
	"s.programme_code", "p.programme_name", "s.year_enrolled", "s.enrollment_status", "s.password_hash",
}

func studentSelect() squirrel.SelectBuilder {
	return psql.Select(studentColumns...).
		From("students s").
		LeftJoin("programmes p ON p.programme_code = s.programme_code")
}

func scanStudent(row pgx.Row) (*model.Student, error) {
	s := &model.Student{}
	err := row.Scan(&s.ID, &s.Name, &s.DateOfBirth, &s.Email, &s.ContactNumber,
		&s.ProgrammeCode, &s.ProgrammeName, &s.YearEnrolled, &s.EnrollmentStatus, &s.PasswordHash)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (r *StudentRepository) getOne(ctx context.Context, where squirrel.Sqlizer) (*model.Student, error) {
	query, args, err := studentSelect().Where(where).Limit(1).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build student query: %w", err)
	}
	s, err := scanStudent(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, translate(err)
	}
	return s, nil
}

// GetByID retrieves a student by ID.
func (r *StudentRepository) GetByID(ctx context.Context, id int) (*model.Student, error) {
	return r.getOne(ctx, squirrel.Eq{"s.student_id": id})
}

// GetByEmail retrieves a student by their unique email.
func (r *StudentRepository) GetByEmail(ctx context.Context, email string) (*model.Student, error) {
	return r.getOne(ctx, squirrel.Eq{"s.email": email})
}

func applyStudentFilter(b squirrel.SelectBuilder, f model.StudentFilter) squirrel.SelectBuilder {
	if f.ProgrammeCode != "" {
		b = b.Where(squirrel.Eq{"s.programme_code": f.ProgrammeCode})
	}
	if f.Status != "" {
		b = b.Where(squirrel.Eq{"s.enrollment_status": string(f.Status)})
	}
	if f.Search != "" {
		like := "%" + f.Search + "%"
		b = b.Where(squirrel.Or{
			squirrel.ILike{"s.name": like},
			squirrel.ILike{"s.email": like},
		})
	}
	return b
}

// List retrieves students with pagination and optional filters.
func (r *StudentRepository) List(ctx context.Context, f model.StudentFilter, limit, offset int) ([]model.Student, int, error) {
	// 1. Get total count
	countQuery, countArgs, err := applyStudentFilter(
		psql.Select("COUNT(*)").From("students s"), f,
	).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build student count: %w", err)
	}

	var total int
	if err := r.pool.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, err
	}

	// 2. Get paginated data
	query, args, err := applyStudentFilter(studentSelect(), f).
		OrderBy("s.name", "s.student_id").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build student list: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	students := []model.Student{}
	for rows.Next() {
		s, err := scanStudent(rows)
		if err != nil {
			return nil, 0, err
		}
		students = append(students, *s)
	}
	return students, total, rows.Err()
}

// Create inserts a new student.
func (r *StudentRepository) Create(ctx context.Context, s *model.Student) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO students (name, date_of_birth, email, contact_number, programme_code, year_enrolled, enrollment_status, password_hash)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING student_id`,
		s.Name, s.DateOfBirth, s.Email, s.ContactNumber, s.ProgrammeCode, s.YearEnrolled,
		string(s.EnrollmentStatus), s.PasswordHash,
	).Scan(&s.ID)
	return translate(err)
}

// Update modifies a student's profile, excluding the password.
func (r *StudentRepository) Update(ctx context.Context, s *model.Student) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE students SET name = $1, date_of_birth = $2, email = $3, contact_number = $4,
		 programme_code = $5, year_enrolled = $6, enrollment_status = $7
		 WHERE student_id = $8`,
		s.Name, s.DateOfBirth, s.Email, s.ContactNumber, s.ProgrammeCode, s.YearEnrolled,
		string(s.EnrollmentStatus), s.ID,
	)
	if err != nil {
		return translate(err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// UpdatePassword updates a student's password hash.
func (r *StudentRepository) UpdatePassword(ctx context.Context, id int, passwordHash string) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE students SET password_hash = $1 WHERE student_id = $2`, passwordHash, id,
	)
	if err != nil {
		return translate(err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a student by ID.
func (r *StudentRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM students WHERE student_id = $1`, id)
	if err != nil {
		return translate(err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// ListCredentials returns every student id with its stored password value.
func (r *StudentRepository) ListCredentials(ctx context.Context) ([]Credential, error) {
	return listCredentials(ctx, r.pool, `SELECT student_id, password_hash FROM students ORDER BY student_id`)
}
