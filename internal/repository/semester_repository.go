package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/madibogo/records-backend/internal/model"
)

// SemesterRepository handles semester data access.
type SemesterRepository struct {
	pool *pgxpool.Pool
}

// NewSemesterRepository creates a new SemesterRepository.
func NewSemesterRepository(pool *pgxpool.Pool) *SemesterRepository {
	return &SemesterRepository{pool: pool}
}

// List returns all semesters, newest first.
func (r *SemesterRepository) List(ctx context.Context) ([]model.Semester, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT semester_code, academic_year, semester_number, start_date, end_date
		 FROM semesters
		 ORDER BY academic_year DESC, semester_number DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	semesters := []model.Semester{}
	for rows.Next() {
		var s model.Semester
		if err := rows.Scan(&s.Code, &s.AcademicYear, &s.SemesterNumber, &s.StartDate, &s.EndDate); err != nil {
			return nil, err
		}
		semesters = append(semesters, s)
	}
	return semesters, rows.Err()
}

// Upsert inserts a semester or updates its dates.
func (r *SemesterRepository) Upsert(ctx context.Context, s *model.Semester) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO semesters (semester_code, academic_year, semester_number, start_date, end_date)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (semester_code) DO UPDATE SET
		   academic_year = EXCLUDED.academic_year,
		   semester_number = EXCLUDED.semester_number,
		   start_date = EXCLUDED.start_date,
		   end_date = EXCLUDED.end_date`,
		s.Code, s.AcademicYear, s.SemesterNumber, s.StartDate, s.EndDate,
	)
	return translate(err)
}
