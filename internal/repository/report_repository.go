package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/madibogo/records-backend/internal/model"
)

// ReportRepository runs aggregate queries for the reporting endpoints.
type ReportRepository struct {
	pool *pgxpool.Pool
}

// NewReportRepository creates a new ReportRepository.
func NewReportRepository(pool *pgxpool.Pool) *ReportRepository {
	return &ReportRepository{pool: pool}
}

// Summary gathers registry-wide counts in one round of queries.
func (r *ReportRepository) Summary(ctx context.Context) (*model.Summary, error) {
	s := &model.Summary{
		GradeDistribution:   map[model.Grade]int{},
		EnrollmentsByStatus: map[model.EnrollmentStatus]int{},
	}

	err := r.pool.QueryRow(ctx,
		`SELECT
		   (SELECT COUNT(*) FROM students),
		   (SELECT COUNT(*) FROM students WHERE enrollment_status = 'Active'),
		   (SELECT COUNT(*) FROM modules),
		   (SELECT COUNT(*) FROM student_enrollments),
		   (SELECT COUNT(*) FROM student_enrollments WHERE mark_obtained IS NOT NULL),
		   (SELECT AVG(mark_obtained)::float8 FROM student_enrollments)`,
	).Scan(&s.TotalStudents, &s.ActiveStudents, &s.TotalModules, &s.TotalEnrollments,
		&s.GradedEnrollments, &s.AverageMark)
	if err != nil {
		return nil, err
	}

	rows, err := r.pool.Query(ctx,
		`SELECT grade, COUNT(*) FROM student_enrollments WHERE grade IS NOT NULL GROUP BY grade`)
	if err != nil {
		return nil, err
	}
	for rows.Next() {
		var g string
		var n int
		if err := rows.Scan(&g, &n); err != nil {
			rows.Close()
			return nil, err
		}
		s.GradeDistribution[model.Grade(g)] = n
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	rows, err = r.pool.Query(ctx, `SELECT status, COUNT(*) FROM student_enrollments GROUP BY status`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var st string
		var n int
		if err := rows.Scan(&st, &n); err != nil {
			return nil, err
		}
		s.EnrollmentsByStatus[model.EnrollmentStatus(st)] = n
	}
	return s, rows.Err()
}
