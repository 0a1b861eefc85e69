package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/madibogo/records-backend/internal/model"
)

// ProgrammeRepository handles faculty and programme data access.
type ProgrammeRepository struct {
	pool *pgxpool.Pool
}

// NewProgrammeRepository creates a new ProgrammeRepository.
func NewProgrammeRepository(pool *pgxpool.Pool) *ProgrammeRepository {
	return &ProgrammeRepository{pool: pool}
}

// List returns every programme with its faculty name, ordered by name.
func (r *ProgrammeRepository) List(ctx context.Context) ([]model.Programme, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT p.programme_code, p.programme_name, p.faculty_code, f.faculty_name, p.duration_years
		 FROM programmes p
		 JOIN faculties f ON f.faculty_code = p.faculty_code
		 ORDER BY p.programme_name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	programmes := []model.Programme{}
	for rows.Next() {
		var p model.Programme
		if err := rows.Scan(&p.Code, &p.Name, &p.FacultyCode, &p.FacultyName, &p.DurationYears); err != nil {
			return nil, err
		}
		programmes = append(programmes, p)
	}
	return programmes, rows.Err()
}

// UpsertFaculty inserts a faculty or renames an existing one.
func (r *ProgrammeRepository) UpsertFaculty(ctx context.Context, f *model.Faculty) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO faculties (faculty_code, faculty_name) VALUES ($1, $2)
		 ON CONFLICT (faculty_code) DO UPDATE SET faculty_name = EXCLUDED.faculty_name`,
		f.Code, f.Name,
	)
	return translate(err)
}

// Upsert inserts a programme or updates an existing one.
func (r *ProgrammeRepository) Upsert(ctx context.Context, p *model.Programme) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO programmes (programme_code, programme_name, faculty_code, duration_years)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (programme_code) DO UPDATE SET
		   programme_name = EXCLUDED.programme_name,
		   faculty_code = EXCLUDED.faculty_code,
		   duration_years = EXCLUDED.duration_years`,
		p.Code, p.Name, p.FacultyCode, p.DurationYears,
	)
	return translate(err)
}
