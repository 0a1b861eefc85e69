package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/madibogo/records-backend/internal/model"
)

// ModuleRepository handles module data access.
type ModuleRepository struct {
	pool *pgxpool.Pool
}

// NewModuleRepository creates a new ModuleRepository.
func NewModuleRepository(pool *pgxpool.Pool) *ModuleRepository {
	return &ModuleRepository{pool: pool}
}

func moduleSelect() squirrel.SelectBuilder {
	return psql.Select(
		"m.module_code", "m.module_name", "m.module_description", "m.credit_hours", "m.year_level",
		"m.semester_offered", "m.programme_code", "p.programme_name", "f.faculty_name",
	).
		From("modules m").
		LeftJoin("programmes p ON p.programme_code = m.programme_code").
		LeftJoin("faculties f ON f.faculty_code = p.faculty_code")
}

func scanModule(row pgx.Row) (*model.Module, error) {
	m := &model.Module{}
	err := row.Scan(&m.Code, &m.Name, &m.Description, &m.CreditHours, &m.YearLevel,
		&m.SemesterOffered, &m.ProgrammeCode, &m.ProgrammeName, &m.FacultyName)
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (r *ModuleRepository) query(ctx context.Context, b squirrel.SelectBuilder) ([]model.Module, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build module query: %w", err)
	}
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	modules := []model.Module{}
	for rows.Next() {
		m, err := scanModule(rows)
		if err != nil {
			return nil, err
		}
		modules = append(modules, *m)
	}
	return modules, rows.Err()
}

// List returns all modules with programme and faculty names.
func (r *ModuleRepository) List(ctx context.Context) ([]model.Module, error) {
	return r.query(ctx, moduleSelect().OrderBy("m.module_code"))
}

// ListByProgramme returns a programme's modules ordered by year level and semester.
func (r *ModuleRepository) ListByProgramme(ctx context.Context, programmeCode string) ([]model.Module, error) {
	return r.query(ctx, moduleSelect().
		Where(squirrel.Eq{"m.programme_code": programmeCode}).
		OrderBy("m.year_level", "m.semester_offered NULLS LAST", "m.module_code"))
}

// GetByCode retrieves one module.
func (r *ModuleRepository) GetByCode(ctx context.Context, code string) (*model.Module, error) {
	query, args, err := moduleSelect().Where(squirrel.Eq{"m.module_code": code}).Limit(1).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build module query: %w", err)
	}
	m, err := scanModule(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, translate(err)
	}
	return m, nil
}

// Create inserts a new module.
func (r *ModuleRepository) Create(ctx context.Context, m *model.Module) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO modules (module_code, module_name, module_description, credit_hours, year_level, semester_offered, programme_code)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		m.Code, m.Name, m.Description, m.CreditHours, m.YearLevel, m.SemesterOffered, m.ProgrammeCode,
	)
	return translate(err)
}

// Update applies the non-nil fields of req to the module.
func (r *ModuleRepository) Update(ctx context.Context, code string, req *model.UpdateModuleRequest) error {
	set := map[string]any{}
	if req.Name != nil {
		set["module_name"] = *req.Name
	}
	if req.Description != nil {
		set["module_description"] = *req.Description
	}
	if req.CreditHours != nil {
		set["credit_hours"] = *req.CreditHours
	}
	if req.YearLevel != nil {
		set["year_level"] = *req.YearLevel
	}
	if req.SemesterOffered != nil {
		set["semester_offered"] = *req.SemesterOffered
	}
	if req.ProgrammeCode != nil {
		set["programme_code"] = *req.ProgrammeCode
	}
	if len(set) == 0 {
		return nil
	}

	query, args, err := psql.Update("modules").
		SetMap(set).
		Where(squirrel.Eq{"module_code": code}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build module update: %w", err)
	}

	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return translate(err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Upsert inserts a module or overwrites an existing one.
func (r *ModuleRepository) Upsert(ctx context.Context, m *model.Module) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO modules (module_code, module_name, module_description, credit_hours, year_level, semester_offered, programme_code)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 ON CONFLICT (module_code) DO UPDATE SET
		   module_name = EXCLUDED.module_name,
		   module_description = EXCLUDED.module_description,
		   credit_hours = EXCLUDED.credit_hours,
		   year_level = EXCLUDED.year_level,
		   semester_offered = EXCLUDED.semester_offered,
		   programme_code = EXCLUDED.programme_code`,
		m.Code, m.Name, m.Description, m.CreditHours, m.YearLevel, m.SemesterOffered, m.ProgrammeCode,
	)
	return translate(err)
}

// Delete removes a module. Enrollments referencing it surface as
// ErrForeignKeyViolation.
func (r *ModuleRepository) Delete(ctx context.Context, code string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM modules WHERE module_code = $1`, code)
	if err != nil {
		return translate(err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
