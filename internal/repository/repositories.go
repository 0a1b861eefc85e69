package repository

import (
	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
)

// psql builds Postgres statements with $n placeholders.
var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Repositories bundles every repository sharing one pool.
type Repositories struct {
	Admins      *AdminRepository
	Students    *StudentRepository
	Programmes  *ProgrammeRepository
	Semesters   *SemesterRepository
	Modules     *ModuleRepository
	Enrollments *EnrollmentRepository
	Reports     *ReportRepository
	Catalogue   *CatalogueRepository
}

// New initializes all repositories.
func New(pool *pgxpool.Pool) *Repositories {
	r := &Repositories{
		Admins:      NewAdminRepository(pool),
		Students:    NewStudentRepository(pool),
		Programmes:  NewProgrammeRepository(pool),
		Semesters:   NewSemesterRepository(pool),
		Modules:     NewModuleRepository(pool),
		Enrollments: NewEnrollmentRepository(pool),
		Reports:     NewReportRepository(pool),
	}
	r.Catalogue = NewCatalogueRepository(r.Programmes, r.Semesters, r.Modules)
	return r
}
