package repository

import (
	"context"

	"github.com/madibogo/records-backend/internal/model"
)

// CatalogueRepository groups the reference-data upserts used by seeding.
type CatalogueRepository struct {
	programmes *ProgrammeRepository
	semesters  *SemesterRepository
	modules    *ModuleRepository
}

// NewCatalogueRepository creates a new CatalogueRepository.
func NewCatalogueRepository(programmes *ProgrammeRepository, semesters *SemesterRepository, modules *ModuleRepository) *CatalogueRepository {
	return &CatalogueRepository{programmes: programmes, semesters: semesters, modules: modules}
}

func (r *CatalogueRepository) UpsertFaculty(ctx context.Context, f *model.Faculty) error {
	return r.programmes.UpsertFaculty(ctx, f)
}

func (r *CatalogueRepository) UpsertProgramme(ctx context.Context, p *model.Programme) error {
	return r.programmes.Upsert(ctx, p)
}

func (r *CatalogueRepository) UpsertSemester(ctx context.Context, s *model.Semester) error {
	return r.semesters.Upsert(ctx, s)
}

func (r *CatalogueRepository) UpsertModule(ctx context.Context, m *model.Module) error {
	return r.modules.Upsert(ctx, m)
}
