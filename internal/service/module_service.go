package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/madibogo/records-backend/internal/model"
	"github.com/madibogo/records-backend/internal/repository"
	"github.com/rs/zerolog"
)

// ModuleStore is the persistence the module service needs.
type ModuleStore interface {
	List(ctx context.Context) ([]model.Module, error)
	ListByProgramme(ctx context.Context, programmeCode string) ([]model.Module, error)
	GetByCode(ctx context.Context, code string) (*model.Module, error)
	Create(ctx context.Context, m *model.Module) error
	Update(ctx context.Context, code string, req *model.UpdateModuleRequest) error
	Delete(ctx context.Context, code string) error
}

// ModuleEnrollmentCounter reports how many enrollments reference a module.
type ModuleEnrollmentCounter interface {
	CountByModule(ctx context.Context, moduleCode string) (int, error)
}

// ModuleService handles module catalogue business logic.
type ModuleService struct {
	store       ModuleStore
	enrollments ModuleEnrollmentCounter
	log         zerolog.Logger
}

// NewModuleService creates a new ModuleService.
func NewModuleService(store ModuleStore, enrollments ModuleEnrollmentCounter, log zerolog.Logger) *ModuleService {
	return &ModuleService{
		store:       store,
		enrollments: enrollments,
		log:         log.With().Str("component", "module_service").Logger(),
	}
}

// List returns all modules.
func (s *ModuleService) List(ctx context.Context) ([]model.Module, error) {
	return s.store.List(ctx)
}

// ListByProgramme returns the modules of one programme.
func (s *ModuleService) ListByProgramme(ctx context.Context, programmeCode string) ([]model.Module, error) {
	return s.store.ListByProgramme(ctx, programmeCode)
}

// Get returns one module.
func (s *ModuleService) Get(ctx context.Context, code string) (*model.Module, error) {
	m, err := s.store.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrModuleNotFound
		}
		return nil, fmt.Errorf("get module: %w", err)
	}
	return m, nil
}

// Create adds a module to the catalogue.
func (s *ModuleService) Create(ctx context.Context, req *model.CreateModuleRequest) (*model.Module, error) {
	programme := req.ProgrammeCode
	m := &model.Module{
		Code:            req.Code,
		Name:            req.Name,
		Description:     req.Description,
		CreditHours:     req.CreditHours,
		YearLevel:       req.YearLevel,
		SemesterOffered: req.SemesterOffered,
		ProgrammeCode:   &programme,
	}

	if err := s.store.Create(ctx, m); err != nil {
		switch {
		case errors.Is(err, repository.ErrUniqueViolation):
			return nil, ErrModuleExists
		case errors.Is(err, repository.ErrForeignKeyViolation):
			return nil, ErrInvalidReference
		}
		return nil, fmt.Errorf("create module: %w", err)
	}

	s.log.Info().Str("module_code", m.Code).Msg("module created")
	return m, nil
}

// Update edits a module and returns its new state.
func (s *ModuleService) Update(ctx context.Context, code string, req *model.UpdateModuleRequest) (*model.Module, error) {
	if !req.Empty() {
		if err := s.store.Update(ctx, code, req); err != nil {
			switch {
			case errors.Is(err, repository.ErrNotFound):
				return nil, ErrModuleNotFound
			case errors.Is(err, repository.ErrForeignKeyViolation):
				return nil, ErrInvalidReference
			}
			return nil, fmt.Errorf("update module: %w", err)
		}
		s.log.Info().Str("module_code", code).Msg("module updated")
	}
	return s.Get(ctx, code)
}

// Delete removes a module that no enrollment references.
func (s *ModuleService) Delete(ctx context.Context, code string) error {
	n, err := s.enrollments.CountByModule(ctx, code)
	if err != nil {
		return fmt.Errorf("count module enrollments: %w", err)
	}
	if n > 0 {
		return ErrHasDependents
	}

	if err := s.store.Delete(ctx, code); err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return ErrModuleNotFound
		case errors.Is(err, repository.ErrForeignKeyViolation):
			return ErrHasDependents
		}
		return fmt.Errorf("delete module: %w", err)
	}

	s.log.Info().Str("module_code", code).Msg("module deleted")
	return nil
}
