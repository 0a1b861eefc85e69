package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/madibogo/records-backend/internal/model"
	"github.com/madibogo/records-backend/internal/repository"
	"github.com/madibogo/records-backend/internal/response"
	"github.com/rs/zerolog"
)

// StudentStore is the persistence the student service needs.
type StudentStore interface {
	GetByID(ctx context.Context, id int) (*model.Student, error)
	List(ctx context.Context, f model.StudentFilter, limit, offset int) ([]model.Student, int, error)
	Create(ctx context.Context, s *model.Student) error
	Update(ctx context.Context, s *model.Student) error
	UpdatePassword(ctx context.Context, id int, passwordHash string) error
	Delete(ctx context.Context, id int) error
}

// StudentEnrollmentCounter reports how many enrollments a student holds.
type StudentEnrollmentCounter interface {
	CountByStudent(ctx context.Context, studentID int) (int, error)
}

// PasswordHasher hashes plaintext passwords.
type PasswordHasher interface {
	HashPassword(password string) (string, error)
}

// StudentService handles student account management.
type StudentService struct {
	store       StudentStore
	enrollments StudentEnrollmentCounter
	hasher      PasswordHasher
	log         zerolog.Logger
}

// NewStudentService creates a new StudentService.
func NewStudentService(store StudentStore, enrollments StudentEnrollmentCounter, hasher PasswordHasher, log zerolog.Logger) *StudentService {
	return &StudentService{
		store:       store,
		enrollments: enrollments,
		hasher:      hasher,
		log:         log.With().Str("component", "student_service").Logger(),
	}
}

// Get returns one student's profile.
func (s *StudentService) Get(ctx context.Context, id int) (*model.Student, error) {
	st, err := s.store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrStudentNotFound
		}
		return nil, fmt.Errorf("get student: %w", err)
	}
	return st, nil
}

// List returns a page of students matching the filter.
func (s *StudentService) List(ctx context.Context, f model.StudentFilter, page, perPage int) ([]model.Student, *response.Pagination, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 20
	}
	if perPage > 100 {
		perPage = 100
	}

	students, total, err := s.store.List(ctx, f, perPage, (page-1)*perPage)
	if err != nil {
		return nil, nil, fmt.Errorf("list students: %w", err)
	}
	if students == nil {
		students = []model.Student{}
	}

	pagination := &response.Pagination{
		Page:       page,
		PerPage:    perPage,
		TotalItems: total,
		TotalPages: (total + perPage - 1) / perPage,
	}
	return students, pagination, nil
}

// Create registers a student account.
func (s *StudentService) Create(ctx context.Context, req *model.CreateStudentRequest) (*model.Student, error) {
	hash, err := s.hasher.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	status := req.EnrollmentStatus
	if status == "" {
		status = model.StudentActive
	}

	st := &model.Student{
		Name:             req.Name,
		DateOfBirth:      req.DateOfBirth.Ptr(),
		Email:            req.Email,
		ContactNumber:    req.ContactNumber,
		ProgrammeCode:    req.ProgrammeCode,
		YearEnrolled:     req.YearEnrolled,
		EnrollmentStatus: status,
		PasswordHash:     hash,
	}
	if err := s.store.Create(ctx, st); err != nil {
		return nil, s.translateWrite(err, "create student")
	}

	s.log.Info().Int("student_id", st.ID).Msg("student created")
	return st, nil
}

// Update edits a student's profile and, when given, their password.
func (s *StudentService) Update(ctx context.Context, id int, req *model.UpdateStudentRequest) (*model.Student, error) {
	st := &model.Student{
		ID:               id,
		Name:             req.Name,
		DateOfBirth:      req.DateOfBirth.Ptr(),
		Email:            req.Email,
		ContactNumber:    req.ContactNumber,
		ProgrammeCode:    req.ProgrammeCode,
		YearEnrolled:     req.YearEnrolled,
		EnrollmentStatus: req.EnrollmentStatus,
	}
	if err := s.store.Update(ctx, st); err != nil {
		return nil, s.translateWrite(err, "update student")
	}

	if req.Password != "" {
		hash, err := s.hasher.HashPassword(req.Password)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		if err := s.store.UpdatePassword(ctx, id, hash); err != nil {
			return nil, s.translateWrite(err, "update student password")
		}
	}

	s.log.Info().Int("student_id", id).Msg("student updated")
	return s.Get(ctx, id)
}

// Delete removes a student who holds no enrollments.
func (s *StudentService) Delete(ctx context.Context, id int) error {
	n, err := s.enrollments.CountByStudent(ctx, id)
	if err != nil {
		return fmt.Errorf("count student enrollments: %w", err)
	}
	if n > 0 {
		return ErrHasDependents
	}

	if err := s.store.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrForeignKeyViolation) {
			return ErrHasDependents
		}
		return s.translateWrite(err, "delete student")
	}

	s.log.Info().Int("student_id", id).Msg("student deleted")
	return nil
}

func (s *StudentService) translateWrite(err error, op string) error {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return ErrStudentNotFound
	case errors.Is(err, repository.ErrUniqueViolation):
		return ErrEmailTaken
	case errors.Is(err, repository.ErrForeignKeyViolation):
		return ErrInvalidReference
	}
	return fmt.Errorf("%s: %w", op, err)
}
