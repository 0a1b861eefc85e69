package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/madibogo/records-backend/internal/model"
	"github.com/madibogo/records-backend/internal/repository"
	"github.com/rs/zerolog"
)

// EnrollmentStore is the persistence the enrollment engine needs.
type EnrollmentStore interface {
	List(ctx context.Context, f model.EnrollmentFilter) ([]model.EnrollmentRecord, error)
	GetByID(ctx context.Context, id int) (*model.Enrollment, error)
	Exists(ctx context.Context, studentID int, moduleCode, semesterCode string) (bool, error)
	Create(ctx context.Context, e *model.Enrollment) error
	SetMark(ctx context.Context, id int, mark float64, grade model.Grade) error
	TransitionFromEnrolled(ctx context.Context, id int, status model.EnrollmentStatus) (bool, error)
	Delete(ctx context.Context, id int) error
}

// EnrollmentService enrolls students, records marks and manages enrollment status.
type EnrollmentService struct {
	store EnrollmentStore
	log   zerolog.Logger
}

// NewEnrollmentService creates a new EnrollmentService.
func NewEnrollmentService(store EnrollmentStore, log zerolog.Logger) *EnrollmentService {
	return &EnrollmentService{
		store: store,
		log:   log.With().Str("component", "enrollment_service").Logger(),
	}
}

// ListForStudent returns a student's enrollments. A student with none gets an empty list.
func (s *EnrollmentService) ListForStudent(ctx context.Context, studentID int) ([]model.EnrollmentRecord, error) {
	return s.store.List(ctx, model.EnrollmentFilter{StudentID: &studentID})
}

// ListMarksForStudent returns a student's enrollments that carry a mark.
func (s *EnrollmentService) ListMarksForStudent(ctx context.Context, studentID int) ([]model.EnrollmentRecord, error) {
	return s.store.List(ctx, model.EnrollmentFilter{StudentID: &studentID, GradedOnly: true})
}

// List returns enrollments across all students.
func (s *EnrollmentService) List(ctx context.Context, f model.EnrollmentFilter) ([]model.EnrollmentRecord, error) {
	return s.store.List(ctx, f)
}

// ListMarks returns every recorded mark with student and module names.
func (s *EnrollmentService) ListMarks(ctx context.Context) ([]model.EnrollmentRecord, error) {
	return s.store.List(ctx, model.EnrollmentFilter{GradedOnly: true})
}

// Enroll registers a student on a module for a semester and returns the new id.
func (s *EnrollmentService) Enroll(ctx context.Context, studentID int, moduleCode, semesterCode string) (int, error) {
	exists, err := s.store.Exists(ctx, studentID, moduleCode, semesterCode)
	if err != nil {
		return 0, fmt.Errorf("check enrollment: %w", err)
	}
	if exists {
		return 0, ErrDuplicateEnrollment
	}

	e := &model.Enrollment{
		StudentID:    studentID,
		ModuleCode:   moduleCode,
		SemesterCode: semesterCode,
	}
	if err := s.store.Create(ctx, e); err != nil {
		switch {
		case errors.Is(err, repository.ErrUniqueViolation):
			// Lost a race with a concurrent enrollment of the same triple.
			return 0, ErrDuplicateEnrollment
		case errors.Is(err, repository.ErrForeignKeyViolation):
			return 0, ErrInvalidReference
		}
		return 0, fmt.Errorf("create enrollment: %w", err)
	}

	s.log.Info().
		Int("enrollment_id", e.ID).
		Int("student_id", studentID).
		Str("module_code", moduleCode).
		Str("semester_code", semesterCode).
		Msg("student enrolled")
	return e.ID, nil
}

// RecordMark stores a mark, rounded to two decimals, and its derived grade,
// returning the grade.
func (s *EnrollmentService) RecordMark(ctx context.Context, enrollmentID int, mark float64) (model.Grade, error) {
	mark = RoundMark(mark)
	if err := ValidateMark(mark); err != nil {
		return "", err
	}

	grade := GradeFor(mark)
	if err := s.store.SetMark(ctx, enrollmentID, mark, grade); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", ErrEnrollmentNotFound
		}
		return "", fmt.Errorf("record mark: %w", err)
	}

	s.log.Info().Int("enrollment_id", enrollmentID).Float64("mark", mark).Str("grade", string(grade)).Msg("mark recorded")
	return grade, nil
}

// UpdateStatus moves an Enrolled enrollment to Completed or Withdrawn.
func (s *EnrollmentService) UpdateStatus(ctx context.Context, enrollmentID int, to model.EnrollmentStatus) error {
	if to != model.EnrollmentCompleted && to != model.EnrollmentWithdrawn {
		return ErrInvalidTransition
	}

	ok, err := s.store.TransitionFromEnrolled(ctx, enrollmentID, to)
	if err != nil {
		return fmt.Errorf("update enrollment status: %w", err)
	}
	if ok {
		return nil
	}

	// Nothing matched: either the row is missing or it already left Enrolled.
	if _, err := s.store.GetByID(ctx, enrollmentID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrEnrollmentNotFound
		}
		return fmt.Errorf("load enrollment: %w", err)
	}
	return ErrInvalidTransition
}

// DeleteEnrollment removes an enrollment.
func (s *EnrollmentService) DeleteEnrollment(ctx context.Context, enrollmentID int) error {
	if err := s.store.Delete(ctx, enrollmentID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrEnrollmentNotFound
		}
		return fmt.Errorf("delete enrollment: %w", err)
	}
	s.log.Info().Int("enrollment_id", enrollmentID).Msg("enrollment deleted")
	return nil
}
