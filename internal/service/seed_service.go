package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/madibogo/records-backend/internal/model"
	"github.com/madibogo/records-backend/internal/repository"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// Catalogue is the seed file layout.
type Catalogue struct {
	Faculties  []model.Faculty   `yaml:"faculties"`
	Programmes []model.Programme `yaml:"programmes"`
	Semesters  []model.Semester  `yaml:"semesters"`
	Modules    []model.Module    `yaml:"modules"`
	Students   []SeedStudent     `yaml:"students"`
}

// SeedStudent is a student entry in the seed file. Password is plaintext
// and hashed on import.
type SeedStudent struct {
	Name          string     `yaml:"name"`
	Email         string     `yaml:"email"`
	Password      string     `yaml:"password"`
	DateOfBirth   *time.Time `yaml:"dateOfBirth"`
	ContactNumber *string    `yaml:"contactNumber"`
	Programme     *string    `yaml:"programme"`
	YearEnrolled  *int       `yaml:"yearEnrolled"`
}

// ParseCatalogue decodes a YAML catalogue, rejecting unknown keys.
func ParseCatalogue(r io.Reader) (*Catalogue, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var c Catalogue
	if err := dec.Decode(&c); err != nil {
		if errors.Is(err, io.EOF) {
			return &c, nil
		}
		return nil, fmt.Errorf("decode catalogue: %w", err)
	}
	return &c, nil
}

// CatalogueWriter upserts reference data.
type CatalogueWriter interface {
	UpsertFaculty(ctx context.Context, f *model.Faculty) error
	UpsertProgramme(ctx context.Context, p *model.Programme) error
	UpsertSemester(ctx context.Context, s *model.Semester) error
	UpsertModule(ctx context.Context, m *model.Module) error
}

// StudentCreator inserts student accounts.
type StudentCreator interface {
	Create(ctx context.Context, s *model.Student) error
}

// SeedResult counts what a seed run wrote.
type SeedResult struct {
	Faculties       int
	Programmes      int
	Semesters       int
	Modules         int
	StudentsCreated int
	StudentsSkipped int
}

// SeedService loads a catalogue into the store. Reference rows are upserted,
// students are created once and skipped if their email already exists.
type SeedService struct {
	catalogue CatalogueWriter
	students  StudentCreator
	hasher    PasswordHasher
	log       zerolog.Logger
}

// NewSeedService creates a new SeedService.
func NewSeedService(catalogue CatalogueWriter, students StudentCreator, hasher PasswordHasher, log zerolog.Logger) *SeedService {
	return &SeedService{
		catalogue: catalogue,
		students:  students,
		hasher:    hasher,
		log:       log.With().Str("component", "seed_service").Logger(),
	}
}

// Apply writes the catalogue in dependency order.
func (s *SeedService) Apply(ctx context.Context, c *Catalogue) (*SeedResult, error) {
	res := &SeedResult{}

	for i := range c.Faculties {
		if err := s.catalogue.UpsertFaculty(ctx, &c.Faculties[i]); err != nil {
			return res, fmt.Errorf("faculty %s: %w", c.Faculties[i].Code, err)
		}
		res.Faculties++
	}
	for i := range c.Programmes {
		if err := s.catalogue.UpsertProgramme(ctx, &c.Programmes[i]); err != nil {
			return res, fmt.Errorf("programme %s: %w", c.Programmes[i].Code, err)
		}
		res.Programmes++
	}
	for i := range c.Semesters {
		if err := s.catalogue.UpsertSemester(ctx, &c.Semesters[i]); err != nil {
			return res, fmt.Errorf("semester %s: %w", c.Semesters[i].Code, err)
		}
		res.Semesters++
	}
	for i := range c.Modules {
		if err := s.catalogue.UpsertModule(ctx, &c.Modules[i]); err != nil {
			return res, fmt.Errorf("module %s: %w", c.Modules[i].Code, err)
		}
		res.Modules++
	}

	for _, st := range c.Students {
		hash, err := s.hasher.HashPassword(st.Password)
		if err != nil {
			return res, fmt.Errorf("hash password for %s: %w", st.Email, err)
		}
		student := &model.Student{
			Name:             st.Name,
			DateOfBirth:      st.DateOfBirth,
			Email:            st.Email,
			ContactNumber:    st.ContactNumber,
			ProgrammeCode:    st.Programme,
			YearEnrolled:     st.YearEnrolled,
			EnrollmentStatus: model.StudentActive,
			PasswordHash:     hash,
		}
		if err := s.students.Create(ctx, student); err != nil {
			if errors.Is(err, repository.ErrUniqueViolation) {
				res.StudentsSkipped++
				continue
			}
			return res, fmt.Errorf("student %s: %w", st.Email, err)
		}
		res.StudentsCreated++
	}

	s.log.Info().
		Int("faculties", res.Faculties).
		Int("programmes", res.Programmes).
		Int("semesters", res.Semesters).
		Int("modules", res.Modules).
		Int("students_created", res.StudentsCreated).
		Int("students_skipped", res.StudentsSkipped).
		Msg("catalogue seeded")
	return res, nil
}
