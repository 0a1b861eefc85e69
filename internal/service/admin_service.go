package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/madibogo/records-backend/internal/model"
	"github.com/madibogo/records-backend/internal/repository"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

// AdminCreator persists admin accounts.
type AdminCreator interface {
	Create(ctx context.Context, a *model.Admin) error
}

// CredentialStore exposes stored password values for one account table.
type CredentialStore interface {
	ListCredentials(ctx context.Context) ([]repository.Credential, error)
	UpdatePassword(ctx context.Context, id int, passwordHash string) error
}

// AdminService handles out-of-band account administration used by the CLIs.
type AdminService struct {
	admins AdminCreator
	hasher PasswordHasher
	log    zerolog.Logger
}

// NewAdminService creates a new AdminService.
func NewAdminService(admins AdminCreator, hasher PasswordHasher, log zerolog.Logger) *AdminService {
	return &AdminService{
		admins: admins,
		hasher: hasher,
		log:    log.With().Str("component", "admin_service").Logger(),
	}
}

// Create hashes the password and stores a new admin.
func (s *AdminService) Create(ctx context.Context, name, email, password string) (*model.Admin, error) {
	hash, err := s.hasher.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	a := &model.Admin{Name: name, Email: email, PasswordHash: hash}
	if err := s.admins.Create(ctx, a); err != nil {
		if errors.Is(err, repository.ErrUniqueViolation) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("create admin: %w", err)
	}

	s.log.Info().Int("admin_id", a.ID).Msg("admin created")
	return a, nil
}

// RehashLegacyPasswords replaces every stored password that is not already
// a bcrypt hash with its bcrypt hash. It returns how many rows changed.
func (s *AdminService) RehashLegacyPasswords(ctx context.Context, store CredentialStore) (int, error) {
	creds, err := store.ListCredentials(ctx)
	if err != nil {
		return 0, fmt.Errorf("list credentials: %w", err)
	}

	changed := 0
	for _, c := range creds {
		if IsBcryptHash(c.Password) {
			continue
		}
		hash, err := s.hasher.HashPassword(c.Password)
		if err != nil {
			return changed, fmt.Errorf("hash password for id %d: %w", c.ID, err)
		}
		if err := store.UpdatePassword(ctx, c.ID, hash); err != nil {
			return changed, fmt.Errorf("update password for id %d: %w", c.ID, err)
		}
		changed++
	}
	return changed, nil
}

// IsBcryptHash reports whether v parses as a bcrypt hash.
func IsBcryptHash(v string) bool {
	_, err := bcrypt.Cost([]byte(v))
	return err == nil
}
