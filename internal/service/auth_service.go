package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/madibogo/records-backend/internal/config"
	"github.com/madibogo/records-backend/internal/model"
	"github.com/madibogo/records-backend/internal/repository"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

// Claims extends JWT standard claims with the principal's fields.
type Claims struct {
	jwt.RegisteredClaims
	UserType         model.Role           `json:"userType"`
	UserID           int                  `json:"id"`
	Name             string               `json:"name"`
	Email            string               `json:"email"`
	ProgrammeCode    *string              `json:"programmeCode,omitempty"`    // Student only
	YearEnrolled     *int                 `json:"yearEnrolled,omitempty"`     // Student only
	EnrollmentStatus *model.StudentStatus `json:"enrollmentStatus,omitempty"` // Student only
}

// Principal rebuilds the authenticated identity carried by the token.
func (c *Claims) Principal() *model.Principal {
	return &model.Principal{
		ID:               c.UserID,
		Role:             c.UserType,
		Name:             c.Name,
		Email:            c.Email,
		ProgrammeCode:    c.ProgrammeCode,
		YearEnrolled:     c.YearEnrolled,
		EnrollmentStatus: c.EnrollmentStatus,
	}
}

// StudentFinder looks up student accounts by email.
type StudentFinder interface {
	GetByEmail(ctx context.Context, email string) (*model.Student, error)
}

// AdminFinder looks up admin accounts by email.
type AdminFinder interface {
	GetByEmail(ctx context.Context, email string) (*model.Admin, error)
}

// AuthService verifies credentials and issues, validates and revokes tokens.
type AuthService struct {
	cfg       *config.Config
	rdb       *redis.Client
	students  StudentFinder
	admins    AdminFinder
	dummyHash []byte
	now       func() time.Time
	log       zerolog.Logger
}

// NewAuthService creates a new AuthService. rdb may be nil, in which case
// tokens cannot be revoked before they expire.
func NewAuthService(cfg *config.Config, rdb *redis.Client, students StudentFinder, admins AdminFinder, log zerolog.Logger) *AuthService {
	dummy, err := bcrypt.GenerateFromPassword([]byte("not-a-real-password"), cfg.BcryptCost)
	if err != nil {
		dummy, _ = bcrypt.GenerateFromPassword([]byte("not-a-real-password"), bcrypt.DefaultCost)
	}
	return &AuthService{
		cfg:       cfg,
		rdb:       rdb,
		students:  students,
		admins:    admins,
		dummyHash: dummy,
		now:       time.Now,
		log:       log.With().Str("component", "auth_service").Logger(),
	}
}

// HashPassword hashes a password with the configured bcrypt cost.
func (s *AuthService) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cfg.BcryptCost)
	return string(hash), err
}

// CheckPassword compares a plaintext password against a bcrypt hash.
func (s *AuthService) CheckPassword(hash, password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}

// Verify checks an email/password pair against the account table selected by role.
func (s *AuthService) Verify(ctx context.Context, email, password string, role model.Role) (*model.Principal, error) {
	var (
		hash      string
		principal *model.Principal
		err       error
	)

	switch role {
	case model.RoleStudent:
		var st *model.Student
		st, err = s.students.GetByEmail(ctx, email)
		if err == nil {
			hash, principal = st.PasswordHash, st.Principal()
		}
	case model.RoleAdmin:
		var a *model.Admin
		a, err = s.admins.GetByEmail(ctx, email)
		if err == nil {
			hash, principal = a.PasswordHash, a.Principal()
		}
	default:
		return nil, ErrInvalidCredentials
	}

	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			// Keep timing identical to a wrong password.
			_ = bcrypt.CompareHashAndPassword(s.dummyHash, []byte(password))
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("lookup %s account: %w", role, err)
	}

	if err := s.CheckPassword(hash, password); err != nil {
		return nil, err
	}
	return principal, nil
}

// Login verifies credentials and issues a token for the account.
func (s *AuthService) Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error) {
	principal, err := s.Verify(ctx, req.Email, req.Password, req.UserType)
	if err != nil {
		return nil, err
	}

	token, _, err := s.IssueToken(principal)
	if err != nil {
		return nil, err
	}

	s.log.Info().Int("user_id", principal.ID).Str("user_type", string(principal.Role)).Msg("login succeeded")
	return &model.LoginResponse{Token: token, User: principal, UserType: principal.Role}, nil
}

// IssueToken signs an HS256 token carrying the principal.
func (s *AuthService) IssueToken(p *model.Principal) (string, *Claims, error) {
	now := s.now()
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			Subject:   strconv.Itoa(p.ID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.JWTExpiry)),
		},
		UserType:         p.Role,
		UserID:           p.ID,
		Name:             p.Name,
		Email:            p.Email,
		ProgrammeCode:    p.ProgrammeCode,
		YearEnrolled:     p.YearEnrolled,
		EnrollmentStatus: p.EnrollmentStatus,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return "", nil, fmt.Errorf("sign token: %w", err)
	}
	return signed, claims, nil
}

// ValidateToken parses and validates a token, returning its claims.
func (s *AuthService) ValidateToken(ctx context.Context, tokenStr string) (*Claims, error) {
	if tokenStr == "" {
		return nil, ErrTokenMissing
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(s.cfg.JWTSecret), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenMalformed
	}
	if !token.Valid || !claims.UserType.Valid() || claims.UserID <= 0 {
		return nil, ErrTokenMalformed
	}

	if s.rdb != nil && claims.ID != "" {
		n, err := s.rdb.Exists(ctx, config.CacheKey.RevokedTokenKey(claims.ID)).Result()
		if err != nil {
			s.log.Warn().Err(err).Msg("revocation check unavailable")
		} else if n > 0 {
			return nil, ErrTokenRevoked
		}
	}

	return claims, nil
}

// RevokeToken denylists the token's jti until it would have expired anyway.
func (s *AuthService) RevokeToken(ctx context.Context, claims *Claims) error {
	if s.rdb == nil || claims == nil || claims.ID == "" || claims.ExpiresAt == nil {
		return nil
	}
	ttl := claims.ExpiresAt.Sub(s.now())
	if ttl <= 0 {
		return nil
	}
	if err := s.rdb.Set(ctx, config.CacheKey.RevokedTokenKey(claims.ID), claims.UserID, ttl).Err(); err != nil {
		return fmt.Errorf("revoke token: %w", err)
	}
	return nil
}

// RevocationEnabled reports whether logout can invalidate tokens server side.
func (s *AuthService) RevocationEnabled() bool {
	return s.rdb != nil
}
