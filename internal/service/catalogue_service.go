package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/madibogo/records-backend/internal/config"
	"github.com/madibogo/records-backend/internal/model"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// ProgrammeLister lists programmes with their faculty names.
type ProgrammeLister interface {
	List(ctx context.Context) ([]model.Programme, error)
}

// SemesterLister lists semesters, newest first.
type SemesterLister interface {
	List(ctx context.Context) ([]model.Semester, error)
}

// CatalogueService serves the public programme and semester listings,
// cached in Redis when available.
type CatalogueService struct {
	programmes ProgrammeLister
	semesters  SemesterLister
	rdb        *redis.Client
	ttl        time.Duration
	log        zerolog.Logger
}

// NewCatalogueService creates a new CatalogueService. rdb may be nil.
func NewCatalogueService(programmes ProgrammeLister, semesters SemesterLister, rdb *redis.Client, ttl time.Duration, log zerolog.Logger) *CatalogueService {
	return &CatalogueService{
		programmes: programmes,
		semesters:  semesters,
		rdb:        rdb,
		ttl:        ttl,
		log:        log.With().Str("component", "catalogue_service").Logger(),
	}
}

// ListProgrammes returns all programmes ordered by name.
func (s *CatalogueService) ListProgrammes(ctx context.Context) ([]model.Programme, error) {
	return cached(ctx, s, config.CacheKey.ProgrammeListKey(), s.programmes.List)
}

// ListSemesters returns all semesters, newest first.
func (s *CatalogueService) ListSemesters(ctx context.Context) ([]model.Semester, error) {
	return cached(ctx, s, config.CacheKey.SemesterListKey(), s.semesters.List)
}

// Invalidate drops the cached listings, e.g. after seeding.
func (s *CatalogueService) Invalidate(ctx context.Context) error {
	if s.rdb == nil {
		return nil
	}
	return s.rdb.Del(ctx, config.CacheKey.ProgrammeListKey(), config.CacheKey.SemesterListKey()).Err()
}

func cached[T any](ctx context.Context, s *CatalogueService, key string, load func(context.Context) ([]T, error)) ([]T, error) {
	if s.rdb == nil || s.ttl <= 0 {
		return load(ctx)
	}

	data, err := s.rdb.Get(ctx, key).Bytes()
	if err == nil {
		var items []T
		if err := json.Unmarshal(data, &items); err == nil {
			return items, nil
		}
		s.log.Warn().Str("key", key).Msg("discarding unreadable cache entry")
	} else if !errors.Is(err, redis.Nil) {
		s.log.Warn().Err(err).Str("key", key).Msg("catalogue cache read failed")
	}

	items, err := load(ctx)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(items); err == nil {
		if err := s.rdb.Set(ctx, key, payload, s.ttl).Err(); err != nil {
			s.log.Warn().Err(err).Str("key", key).Msg("catalogue cache write failed")
		}
	}
	return items, nil
}
