package lookups

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/storelinehq/storeline-backend/pkg/db"
	pkgerrors "github.com/storelinehq/storeline-backend/pkg/errors"
	"github.com/storelinehq/storeline-backend/pkg/logger"
)

// Store is the persistence surface required by the lookup service.
type Store interface {
	Create(ctx context.Context, kind Kind, name string) (*Row, error)
	InsertIgnore(ctx context.Context, kind Kind, name string) error
	List(ctx context.Context, kind Kind) ([]Row, error)
}

// Cache is the read-through cache surface; satisfied by pkg/redis.Client.
// A nil Cache disables caching entirely.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Del(ctx context.Context, keys ...string) error
	LookupKey(kind string) string
}

// LookupDTO is the outward representation of a lookup row.
type LookupDTO struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// ServiceParams groups dependencies for the lookup service.
type ServiceParams struct {
	Repo     Store
	Cache    Cache
	CacheTTL time.Duration
	Logger   *logger.Logger
}

// Service manages the admin-seeded lookup tables.
type Service interface {
	Create(ctx context.Context, kind Kind, name string) (LookupDTO, error)
	List(ctx context.Context, kind Kind) ([]LookupDTO, error)
}

type service struct {
	repo     Store
	cache    Cache
	cacheTTL time.Duration
	logg     *logger.Logger
}

// NewService builds a lookup service with the required dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "lookup repo is required")
	}
	ttl := params.CacheTTL
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &service{
		repo:     params.Repo,
		cache:    params.Cache,
		cacheTTL: ttl,
		logg:     params.Logger,
	}, nil
}

// Create inserts a new lookup row. Names are compared case-sensitively, so
// "Pending" and "pending" are distinct values.
func (s *service) Create(ctx context.Context, kind Kind, name string) (LookupDTO, error) {
	if !kind.IsValid() {
		return LookupDTO{}, pkgerrors.New(pkgerrors.CodeValidation, "unknown lookup kind")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return LookupDTO{}, pkgerrors.New(pkgerrors.CodeValidation, "name is required")
	}

	row, err := s.repo.Create(ctx, kind, name)
	if err != nil {
		if db.IsUniqueViolation(err, UniqueConstraint(kind)) || db.IsUniqueViolation(err, "") {
			return LookupDTO{}, pkgerrors.Wrap(pkgerrors.CodeConflict, err, "name already exists").
				WithDetails(map[string]any{"kind": kind.String(), "name": name})
		}
		return LookupDTO{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create lookup row")
	}

	s.invalidate(ctx, kind)
	if s.logg != nil {
		s.logg.Info(s.logg.WithField(ctx, "lookup_kind", kind.String()), "lookup row created")
	}
	return LookupDTO{ID: row.ID, Name: row.Name, CreatedAt: row.CreatedAt}, nil
}

// List returns all rows of a lookup table, reading through the cache when
// one is configured.
func (s *service) List(ctx context.Context, kind Kind) ([]LookupDTO, error) {
	if !kind.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "unknown lookup kind")
	}

	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, s.cache.LookupKey(kind.String())); err == nil {
			var dtos []LookupDTO
			if unmarshalErr := json.Unmarshal([]byte(cached), &dtos); unmarshalErr == nil {
				return dtos, nil
			}
			// poisoned entry; fall through to the database
			s.invalidate(ctx, kind)
		}
	}

	rows, err := s.repo.List(ctx, kind)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list lookup rows")
	}

	dtos := make([]LookupDTO, 0, len(rows))
	for _, row := range rows {
		dtos = append(dtos, LookupDTO{ID: row.ID, Name: row.Name, CreatedAt: row.CreatedAt})
	}

	if s.cache != nil {
		if payload, err := json.Marshal(dtos); err == nil {
			if setErr := s.cache.Set(ctx, s.cache.LookupKey(kind.String()), string(payload), s.cacheTTL); setErr != nil && s.logg != nil {
				s.logg.Warn(ctx, "lookup cache write failed")
			}
		}
	}
	return dtos, nil
}

func (s *service) invalidate(ctx context.Context, kind Kind) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx, s.cache.LookupKey(kind.String())); err != nil && s.logg != nil {
		s.logg.Warn(ctx, "lookup cache invalidation failed")
	}
}
