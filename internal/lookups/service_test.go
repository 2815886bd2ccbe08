package lookups

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	pkgerrors "github.com/storelinehq/storeline-backend/pkg/errors"
)

type stubStore struct {
	createErr error
	rows      []Row
	created   []string
	listCalls int
}

func (s *stubStore) Create(ctx context.Context, kind Kind, name string) (*Row, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	s.created = append(s.created, name)
	row := Row{ID: uuid.New(), Name: name, CreatedAt: time.Now()}
	s.rows = append(s.rows, row)
	return &row, nil
}

func (s *stubStore) InsertIgnore(ctx context.Context, kind Kind, name string) error {
	for _, existing := range s.created {
		if existing == name {
			return nil
		}
	}
	s.created = append(s.created, name)
	return nil
}

func (s *stubStore) List(ctx context.Context, kind Kind) ([]Row, error) {
	s.listCalls++
	return s.rows, nil
}

type stubCache struct {
	entries map[string]string
	sets    int
	dels    int
}

func newStubCache() *stubCache {
	return &stubCache{entries: map[string]string{}}
}

func (c *stubCache) Get(ctx context.Context, key string) (string, error) {
	value, ok := c.entries[key]
	if !ok {
		return "", errors.New("cache miss")
	}
	return value, nil
}

func (c *stubCache) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	c.sets++
	c.entries[key] = value.(string)
	return nil
}

func (c *stubCache) Del(ctx context.Context, keys ...string) error {
	c.dels++
	for _, key := range keys {
		delete(c.entries, key)
	}
	return nil
}

func (c *stubCache) LookupKey(kind string) string {
	return "sl:lookup:" + kind
}

func newLookupService(t *testing.T, repo Store, cache Cache) Service {
	t.Helper()
	svc, err := NewService(ServiceParams{Repo: repo, Cache: cache, CacheTTL: time.Minute})
	if err != nil {
		t.Fatalf("building service: %v", err)
	}
	return svc
}

func TestCreateRejectsUnknownKind(t *testing.T) {
	t.Parallel()

	svc := newLookupService(t, &stubStore{}, nil)

	_, err := svc.Create(context.Background(), Kind("colors"), "Red")
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestCreateRejectsBlankName(t *testing.T) {
	t.Parallel()

	svc := newLookupService(t, &stubStore{}, nil)

	_, err := svc.Create(context.Background(), KindOrderStatus, "   ")
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestCreateTranslatesDuplicateToConflict(t *testing.T) {
	t.Parallel()

	repo := &stubStore{createErr: errors.New(`UNIQUE constraint failed: order_statuses.name`)}
	svc := newLookupService(t, repo, nil)

	_, err := svc.Create(context.Background(), KindOrderStatus, "Pending")
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeConflict {
		t.Fatalf("expected conflict error, got %v", err)
	}
	if typed.Details() == nil {
		t.Fatal("expected conflict details naming the duplicate")
	}
}

func TestCreateInvalidatesCache(t *testing.T) {
	t.Parallel()

	cache := newStubCache()
	cache.entries[cache.LookupKey(KindOrderStatus.String())] = `[]`
	svc := newLookupService(t, &stubStore{}, cache)

	if _, err := svc.Create(context.Background(), KindOrderStatus, "Awaiting Pickup"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cache.dels != 1 {
		t.Fatalf("expected one cache invalidation, got %d", cache.dels)
	}
}

func TestListReadsThroughCache(t *testing.T) {
	t.Parallel()

	repo := &stubStore{rows: []Row{{ID: uuid.New(), Name: "Pending"}}}
	cache := newStubCache()
	svc := newLookupService(t, repo, cache)

	first, err := svc.List(context.Background(), KindOrderStatus)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(first) != 1 || repo.listCalls != 1 || cache.sets != 1 {
		t.Fatalf("expected one DB read and one cache fill, got calls=%d sets=%d", repo.listCalls, cache.sets)
	}

	second, err := svc.List(context.Background(), KindOrderStatus)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(second) != 1 || repo.listCalls != 1 {
		t.Fatalf("expected cache hit to skip the DB, got %d calls", repo.listCalls)
	}
}

func TestListRecoversFromPoisonedCache(t *testing.T) {
	t.Parallel()

	repo := &stubStore{rows: []Row{{ID: uuid.New(), Name: "Delivered"}}}
	cache := newStubCache()
	cache.entries[cache.LookupKey(KindOrderStatus.String())] = `{not json`
	svc := newLookupService(t, repo, cache)

	dtos, err := svc.List(context.Background(), KindOrderStatus)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(dtos) != 1 || dtos[0].Name != "Delivered" {
		t.Fatalf("expected DB fallback result, got %+v", dtos)
	}
	if repo.listCalls != 1 || cache.dels != 1 {
		t.Fatalf("expected DB read and poisoned entry drop, got calls=%d dels=%d", repo.listCalls, cache.dels)
	}
}

func TestListWorksWithoutCache(t *testing.T) {
	t.Parallel()

	repo := &stubStore{rows: []Row{{ID: uuid.New(), Name: "Credit Card"}}}
	svc := newLookupService(t, repo, nil)

	dtos, err := svc.List(context.Background(), KindPaymentType)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(dtos) != 1 {
		t.Fatalf("expected one row, got %d", len(dtos))
	}
}
