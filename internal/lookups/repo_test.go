package lookups

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/storelinehq/storeline-backend/pkg/db"
)

func setupLookupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	conn, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	require.NoError(t, err)

	orderStatuses := `
CREATE TABLE IF NOT EXISTS order_statuses (
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  created_at DATETIME,
  updated_at DATETIME
);`
	paymentTypes := `
CREATE TABLE IF NOT EXISTS payment_types (
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  created_at DATETIME,
  updated_at DATETIME
);`
	require.NoError(t, conn.Exec(orderStatuses).Error)
	require.NoError(t, conn.Exec(paymentTypes).Error)
	require.NoError(t, conn.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS ux_order_statuses_name ON order_statuses (name);`).Error)
	require.NoError(t, conn.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS ux_payment_types_name ON payment_types (name);`).Error)
	return conn
}

func TestRepositoryCreateRejectsDuplicateName(t *testing.T) {
	conn := setupLookupTestDB(t)
	repo := NewRepository(conn)
	ctx := context.Background()

	name := "Status-" + uuid.NewString()
	first, err := repo.Create(ctx, KindOrderStatus, name)
	require.NoError(t, err)
	assert.Equal(t, name, first.Name)

	_, err = repo.Create(ctx, KindOrderStatus, name)
	require.Error(t, err)
	assert.True(t, db.IsUniqueViolation(err, ""), "expected unique violation, got %v", err)
}

func TestRepositoryCreateAllowsSameNameAcrossKinds(t *testing.T) {
	conn := setupLookupTestDB(t)
	repo := NewRepository(conn)
	ctx := context.Background()

	name := "Shared-" + uuid.NewString()
	_, err := repo.Create(ctx, KindOrderStatus, name)
	require.NoError(t, err)
	_, err = repo.Create(ctx, KindPaymentType, name)
	require.NoError(t, err)
}

func TestRepositoryListOrdersByName(t *testing.T) {
	conn := setupLookupTestDB(t)
	repo := NewRepository(conn)
	ctx := context.Background()

	suffix := uuid.NewString()
	for _, name := range []string{"B-" + suffix, "A-" + suffix, "C-" + suffix} {
		_, err := repo.Create(ctx, KindPaymentType, name)
		require.NoError(t, err)
	}

	rows, err := repo.List(ctx, KindPaymentType)
	require.NoError(t, err)

	var names []string
	for _, row := range rows {
		names = append(names, row.Name)
	}
	assert.IsIncreasing(t, names)
}

func TestSeedIsIdempotent(t *testing.T) {
	conn := setupLookupTestDB(t)
	repo := NewRepository(conn)
	ctx := context.Background()

	require.NoError(t, Seed(ctx, repo, nil))
	require.NoError(t, Seed(ctx, repo, nil))

	statuses, err := repo.List(ctx, KindOrderStatus)
	require.NoError(t, err)
	types, err := repo.List(ctx, KindPaymentType)
	require.NoError(t, err)

	statusNames := map[string]bool{}
	for _, row := range statuses {
		statusNames[row.Name] = true
	}
	for _, want := range DefaultOrderStatuses {
		assert.True(t, statusNames[want], "missing default status %q", want)
	}
	typeNames := map[string]bool{}
	for _, row := range types {
		typeNames[row.Name] = true
	}
	for _, want := range DefaultPaymentTypes {
		assert.True(t, typeNames[want], "missing default payment type %q", want)
	}

	// second pass must not have doubled anything
	counts := map[string]int{}
	for _, row := range statuses {
		counts[row.Name]++
	}
	for name, n := range counts {
		assert.Equal(t, 1, n, "status %q duplicated", name)
	}
}
