package lookups

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/storelinehq/storeline-backend/pkg/db/models"
)

// uniqueConstraintByKind maps each lookup table to its name index so unique
// violations can be recognized precisely.
var uniqueConstraintByKind = map[Kind]string{
	KindOrderStatus: "ux_order_statuses_name",
	KindPaymentType: "ux_payment_types_name",
}

// Row is the flattened shape shared by both lookup tables.
type Row struct {
	ID        uuid.UUID
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Repository persists the admin-seeded lookup tables.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a lookup repository bound to the provided DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new row into the requested lookup table. The underlying
// unique index rejects duplicate names; callers translate that failure.
func (r *Repository) Create(ctx context.Context, kind Kind, name string) (*Row, error) {
	switch kind {
	case KindOrderStatus:
		row := models.OrderStatus{ID: uuid.New(), Name: name}
		if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
			return nil, err
		}
		return &Row{ID: row.ID, Name: row.Name, CreatedAt: row.CreatedAt, UpdatedAt: row.UpdatedAt}, nil
	case KindPaymentType:
		row := models.PaymentType{ID: uuid.New(), Name: name}
		if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
			return nil, err
		}
		return &Row{ID: row.ID, Name: row.Name, CreatedAt: row.CreatedAt, UpdatedAt: row.UpdatedAt}, nil
	default:
		return nil, fmt.Errorf("unknown lookup kind %q", kind)
	}
}

// InsertIgnore adds a row unless the name already exists. Used by seeding.
func (r *Repository) InsertIgnore(ctx context.Context, kind Kind, name string) error {
	if !kind.IsValid() {
		return fmt.Errorf("unknown lookup kind %q", kind)
	}
	now := time.Now().UTC()
	return r.db.WithContext(ctx).Exec(
		fmt.Sprintf(`INSERT INTO %s (id, name, created_at, updated_at) VALUES (?, ?, ?, ?) ON CONFLICT (name) DO NOTHING`, kind),
		uuid.New(), name, now, now,
	).Error
}

// List returns every row of the requested lookup table ordered by name.
func (r *Repository) List(ctx context.Context, kind Kind) ([]Row, error) {
	switch kind {
	case KindOrderStatus:
		var rows []models.OrderStatus
		if err := r.db.WithContext(ctx).Order("name ASC").Find(&rows).Error; err != nil {
			return nil, err
		}
		out := make([]Row, 0, len(rows))
		for _, row := range rows {
			out = append(out, Row{ID: row.ID, Name: row.Name, CreatedAt: row.CreatedAt, UpdatedAt: row.UpdatedAt})
		}
		return out, nil
	case KindPaymentType:
		var rows []models.PaymentType
		if err := r.db.WithContext(ctx).Order("name ASC").Find(&rows).Error; err != nil {
			return nil, err
		}
		out := make([]Row, 0, len(rows))
		for _, row := range rows {
			out = append(out, Row{ID: row.ID, Name: row.Name, CreatedAt: row.CreatedAt, UpdatedAt: row.UpdatedAt})
		}
		return out, nil
	default:
		return nil, fmt.Errorf("unknown lookup kind %q", kind)
	}
}

// UniqueConstraint names the unique index guarding the kind's name column.
func UniqueConstraint(kind Kind) string {
	return uniqueConstraintByKind[kind]
}
