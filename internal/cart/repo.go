package cart

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/storelinehq/storeline-backend/pkg/db/models"
)

// Repository exposes persistence operations for carts.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a cart repository bound to the provided DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// WithTx binds the repository to a transaction.
func (r *Repository) WithTx(tx *gorm.DB) CartRepository {
	if tx == nil {
		return r
	}
	return &Repository{db: tx}
}

// Create inserts a new cart. IDs are generated client-side so the repository
// behaves identically on stores without gen_random_uuid.
func (r *Repository) Create(ctx context.Context, cart *models.Cart) (*models.Cart, error) {
	if cart.ID == uuid.Nil {
		cart.ID = uuid.New()
	}
	if err := r.db.WithContext(ctx).Create(cart).Error; err != nil {
		return nil, err
	}
	return cart, nil
}

// FindByID loads a cart with its items and their batch details.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Cart, error) {
	var cart models.Cart
	err := r.db.WithContext(ctx).
		Preload("Items").
		Preload("Items.Batch").
		Where("id = ?", id).
		First(&cart).Error
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

// Delete removes the cart row and reports how many rows were affected.
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Cart{})
	return result.RowsAffected, result.Error
}

// DeleteItems removes every item owned by the cart.
func (r *Repository) DeleteItems(ctx context.Context, cartID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("cart_id = ?", cartID).
		Delete(&models.CartItem{}).
		Error
}

// CountItems returns how many items the cart currently holds.
func (r *Repository) CountItems(ctx context.Context, cartID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.CartItem{}).
		Where("cart_id = ?", cartID).
		Count(&count).
		Error
	return count, err
}
