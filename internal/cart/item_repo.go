package cart

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/storelinehq/storeline-backend/pkg/db/models"
)

// ItemRepository manages persistent cart items.
type ItemRepository struct {
	db *gorm.DB
}

// NewItemRepository binds the repository to the provided DB handle.
func NewItemRepository(db *gorm.DB) *ItemRepository {
	return &ItemRepository{db: db}
}

// WithTx scopes the repository to the provided transaction.
func (r *ItemRepository) WithTx(tx *gorm.DB) CartItemRepository {
	if tx == nil {
		return r
	}
	return &ItemRepository{db: tx}
}

// Upsert inserts an item for (cartID, batchID) or, when the pair already
// exists, atomically increments the stored quantity. The unique index on the
// pair makes concurrent adds safe without an application lock.
func (r *ItemRepository) Upsert(ctx context.Context, cartID, batchID uuid.UUID, quantity int) (*models.CartItem, error) {
	now := time.Now().UTC()
	err := r.db.WithContext(ctx).Exec(
		`INSERT INTO cart_items (id, cart_id, batch_id, quantity, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT (cart_id, batch_id)
		 DO UPDATE SET quantity = cart_items.quantity + excluded.quantity, updated_at = excluded.updated_at`,
		uuid.New(), cartID, batchID, quantity, now, now,
	).Error
	if err != nil {
		return nil, err
	}
	return r.findByPair(ctx, cartID, batchID)
}

// FindByID loads a single item.
func (r *ItemRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.CartItem, error) {
	var item models.CartItem
	if err := r.db.WithContext(ctx).First(&item, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// UpdateQuantity overwrites the item's quantity and touches updated_at.
// Returns gorm.ErrRecordNotFound when the item does not exist.
func (r *ItemRepository) UpdateQuantity(ctx context.Context, id uuid.UUID, quantity int) (*models.CartItem, error) {
	result := r.db.WithContext(ctx).
		Model(&models.CartItem{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"quantity":   quantity,
			"updated_at": time.Now().UTC(),
		})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.FindByID(ctx, id)
}

// Remove deletes the item if it exists and reports the affected row count.
func (r *ItemRepository) Remove(ctx context.Context, id uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.CartItem{})
	return result.RowsAffected, result.Error
}

func (r *ItemRepository) findByPair(ctx context.Context, cartID, batchID uuid.UUID) (*models.CartItem, error) {
	var item models.CartItem
	err := r.db.WithContext(ctx).
		Where("cart_id = ? AND batch_id = ?", cartID, batchID).
		First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}
