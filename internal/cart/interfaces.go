package cart

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/storelinehq/storeline-backend/pkg/db/models"
)

// CartRepository defines the persistence surface required by the cart service.
type CartRepository interface {
	WithTx(tx *gorm.DB) CartRepository
	Create(ctx context.Context, cart *models.Cart) (*models.Cart, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Cart, error)
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
	DeleteItems(ctx context.Context, cartID uuid.UUID) error
	CountItems(ctx context.Context, cartID uuid.UUID) (int64, error)
}

// CartItemRepository defines the persistence surface for individual items.
type CartItemRepository interface {
	WithTx(tx *gorm.DB) CartItemRepository
	Upsert(ctx context.Context, cartID, batchID uuid.UUID, quantity int) (*models.CartItem, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.CartItem, error)
	UpdateQuantity(ctx context.Context, id uuid.UUID, quantity int) (*models.CartItem, error)
	Remove(ctx context.Context, id uuid.UUID) (int64, error)
}

// BatchFinder resolves received-goods batches referenced by cart items.
type BatchFinder interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.GoodsReceivedDetail, error)
}

// UserFinder resolves cart owners.
type UserFinder interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.User, error)
}

// TxRunner executes a function inside a database transaction.
type TxRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}
