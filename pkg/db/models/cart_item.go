package models

import (
	"time"

	"github.com/google/uuid"
)

// CartItem associates a cart with a received-goods batch and a quantity.
// The (cart_id, batch_id) pair is unique; re-adding the same batch merges
// quantities instead of creating a second row.
type CartItem struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	CartID    uuid.UUID `gorm:"column:cart_id;type:uuid;not null;uniqueIndex:ux_cart_items_cart_batch"`
	BatchID   uuid.UUID `gorm:"column:batch_id;type:uuid;not null;uniqueIndex:ux_cart_items_cart_batch"`
	Quantity  int       `gorm:"column:quantity;not null;check:quantity >= 1"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`

	Batch *GoodsReceivedDetail `gorm:"foreignKey:BatchID"`
}
