package models

import (
	"time"

	"github.com/google/uuid"
)

// Cart is a mutable collection of items pending checkout. UserID is nil for
// guest carts. The cart owns its items; deleting a cart removes them.
type Cart struct {
	ID        uuid.UUID  `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	UserID    *uuid.UUID `gorm:"column:user_id;type:uuid"`
	Items     []CartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time  `gorm:"column:updated_at;autoUpdateTime"`
}
