package models

import (
	"time"

	"github.com/google/uuid"
)

// OrderStatus is an admin-seeded lookup row used as a foreign-key target by
// the order workflow. Name comparison is case-sensitive.
type OrderStatus struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Name      string    `gorm:"column:name;type:text;not null;uniqueIndex:ux_order_statuses_name"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName pins the plural form gorm would otherwise derive.
func (OrderStatus) TableName() string {
	return "order_statuses"
}
