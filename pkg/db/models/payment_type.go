package models

import (
	"time"

	"github.com/google/uuid"
)

// PaymentType enumerates accepted payment methods as admin-seeded rows,
// same shape and lifecycle as OrderStatus.
type PaymentType struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Name      string    `gorm:"column:name;type:text;not null;uniqueIndex:ux_payment_types_name"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
