package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents the canonical identity entity. Carts reference it
// optionally; identity management itself lives outside this service.
type User struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Email     string    `gorm:"type:text;not null;uniqueIndex"`
	FullName  string    `gorm:"column:full_name;not null"`
	IsActive  bool      `gorm:"column:is_active;not null;default:true"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
