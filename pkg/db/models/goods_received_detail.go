package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// GoodsReceivedDetail is a specific lot of stock received from a supplier.
// Cart items reference batches rather than abstract catalog products, which
// keeps cart contents traceable down to the delivery.
type GoodsReceivedDetail struct {
	ID               uuid.UUID       `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	ProductName      string          `gorm:"column:product_name;not null"`
	BatchCode        string          `gorm:"column:batch_code;type:text;not null;uniqueIndex"`
	UnitPrice        decimal.Decimal `gorm:"column:unit_price;type:numeric(12,2);not null"`
	QuantityReceived int             `gorm:"column:quantity_received;not null"`
	ReceivedAt       time.Time       `gorm:"column:received_at;not null"`
	CreatedAt        time.Time       `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt        time.Time       `gorm:"column:updated_at;autoUpdateTime"`
}
