package cart

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/storelinehq/storeline-backend/pkg/db/models"
)

// CartDTO is the outward representation of a cart with its items.
type CartDTO struct {
	ID        uuid.UUID     `json:"id"`
	UserID    *uuid.UUID    `json:"user_id,omitempty"`
	Items     []CartItemDTO `json:"items"`
	Subtotal  string        `json:"subtotal"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// CartItemDTO carries one cart line with its batch detail when loaded.
type CartItemDTO struct {
	ID          uuid.UUID `json:"id"`
	CartID      uuid.UUID `json:"cart_id"`
	BatchID     uuid.UUID `json:"batch_id"`
	Quantity    int       `json:"quantity"`
	ProductName string    `json:"product_name,omitempty"`
	BatchCode   string    `json:"batch_code,omitempty"`
	UnitPrice   string    `json:"unit_price,omitempty"`
	LineTotal   string    `json:"line_total,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func toCartDTO(cart *models.Cart) CartDTO {
	items := make([]CartItemDTO, 0, len(cart.Items))
	subtotal := decimal.Zero
	for i := range cart.Items {
		dto := toCartItemDTO(&cart.Items[i])
		items = append(items, dto)
		if batch := cart.Items[i].Batch; batch != nil {
			subtotal = subtotal.Add(batch.UnitPrice.Mul(decimal.NewFromInt(int64(cart.Items[i].Quantity))))
		}
	}
	return CartDTO{
		ID:        cart.ID,
		UserID:    cart.UserID,
		Items:     items,
		Subtotal:  subtotal.StringFixed(2),
		CreatedAt: cart.CreatedAt,
		UpdatedAt: cart.UpdatedAt,
	}
}

func toCartItemDTO(item *models.CartItem) CartItemDTO {
	dto := CartItemDTO{
		ID:        item.ID,
		CartID:    item.CartID,
		BatchID:   item.BatchID,
		Quantity:  item.Quantity,
		CreatedAt: item.CreatedAt,
		UpdatedAt: item.UpdatedAt,
	}
	if item.Batch != nil {
		dto.ProductName = item.Batch.ProductName
		dto.BatchCode = item.Batch.BatchCode
		dto.UnitPrice = item.Batch.UnitPrice.StringFixed(2)
		dto.LineTotal = item.Batch.UnitPrice.
			Mul(decimal.NewFromInt(int64(item.Quantity))).
			StringFixed(2)
	}
	return dto
}
