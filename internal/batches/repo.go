package batches

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/storelinehq/storeline-backend/pkg/db/models"
)

// Repository reads received-goods batches. Batch intake is owned by the
// warehouse system; the cart core only resolves references.
type Repository struct {
	db *gorm.DB
}

// NewRepository binds a GORM DB to batch lookups.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// FindByID loads a batch by its UUID.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.GoodsReceivedDetail, error) {
	var batch models.GoodsReceivedDetail
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&batch).Error; err != nil {
		return nil, err
	}
	return &batch, nil
}

// FindByCode loads a batch by its unique batch code.
func (r *Repository) FindByCode(ctx context.Context, code string) (*models.GoodsReceivedDetail, error) {
	var batch models.GoodsReceivedDetail
	if err := r.db.WithContext(ctx).
		Where("batch_code = ?", code).
		First(&batch).Error; err != nil {
		return nil, err
	}
	return &batch, nil
}
