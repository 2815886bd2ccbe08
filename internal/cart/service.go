package cart

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/storelinehq/storeline-backend/pkg/db/models"
	pkgerrors "github.com/storelinehq/storeline-backend/pkg/errors"
	"github.com/storelinehq/storeline-backend/pkg/logger"
)

// ServiceParams groups dependencies for the cart service.
type ServiceParams struct {
	CartRepo CartRepository
	ItemRepo CartItemRepository
	Batches  BatchFinder
	Users    UserFinder
	Tx       TxRunner
	Logger   *logger.Logger
}

// Service exposes business rules for cart management.
type Service interface {
	CreateCart(ctx context.Context, userID *uuid.UUID) (CartDTO, error)
	GetCart(ctx context.Context, cartID uuid.UUID) (CartDTO, error)
	AddItem(ctx context.Context, cartID, batchID uuid.UUID, quantity int) (CartItemDTO, error)
	UpdateQuantity(ctx context.Context, itemID uuid.UUID, quantity int) (CartItemDTO, error)
	RemoveItem(ctx context.Context, itemID uuid.UUID) error
	DeleteCart(ctx context.Context, cartID uuid.UUID) error
}

type service struct {
	cartRepo CartRepository
	itemRepo CartItemRepository
	batches  BatchFinder
	users    UserFinder
	tx       TxRunner
	logg     *logger.Logger
}

// NewService builds a cart service with the required dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.CartRepo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "cart repo is required")
	}
	if params.ItemRepo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "item repo is required")
	}
	if params.Batches == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "batch finder is required")
	}
	if params.Users == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "user finder is required")
	}
	if params.Tx == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "tx runner is required")
	}
	return &service{
		cartRepo: params.CartRepo,
		itemRepo: params.ItemRepo,
		batches:  params.Batches,
		users:    params.Users,
		tx:       params.Tx,
		logg:     params.Logger,
	}, nil
}

// CreateCart opens an empty cart. A nil userID creates a guest cart.
func (s *service) CreateCart(ctx context.Context, userID *uuid.UUID) (CartDTO, error) {
	if userID != nil {
		if *userID == uuid.Nil {
			return CartDTO{}, pkgerrors.New(pkgerrors.CodeValidation, "user id must not be the zero uuid")
		}
		if _, err := s.users.FindByID(ctx, *userID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return CartDTO{}, pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "user not found")
			}
			return CartDTO{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load user")
		}
	}

	cart, err := s.cartRepo.Create(ctx, &models.Cart{UserID: userID})
	if err != nil {
		return CartDTO{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create cart")
	}

	if s.logg != nil {
		s.logg.Info(s.logg.WithCartID(ctx, cart.ID.String()), "cart created")
	}
	return toCartDTO(cart), nil
}

// GetCart returns the cart with items joined to their batch details.
func (s *service) GetCart(ctx context.Context, cartID uuid.UUID) (CartDTO, error) {
	cart, err := s.findCart(ctx, cartID)
	if err != nil {
		return CartDTO{}, err
	}
	return toCartDTO(cart), nil
}

// AddItem puts quantity units of a batch into the cart. Adding a batch that
// is already present merges quantities into the existing row.
func (s *service) AddItem(ctx context.Context, cartID, batchID uuid.UUID, quantity int) (CartItemDTO, error) {
	if quantity < 1 {
		return CartItemDTO{}, pkgerrors.New(pkgerrors.CodeValidation, "quantity must be at least 1")
	}
	if _, err := s.findCart(ctx, cartID); err != nil {
		return CartItemDTO{}, err
	}
	if _, err := s.batches.FindByID(ctx, batchID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return CartItemDTO{}, pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "batch not found")
		}
		return CartItemDTO{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load batch")
	}

	item, err := s.itemRepo.Upsert(ctx, cartID, batchID, quantity)
	if err != nil {
		return CartItemDTO{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "upsert cart item")
	}
	return toCartItemDTO(item), nil
}

// UpdateQuantity overwrites the quantity on an existing item. A quantity of
// zero is rejected; callers wanting an empty line should remove the item.
func (s *service) UpdateQuantity(ctx context.Context, itemID uuid.UUID, quantity int) (CartItemDTO, error) {
	if quantity < 1 {
		return CartItemDTO{}, pkgerrors.New(pkgerrors.CodeValidation, "quantity must be at least 1; remove the item instead of setting it to 0")
	}

	item, err := s.itemRepo.UpdateQuantity(ctx, itemID, quantity)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return CartItemDTO{}, pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "cart item not found")
		}
		return CartItemDTO{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update cart item")
	}
	return toCartItemDTO(item), nil
}

// RemoveItem drops the item regardless of prior state; removing an item that
// does not exist is a successful no-op.
func (s *service) RemoveItem(ctx context.Context, itemID uuid.UUID) error {
	if _, err := s.itemRepo.Remove(ctx, itemID); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "remove cart item")
	}
	return nil
}

// DeleteCart removes the cart and every item it owns in one transaction, so
// no orphaned items can survive a partial failure.
func (s *service) DeleteCart(ctx context.Context, cartID uuid.UUID) error {
	if _, err := s.findCart(ctx, cartID); err != nil {
		return err
	}

	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.cartRepo.WithTx(tx)
		if err := repo.DeleteItems(ctx, cartID); err != nil {
			return err
		}
		affected, err := repo.Delete(ctx, cartID)
		if err != nil {
			return err
		}
		if affected == 0 {
			return gorm.ErrRecordNotFound
		}
		remaining, err := repo.CountItems(ctx, cartID)
		if err != nil {
			return err
		}
		if remaining != 0 {
			return pkgerrors.New(pkgerrors.CodeIntegrity, "cart items survived cascade delete")
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "cart not found")
		}
		if typed := pkgerrors.As(err); typed != nil {
			return typed
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete cart")
	}

	if s.logg != nil {
		s.logg.Info(s.logg.WithCartID(ctx, cartID.String()), "cart deleted")
	}
	return nil
}

func (s *service) findCart(ctx context.Context, cartID uuid.UUID) (*models.Cart, error) {
	if cartID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "cart id is required")
	}
	cart, err := s.cartRepo.FindByID(ctx, cartID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "cart not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load cart")
	}
	return cart, nil
}
