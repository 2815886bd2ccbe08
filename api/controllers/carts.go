package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/storelinehq/storeline-backend/api/responses"
	"github.com/storelinehq/storeline-backend/api/validators"
	cartsvc "github.com/storelinehq/storeline-backend/internal/cart"
	pkgerrors "github.com/storelinehq/storeline-backend/pkg/errors"
	"github.com/storelinehq/storeline-backend/pkg/logger"
)

type createCartRequest struct {
	UserID *uuid.UUID `json:"user_id,omitempty"`
}

type addItemRequest struct {
	BatchID  uuid.UUID `json:"batch_id" validate:"required"`
	Quantity int       `json:"quantity" validate:"required,min=1"`
}

type updateQuantityRequest struct {
	Quantity int `json:"quantity" validate:"required,min=1"`
}

// CartCreate opens a new cart, optionally bound to a user.
func CartCreate(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		payload := createCartRequest{}
		if r.ContentLength > 0 {
			if err := validators.DecodeJSONBody(r, &payload); err != nil {
				responses.WriteError(r.Context(), logg, w, err)
				return
			}
		}

		cart, err := svc.CreateCart(r.Context(), payload.UserID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, cart)
	}
}

// CartFetch returns the cart with its items and batch details.
func CartFetch(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cartID, err := pathUUID(r, "cartID")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		cart, err := svc.GetCart(r.Context(), cartID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, cart)
	}
}

// CartDelete removes the cart and everything it owns.
func CartDelete(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cartID, err := pathUUID(r, "cartID")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.DeleteCart(r.Context(), cartID); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteNoContent(w)
	}
}

// CartAddItem adds a batch to the cart, merging quantities for repeats.
func CartAddItem(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cartID, err := pathUUID(r, "cartID")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload addItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		item, err := svc.AddItem(r.Context(), cartID, payload.BatchID, payload.Quantity)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, item)
	}
}

// CartItemUpdate overwrites the quantity on a cart item.
func CartItemUpdate(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		itemID, err := pathUUID(r, "itemID")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload updateQuantityRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		item, err := svc.UpdateQuantity(r.Context(), itemID, payload.Quantity)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, item)
	}
}

// CartItemRemove deletes a cart item; removing a missing item succeeds.
func CartItemRemove(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		itemID, err := pathUUID(r, "itemID")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.RemoveItem(r.Context(), itemID); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteNoContent(w)
	}
}

func pathUUID(r *http.Request, param string) (uuid.UUID, error) {
	raw := chi.URLParam(r, param)
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid "+param)
	}
	return id, nil
}
