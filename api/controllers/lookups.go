package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/storelinehq/storeline-backend/api/responses"
	"github.com/storelinehq/storeline-backend/api/validators"
	"github.com/storelinehq/storeline-backend/internal/lookups"
	pkgerrors "github.com/storelinehq/storeline-backend/pkg/errors"
	"github.com/storelinehq/storeline-backend/pkg/logger"
)

type createLookupRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
}

// LookupList returns every value for a lookup kind, ordered by name.
func LookupList(svc lookups.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		kind, err := pathKind(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		values, err := svc.List(r.Context(), kind)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, values)
	}
}

// LookupCreate registers a new lookup value. Names are unique per kind.
func LookupCreate(svc lookups.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		kind, err := pathKind(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload createLookupRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		value, err := svc.Create(r.Context(), kind, payload.Name)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, value)
	}
}

func pathKind(r *http.Request) (lookups.Kind, error) {
	kind, err := lookups.ParseKind(chi.URLParam(r, "kind"))
	if err != nil {
		return "", pkgerrors.Wrap(pkgerrors.CodeValidation, err, "unknown lookup kind")
	}
	return kind, nil
}
