package lookups

import (
	"context"

	"go.uber.org/multierr"

	"github.com/storelinehq/storeline-backend/pkg/logger"
)

// Canonical rows installed at system setup. Existing rows are left untouched.
var (
	DefaultOrderStatuses = []string{
		"Pending",
		"Processing",
		"Shipped",
		"Delivered",
		"Cancelled",
	}
	DefaultPaymentTypes = []string{
		"Cash on Delivery",
		"Bank Transfer",
		"Credit Card",
	}
)

// Seed installs the default lookup rows idempotently. All failures are
// collected so one bad row does not mask the rest.
func Seed(ctx context.Context, repo Store, logg *logger.Logger) error {
	var errs error
	for _, name := range DefaultOrderStatuses {
		if err := repo.InsertIgnore(ctx, KindOrderStatus, name); err != nil {
			errs = multierr.Append(errs, err)
		}
	}
	for _, name := range DefaultPaymentTypes {
		if err := repo.InsertIgnore(ctx, KindPaymentType, name); err != nil {
			errs = multierr.Append(errs, err)
		}
	}
	if errs != nil {
		return errs
	}
	if logg != nil {
		logg.Info(ctx, "lookup tables seeded")
	}
	return nil
}
