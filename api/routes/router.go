package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/storelinehq/storeline-backend/api/controllers"
	"github.com/storelinehq/storeline-backend/api/middleware"
	cartsvc "github.com/storelinehq/storeline-backend/internal/cart"
	"github.com/storelinehq/storeline-backend/internal/lookups"
	"github.com/storelinehq/storeline-backend/pkg/config"
	"github.com/storelinehq/storeline-backend/pkg/db"
	"github.com/storelinehq/storeline-backend/pkg/logger"
	"github.com/storelinehq/storeline-backend/pkg/metrics"
	"github.com/storelinehq/storeline-backend/pkg/redis"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP db.Pinger,
	redisClient *redis.Client,
	httpMetrics *metrics.HTTPMetrics,
	metricsHandler http.Handler,
	cartService cartsvc.Service,
	lookupService lookups.Service,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(httpMetrics),
		middleware.CORS(),
	)

	var redisP redis.Pinger
	if redisClient != nil {
		redisP = redisClient
	}
	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, dbP, redisP))
	})

	if metricsHandler == nil {
		metricsHandler = promhttp.Handler()
	}
	r.Method(http.MethodGet, "/metrics", metricsHandler)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/carts", func(r chi.Router) {
			r.Post("/", controllers.CartCreate(cartService, logg))
			r.Get("/{cartID}", controllers.CartFetch(cartService, logg))
			r.Delete("/{cartID}", controllers.CartDelete(cartService, logg))
			r.Post("/{cartID}/items", controllers.CartAddItem(cartService, logg))
		})
		r.Route("/cart-items", func(r chi.Router) {
			r.Patch("/{itemID}", controllers.CartItemUpdate(cartService, logg))
			r.Delete("/{itemID}", controllers.CartItemRemove(cartService, logg))
		})
		r.Get("/lookups/{kind}", controllers.LookupList(lookupService, logg))
	})

	r.Route("/api/admin/v1", func(r chi.Router) {
		r.Post("/lookups/{kind}", controllers.LookupCreate(lookupService, logg))
	})

	return r
}
