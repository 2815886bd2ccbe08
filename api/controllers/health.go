package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/storelinehq/storeline-backend/api/responses"
	"github.com/storelinehq/storeline-backend/pkg/config"
	"github.com/storelinehq/storeline-backend/pkg/db"
	"github.com/storelinehq/storeline-backend/pkg/logger"
	"github.com/storelinehq/storeline-backend/pkg/redis"
)

const readinessTimeout = 2 * time.Second

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Storeline-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

func HealthReady(cfg *config.Config, logg *logger.Logger, dbP db.Pinger, redisP redis.Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Storeline-Env", cfg.App.Env)

		ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
		defer cancel()

		checks := map[string]string{}
		healthy := true

		if dbP != nil {
			if err := dbP.Ping(ctx); err != nil {
				checks["database"] = err.Error()
				healthy = false
			} else {
				checks["database"] = "ok"
			}
		}
		if redisP != nil {
			if err := redisP.Ping(ctx); err != nil {
				checks["redis"] = err.Error()
				healthy = false
			} else {
				checks["redis"] = "ok"
			}
		}

		if !healthy {
			if logg != nil {
				logg.Warn(r.Context(), "readiness check failed")
			}
			responses.WriteSuccessStatus(w, http.StatusServiceUnavailable, checks)
			return
		}
		responses.WriteSuccess(w, checks)
	}
}
