package controllers

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/multierr"

	"github.com/badgerpadel/community-backend/api/responses"
	"github.com/badgerpadel/community-backend/pkg/config"
	pkgerrors "github.com/badgerpadel/community-backend/pkg/errors"
	"github.com/badgerpadel/community-backend/pkg/logger"
)

const readinessTimeout = 5 * time.Second

// Pinger is satisfied by the db, redis, storage, and pubsub clients.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Dependency names a backing service checked during readiness.
type Dependency struct {
	Name   string
	Pinger Pinger
}

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-BadgerPadel-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady pings every registered dependency and reports the failing ones.
func HealthReady(cfg *config.Config, logg *logger.Logger, deps ...Dependency) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-BadgerPadel-Env", cfg.App.Env)

		ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
		defer cancel()

		var combined error
		failing := []string{}
		for _, dep := range deps {
			if dep.Pinger == nil {
				continue
			}
			if err := dep.Pinger.Ping(ctx); err != nil {
				combined = multierr.Append(combined, err)
				failing = append(failing, dep.Name)
			}
		}

		if combined != nil {
			err := pkgerrors.Wrap(pkgerrors.CodeDependency, combined, "readiness check failed").
				WithDetails(map[string]any{"failing": failing})
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]string{"status": "ready"})
	}
}
