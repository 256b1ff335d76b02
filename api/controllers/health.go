package controllers

import (
	"net/http"

	"go.uber.org/multierr"

	"github.com/autogestion/dealership-backend/api/responses"
	"github.com/autogestion/dealership-backend/pkg/config"
	pkgerrors "github.com/autogestion/dealership-backend/pkg/errors"
	"github.com/autogestion/dealership-backend/pkg/kv"
	"github.com/autogestion/dealership-backend/pkg/logger"
)

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Autogestion-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

func HealthReady(cfg *config.Config, logg *logger.Logger, store *kv.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Autogestion-Env", cfg.App.Env)

		var errs error
		if store == nil {
			errs = multierr.Append(errs, pkgerrors.New(pkgerrors.CodeDependency, "store not wired"))
		} else if err := store.Ping(r.Context()); err != nil {
			errs = multierr.Append(errs, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "store ping failed"))
		}

		if errs != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, errs, "not ready"))
			return
		}

		payload := map[string]string{"status": "ready"}
		if store != nil {
			payload["backend"] = store.Backend()
		}
		responses.WriteSuccess(w, payload)
	}
}
