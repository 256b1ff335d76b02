package middleware

import (
	"net/http"

	"github.com/autogestion/dealership-backend/internal/session"
	"github.com/autogestion/dealership-backend/pkg/logger"
)

// Actor annotates request logs with the signed-in operator's role. The role
// is informational only; no route is gated on it.
func Actor(sessions session.Service, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			if sessions != nil && logg != nil {
				if current, ok := sessions.Current(ctx); ok {
					ctx = logg.WithActorRole(ctx, string(current.Role))
				}
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
