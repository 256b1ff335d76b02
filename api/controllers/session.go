package controllers

import (
	"net/http"

	"github.com/autogestion/dealership-backend/api/responses"
	"github.com/autogestion/dealership-backend/api/validators"
	"github.com/autogestion/dealership-backend/internal/session"
	"github.com/autogestion/dealership-backend/pkg/enums"
	pkgerrors "github.com/autogestion/dealership-backend/pkg/errors"
	"github.com/autogestion/dealership-backend/pkg/logger"
)

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Role     string `json:"role" validate:"required"`
}

// SessionLogin records the operator named in the request as the current
// session. The role is declared, not authenticated.
func SessionLogin(sessions session.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body loginRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		role, err := enums.ParseActorRole(body.Role)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid role"))
			return
		}

		created, err := sessions.Login(r.Context(), body.Username, role)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, created)
	}
}

// SessionCurrent returns the signed-in operator, or 401 when nobody is.
func SessionCurrent(sessions session.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		current, ok := sessions.Current(r.Context())
		if !ok {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "no active session"))
			return
		}
		responses.WriteSuccess(w, current)
	}
}

// SessionLogout clears the current session. Logging out twice is fine.
func SessionLogout(sessions session.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessions.Logout(r.Context())
		responses.WriteSuccess(w, map[string]string{"status": "logged_out"})
	}
}
