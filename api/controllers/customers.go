package controllers

import (
	"net/http"

	"github.com/autogestion/dealership-backend/api/responses"
	"github.com/autogestion/dealership-backend/api/validators"
	"github.com/autogestion/dealership-backend/internal/customers"
	"github.com/autogestion/dealership-backend/pkg/logger"
)

type customerRequest struct {
	FullName   string `json:"full_name" validate:"required"`
	NationalID string `json:"national_id" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
	Phone      string `json:"phone" validate:"required"`
	Address    string `json:"address"`
}

func (body customerRequest) toInput() customers.Input {
	return customers.Input{
		FullName:   body.FullName,
		NationalID: body.NationalID,
		Email:      body.Email,
		Phone:      body.Phone,
		Address:    body.Address,
	}
}

func CustomerList(svc customers.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		listed := svc.List(r.Context())
		if listed == nil {
			listed = []*customers.Customer{}
		}
		responses.WriteSuccess(w, listed)
	}
}

func CustomerCreate(svc customers.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body customerRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		created, err := svc.Create(r.Context(), body.toInput())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, created)
	}
}

func CustomerGet(svc customers.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fetched, err := svc.Get(r.Context(), recordID(r, customers.KeyPrefix))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, fetched)
	}
}

// CustomerUpdate replaces the stored record with the request body.
func CustomerUpdate(svc customers.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body customerRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		updated, err := svc.Update(r.Context(), recordID(r, customers.KeyPrefix), body.toInput())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, updated)
	}
}

func CustomerDelete(svc customers.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		svc.Delete(r.Context(), recordID(r, customers.KeyPrefix))
		responses.WriteSuccess(w, map[string]string{"status": "deleted"})
	}
}
