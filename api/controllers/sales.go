package controllers

import (
	"net/http"

	"github.com/autogestion/dealership-backend/api/responses"
	"github.com/autogestion/dealership-backend/api/validators"
	"github.com/autogestion/dealership-backend/internal/sales"
	"github.com/autogestion/dealership-backend/pkg/enums"
	pkgerrors "github.com/autogestion/dealership-backend/pkg/errors"
	"github.com/autogestion/dealership-backend/pkg/logger"
)

type saleRequest struct {
	VehicleID     string `json:"vehicle_id" validate:"required"`
	CustomerID    string `json:"customer_id" validate:"required"`
	Price         int64  `json:"price" validate:"required"`
	PaymentMethod string `json:"payment_method" validate:"required"`
	Date          string `json:"date" validate:"required"`
}

// SaleList returns sales decorated with customer and vehicle display names.
func SaleList(svc sales.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, svc.ListRows(r.Context()))
	}
}

func SaleCreate(svc sales.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body saleRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		method, err := enums.ParsePaymentMethod(body.PaymentMethod)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid payment method"))
			return
		}

		created, err := svc.Create(r.Context(), sales.Input{
			VehicleID:     body.VehicleID,
			CustomerID:    body.CustomerID,
			Price:         body.Price,
			PaymentMethod: method,
			Date:          body.Date,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, created)
	}
}
