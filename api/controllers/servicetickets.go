package controllers

import (
	"net/http"

	"github.com/autogestion/dealership-backend/api/responses"
	"github.com/autogestion/dealership-backend/api/validators"
	"github.com/autogestion/dealership-backend/internal/servicetickets"
	"github.com/autogestion/dealership-backend/pkg/enums"
	pkgerrors "github.com/autogestion/dealership-backend/pkg/errors"
	"github.com/autogestion/dealership-backend/pkg/logger"
)

type serviceTicketRequest struct {
	Type        string `json:"type"`
	Description string `json:"description" validate:"required"`
	Cost        int64  `json:"cost" validate:"required"`
	Date        string `json:"date" validate:"required"`
	Status      string `json:"status"`
}

func ServiceTicketList(svc servicetickets.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		listed := svc.List(r.Context())
		if listed == nil {
			listed = []*servicetickets.Ticket{}
		}
		responses.WriteSuccess(w, listed)
	}
}

func ServiceTicketCreate(svc servicetickets.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body serviceTicketRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		input := servicetickets.Input{
			Description: body.Description,
			Cost:        body.Cost,
			Date:        body.Date,
		}
		if body.Type != "" {
			ticketType, err := enums.ParseServiceType(body.Type)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid service type"))
				return
			}
			input.Type = ticketType
		}
		if body.Status != "" {
			status, err := enums.ParseServiceStatus(body.Status)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid service status"))
				return
			}
			input.Status = status
		}

		created, err := svc.Create(r.Context(), input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, created)
	}
}

func ServiceTicketDelete(svc servicetickets.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		svc.Delete(r.Context(), recordID(r, servicetickets.KeyPrefix))
		responses.WriteSuccess(w, map[string]string{"status": "deleted"})
	}
}
