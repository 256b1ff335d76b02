package controllers

import (
	"net/http"

	"github.com/autogestion/dealership-backend/api/responses"
	"github.com/autogestion/dealership-backend/api/validators"
	"github.com/autogestion/dealership-backend/internal/appointments"
	"github.com/autogestion/dealership-backend/pkg/enums"
	pkgerrors "github.com/autogestion/dealership-backend/pkg/errors"
	"github.com/autogestion/dealership-backend/pkg/logger"
)

type appointmentRequest struct {
	CustomerName string `json:"customer_name" validate:"required"`
	Phone        string `json:"phone" validate:"required"`
	Date         string `json:"date" validate:"required"`
	Time         string `json:"time" validate:"required"`
	Type         string `json:"type"`
	Notes        string `json:"notes"`
}

func AppointmentList(svc appointments.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		listed := svc.List(r.Context())
		if listed == nil {
			listed = []*appointments.Appointment{}
		}
		responses.WriteSuccess(w, listed)
	}
}

func AppointmentCreate(svc appointments.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body appointmentRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		input := appointments.Input{
			CustomerName: body.CustomerName,
			Phone:        body.Phone,
			Date:         body.Date,
			Time:         body.Time,
			Notes:        body.Notes,
		}
		if body.Type != "" {
			appointmentType, err := enums.ParseAppointmentType(body.Type)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid appointment type"))
				return
			}
			input.Type = appointmentType
		}

		created, err := svc.Create(r.Context(), input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, created)
	}
}

func AppointmentDelete(svc appointments.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		svc.Delete(r.Context(), recordID(r, appointments.KeyPrefix))
		responses.WriteSuccess(w, map[string]string{"status": "deleted"})
	}
}
