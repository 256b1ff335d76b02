package controllers

import (
	"net/http"

	"github.com/autogestion/dealership-backend/api/responses"
	"github.com/autogestion/dealership-backend/api/validators"
	"github.com/autogestion/dealership-backend/internal/vehicles"
	"github.com/autogestion/dealership-backend/pkg/enums"
	pkgerrors "github.com/autogestion/dealership-backend/pkg/errors"
	"github.com/autogestion/dealership-backend/pkg/logger"
)

type vehicleRequest struct {
	Make     string `json:"make" validate:"required"`
	Model    string `json:"model" validate:"required"`
	Year     int    `json:"year" validate:"required"`
	Price    int64  `json:"price" validate:"required"`
	Status   string `json:"status"`
	BodyType string `json:"body_type"`
	Color    string `json:"color" validate:"required"`
	Odometer int    `json:"odometer"`
}

func (body vehicleRequest) toInput() (vehicles.Input, error) {
	input := vehicles.Input{
		Make:     body.Make,
		Model:    body.Model,
		Year:     body.Year,
		Price:    body.Price,
		Color:    body.Color,
		Odometer: body.Odometer,
	}
	if body.Status != "" {
		status, err := enums.ParseVehicleStatus(body.Status)
		if err != nil {
			return vehicles.Input{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid vehicle status")
		}
		input.Status = status
	}
	if body.BodyType != "" {
		bodyType, err := enums.ParseBodyType(body.BodyType)
		if err != nil {
			return vehicles.Input{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid body type")
		}
		input.BodyType = bodyType
	}
	return input, nil
}

// VehicleList lists inventory, optionally narrowed by ?status= and ?q=.
func VehicleList(svc vehicles.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var filter vehicles.Filter
		if raw := validators.QueryString(r, "status"); raw != "" {
			status, err := enums.ParseVehicleStatus(raw)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid vehicle status"))
				return
			}
			filter.Status = status
		}
		filter.Query = validators.QueryString(r, "q")

		listed := svc.List(r.Context(), filter)
		if listed == nil {
			listed = []*vehicles.Vehicle{}
		}
		responses.WriteSuccess(w, listed)
	}
}

func VehicleCreate(svc vehicles.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body vehicleRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		input, err := body.toInput()
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		created, err := svc.Create(r.Context(), input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, created)
	}
}

func VehicleGet(svc vehicles.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fetched, err := svc.Get(r.Context(), recordID(r, vehicles.KeyPrefix))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, fetched)
	}
}

// VehicleUpdate replaces the stored record with the request body.
func VehicleUpdate(svc vehicles.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body vehicleRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		input, err := body.toInput()
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if input.Status == "" {
			input.Status = enums.VehicleStatusAvailable
		}
		if input.BodyType == "" {
			input.BodyType = enums.BodyTypeSedan
		}

		updated, err := svc.Update(r.Context(), recordID(r, vehicles.KeyPrefix), input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, updated)
	}
}

func VehicleDelete(svc vehicles.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		svc.Delete(r.Context(), recordID(r, vehicles.KeyPrefix))
		responses.WriteSuccess(w, map[string]string{"status": "deleted"})
	}
}
