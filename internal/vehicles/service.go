package vehicles

import (
	"context"
	"fmt"
	"strings"

	"github.com/autogestion/dealership-backend/internal/records"
	"github.com/autogestion/dealership-backend/pkg/enums"
	pkgerrors "github.com/autogestion/dealership-backend/pkg/errors"
)

// KeyPrefix scopes vehicle records in the store.
const KeyPrefix = "vehicle:"

// Vehicle is one inventory record.
type Vehicle struct {
	records.Meta
	Make     string              `json:"make"`
	Model    string              `json:"model"`
	Year     int                 `json:"year"`
	Price    int64               `json:"price"`
	Status   enums.VehicleStatus `json:"status"`
	BodyType enums.BodyType      `json:"body_type"`
	Color    string              `json:"color"`
	Odometer int                 `json:"odometer"`
}

type repository interface {
	Create(ctx context.Context, v *Vehicle) (*Vehicle, error)
	List(ctx context.Context) []*Vehicle
	Get(ctx context.Context, id string) (*Vehicle, bool)
	Update(ctx context.Context, id string, v *Vehicle) (*Vehicle, error)
	Remove(ctx context.Context, id string) bool
}

// Input is the full vehicle record as supplied by the caller. Updates
// overwrite the stored record with exactly these fields.
type Input struct {
	Make     string
	Model    string
	Year     int
	Price    int64
	Status   enums.VehicleStatus
	BodyType enums.BodyType
	Color    string
	Odometer int
}

// Filter narrows a listing. Zero values match everything.
type Filter struct {
	Status enums.VehicleStatus
	Query  string
}

// Service exposes inventory operations.
type Service interface {
	Create(ctx context.Context, input Input) (*Vehicle, error)
	List(ctx context.Context, filter Filter) []*Vehicle
	Get(ctx context.Context, id string) (*Vehicle, error)
	Update(ctx context.Context, id string, input Input) (*Vehicle, error)
	Delete(ctx context.Context, id string) bool
}

type service struct {
	repo repository
}

// NewService builds the inventory service on the provided repository.
func NewService(repo repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("vehicle repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) Create(ctx context.Context, input Input) (*Vehicle, error) {
	if input.Status == "" {
		input.Status = enums.VehicleStatusAvailable
	}
	if input.BodyType == "" {
		input.BodyType = enums.BodyTypeSedan
	}
	if err := validateInput(input); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, fromInput(input))
}

func (s *service) List(ctx context.Context, filter Filter) []*Vehicle {
	listed := s.repo.List(ctx)
	if filter.Status == "" && filter.Query == "" {
		return listed
	}

	query := strings.ToLower(filter.Query)
	matched := make([]*Vehicle, 0, len(listed))
	for _, v := range listed {
		if filter.Status != "" && v.Status != filter.Status {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(v.Make), query) &&
			!strings.Contains(strings.ToLower(v.Model), query) {
			continue
		}
		matched = append(matched, v)
	}
	return matched
}

func (s *service) Get(ctx context.Context, id string) (*Vehicle, error) {
	v, ok := s.repo.Get(ctx, id)
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "vehicle not found")
	}
	return v, nil
}

func (s *service) Update(ctx context.Context, id string, input Input) (*Vehicle, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, id, fromInput(input))
}

func (s *service) Delete(ctx context.Context, id string) bool {
	return s.repo.Remove(ctx, id)
}

func validateInput(input Input) error {
	if strings.TrimSpace(input.Make) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "make is required")
	}
	if strings.TrimSpace(input.Model) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "model is required")
	}
	if input.Year == 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "year is required")
	}
	if input.Price == 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "price is required")
	}
	if strings.TrimSpace(input.Color) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "color is required")
	}
	if !input.Status.IsValid() {
		return pkgerrors.New(pkgerrors.CodeValidation, "invalid vehicle status")
	}
	if !input.BodyType.IsValid() {
		return pkgerrors.New(pkgerrors.CodeValidation, "invalid body type")
	}
	return nil
}

func fromInput(input Input) *Vehicle {
	return &Vehicle{
		Make:     strings.TrimSpace(input.Make),
		Model:    strings.TrimSpace(input.Model),
		Year:     input.Year,
		Price:    input.Price,
		Status:   input.Status,
		BodyType: input.BodyType,
		Color:    strings.TrimSpace(input.Color),
		Odometer: input.Odometer,
	}
}
