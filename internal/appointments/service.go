package appointments

import (
	"context"
	"fmt"
	"strings"

	"github.com/autogestion/dealership-backend/internal/records"
	"github.com/autogestion/dealership-backend/pkg/enums"
	pkgerrors "github.com/autogestion/dealership-backend/pkg/errors"
)

// KeyPrefix scopes appointment records in the store.
const KeyPrefix = "appointment:"

// Appointment is one scheduled visit. The contact fields are free text
// rather than a customer reference so walk-ins can book too.
type Appointment struct {
	records.Meta
	CustomerName string                `json:"customer_name"`
	Phone        string                `json:"phone"`
	Date         string                `json:"date"`
	Time         string                `json:"time"`
	Type         enums.AppointmentType `json:"type"`
	Notes        string                `json:"notes"`
}

type repository interface {
	Create(ctx context.Context, a *Appointment) (*Appointment, error)
	List(ctx context.Context) []*Appointment
	Remove(ctx context.Context, id string) bool
}

// Input is the appointment as supplied by the caller.
type Input struct {
	CustomerName string
	Phone        string
	Date         string
	Time         string
	Type         enums.AppointmentType
	Notes        string
}

// Service exposes scheduling operations.
type Service interface {
	Create(ctx context.Context, input Input) (*Appointment, error)
	List(ctx context.Context) []*Appointment
	Delete(ctx context.Context, id string) bool
}

type service struct {
	repo repository
}

// NewService builds the scheduling service on the provided repository.
func NewService(repo repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("appointment repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) Create(ctx context.Context, input Input) (*Appointment, error) {
	if input.Type == "" {
		input.Type = enums.AppointmentTypeMaintenance
	}
	if err := validateInput(input); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, &Appointment{
		CustomerName: strings.TrimSpace(input.CustomerName),
		Phone:        strings.TrimSpace(input.Phone),
		Date:         input.Date,
		Time:         input.Time,
		Type:         input.Type,
		Notes:        strings.TrimSpace(input.Notes),
	})
}

func (s *service) List(ctx context.Context) []*Appointment {
	return s.repo.List(ctx)
}

func (s *service) Delete(ctx context.Context, id string) bool {
	return s.repo.Remove(ctx, id)
}

func validateInput(input Input) error {
	if strings.TrimSpace(input.CustomerName) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "customer name is required")
	}
	if strings.TrimSpace(input.Phone) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "phone is required")
	}
	if strings.TrimSpace(input.Date) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "date is required")
	}
	if strings.TrimSpace(input.Time) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "time is required")
	}
	if !input.Type.IsValid() {
		return pkgerrors.New(pkgerrors.CodeValidation, "invalid appointment type")
	}
	return nil
}
