package servicetickets

import (
	"context"
	"fmt"
	"strings"

	"github.com/autogestion/dealership-backend/internal/records"
	"github.com/autogestion/dealership-backend/pkg/enums"
	pkgerrors "github.com/autogestion/dealership-backend/pkg/errors"
)

// KeyPrefix scopes workshop ticket records in the store.
const KeyPrefix = "service:"

// Ticket is one workshop job.
type Ticket struct {
	records.Meta
	Type        enums.ServiceType   `json:"type"`
	Description string              `json:"description"`
	Cost        int64               `json:"cost"`
	Date        string              `json:"date"`
	Status      enums.ServiceStatus `json:"status"`
}

type repository interface {
	Create(ctx context.Context, tk *Ticket) (*Ticket, error)
	List(ctx context.Context) []*Ticket
	Remove(ctx context.Context, id string) bool
}

// Input is the ticket as supplied by the caller.
type Input struct {
	Type        enums.ServiceType
	Description string
	Cost        int64
	Date        string
	Status      enums.ServiceStatus
}

// Service exposes workshop ticket operations.
type Service interface {
	Create(ctx context.Context, input Input) (*Ticket, error)
	List(ctx context.Context) []*Ticket
	Delete(ctx context.Context, id string) bool
}

type service struct {
	repo repository
}

// NewService builds the workshop service on the provided repository.
func NewService(repo repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("ticket repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) Create(ctx context.Context, input Input) (*Ticket, error) {
	if input.Type == "" {
		input.Type = enums.ServiceTypeMaintenance
	}
	if input.Status == "" {
		input.Status = enums.ServiceStatusPending
	}
	if err := validateInput(input); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, &Ticket{
		Type:        input.Type,
		Description: strings.TrimSpace(input.Description),
		Cost:        input.Cost,
		Date:        input.Date,
		Status:      input.Status,
	})
}

func (s *service) List(ctx context.Context) []*Ticket {
	return s.repo.List(ctx)
}

func (s *service) Delete(ctx context.Context, id string) bool {
	return s.repo.Remove(ctx, id)
}

func validateInput(input Input) error {
	if strings.TrimSpace(input.Description) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "description is required")
	}
	if input.Cost == 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "cost is required")
	}
	if strings.TrimSpace(input.Date) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "date is required")
	}
	if !input.Type.IsValid() {
		return pkgerrors.New(pkgerrors.CodeValidation, "invalid service type")
	}
	if !input.Status.IsValid() {
		return pkgerrors.New(pkgerrors.CodeValidation, "invalid service status")
	}
	return nil
}
