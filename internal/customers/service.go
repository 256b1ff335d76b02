package customers

import (
	"context"
	"fmt"
	"strings"

	"github.com/autogestion/dealership-backend/internal/records"
	pkgerrors "github.com/autogestion/dealership-backend/pkg/errors"
)

// KeyPrefix scopes customer records in the store.
const KeyPrefix = "customer:"

// Customer is one registered buyer or prospect.
type Customer struct {
	records.Meta
	FullName   string `json:"full_name"`
	NationalID string `json:"national_id"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
}

type repository interface {
	Create(ctx context.Context, c *Customer) (*Customer, error)
	List(ctx context.Context) []*Customer
	Get(ctx context.Context, id string) (*Customer, bool)
	Update(ctx context.Context, id string, c *Customer) (*Customer, error)
	Remove(ctx context.Context, id string) bool
}

// Input is the full customer record as supplied by the caller.
type Input struct {
	FullName   string
	NationalID string
	Email      string
	Phone      string
	Address    string
}

// Service exposes customer directory operations.
type Service interface {
	Create(ctx context.Context, input Input) (*Customer, error)
	List(ctx context.Context) []*Customer
	Get(ctx context.Context, id string) (*Customer, error)
	Update(ctx context.Context, id string, input Input) (*Customer, error)
	Delete(ctx context.Context, id string) bool
}

type service struct {
	repo repository
}

// NewService builds the customer service on the provided repository.
func NewService(repo repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("customer repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) Create(ctx context.Context, input Input) (*Customer, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, fromInput(input))
}

func (s *service) List(ctx context.Context) []*Customer {
	return s.repo.List(ctx)
}

func (s *service) Get(ctx context.Context, id string) (*Customer, error) {
	c, ok := s.repo.Get(ctx, id)
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "customer not found")
	}
	return c, nil
}

func (s *service) Update(ctx context.Context, id string, input Input) (*Customer, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, id, fromInput(input))
}

func (s *service) Delete(ctx context.Context, id string) bool {
	return s.repo.Remove(ctx, id)
}

func validateInput(input Input) error {
	if strings.TrimSpace(input.FullName) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "full name is required")
	}
	if strings.TrimSpace(input.NationalID) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "national id is required")
	}
	if strings.TrimSpace(input.Email) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "email is required")
	}
	if strings.TrimSpace(input.Phone) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "phone is required")
	}
	return nil
}

func fromInput(input Input) *Customer {
	return &Customer{
		FullName:   strings.TrimSpace(input.FullName),
		NationalID: strings.TrimSpace(input.NationalID),
		Email:      strings.TrimSpace(input.Email),
		Phone:      strings.TrimSpace(input.Phone),
		Address:    strings.TrimSpace(input.Address),
	}
}
