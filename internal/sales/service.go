package sales

import (
	"context"
	"fmt"
	"strings"

	"github.com/autogestion/dealership-backend/internal/customers"
	"github.com/autogestion/dealership-backend/internal/records"
	"github.com/autogestion/dealership-backend/internal/vehicles"
	"github.com/autogestion/dealership-backend/pkg/enums"
	pkgerrors "github.com/autogestion/dealership-backend/pkg/errors"
	"github.com/autogestion/dealership-backend/pkg/logger"
)

// KeyPrefix scopes sale records in the store.
const KeyPrefix = "sale:"

// Sale is one closed deal. VehicleID and CustomerID reference records
// that may have been deleted since; listings tolerate the dangling ids.
type Sale struct {
	records.Meta
	VehicleID     string              `json:"vehicle_id"`
	CustomerID    string              `json:"customer_id"`
	Price         int64               `json:"price"`
	PaymentMethod enums.PaymentMethod `json:"payment_method"`
	Date          string              `json:"date"`
}

// Row is a sale joined with display fields for its customer and vehicle.
type Row struct {
	Sale
	CustomerName string `json:"customer_name"`
	VehicleLabel string `json:"vehicle_label"`
}

type repository interface {
	Create(ctx context.Context, s *Sale) (*Sale, error)
	List(ctx context.Context) []*Sale
}

type vehicleRepository interface {
	List(ctx context.Context) []*vehicles.Vehicle
	Get(ctx context.Context, id string) (*vehicles.Vehicle, bool)
	Update(ctx context.Context, id string, v *vehicles.Vehicle) (*vehicles.Vehicle, error)
}

type customerRepository interface {
	List(ctx context.Context) []*customers.Customer
}

// Input is the sale as supplied by the caller.
type Input struct {
	VehicleID     string
	CustomerID    string
	Price         int64
	PaymentMethod enums.PaymentMethod
	Date          string
}

// Service records sales and lists them decorated for display.
type Service interface {
	Create(ctx context.Context, input Input) (*Sale, error)
	List(ctx context.Context) []*Sale
	ListRows(ctx context.Context) []*Row
}

type service struct {
	repo      repository
	vehicles  vehicleRepository
	customers customerRepository
	logg      *logger.Logger
}

// NewService builds the sales service. It needs vehicle access to flip
// inventory status and customer access to decorate listings.
func NewService(repo repository, vehicleRepo vehicleRepository, customerRepo customerRepository, logg *logger.Logger) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("sale repository required")
	}
	if vehicleRepo == nil {
		return nil, fmt.Errorf("vehicle repository required")
	}
	if customerRepo == nil {
		return nil, fmt.Errorf("customer repository required")
	}
	if logg == nil {
		return nil, fmt.Errorf("logger required")
	}
	return &service{repo: repo, vehicles: vehicleRepo, customers: customerRepo, logg: logg}, nil
}

// Create persists the sale and then marks the vehicle sold. The two
// writes are independent: the sale stands even when the vehicle record
// is gone or its status flip fails.
func (s *service) Create(ctx context.Context, input Input) (*Sale, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, &Sale{
		VehicleID:     input.VehicleID,
		CustomerID:    input.CustomerID,
		Price:         input.Price,
		PaymentMethod: input.PaymentMethod,
		Date:          input.Date,
	})
	if err != nil {
		return nil, err
	}

	vehicle, ok := s.vehicles.Get(ctx, input.VehicleID)
	if !ok {
		s.logg.Warn(ctx, fmt.Sprintf("sale %s references missing vehicle %s", created.RecordID(), input.VehicleID))
		return created, nil
	}
	vehicle.Status = enums.VehicleStatusSold
	if _, err := s.vehicles.Update(ctx, vehicle.RecordID(), vehicle); err != nil {
		s.logg.Error(ctx, "failed to mark vehicle sold", err)
	}
	return created, nil
}

func (s *service) List(ctx context.Context) []*Sale {
	return s.repo.List(ctx)
}

// ListRows joins each sale with its customer and vehicle by a scan of
// the current listings. Missing references render as "N/A".
func (s *service) ListRows(ctx context.Context) []*Row {
	listed := s.repo.List(ctx)
	if len(listed) == 0 {
		return []*Row{}
	}

	customerNames := make(map[string]string)
	for _, c := range s.customers.List(ctx) {
		customerNames[c.RecordID()] = c.FullName
	}
	vehicleLabels := make(map[string]string)
	for _, v := range s.vehicles.List(ctx) {
		vehicleLabels[v.RecordID()] = v.Make + " " + v.Model
	}

	rows := make([]*Row, 0, len(listed))
	for _, sale := range listed {
		row := &Row{Sale: *sale, CustomerName: "N/A", VehicleLabel: "N/A"}
		if name, ok := customerNames[sale.CustomerID]; ok {
			row.CustomerName = name
		}
		if label, ok := vehicleLabels[sale.VehicleID]; ok {
			row.VehicleLabel = label
		}
		rows = append(rows, row)
	}
	return rows
}

func validateInput(input Input) error {
	if strings.TrimSpace(input.VehicleID) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "vehicle id is required")
	}
	if strings.TrimSpace(input.CustomerID) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "customer id is required")
	}
	if input.Price == 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "price is required")
	}
	if !input.PaymentMethod.IsValid() {
		return pkgerrors.New(pkgerrors.CodeValidation, "invalid payment method")
	}
	if strings.TrimSpace(input.Date) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "date is required")
	}
	return nil
}
