package sales

import (
	"context"
	"io"
	"testing"

	"github.com/autogestion/dealership-backend/internal/customers"
	"github.com/autogestion/dealership-backend/internal/records"
	"github.com/autogestion/dealership-backend/internal/vehicles"
	"github.com/autogestion/dealership-backend/pkg/enums"
	pkgerrors "github.com/autogestion/dealership-backend/pkg/errors"
	"github.com/autogestion/dealership-backend/pkg/kv"
	"github.com/autogestion/dealership-backend/pkg/logger"
)

type fixture struct {
	svc          Service
	vehicleRepo  *records.Repository[vehicles.Vehicle, *vehicles.Vehicle]
	customerRepo *records.Repository[customers.Customer, *customers.Customer]
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	logg := logger.New(logger.Options{ServiceName: "test", Output: io.Discard})
	store := kv.NewStore(kv.NewMemory(), logg, nil)
	vehicleRepo := records.New[vehicles.Vehicle](vehicles.KeyPrefix, store, logg)
	customerRepo := records.New[customers.Customer](customers.KeyPrefix, store, logg)
	saleRepo := records.New[Sale](KeyPrefix, store, logg)

	svc, err := NewService(saleRepo, vehicleRepo, customerRepo, logg)
	if err != nil {
		t.Fatalf("NewService() error = %v", err)
	}
	return &fixture{svc: svc, vehicleRepo: vehicleRepo, customerRepo: customerRepo}
}

func (f *fixture) seedVehicle(t *testing.T, make, model string) *vehicles.Vehicle {
	t.Helper()
	v, err := f.vehicleRepo.Create(context.Background(), &vehicles.Vehicle{
		Make: make, Model: model, Year: 2022, Price: 25000,
		Status: enums.VehicleStatusAvailable, BodyType: enums.BodyTypeSedan, Color: "white",
	})
	if err != nil {
		t.Fatalf("seed vehicle: %v", err)
	}
	return v
}

func (f *fixture) seedCustomer(t *testing.T, name string) *customers.Customer {
	t.Helper()
	c, err := f.customerRepo.Create(context.Background(), &customers.Customer{
		FullName: name, NationalID: "30123456", Email: "b@example.com", Phone: "555-0101",
	})
	if err != nil {
		t.Fatalf("seed customer: %v", err)
	}
	return c
}

func TestCreateMarksVehicleSold(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	vehicle := f.seedVehicle(t, "Toyota", "Corolla")
	customer := f.seedCustomer(t, "Maria Lopez")

	sale, err := f.svc.Create(ctx, Input{
		VehicleID:     vehicle.RecordID(),
		CustomerID:    customer.RecordID(),
		Price:         25000,
		PaymentMethod: enums.PaymentMethodCash,
		Date:          "2026-08-30",
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if sale.RecordID() == "" {
		t.Fatal("Create() assigned empty id")
	}

	updated, ok := f.vehicleRepo.Get(ctx, vehicle.RecordID())
	if !ok {
		t.Fatal("vehicle disappeared after sale")
	}
	if updated.Status != enums.VehicleStatusSold {
		t.Fatalf("vehicle status = %q, want %q", updated.Status, enums.VehicleStatusSold)
	}
}

func TestCreateSurvivesMissingVehicle(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	customer := f.seedCustomer(t, "Maria Lopez")

	sale, err := f.svc.Create(ctx, Input{
		VehicleID:     "vehicle:gone",
		CustomerID:    customer.RecordID(),
		Price:         18000,
		PaymentMethod: enums.PaymentMethodFinanced,
		Date:          "2026-08-30",
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if got := f.svc.List(ctx); len(got) != 1 || got[0].RecordID() != sale.RecordID() {
		t.Fatalf("List() = %+v, want the recorded sale", got)
	}
}

func TestCreateValidation(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Create(context.Background(), Input{
		VehicleID: "vehicle:1", Price: 100, PaymentMethod: enums.PaymentMethodCash, Date: "2026-08-30",
	})
	if appErr := pkgerrors.As(err); appErr == nil || appErr.Code() != pkgerrors.CodeValidation {
		t.Fatalf("Create() error = %v, want %s", err, pkgerrors.CodeValidation)
	}
}

func TestListRowsDecorates(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	vehicle := f.seedVehicle(t, "Toyota", "Corolla")
	customer := f.seedCustomer(t, "Maria Lopez")

	if _, err := f.svc.Create(ctx, Input{
		VehicleID:     vehicle.RecordID(),
		CustomerID:    customer.RecordID(),
		Price:         25000,
		PaymentMethod: enums.PaymentMethodCash,
		Date:          "2026-08-30",
	}); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if _, err := f.svc.Create(ctx, Input{
		VehicleID:     "vehicle:gone",
		CustomerID:    "customer:gone",
		Price:         9000,
		PaymentMethod: enums.PaymentMethodTradeIn,
		Date:          "2026-08-30",
	}); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	rows := f.svc.ListRows(ctx)
	if len(rows) != 2 {
		t.Fatalf("ListRows() = %d rows, want 2", len(rows))
	}
	byCustomer := make(map[string]*Row, len(rows))
	for _, row := range rows {
		byCustomer[row.CustomerID] = row
	}
	resolved := byCustomer[customer.RecordID()]
	if resolved.CustomerName != "Maria Lopez" || resolved.VehicleLabel != "Toyota Corolla" {
		t.Fatalf("resolved row = %+v", resolved)
	}
	dangling := byCustomer["customer:gone"]
	if dangling.CustomerName != "N/A" || dangling.VehicleLabel != "N/A" {
		t.Fatalf("dangling row = %+v, want N/A placeholders", dangling)
	}
}
