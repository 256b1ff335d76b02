package appointments

import (
	"context"
	"io"
	"testing"

	"github.com/autogestion/dealership-backend/internal/records"
	"github.com/autogestion/dealership-backend/pkg/enums"
	pkgerrors "github.com/autogestion/dealership-backend/pkg/errors"
	"github.com/autogestion/dealership-backend/pkg/kv"
	"github.com/autogestion/dealership-backend/pkg/logger"
)

func newTestService(t *testing.T) Service {
	t.Helper()

	logg := logger.New(logger.Options{ServiceName: "test", Output: io.Discard})
	store := kv.NewStore(kv.NewMemory(), logg, nil)
	svc, err := NewService(records.New[Appointment](KeyPrefix, store, logg))
	if err != nil {
		t.Fatalf("NewService() error = %v", err)
	}
	return svc
}

func TestServiceCreateDefaultsType(t *testing.T) {
	svc := newTestService(t)

	created, err := svc.Create(context.Background(), Input{
		CustomerName: "Carlos Ruiz",
		Phone:        "555-0202",
		Date:         "2026-09-01",
		Time:         "10:30",
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if created.Type != enums.AppointmentTypeMaintenance {
		t.Fatalf("Create() type = %q, want %q", created.Type, enums.AppointmentTypeMaintenance)
	}
}

func TestServiceCreateValidation(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Create(context.Background(), Input{CustomerName: "Carlos Ruiz", Date: "2026-09-01", Time: "10:30"})
	if appErr := pkgerrors.As(err); appErr == nil || appErr.Code() != pkgerrors.CodeValidation {
		t.Fatalf("Create() error = %v, want %s", err, pkgerrors.CodeValidation)
	}
}

func TestServiceListAndDelete(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, Input{
		CustomerName: "Carlos Ruiz",
		Phone:        "555-0202",
		Date:         "2026-09-01",
		Time:         "10:30",
		Type:         enums.AppointmentTypeTestDrive,
		Notes:        "Wants the red one",
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if got := svc.List(ctx); len(got) != 1 || got[0].Type != enums.AppointmentTypeTestDrive {
		t.Fatalf("List() = %+v, want the test drive", got)
	}
	if !svc.Delete(ctx, created.RecordID()) {
		t.Fatal("Delete() = false, want true")
	}
	if got := svc.List(ctx); len(got) != 0 {
		t.Fatalf("List() after delete = %d appointments, want 0", len(got))
	}
}
