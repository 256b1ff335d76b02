package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/autogestion/dealership-backend/internal/appointments"
	"github.com/autogestion/dealership-backend/internal/customers"
	"github.com/autogestion/dealership-backend/internal/records"
	"github.com/autogestion/dealership-backend/internal/reports"
	"github.com/autogestion/dealership-backend/internal/sales"
	"github.com/autogestion/dealership-backend/internal/servicetickets"
	"github.com/autogestion/dealership-backend/internal/session"
	"github.com/autogestion/dealership-backend/internal/vehicles"
	"github.com/autogestion/dealership-backend/pkg/config"
	"github.com/autogestion/dealership-backend/pkg/kv"
	"github.com/autogestion/dealership-backend/pkg/logger"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	logg := logger.New(logger.Options{ServiceName: "test", Output: io.Discard})
	store := kv.NewStore(kv.NewMemory(), logg, nil)

	vehicleRepo := records.New[vehicles.Vehicle](vehicles.KeyPrefix, store, logg)
	customerRepo := records.New[customers.Customer](customers.KeyPrefix, store, logg)
	saleRepo := records.New[sales.Sale](sales.KeyPrefix, store, logg)
	ticketRepo := records.New[servicetickets.Ticket](servicetickets.KeyPrefix, store, logg)
	appointmentRepo := records.New[appointments.Appointment](appointments.KeyPrefix, store, logg)

	vehicleSvc, err := vehicles.NewService(vehicleRepo)
	if err != nil {
		t.Fatalf("vehicles.NewService() error = %v", err)
	}
	customerSvc, err := customers.NewService(customerRepo)
	if err != nil {
		t.Fatalf("customers.NewService() error = %v", err)
	}
	saleSvc, err := sales.NewService(saleRepo, vehicleRepo, customerRepo, logg)
	if err != nil {
		t.Fatalf("sales.NewService() error = %v", err)
	}
	ticketSvc, err := servicetickets.NewService(ticketRepo)
	if err != nil {
		t.Fatalf("servicetickets.NewService() error = %v", err)
	}
	appointmentSvc, err := appointments.NewService(appointmentRepo)
	if err != nil {
		t.Fatalf("appointments.NewService() error = %v", err)
	}
	reportSvc, err := reports.NewService(vehicleRepo, customerRepo, appointmentRepo, saleRepo, ticketRepo)
	if err != nil {
		t.Fatalf("reports.NewService() error = %v", err)
	}
	sessionSvc, err := session.NewService(store, logg)
	if err != nil {
		t.Fatalf("session.NewService() error = %v", err)
	}

	cfg := &config.Config{
		App:  config.AppConfig{Env: config.AppEnvDev},
		CORS: config.CORSConfig{AllowedOrigins: []string{"http://localhost:3000"}},
	}
	return NewRouter(cfg, logg, store, nil, Services{
		Sessions:     sessionSvc,
		Vehicles:     vehicleSvc,
		Customers:    customerSvc,
		Sales:        saleSvc,
		Tickets:      ticketSvc,
		Appointments: appointmentSvc,
		Reports:      reportSvc,
	})
}

func doJSON(t *testing.T, router http.Handler, method, path string, payload any, wantStatus int) map[string]any {
	t.Helper()

	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal payload: %v", err)
		}
		body = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, body)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != wantStatus {
		t.Fatalf("%s %s = %d, want %d (body=%s)", method, path, rec.Code, wantStatus, rec.Body.String())
	}

	var envelope map[string]any
	if err := json.NewDecoder(rec.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode %s %s response: %v", method, path, err)
	}
	return envelope
}

// Walks the full sale flow: register a vehicle and a customer, sell the
// vehicle, then check the listing, dashboard, and report reflect it.
func TestSaleFlow(t *testing.T) {
	router := newTestRouter(t)

	doJSON(t, router, http.MethodPost, "/api/v1/session",
		map[string]any{"username": "mgarcia", "role": "seller"}, http.StatusCreated)

	created := doJSON(t, router, http.MethodPost, "/api/v1/vehicles", map[string]any{
		"make": "Toyota", "model": "Corolla", "year": 2022, "price": 25000, "color": "white",
	}, http.StatusCreated)
	vehicleID := created["data"].(map[string]any)["id"].(string)

	created = doJSON(t, router, http.MethodPost, "/api/v1/customers", map[string]any{
		"full_name": "Maria Lopez", "national_id": "30123456",
		"email": "maria@example.com", "phone": "555-0101",
	}, http.StatusCreated)
	customerID := created["data"].(map[string]any)["id"].(string)

	doJSON(t, router, http.MethodPost, "/api/v1/sales", map[string]any{
		"vehicle_id": vehicleID, "customer_id": customerID,
		"price": 25000, "payment_method": "cash", "date": "2026-08-30",
	}, http.StatusCreated)

	fetched := doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/v1/vehicles/%s", vehicleID), nil, http.StatusOK)
	if status := fetched["data"].(map[string]any)["status"]; status != "sold" {
		t.Fatalf("vehicle status after sale = %v, want sold", status)
	}

	available := doJSON(t, router, http.MethodGet, "/api/v1/vehicles?status=available", nil, http.StatusOK)
	if listed := available["data"].([]any); len(listed) != 0 {
		t.Fatalf("available vehicles after sale = %d, want 0", len(listed))
	}

	rows := doJSON(t, router, http.MethodGet, "/api/v1/sales", nil, http.StatusOK)
	row := rows["data"].([]any)[0].(map[string]any)
	if row["customer_name"] != "Maria Lopez" || row["vehicle_label"] != "Toyota Corolla" {
		t.Fatalf("sale row = %+v", row)
	}

	dash := doJSON(t, router, http.MethodGet, "/api/v1/dashboard", nil, http.StatusOK)
	stats := dash["data"].(map[string]any)
	if stats["vehicles"].(float64) != 1 || stats["customers"].(float64) != 1 || stats["sales"].(float64) != 1 {
		t.Fatalf("dashboard = %+v", stats)
	}

	report := doJSON(t, router, http.MethodGet, "/api/v1/reports", nil, http.StatusOK)
	figures := report["data"].(map[string]any)
	if figures["total_revenue"].(float64) != 25000 {
		t.Fatalf("report revenue = %v, want 25000", figures["total_revenue"])
	}
	if figures["conversion_rate"].(float64) != 100 {
		t.Fatalf("report conversion rate = %v, want 100", figures["conversion_rate"])
	}
}

func TestSessionLifecycleOverHTTP(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/session", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("GET session before login = %d, want 401", rec.Code)
	}

	doJSON(t, router, http.MethodPost, "/api/v1/session",
		map[string]any{"username": "jperez", "role": "manager"}, http.StatusCreated)

	current := doJSON(t, router, http.MethodGet, "/api/v1/session", nil, http.StatusOK)
	if current["data"].(map[string]any)["username"] != "jperez" {
		t.Fatalf("current session = %+v", current)
	}

	doJSON(t, router, http.MethodDelete, "/api/v1/session", nil, http.StatusOK)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/session", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("GET session after logout = %d, want 401", rec.Code)
	}
}

func TestHealthEndpoints(t *testing.T) {
	router := newTestRouter(t)

	doJSON(t, router, http.MethodGet, "/health/live", nil, http.StatusOK)
	ready := doJSON(t, router, http.MethodGet, "/health/ready", nil, http.StatusOK)
	if ready["data"].(map[string]any)["backend"] != "memory" {
		t.Fatalf("ready payload = %+v", ready)
	}
}
