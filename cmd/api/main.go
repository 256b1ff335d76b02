package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/autogestion/dealership-backend/api/routes"
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
	"github.com/autogestion/dealership-backend/pkg/metrics"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	storeMetrics := metrics.NewStoreMetrics(registry)

	store, err := kv.Select(context.Background(), cfg, logg, storeMetrics)
	if err != nil {
		logg.Error(context.Background(), "failed to open storage backend", err)
		os.Exit(1)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logg.Error(context.Background(), "error closing storage backend", err)
		}
	}()

	vehicleRepo := records.New[vehicles.Vehicle](vehicles.KeyPrefix, store, logg)
	customerRepo := records.New[customers.Customer](customers.KeyPrefix, store, logg)
	saleRepo := records.New[sales.Sale](sales.KeyPrefix, store, logg)
	ticketRepo := records.New[servicetickets.Ticket](servicetickets.KeyPrefix, store, logg)
	appointmentRepo := records.New[appointments.Appointment](appointments.KeyPrefix, store, logg)

	vehicleSvc, err := vehicles.NewService(vehicleRepo)
	if err != nil {
		logg.Error(context.Background(), "failed to create vehicle service", err)
		os.Exit(1)
	}
	customerSvc, err := customers.NewService(customerRepo)
	if err != nil {
		logg.Error(context.Background(), "failed to create customer service", err)
		os.Exit(1)
	}
	saleSvc, err := sales.NewService(saleRepo, vehicleRepo, customerRepo, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create sale service", err)
		os.Exit(1)
	}
	ticketSvc, err := servicetickets.NewService(ticketRepo)
	if err != nil {
		logg.Error(context.Background(), "failed to create workshop service", err)
		os.Exit(1)
	}
	appointmentSvc, err := appointments.NewService(appointmentRepo)
	if err != nil {
		logg.Error(context.Background(), "failed to create appointment service", err)
		os.Exit(1)
	}
	reportSvc, err := reports.NewService(vehicleRepo, customerRepo, appointmentRepo, saleRepo, ticketRepo)
	if err != nil {
		logg.Error(context.Background(), "failed to create report service", err)
		os.Exit(1)
	}
	sessionSvc, err := session.NewService(store, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create session service", err)
		os.Exit(1)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":     cfg.App.Env,
		"addr":    addr,
		"backend": store.Backend(),
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(cfg, logg, store, registry, routes.Services{
			Sessions:     sessionSvc,
			Vehicles:     vehicleSvc,
			Customers:    customerSvc,
			Sales:        saleSvc,
			Tickets:      ticketSvc,
			Appointments: appointmentSvc,
			Reports:      reportSvc,
		}),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
