package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/autogestion/dealership-backend/api/controllers"
	"github.com/autogestion/dealership-backend/api/middleware"
	"github.com/autogestion/dealership-backend/internal/appointments"
	"github.com/autogestion/dealership-backend/internal/customers"
	"github.com/autogestion/dealership-backend/internal/reports"
	"github.com/autogestion/dealership-backend/internal/sales"
	"github.com/autogestion/dealership-backend/internal/servicetickets"
	"github.com/autogestion/dealership-backend/internal/session"
	"github.com/autogestion/dealership-backend/internal/vehicles"
	"github.com/autogestion/dealership-backend/pkg/config"
	"github.com/autogestion/dealership-backend/pkg/kv"
	"github.com/autogestion/dealership-backend/pkg/logger"
)

// Services bundles everything the router wires into handlers.
type Services struct {
	Sessions     session.Service
	Vehicles     vehicles.Service
	Customers    customers.Service
	Sales        sales.Service
	Tickets      servicetickets.Service
	Appointments appointments.Service
	Reports      reports.Service
}

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	store *kv.Store,
	registry *prometheus.Registry,
	svcs Services,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(cfg.CORS),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, store))
	})

	if registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Actor(svcs.Sessions, logg))

		r.Route("/session", func(r chi.Router) {
			r.Post("/", controllers.SessionLogin(svcs.Sessions, logg))
			r.Get("/", controllers.SessionCurrent(svcs.Sessions, logg))
			r.Delete("/", controllers.SessionLogout(svcs.Sessions, logg))
		})

		r.Route("/vehicles", func(r chi.Router) {
			r.Get("/", controllers.VehicleList(svcs.Vehicles, logg))
			r.Post("/", controllers.VehicleCreate(svcs.Vehicles, logg))
			r.Get("/{id}", controllers.VehicleGet(svcs.Vehicles, logg))
			r.Put("/{id}", controllers.VehicleUpdate(svcs.Vehicles, logg))
			r.Delete("/{id}", controllers.VehicleDelete(svcs.Vehicles, logg))
		})

		r.Route("/customers", func(r chi.Router) {
			r.Get("/", controllers.CustomerList(svcs.Customers, logg))
			r.Post("/", controllers.CustomerCreate(svcs.Customers, logg))
			r.Get("/{id}", controllers.CustomerGet(svcs.Customers, logg))
			r.Put("/{id}", controllers.CustomerUpdate(svcs.Customers, logg))
			r.Delete("/{id}", controllers.CustomerDelete(svcs.Customers, logg))
		})

		r.Route("/sales", func(r chi.Router) {
			r.Get("/", controllers.SaleList(svcs.Sales, logg))
			r.Post("/", controllers.SaleCreate(svcs.Sales, logg))
		})

		r.Route("/services", func(r chi.Router) {
			r.Get("/", controllers.ServiceTicketList(svcs.Tickets, logg))
			r.Post("/", controllers.ServiceTicketCreate(svcs.Tickets, logg))
			r.Delete("/{id}", controllers.ServiceTicketDelete(svcs.Tickets, logg))
		})

		r.Route("/appointments", func(r chi.Router) {
			r.Get("/", controllers.AppointmentList(svcs.Appointments, logg))
			r.Post("/", controllers.AppointmentCreate(svcs.Appointments, logg))
			r.Delete("/{id}", controllers.AppointmentDelete(svcs.Appointments, logg))
		})

		r.Get("/dashboard", controllers.DashboardStats(svcs.Reports, logg))
		r.Get("/reports", controllers.SalesReport(svcs.Reports, logg))
	})

	return r
}
