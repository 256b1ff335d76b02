package reports

import (
	"context"
	"fmt"
	"math"

	"github.com/autogestion/dealership-backend/internal/sales"
	"github.com/autogestion/dealership-backend/internal/servicetickets"
)

// Dashboard counts records per entity without fetching their values.
type Dashboard struct {
	Vehicles     int `json:"vehicles"`
	Customers    int `json:"customers"`
	Sales        int `json:"sales"`
	ServiceJobs  int `json:"service_jobs"`
	Appointments int `json:"appointments"`
}

// Report aggregates the sales figures shown on the reports screen.
// ServicesPerformed counts every workshop ticket regardless of status.
type Report struct {
	TotalRevenue        int64 `json:"total_revenue"`
	TotalSales          int   `json:"total_sales"`
	VehiclesSold        int   `json:"vehicles_sold"`
	ServicesPerformed   int   `json:"services_performed"`
	CustomersRegistered int   `json:"customers_registered"`
	AverageTicket       int64 `json:"average_ticket"`
	ConversionRate      int   `json:"conversion_rate"`
}

type counter interface {
	Count(ctx context.Context) int
}

type saleSource interface {
	List(ctx context.Context) []*sales.Sale
	Count(ctx context.Context) int
}

type ticketSource interface {
	Count(ctx context.Context) int
	List(ctx context.Context) []*servicetickets.Ticket
}

// Service computes the dashboard and report aggregates on demand.
// Nothing is cached; every call reads the store as it is now.
type Service interface {
	Dashboard(ctx context.Context) *Dashboard
	Report(ctx context.Context) *Report
}

type service struct {
	vehicles     counter
	customers    counter
	appointments counter
	sales        saleSource
	tickets      ticketSource
}

// NewService builds the aggregation service over the entity repositories.
func NewService(vehicles, customers, appointments counter, saleRepo saleSource, ticketRepo ticketSource) (Service, error) {
	if vehicles == nil || customers == nil || appointments == nil {
		return nil, fmt.Errorf("entity counters required")
	}
	if saleRepo == nil {
		return nil, fmt.Errorf("sale repository required")
	}
	if ticketRepo == nil {
		return nil, fmt.Errorf("ticket repository required")
	}
	return &service{
		vehicles:     vehicles,
		customers:    customers,
		appointments: appointments,
		sales:        saleRepo,
		tickets:      ticketRepo,
	}, nil
}

// Dashboard counts keys per prefix without decoding any values.
func (s *service) Dashboard(ctx context.Context) *Dashboard {
	return &Dashboard{
		Vehicles:     s.vehicles.Count(ctx),
		Customers:    s.customers.Count(ctx),
		Sales:        s.sales.Count(ctx),
		ServiceJobs:  s.tickets.Count(ctx),
		Appointments: s.appointments.Count(ctx),
	}
}

func (s *service) Report(ctx context.Context) *Report {
	// The report reads the surviving records, so entries that fail to
	// decode are excluded here even though the dashboard counts them.
	listed := s.sales.List(ctx)
	jobs := s.tickets.List(ctx)
	registered := s.customers.Count(ctx)

	var revenue int64
	for _, sale := range listed {
		revenue += sale.Price
	}

	report := &Report{
		TotalRevenue:        revenue,
		TotalSales:          len(listed),
		VehiclesSold:        len(listed),
		ServicesPerformed:   len(jobs),
		CustomersRegistered: registered,
	}
	if len(listed) > 0 {
		report.AverageTicket = int64(math.Round(float64(revenue) / float64(len(listed))))
	}
	if registered > 0 {
		report.ConversionRate = int(math.Round(float64(len(listed)) / float64(registered) * 100))
	}
	return report
}
