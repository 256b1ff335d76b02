package controllers

import (
	"net/http"

	"github.com/autogestion/dealership-backend/api/responses"
	"github.com/autogestion/dealership-backend/internal/reports"
	"github.com/autogestion/dealership-backend/pkg/logger"
)

func DashboardStats(svc reports.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, svc.Dashboard(r.Context()))
	}
}

func SalesReport(svc reports.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, svc.Report(r.Context()))
	}
}
