package handler

import (
	"net/http"

	"github.com/vfg2006/sales-pipeline-api/internal/usecases/dashboard"
)

func GetQuarterSummary(service dashboard.DashboardService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fiscalYear, fiscalQuarter, ok := quarterParams(w, r)
		if !ok {
			return
		}

		summary, err := service.QuarterSummary(r.Context(), fiscalYear, fiscalQuarter)
		if err != nil {
			writeServiceError(w, r, "GetQuarterSummary", err)
			return
		}

		writeJSON(w, http.StatusOK, summary)
	})
}

func GetKanban(service dashboard.DashboardService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fiscalYear, fiscalQuarter, ok := quarterParams(w, r)
		if !ok {
			return
		}

		columns, err := service.Kanban(r.Context(), fiscalYear, fiscalQuarter)
		if err != nil {
			writeServiceError(w, r, "GetKanban", err)
			return
		}

		writeJSON(w, http.StatusOK, columns)
	})
}
