package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/vfg2006/sales-pipeline-api/pkg/log"
)

// Pinger verifica a disponibilidade do banco
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthcheckResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Time     string `json:"time"`
}

func HealthcheckHandler(db Pinger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		response := HealthcheckResponse{
			Status:   "ok",
			Database: "ok",
			Time:     time.Now().Format(time.RFC3339),
		}

		if db != nil {
			ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
			defer cancel()

			if err := db.Ping(ctx); err != nil {
				log.ForContext(r.Context()).WithError(err).Warn("error responding to healthcheck")
				response.Status = "degraded"
				response.Database = "unavailable"
				writeJSON(w, http.StatusServiceUnavailable, response)
				return
			}
		}

		writeJSON(w, http.StatusOK, response)
	})
}
