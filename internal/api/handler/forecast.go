package handler

import (
	"net/http"

	"github.com/vfg2006/sales-pipeline-api/internal/domain"
	"github.com/vfg2006/sales-pipeline-api/internal/usecases/pipeline"
	"github.com/vfg2006/sales-pipeline-api/pkg/apiErrors"
)

// PreviewForecast calcula a previsão de um pipeline hipotético, sem gravar nada
func PreviewForecast(service pipeline.PipelineService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req domain.ForecastPreviewRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		preview, err := service.Preview(r.Context(), &req)
		if err != nil {
			writeServiceError(w, r, "PreviewForecast", err)
			return
		}

		writeJSON(w, http.StatusOK, preview)
	})
}
