package handler

import (
	"errors"
	"net/http"
	"strconv"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/sales-pipeline-api/internal/usecases/authenticating"
	"github.com/vfg2006/sales-pipeline-api/internal/usecases/dashboard"
	"github.com/vfg2006/sales-pipeline-api/internal/usecases/pipeline"
	"github.com/vfg2006/sales-pipeline-api/pkg/apiErrors"
	"github.com/vfg2006/sales-pipeline-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.L.WithError(err).Error("Erro ao enviar resposta")
	}
}

// writeServiceError converte os erros tipados dos serviços no formato {code, message, details}
func writeServiceError(w http.ResponseWriter, r *http.Request, component string, err error) {
	var pipelineErr *pipeline.PipelineError
	var authErr *authenticating.AuthError

	switch {
	case errors.As(err, &pipelineErr):
		var details any
		if pipelineErr.PipelineID != "" {
			details = map[string]any{"pipeline_id": pipelineErr.PipelineID}
		}
		if apiErrors.StatusFor(pipelineErr.Code) >= http.StatusInternalServerError {
			log.ForContext(r.Context()).WithError(err).Errorf("%s: falha no serviço de pipelines", component)
		}
		apiErrors.WriteError(w, pipelineErr.Code, pipelineErr.Error(), details)

	case errors.As(err, &authErr):
		var details any
		if authErr.UserID != 0 {
			details = map[string]any{"user_id": authErr.UserID}
		}
		apiErrors.WriteError(w, authErr.Code, authErr.Error(), details)

	case errors.Is(err, dashboard.ErrFetchDashboard):
		log.ForContext(r.Context()).WithError(err).Errorf("%s: falha ao montar dashboard", component)
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar dados do dashboard", nil)

	default:
		log.ForContext(r.Context()).WithError(err).Errorf("%s: erro inesperado", component)
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno do servidor", nil)
	}
}

// queryInt lê um parâmetro inteiro opcional da query string
func queryInt(r *http.Request, name string) (*int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return nil, err
	}

	return &value, nil
}

// quarterParams lê fiscal_year e fiscal_quarter, ausentes significam o trimestre corrente
func quarterParams(w http.ResponseWriter, r *http.Request) (*int, *int, bool) {
	fiscalYear, err := queryInt(r, "fiscal_year")
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "fiscal_year inválido", nil)
		return nil, nil, false
	}

	fiscalQuarter, err := queryInt(r, "fiscal_quarter")
	if err != nil || (fiscalQuarter != nil && (*fiscalQuarter < 1 || *fiscalQuarter > 4)) {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "fiscal_quarter deve estar entre 1 e 4", nil)
		return nil, nil, false
	}

	return fiscalYear, fiscalQuarter, true
}
