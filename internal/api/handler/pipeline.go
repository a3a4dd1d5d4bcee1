package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/sales-pipeline-api/internal/domain"
	"github.com/vfg2006/sales-pipeline-api/internal/usecases/pipeline"
	"github.com/vfg2006/sales-pipeline-api/pkg/apiErrors"
	"github.com/vfg2006/sales-pipeline-api/pkg/log"
	"github.com/vfg2006/sales-pipeline-api/pkg/middleware"
)

const maxListLimit = 500

type RecalculateResponse struct {
	Pipeline *domain.Pipeline `json:"pipeline"`
	Changed  bool             `json:"changed"`
}

func ListPipelines(service pipeline.PipelineService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		filter, ok := parsePipelineFilter(w, r)
		if !ok {
			return
		}

		pipelines, err := service.List(r.Context(), filter)
		if err != nil {
			writeServiceError(w, r, "ListPipelines", err)
			return
		}

		writeJSON(w, http.StatusOK, pipelines)
	})
}

func CreatePipeline(service pipeline.PipelineService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req domain.CreatePipelineRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		actor, _ := middleware.ClaimsFromContext(r.Context())

		created, err := service.Create(r.Context(), &req, actor)
		if err != nil {
			writeServiceError(w, r, "CreatePipeline", err)
			return
		}

		log.ForContext(r.Context()).WithField("pipeline_id", created.ID).Info("CreatePipeline: pipeline criado")
		writeJSON(w, http.StatusCreated, created)
	})
}

func GetPipeline(service pipeline.PipelineService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		p, err := service.Get(r.Context(), id)
		if err != nil {
			writeServiceError(w, r, "GetPipeline", err)
			return
		}

		writeJSON(w, http.StatusOK, p)
	})
}

func UpdatePipeline(service pipeline.PipelineService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var req domain.UpdatePipelineRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		if len(req.ProvidedFields()) == 0 {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Nenhum campo informado para atualização", nil)
			return
		}

		actor, _ := middleware.ClaimsFromContext(r.Context())

		updated, err := service.Update(r.Context(), id, &req, actor)
		if err != nil {
			writeServiceError(w, r, "UpdatePipeline", err)
			return
		}

		writeJSON(w, http.StatusOK, updated)
	})
}

func DeletePipeline(service pipeline.PipelineService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if err := service.Delete(r.Context(), id); err != nil {
			writeServiceError(w, r, "DeletePipeline", err)
			return
		}

		log.ForContext(r.Context()).WithField("pipeline_id", id).Info("DeletePipeline: pipeline excluído")
		w.WriteHeader(http.StatusNoContent)
	})
}

func RecalculatePipeline(service pipeline.PipelineService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		p, changed, err := service.Recalculate(r.Context(), id)
		if err != nil {
			writeServiceError(w, r, "RecalculatePipeline", err)
			return
		}

		writeJSON(w, http.StatusOK, RecalculateResponse{Pipeline: p, Changed: changed})
	})
}

func ListPipelineActivities(service pipeline.PipelineService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		activities, err := service.Activities(r.Context(), id)
		if err != nil {
			writeServiceError(w, r, "ListPipelineActivities", err)
			return
		}

		writeJSON(w, http.StatusOK, activities)
	})
}

// parsePipelineFilter aceita status repetido ou separado por vírgula
func parsePipelineFilter(w http.ResponseWriter, r *http.Request) (domain.PipelineFilter, bool) {
	var filter domain.PipelineFilter
	query := r.URL.Query()

	fiscalYear, fiscalQuarter, ok := quarterParams(w, r)
	if !ok {
		return filter, false
	}
	filter.FiscalYear = fiscalYear
	filter.FiscalQuarter = fiscalQuarter

	ownerID, err := queryInt(r, "owner_id")
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "owner_id inválido", nil)
		return filter, false
	}
	filter.OwnerID = ownerID

	for _, raw := range query["status"] {
		for _, status := range strings.Split(raw, ",") {
			if normalized := domain.PipelineStatus(status).Normalize(); normalized != "" {
				filter.Statuses = append(filter.Statuses, normalized)
			}
		}
	}

	filter.ClientName = strings.TrimSpace(query.Get("client_name"))

	if raw := query.Get("limit"); raw != "" {
		limit, err := strconv.ParseUint(raw, 10, 64)
		if err != nil || limit == 0 || limit > maxListLimit {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "limit deve estar entre 1 e 500", nil)
			return filter, false
		}
		filter.Limit = limit
	}

	if raw := query.Get("offset"); raw != "" {
		offset, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "offset inválido", nil)
			return filter, false
		}
		filter.Offset = offset
	}

	return filter, true
}
