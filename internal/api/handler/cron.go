package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/sales-pipeline-api/pkg/apiErrors"
	"github.com/vfg2006/sales-pipeline-api/pkg/log"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeRecalculation = "recalculation"
	CronJobTypeSheets        = "sheets"
	CronJobTypeAll           = "all"
)

// CronJob é um agendador que aceita execução manual
type CronJob interface {
	TriggerManualSync()
	GetStatus() map[string]any
}

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	ForecastRecalculationService CronJob
	SheetsSyncService            CronJob
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypeRecalculation:
			if services.ForecastRecalculationService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de recálculo de previsões não disponível", nil)
				return
			}
			services.ForecastRecalculationService.TriggerManualSync()

		case CronJobTypeSheets:
			if services.SheetsSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de sincronização da planilha não disponível", nil)
				return
			}
			services.SheetsSyncService.TriggerManualSync()

		case CronJobTypeAll:
			if services.ForecastRecalculationService != nil {
				services.ForecastRecalculationService.TriggerManualSync()
			}
			if services.SheetsSyncService != nil {
				services.SheetsSyncService.TriggerManualSync()
			}

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: recalculation, sheets, all", nil)
			return
		}

		log.ForContext(r.Context()).WithField("type", cronType).Info("RunCronJob: execução manual iniciada")

		writeJSON(w, http.StatusAccepted, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	})
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{}
		if services.ForecastRecalculationService != nil {
			status[CronJobTypeRecalculation] = services.ForecastRecalculationService.GetStatus()
		}
		if services.SheetsSyncService != nil {
			status[CronJobTypeSheets] = services.SheetsSyncService.GetStatus()
		}

		writeJSON(w, http.StatusOK, status)
	})
}
