package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "sales_pipeline"

var (
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total de requisições HTTP por rota e status.",
	}, []string{"code", "method", "route"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duração das requisições HTTP por rota.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route"})

	ForecastRecalculations = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "forecast_recalculations_total",
		Help:      "Recálculos de previsão por resultado (updated, unchanged, failed).",
	}, []string{"result"})

	UnknownStatusTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "unknown_status_total",
		Help:      "Pipelines calculados com código de status fora da tabela de progresso.",
	})

	SheetsPushes = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sheets_pushes_total",
		Help:      "Envios de pipelines para a planilha por resultado.",
	}, []string{"result"})
)

// Handler expõe o endpoint /metrics
func Handler() http.Handler {
	return promhttp.Handler()
}

// InstrumentRoute mede contagem e duração usando o padrão da rota como label,
// evitando uma série por ID
func InstrumentRoute(route string, next http.Handler) http.Handler {
	labels := prometheus.Labels{"route": route}

	return promhttp.InstrumentHandlerDuration(
		HTTPRequestDuration.MustCurryWith(labels),
		promhttp.InstrumentHandlerCounter(HTTPRequestsTotal.MustCurryWith(labels), next),
	)
}
