package sheets

import (
	"context"
	"sync"
	"time"

	"github.com/vfg2006/sales-pipeline-api/internal/domain"
	"github.com/vfg2006/sales-pipeline-api/pkg/log"
	"github.com/vfg2006/sales-pipeline-api/pkg/metrics"
)

const (
	defaultPushTimeout = 15 * time.Second
	queueSize          = 256
)

// Publisher envia pipelines para a planilha em segundo plano.
// Um único worker consome a fila, então os envios chegam na ordem de Enqueue.
// Falhas são apenas registradas e nunca chegam ao chamador HTTP.
type Publisher struct {
	integrator SheetsIntegrator
	timeout    time.Duration
	queue      chan domain.Pipeline
	start      sync.Once
	wg         sync.WaitGroup
}

func NewPublisher(integrator SheetsIntegrator, timeout time.Duration) *Publisher {
	if timeout <= 0 {
		timeout = defaultPushTimeout
	}

	return &Publisher{
		integrator: integrator,
		timeout:    timeout,
		queue:      make(chan domain.Pipeline, queueSize),
	}
}

// Enqueue coloca uma cópia do pipeline na fila. Bloqueia se a fila estiver cheia.
func (p *Publisher) Enqueue(pipeline *domain.Pipeline) {
	if pipeline == nil || !p.integrator.Enabled() {
		return
	}

	snapshot := *pipeline
	snapshot.MonthlyForecasts = append([]*domain.MonthlyForecast(nil), pipeline.MonthlyForecasts...)

	p.start.Do(func() { go p.run() })

	p.wg.Add(1)
	p.queue <- snapshot
}

func (p *Publisher) run() {
	for snapshot := range p.queue {
		p.push(&snapshot)
		p.wg.Done()
	}
}

func (p *Publisher) push(snapshot *domain.Pipeline) {
	ctx, cancel := context.WithTimeout(context.Background(), p.timeout)
	defer cancel()

	logger := log.L.WithField("pipeline_id", snapshot.ID)
	if err := p.integrator.PushPipeline(ctx, snapshot); err != nil {
		metrics.SheetsPushes.WithLabelValues("failed").Inc()
		logger.WithError(err).Error("Erro ao sincronizar pipeline com a planilha")
		return
	}

	metrics.SheetsPushes.WithLabelValues("ok").Inc()
	logger.Debug("Pipeline sincronizado com a planilha")
}

// Wait bloqueia até que a fila seja drenada
func (p *Publisher) Wait() {
	p.wg.Wait()
}
