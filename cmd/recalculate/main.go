package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-pipeline-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-pipeline-api/infrastructure/integrator/sheets"
	"github.com/vfg2006/sales-pipeline-api/infrastructure/repository"
	"github.com/vfg2006/sales-pipeline-api/internal/config"
	"github.com/vfg2006/sales-pipeline-api/internal/domain"
	"github.com/vfg2006/sales-pipeline-api/internal/usecases/pipeline"
	"github.com/vfg2006/sales-pipeline-api/pkg/log"
	"github.com/vfg2006/sales-pipeline-api/pkg/utils"
)

// Recalcula as previsões mensais de todos os pipelines gravados, opcionalmente
// restrito a um trimestre fiscal. Útil após mudanças nas regras de cálculo.
func main() {
	fiscalYear := flag.Int("fy", 0, "ano fiscal (0 = todos)")
	fiscalQuarter := flag.Int("fq", 0, "trimestre fiscal 1-4 (0 = todos)")
	dryRun := flag.Bool("dry-run", false, "apenas lista os pipelines que seriam alterados")
	flag.Parse()

	if *fiscalQuarter < 0 || *fiscalQuarter > 4 {
		fmt.Fprintln(os.Stderr, "fq deve estar entre 1 e 4")
		os.Exit(2)
	}

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Setup(cfg.App.LogLevel)

	ctx := context.Background()

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}
	defer conn.Close()

	// A planilha é mantida pelo agendador, aqui só o banco é atualizado
	publisher := sheets.NewPublisher(sheets.NoopIntegrator{}, 0)

	service := pipeline.NewService(
		repository.NewPipelineRepository(conn),
		repository.NewMonthlyForecastRepository(conn),
		repository.NewActivityRepository(conn),
		conn,
		publisher,
		cfg,
	)

	filter := domain.PipelineFilter{}
	if *fiscalYear > 0 {
		filter.FiscalYear = fiscalYear
	}
	if *fiscalQuarter > 0 {
		filter.FiscalQuarter = fiscalQuarter
	}

	summary, err := service.RecalculateAll(ctx, filter, *dryRun)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao recalcular pipelines")
	}

	fmt.Println(utils.PrettyJson(summary))

	if summary.Failed > 0 {
		os.Exit(1)
	}
}
