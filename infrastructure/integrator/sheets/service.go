package sheets

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"
	sheetsdomain "github.com/vfg2006/sales-pipeline-api/infrastructure/integrator/sheets/domain"
	"github.com/vfg2006/sales-pipeline-api/infrastructure/integrator/sheets/sheetsclient"
	"github.com/vfg2006/sales-pipeline-api/internal/config"
	"github.com/vfg2006/sales-pipeline-api/internal/domain"
	"github.com/vfg2006/sales-pipeline-api/pkg/log"
)

type SheetsIntegrator interface {
	Enabled() bool
	PushPipeline(ctx context.Context, pipeline *domain.Pipeline) error
	PushPipelines(ctx context.Context, pipelines []*domain.Pipeline, delay time.Duration) (*SyncResult, error)
}

type SyncResult struct {
	Updated  int `json:"updated"`
	Appended int `json:"appended"`
	Failed   int `json:"failed"`
}

// SheetsService serializa os envios: cada um lê a coluna de IDs antes de escrever
type SheetsService struct {
	cfg    config.Sheets
	Client sheetsclient.Client
	mu     sync.Mutex
}

func New(cfg *config.Config, client sheetsclient.Client) SheetsIntegrator {
	return &SheetsService{
		cfg:    cfg.Sheets,
		Client: client,
	}
}

func (s *SheetsService) Enabled() bool {
	return true
}

// PushPipeline procura o ID na coluna A e atualiza a linha, ou adiciona uma nova
func (s *SheetsService) PushPipeline(ctx context.Context, pipeline *domain.Pipeline) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.readIDs(ctx)
	if err != nil {
		return err
	}

	_, err = s.push(ctx, rows, pipeline)
	return err
}

// PushPipelines lê a coluna de IDs uma única vez e envia todos os pipelines,
// aguardando delay entre escritas para respeitar a cota da API
func (s *SheetsService) PushPipelines(ctx context.Context, pipelines []*domain.Pipeline, delay time.Duration) (*SyncResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := &SyncResult{}

	rows, err := s.readIDs(ctx)
	if err != nil {
		return result, err
	}

	for i, pipeline := range pipelines {
		if i > 0 && delay > 0 {
			select {
			case <-ctx.Done():
				return result, ctx.Err()
			case <-time.After(delay):
			}
		}

		appended, err := s.push(ctx, rows, pipeline)
		if err != nil {
			result.Failed++
			log.ForContext(ctx).WithFields(log.Fields{
				"pipeline_id": pipeline.ID,
				"error":       err.Error(),
			}).Warn("Erro ao enviar pipeline para a planilha")
			continue
		}

		if appended {
			result.Appended++
		} else {
			result.Updated++
		}
	}

	return result, nil
}

// readIDs devolve o número da linha (base 1) de cada ID já presente na planilha
func (s *SheetsService) readIDs(ctx context.Context) (map[string]int, error) {
	column := sheetsdomain.IDColumn
	ids, err := s.Client.ReadColumn(ctx, s.cfg.SpreadsheetID, sheetsdomain.A1Range(s.cfg.SheetName, column+":"+column))
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar IDs da planilha")
	}

	rows := make(map[string]int, len(ids))
	for i, id := range ids {
		if i < sheetsdomain.HeaderRows || id == "" {
			continue
		}
		rows[strings.TrimSpace(id)] = i + 1
	}

	return rows, nil
}

// push atualiza rows quando uma linha é adicionada, para que o próximo envio a encontre
func (s *SheetsService) push(ctx context.Context, rows map[string]int, pipeline *domain.Pipeline) (bool, error) {
	if row, ok := rows[pipeline.ID]; ok {
		return false, s.updateRow(ctx, row, pipeline)
	}

	values, err := sheetsdomain.BuildRow(pipeline)
	if err != nil {
		return false, errors.Wrap(err, "erro ao montar linha")
	}

	appendRange := sheetsdomain.A1Range(s.cfg.SheetName, sheetsdomain.IDColumn+"1")
	if err := s.Client.AppendRow(ctx, s.cfg.SpreadsheetID, appendRange, values); err != nil {
		return false, errors.Wrapf(err, "erro ao adicionar pipeline %s", pipeline.ID)
	}

	rows[pipeline.ID] = nextRow(rows)
	return true, nil
}

func (s *SheetsService) updateRow(ctx context.Context, row int, pipeline *domain.Pipeline) error {
	values := sheetsdomain.BuildValues(pipeline)

	updates := make([]sheetsclient.CellUpdate, 0, len(sheetsdomain.Columns)-1)
	for _, col := range sheetsdomain.Columns {
		if col.Letter == sheetsdomain.IDColumn {
			continue
		}
		updates = append(updates, sheetsclient.CellUpdate{
			Range:  sheetsdomain.A1Range(s.cfg.SheetName, fmt.Sprintf("%s%d", col.Letter, row)),
			Values: []interface{}{values[col.Field]},
		})
	}

	if err := s.Client.BatchUpdate(ctx, s.cfg.SpreadsheetID, updates); err != nil {
		return errors.Wrapf(err, "erro ao atualizar pipeline %s na linha %d", pipeline.ID, row)
	}

	return nil
}

func nextRow(rows map[string]int) int {
	last := sheetsdomain.HeaderRows
	for _, row := range rows {
		if row > last {
			last = row
		}
	}

	return last + 1
}

// NoopIntegrator é usado quando SHEETS_ENABLED=false
type NoopIntegrator struct{}

func (NoopIntegrator) Enabled() bool {
	return false
}

func (NoopIntegrator) PushPipeline(context.Context, *domain.Pipeline) error {
	return nil
}

func (NoopIntegrator) PushPipelines(context.Context, []*domain.Pipeline, time.Duration) (*SyncResult, error) {
	return &SyncResult{}, nil
}
