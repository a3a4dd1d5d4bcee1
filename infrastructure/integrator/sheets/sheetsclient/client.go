package sheetsclient

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/vfg2006/sales-pipeline-api/internal/config"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

const valueInputOption = "USER_ENTERED"

// CellUpdate é um intervalo A1 e os valores de uma linha
type CellUpdate struct {
	Range  string
	Values []interface{}
}

type Client interface {
	ReadColumn(ctx context.Context, spreadsheetID, a1Range string) ([]string, error)
	BatchUpdate(ctx context.Context, spreadsheetID string, updates []CellUpdate) error
	AppendRow(ctx context.Context, spreadsheetID, a1Range string, row []interface{}) error
}

type SheetsClient struct {
	service *sheets.Service
}

// NewClient autentica com a conta de serviço configurada (JSON inline ou arquivo)
func NewClient(ctx context.Context, cfg *config.Config) (Client, error) {
	service, err := sheets.NewService(ctx, ClientOptions(cfg.Sheets)...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao criar cliente do Google Sheets")
	}

	return &SheetsClient{service: service}, nil
}

func ClientOptions(cfg config.Sheets) []option.ClientOption {
	opts := []option.ClientOption{option.WithScopes(sheets.SpreadsheetsScope)}

	creds := strings.TrimSpace(cfg.CredentialsJSON)
	if creds != "" {
		return append(opts, option.WithCredentialsJSON([]byte(creds)))
	}

	if cfg.CredentialsFile != "" {
		return append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}

	return opts
}

func (c *SheetsClient) ReadColumn(ctx context.Context, spreadsheetID, a1Range string) ([]string, error) {
	resp, err := c.service.Spreadsheets.Values.Get(spreadsheetID, a1Range).
		MajorDimension("COLUMNS").
		Context(ctx).
		Do()
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao ler intervalo %s", a1Range)
	}

	if len(resp.Values) == 0 {
		return []string{}, nil
	}

	column := make([]string, 0, len(resp.Values[0]))
	for _, v := range resp.Values[0] {
		column = append(column, strings.TrimSpace(fmt.Sprint(v)))
	}

	return column, nil
}

func (c *SheetsClient) BatchUpdate(ctx context.Context, spreadsheetID string, updates []CellUpdate) error {
	if len(updates) == 0 {
		return nil
	}

	data := make([]*sheets.ValueRange, 0, len(updates))
	for _, u := range updates {
		data = append(data, &sheets.ValueRange{
			Range:  u.Range,
			Values: [][]interface{}{u.Values},
		})
	}

	_, err := c.service.Spreadsheets.Values.BatchUpdate(spreadsheetID, &sheets.BatchUpdateValuesRequest{
		ValueInputOption: valueInputOption,
		Data:             data,
	}).Context(ctx).Do()
	if err != nil {
		return errors.Wrap(err, "erro ao atualizar células")
	}

	return nil
}

func (c *SheetsClient) AppendRow(ctx context.Context, spreadsheetID, a1Range string, row []interface{}) error {
	_, err := c.service.Spreadsheets.Values.Append(spreadsheetID, a1Range, &sheets.ValueRange{
		Values: [][]interface{}{row},
	}).
		ValueInputOption(valueInputOption).
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return errors.Wrapf(err, "erro ao adicionar linha em %s", a1Range)
	}

	return nil
}
