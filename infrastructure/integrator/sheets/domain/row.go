package sheetsdomain

import (
	"fmt"

	"github.com/vfg2006/sales-pipeline-api/internal/domain"
)

// BuildValues converte o pipeline nos valores de cada coluna.
// Nulos viram "" para limpar a célula, datas viram serial do Excel.
func BuildValues(p *domain.Pipeline) map[string]interface{} {
	values := map[string]interface{}{
		"id":               p.ID,
		"title":            p.Title,
		"client_name":      p.ClientName,
		"status":           string(p.Status),
		"progress_percent": p.ProgressPercent,
		"imp":              orEmpty(p.Imp),
		"ecpm":             orEmpty(p.ECPM),
		"max_gross":        orEmpty(p.MaxGross),
		"revenue_share":    orEmpty(p.RevenueShare),
		"day_gross":        orEmpty(p.DayGross),
		"day_net_rev":      orEmpty(p.DayNetRev),
		"starting_date":    "",
		"end_date":         "",
		"fiscal_year":      orEmpty(p.FiscalYear),
		"fiscal_quarter":   orEmpty(p.FiscalQuarter),
		"q_gross":          p.QGross,
		"q_net_rev":        p.QNetRev,
		"updated_at":       "",
	}

	if p.StartingDate != nil {
		values["starting_date"] = ExcelDate(*p.StartingDate)
	}
	if p.EndDate != nil {
		values["end_date"] = ExcelDate(*p.EndDate)
	}
	if !p.UpdatedAt.IsZero() {
		values["updated_at"] = ExcelSerial(p.UpdatedAt)
	}

	for i := 0; i < 3; i++ {
		grossKey, netKey := fmt.Sprintf("month%d_gross", i+1), fmt.Sprintf("month%d_net", i+1)
		values[grossKey], values[netKey] = "", ""
		if i < len(p.MonthlyForecasts) {
			values[grossKey] = p.MonthlyForecasts[i].GrossRevenue
			values[netKey] = p.MonthlyForecasts[i].NetRevenue
		}
	}

	return values
}

// BuildRow devolve a linha completa, de A até a última coluna mapeada
func BuildRow(p *domain.Pipeline) ([]interface{}, error) {
	values := BuildValues(p)

	last, err := ColumnIndex(LastColumn)
	if err != nil {
		return nil, err
	}

	row := make([]interface{}, last+1)
	for i := range row {
		row[i] = ""
	}

	for _, col := range Columns {
		index, err := ColumnIndex(col.Letter)
		if err != nil {
			return nil, err
		}
		row[index] = values[col.Field]
	}

	return row, nil
}

// Headers devolve a linha de cabeçalho na ordem das colunas
func Headers() []interface{} {
	headers := make([]interface{}, 0, len(Columns))
	for _, col := range Columns {
		headers = append(headers, col.Header)
	}

	return headers
}

func orEmpty[T any](v *T) interface{} {
	if v == nil {
		return ""
	}

	return *v
}
