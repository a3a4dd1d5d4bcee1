package sheetsdomain

import (
	"fmt"
	"strings"
)

const (
	IDColumn   = "A"
	LastColumn = "X"
	HeaderRows = 1
)

// Column associa um campo do pipeline a uma coluna fixa da planilha
type Column struct {
	Letter string
	Field  string
	Header string
}

// Columns é o layout da aba de pipelines. A coluna A sempre guarda o ID.
var Columns = []Column{
	{"A", "id", "ID"},
	{"B", "title", "Título"},
	{"C", "client_name", "Cliente"},
	{"D", "status", "Status"},
	{"E", "progress_percent", "Progresso %"},
	{"F", "imp", "Impressões"},
	{"G", "ecpm", "eCPM"},
	{"H", "max_gross", "Max Gross"},
	{"I", "revenue_share", "Revenue Share %"},
	{"J", "day_gross", "Day Gross"},
	{"K", "day_net_rev", "Day Net Rev"},
	{"L", "starting_date", "Início"},
	{"M", "end_date", "Término"},
	{"N", "fiscal_year", "Ano Fiscal"},
	{"O", "fiscal_quarter", "Trimestre"},
	{"P", "month1_gross", "Mês 1 Gross"},
	{"Q", "month1_net", "Mês 1 Net"},
	{"R", "month2_gross", "Mês 2 Gross"},
	{"S", "month2_net", "Mês 2 Net"},
	{"T", "month3_gross", "Mês 3 Gross"},
	{"U", "month3_net", "Mês 3 Net"},
	{"V", "q_gross", "Q Gross"},
	{"W", "q_net_rev", "Q Net Rev"},
	{"X", "updated_at", "Atualizado em"},
}

// ColumnIndex converte a letra da coluna no índice base zero ("A" = 0, "AA" = 26)
func ColumnIndex(letter string) (int, error) {
	letter = strings.ToUpper(strings.TrimSpace(letter))
	if letter == "" {
		return 0, fmt.Errorf("coluna vazia")
	}

	index := 0
	for _, r := range letter {
		if r < 'A' || r > 'Z' {
			return 0, fmt.Errorf("coluna inválida: %q", letter)
		}
		index = index*26 + int(r-'A'+1)
	}

	return index - 1, nil
}

// A1Range monta uma referência A1 com o nome da aba entre aspas
func A1Range(sheetName, ref string) string {
	return fmt.Sprintf("'%s'!%s", strings.ReplaceAll(sheetName, "'", "''"), ref)
}
