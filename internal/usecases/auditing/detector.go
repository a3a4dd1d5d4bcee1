package auditing

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/vfg2006/sales-pipeline-api/internal/domain"
	"github.com/vfg2006/sales-pipeline-api/pkg/utils"
)

var actionFields = map[string]bool{
	"next_action":      true,
	"next_action_date": true,
	"action_memo":      true,
}

var forecastFields = map[string]bool{
	"max_gross":     true,
	"imp":           true,
	"ecpm":          true,
	"revenue_share": true,
}

// Detector compara o registro antigo com os campos novos e gera a trilha de auditoria
type Detector struct {
	// StatusLoggedByTrigger descarta mudanças de status, já gravadas pela trigger do banco
	StatusLoggedByTrigger bool
}

func NewDetector(statusLoggedByTrigger bool) *Detector {
	return &Detector{StatusLoggedByTrigger: statusLoggedByTrigger}
}

// DetectChanges emite uma entrada para cada chave de newFields cujo valor
// normalizado difere do registro antigo. A saída é ordenada pelo nome do campo.
func (d *Detector) DetectChanges(old map[string]any, newFields map[string]any) []domain.FieldChange {
	changes := make([]domain.FieldChange, 0)

	for field, newValue := range newFields {
		activityType := Classify(field)
		if activityType == domain.ActivityStatusChange && d.StatusLoggedByTrigger {
			continue
		}

		oldNormalized := Normalize(old[field])
		newNormalized := Normalize(newValue)
		if oldNormalized == newNormalized {
			continue
		}

		changes = append(changes, domain.FieldChange{
			Field:        field,
			ActivityType: activityType,
			OldValue:     oldNormalized,
			NewValue:     newNormalized,
		})
	}

	sort.Slice(changes, func(i, j int) bool {
		return changes[i].Field < changes[j].Field
	})

	return changes
}

// Classify define o tipo de atividade pelo nome do campo
func Classify(field string) domain.ActivityType {
	switch {
	case field == "status":
		return domain.ActivityStatusChange
	case actionFields[field]:
		return domain.ActivityActionUpdate
	case forecastFields[field]:
		return domain.ActivityForecastUpdate
	default:
		return domain.ActivityFieldUpdate
	}
}

// Normalize converte o valor para a forma textual usada na comparação.
// Nulos viram "", datas viram YYYY-MM-DD e números usam a menor representação.
func Normalize(value any) string {
	if value == nil {
		return ""
	}

	rv := reflect.ValueOf(value)
	if rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return ""
		}
		return Normalize(rv.Elem().Interface())
	}

	switch v := value.(type) {
	case string:
		return strings.TrimSpace(v)
	case domain.PipelineStatus:
		return string(v.Normalize())
	case time.Time:
		if v.IsZero() {
			return ""
		}
		return utils.FormatDate(&v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case int, int32, int64:
		return fmt.Sprintf("%d", v)
	case bool:
		return strconv.FormatBool(v)
	default:
		return strings.TrimSpace(fmt.Sprint(v))
	}
}

// Activities converte as mudanças em linhas da tabela de atividades
func Activities(pipelineID string, userID *int, changes []domain.FieldChange) []*domain.PipelineActivity {
	activities := make([]*domain.PipelineActivity, 0, len(changes))
	for _, c := range changes {
		field, oldValue, newValue := c.Field, c.OldValue, c.NewValue
		activities = append(activities, &domain.PipelineActivity{
			PipelineID:   pipelineID,
			ActivityType: c.ActivityType,
			Field:        &field,
			OldValue:     &oldValue,
			NewValue:     &newValue,
			UserID:       userID,
		})
	}

	return activities
}
