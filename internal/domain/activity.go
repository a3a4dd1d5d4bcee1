package domain

import "time"

type ActivityType string

const (
	ActivityCreated        ActivityType = "created"
	ActivityStatusChange   ActivityType = "status_change"
	ActivityActionUpdate   ActivityType = "action_update"
	ActivityForecastUpdate ActivityType = "forecast_update"
	ActivityFieldUpdate    ActivityType = "field_update"
	ActivityRecalculated   ActivityType = "recalculated"
)

// FieldChange é uma diferença detectada entre o registro antigo e o patch
type FieldChange struct {
	Field        string       `json:"field"`
	ActivityType ActivityType `json:"activity_type"`
	OldValue     string       `json:"old_value"`
	NewValue     string       `json:"new_value"`
}

type PipelineActivity struct {
	ID           int64        `json:"id"`
	PipelineID   string       `json:"pipeline_id"`
	ActivityType ActivityType `json:"activity_type"`
	Field        *string      `json:"field"`
	OldValue     *string      `json:"old_value"`
	NewValue     *string      `json:"new_value"`
	UserID       *int         `json:"user_id"`
	CreatedAt    time.Time    `json:"created_at"`
}
