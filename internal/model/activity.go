package model

import (
	"time"

	"gorm.io/datatypes"
)

// Activity is an append-only interaction event between a user and a
// material. Rows are created once by ingest and never mutated; deleting a
// user or material leaves its activities in place (joined queries simply
// stop matching them).
// swagger:model Activity
type Activity struct {
	ID         uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID     uint           `gorm:"not null;index:idx_activity_user_action" json:"user_id"`
	MaterialID uint           `gorm:"not null;index:idx_activity_material_timestamp" json:"material_id"`
	Action     string         `gorm:"size:50;index:idx_activity_user_action" json:"action"`
	Timestamp  time.Time      `gorm:"index:idx_activity_material_timestamp" json:"timestamp"`
	Duration   *float64       `json:"duration"`
	Score      *float64       `json:"score"`
	Meta       datatypes.JSON `gorm:"type:json" json:"meta,omitempty"`
}

func (Activity) TableName() string {
	return "activities"
}

// ActionComplete is the one action label the aggregation rules key on;
// every other label is an opaque string.
const ActionComplete = "complete"
