package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Activity target types.
const (
	TargetSection = "section"
	TargetRule    = "rule"
	TargetBackup  = "backup"
)

// ActivityLog captures one append-only audit entry written alongside every
// mutation of the rulebook. Entries are never updated or deleted.
type ActivityLog struct {
	ID         string            `gorm:"type:uuid;primaryKey" json:"id"`
	Action     string            `gorm:"size:128;not null" json:"action"`
	TargetType string            `gorm:"size:64;not null" json:"targetType"`
	TargetID   string            `gorm:"size:64" json:"targetId,omitempty"`
	Details    datatypes.JSONMap `gorm:"type:json" json:"details"`
	ActorID    string            `gorm:"size:64" json:"actorId,omitempty"`
	CreatedAt  time.Time         `json:"createdAt"`
}

// TableName maps ActivityLog onto the activity_logs table.
func (ActivityLog) TableName() string {
	return "activity_logs"
}

// BeforeCreate assigns an opaque identifier when none was provided.
func (a *ActivityLog) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
