package dto

import (
	"time"

	"github.com/maracujarp/rulebook-api/internal/models"
)

// LoginRequest carries the admin credential pair.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse returns the session record plus a signed bearer token.
type LoginResponse struct {
	Token string           `json:"token"`
	Admin models.AdminUser `json:"admin"`
}

// PasswordChangeRequest carries the account password-change form. The new
// password must be confirmed and at least eight characters long.
type PasswordChangeRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=8"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=NewPassword"`
}

// SectionStat summarizes one section for the admin stats view.
type SectionStat struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	RuleCount int    `json:"ruleCount"`
}

// StatsResponse aggregates the counters shown on the admin dashboard.
type StatsResponse struct {
	TotalSections int64         `json:"totalSections"`
	TotalRules    int64         `json:"totalRules"`
	Sections      []SectionStat `json:"sections"`
}

// ActivityResponse serializes one audit trail entry.
type ActivityResponse struct {
	ID         string                 `json:"id"`
	Action     string                 `json:"action"`
	TargetType string                 `json:"targetType"`
	TargetID   string                 `json:"targetId,omitempty"`
	Details    map[string]interface{} `json:"details"`
	ActorID    string                 `json:"actorId,omitempty"`
	CreatedAt  time.Time              `json:"createdAt"`
}

// ActivityListResponse wraps audit trail entries, newest first.
type ActivityListResponse struct {
	Items []ActivityResponse `json:"items"`
}

// NewActivityResponse converts an activity log model into its response shape.
func NewActivityResponse(entry models.ActivityLog) ActivityResponse {
	details := map[string]interface{}(entry.Details)
	if details == nil {
		details = map[string]interface{}{}
	}
	return ActivityResponse{
		ID:         entry.ID,
		Action:     entry.Action,
		TargetType: entry.TargetType,
		TargetID:   entry.TargetID,
		Details:    details,
		ActorID:    entry.ActorID,
		CreatedAt:  entry.CreatedAt,
	}
}
