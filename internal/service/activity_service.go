package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"
	"gorm.io/datatypes"

	"github.com/maracujarp/rulebook-api/internal/dto"
	"github.com/maracujarp/rulebook-api/internal/models"
	"github.com/maracujarp/rulebook-api/internal/repository"
)

// ActivityEntry captures the details of one audit trail record.
type ActivityEntry struct {
	Action     string
	TargetType string
	TargetID   string
	Details    map[string]interface{}
	ActorID    string
}

// ActivityRecorder appends audit entries. Recording is strictly best-effort:
// a failure is logged and swallowed, and must never fail or roll back the
// mutation it accompanies.
type ActivityRecorder interface {
	Record(ctx context.Context, entry ActivityEntry)
}

// ActivityService exposes the audit trail.
type ActivityService interface {
	ActivityRecorder
	List(ctx context.Context, limit int) (dto.ActivityListResponse, error)
}

type activityService struct {
	repo   repository.ActivityLogRepository
	logger zerolog.Logger
}

// NewActivityService constructs the activity log service. repo may be nil
// in demo mode, in which case recording is a no-op and listing is empty.
func NewActivityService(repo repository.ActivityLogRepository, logger zerolog.Logger) ActivityService {
	return &activityService{
		repo:   repo,
		logger: logger.With().Str("component", "activity_service").Logger(),
	}
}

func (s *activityService) Record(ctx context.Context, entry ActivityEntry) {
	if s.repo == nil {
		return
	}
	if strings.TrimSpace(entry.Action) == "" || strings.TrimSpace(entry.TargetType) == "" {
		return
	}

	details := datatypes.JSONMap{}
	for key, value := range entry.Details {
		details[key] = value
	}

	model := models.ActivityLog{
		Action:     strings.TrimSpace(entry.Action),
		TargetType: strings.TrimSpace(entry.TargetType),
		TargetID:   entry.TargetID,
		Details:    details,
		ActorID:    entry.ActorID,
	}

	if err := s.repo.Create(ctx, &model); err != nil {
		s.logger.Warn().Err(err).Str("action", entry.Action).Msg("failed to persist activity log")
	}
}

func (s *activityService) List(ctx context.Context, limit int) (dto.ActivityListResponse, error) {
	if s.repo == nil {
		return dto.ActivityListResponse{Items: []dto.ActivityResponse{}}, nil
	}

	entries, err := s.repo.List(ctx, limit)
	if err != nil {
		return dto.ActivityListResponse{}, err
	}

	items := make([]dto.ActivityResponse, 0, len(entries))
	for _, entry := range entries {
		items = append(items, dto.NewActivityResponse(entry))
	}
	return dto.ActivityListResponse{Items: items}, nil
}
