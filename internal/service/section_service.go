package service

import (
	"context"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/maracujarp/rulebook-api/internal/dto"
	"github.com/maracujarp/rulebook-api/internal/models"
	"github.com/maracujarp/rulebook-api/internal/repository"
)

// SectionService orchestrates the admin CRUD flows for sections. Every
// mutation performs exactly one persistence unit, appends an activity log
// entry, then re-reads the full tree so the response always reflects server
// truth. There is no optimistic local patching.
type SectionService interface {
	Create(ctx context.Context, actorID string, req dto.CreateSectionRequest) (dto.RulebookResponse, error)
	Update(ctx context.Context, actorID, id string, req dto.UpdateSectionRequest) (dto.RulebookResponse, error)
	Delete(ctx context.Context, actorID, id string) (dto.RulebookResponse, error)
	Reorder(ctx context.Context, actorID string, req dto.ReorderRequest) (dto.RulebookResponse, error)
}

type sectionService struct {
	repo      repository.SectionRepository
	rulebook  RulebookService
	activity  ActivityRecorder
	validator *validator.Validate
	logger    zerolog.Logger
}

// NewSectionService constructs the section CRUD service. repo may be nil in
// demo mode; every mutation is then rejected with ErrStoreNotConfigured.
func NewSectionService(repo repository.SectionRepository, rulebook RulebookService, activity ActivityRecorder, validate *validator.Validate, logger zerolog.Logger) SectionService {
	return &sectionService{
		repo:      repo,
		rulebook:  rulebook,
		activity:  activity,
		validator: validate,
		logger:    logger.With().Str("component", "section_service").Logger(),
	}
}

func (s *sectionService) Create(ctx context.Context, actorID string, req dto.CreateSectionRequest) (dto.RulebookResponse, error) {
	if s.repo == nil {
		return dto.RulebookResponse{}, ErrStoreNotConfigured
	}

	req.Title = strings.TrimSpace(req.Title)
	req.Description = strings.TrimSpace(req.Description)
	if err := s.validator.Struct(req); err != nil {
		return dto.RulebookResponse{}, err
	}
	if !models.ValidIcon(req.Icon) {
		return dto.RulebookResponse{}, ErrInvalidIcon
	}

	orderIndex := 0
	if req.OrderIndex != nil {
		orderIndex = *req.OrderIndex
	} else {
		max, err := s.repo.MaxOrderIndex(ctx)
		if err != nil {
			return dto.RulebookResponse{}, err
		}
		orderIndex = max + 1
	}

	section := models.Section{
		Title:       req.Title,
		Description: req.Description,
		Icon:        req.Icon,
		OrderIndex:  orderIndex,
		CreatedBy:   actorID,
	}
	if err := s.repo.Create(ctx, &section); err != nil {
		return dto.RulebookResponse{}, err
	}

	s.activity.Record(ctx, ActivityEntry{
		Action:     "Creata sezione",
		TargetType: models.TargetSection,
		TargetID:   section.ID,
		Details:    map[string]interface{}{"title": section.Title},
		ActorID:    actorID,
	})

	return s.refetch(ctx)
}

func (s *sectionService) Update(ctx context.Context, actorID, id string, req dto.UpdateSectionRequest) (dto.RulebookResponse, error) {
	if s.repo == nil {
		return dto.RulebookResponse{}, ErrStoreNotConfigured
	}

	if req.Title != nil {
		trimmed := strings.TrimSpace(*req.Title)
		req.Title = &trimmed
	}
	if req.Description != nil {
		trimmed := strings.TrimSpace(*req.Description)
		req.Description = &trimmed
	}
	if err := s.validator.Struct(req); err != nil {
		return dto.RulebookResponse{}, err
	}

	updates := map[string]interface{}{}
	details := map[string]interface{}{}
	if req.Title != nil {
		updates["title"] = *req.Title
		details["title"] = *req.Title
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Icon != nil {
		if !models.ValidIcon(*req.Icon) {
			return dto.RulebookResponse{}, ErrInvalidIcon
		}
		updates["icon"] = *req.Icon
		details["icon"] = *req.Icon
	}
	if req.OrderIndex != nil {
		updates["order_index"] = *req.OrderIndex
	}

	if len(updates) == 0 {
		return s.rulebook.Sections(ctx)
	}

	if err := s.repo.Update(ctx, id, updates); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.RulebookResponse{}, ErrNotFound
		}
		return dto.RulebookResponse{}, err
	}

	s.activity.Record(ctx, ActivityEntry{
		Action:     "Modificata sezione",
		TargetType: models.TargetSection,
		TargetID:   id,
		Details:    details,
		ActorID:    actorID,
	})

	return s.refetch(ctx)
}

// Delete removes an empty section. A section that still owns rules is
// rejected before any persistence call is attempted.
func (s *sectionService) Delete(ctx context.Context, actorID, id string) (dto.RulebookResponse, error) {
	if s.repo == nil {
		return dto.RulebookResponse{}, ErrStoreNotConfigured
	}

	section, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.RulebookResponse{}, ErrNotFound
		}
		return dto.RulebookResponse{}, err
	}
	if len(section.Rules) > 0 {
		return dto.RulebookResponse{}, ErrSectionNotEmpty
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.RulebookResponse{}, ErrNotFound
		}
		return dto.RulebookResponse{}, err
	}

	s.activity.Record(ctx, ActivityEntry{
		Action:     "Eliminata sezione",
		TargetType: models.TargetSection,
		TargetID:   id,
		Details:    map[string]interface{}{"title": section.Title},
		ActorID:    actorID,
	})

	return s.refetch(ctx)
}

// Reorder moves one section immediately before another and rewrites the
// sibling ordinals as a dense 1..N sequence. A self-move or unknown id is a
// no-op: no write, no activity entry.
func (s *sectionService) Reorder(ctx context.Context, actorID string, req dto.ReorderRequest) (dto.RulebookResponse, error) {
	if s.repo == nil {
		return dto.RulebookResponse{}, ErrStoreNotConfigured
	}
	if err := s.validator.Struct(req); err != nil {
		return dto.RulebookResponse{}, err
	}

	sections, err := s.repo.ListWithRules(ctx)
	if err != nil {
		return dto.RulebookResponse{}, err
	}
	ids := make([]string, 0, len(sections))
	for _, section := range sections {
		ids = append(ids, section.ID)
	}

	reordered, ok := reorderIDs(ids, req.MovedID, req.TargetID)
	if !ok {
		return s.rulebook.Sections(ctx)
	}

	if err := s.repo.UpdateOrder(ctx, reordered); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.RulebookResponse{}, ErrNotFound
		}
		return dto.RulebookResponse{}, err
	}

	s.activity.Record(ctx, ActivityEntry{
		Action:     "Riordinate sezioni",
		TargetType: models.TargetSection,
		Details:    map[string]interface{}{"order": reordered},
		ActorID:    actorID,
	})

	return s.refetch(ctx)
}

func (s *sectionService) refetch(ctx context.Context) (dto.RulebookResponse, error) {
	s.rulebook.Invalidate(ctx)
	return s.rulebook.Sections(ctx)
}
