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

// RuleService orchestrates the admin CRUD flows for rules, including
// reordering within a section and moving a rule between sections. Mutations
// follow the same contract as sections: one persistence unit, one activity
// entry, then a full refetch.
type RuleService interface {
	Create(ctx context.Context, actorID, sectionID string, req dto.CreateRuleRequest) (dto.RulebookResponse, error)
	Update(ctx context.Context, actorID, id string, req dto.UpdateRuleRequest) (dto.RulebookResponse, error)
	Delete(ctx context.Context, actorID, id string) (dto.RulebookResponse, error)
	Reorder(ctx context.Context, actorID, sectionID string, req dto.ReorderRequest) (dto.RulebookResponse, error)
	Move(ctx context.Context, actorID, id string, req dto.MoveRuleRequest) (dto.RulebookResponse, error)
}

type ruleService struct {
	rules     repository.RuleRepository
	sections  repository.SectionRepository
	rulebook  RulebookService
	activity  ActivityRecorder
	validator *validator.Validate
	logger    zerolog.Logger
}

// NewRuleService constructs the rule CRUD service. Repositories may be nil
// in demo mode; every mutation is then rejected with ErrStoreNotConfigured.
func NewRuleService(rules repository.RuleRepository, sections repository.SectionRepository, rulebook RulebookService, activity ActivityRecorder, validate *validator.Validate, logger zerolog.Logger) RuleService {
	return &ruleService{
		rules:     rules,
		sections:  sections,
		rulebook:  rulebook,
		activity:  activity,
		validator: validate,
		logger:    logger.With().Str("component", "rule_service").Logger(),
	}
}

func (s *ruleService) Create(ctx context.Context, actorID, sectionID string, req dto.CreateRuleRequest) (dto.RulebookResponse, error) {
	if s.rules == nil {
		return dto.RulebookResponse{}, ErrStoreNotConfigured
	}

	req.Title = strings.TrimSpace(req.Title)
	req.Content = strings.TrimSpace(req.Content)
	if err := s.validator.Struct(req); err != nil {
		return dto.RulebookResponse{}, err
	}

	if _, err := s.sections.Get(ctx, sectionID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.RulebookResponse{}, ErrNotFound
		}
		return dto.RulebookResponse{}, err
	}

	orderIndex := 0
	if req.OrderIndex != nil {
		orderIndex = *req.OrderIndex
	} else {
		max, err := s.rules.MaxOrderIndex(ctx, sectionID)
		if err != nil {
			return dto.RulebookResponse{}, err
		}
		orderIndex = max + 1
	}

	rule := models.Rule{
		SectionID:  sectionID,
		Title:      req.Title,
		Content:    req.Content,
		OrderIndex: orderIndex,
		CreatedBy:  actorID,
	}
	if err := s.rules.Create(ctx, &rule); err != nil {
		return dto.RulebookResponse{}, err
	}

	s.activity.Record(ctx, ActivityEntry{
		Action:     "Creata regola",
		TargetType: models.TargetRule,
		TargetID:   rule.ID,
		Details:    map[string]interface{}{"title": rule.Title, "sectionId": sectionID},
		ActorID:    actorID,
	})

	return s.refetch(ctx)
}

func (s *ruleService) Update(ctx context.Context, actorID, id string, req dto.UpdateRuleRequest) (dto.RulebookResponse, error) {
	if s.rules == nil {
		return dto.RulebookResponse{}, ErrStoreNotConfigured
	}

	if req.Title != nil {
		trimmed := strings.TrimSpace(*req.Title)
		req.Title = &trimmed
	}
	if req.Content != nil {
		trimmed := strings.TrimSpace(*req.Content)
		req.Content = &trimmed
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
	if req.Content != nil {
		updates["content"] = *req.Content
	}
	if req.OrderIndex != nil {
		updates["order_index"] = *req.OrderIndex
	}

	if len(updates) == 0 {
		return s.rulebook.Sections(ctx)
	}

	if err := s.rules.Update(ctx, id, updates); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.RulebookResponse{}, ErrNotFound
		}
		return dto.RulebookResponse{}, err
	}

	s.activity.Record(ctx, ActivityEntry{
		Action:     "Modificata regola",
		TargetType: models.TargetRule,
		TargetID:   id,
		Details:    details,
		ActorID:    actorID,
	})

	return s.refetch(ctx)
}

// Delete removes a rule unconditionally; nothing references rules.
func (s *ruleService) Delete(ctx context.Context, actorID, id string) (dto.RulebookResponse, error) {
	if s.rules == nil {
		return dto.RulebookResponse{}, ErrStoreNotConfigured
	}

	rule, err := s.rules.Get(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.RulebookResponse{}, ErrNotFound
		}
		return dto.RulebookResponse{}, err
	}

	if err := s.rules.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.RulebookResponse{}, ErrNotFound
		}
		return dto.RulebookResponse{}, err
	}

	s.activity.Record(ctx, ActivityEntry{
		Action:     "Eliminata regola",
		TargetType: models.TargetRule,
		TargetID:   id,
		Details:    map[string]interface{}{"title": rule.Title},
		ActorID:    actorID,
	})

	return s.refetch(ctx)
}

// Reorder moves one rule immediately before another inside the same section
// and rewrites the sibling ordinals as a dense 1..N sequence. A self-move or
// unknown id is a no-op: no write, no activity entry.
func (s *ruleService) Reorder(ctx context.Context, actorID, sectionID string, req dto.ReorderRequest) (dto.RulebookResponse, error) {
	if s.rules == nil {
		return dto.RulebookResponse{}, ErrStoreNotConfigured
	}
	if err := s.validator.Struct(req); err != nil {
		return dto.RulebookResponse{}, err
	}

	rules, err := s.rules.ListBySection(ctx, sectionID)
	if err != nil {
		return dto.RulebookResponse{}, err
	}
	ids := make([]string, 0, len(rules))
	for _, rule := range rules {
		ids = append(ids, rule.ID)
	}

	reordered, ok := reorderIDs(ids, req.MovedID, req.TargetID)
	if !ok {
		return s.rulebook.Sections(ctx)
	}

	if err := s.rules.UpdateOrder(ctx, reordered); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.RulebookResponse{}, ErrNotFound
		}
		return dto.RulebookResponse{}, err
	}

	s.activity.Record(ctx, ActivityEntry{
		Action:     "Riordinate regole",
		TargetType: models.TargetRule,
		Details:    map[string]interface{}{"sectionId": sectionID, "order": reordered},
		ActorID:    actorID,
	})

	return s.refetch(ctx)
}

// Move transfers a rule to another section. When no destination ordinal is
// given the rule keeps its current one, matching the original behaviour.
func (s *ruleService) Move(ctx context.Context, actorID, id string, req dto.MoveRuleRequest) (dto.RulebookResponse, error) {
	if s.rules == nil {
		return dto.RulebookResponse{}, ErrStoreNotConfigured
	}
	if err := s.validator.Struct(req); err != nil {
		return dto.RulebookResponse{}, err
	}

	rule, err := s.rules.Get(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.RulebookResponse{}, ErrNotFound
		}
		return dto.RulebookResponse{}, err
	}

	if _, err := s.sections.Get(ctx, req.ToSectionID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.RulebookResponse{}, ErrNotFound
		}
		return dto.RulebookResponse{}, err
	}

	if rule.SectionID == req.ToSectionID && req.OrderIndex == nil {
		return s.rulebook.Sections(ctx)
	}

	if err := s.rules.Move(ctx, id, req.ToSectionID, req.OrderIndex); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.RulebookResponse{}, ErrNotFound
		}
		return dto.RulebookResponse{}, err
	}

	details := map[string]interface{}{
		"fromSectionId": rule.SectionID,
		"toSectionId":   req.ToSectionID,
	}
	if req.OrderIndex != nil {
		details["newOrderIndex"] = *req.OrderIndex
	}
	s.activity.Record(ctx, ActivityEntry{
		Action:     "Spostata regola",
		TargetType: models.TargetRule,
		TargetID:   id,
		Details:    details,
		ActorID:    actorID,
	})

	return s.refetch(ctx)
}

func (s *ruleService) refetch(ctx context.Context) (dto.RulebookResponse, error) {
	s.rulebook.Invalidate(ctx)
	return s.rulebook.Sections(ctx)
}
