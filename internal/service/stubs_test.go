package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/maracujarp/rulebook-api/internal/dto"
	"github.com/maracujarp/rulebook-api/internal/models"
)

func testLogger() zerolog.Logger {
	return zerolog.Nop()
}

func newTestValidator() *validator.Validate {
	return validator.New(validator.WithRequiredStructEnabled())
}

// stubSectionRepo is an in-memory SectionRepository that records every write
// it receives.
type stubSectionRepo struct {
	sections []models.Section
	listErr  error

	created     []models.Section
	updated     map[string]map[string]interface{}
	deleted     []string
	orderWrites [][]string
	replaced    [][]models.Section
	maxOrder    int
}

func (r *stubSectionRepo) ListWithRules(ctx context.Context) ([]models.Section, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	return r.sections, nil
}

func (r *stubSectionRepo) Get(ctx context.Context, id string) (models.Section, error) {
	for _, section := range r.sections {
		if section.ID == id {
			return section, nil
		}
	}
	return models.Section{}, gorm.ErrRecordNotFound
}

func (r *stubSectionRepo) Create(ctx context.Context, section *models.Section) error {
	if section.ID == "" {
		section.ID = "generated-section-id"
	}
	r.created = append(r.created, *section)
	return nil
}

func (r *stubSectionRepo) Update(ctx context.Context, id string, updates map[string]interface{}) error {
	if _, err := r.Get(ctx, id); err != nil {
		return err
	}
	if r.updated == nil {
		r.updated = map[string]map[string]interface{}{}
	}
	r.updated[id] = updates
	return nil
}

func (r *stubSectionRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.Get(ctx, id); err != nil {
		return err
	}
	r.deleted = append(r.deleted, id)
	return nil
}

func (r *stubSectionRepo) UpdateOrder(ctx context.Context, orderedIDs []string) error {
	r.orderWrites = append(r.orderWrites, orderedIDs)
	return nil
}

func (r *stubSectionRepo) ReplaceAll(ctx context.Context, sections []models.Section) error {
	r.replaced = append(r.replaced, sections)
	return nil
}

func (r *stubSectionRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(r.sections)), nil
}

func (r *stubSectionRepo) MaxOrderIndex(ctx context.Context) (int, error) {
	return r.maxOrder, nil
}

type moveCall struct {
	id          string
	toSectionID string
	orderIndex  *int
}

// stubRuleRepo is an in-memory RuleRepository that records every write it
// receives.
type stubRuleRepo struct {
	rules []models.Rule

	created     []models.Rule
	updated     map[string]map[string]interface{}
	deleted     []string
	orderWrites [][]string
	moves       []moveCall
	maxOrder    int
}

func (r *stubRuleRepo) Get(ctx context.Context, id string) (models.Rule, error) {
	for _, rule := range r.rules {
		if rule.ID == id {
			return rule, nil
		}
	}
	return models.Rule{}, gorm.ErrRecordNotFound
}

func (r *stubRuleRepo) ListBySection(ctx context.Context, sectionID string) ([]models.Rule, error) {
	matched := make([]models.Rule, 0, len(r.rules))
	for _, rule := range r.rules {
		if rule.SectionID == sectionID {
			matched = append(matched, rule)
		}
	}
	return matched, nil
}

func (r *stubRuleRepo) Create(ctx context.Context, rule *models.Rule) error {
	if rule.ID == "" {
		rule.ID = "generated-rule-id"
	}
	r.created = append(r.created, *rule)
	return nil
}

func (r *stubRuleRepo) Update(ctx context.Context, id string, updates map[string]interface{}) error {
	if _, err := r.Get(ctx, id); err != nil {
		return err
	}
	if r.updated == nil {
		r.updated = map[string]map[string]interface{}{}
	}
	r.updated[id] = updates
	return nil
}

func (r *stubRuleRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.Get(ctx, id); err != nil {
		return err
	}
	r.deleted = append(r.deleted, id)
	return nil
}

func (r *stubRuleRepo) UpdateOrder(ctx context.Context, orderedIDs []string) error {
	r.orderWrites = append(r.orderWrites, orderedIDs)
	return nil
}

func (r *stubRuleRepo) Move(ctx context.Context, id, toSectionID string, orderIndex *int) error {
	r.moves = append(r.moves, moveCall{id: id, toSectionID: toSectionID, orderIndex: orderIndex})
	return nil
}

func (r *stubRuleRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(r.rules)), nil
}

func (r *stubRuleRepo) MaxOrderIndex(ctx context.Context, sectionID string) (int, error) {
	return r.maxOrder, nil
}

// recorderSpy captures every audit entry handed to it.
type recorderSpy struct {
	entries []ActivityEntry
}

func (r *recorderSpy) Record(ctx context.Context, entry ActivityEntry) {
	r.entries = append(r.entries, entry)
}

// stubRulebook serves a fixed tree and counts invalidations so mutation
// services can assert the invalidate-then-refetch contract.
type stubRulebook struct {
	tree         []models.Section
	invalidated  int
	sectionReads int
}

func (s *stubRulebook) Sections(ctx context.Context) (dto.RulebookResponse, error) {
	s.sectionReads++
	return dto.NewRulebookResponse(s.tree), nil
}

func (s *stubRulebook) Search(ctx context.Context, query string) (dto.SearchResponse, error) {
	return dto.SearchResponse{Query: query}, nil
}

func (s *stubRulebook) Tree(ctx context.Context) []models.Section {
	return s.tree
}

func (s *stubRulebook) Invalidate(ctx context.Context) {
	s.invalidated++
}
