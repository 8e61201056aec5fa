package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/maracujarp/rulebook-api/internal/models"
)

// RuleRepository exposes persistence helpers for individual rules.
type RuleRepository interface {
	Get(ctx context.Context, id string) (models.Rule, error)
	ListBySection(ctx context.Context, sectionID string) ([]models.Rule, error)
	Create(ctx context.Context, rule *models.Rule) error
	Update(ctx context.Context, id string, updates map[string]interface{}) error
	Delete(ctx context.Context, id string) error
	UpdateOrder(ctx context.Context, orderedIDs []string) error
	Move(ctx context.Context, id, toSectionID string, orderIndex *int) error
	Count(ctx context.Context) (int64, error)
	MaxOrderIndex(ctx context.Context, sectionID string) (int, error)
}

type ruleRepository struct {
	db *gorm.DB
}

// NewRuleRepository constructs the repository implementation.
func NewRuleRepository(db *gorm.DB) RuleRepository {
	return &ruleRepository{db: db}
}

func (r *ruleRepository) Get(ctx context.Context, id string) (models.Rule, error) {
	var rule models.Rule
	err := r.db.WithContext(ctx).First(&rule, "id = ?", id).Error
	return rule, err
}

func (r *ruleRepository) ListBySection(ctx context.Context, sectionID string) ([]models.Rule, error) {
	var rules []models.Rule
	err := r.db.WithContext(ctx).
		Where("section_id = ?", sectionID).
		Order("order_index ASC").
		Find(&rules).Error
	if err != nil {
		return nil, err
	}
	return rules, nil
}

func (r *ruleRepository) Create(ctx context.Context, rule *models.Rule) error {
	return r.db.WithContext(ctx).Create(rule).Error
}

func (r *ruleRepository) Update(ctx context.Context, id string, updates map[string]interface{}) error {
	result := r.db.WithContext(ctx).
		Model(&models.Rule{}).
		Where("id = ?", id).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *ruleRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&models.Rule{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// UpdateOrder writes a dense 1..N ordinal sequence over the given rule ids
// inside a single transaction.
func (r *ruleRepository) UpdateOrder(ctx context.Context, orderedIDs []string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for index, id := range orderedIDs {
			result := tx.Model(&models.Rule{}).
				Where("id = ?", id).
				Update("order_index", index+1)
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return gorm.ErrRecordNotFound
			}
		}
		return nil
	})
}

// Move transfers a rule to another section, optionally assigning its ordinal
// position in the destination.
func (r *ruleRepository) Move(ctx context.Context, id, toSectionID string, orderIndex *int) error {
	updates := map[string]interface{}{"section_id": toSectionID}
	if orderIndex != nil {
		updates["order_index"] = *orderIndex
	}
	return r.Update(ctx, id, updates)
}

func (r *ruleRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&models.Rule{}).Count(&total).Error
	return total, err
}

func (r *ruleRepository) MaxOrderIndex(ctx context.Context, sectionID string) (int, error) {
	var max *int
	err := r.db.WithContext(ctx).
		Model(&models.Rule{}).
		Where("section_id = ?", sectionID).
		Select("MAX(order_index)").
		Scan(&max).Error
	if err != nil {
		return 0, err
	}
	if max == nil {
		return 0, nil
	}
	return *max, nil
}
