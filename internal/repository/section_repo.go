package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/maracujarp/rulebook-api/internal/models"
)

// SectionRepository exposes persistence helpers for rule sections.
type SectionRepository interface {
	ListWithRules(ctx context.Context) ([]models.Section, error)
	Get(ctx context.Context, id string) (models.Section, error)
	Create(ctx context.Context, section *models.Section) error
	Update(ctx context.Context, id string, updates map[string]interface{}) error
	Delete(ctx context.Context, id string) error
	UpdateOrder(ctx context.Context, orderedIDs []string) error
	ReplaceAll(ctx context.Context, sections []models.Section) error
	Count(ctx context.Context) (int64, error)
	MaxOrderIndex(ctx context.Context) (int, error)
}

type sectionRepository struct {
	db *gorm.DB
}

// NewSectionRepository constructs the repository implementation.
func NewSectionRepository(db *gorm.DB) SectionRepository {
	return &sectionRepository{db: db}
}

func (r *sectionRepository) ListWithRules(ctx context.Context) ([]models.Section, error) {
	var sections []models.Section
	err := r.db.WithContext(ctx).
		Preload("Rules", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_index ASC")
		}).
		Order("order_index ASC").
		Find(&sections).Error
	if err != nil {
		return nil, err
	}
	return sections, nil
}

func (r *sectionRepository) Get(ctx context.Context, id string) (models.Section, error) {
	var section models.Section
	err := r.db.WithContext(ctx).
		Preload("Rules", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_index ASC")
		}).
		First(&section, "id = ?", id).Error
	return section, err
}

func (r *sectionRepository) Create(ctx context.Context, section *models.Section) error {
	return r.db.WithContext(ctx).Create(section).Error
}

func (r *sectionRepository) Update(ctx context.Context, id string, updates map[string]interface{}) error {
	result := r.db.WithContext(ctx).
		Model(&models.Section{}).
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

func (r *sectionRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&models.Section{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// UpdateOrder writes a dense 1..N ordinal sequence over the given ids inside
// a single transaction, so a failing row never leaves siblings half
// reordered.
func (r *sectionRepository) UpdateOrder(ctx context.Context, orderedIDs []string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for index, id := range orderedIDs {
			result := tx.Model(&models.Section{}).
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

// ReplaceAll swaps the entire section tree for the provided one. Used by
// backup restore.
func (r *sectionRepository) ReplaceAll(ctx context.Context, sections []models.Section) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.Rule{}).Error; err != nil {
			return err
		}
		if err := tx.Where("1 = 1").Delete(&models.Section{}).Error; err != nil {
			return err
		}
		for i := range sections {
			if err := tx.Create(&sections[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *sectionRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&models.Section{}).Count(&total).Error
	return total, err
}

func (r *sectionRepository) MaxOrderIndex(ctx context.Context) (int, error) {
	var max *int
	err := r.db.WithContext(ctx).
		Model(&models.Section{}).
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
