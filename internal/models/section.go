package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Section is a named, ordered category of the rulebook owning zero or more rules.
type Section struct {
	ID          string    `gorm:"type:uuid;primaryKey" json:"id"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	Description string    `gorm:"type:text" json:"description,omitempty"`
	Icon        string    `gorm:"size:64;not null" json:"icon"`
	OrderIndex  int       `gorm:"not null;index" json:"orderIndex"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
	CreatedBy   string    `gorm:"size:128" json:"createdBy,omitempty"`
	Rules       []Rule    `gorm:"foreignKey:SectionID;constraint:OnDelete:CASCADE" json:"rules"`
}

// TableName maps Section onto the rule_sections table.
func (Section) TableName() string {
	return "rule_sections"
}

// BeforeCreate assigns an opaque identifier when none was provided.
func (s *Section) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}

// Rule is a titled, content-bearing item belonging to exactly one section.
// Content may carry HTML markup; it is sanitized on the public read path,
// not at rest.
type Rule struct {
	ID         string    `gorm:"type:uuid;primaryKey" json:"id"`
	SectionID  string    `gorm:"type:uuid;not null;index" json:"sectionId"`
	Title      string    `gorm:"size:255;not null" json:"title"`
	Content    string    `gorm:"type:text;not null" json:"content"`
	OrderIndex int       `gorm:"not null;index" json:"orderIndex"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
	CreatedBy  string    `gorm:"size:128" json:"createdBy,omitempty"`
}

// BeforeCreate assigns an opaque identifier when none was provided.
func (r *Rule) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
