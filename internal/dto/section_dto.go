package dto

import (
	"time"

	"github.com/maracujarp/rulebook-api/internal/models"
)

// CreateSectionRequest defines the payload for creating a section.
type CreateSectionRequest struct {
	Title       string `json:"title" validate:"required,min=3,max=255"`
	Description string `json:"description" validate:"max=2000"`
	Icon        string `json:"icon" validate:"required"`
	OrderIndex  *int   `json:"orderIndex" validate:"omitempty,min=1"`
}

// UpdateSectionRequest defines the payload for a partial section update.
type UpdateSectionRequest struct {
	Title       *string `json:"title" validate:"omitempty,min=3,max=255"`
	Description *string `json:"description" validate:"omitempty,max=2000"`
	Icon        *string `json:"icon"`
	OrderIndex  *int    `json:"orderIndex" validate:"omitempty,min=1"`
}

// ReorderRequest moves one item immediately before a target sibling.
type ReorderRequest struct {
	MovedID  string `json:"movedId" validate:"required"`
	TargetID string `json:"targetId" validate:"required"`
}

// RuleResponse represents a rule payload returned to the frontend. During a
// search, Title and Content carry inline <mark> highlight spans.
type RuleResponse struct {
	ID         string    `json:"id"`
	SectionID  string    `json:"sectionId"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	OrderIndex int       `json:"orderIndex"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
	CreatedBy  string    `json:"createdBy,omitempty"`
}

// SectionResponse represents a section with its ordered rules.
type SectionResponse struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description,omitempty"`
	Icon        string         `json:"icon"`
	OrderIndex  int            `json:"orderIndex"`
	Rules       []RuleResponse `json:"rules"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
	CreatedBy   string         `json:"createdBy,omitempty"`
}

// RulebookResponse is the full ordered section tree.
type RulebookResponse struct {
	Sections []SectionResponse `json:"sections"`
	CacheHit bool              `json:"cacheHit,omitempty"`
}

// SearchResponse is the filtered projection of the tree for a query.
type SearchResponse struct {
	Query    string            `json:"query"`
	Sections []SectionResponse `json:"sections"`
	Matches  int               `json:"matches"`
}

// NewRuleResponse converts a rule model into its response shape.
func NewRuleResponse(rule models.Rule) RuleResponse {
	return RuleResponse{
		ID:         rule.ID,
		SectionID:  rule.SectionID,
		Title:      rule.Title,
		Content:    rule.Content,
		OrderIndex: rule.OrderIndex,
		CreatedAt:  rule.CreatedAt,
		UpdatedAt:  rule.UpdatedAt,
		CreatedBy:  rule.CreatedBy,
	}
}

// NewSectionResponse converts a section model into its response shape.
func NewSectionResponse(section models.Section) SectionResponse {
	rules := make([]RuleResponse, 0, len(section.Rules))
	for _, rule := range section.Rules {
		rules = append(rules, NewRuleResponse(rule))
	}
	return SectionResponse{
		ID:          section.ID,
		Title:       section.Title,
		Description: section.Description,
		Icon:        section.Icon,
		OrderIndex:  section.OrderIndex,
		Rules:       rules,
		CreatedAt:   section.CreatedAt,
		UpdatedAt:   section.UpdatedAt,
		CreatedBy:   section.CreatedBy,
	}
}

// NewRulebookResponse converts a section tree into the rulebook payload.
func NewRulebookResponse(sections []models.Section) RulebookResponse {
	responses := make([]SectionResponse, 0, len(sections))
	for _, section := range sections {
		responses = append(responses, NewSectionResponse(section))
	}
	return RulebookResponse{Sections: responses}
}
