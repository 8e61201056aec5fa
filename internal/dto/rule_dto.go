package dto

// CreateRuleRequest defines the payload for creating a rule inside a section.
type CreateRuleRequest struct {
	Title      string `json:"title" validate:"required,min=3,max=255"`
	Content    string `json:"content" validate:"required,min=10"`
	OrderIndex *int   `json:"orderIndex" validate:"omitempty,min=1"`
}

// UpdateRuleRequest defines the payload for a partial rule update.
type UpdateRuleRequest struct {
	Title      *string `json:"title" validate:"omitempty,min=3,max=255"`
	Content    *string `json:"content" validate:"omitempty,min=10"`
	OrderIndex *int    `json:"orderIndex" validate:"omitempty,min=1"`
}

// MoveRuleRequest transfers a rule to another section, optionally placing it
// at a specific ordinal position in the destination.
type MoveRuleRequest struct {
	ToSectionID string `json:"toSectionId" validate:"required"`
	OrderIndex  *int   `json:"orderIndex" validate:"omitempty,min=1"`
}
