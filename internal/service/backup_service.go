package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/rs/zerolog"
	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/maracujarp/rulebook-api/internal/dto"
	"github.com/maracujarp/rulebook-api/internal/models"
	"github.com/maracujarp/rulebook-api/internal/repository"
)

// backupVersion tags exported documents; import accepts the same shape.
const backupVersion = "1.0"

const backupSchemaJSON = `{
	"type": "object",
	"required": ["sections"],
	"properties": {
		"sections": {
			"type": "array",
			"items": {
				"type": "object",
				"required": ["title"],
				"properties": {
					"title": {"type": "string"},
					"rules": {"type": "array"}
				}
			}
		}
	}
}`

var backupSchema = jsonschema.MustCompileString("backup.schema.json", backupSchemaJSON)

// BackupService exports the full tree as a JSON document and restores a
// previously exported one.
type BackupService interface {
	Export(ctx context.Context) (dto.BackupDocument, error)
	Import(ctx context.Context, actorID string, payload []byte) (dto.BackupImportResult, error)
}

type backupService struct {
	sections repository.SectionRepository
	rulebook RulebookService
	activity ActivityRecorder
	logger   zerolog.Logger
}

// NewBackupService constructs the backup service. Export works in demo mode
// (it snapshots the placeholder tree); import requires a backing store.
func NewBackupService(sections repository.SectionRepository, rulebook RulebookService, activity ActivityRecorder, logger zerolog.Logger) BackupService {
	return &backupService{
		sections: sections,
		rulebook: rulebook,
		activity: activity,
		logger:   logger.With().Str("component", "backup_service").Logger(),
	}
}

func (s *backupService) Export(ctx context.Context) (dto.BackupDocument, error) {
	tree := s.rulebook.Tree(ctx)

	sections := make([]dto.SectionResponse, 0, len(tree))
	totalRules := 0
	for _, section := range tree {
		totalRules += len(section.Rules)
		sections = append(sections, dto.NewSectionResponse(section))
	}

	return dto.BackupDocument{
		Timestamp: time.Now().UTC(),
		Version:   backupVersion,
		Sections:  sections,
		Metadata: dto.BackupMetadata{
			TotalSections: len(sections),
			TotalRules:    totalRules,
		},
	}, nil
}

// Import validates the uploaded document against the backup schema and
// replaces the stored tree with its sections. Any document missing the
// top-level sections list is rejected before anything is touched.
func (s *backupService) Import(ctx context.Context, actorID string, payload []byte) (dto.BackupImportResult, error) {
	if s.sections == nil {
		return dto.BackupImportResult{}, ErrStoreNotConfigured
	}

	detected := mimetype.Detect(payload)
	if !detected.Is("application/json") && !detected.Is("text/plain") {
		return dto.BackupImportResult{}, fmt.Errorf("%w: unexpected content type %s", ErrInvalidBackup, detected.String())
	}

	var raw interface{}
	decoder := json.NewDecoder(bytes.NewReader(payload))
	decoder.UseNumber()
	if err := decoder.Decode(&raw); err != nil {
		return dto.BackupImportResult{}, fmt.Errorf("%w: %v", ErrInvalidBackup, err)
	}
	if err := backupSchema.Validate(raw); err != nil {
		return dto.BackupImportResult{}, fmt.Errorf("%w: %v", ErrInvalidBackup, err)
	}

	var doc dto.BackupDocument
	if err := json.Unmarshal(payload, &doc); err != nil {
		return dto.BackupImportResult{}, fmt.Errorf("%w: %v", ErrInvalidBackup, err)
	}

	sections := make([]models.Section, 0, len(doc.Sections))
	totalRules := 0
	for i, section := range doc.Sections {
		orderIndex := section.OrderIndex
		if orderIndex == 0 {
			orderIndex = i + 1
		}
		model := models.Section{
			ID:          section.ID,
			Title:       section.Title,
			Description: section.Description,
			Icon:        section.Icon,
			OrderIndex:  orderIndex,
			CreatedBy:   section.CreatedBy,
		}
		for j, rule := range section.Rules {
			ruleOrder := rule.OrderIndex
			if ruleOrder == 0 {
				ruleOrder = j + 1
			}
			model.Rules = append(model.Rules, models.Rule{
				ID:         rule.ID,
				SectionID:  section.ID,
				Title:      rule.Title,
				Content:    rule.Content,
				OrderIndex: ruleOrder,
				CreatedBy:  rule.CreatedBy,
			})
			totalRules++
		}
		sections = append(sections, model)
	}

	if err := s.sections.ReplaceAll(ctx, sections); err != nil {
		return dto.BackupImportResult{}, err
	}

	s.activity.Record(ctx, ActivityEntry{
		Action:     "Importato backup",
		TargetType: models.TargetBackup,
		Details: map[string]interface{}{
			"sections": len(sections),
			"rules":    totalRules,
		},
		ActorID: actorID,
	})

	s.rulebook.Invalidate(ctx)

	return dto.BackupImportResult{
		SectionsRestored: len(sections),
		RulesRestored:    totalRules,
	}, nil
}
