package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/maracujarp/rulebook-api/internal/dto"
)

// StatsService aggregates the counters shown on the admin dashboard.
type StatsService interface {
	Stats(ctx context.Context) (dto.StatsResponse, error)
}

type statsService struct {
	rulebook RulebookService
	logger   zerolog.Logger
}

// NewStatsService constructs the stats service. Counts are derived from the
// same fail-soft tree the rest of the application reads, so the dashboard
// works in demo mode too.
func NewStatsService(rulebook RulebookService, logger zerolog.Logger) StatsService {
	return &statsService{
		rulebook: rulebook,
		logger:   logger.With().Str("component", "stats_service").Logger(),
	}
}

func (s *statsService) Stats(ctx context.Context) (dto.StatsResponse, error) {
	sections := s.rulebook.Tree(ctx)

	response := dto.StatsResponse{
		TotalSections: int64(len(sections)),
		Sections:      make([]dto.SectionStat, 0, len(sections)),
	}
	for _, section := range sections {
		response.TotalRules += int64(len(section.Rules))
		response.Sections = append(response.Sections, dto.SectionStat{
			ID:        section.ID,
			Title:     section.Title,
			RuleCount: len(section.Rules),
		})
	}
	return response, nil
}
