package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/maracujarp/rulebook-api/internal/dto"
	"github.com/maracujarp/rulebook-api/internal/models"
	"github.com/maracujarp/rulebook-api/internal/observability"
	"github.com/maracujarp/rulebook-api/internal/placeholder"
	"github.com/maracujarp/rulebook-api/internal/repository"
)

const treeCacheKey = "rulebook:tree:v1"

// RulebookService serves the public section tree and its search projection.
// Reads fail soft: when the store is unconfigured, unreachable, or empty,
// the fixed placeholder dataset is served instead.
type RulebookService interface {
	Sections(ctx context.Context) (dto.RulebookResponse, error)
	Search(ctx context.Context, query string) (dto.SearchResponse, error)
	Tree(ctx context.Context) []models.Section
	Invalidate(ctx context.Context)
}

type rulebookService struct {
	repo   repository.SectionRepository
	cache  *redis.Client
	ttl    time.Duration
	logger zerolog.Logger
	policy *bluemonday.Policy
	tracer trace.Tracer
}

// NewRulebookService constructs the rulebook read service. repo may be nil
// in demo mode; cache may be nil when Redis is not configured.
func NewRulebookService(repo repository.SectionRepository, cache *redis.Client, ttl time.Duration, logger zerolog.Logger) RulebookService {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	policy := bluemonday.UGCPolicy()
	policy.AllowElements("p", "strong", "em", "a", "ul", "ol", "li", "br", "mark")
	policy.AllowAttrs("href", "title", "target").OnElements("a")
	return &rulebookService{
		repo:   repo,
		cache:  cache,
		ttl:    ttl,
		logger: logger.With().Str("component", "rulebook_service").Logger(),
		policy: policy,
		tracer: otel.Tracer("github.com/maracujarp/rulebook-api/internal/service/rulebook"),
	}
}

// Tree loads the full ordered section tree. It never fails: connectivity
// problems and an empty store both degrade to the placeholder dataset. This
// fallback is a product decision for first-run and demo use, not retry
// logic.
func (s *rulebookService) Tree(ctx context.Context) []models.Section {
	if s.repo == nil {
		observability.PlaceholderFallbacks().WithLabelValues("unconfigured").Inc()
		return placeholder.Sections()
	}

	sections, err := s.repo.ListWithRules(ctx)
	if err != nil {
		s.logger.Warn().Err(err).Msg("section fetch failed, serving placeholder dataset")
		observability.PlaceholderFallbacks().WithLabelValues("error").Inc()
		return placeholder.Sections()
	}
	if len(sections) == 0 {
		observability.PlaceholderFallbacks().WithLabelValues("empty").Inc()
		return placeholder.Sections()
	}
	return sections
}

func (s *rulebookService) Sections(ctx context.Context) (dto.RulebookResponse, error) {
	ctx, span := s.tracer.Start(ctx, "rulebook.sections")
	defer span.End()

	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, treeCacheKey).Result(); err == nil && cached != "" {
			var response dto.RulebookResponse
			if err := json.Unmarshal([]byte(cached), &response); err == nil {
				response.CacheHit = true
				return response, nil
			}
		}
	}

	sections := s.sanitizedTree(ctx)
	response := dto.NewRulebookResponse(sections)
	span.SetAttributes(attribute.Int("rulebook.sections", len(response.Sections)))

	if s.cache != nil {
		if payload, err := json.Marshal(response); err == nil {
			if err := s.cache.Set(ctx, treeCacheKey, payload, s.ttl).Err(); err != nil {
				s.logger.Warn().Err(err).Msg("failed to cache section tree")
			}
		}
	}

	return response, nil
}

func (s *rulebookService) Search(ctx context.Context, query string) (dto.SearchResponse, error) {
	ctx, span := s.tracer.Start(ctx, "rulebook.search")
	defer span.End()

	sections := s.sanitizedTree(ctx)
	filtered, matches := filterSections(sections, query)

	responses := make([]dto.SectionResponse, 0, len(filtered))
	for _, section := range filtered {
		response := dto.NewSectionResponse(section)
		for i := range response.Rules {
			response.Rules[i].Title = highlightMatches(response.Rules[i].Title, query)
			response.Rules[i].Content = highlightMatches(response.Rules[i].Content, query)
		}
		responses = append(responses, response)
	}

	span.SetAttributes(attribute.Int("rulebook.matches", matches))

	return dto.SearchResponse{
		Query:    query,
		Sections: responses,
		Matches:  matches,
	}, nil
}

// Invalidate drops the cached tree after a mutation so the next read
// reflects server truth.
func (s *rulebookService) Invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx, treeCacheKey).Err(); err != nil {
		s.logger.Warn().Err(err).Msg("failed to invalidate section tree cache")
	}
}

func (s *rulebookService) sanitizedTree(ctx context.Context) []models.Section {
	sections := s.Tree(ctx)
	for si := range sections {
		for ri := range sections[si].Rules {
			sections[si].Rules[ri].Content = s.policy.Sanitize(sections[si].Rules[ri].Content)
		}
	}
	return sections
}
