package handler_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/maracujarp/rulebook-api/internal/dto"
	"github.com/maracujarp/rulebook-api/internal/models"
)

func testLogger() zerolog.Logger {
	return zerolog.New(io.Discard)
}

func decodeResponse(t *testing.T, resp *http.Response, target interface{}) {
	t.Helper()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	require.NoError(t, json.Unmarshal(body, target))
}

type mockRulebookService struct {
	sections    dto.RulebookResponse
	sectionsErr error
	search      dto.SearchResponse
	searchErr   error
	lastQuery   string
}

func (m *mockRulebookService) Sections(_ context.Context) (dto.RulebookResponse, error) {
	if m.sectionsErr != nil {
		return dto.RulebookResponse{}, m.sectionsErr
	}
	return m.sections, nil
}

func (m *mockRulebookService) Search(_ context.Context, query string) (dto.SearchResponse, error) {
	m.lastQuery = query
	if m.searchErr != nil {
		return dto.SearchResponse{}, m.searchErr
	}
	return m.search, nil
}

func (m *mockRulebookService) Tree(_ context.Context) []models.Section {
	return nil
}

func (m *mockRulebookService) Invalidate(_ context.Context) {}

type mockSectionService struct {
	response dto.RulebookResponse
	err      error

	lastActor   string
	lastID      string
	lastCreate  dto.CreateSectionRequest
	lastUpdate  dto.UpdateSectionRequest
	lastReorder dto.ReorderRequest
	deleted     []string
}

func (m *mockSectionService) Create(_ context.Context, actorID string, req dto.CreateSectionRequest) (dto.RulebookResponse, error) {
	m.lastActor, m.lastCreate = actorID, req
	if m.err != nil {
		return dto.RulebookResponse{}, m.err
	}
	return m.response, nil
}

func (m *mockSectionService) Update(_ context.Context, actorID, id string, req dto.UpdateSectionRequest) (dto.RulebookResponse, error) {
	m.lastActor, m.lastID, m.lastUpdate = actorID, id, req
	if m.err != nil {
		return dto.RulebookResponse{}, m.err
	}
	return m.response, nil
}

func (m *mockSectionService) Delete(_ context.Context, actorID, id string) (dto.RulebookResponse, error) {
	m.lastActor = actorID
	m.deleted = append(m.deleted, id)
	if m.err != nil {
		return dto.RulebookResponse{}, m.err
	}
	return m.response, nil
}

func (m *mockSectionService) Reorder(_ context.Context, actorID string, req dto.ReorderRequest) (dto.RulebookResponse, error) {
	m.lastActor, m.lastReorder = actorID, req
	if m.err != nil {
		return dto.RulebookResponse{}, m.err
	}
	return m.response, nil
}

type mockRuleService struct {
	response dto.RulebookResponse
	err      error

	lastActor     string
	lastID        string
	lastSectionID string
	lastCreate    dto.CreateRuleRequest
	lastUpdate    dto.UpdateRuleRequest
	lastReorder   dto.ReorderRequest
	lastMove      dto.MoveRuleRequest
	deleted       []string
}

func (m *mockRuleService) Create(_ context.Context, actorID, sectionID string, req dto.CreateRuleRequest) (dto.RulebookResponse, error) {
	m.lastActor, m.lastSectionID, m.lastCreate = actorID, sectionID, req
	if m.err != nil {
		return dto.RulebookResponse{}, m.err
	}
	return m.response, nil
}

func (m *mockRuleService) Update(_ context.Context, actorID, id string, req dto.UpdateRuleRequest) (dto.RulebookResponse, error) {
	m.lastActor, m.lastID, m.lastUpdate = actorID, id, req
	if m.err != nil {
		return dto.RulebookResponse{}, m.err
	}
	return m.response, nil
}

func (m *mockRuleService) Delete(_ context.Context, actorID, id string) (dto.RulebookResponse, error) {
	m.lastActor = actorID
	m.deleted = append(m.deleted, id)
	if m.err != nil {
		return dto.RulebookResponse{}, m.err
	}
	return m.response, nil
}

func (m *mockRuleService) Reorder(_ context.Context, actorID, sectionID string, req dto.ReorderRequest) (dto.RulebookResponse, error) {
	m.lastActor, m.lastSectionID, m.lastReorder = actorID, sectionID, req
	if m.err != nil {
		return dto.RulebookResponse{}, m.err
	}
	return m.response, nil
}

func (m *mockRuleService) Move(_ context.Context, actorID, id string, req dto.MoveRuleRequest) (dto.RulebookResponse, error) {
	m.lastActor, m.lastID, m.lastMove = actorID, id, req
	if m.err != nil {
		return dto.RulebookResponse{}, m.err
	}
	return m.response, nil
}
