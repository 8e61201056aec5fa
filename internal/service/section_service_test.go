package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/maracujarp/rulebook-api/internal/dto"
	"github.com/maracujarp/rulebook-api/internal/models"
)

func newSectionServiceForTest(repo *stubSectionRepo) (SectionService, *stubRulebook, *recorderSpy) {
	rulebook := &stubRulebook{}
	if repo != nil {
		rulebook.tree = repo.sections
	}
	recorder := &recorderSpy{}
	var svc SectionService
	if repo == nil {
		svc = NewSectionService(nil, rulebook, recorder, newTestValidator(), testLogger())
	} else {
		svc = NewSectionService(repo, rulebook, recorder, newTestValidator(), testLogger())
	}
	return svc, rulebook, recorder
}

func TestSectionCreateWithoutStore(t *testing.T) {
	svc, _, recorder := newSectionServiceForTest(nil)

	_, err := svc.Create(context.Background(), "1", dto.CreateSectionRequest{
		Title: "Nuova sezione",
		Icon:  "Shield",
	})
	require.ErrorIs(t, err, ErrStoreNotConfigured)
	require.Empty(t, recorder.entries)
}

func TestSectionCreateValidatesTitleLength(t *testing.T) {
	repo := &stubSectionRepo{}
	svc, _, _ := newSectionServiceForTest(repo)

	// Two characters after trimming is below the minimum of three.
	_, err := svc.Create(context.Background(), "1", dto.CreateSectionRequest{
		Title: "  ab  ",
		Icon:  "Shield",
	})
	require.Error(t, err)
	require.Empty(t, repo.created)

	_, err = svc.Create(context.Background(), "1", dto.CreateSectionRequest{
		Title: "  abc  ",
		Icon:  "Shield",
	})
	require.NoError(t, err)
	require.Len(t, repo.created, 1)
	require.Equal(t, "abc", repo.created[0].Title)
}

func TestSectionCreateRejectsUnknownIcon(t *testing.T) {
	repo := &stubSectionRepo{}
	svc, _, _ := newSectionServiceForTest(repo)

	_, err := svc.Create(context.Background(), "1", dto.CreateSectionRequest{
		Title: "Sezione valida",
		Icon:  "Rocket",
	})
	require.ErrorIs(t, err, ErrInvalidIcon)
	require.Empty(t, repo.created)
}

func TestSectionCreateAppendsAfterHighestOrdinal(t *testing.T) {
	repo := &stubSectionRepo{maxOrder: 4}
	svc, rulebook, recorder := newSectionServiceForTest(repo)

	_, err := svc.Create(context.Background(), "1", dto.CreateSectionRequest{
		Title: "Sezione in coda",
		Icon:  "Users",
	})
	require.NoError(t, err)
	require.Len(t, repo.created, 1)
	require.Equal(t, 5, repo.created[0].OrderIndex)
	require.Equal(t, "1", repo.created[0].CreatedBy)

	require.Len(t, recorder.entries, 1)
	require.Equal(t, "Creata sezione", recorder.entries[0].Action)
	require.Equal(t, models.TargetSection, recorder.entries[0].TargetType)
	require.Equal(t, 1, rulebook.invalidated)
}

func TestSectionUpdateUnknownID(t *testing.T) {
	repo := &stubSectionRepo{}
	svc, _, _ := newSectionServiceForTest(repo)

	title := "Titolo aggiornato"
	_, err := svc.Update(context.Background(), "1", "missing", dto.UpdateSectionRequest{Title: &title})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestSectionUpdateEmptyPayloadSkipsWrite(t *testing.T) {
	repo := &stubSectionRepo{sections: []models.Section{{ID: "s1", Title: "Regole Generali"}}}
	svc, rulebook, recorder := newSectionServiceForTest(repo)

	_, err := svc.Update(context.Background(), "1", "s1", dto.UpdateSectionRequest{})
	require.NoError(t, err)
	require.Empty(t, repo.updated)
	require.Empty(t, recorder.entries)
	require.Zero(t, rulebook.invalidated)
}

func TestSectionDeleteRefusesNonEmptySection(t *testing.T) {
	repo := &stubSectionRepo{sections: []models.Section{
		{ID: "s1", Title: "Regole Generali", Rules: []models.Rule{{ID: "r1", SectionID: "s1"}}},
	}}
	svc, _, recorder := newSectionServiceForTest(repo)

	_, err := svc.Delete(context.Background(), "1", "s1")
	require.ErrorIs(t, err, ErrSectionNotEmpty)
	require.Empty(t, repo.deleted, "a populated section must never reach the delete call")
	require.Empty(t, recorder.entries)
}

func TestSectionDeleteEmptySection(t *testing.T) {
	repo := &stubSectionRepo{sections: []models.Section{{ID: "s1", Title: "Sezione vuota"}}}
	svc, rulebook, recorder := newSectionServiceForTest(repo)

	_, err := svc.Delete(context.Background(), "1", "s1")
	require.NoError(t, err)
	require.Equal(t, []string{"s1"}, repo.deleted)
	require.Len(t, recorder.entries, 1)
	require.Equal(t, "Eliminata sezione", recorder.entries[0].Action)
	require.Equal(t, 1, rulebook.invalidated)
}

func TestSectionReorderWritesDenseSequence(t *testing.T) {
	repo := &stubSectionRepo{sections: []models.Section{
		{ID: "s1"}, {ID: "s2"}, {ID: "s3"},
	}}
	svc, _, recorder := newSectionServiceForTest(repo)

	_, err := svc.Reorder(context.Background(), "1", dto.ReorderRequest{MovedID: "s3", TargetID: "s1"})
	require.NoError(t, err)
	require.Len(t, repo.orderWrites, 1)
	require.Equal(t, []string{"s3", "s1", "s2"}, repo.orderWrites[0])
	require.Len(t, recorder.entries, 1)
	require.Equal(t, "Riordinate sezioni", recorder.entries[0].Action)
}

func TestSectionReorderSelfMoveIsSilentNoOp(t *testing.T) {
	repo := &stubSectionRepo{sections: []models.Section{{ID: "s1"}, {ID: "s2"}}}
	svc, rulebook, recorder := newSectionServiceForTest(repo)

	resp, err := svc.Reorder(context.Background(), "1", dto.ReorderRequest{MovedID: "s1", TargetID: "s1"})
	require.NoError(t, err)
	require.Len(t, resp.Sections, 2)
	require.Empty(t, repo.orderWrites)
	require.Empty(t, recorder.entries)
	require.Zero(t, rulebook.invalidated)
}

func TestSectionReorderUnknownIDIsSilentNoOp(t *testing.T) {
	repo := &stubSectionRepo{sections: []models.Section{{ID: "s1"}, {ID: "s2"}}}
	svc, _, recorder := newSectionServiceForTest(repo)

	_, err := svc.Reorder(context.Background(), "1", dto.ReorderRequest{MovedID: "ghost", TargetID: "s1"})
	require.NoError(t, err)
	require.Empty(t, repo.orderWrites)
	require.Empty(t, recorder.entries)
}
