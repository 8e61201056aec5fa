package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/maracujarp/rulebook-api/internal/models"
)

type stubActivityLogRepo struct {
	entries   []models.ActivityLog
	createErr error
}

func (r *stubActivityLogRepo) Create(ctx context.Context, entry *models.ActivityLog) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.entries = append(r.entries, *entry)
	return nil
}

func (r *stubActivityLogRepo) List(ctx context.Context, limit int) ([]models.ActivityLog, error) {
	if limit <= 0 || limit > len(r.entries) {
		limit = len(r.entries)
	}
	return r.entries[:limit], nil
}

func TestRecordPersistsEntry(t *testing.T) {
	repo := &stubActivityLogRepo{}
	svc := NewActivityService(repo, testLogger())

	svc.Record(context.Background(), ActivityEntry{
		Action:     "Creata sezione",
		TargetType: models.TargetSection,
		TargetID:   "s1",
		Details:    map[string]interface{}{"title": "Regole Generali"},
		ActorID:    "1",
	})

	require.Len(t, repo.entries, 1)
	require.Equal(t, "Creata sezione", repo.entries[0].Action)
	require.Equal(t, "Regole Generali", repo.entries[0].Details["title"])
}

func TestRecordSkipsBlankActions(t *testing.T) {
	repo := &stubActivityLogRepo{}
	svc := NewActivityService(repo, testLogger())

	svc.Record(context.Background(), ActivityEntry{Action: "  ", TargetType: models.TargetSection})
	svc.Record(context.Background(), ActivityEntry{Action: "Creata sezione"})
	require.Empty(t, repo.entries)
}

func TestRecordSwallowsPersistenceErrors(t *testing.T) {
	repo := &stubActivityLogRepo{createErr: errors.New("disk full")}
	svc := NewActivityService(repo, testLogger())

	// Must not panic or propagate; auditing never blocks a mutation.
	svc.Record(context.Background(), ActivityEntry{
		Action:     "Creata sezione",
		TargetType: models.TargetSection,
	})
}

func TestRecordWithoutStoreIsNoOp(t *testing.T) {
	svc := NewActivityService(nil, testLogger())
	svc.Record(context.Background(), ActivityEntry{
		Action:     "Creata sezione",
		TargetType: models.TargetSection,
	})

	list, err := svc.List(context.Background(), 10)
	require.NoError(t, err)
	require.Empty(t, list.Items)
}

func TestListReturnsEntries(t *testing.T) {
	repo := &stubActivityLogRepo{entries: []models.ActivityLog{
		{ID: "a2", Action: "Modificata regola", TargetType: models.TargetRule},
		{ID: "a1", Action: "Creata sezione", TargetType: models.TargetSection},
	}}
	svc := NewActivityService(repo, testLogger())

	list, err := svc.List(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, list.Items, 2)
	require.Equal(t, "Modificata regola", list.Items[0].Action)
	require.NotNil(t, list.Items[0].Details)
}
