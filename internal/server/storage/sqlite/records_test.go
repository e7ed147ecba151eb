package sqlite

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/notekeeper/internal/models"
	"github.com/iudanet/notekeeper/internal/server/storage"
)

func TestRecords_ApplyPush_CreateAndUpdate(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	t0 := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)

	applied, err := s.ApplyPush(ctx, storedNote("u1", "n1", "v1", t0), 0, t0)
	require.NoError(t, err)
	assert.Equal(t, models.OutcomeCreated, applied.Outcome)
	assert.Equal(t, int64(1), applied.Record.Version)
	assert.True(t, t0.Equal(applied.Record.ChangedAt))
	assert.Nil(t, applied.Conflict)

	t1 := t0.Add(time.Minute)
	applied, err = s.ApplyPush(ctx, storedNote("u1", "n1", "v2", t1), 1, t1)
	require.NoError(t, err)
	assert.Equal(t, models.OutcomeUpdated, applied.Outcome)
	assert.Equal(t, int64(2), applied.Record.Version)

	rec, err := s.GetRecord(ctx, "u1", "n1")
	require.NoError(t, err)
	assert.Equal(t, int64(2), rec.Version)
	assert.JSONEq(t, `{"title":"v2","format":"markdown"}`, string(rec.Data))
	assert.Equal(t, models.HashData(rec.Data), rec.ContentHash)
	assert.True(t, t1.Equal(rec.ChangedAt))
	assert.True(t, t1.Equal(rec.UpdatedAt))
	assert.Equal(t, models.RecordTypeNote, rec.Type)
}

func TestRecords_ApplyPush_Tombstone(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	now := time.Now()
	_, err := s.ApplyPush(ctx, storedNote("u1", "n1", "v1", now), 0, now)
	require.NoError(t, err)

	tomb := &models.StoredRecord{
		UserID:      "u1",
		ID:          "n1",
		Type:        models.RecordTypeNote,
		ContentHash: models.HashData(nil),
		Deleted:     true,
		UpdatedAt:   now,
	}
	applied, err := s.ApplyPush(ctx, tomb, 1, now.Add(time.Second))
	require.NoError(t, err)
	assert.Equal(t, models.OutcomeUpdated, applied.Outcome)

	rec, err := s.GetRecord(ctx, "u1", "n1")
	require.NoError(t, err)
	assert.True(t, rec.Deleted)
	assert.Nil(t, rec.Data)
	assert.Equal(t, int64(2), rec.Version)
}

func TestRecords_ApplyPush_StaleBase(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	t0 := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	_, err := s.ApplyPush(ctx, storedNote("u1", "n1", "base", t0), 0, t0)
	require.NoError(t, err)
	_, err = s.ApplyPush(ctx, storedNote("u1", "n1", "device-a", t0), 1, t0.Add(time.Second))
	require.NoError(t, err)

	// Устройство B правило ту же базовую ревизию 1
	applied, err := s.ApplyPush(ctx, storedNote("u1", "n1", "device-b", t0), 1, t0.Add(2*time.Second))
	require.NoError(t, err)
	assert.Equal(t, models.OutcomeConflict, applied.Outcome)
	require.NotNil(t, applied.Conflict)
	assert.NotEmpty(t, applied.Conflict.ID)
	assert.Equal(t, "n1", applied.Conflict.RecordID)
	assert.Equal(t, models.RecordTypeNote, applied.Conflict.Type)
	assert.Equal(t, int64(2), applied.Conflict.Server.Version)
	assert.Equal(t, int64(1), applied.Conflict.Local.Version)
	assert.JSONEq(t, `{"title":"device-b","format":"markdown"}`, string(applied.Conflict.Local.Data))
	assert.JSONEq(t, `{"title":"device-a","format":"markdown"}`, string(applied.Conflict.Server.Data))

	// Серверная запись не изменилась
	assert.Equal(t, int64(2), applied.Record.Version)
	rec, err := s.GetRecord(ctx, "u1", "n1")
	require.NoError(t, err)
	assert.JSONEq(t, `{"title":"device-a","format":"markdown"}`, string(rec.Data))

	// Повторный устаревший push обновляет тот же конфликт
	again, err := s.ApplyPush(ctx, storedNote("u1", "n1", "device-b2", t0), 1, t0.Add(3*time.Second))
	require.NoError(t, err)
	require.NotNil(t, again.Conflict)
	assert.Equal(t, applied.Conflict.ID, again.Conflict.ID)

	conflicts, err := s.ListConflicts(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, conflicts, 1)
	assert.JSONEq(t, `{"title":"device-b2","format":"markdown"}`, string(conflicts[0].Local.Data))
	assert.True(t, t0.Add(2*time.Second).Equal(conflicts[0].CreatedAt))
}

func TestRecords_ApplyPush_Rejections(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	now := time.Now()
	_, err := s.ApplyPush(ctx, storedNote("u1", "n1", "v1", now), 0, now)
	require.NoError(t, err)

	// Retry после потерянного ответа
	applied, err := s.ApplyPush(ctx, storedNote("u1", "n1", "v1", now), 0, now)
	require.NoError(t, err)
	assert.Equal(t, models.OutcomeUnchanged, applied.Outcome)
	assert.Equal(t, int64(1), applied.Record.Version)

	_, err = s.ApplyPush(ctx, storedNote("u1", "n1", "v2", now), 5, now)
	assert.ErrorIs(t, err, models.ErrVersionAhead)

	wrongType := storedNote("u1", "n1", "v2", now)
	wrongType.Type = models.RecordTypeCategory
	_, err = s.ApplyPush(ctx, wrongType, 1, now)
	assert.ErrorIs(t, err, models.ErrTypeMismatch)

	rec, err := s.GetRecord(ctx, "u1", "n1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), rec.Version)
}

func TestRecords_UsersAreIsolated(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	now := time.Now()
	_, err := s.ApplyPush(ctx, storedNote("u1", "shared-id", "mine", now), 0, now)
	require.NoError(t, err)

	applied, err := s.ApplyPush(ctx, storedNote("u2", "shared-id", "theirs", now), 0, now)
	require.NoError(t, err)
	assert.Equal(t, models.OutcomeCreated, applied.Outcome)

	_, err = s.GetRecord(ctx, "u3", "shared-id")
	assert.ErrorIs(t, err, storage.ErrRecordNotFound)

	recs, err := s.ChangedSince(ctx, "u1", time.Time{}, models.AllRecordTypes)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.JSONEq(t, `{"title":"mine","format":"markdown"}`, string(recs[0].Data))
}

func TestRecords_ChangedSince(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	t0 := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	_, err := s.ApplyPush(ctx, storedNote("u1", "n1", "a", t0), 0, t0)
	require.NoError(t, err)

	category := &models.StoredRecord{
		UserID:      "u1",
		ID:          "c1",
		Type:        models.RecordTypeCategory,
		Data:        []byte(`{"name":"work"}`),
		ContentHash: models.HashData([]byte(`{"name":"work"}`)),
	}
	_, err = s.ApplyPush(ctx, category, 0, t0.Add(time.Minute))
	require.NoError(t, err)
	_, err = s.ApplyPush(ctx, storedNote("u1", "n2", "b", t0), 0, t0.Add(2*time.Minute))
	require.NoError(t, err)

	tests := []struct {
		since time.Time
		name  string
		types []models.RecordType
		want  []string
	}{
		{name: "everything", since: time.Time{}, types: models.AllRecordTypes, want: []string{"n1", "c1", "n2"}},
		{name: "strictly after", since: t0, types: models.AllRecordTypes, want: []string{"c1", "n2"}},
		{name: "only notes", since: time.Time{}, types: []models.RecordType{models.RecordTypeNote}, want: []string{"n1", "n2"}},
		{name: "nothing new", since: t0.Add(2 * time.Minute), types: models.AllRecordTypes, want: []string{}},
		{name: "no types", since: time.Time{}, types: nil, want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recs, err := s.ChangedSince(ctx, "u1", tt.since, tt.types)
			require.NoError(t, err)

			ids := make([]string, 0, len(recs))
			for _, r := range recs {
				ids = append(ids, r.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestRecords_ConcurrentPushSameBase(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	now := time.Now()
	_, err := s.ApplyPush(ctx, storedNote("u1", "n1", "base", now), 0, now)
	require.NoError(t, err)

	const writers = 8
	outcomes := make([]models.PushOutcome, writers)

	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			applied, err := s.ApplyPush(ctx, storedNote("u1", "n1", string(rune('a'+i)), now), 1, now)
			if assert.NoError(t, err) {
				outcomes[i] = applied.Outcome
			}
		}(i)
	}
	wg.Wait()

	updated := 0
	for _, o := range outcomes {
		if o == models.OutcomeUpdated {
			updated++
		} else {
			assert.Equal(t, models.OutcomeConflict, o)
		}
	}
	assert.Equal(t, 1, updated)

	rec, err := s.GetRecord(ctx, "u1", "n1")
	require.NoError(t, err)
	assert.Equal(t, int64(2), rec.Version)
}
