package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/notekeeper/internal/models"
	"github.com/iudanet/notekeeper/internal/server/storage"
	"github.com/iudanet/notekeeper/internal/server/storage/sqlite"
	"github.com/iudanet/notekeeper/pkg/api"
)

// setupTestLogger creates a logger for testing
func setupTestLogger() *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: slog.LevelError, // Only show errors in tests
	}
	handler := slog.NewTextHandler(os.Stdout, opts)
	return slog.New(handler)
}

type notification struct {
	userID string
	origin string
	types  []models.RecordType
}

type recordingNotifier struct {
	calls []notification
	mu    sync.Mutex
}

func (n *recordingNotifier) Notify(userID, origin string, types []models.RecordType) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.calls = append(n.calls, notification{userID: userID, origin: origin, types: types})
}

func (n *recordingNotifier) Calls() []notification {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]notification(nil), n.calls...)
}

type testClock struct {
	now time.Time
}

func (c *testClock) Now() time.Time { return c.now }

func (c *testClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

type syncTestEnv struct {
	handler  *SyncHandler
	store    *sqlite.Storage
	notifier *recordingNotifier
	clock    *testClock
}

func newSyncTestEnv(t *testing.T) *syncTestEnv {
	t.Helper()

	store, err := sqlite.New(context.Background(), filepath.Join(t.TempDir(), "server.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	notifier := &recordingNotifier{}
	clock := &testClock{now: time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)}

	h := NewSyncHandler(setupTestLogger(), store, store, notifier, nil)
	h.now = clock.Now

	return &syncTestEnv{handler: h, store: store, notifier: notifier, clock: clock}
}

func authed(req *http.Request, userID, deviceID string) *http.Request {
	return req.WithContext(WithUser(req.Context(), userID, deviceID))
}

func noteRecord(id, title string, base int64) api.SyncRecord {
	data := []byte(`{"title":"` + title + `","format":"markdown"}`)
	return api.SyncRecord{
		ID:          id,
		Type:        string(models.RecordTypeNote),
		Data:        data,
		ContentHash: models.HashData(data),
		Version:     base,
		UpdatedAt:   time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (e *syncTestEnv) push(t *testing.T, userID, deviceID string, req api.PushRequest) api.PushResponse {
	t.Helper()

	body, err := json.Marshal(req)
	require.NoError(t, err)

	r := authed(httptest.NewRequest(http.MethodPost, "/api/v1/sync/push", bytes.NewReader(body)), userID, deviceID)
	w := httptest.NewRecorder()
	e.handler.Push(w, r)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp api.PushResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	return resp
}

func (e *syncTestEnv) pull(t *testing.T, userID, query string) api.PullResponse {
	t.Helper()

	r := authed(httptest.NewRequest(http.MethodGet, "/api/v1/sync/pull"+query, nil), userID, "")
	w := httptest.NewRecorder()
	e.handler.Pull(w, r)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp api.PullResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	return resp
}

func (e *syncTestEnv) resolve(userID, conflictID string, req api.ResolveConflictRequest) *httptest.ResponseRecorder {
	body, _ := json.Marshal(req)
	r := httptest.NewRequest(http.MethodPost, "/api/v1/sync/conflicts/"+conflictID+"/resolve", bytes.NewReader(body))
	r = mux.SetURLVars(authed(r, userID, "dev-b"), map[string]string{"id": conflictID})
	w := httptest.NewRecorder()
	e.handler.ResolveConflict(w, r)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) api.ErrorResponse {
	t.Helper()
	var resp api.ErrorResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	return resp
}

// createServerConflict: dev-a и dev-b правят n1 от одной базы, push dev-b конфликтует
func (e *syncTestEnv) createServerConflict(t *testing.T) api.ConflictInfo {
	t.Helper()

	e.push(t, "u1", "dev-a", api.PushRequest{Notes: []api.SyncRecord{noteRecord("n1", "base", 0)}})
	e.clock.Advance(time.Second)
	e.push(t, "u1", "dev-a", api.PushRequest{Notes: []api.SyncRecord{noteRecord("n1", "from-a", 1)}})
	e.clock.Advance(time.Second)

	resp := e.push(t, "u1", "dev-b", api.PushRequest{Notes: []api.SyncRecord{noteRecord("n1", "from-b", 1)}})
	require.Len(t, resp.Notes.Conflicts, 1)
	return resp.Notes.Conflicts[0]
}

func TestSyncHandler_Unauthorized(t *testing.T) {
	env := newSyncTestEnv(t)

	handlers := map[string]http.HandlerFunc{
		"pull":      env.handler.Pull,
		"push":      env.handler.Push,
		"conflicts": env.handler.ListConflicts,
		"resolve":   env.handler.ResolveConflict,
	}

	for name, h := range handlers {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader([]byte(`{}`)))
			w := httptest.NewRecorder()
			h(w, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Equal(t, api.CodeUnauthorized, decodeError(t, w).Code)
		})
	}
}

func TestSyncHandler_Pull_InvalidQuery(t *testing.T) {
	env := newSyncTestEnv(t)

	for _, query := range []string{"?since=yesterday", "?types=notes,passwords", "?since=1700000000"} {
		t.Run(query, func(t *testing.T) {
			req := authed(httptest.NewRequest(http.MethodGet, "/api/v1/sync/pull"+query, nil), "u1", "")
			w := httptest.NewRecorder()
			env.handler.Pull(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, api.CodeBadRequest, decodeError(t, w).Code)
		})
	}
}

func TestSyncHandler_PushThenPull(t *testing.T) {
	env := newSyncTestEnv(t)

	category := api.SyncRecord{
		ID:          "c1",
		Type:        string(models.RecordTypeCategory),
		Data:        []byte(`{"name":"work","color":"#ff0000"}`),
		ContentHash: models.HashData([]byte(`{"name":"work","color":"#ff0000"}`)),
		UpdatedAt:   time.Now(),
	}

	resp := env.push(t, "u1", "dev-a", api.PushRequest{
		Notes:      []api.SyncRecord{noteRecord("n1", "first", 0), noteRecord("n2", "second", 0)},
		Categories: []api.SyncRecord{category},
	})

	assert.Equal(t, 2, resp.Notes.Created)
	assert.Equal(t, 1, resp.Categories.Created)
	assert.Zero(t, resp.AiAssistants.Created)
	assert.ElementsMatch(t, []api.AppliedRecord{{ID: "n1", Version: 1}, {ID: "n2", Version: 1}}, resp.Notes.Applied)
	assert.Empty(t, resp.Notes.Conflicts)

	calls := env.notifier.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, notification{
		userID: "u1",
		origin: "dev-a",
		types:  []models.RecordType{models.RecordTypeNote, models.RecordTypeCategory},
	}, calls[0])

	pulled := env.pull(t, "u1", "")
	assert.True(t, env.clock.now.Equal(pulled.ServerTime))
	require.Len(t, pulled.Notes, 2)
	require.Len(t, pulled.Categories, 1)
	assert.Empty(t, pulled.AiAssistants)
	assert.Equal(t, int64(1), pulled.Notes[0].Version)
	assert.Equal(t, models.HashData(pulled.Notes[0].Data), pulled.Notes[0].ContentHash)

	// Другой пользователь ничего не видит
	other := env.pull(t, "u2", "")
	assert.Empty(t, other.Notes)

	// Фильтр по типам
	onlyCategories := env.pull(t, "u1", "?types=categories")
	assert.Empty(t, onlyCategories.Notes)
	assert.Len(t, onlyCategories.Categories, 1)
}

func TestSyncHandler_Pull_Since(t *testing.T) {
	env := newSyncTestEnv(t)

	env.push(t, "u1", "dev-a", api.PushRequest{Notes: []api.SyncRecord{noteRecord("n1", "old", 0)}})
	checkpoint := env.clock.now
	env.clock.Advance(time.Minute)
	env.push(t, "u1", "dev-a", api.PushRequest{Notes: []api.SyncRecord{noteRecord("n2", "new", 0)}})

	pulled := env.pull(t, "u1", "?since="+checkpoint.Format(time.RFC3339Nano))
	require.Len(t, pulled.Notes, 1)
	assert.Equal(t, "n2", pulled.Notes[0].ID)

	pulled = env.pull(t, "u1", "?since="+env.clock.now.Format(time.RFC3339Nano))
	assert.Empty(t, pulled.Notes)
}

func TestSyncHandler_Push_Tombstone(t *testing.T) {
	env := newSyncTestEnv(t)

	env.push(t, "u1", "dev-a", api.PushRequest{Notes: []api.SyncRecord{noteRecord("n1", "doomed", 0)}})
	env.clock.Advance(time.Second)

	tomb := api.SyncRecord{
		ID:          "n1",
		Type:        "notes",
		ContentHash: models.HashData(nil),
		Version:     1,
		Deleted:     true,
		UpdatedAt:   time.Now(),
	}
	resp := env.push(t, "u1", "dev-a", api.PushRequest{Notes: []api.SyncRecord{tomb}})
	assert.Equal(t, 1, resp.Notes.Updated)
	assert.Equal(t, []api.AppliedRecord{{ID: "n1", Version: 2}}, resp.Notes.Applied)

	pulled := env.pull(t, "u1", "")
	require.Len(t, pulled.Notes, 1)
	assert.True(t, pulled.Notes[0].Deleted)
	assert.Contains(t, []string{"", "null"}, string(pulled.Notes[0].Data))
}

func TestSyncHandler_Push_RetryIsNotConflict(t *testing.T) {
	env := newSyncTestEnv(t)

	rec := noteRecord("n1", "same", 0)
	env.push(t, "u1", "dev-a", api.PushRequest{Notes: []api.SyncRecord{rec}})

	// Ответ потерян, клиент повторяет тот же push
	resp := env.push(t, "u1", "dev-a", api.PushRequest{Notes: []api.SyncRecord{rec}})
	assert.Empty(t, resp.Notes.Conflicts)
	assert.Equal(t, []api.AppliedRecord{{ID: "n1", Version: 1}}, resp.Notes.Applied)
	assert.Equal(t, 1, resp.Notes.Updated)
}

func TestSyncHandler_Push_Conflict(t *testing.T) {
	env := newSyncTestEnv(t)

	info := env.createServerConflict(t)
	assert.NotEmpty(t, info.ID)
	assert.Equal(t, "n1", info.RecordID)
	assert.Equal(t, int64(2), info.Server.Version)
	assert.JSONEq(t, `{"title":"from-a","format":"markdown"}`, string(info.Server.Data))

	// Серверная запись не тронута
	pulled := env.pull(t, "u1", "")
	require.Len(t, pulled.Notes, 1)
	assert.JSONEq(t, `{"title":"from-a","format":"markdown"}`, string(pulled.Notes[0].Data))

	// Конфликтующий push не рассылает уведомлений
	assert.Len(t, env.notifier.Calls(), 2)

	r := authed(httptest.NewRequest(http.MethodGet, "/api/v1/sync/conflicts", nil), "u1", "")
	w := httptest.NewRecorder()
	env.handler.ListConflicts(w, r)
	require.Equal(t, http.StatusOK, w.Code)

	var items []api.ConflictListItem
	require.NoError(t, json.NewDecoder(w.Body).Decode(&items))
	require.Len(t, items, 1)
	assert.Equal(t, info.ID, items[0].ID)
	assert.Equal(t, "notes", items[0].Type)
	assert.Equal(t, int64(1), items[0].Local.Version)
	assert.Equal(t, int64(2), items[0].Server.Version)
	assert.JSONEq(t, `{"title":"from-b","format":"markdown"}`, string(items[0].Local.Data))
}

func TestSyncHandler_Push_RecordErrors(t *testing.T) {
	env := newSyncTestEnv(t)
	env.push(t, "u1", "dev-a", api.PushRequest{Notes: []api.SyncRecord{noteRecord("existing", "x", 0)}})

	badHash := noteRecord("bad-hash", "x", 0)
	badHash.ContentHash = models.HashData([]byte("something else"))

	noTitle := noteRecord("no-title", "", 0)

	wrongBatch := noteRecord("wrong-batch", "x", 0)
	wrongBatch.Type = "categories"

	noTime := noteRecord("no-time", "x", 0)
	noTime.UpdatedAt = time.Time{}

	ahead := noteRecord("existing", "y", 7)

	tombWithBadHash := api.SyncRecord{ID: "tomb", Type: "notes", ContentHash: models.HashData([]byte("x")), Deleted: true, UpdatedAt: time.Now()}

	resp := env.push(t, "u1", "dev-a", api.PushRequest{
		Notes: []api.SyncRecord{badHash, noTitle, wrongBatch, noTime, ahead, tombWithBadHash, noteRecord("fine", "ok", 0)},
	})

	assert.Equal(t, 6, resp.Notes.Errors)
	require.Len(t, resp.Notes.Failed, 6)
	failed := map[string]string{}
	for _, f := range resp.Notes.Failed {
		failed[f.ID] = f.Message
	}
	assert.Contains(t, failed["bad-hash"], "content hash mismatch")
	assert.Contains(t, failed["no-title"], "invalid payload")
	assert.Contains(t, failed["wrong-batch"], "batch")
	assert.Contains(t, failed["no-time"], "invalid record")
	assert.Contains(t, failed["existing"], models.ErrVersionAhead.Error())
	assert.Contains(t, failed["tomb"], "content hash mismatch")

	// Корректная запись того же батча применена
	assert.Equal(t, 1, resp.Notes.Created)
	assert.Equal(t, []api.AppliedRecord{{ID: "fine", Version: 1}}, resp.Notes.Applied)
}

func TestSyncHandler_Push_InvalidBody(t *testing.T) {
	env := newSyncTestEnv(t)

	req := authed(httptest.NewRequest(http.MethodPost, "/api/v1/sync/push", bytes.NewReader([]byte("not json"))), "u1", "")
	w := httptest.NewRecorder()
	env.handler.Push(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, api.CodeBadRequest, decodeError(t, w).Code)
}

func TestSyncHandler_Push_StorageError(t *testing.T) {
	records := &storage.RecordStorageMock{
		ApplyPushFunc: func(ctx context.Context, incoming *models.StoredRecord, baseVersion int64, now time.Time) (*models.PushApplied, error) {
			return nil, errors.New("disk full")
		},
	}
	h := NewSyncHandler(setupTestLogger(), records, &storage.ConflictStorageMock{}, nil, nil)

	body, _ := json.Marshal(api.PushRequest{Notes: []api.SyncRecord{noteRecord("n1", "x", 0)}})
	req := authed(httptest.NewRequest(http.MethodPost, "/api/v1/sync/push", bytes.NewReader(body)), "u1", "")
	w := httptest.NewRecorder()
	h.Push(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, api.CodeInternal, decodeError(t, w).Code)
	require.Len(t, records.ApplyPushCalls(), 1)
	assert.Equal(t, "u1", records.ApplyPushCalls()[0].Incoming.UserID)
}

func TestSyncHandler_Pull_StorageError(t *testing.T) {
	records := &storage.RecordStorageMock{
		ChangedSinceFunc: func(ctx context.Context, userID string, since time.Time, types []models.RecordType) ([]*models.StoredRecord, error) {
			return nil, errors.New("locked")
		},
	}
	h := NewSyncHandler(setupTestLogger(), records, &storage.ConflictStorageMock{}, nil, nil)

	req := authed(httptest.NewRequest(http.MethodGet, "/api/v1/sync/pull", nil), "u1", "")
	w := httptest.NewRecorder()
	h.Pull(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	require.Len(t, records.ChangedSinceCalls(), 1)
	assert.Equal(t, models.AllRecordTypes, records.ChangedSinceCalls()[0].Types)
}

func TestSyncHandler_ResolveConflict(t *testing.T) {
	tests := []struct {
		name        string
		req         api.ResolveConflictRequest
		wantTitle   string
		wantVersion int64
		wantNotify  bool
	}{
		{
			name:        "local",
			req:         api.ResolveConflictRequest{Resolution: "local", Type: "notes"},
			wantTitle:   "from-b",
			wantVersion: 3,
			wantNotify:  true,
		},
		{
			name:        "server",
			req:         api.ResolveConflictRequest{Resolution: "server"},
			wantTitle:   "from-a",
			wantVersion: 2,
		},
		{
			name: "merge",
			req: api.ResolveConflictRequest{
				Resolution: "merge",
				Data:       json.RawMessage(`{"title":"merged","format":"markdown"}`),
			},
			wantTitle:   "merged",
			wantVersion: 3,
			wantNotify:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newSyncTestEnv(t)
			info := env.createServerConflict(t)
			before := len(env.notifier.Calls())

			w := env.resolve("u1", info.ID, tt.req)
			require.Equal(t, http.StatusOK, w.Code, w.Body.String())

			var resp api.ResolveConflictResponse
			require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
			assert.Equal(t, "n1", resp.Record.ID)
			assert.Equal(t, tt.wantVersion, resp.Record.Version)
			assert.JSONEq(t, `{"title":"`+tt.wantTitle+`","format":"markdown"}`, string(resp.Record.Data))

			calls := env.notifier.Calls()
			if tt.wantNotify {
				require.Len(t, calls, before+1)
				assert.Equal(t, "dev-b", calls[before].origin)
			} else {
				assert.Len(t, calls, before)
			}

			// Повторное разрешение: конфликт уже закрыт
			w = env.resolve("u1", info.ID, tt.req)
			assert.Equal(t, http.StatusNotFound, w.Code)
			assert.Equal(t, api.CodeUnknownConflict, decodeError(t, w).Code)
		})
	}
}

func TestSyncHandler_ResolveConflict_Errors(t *testing.T) {
	env := newSyncTestEnv(t)
	info := env.createServerConflict(t)

	tests := []struct {
		name       string
		userID     string
		conflictID string
		wantCode   string
		req        api.ResolveConflictRequest
		wantStatus int
	}{
		{
			name:       "merge without data",
			userID:     "u1",
			conflictID: info.ID,
			req:        api.ResolveConflictRequest{Resolution: "merge"},
			wantStatus: http.StatusBadRequest,
			wantCode:   api.CodeMergeDataRequired,
		},
		{
			name:       "unknown resolution",
			userID:     "u1",
			conflictID: info.ID,
			req:        api.ResolveConflictRequest{Resolution: "theirs"},
			wantStatus: http.StatusBadRequest,
			wantCode:   api.CodeBadRequest,
		},
		{
			name:       "unknown conflict",
			userID:     "u1",
			conflictID: "missing",
			req:        api.ResolveConflictRequest{Resolution: "local"},
			wantStatus: http.StatusNotFound,
			wantCode:   api.CodeUnknownConflict,
		},
		{
			name:       "other user's conflict",
			userID:     "u2",
			conflictID: info.ID,
			req:        api.ResolveConflictRequest{Resolution: "local"},
			wantStatus: http.StatusNotFound,
			wantCode:   api.CodeUnknownConflict,
		},
		{
			name:       "type mismatch",
			userID:     "u1",
			conflictID: info.ID,
			req:        api.ResolveConflictRequest{Resolution: "local", Type: "categories"},
			wantStatus: http.StatusBadRequest,
			wantCode:   api.CodeTypeMismatch,
		},
		{
			name:       "invalid merge payload",
			userID:     "u1",
			conflictID: info.ID,
			req:        api.ResolveConflictRequest{Resolution: "merge", Data: json.RawMessage(`{"format":"markdown"}`)},
			wantStatus: http.StatusBadRequest,
			wantCode:   api.CodeBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := env.resolve(tt.userID, tt.conflictID, tt.req)
			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantCode, decodeError(t, w).Code)
		})
	}

	// Ни одна неудачная попытка не закрыла конфликт
	_, err := env.store.GetConflict(context.Background(), "u1", info.ID)
	assert.NoError(t, err)
}

func TestParseTypes(t *testing.T) {
	types, err := parseTypes("")
	require.NoError(t, err)
	assert.Equal(t, models.AllRecordTypes, types)

	types, err = parseTypes("ai_assistants, notes")
	require.NoError(t, err)
	assert.Equal(t, []models.RecordType{models.RecordTypeAiAssistant, models.RecordTypeNote}, types)

	_, err = parseTypes("notes,note")
	assert.Error(t, err)
}
