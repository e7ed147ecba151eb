package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apiclient "github.com/iudanet/notekeeper/internal/client/api"
	"github.com/iudanet/notekeeper/internal/client/auth"
	"github.com/iudanet/notekeeper/internal/client/data"
	"github.com/iudanet/notekeeper/internal/client/iocli"
	"github.com/iudanet/notekeeper/internal/client/storage"
	clientsync "github.com/iudanet/notekeeper/internal/client/sync"
	"github.com/iudanet/notekeeper/internal/models"
)

var t0 = time.Date(2025, 4, 2, 10, 0, 0, 0, time.UTC)

// newTestIO IOMock, пишущий вывод в буфер и отдающий ввод по очереди
func newTestIO(inputs ...string) (*iocli.IOMock, *bytes.Buffer) {
	out := &bytes.Buffer{}
	next := func(prompt string) (string, error) {
		out.WriteString(prompt)
		if len(inputs) == 0 {
			return "", errors.New("unexpected prompt: " + prompt)
		}
		v := inputs[0]
		inputs = inputs[1:]
		return v, nil
	}
	return &iocli.IOMock{
		PrintlnFunc:      func(a ...any) { fmt.Fprintln(out, a...) },
		PrintfFunc:       func(format string, a ...any) { fmt.Fprintf(out, format, a...) },
		ReadInputFunc:    next,
		ReadPasswordFunc: next,
		WriteFunc:        out.Write,
	}, out
}

func TestCli_AddNote(t *testing.T) {
	ctx := context.Background()
	mockIO, out := newTestIO()
	mockData := &data.ServiceMock{
		AddNoteFunc: func(ctx context.Context, note *models.Note) error {
			note.ID = "n1"
			return nil
		},
	}

	c := New(mockIO, mockData, nil, nil)
	err := c.AddNote(ctx, &models.Note{Title: "Groceries", Content: "milk"})
	require.NoError(t, err)

	require.Len(t, mockData.AddNoteCalls(), 1)
	assert.Equal(t, "Groceries", mockData.AddNoteCalls()[0].Note.Title)
	assert.Empty(t, mockIO.ReadInputCalls())
	assert.Contains(t, out.String(), "✓ Note added successfully!")
	assert.Contains(t, out.String(), "ID:    n1")
	assert.Contains(t, out.String(), "notekeeper sync")
}

func TestCli_AddNote_Interactive(t *testing.T) {
	ctx := context.Background()
	mockIO, _ := newTestIO("Plans", "- write tests")
	mockData := &data.ServiceMock{
		AddNoteFunc: func(ctx context.Context, note *models.Note) error { return nil },
	}

	c := New(mockIO, mockData, nil, nil)
	require.NoError(t, c.AddNote(ctx, &models.Note{}))

	note := mockData.AddNoteCalls()[0].Note
	assert.Equal(t, "Plans", note.Title)
	assert.Equal(t, "- write tests", note.Content)
	assert.Len(t, mockIO.ReadInputCalls(), 2)
}

func TestCli_AddNote_Invalid(t *testing.T) {
	mockIO, _ := newTestIO()
	mockData := &data.ServiceMock{
		AddNoteFunc: func(ctx context.Context, note *models.Note) error {
			return fmt.Errorf("%w: title required", data.ErrInvalidPayload)
		},
	}

	c := New(mockIO, mockData, nil, nil)
	err := c.AddNote(context.Background(), &models.Note{Title: "x"})
	assert.ErrorIs(t, err, data.ErrInvalidPayload)
}

func TestCli_AddCategoryAndAssistant(t *testing.T) {
	ctx := context.Background()
	mockIO, out := newTestIO("Work", "llama3", "http://localhost:11434")
	mockData := &data.ServiceMock{
		AddCategoryFunc: func(ctx context.Context, category *models.Category) error {
			category.ID = "c1"
			return nil
		},
		AddAiAssistantFunc: func(ctx context.Context, assistant *models.AiAssistant) error {
			assistant.ID = "a1"
			return nil
		},
	}

	c := New(mockIO, mockData, nil, nil)
	require.NoError(t, c.AddCategory(ctx, &models.Category{}))
	assert.Equal(t, "Work", mockData.AddCategoryCalls()[0].Category.Name)

	// Имя передано флагом, остальное запрашивается
	require.NoError(t, c.AddAssistant(ctx, &models.AiAssistant{Name: "Local"}))
	assistant := mockData.AddAiAssistantCalls()[0].Assistant
	assert.Equal(t, "Local", assistant.Name)
	assert.Equal(t, "llama3", assistant.Model)
	assert.Equal(t, "http://localhost:11434", assistant.Endpoint)

	assert.Contains(t, out.String(), "ID:   c1")
	assert.Contains(t, out.String(), "ID:    a1")
}

func TestCli_EditNote(t *testing.T) {
	ctx := context.Background()
	mockIO, _ := newTestIO()
	mockData := &data.ServiceMock{
		GetNoteFunc: func(ctx context.Context, id string) (*models.Note, error) {
			if id != "n1" {
				return nil, fmt.Errorf("failed to get notes %s: %w", id, storage.ErrRecordNotFound)
			}
			return &models.Note{ID: "n1", Title: "old", Content: "body", Format: models.NoteFormatMarkdown}, nil
		},
		UpdateNoteFunc: func(ctx context.Context, note *models.Note) error { return nil },
	}
	c := New(mockIO, mockData, nil, nil)

	title := "new"
	require.NoError(t, c.EditNote(ctx, "n1", NoteEdit{Title: &title, Tags: []string{"x"}}))
	updated := mockData.UpdateNoteCalls()[0].Note
	assert.Equal(t, "new", updated.Title)
	assert.Equal(t, "body", updated.Content)
	assert.Equal(t, []string{"x"}, updated.Tags)

	err := c.EditNote(ctx, "missing", NoteEdit{Title: &title})
	require.Error(t, err)
	assert.Equal(t, "note not found with ID: missing", err.Error())
	assert.Len(t, mockData.UpdateNoteCalls(), 1)
}

func TestCli_ListNotes(t *testing.T) {
	ctx := context.Background()

	t.Run("empty", func(t *testing.T) {
		mockIO, out := newTestIO()
		mockData := &data.ServiceMock{
			ListNotesFunc: func(ctx context.Context) ([]*models.Note, error) { return nil, nil },
		}
		require.NoError(t, New(mockIO, mockData, nil, nil).List(ctx, models.RecordTypeNote))
		assert.Contains(t, out.String(), "No notes found.")
	})

	t.Run("newest first", func(t *testing.T) {
		mockIO, out := newTestIO()
		mockData := &data.ServiceMock{
			ListNotesFunc: func(ctx context.Context) ([]*models.Note, error) {
				return []*models.Note{
					{ID: "n1", Title: "older", Format: models.NoteFormatMarkdown, UpdatedAt: t0},
					{ID: "n2", Title: "newer", Format: models.NoteFormatMindMap, UpdatedAt: t0.Add(time.Hour), Tags: []string{"a", "b"}},
				}, nil
			},
		}
		require.NoError(t, New(mockIO, mockData, nil, nil).List(ctx, models.RecordTypeNote))

		s := out.String()
		assert.Contains(t, s, "Found 2 note(s):")
		assert.Contains(t, s, "1. newer")
		assert.Contains(t, s, "2. older")
		assert.Contains(t, s, "Tags:   a, b")
	})

	t.Run("storage error", func(t *testing.T) {
		mockIO, _ := newTestIO()
		mockData := &data.ServiceMock{
			ListAiAssistantsFunc: func(ctx context.Context) ([]*models.AiAssistant, error) {
				return nil, storage.ErrLocalStore
			},
		}
		err := New(mockIO, mockData, nil, nil).List(ctx, models.RecordTypeAiAssistant)
		assert.ErrorIs(t, err, storage.ErrLocalStore)
	})

	t.Run("unknown type", func(t *testing.T) {
		mockIO, _ := newTestIO()
		assert.Error(t, New(mockIO, &data.ServiceMock{}, nil, nil).List(ctx, "widgets"))
	})
}

func TestCli_GetNote(t *testing.T) {
	ctx := context.Background()
	mockIO, out := newTestIO()
	mockData := &data.ServiceMock{
		GetNoteFunc: func(ctx context.Context, id string) (*models.Note, error) {
			return &models.Note{
				ID:        "n1",
				Title:     "Design",
				Content:   "# Heading",
				Format:    models.NoteFormatMarkdown,
				Tags:      []string{"work", "draft"},
				UpdatedAt: t0,
			}, nil
		},
		GetRecordFunc: func(ctx context.Context, recordType models.RecordType, id string) (*models.Record, error) {
			return &models.Record{ID: id, Type: recordType, ServerVersion: 2, PendingSync: true}, nil
		},
	}

	require.NoError(t, New(mockIO, mockData, nil, nil).Get(ctx, models.RecordTypeNote, "n1"))

	s := out.String()
	assert.Contains(t, s, "Title:    Design")
	assert.Contains(t, s, "Tags:     work, draft")
	assert.Contains(t, s, "Updated:  2025-04-02T10:00:00Z")
	assert.Contains(t, s, "Sync:     pending (base v2)")
	assert.Contains(t, s, "# Heading")
	assert.NotContains(t, s, "Category:")
}

func TestCli_GetCategory_Conflict(t *testing.T) {
	ctx := context.Background()
	mockIO, out := newTestIO()
	mockData := &data.ServiceMock{
		GetCategoryFunc: func(ctx context.Context, id string) (*models.Category, error) {
			return &models.Category{ID: "c1", Name: "Home", Color: "#00ff00"}, nil
		},
		GetRecordFunc: func(ctx context.Context, recordType models.RecordType, id string) (*models.Record, error) {
			return &models.Record{ID: id, Conflict: &models.Conflict{ID: "cf-1"}}, nil
		},
	}

	require.NoError(t, New(mockIO, mockData, nil, nil).Get(ctx, models.RecordTypeCategory, "c1"))
	assert.Contains(t, out.String(), "Color:    #00ff00")
	assert.Contains(t, out.String(), "conflict cf-1")
}

func TestCli_GetAssistant_NotFound(t *testing.T) {
	mockIO, _ := newTestIO()
	mockData := &data.ServiceMock{
		GetAiAssistantFunc: func(ctx context.Context, id string) (*models.AiAssistant, error) {
			return nil, storage.ErrRecordNotFound
		},
	}

	err := New(mockIO, mockData, nil, nil).Get(context.Background(), models.RecordTypeAiAssistant, "a1")
	require.Error(t, err)
	assert.Equal(t, "AI assistant not found with ID: a1", err.Error())
}

func TestCli_Delete(t *testing.T) {
	ctx := context.Background()
	mockIO, out := newTestIO()
	mockData := &data.ServiceMock{
		DeleteCategoryFunc: func(ctx context.Context, id string) error { return nil },
		DeleteNoteFunc: func(ctx context.Context, id string) error {
			return fmt.Errorf("failed to delete: %w", storage.ErrRecordNotFound)
		},
	}
	c := New(mockIO, mockData, nil, nil)

	require.NoError(t, c.Delete(ctx, models.RecordTypeCategory, "c1"))
	assert.Contains(t, out.String(), "✓ Deleted category c1")

	err := c.Delete(ctx, models.RecordTypeNote, "n1")
	assert.EqualError(t, err, "note not found with ID: n1")

	assert.Error(t, c.Delete(ctx, models.RecordTypeNote, ""))
}

func TestCli_SyncCommandsRequireSession(t *testing.T) {
	ctx := context.Background()
	mockIO, _ := newTestIO()
	c := New(mockIO, &data.ServiceMock{}, nil, nil)

	assert.ErrorIs(t, c.Sync(ctx), ErrNotLoggedIn)
	assert.ErrorIs(t, c.Push(ctx), ErrNotLoggedIn)
	assert.ErrorIs(t, c.Conflicts(ctx), ErrNotLoggedIn)
	assert.ErrorIs(t, c.Resolve(ctx, "c1", models.ResolutionLocal, nil), ErrNotLoggedIn)
}

func TestCli_Sync(t *testing.T) {
	ctx := context.Background()
	mockIO, out := newTestIO()
	syncer := &SyncerMock{
		FullSyncFunc: func(ctx context.Context) (*models.SyncResult, error) {
			return &models.SyncResult{
				Notes: models.TypeResult{Pushed: 2, Pulled: 3, Conflicts: []*models.Conflict{
					{ID: "cf-1", Type: models.RecordTypeNote, RecordID: "n1",
						Local:  models.Snapshot{Version: 1, ContentHash: "0123456789abcdef"},
						Server: models.Snapshot{Version: 2, Deleted: true}},
				}},
				Categories: models.TypeResult{Pulled: 1},
			}, nil
		},
	}

	require.NoError(t, New(mockIO, &data.ServiceMock{}, syncer, nil).Sync(ctx))

	s := out.String()
	assert.Contains(t, s, fmt.Sprintf("%-14s %7d %7d %10d", "notes", 2, 3, 1))
	assert.Contains(t, s, fmt.Sprintf("%-14s %7d %7d %10d", "categories", 0, 1, 0))
	assert.Contains(t, s, "1 conflict(s) need resolution")
	assert.Contains(t, s, "Conflict ID: cf-1")
	assert.Contains(t, s, "hash 0123456789ab")
	assert.Contains(t, s, "Server:      deleted (v2")
	assert.NotContains(t, s, "completed successfully")
}

func TestCli_Sync_Errors(t *testing.T) {
	ctx := context.Background()
	mockIO, _ := newTestIO()
	syncer := &SyncerMock{
		FullSyncFunc: func(ctx context.Context) (*models.SyncResult, error) {
			return nil, clientsync.ErrSyncInProgress
		},
	}
	c := New(mockIO, &data.ServiceMock{}, syncer, nil)

	err := c.Sync(ctx)
	assert.ErrorIs(t, err, clientsync.ErrSyncInProgress)
	assert.Contains(t, err.Error(), "another synchronization is running")

	syncer.FullSyncFunc = func(ctx context.Context) (*models.SyncResult, error) {
		return nil, apiclient.ErrRemoteUnavailable
	}
	err = c.Sync(ctx)
	assert.ErrorIs(t, err, apiclient.ErrRemoteUnavailable)
}

func TestCli_Push(t *testing.T) {
	mockIO, out := newTestIO()
	syncer := &SyncerMock{
		PushChangesFunc: func(ctx context.Context) (*models.PushResult, error) {
			return &models.PushResult{
				Notes:        models.PushCounts{Created: 1, Updated: 2},
				AiAssistants: models.PushCounts{Errors: 1},
			}, nil
		},
	}

	require.NoError(t, New(mockIO, &data.ServiceMock{}, syncer, nil).Push(context.Background()))
	assert.Contains(t, out.String(), fmt.Sprintf("%-14s %7d %7d %7d", "notes", 1, 2, 0))
	assert.Contains(t, out.String(), fmt.Sprintf("%-14s %7d %7d %7d", "ai_assistants", 0, 0, 1))
}

func TestCli_Conflicts(t *testing.T) {
	ctx := context.Background()
	mockIO, out := newTestIO()
	syncer := &SyncerMock{
		ConflictsFunc: func(ctx context.Context) ([]*models.Conflict, error) { return nil, nil },
	}
	c := New(mockIO, &data.ServiceMock{}, syncer, nil)

	require.NoError(t, c.Conflicts(ctx))
	assert.Contains(t, out.String(), "No conflicts.")

	syncer.ConflictsFunc = func(ctx context.Context) ([]*models.Conflict, error) {
		return []*models.Conflict{{ID: "cf-9", Type: models.RecordTypeCategory, RecordID: "c1"}}, nil
	}
	require.NoError(t, c.Conflicts(ctx))
	assert.Contains(t, out.String(), "1. category c1")
	assert.Contains(t, out.String(), "Conflict ID: cf-9")
}

func TestCli_Resolve(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		resolveErr error
		name       string
		resolution models.Resolution
		wantErr    string
		data       json.RawMessage
		wantCalls  int
	}{
		{
			name:       "local",
			resolution: models.ResolutionLocal,
			wantCalls:  1,
		},
		{
			name:       "merge with data",
			resolution: models.ResolutionMerge,
			data:       json.RawMessage(`{"title":"merged","format":"markdown"}`),
			wantCalls:  1,
		},
		{
			name:       "unknown resolution",
			resolution: "mine",
			wantErr:    "unknown resolution",
		},
		{
			name:       "merge without data",
			resolution: models.ResolutionMerge,
			wantErr:    "merge resolution requires",
		},
		{
			name:       "invalid json",
			resolution: models.ResolutionMerge,
			data:       json.RawMessage(`{"title":`),
			wantErr:    "not valid JSON",
		},
		{
			name:       "unknown conflict",
			resolution: models.ResolutionServer,
			resolveErr: fmt.Errorf("resolve conflict cf-1: %w", apiclient.ErrUnknownConflict),
			wantErr:    "conflict cf-1 is not known to the server",
			wantCalls:  1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockIO, out := newTestIO()
			syncer := &SyncerMock{
				ResolveConflictFunc: func(ctx context.Context, conflictID string, resolution models.Resolution, data json.RawMessage) (*models.Record, error) {
					if tt.resolveErr != nil {
						return nil, tt.resolveErr
					}
					return &models.Record{ID: "n1", Type: models.RecordTypeNote, ServerVersion: 3}, nil
				},
			}

			err := New(mockIO, &data.ServiceMock{}, syncer, nil).Resolve(ctx, "cf-1", tt.resolution, tt.data)
			assert.Len(t, syncer.ResolveConflictCalls(), tt.wantCalls)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.resolution, syncer.ResolveConflictCalls()[0].Resolution)
			assert.Equal(t, tt.data, syncer.ResolveConflictCalls()[0].Data)
			assert.Contains(t, out.String(), "Version: 3")
		})
	}
}

func newSessions(session *storage.Session) *SessionsMock {
	return &SessionsMock{
		LoginFunc: func(ctx context.Context, serverURL, token string) (*storage.Session, error) {
			return &storage.Session{ServerURL: serverURL, UserID: "user-1", AccessToken: token}, nil
		},
		LogoutFunc: func(ctx context.Context) error { return nil },
		StoredFunc: func(ctx context.Context) (*storage.Session, error) {
			if session == nil {
				return nil, auth.ErrNotAuthenticated
			}
			return session, nil
		},
		ExpiredFunc: func(s *storage.Session) bool {
			return s.ExpiresAt != 0 && s.ExpiresAt < t0.Unix()
		},
		DeviceIDFunc: func(ctx context.Context) (string, error) { return "device-1", nil },
	}
}

func TestCli_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("token prompt", func(t *testing.T) {
		mockIO, out := newTestIO("  tok-123 \n")
		sessions := newSessions(nil)

		require.NoError(t, New(mockIO, &data.ServiceMock{}, nil, sessions).Login(ctx, "http://localhost:8080", ""))
		require.Len(t, sessions.LoginCalls(), 1)
		assert.Equal(t, "tok-123", sessions.LoginCalls()[0].Token)
		assert.Len(t, mockIO.ReadPasswordCalls(), 1)
		assert.Contains(t, out.String(), "User:   user-1")
		assert.Contains(t, out.String(), "Device: device-1")
	})

	t.Run("empty token", func(t *testing.T) {
		mockIO, _ := newTestIO("")
		sessions := newSessions(nil)

		err := New(mockIO, &data.ServiceMock{}, nil, sessions).Login(ctx, "http://localhost:8080", "")
		assert.Error(t, err)
		assert.Empty(t, sessions.LoginCalls())
	})

	t.Run("rejected token", func(t *testing.T) {
		mockIO, _ := newTestIO()
		sessions := newSessions(nil)
		sessions.LoginFunc = func(ctx context.Context, serverURL, token string) (*storage.Session, error) {
			return nil, auth.ErrTokenExpired
		}

		err := New(mockIO, &data.ServiceMock{}, nil, sessions).Login(ctx, "http://localhost:8080", "tok")
		assert.ErrorIs(t, err, auth.ErrTokenExpired)
	})
}

func TestCli_Logout(t *testing.T) {
	mockIO, out := newTestIO()
	sessions := newSessions(nil)

	require.NoError(t, New(mockIO, &data.ServiceMock{}, nil, sessions).Logout(context.Background()))
	assert.Len(t, sessions.LogoutCalls(), 1)
	assert.Contains(t, out.String(), "Logged out")
}

func TestCli_Status(t *testing.T) {
	ctx := context.Background()

	t.Run("not logged in", func(t *testing.T) {
		mockIO, out := newTestIO()
		require.NoError(t, New(mockIO, &data.ServiceMock{}, nil, newSessions(nil)).Status(ctx))
		assert.Contains(t, out.String(), "Not logged in.")
		assert.Contains(t, out.String(), "Device:  device-1")
		assert.NotContains(t, out.String(), "Last sync")
	})

	t.Run("expired token", func(t *testing.T) {
		mockIO, out := newTestIO()
		session := &storage.Session{ServerURL: "http://s", UserID: "u", ExpiresAt: t0.Add(-time.Hour).Unix()}
		require.NoError(t, New(mockIO, &data.ServiceMock{}, nil, newSessions(session)).Status(ctx))
		assert.Contains(t, out.String(), "expired")
	})

	t.Run("with sync state", func(t *testing.T) {
		mockIO, out := newTestIO()
		session := &storage.Session{ServerURL: "http://s", UserID: "u"}
		syncer := &SyncerMock{
			StatusFunc: func(ctx context.Context) (*clientsync.Status, error) {
				return &clientsync.Status{
					LastSyncAt: t0,
					Pending:    map[models.RecordType]int{models.RecordTypeNote: 4},
					Conflicts:  1,
				}, nil
			},
		}
		require.NoError(t, New(mockIO, &data.ServiceMock{}, syncer, newSessions(session)).Status(ctx))

		s := out.String()
		assert.Contains(t, s, "Token:   does not expire")
		assert.Contains(t, s, "Last sync: 2025-04-02T10:00:00Z")
		assert.Contains(t, s, "Pending notes:         4")
		assert.Contains(t, s, "Conflicts: 1")
	})
}

func TestSyncState(t *testing.T) {
	tests := []struct {
		record *models.Record
		want   string
	}{
		{nil, "unknown"},
		{&models.Record{ServerVersion: 4}, "synced (v4)"},
		{&models.Record{PendingSync: true}, "pending (new)"},
		{&models.Record{PendingSync: true, ServerVersion: 1}, "pending (base v1)"},
		{&models.Record{PendingSync: true, SyncError: "version ahead"}, "rejected by server: version ahead"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, syncState(tt.record))
		})
	}
}
