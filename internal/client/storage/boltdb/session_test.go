package boltdb

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/notekeeper/internal/client/storage"
)

func TestSession_SaveGetDelete(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	_, err := store.GetSession(ctx)
	assert.ErrorIs(t, err, storage.ErrSessionNotFound)

	session := &storage.Session{
		ServerURL:   "http://localhost:8080",
		UserID:      "user-1",
		AccessToken: "token-1",
		ExpiresAt:   1893456000,
	}
	require.NoError(t, store.SaveSession(ctx, session))

	got, err := store.GetSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, session, got)

	// Повторный login заменяет сессию
	session.AccessToken = "token-2"
	require.NoError(t, store.SaveSession(ctx, session))
	got, err = store.GetSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, "token-2", got.AccessToken)

	require.NoError(t, store.DeleteSession(ctx))
	_, err = store.GetSession(ctx)
	assert.ErrorIs(t, err, storage.ErrSessionNotFound)

	// Удаление отсутствующей сессии не ошибка
	assert.NoError(t, store.DeleteSession(ctx))
}

func TestDeviceID_SurvivesLogoutAndReopen(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "device.db")

	store, err := New(ctx, dbPath)
	require.NoError(t, err)

	id, err := store.GetDeviceID(ctx)
	require.NoError(t, err)
	assert.Empty(t, id)

	require.NoError(t, store.SaveDeviceID(ctx, "device-42"))
	require.NoError(t, store.SaveSession(ctx, &storage.Session{UserID: "u"}))
	require.NoError(t, store.DeleteSession(ctx))
	require.NoError(t, store.Close())

	store, err = New(ctx, dbPath)
	require.NoError(t, err)
	defer store.Close()

	id, err = store.GetDeviceID(ctx)
	require.NoError(t, err)
	assert.Equal(t, "device-42", id)
}

func TestSession_ClosedStorage(t *testing.T) {
	ctx := context.Background()
	store, err := New(ctx, filepath.Join(t.TempDir(), "closed.db"))
	require.NoError(t, err)
	require.NoError(t, store.Close())

	_, err = store.GetSession(ctx)
	assert.ErrorIs(t, err, storage.ErrStorageClosed)
	assert.ErrorIs(t, store.SaveDeviceID(ctx, "x"), storage.ErrStorageClosed)
}
