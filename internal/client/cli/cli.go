// Package cli реализует пользовательские команды клиента поверх data сервиса и координатора синхронизации.
package cli

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/iudanet/notekeeper/internal/client/data"
	"github.com/iudanet/notekeeper/internal/client/iocli"
	"github.com/iudanet/notekeeper/internal/client/storage"
	clientsync "github.com/iudanet/notekeeper/internal/client/sync"
	"github.com/iudanet/notekeeper/internal/models"
)

// ErrNotLoggedIn команда требует сессии, а login не выполнен
var ErrNotLoggedIn = errors.New("not authenticated. Please run 'notekeeper login' first")

//go:generate moq -out syncer_mock.go . Syncer

// Syncer операции синхронизации, доступные из командной строки
type Syncer interface {
	FullSync(ctx context.Context) (*models.SyncResult, error)
	PushChanges(ctx context.Context) (*models.PushResult, error)
	Conflicts(ctx context.Context) ([]*models.Conflict, error)
	ResolveConflict(ctx context.Context, conflictID string, resolution models.Resolution, data json.RawMessage) (*models.Record, error)
	Status(ctx context.Context) (*clientsync.Status, error)
}

//go:generate moq -out sessions_mock.go . Sessions

// Sessions управление сессией клиента
type Sessions interface {
	Login(ctx context.Context, serverURL, token string) (*storage.Session, error)
	Logout(ctx context.Context) error
	Stored(ctx context.Context) (*storage.Session, error)
	Expired(session *storage.Session) bool
	DeviceID(ctx context.Context) (string, error)
}

type Cli struct {
	io       iocli.IO
	data     data.Service
	sync     Syncer
	sessions Sessions
}

// New создает Cli. sync может быть nil, если сессии нет: команды синхронизации
// тогда возвращают ErrNotLoggedIn.
func New(io iocli.IO, dataService data.Service, syncer Syncer, sessions Sessions) *Cli {
	return &Cli{
		io:       io,
		data:     dataService,
		sync:     syncer,
		sessions: sessions,
	}
}

func (c *Cli) syncer() (Syncer, error) {
	if c.sync == nil {
		return nil, ErrNotLoggedIn
	}
	return c.sync, nil
}
