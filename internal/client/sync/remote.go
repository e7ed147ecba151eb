package sync

import (
	"context"
	"time"

	"github.com/iudanet/notekeeper/internal/models"
	"github.com/iudanet/notekeeper/pkg/api"
)

//go:generate moq -out remoteapi_mock.go . RemoteAPI

// RemoteAPI сетевая граница синхронизации.
// Реализуется internal/client/api.Client.
type RemoteAPI interface {
	// Pull возвращает записи, изменённые на сервере после since (нулевое since: все записи)
	Pull(ctx context.Context, since time.Time, types []models.RecordType) (*api.PullResponse, error)

	// Push отправляет локальные изменения
	Push(ctx context.Context, req *api.PushRequest) (*api.PushResponse, error)

	// ResolveConflict разрешает конфликт, зарегистрированный сервером
	ResolveConflict(ctx context.Context, conflictID string, req *api.ResolveConflictRequest) (*api.ResolveConflictResponse, error)
}
