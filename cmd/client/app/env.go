package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	apiclient "github.com/iudanet/notekeeper/internal/client/api"
	"github.com/iudanet/notekeeper/internal/client/auth"
	"github.com/iudanet/notekeeper/internal/client/cli"
	"github.com/iudanet/notekeeper/internal/client/data"
	"github.com/iudanet/notekeeper/internal/client/storage"
	"github.com/iudanet/notekeeper/internal/client/storage/boltdb"
	clientsync "github.com/iudanet/notekeeper/internal/client/sync"
	"github.com/iudanet/notekeeper/internal/logging"
)

// env открытые на время одной команды ресурсы клиента
type env struct {
	logger      *slog.Logger
	logCloser   io.Closer
	store       *boltdb.Storage
	sessions    *auth.Service
	session     *storage.Session
	api         *apiclient.Client
	coordinator *clientsync.Coordinator
	cli         *cli.Cli
	deviceID    string
}

// open открывает локальную базу и, если есть действующая сессия, собирает координатор.
// opts nil означает координатор без автосинхронизации.
func (r *root) open(ctx context.Context, opts *clientsync.Options) (*env, error) {
	logger, closer := logging.New(r.loggingConfig(), os.Stderr)

	store, err := boltdb.New(ctx, r.v.GetString("db"))
	if err != nil {
		_ = closer.Close()
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	e := &env{
		logger:    logger,
		logCloser: closer,
		store:     store,
		sessions:  auth.NewService(store),
	}

	e.deviceID, err = e.sessions.DeviceID(ctx)
	if err != nil {
		e.Close()
		return nil, err
	}

	var syncer cli.Syncer
	session, err := e.sessions.Current(ctx)
	switch {
	case err == nil:
		if opts == nil {
			opts = &clientsync.Options{DisableAutoSync: true}
		}
		e.session = session
		e.api = apiclient.NewClient(session.ServerURL, session.AccessToken, e.deviceID)
		e.coordinator = clientsync.NewCoordinator(e.api, store, store, logger, opts)
		syncer = e.coordinator
	case errors.Is(err, auth.ErrNotAuthenticated):
	case errors.Is(err, auth.ErrTokenExpired):
		logger.Warn("Access token has expired, please login again")
	default:
		e.Close()
		return nil, err
	}

	e.cli = cli.New(r.io, data.NewService(store), syncer, e.sessions)
	return e, nil
}

// Close останавливает координатор и закрывает базу
func (e *env) Close() {
	if e.coordinator != nil {
		e.coordinator.Destroy()
	}
	if err := e.store.Close(); err != nil {
		e.logger.Error("Failed to close database", "error", err)
	}
	_ = e.logCloser.Close()
}

// run выполняет команду cli с открытым окружением
func (r *root) run(fn func(ctx context.Context, c *cli.Cli, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		e, err := r.open(ctx, nil)
		if err != nil {
			return err
		}
		defer e.Close()
		return fn(ctx, e.cli, args)
	}
}
