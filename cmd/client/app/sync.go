package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	apiclient "github.com/iudanet/notekeeper/internal/client/api"
	"github.com/iudanet/notekeeper/internal/client/cli"
	clientsync "github.com/iudanet/notekeeper/internal/client/sync"
	"github.com/iudanet/notekeeper/internal/client/watch"
	"github.com/iudanet/notekeeper/internal/models"
)

func (r *root) syncCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Push local changes and pull changes from the server",
		Args:  cobra.NoArgs,
		RunE: r.run(func(ctx context.Context, c *cli.Cli, _ []string) error {
			return c.Sync(ctx)
		}),
	}
}

func (r *root) pushCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "push",
		Short: "Push local changes without pulling",
		Args:  cobra.NoArgs,
		RunE: r.run(func(ctx context.Context, c *cli.Cli, _ []string) error {
			return c.Push(ctx)
		}),
	}
}

func (r *root) conflictsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "conflicts",
		Short: "List conflicts waiting for resolution",
		Args:  cobra.NoArgs,
		RunE: r.run(func(ctx context.Context, c *cli.Cli, _ []string) error {
			return c.Conflicts(ctx)
		}),
	}
}

func (r *root) resolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve <conflict-id>",
		Short: "Resolve a conflict",
		Long: `Resolve a conflict detected during sync.

  --use local   keep this device's version
  --use server  accept the server's version
  --use merge   store the merged record passed with --data or --data-file ('-' reads stdin)`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			use, _ := cmd.Flags().GetString("use")
			data, err := mergeData(cmd)
			if err != nil {
				return err
			}
			return r.run(func(ctx context.Context, c *cli.Cli, args []string) error {
				return c.Resolve(ctx, args[0], models.Resolution(use), data)
			})(cmd, args)
		},
	}
	cmd.Flags().String("use", "", "Resolution: local, server or merge")
	cmd.Flags().String("data", "", "Merged record JSON")
	cmd.Flags().String("data-file", "", "Read merged record JSON from file")
	if err := cmd.MarkFlagRequired("use"); err != nil {
		slog.Error("Failed to mark use flag as required", "error", err)
	}
	return cmd
}

func mergeData(cmd *cobra.Command) (json.RawMessage, error) {
	path, _ := cmd.Flags().GetString("data-file")
	switch path {
	case "":
		data, _ := cmd.Flags().GetString("data")
		if data == "" {
			return nil, nil
		}
		return json.RawMessage(data), nil
	case "-":
		b, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("failed to read merged data: %w", err)
		}
		return b, nil
	default:
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read merged data: %w", err)
		}
		return b, nil
	}
}

func (r *root) watchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Sync periodically and whenever another device changes data",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			opts := &clientsync.Options{
				SyncInterval: r.v.GetDuration("sync-interval"),
				OnSyncComplete: func(res *models.SyncResult) {
					r.io.Printf("[%s] synced: pushed %d, pulled %d\n",
						res.FinishedAt.Local().Format(time.TimeOnly), res.TotalPushed(), res.TotalPulled())
				},
				OnSyncError: func(err error) {
					if !errors.Is(err, clientsync.ErrSyncInProgress) {
						r.io.Printf("sync failed: %v\n", err)
					}
				},
				OnConflict: func(conflicts []*models.Conflict) {
					r.io.Printf("⚠ %d conflict(s) detected, run 'notekeeper conflicts'\n", len(conflicts))
				},
			}

			e, err := r.open(ctx, opts)
			if err != nil {
				return err
			}
			defer e.Close()

			if e.coordinator == nil {
				return cli.ErrNotLoggedIn
			}

			w, err := watch.New(watch.Config{
				BaseURL:  e.session.ServerURL,
				DeviceID: e.deviceID,
				Header:   e.api.AuthHeader(),
			}, e.coordinator, e.logger)
			if err != nil {
				return err
			}

			r.io.Printf("Watching %s for changes. Press Ctrl+C to stop.\n", w.URL())
			if err := w.Run(ctx); err != nil {
				if errors.Is(err, apiclient.ErrUnauthorized) {
					return fmt.Errorf("server rejected the access token, please login again: %w", err)
				}
				return err
			}
			return nil
		},
	}
}
