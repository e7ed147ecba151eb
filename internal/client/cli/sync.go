package cli

import (
	"context"
	"errors"
	"fmt"

	clientsync "github.com/iudanet/notekeeper/internal/client/sync"
	"github.com/iudanet/notekeeper/internal/models"
)

// Sync выполняет полный цикл синхронизации и выводит итоги по типам
func (c *Cli) Sync(ctx context.Context) error {
	s, err := c.syncer()
	if err != nil {
		return err
	}

	c.io.Println("=== Synchronization ===")
	c.io.Println()

	result, err := s.FullSync(ctx)
	if err != nil {
		if errors.Is(err, clientsync.ErrSyncInProgress) {
			return fmt.Errorf("another synchronization is running, try again later: %w", err)
		}
		return fmt.Errorf("synchronization failed: %w", err)
	}

	c.io.Printf("%-14s %7s %7s %10s\n", "TYPE", "PUSHED", "PULLED", "CONFLICTS")
	for _, t := range models.AllRecordTypes {
		r := result.For(t)
		c.io.Printf("%-14s %7d %7d %10d\n", t, r.Pushed, r.Pulled, len(r.Conflicts))
	}
	c.io.Println()

	conflicts := result.AllConflicts()
	if len(conflicts) == 0 {
		c.io.Println("✓ Synchronization completed successfully!")
		return nil
	}

	c.io.Printf("⚠ %d conflict(s) need resolution:\n", len(conflicts))
	c.printConflicts(conflicts)
	return nil
}

// Push отправляет только локальные изменения
func (c *Cli) Push(ctx context.Context) error {
	s, err := c.syncer()
	if err != nil {
		return err
	}

	result, err := s.PushChanges(ctx)
	if err != nil {
		return fmt.Errorf("push failed: %w", err)
	}

	c.io.Println("=== Push ===")
	c.io.Println()
	c.io.Printf("%-14s %7s %7s %7s\n", "TYPE", "CREATED", "UPDATED", "ERRORS")
	for _, t := range models.AllRecordTypes {
		r := result.For(t)
		c.io.Printf("%-14s %7d %7d %7d\n", t, r.Created, r.Updated, r.Errors)
	}
	return nil
}
