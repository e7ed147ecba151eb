package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	apiclient "github.com/iudanet/notekeeper/internal/client/api"
	"github.com/iudanet/notekeeper/internal/models"
)

// Conflicts выводит конфликты, ожидающие разрешения
func (c *Cli) Conflicts(ctx context.Context) error {
	s, err := c.syncer()
	if err != nil {
		return err
	}

	conflicts, err := s.Conflicts(ctx)
	if err != nil {
		return fmt.Errorf("failed to list conflicts: %w", err)
	}

	c.io.Println("=== Conflicts ===")
	c.io.Println()
	if len(conflicts) == 0 {
		c.io.Println("No conflicts.")
		return nil
	}

	c.printConflicts(conflicts)
	return nil
}

func (c *Cli) printConflicts(conflicts []*models.Conflict) {
	for i, cf := range conflicts {
		c.io.Printf("%d. %s %s\n", i+1, recordNoun(cf.Type), cf.RecordID)
		c.io.Printf("   Conflict ID: %s\n", cf.ID)
		c.io.Printf("   Local:       %s\n", describeSnapshot(cf.Local))
		c.io.Printf("   Server:      %s\n", describeSnapshot(cf.Server))
		c.io.Println()
	}
	c.io.Println("Use 'notekeeper resolve <conflict-id> --use local|server|merge' to resolve.")
}

func describeSnapshot(s models.Snapshot) string {
	if s.Deleted {
		return fmt.Sprintf("deleted (v%d, %s)", s.Version, timestamp(s.UpdatedAt))
	}
	hash := s.ContentHash
	if len(hash) > 12 {
		hash = hash[:12]
	}
	return fmt.Sprintf("v%d, %s, hash %s", s.Version, timestamp(s.UpdatedAt), hash)
}

// Resolve разрешает конфликт. Для merge data содержит итоговое содержимое записи.
func (c *Cli) Resolve(ctx context.Context, conflictID string, resolution models.Resolution, data json.RawMessage) error {
	s, err := c.syncer()
	if err != nil {
		return err
	}
	if !resolution.Valid() {
		return fmt.Errorf("unknown resolution %q. Use: local, server, or merge", resolution)
	}
	if resolution == models.ResolutionMerge && len(data) == 0 {
		return fmt.Errorf("merge resolution requires --data or --data-file")
	}
	if len(data) > 0 && !json.Valid(data) {
		return fmt.Errorf("merged data is not valid JSON")
	}

	record, err := s.ResolveConflict(ctx, conflictID, resolution, data)
	if err != nil {
		if errors.Is(err, apiclient.ErrUnknownConflict) {
			return fmt.Errorf("conflict %s is not known to the server (already resolved?)", conflictID)
		}
		return fmt.Errorf("failed to resolve conflict: %w", err)
	}

	c.io.Println("✓ Conflict resolved")
	c.io.Printf("Record:  %s %s\n", recordNoun(record.Type), record.ID)
	c.io.Printf("Version: %d\n", record.ServerVersion)
	return nil
}
