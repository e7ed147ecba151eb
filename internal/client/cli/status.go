package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/notekeeper/internal/client/auth"
	"github.com/iudanet/notekeeper/internal/models"
)

// Status выводит состояние сессии и синхронизации
func (c *Cli) Status(ctx context.Context) error {
	c.io.Println("=== Status ===")
	c.io.Println()

	session, err := c.sessions.Stored(ctx)
	switch {
	case errors.Is(err, auth.ErrNotAuthenticated):
		c.io.Println("Not logged in.")
		c.io.Println("Use 'notekeeper login --server <url>' to log in.")
	case err != nil:
		return fmt.Errorf("failed to get session: %w", err)
	default:
		c.io.Printf("Server:  %s\n", session.ServerURL)
		c.io.Printf("User:    %s\n", session.UserID)
		switch {
		case session.ExpiresAt == 0:
			c.io.Println("Token:   does not expire")
		case c.sessions.Expired(session):
			c.io.Println("Token:   expired, please login again")
		default:
			c.io.Printf("Token:   valid until %s\n", timestamp(time.Unix(session.ExpiresAt, 0)))
		}
	}

	deviceID, err := c.sessions.DeviceID(ctx)
	if err != nil {
		return err
	}
	c.io.Printf("Device:  %s\n", deviceID)

	if c.sync == nil {
		return nil
	}

	st, err := c.sync.Status(ctx)
	if err != nil {
		return fmt.Errorf("failed to get sync status: %w", err)
	}

	c.io.Println()
	c.io.Printf("Last sync: %s\n", timestamp(st.LastSyncAt))
	for _, t := range models.AllRecordTypes {
		c.io.Printf("Pending %-14s %d\n", string(t)+":", st.Pending[t])
	}
	c.io.Printf("Conflicts: %d\n", st.Conflicts)
	if st.Syncing {
		c.io.Println("Synchronization in progress")
	}
	return nil
}
