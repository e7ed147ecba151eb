package cli

import (
	"context"
	"fmt"
	"strings"
)

// Login сохраняет access токен, выданный сервером. Пустой token запрашивается без эха.
func (c *Cli) Login(ctx context.Context, serverURL, token string) error {
	c.io.Println("=== Login ===")
	c.io.Println()

	if token == "" {
		var err error
		token, err = c.io.ReadPassword("Access token: ")
		if err != nil {
			return fmt.Errorf("failed to read token: %w", err)
		}
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return fmt.Errorf("access token cannot be empty")
	}

	session, err := c.sessions.Login(ctx, serverURL, token)
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	deviceID, err := c.sessions.DeviceID(ctx)
	if err != nil {
		return err
	}

	c.io.Println("✓ Login successful!")
	c.io.Printf("Server: %s\n", session.ServerURL)
	c.io.Printf("User:   %s\n", session.UserID)
	c.io.Printf("Device: %s\n", deviceID)
	return nil
}

// Logout удаляет сессию. Локальные данные сохраняются.
func (c *Cli) Logout(ctx context.Context) error {
	if err := c.sessions.Logout(ctx); err != nil {
		return fmt.Errorf("logout failed: %w", err)
	}
	c.io.Println("✓ Logged out. Local data is kept on this device.")
	return nil
}
