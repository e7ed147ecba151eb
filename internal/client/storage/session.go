package storage

import "context"

//go:generate moq -out sessionstorage_mock.go . SessionStorage

// SessionStorage хранит данные авторизации клиента и идентификатор устройства
type SessionStorage interface {
	// SaveSession stores the current session, replacing the previous one
	SaveSession(ctx context.Context, session *Session) error

	// GetSession retrieves the current session
	// Returns ErrSessionNotFound if client is not logged in
	GetSession(ctx context.Context) (*Session, error)

	// DeleteSession removes the session (logout)
	DeleteSession(ctx context.Context) error

	// GetDeviceID returns the stored device id or "" if none was saved yet
	GetDeviceID(ctx context.Context) (string, error)

	// SaveDeviceID stores the device id; it survives logout
	SaveDeviceID(ctx context.Context, deviceID string) error
}

// Session данные авторизации клиента
type Session struct {
	ServerURL   string `json:"server_url"`
	UserID      string `json:"user_id"`
	AccessToken string `json:"access_token"`
	ExpiresAt   int64  `json:"expires_at"` // unix seconds, 0 если срок не ограничен
}
