// Package auth управляет сессией клиента: access токеном, выданным сервером, и id устройства.
package auth

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/iudanet/notekeeper/internal/client/storage"
)

var (
	// ErrNotAuthenticated клиент не выполнил login
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrTokenExpired срок действия сохраненного токена истек
	ErrTokenExpired = errors.New("access token has expired")

	// ErrInvalidToken токен не удалось разобрать
	ErrInvalidToken = errors.New("invalid access token")
)

// tokenClaims claims access токена сервера
type tokenClaims struct {
	UserID string `json:"user_id"`
	jwt.RegisteredClaims
}

// Service управляет сессией клиента
type Service struct {
	store storage.SessionStorage
	now   func() time.Time
	newID func() string
}

// NewService создает сервис сессий поверх локального хранилища
func NewService(store storage.SessionStorage) *Service {
	return &Service{
		store: store,
		now:   time.Now,
		newID: uuid.NewString,
	}
}

// Login сохраняет сессию для токена, выданного сервером.
// Подпись токена проверяет сервер; клиент только читает user_id и срок действия.
func (s *Service) Login(ctx context.Context, serverURL, token string) (*storage.Session, error) {
	u, err := url.Parse(serverURL)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return nil, fmt.Errorf("invalid server url %q", serverURL)
	}

	claims := &tokenClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	if claims.UserID == "" {
		return nil, fmt.Errorf("%w: missing user_id", ErrInvalidToken)
	}

	session := &storage.Session{
		ServerURL:   serverURL,
		UserID:      claims.UserID,
		AccessToken: token,
	}
	if claims.ExpiresAt != nil {
		session.ExpiresAt = claims.ExpiresAt.Unix()
		if !s.now().Before(claims.ExpiresAt.Time) {
			return nil, ErrTokenExpired
		}
	}

	if err := s.store.SaveSession(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}
	return session, nil
}

// Logout удаляет сессию. id устройства сохраняется.
func (s *Service) Logout(ctx context.Context) error {
	if err := s.store.DeleteSession(ctx); err != nil && !errors.Is(err, storage.ErrSessionNotFound) {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// Current возвращает действующую сессию
func (s *Service) Current(ctx context.Context) (*storage.Session, error) {
	session, err := s.Stored(ctx)
	if err != nil {
		return nil, err
	}
	if s.Expired(session) {
		return session, ErrTokenExpired
	}
	return session, nil
}

// Stored возвращает сохраненную сессию без проверки срока действия
func (s *Service) Stored(ctx context.Context) (*storage.Session, error) {
	session, err := s.store.GetSession(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrSessionNotFound) {
			return nil, ErrNotAuthenticated
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return session, nil
}

// Expired сообщает, истек ли токен сессии
func (s *Service) Expired(session *storage.Session) bool {
	return session.ExpiresAt != 0 && !s.now().Before(time.Unix(session.ExpiresAt, 0))
}

// DeviceID возвращает id устройства, создавая его при первом обращении
func (s *Service) DeviceID(ctx context.Context) (string, error) {
	id, err := s.store.GetDeviceID(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to get device id: %w", err)
	}
	if id != "" {
		return id, nil
	}

	id = s.newID()
	if err := s.store.SaveDeviceID(ctx, id); err != nil {
		return "", fmt.Errorf("failed to save device id: %w", err)
	}
	return id, nil
}
