package watch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/gorilla/websocket"

	apiclient "github.com/iudanet/notekeeper/internal/client/api"
	clientsync "github.com/iudanet/notekeeper/internal/client/sync"
	"github.com/iudanet/notekeeper/internal/models"
	"github.com/iudanet/notekeeper/pkg/api"
)

const (
	wsPath    = "/api/v1/ws"
	writeWait = 10 * time.Second
)

//go:generate moq -out syncer_mock.go . Syncer

// Syncer запускает цикл синхронизации; реализуется sync.Coordinator
type Syncer interface {
	FullSync(ctx context.Context) (*models.SyncResult, error)
}

// Config настройки наблюдателя
type Config struct {
	BaseURL     string        // адрес сервера (http/https)
	DeviceID    string        // события с этим origin игнорируются
	Header      http.Header   // заголовки авторизации
	ReadTimeout time.Duration // сколько ждать ping/событие от сервера до переподключения
	MaxBackoff  time.Duration // максимальная пауза между переподключениями
}

// DefaultConfig returns default watcher configuration
func DefaultConfig() Config {
	return Config{
		ReadTimeout: 90 * time.Second,
		MaxBackoff:  time.Minute,
	}
}

// Watcher слушает websocket уведомления сервера и запускает синхронизацию
// при изменениях, сделанных другими устройствами
type Watcher struct {
	syncer  Syncer
	logger  *slog.Logger
	dialer  *websocket.Dialer
	backoff *backoff.ExponentialBackOff
	url     string
	cfg     Config
}

// New создает наблюдателя
func New(cfg Config, syncer Syncer, logger *slog.Logger) (*Watcher, error) {
	wsURL, err := websocketURL(cfg.BaseURL)
	if err != nil {
		return nil, err
	}

	def := DefaultConfig()
	if cfg.ReadTimeout <= 0 {
		cfg.ReadTimeout = def.ReadTimeout
	}
	if cfg.MaxBackoff <= 0 {
		cfg.MaxBackoff = def.MaxBackoff
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 500 * time.Millisecond
	b.MaxInterval = cfg.MaxBackoff

	return &Watcher{
		syncer:  syncer,
		logger:  logger,
		dialer:  &websocket.Dialer{HandshakeTimeout: 10 * time.Second},
		backoff: b,
		url:     wsURL,
		cfg:     cfg,
	}, nil
}

// URL адрес websocket endpoint
func (w *Watcher) URL() string {
	return w.url
}

// Run держит соединение до отмены ctx, переподключаясь с экспоненциальной паузой.
// Возвращает nil при отмене ctx, apiclient.ErrUnauthorized если сервер отклонил токен.
func (w *Watcher) Run(ctx context.Context) error {
	_, err := backoff.Retry(ctx, func() (struct{}, error) {
		err := w.session(ctx)
		if ctx.Err() != nil {
			return struct{}{}, backoff.Permanent(ctx.Err())
		}
		if err == nil {
			err = errors.New("connection closed")
		}
		return struct{}{}, err
	},
		backoff.WithBackOff(w.backoff),
		backoff.WithMaxElapsedTime(0),
		backoff.WithNotify(func(err error, next time.Duration) {
			w.logger.Warn("Watch connection lost, reconnecting", "error", err, "retry_in", next)
		}),
	)

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return nil
	}
	return err
}

// session одно websocket соединение: первичная синхронизация и чтение событий
func (w *Watcher) session(ctx context.Context) error {
	conn, resp, err := w.dialer.DialContext(ctx, w.url, w.cfg.Header)
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusUnauthorized {
			return backoff.Permanent(fmt.Errorf("watch: %w", apiclient.ErrUnauthorized))
		}
		return fmt.Errorf("dial %s: %w", w.url, err)
	}
	defer conn.Close()

	// Отмена ctx прерывает блокирующее чтение
	stop := context.AfterFunc(ctx, func() { _ = conn.Close() })
	defer stop()

	w.backoff.Reset()
	w.logger.Info("Watching server changes", "url", w.url)

	_ = conn.SetReadDeadline(time.Now().Add(w.cfg.ReadTimeout))
	conn.SetPingHandler(func(data string) error {
		_ = conn.SetReadDeadline(time.Now().Add(w.cfg.ReadTimeout))
		err := conn.WriteControl(websocket.PongMessage, []byte(data), time.Now().Add(writeWait))
		if errors.Is(err, websocket.ErrCloseSent) {
			return nil
		}
		return err
	})

	// События, пропущенные пока не было соединения
	w.trigger(ctx)

	for {
		_, message, err := conn.ReadMessage()
		if err != nil {
			return fmt.Errorf("read: %w", err)
		}
		_ = conn.SetReadDeadline(time.Now().Add(w.cfg.ReadTimeout))

		var event api.Event
		if err := json.Unmarshal(message, &event); err != nil {
			w.logger.Warn("Skipping malformed event", "error", err)
			continue
		}

		if event.Type != api.EventChanges {
			continue
		}
		if w.cfg.DeviceID != "" && event.Origin == w.cfg.DeviceID {
			w.logger.Debug("Skipping own changes event")
			continue
		}

		w.logger.Debug("Server changes received", "types", event.Types, "origin", event.Origin)
		w.trigger(ctx)
	}
}

func (w *Watcher) trigger(ctx context.Context) {
	_, err := w.syncer.FullSync(ctx)
	switch {
	case err == nil:
	case errors.Is(err, clientsync.ErrSyncInProgress):
		w.logger.Debug("Sync already running, event coalesced")
	default:
		// Координатор уже сообщил об ошибке через OnSyncError
		w.logger.Debug("Triggered sync failed", "error", err)
	}
}

// websocketURL строит адрес websocket endpoint по адресу API
func websocketURL(baseURL string) (string, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("invalid server url: %w", err)
	}

	switch u.Scheme {
	case "http":
		u.Scheme = "ws"
	case "https":
		u.Scheme = "wss"
	case "ws", "wss":
	default:
		return "", fmt.Errorf("invalid server url %q: unsupported scheme", baseURL)
	}

	u.Path = strings.TrimRight(u.Path, "/") + wsPath
	return u.String(), nil
}
