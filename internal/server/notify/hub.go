// Package notify рассылает websocket уведомления об изменениях
// всем подключенным устройствам пользователя.
package notify

import (
	"encoding/json"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/iudanet/notekeeper/internal/models"
	"github.com/iudanet/notekeeper/pkg/api"
)

// ErrTooManyConnections превышен лимит соединений пользователя
var ErrTooManyConnections = errors.New("too many connections for user")

// ErrHubClosed hub остановлен
var ErrHubClosed = errors.New("notification hub is closed")

// Config настройки hub
type Config struct {
	MaxConnPerUser int
	WriteWait      time.Duration
	PongWait       time.Duration
	PingPeriod     time.Duration // должен быть меньше PongWait
	SendBuffer     int
}

// DefaultConfig returns default hub configuration
func DefaultConfig() Config {
	return Config{
		MaxConnPerUser: 5,
		WriteWait:      10 * time.Second,
		PongWait:       60 * time.Second,
		PingPeriod:     54 * time.Second,
		SendBuffer:     16,
	}
}

// Hub хранит соединения пользователей
type Hub struct {
	logger  *slog.Logger
	clients map[string]map[string]*client // user id -> client id -> client
	cfg     Config
	mu      sync.RWMutex
	closed  bool
}

// NewHub создает hub
func NewHub(cfg Config, logger *slog.Logger) *Hub {
	def := DefaultConfig()
	if cfg.MaxConnPerUser <= 0 {
		cfg.MaxConnPerUser = def.MaxConnPerUser
	}
	if cfg.WriteWait <= 0 {
		cfg.WriteWait = def.WriteWait
	}
	if cfg.PongWait <= 0 {
		cfg.PongWait = def.PongWait
	}
	if cfg.PingPeriod <= 0 || cfg.PingPeriod >= cfg.PongWait {
		cfg.PingPeriod = cfg.PongWait * 9 / 10
	}
	if cfg.SendBuffer <= 0 {
		cfg.SendBuffer = def.SendBuffer
	}

	return &Hub{
		logger:  logger,
		clients: make(map[string]map[string]*client),
		cfg:     cfg,
	}
}

// Attach регистрирует соединение и запускает его read/write циклы.
// При ошибке соединение закрывается.
func (h *Hub) Attach(conn *websocket.Conn, userID, deviceID string) error {
	c := &client{
		id:       uuid.New().String(),
		userID:   userID,
		deviceID: deviceID,
		conn:     conn,
		hub:      h,
		send:     make(chan []byte, h.cfg.SendBuffer),
	}

	if err := h.register(c); err != nil {
		_ = conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.ClosePolicyViolation, err.Error()),
			time.Now().Add(h.cfg.WriteWait))
		_ = conn.Close()
		return err
	}

	go c.writePump()
	go c.readPump()

	return nil
}

// Notify отправляет событие changes всем соединениям пользователя,
// кроме устройства-источника изменений
func (h *Hub) Notify(userID, originDeviceID string, types []models.RecordType) {
	event := api.Event{Type: api.EventChanges, Origin: originDeviceID}
	for _, t := range types {
		event.Types = append(event.Types, string(t))
	}

	msg, err := json.Marshal(event)
	if err != nil {
		h.logger.Error("Failed to marshal event", "error", err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	sent := 0
	for _, c := range h.clients[userID] {
		if originDeviceID != "" && c.deviceID == originDeviceID {
			continue
		}
		select {
		case c.send <- msg:
			sent++
		default:
			// Клиент не успевает читать: отключаем, он переподключится и сделает полный sync
			h.logger.Warn("Client send buffer full, dropping connection", "client_id", c.id, "user_id", userID)
			h.removeLocked(c)
		}
	}

	h.logger.Debug("Change notification sent", "user_id", userID, "origin", originDeviceID, "recipients", sent)
}

// Connections возвращает общее количество активных соединений
func (h *Hub) Connections() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	n := 0
	for _, set := range h.clients {
		n += len(set)
	}
	return n
}

// UserConnections возвращает количество соединений пользователя
func (h *Hub) UserConnections(userID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[userID])
}

// Close закрывает все соединения; новые подключения отклоняются
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.closed = true
	for _, set := range h.clients {
		for _, c := range set {
			h.removeLocked(c)
		}
	}
}

func (h *Hub) register(c *client) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return ErrHubClosed
	}

	set := h.clients[c.userID]
	if len(set) >= h.cfg.MaxConnPerUser {
		h.logger.Warn("Max connections reached", "user_id", c.userID)
		return ErrTooManyConnections
	}
	if set == nil {
		set = make(map[string]*client)
		h.clients[c.userID] = set
	}
	set[c.id] = c

	h.logger.Info("Client connected", "client_id", c.id, "user_id", c.userID, "device_id", c.deviceID)
	return nil
}

func (h *Hub) unregister(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.removeLocked(c)
}

// removeLocked удаляет клиента и закрывает его очередь; writePump закроет соединение
func (h *Hub) removeLocked(c *client) {
	set, ok := h.clients[c.userID]
	if !ok {
		return
	}
	if _, ok := set[c.id]; !ok {
		return
	}

	delete(set, c.id)
	if len(set) == 0 {
		delete(h.clients, c.userID)
	}
	close(c.send)

	h.logger.Info("Client disconnected", "client_id", c.id, "user_id", c.userID)
}
