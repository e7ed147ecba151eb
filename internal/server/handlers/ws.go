package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/iudanet/notekeeper/pkg/api"
)

// ConnectionHub принимает websocket соединения аутентифицированных клиентов
type ConnectionHub interface {
	Attach(conn *websocket.Conn, userID, deviceID string) error
}

// WebSocketHandler обрабатывает подключения к GET /api/v1/ws
type WebSocketHandler struct {
	logger   *slog.Logger
	hub      ConnectionHub
	upgrader websocket.Upgrader
}

// NewWebSocketHandler создает handler websocket уведомлений
func NewWebSocketHandler(logger *slog.Logger, hub ConnectionHub) *WebSocketHandler {
	return &WebSocketHandler{
		logger: logger,
		hub:    hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Клиенты не браузерные, авторизация по bearer токену
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// HandleConnection обновляет соединение до websocket и передает его в hub
func (h *WebSocketHandler) HandleConnection(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserID(r.Context())
	if !ok {
		sendError(h.logger, w, http.StatusUnauthorized, api.CodeUnauthorized, "unauthorized")
		return
	}

	deviceID := GetDeviceID(r.Context())
	if deviceID == "" {
		deviceID = r.URL.Query().Get("device_id")
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrader уже отправил ответ с ошибкой
		h.logger.Warn("Failed to upgrade connection", "error", err, "user_id", userID)
		return
	}

	if err := h.hub.Attach(conn, userID, deviceID); err != nil {
		h.logger.Warn("Connection rejected", "error", err, "user_id", userID, "device_id", deviceID)
	}
}
