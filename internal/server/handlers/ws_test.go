package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type attached struct {
	userID   string
	deviceID string
}

type fakeHub struct {
	err   error
	calls []attached
	mu    sync.Mutex
}

func (h *fakeHub) Attach(conn *websocket.Conn, userID, deviceID string) error {
	h.mu.Lock()
	h.calls = append(h.calls, attached{userID: userID, deviceID: deviceID})
	h.mu.Unlock()

	if h.err != nil {
		_ = conn.Close()
		return h.err
	}
	_ = conn.WriteMessage(websocket.TextMessage, []byte("hello"))
	return nil
}

func (h *fakeHub) Calls() []attached {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]attached(nil), h.calls...)
}

// withTestUser эмулирует auth middleware: пользователь и устройство из заголовков
func withTestUser(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if user := r.Header.Get("X-Test-User"); user != "" {
			r = r.WithContext(WithUser(r.Context(), user, r.Header.Get("X-Device-ID")))
		}
		next(w, r)
	}
}

func TestWebSocketHandler_HandleConnection(t *testing.T) {
	tests := []struct {
		header     http.Header
		name       string
		query      string
		wantDevice string
	}{
		{
			name:       "device from header",
			header:     http.Header{"X-Test-User": {"u1"}, "X-Device-ID": {"dev-a"}},
			wantDevice: "dev-a",
		},
		{
			name:       "device from query",
			header:     http.Header{"X-Test-User": {"u1"}},
			query:      "?device_id=dev-q",
			wantDevice: "dev-q",
		},
		{
			name:   "no device",
			header: http.Header{"X-Test-User": {"u1"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hub := &fakeHub{}
			h := NewWebSocketHandler(setupTestLogger(), hub)
			server := httptest.NewServer(withTestUser(h.HandleConnection))
			defer server.Close()

			url := "ws" + strings.TrimPrefix(server.URL, "http") + tt.query
			conn, _, err := websocket.DefaultDialer.Dial(url, tt.header)
			require.NoError(t, err)
			defer conn.Close()

			_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
			_, msg, err := conn.ReadMessage()
			require.NoError(t, err)
			assert.Equal(t, "hello", string(msg))

			require.Len(t, hub.Calls(), 1)
			assert.Equal(t, attached{userID: "u1", deviceID: tt.wantDevice}, hub.Calls()[0])
		})
	}
}

func TestWebSocketHandler_Unauthorized(t *testing.T) {
	hub := &fakeHub{}
	h := NewWebSocketHandler(setupTestLogger(), hub)
	server := httptest.NewServer(withTestUser(h.HandleConnection))
	defer server.Close()

	url := "ws" + strings.TrimPrefix(server.URL, "http")
	_, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Empty(t, hub.Calls())
}

func TestWebSocketHandler_NotUpgrade(t *testing.T) {
	hub := &fakeHub{}
	h := NewWebSocketHandler(setupTestLogger(), hub)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/ws", nil)
	req = req.WithContext(WithUser(req.Context(), "u1", "dev-a"))
	w := httptest.NewRecorder()
	h.HandleConnection(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, hub.Calls())
}

func TestWebSocketHandler_HubRejects(t *testing.T) {
	hub := &fakeHub{err: errors.New("too many connections")}
	h := NewWebSocketHandler(setupTestLogger(), hub)
	server := httptest.NewServer(withTestUser(h.HandleConnection))
	defer server.Close()

	url := "ws" + strings.TrimPrefix(server.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, http.Header{"X-Test-User": {"u1"}})
	require.NoError(t, err)
	defer conn.Close()

	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, _, err = conn.ReadMessage()
	assert.Error(t, err)
	assert.Len(t, hub.Calls(), 1)
}
