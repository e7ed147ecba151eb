package notify

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/notekeeper/internal/models"
	"github.com/iudanet/notekeeper/pkg/api"
)

func setupTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))
}

// hubServer поднимает websocket endpoint: user и device берутся из query
func hubServer(t *testing.T, hub *Hub) *httptest.Server {
	t.Helper()

	upgrader := websocket.Upgrader{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		_ = hub.Attach(conn, r.URL.Query().Get("user"), r.URL.Query().Get("device"))
	}))
	t.Cleanup(server.Close)
	return server
}

func dial(t *testing.T, server *httptest.Server, user, device string) *websocket.Conn {
	t.Helper()

	url := "ws" + strings.TrimPrefix(server.URL, "http") + "/?user=" + user + "&device=" + device
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func readEvent(t *testing.T, conn *websocket.Conn) api.Event {
	t.Helper()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var ev api.Event
	require.NoError(t, conn.ReadJSON(&ev))
	return ev
}

func TestHub_NotifySkipsOriginDevice(t *testing.T) {
	hub := NewHub(DefaultConfig(), setupTestLogger())
	server := hubServer(t, hub)

	laptop := dial(t, server, "u1", "laptop")
	phone := dial(t, server, "u1", "phone")
	stranger := dial(t, server, "u2", "other")

	require.Eventually(t, func() bool { return hub.Connections() == 3 }, 2*time.Second, 5*time.Millisecond)
	assert.Equal(t, 2, hub.UserConnections("u1"))

	hub.Notify("u1", "laptop", []models.RecordType{models.RecordTypeNote, models.RecordTypeCategory})

	ev := readEvent(t, phone)
	assert.Equal(t, api.EventChanges, ev.Type)
	assert.Equal(t, "laptop", ev.Origin)
	assert.Equal(t, []string{"notes", "categories"}, ev.Types)

	// Источник и чужой пользователь ничего не получают
	for _, conn := range []*websocket.Conn{laptop, stranger} {
		require.NoError(t, conn.SetReadDeadline(time.Now().Add(100*time.Millisecond)))
		_, _, err := conn.ReadMessage()
		assert.Error(t, err)
	}
}

func TestHub_NotifyWithoutOriginReachesAll(t *testing.T) {
	hub := NewHub(DefaultConfig(), setupTestLogger())
	server := hubServer(t, hub)

	a := dial(t, server, "u1", "a")
	b := dial(t, server, "u1", "")
	require.Eventually(t, func() bool { return hub.UserConnections("u1") == 2 }, 2*time.Second, 5*time.Millisecond)

	hub.Notify("u1", "", []models.RecordType{models.RecordTypeAiAssistant})

	assert.Equal(t, []string{"ai_assistants"}, readEvent(t, a).Types)
	assert.Equal(t, []string{"ai_assistants"}, readEvent(t, b).Types)
}

func TestHub_MaxConnectionsPerUser(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxConnPerUser = 1
	hub := NewHub(cfg, setupTestLogger())
	server := hubServer(t, hub)

	dial(t, server, "u1", "a")
	require.Eventually(t, func() bool { return hub.UserConnections("u1") == 1 }, 2*time.Second, 5*time.Millisecond)

	second := dial(t, server, "u1", "b")
	require.NoError(t, second.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, _, err := second.ReadMessage()
	require.Error(t, err)
	assert.True(t, websocket.IsCloseError(err, websocket.ClosePolicyViolation))

	assert.Equal(t, 1, hub.UserConnections("u1"))
}

func TestHub_DisconnectUnregisters(t *testing.T) {
	hub := NewHub(DefaultConfig(), setupTestLogger())
	server := hubServer(t, hub)

	conn := dial(t, server, "u1", "a")
	require.Eventually(t, func() bool { return hub.Connections() == 1 }, 2*time.Second, 5*time.Millisecond)

	require.NoError(t, conn.Close())
	assert.Eventually(t, func() bool { return hub.Connections() == 0 }, 2*time.Second, 5*time.Millisecond)
}

func TestHub_Close(t *testing.T) {
	hub := NewHub(DefaultConfig(), setupTestLogger())
	server := hubServer(t, hub)

	conn := dial(t, server, "u1", "a")
	require.Eventually(t, func() bool { return hub.Connections() == 1 }, 2*time.Second, 5*time.Millisecond)

	hub.Close()
	assert.Equal(t, 0, hub.Connections())

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, _, err := conn.ReadMessage()
	assert.Error(t, err)

	// После Close новые соединения отклоняются
	late := dial(t, server, "u1", "b")
	require.NoError(t, late.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, _, err = late.ReadMessage()
	assert.Error(t, err)
	assert.Equal(t, 0, hub.Connections())
}

func TestHub_SendsPings(t *testing.T) {
	cfg := DefaultConfig()
	cfg.PongWait = 200 * time.Millisecond
	cfg.PingPeriod = 20 * time.Millisecond
	hub := NewHub(cfg, setupTestLogger())
	server := hubServer(t, hub)

	conn := dial(t, server, "u1", "a")

	var pings atomic.Int32
	conn.SetPingHandler(func(data string) error {
		pings.Add(1)
		return conn.WriteControl(websocket.PongMessage, []byte(data), time.Now().Add(time.Second))
	})

	// Ping handler вызывается только при чтении
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	assert.Eventually(t, func() bool { return pings.Load() >= 12 }, 3*time.Second, 5*time.Millisecond)
	// Соединение живо дольше PongWait, потому что клиент отвечает на ping
	assert.Equal(t, 1, hub.Connections())
}

func TestNewHub_Defaults(t *testing.T) {
	hub := NewHub(Config{PongWait: time.Second, PingPeriod: 2 * time.Second}, setupTestLogger())

	assert.Equal(t, 5, hub.cfg.MaxConnPerUser)
	assert.Equal(t, 10*time.Second, hub.cfg.WriteWait)
	assert.Equal(t, 900*time.Millisecond, hub.cfg.PingPeriod)
	assert.Equal(t, 16, hub.cfg.SendBuffer)
}
