package middleware

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type observed struct {
	method string
	route  string
	status int
}

type recordingObserver struct {
	calls []observed
	mu    sync.Mutex
}

func (o *recordingObserver) ObserveHTTPRequest(method, route string, status int, duration time.Duration) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.calls = append(o.calls, observed{method: method, route: route, status: status})
}

func TestMetricsMiddleware(t *testing.T) {
	observer := &recordingObserver{}

	router := mux.NewRouter()
	router.Use(MetricsMiddleware(observer))
	router.HandleFunc("/api/v1/sync/conflicts/{id}/resolve", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}).Methods(http.MethodPost)
	router.HandleFunc("/api/v1/sync/pull", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("{}"))
	}).Methods(http.MethodGet)

	for _, path := range []string{"/api/v1/sync/conflicts/c1/resolve", "/api/v1/sync/conflicts/c2/resolve"} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, path, nil))
		assert.Equal(t, http.StatusNotFound, w.Code)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/sync/pull", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	require.Len(t, observer.calls, 3)
	assert.Equal(t, observed{method: "POST", route: "/api/v1/sync/conflicts/{id}/resolve", status: 404}, observer.calls[0])
	assert.Equal(t, observer.calls[0], observer.calls[1])
	assert.Equal(t, observed{method: "GET", route: "/api/v1/sync/pull", status: 200}, observer.calls[2])
}

func TestMetricsMiddleware_SharesWrapperWithLogging(t *testing.T) {
	observer := &recordingObserver{}

	handler := LoggingMiddleware(setupTestLogger())(MetricsMiddleware(observer)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, ok := w.(*responseWriter)
		assert.True(t, ok)
		w.WriteHeader(http.StatusAccepted)
	})))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/plain", nil))

	require.Len(t, observer.calls, 1)
	assert.Equal(t, observed{method: "GET", route: "/plain", status: http.StatusAccepted}, observer.calls[0])
}
