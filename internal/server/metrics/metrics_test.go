package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/notekeeper/internal/models"
)

func TestMetrics_Observe(t *testing.T) {
	m := New()

	m.ObservePushRecord(models.RecordTypeNote, "created")
	m.ObservePushRecord(models.RecordTypeNote, "created")
	m.ObservePushRecord(models.RecordTypeCategory, "conflict")
	m.ObserveConflictResolved(models.ResolutionMerge)
	m.ObserveHTTPRequest(http.MethodPost, "/api/v1/sync/push", http.StatusOK, 15*time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.pushRecords.WithLabelValues("notes", "created")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.pushRecords.WithLabelValues("categories", "conflict")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.conflictsResolved.WithLabelValues("merge")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequests.WithLabelValues("POST", "/api/v1/sync/push", "200")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.httpDuration))
}

func TestMetrics_Handler(t *testing.T) {
	m := New()
	connections := 3
	m.RegisterConnectionsGauge(func() int { return connections })
	m.ObservePushRecord(models.RecordTypeAiAssistant, "updated")

	server := httptest.NewServer(m.Handler())
	defer server.Close()

	resp, err := http.Get(server.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "notekeeper_notify_connections 3")
	assert.Contains(t, string(body), `notekeeper_sync_push_records_total{outcome="updated",type="ai_assistants"} 1`)
	assert.Contains(t, string(body), "go_goroutines")
}
