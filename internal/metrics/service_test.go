package metrics_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mauv0809/wordle-tally/internal/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServiceExposesCounters(t *testing.T) {
	reg := prometheus.NewRegistry()
	svc := metrics.NewService(reg)
	handler := metrics.NewMetricsHandler(reg)

	svc.IncMessagesScanned()
	svc.IncMessagesScanned()
	svc.IncResultsImported()
	svc.IncImportFailures()
	svc.IncMetadataProbes()
	svc.ObserveImportDuration(0.05)
	svc.SetStartupTime(1.5)

	req, err := http.NewRequest("GET", "/metrics", nil)
	require.NoError(t, err)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	body := rr.Body.String()
	assert.Contains(t, body, "wordle_messages_scanned_total 2")
	assert.Contains(t, body, "wordle_results_imported_total 1")
	assert.Contains(t, body, "wordle_import_failures_total 1")
	assert.Contains(t, body, "wordle_metadata_probes_total 1")
	assert.Contains(t, body, "wordle_startup_duration_seconds 1.5")
}
