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
)

func TestExporter_RecordClassification(t *testing.T) {
	e := New(DefaultConfig())

	e.RecordClassification(Classification{Intent: "pharmacy", Agent: "PharmacyAgent", Latency: time.Millisecond})
	e.RecordClassification(Classification{Intent: "pharmacy", Agent: "PharmacyAgent", Boosted: true, Ambiguous: true})
	e.RecordClassification(Classification{Intent: "claims", Agent: "ClaimsAgent", MultiIntent: true})

	assert.Equal(t, 2.0, testutil.ToFloat64(e.classifications.WithLabelValues("pharmacy", "PharmacyAgent")))
	assert.Equal(t, 1.0, testutil.ToFloat64(e.contextBoosts.WithLabelValues("pharmacy")))
	assert.Equal(t, 1.0, testutil.ToFloat64(e.disambiguations))
	assert.Equal(t, 1.0, testutil.ToFloat64(e.multiIntentTurns))
}

func TestExporter_Handler(t *testing.T) {
	e := New(Config{})
	e.RecordHTTPRequest(http.MethodPost, "/api/v1/classify", http.StatusOK, 2*time.Millisecond)
	e.SetActiveSessions(3)

	rec := httptest.NewRecorder()
	e.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", http.NoBody))

	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `intent_router_http_requests_total{method="POST",route="/api/v1/classify",status="200"} 1`)
	assert.Contains(t, string(body), "intent_router_session_active 3")
}
