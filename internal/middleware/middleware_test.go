package middleware

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"intent-router/config"
	"intent-router/pkg/log"
)

type mockRecorder struct {
	mu     sync.Mutex
	routes []string
	codes  []int
}

func (r *mockRecorder) RecordHTTPRequest(method, route string, status int, latency time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.routes = append(r.routes, method+" "+route)
	r.codes = append(r.codes, status)
}

func newEngine(mw Middleware) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(mw.RequestID(), mw.Metrics(), mw.RateLimit())
	r.GET("/ping/:id", func(c *gin.Context) {
		id, _ := c.Request.Context().Value(log.RequestIDKey).(string)
		c.String(http.StatusOK, id)
	})
	return r
}

func get(r *gin.Engine, path string, header map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for k, v := range header {
		req.Header.Set(k, v)
	}
	req.RemoteAddr = "10.0.0.1:5555"
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRateLimit(t *testing.T) {
	// 60 per minute gives a burst of 6
	mw := New(log.NewNop(), config.RateLimitConfig{Enabled: true, RequestsPerMin: 60}, nil)
	r := newEngine(mw)

	for i := 0; i < 6; i++ {
		require.Equal(t, http.StatusOK, get(r, "/ping/1", nil).Code, "request %d", i)
	}
	assert.Equal(t, http.StatusTooManyRequests, get(r, "/ping/1", nil).Code)
}

func TestRateLimit_Disabled(t *testing.T) {
	mw := New(log.NewNop(), config.RateLimitConfig{Enabled: false}, nil)
	r := newEngine(mw)

	for i := 0; i < 50; i++ {
		require.Equal(t, http.StatusOK, get(r, "/ping/1", nil).Code)
	}
}

func TestRateLimiter_PerKey(t *testing.T) {
	rl := newRateLimiter(10, 2)

	require.NoError(t, rl.Allow("a"))
	assert.Error(t, rl.Allow("a"))
	assert.NoError(t, rl.Allow("b"))
}

func TestRequestID(t *testing.T) {
	r := newEngine(New(log.NewNop(), config.RateLimitConfig{}, nil))

	t.Run("Generated", func(t *testing.T) {
		w := get(r, "/ping/1", nil)
		id := w.Header().Get(RequestIDHeader)
		assert.NotEmpty(t, id)
		assert.Equal(t, id, w.Body.String())
	})

	t.Run("Propagated", func(t *testing.T) {
		w := get(r, "/ping/1", map[string]string{RequestIDHeader: "req-42"})
		assert.Equal(t, "req-42", w.Header().Get(RequestIDHeader))
		assert.Equal(t, "req-42", w.Body.String())
	})
}

func TestMetrics(t *testing.T) {
	rec := &mockRecorder{}
	r := newEngine(New(log.NewNop(), config.RateLimitConfig{}, rec))

	get(r, "/ping/7", nil)
	get(r, "/missing", nil)

	assert.Equal(t, []string{"GET /ping/:id", "GET unmatched"}, rec.routes)
	assert.Equal(t, []int{http.StatusOK, http.StatusNotFound}, rec.codes)
}
