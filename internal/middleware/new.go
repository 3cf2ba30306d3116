package middleware

import (
	"time"

	"intent-router/config"
	"intent-router/pkg/log"
)

// HTTPRecorder receives one observation per served request.
type HTTPRecorder interface {
	RecordHTTPRequest(method, route string, status int, latency time.Duration)
}

type Middleware struct {
	l        log.Logger
	limiter  *rateLimiter // nil when rate limiting is disabled
	recorder HTTPRecorder // nil when metrics are disabled
}

func New(l log.Logger, cfg config.RateLimitConfig, recorder HTTPRecorder) Middleware {
	m := Middleware{
		l:        l,
		recorder: recorder,
	}
	if cfg.Enabled {
		m.limiter = newRateLimiter(cfg.RequestsPerMin, cfg.MaxTrackedPeers)
	}
	return m
}
