package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	classifierHTTP "intent-router/internal/classifier/delivery/http"
	"intent-router/internal/middleware"
	"intent-router/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Classifier domain
	classifierHandler classifierHTTP.Handler
	health            HealthReporter
	mw                middleware.Middleware

	// Prometheus exposition, nil when metrics are disabled
	metricsHandler http.Handler
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	ClassifierHandler classifierHTTP.Handler
	Health            HealthReporter
	Middleware        middleware.Middleware

	MetricsHandler http.Handler
}

// New creates a new HTTPServer instance and registers every route.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:                 logger,
		gin:               gin.New(),
		port:              cfg.Port,
		mode:              cfg.Mode,
		environment:       cfg.Environment,
		classifierHandler: cfg.ClassifierHandler,
		health:            cfg.Health,
		mw:                cfg.Middleware,
		metricsHandler:    cfg.MetricsHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	srv.mapHandlers()
	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.classifierHandler == nil {
		return errors.New("classifier handler is required")
	}
	if srv.health == nil {
		return errors.New("health reporter is required")
	}
	return nil
}

// Handler exposes the router, mainly for tests.
func (srv HTTPServer) Handler() http.Handler {
	return srv.gin
}
