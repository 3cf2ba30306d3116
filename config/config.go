package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Classification pipeline
	Classifier ClassifierConfig
	Embedder   EmbedderConfig
	Catalog    CatalogConfig
	Session    SessionConfig

	// Adapter concerns
	RateLimit RateLimitConfig
	Metrics   MetricsConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type ClassifierConfig struct {
	ContextAwareDefault bool
}

type EmbedderConfig struct {
	Kind      string // "seeded" or "lexical"
	Dimension int
}

type CatalogConfig struct {
	Path string // Optional YAML override; empty uses the embedded catalog
}

type SessionConfig struct {
	IdleTTL       time.Duration // 0 keeps sessions for the process lifetime
	SweepInterval time.Duration
}

type RateLimitConfig struct {
	Enabled         bool
	RequestsPerMin  int
	MaxTrackedPeers int
}

type MetricsConfig struct {
	Enabled bool
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/intent-router/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/intent-router/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Pipeline
	cfg.Classifier.ContextAwareDefault = viper.GetBool("classifier.context_aware_default")
	cfg.Embedder.Kind = viper.GetString("embedder.kind")
	cfg.Embedder.Dimension = viper.GetInt("embedder.dimension")
	cfg.Catalog.Path = viper.GetString("catalog.path")
	cfg.Session.IdleTTL = viper.GetDuration("session.idle_ttl")
	cfg.Session.SweepInterval = viper.GetDuration("session.sweep_interval")

	// Adapter
	cfg.RateLimit.Enabled = viper.GetBool("rate_limit.enabled")
	cfg.RateLimit.RequestsPerMin = viper.GetInt("rate_limit.requests_per_min")
	cfg.RateLimit.MaxTrackedPeers = viper.GetInt("rate_limit.max_tracked_peers")
	cfg.Metrics.Enabled = viper.GetBool("metrics.enabled")

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("classifier.context_aware_default", true)
	viper.SetDefault("embedder.kind", "seeded")
	viper.SetDefault("embedder.dimension", 384)
	viper.SetDefault("catalog.path", "")
	viper.SetDefault("session.idle_ttl", "0s")
	viper.SetDefault("session.sweep_interval", "5m")

	viper.SetDefault("rate_limit.enabled", true)
	viper.SetDefault("rate_limit.requests_per_min", 600)
	viper.SetDefault("rate_limit.max_tracked_peers", 1000)
	viper.SetDefault("metrics.enabled", true)
}

// validate checks the values the pipeline cannot start without.
func validate(cfg *Config) error {
	if cfg.Embedder.Dimension <= 0 {
		return fmt.Errorf("embedder.dimension must be positive, got %d", cfg.Embedder.Dimension)
	}
	switch cfg.Embedder.Kind {
	case "seeded", "lexical":
	default:
		return fmt.Errorf("embedder.kind %q is not supported (seeded, lexical)", cfg.Embedder.Kind)
	}
	if cfg.Session.IdleTTL < 0 {
		return fmt.Errorf("session.idle_ttl must not be negative")
	}
	if cfg.Session.IdleTTL > 0 && cfg.Session.SweepInterval <= 0 {
		return fmt.Errorf("session.sweep_interval must be positive when session.idle_ttl is set")
	}
	if cfg.RateLimit.Enabled && cfg.RateLimit.RequestsPerMin <= 0 {
		return fmt.Errorf("rate_limit.requests_per_min must be positive when rate limiting is enabled")
	}
	return nil
}
