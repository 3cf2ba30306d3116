package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Environment.Name)
	assert.Equal(t, 8080, cfg.HTTPServer.Port)
	assert.Equal(t, "seeded", cfg.Embedder.Kind)
	assert.Equal(t, 384, cfg.Embedder.Dimension)
	assert.True(t, cfg.Classifier.ContextAwareDefault)
	assert.Equal(t, time.Duration(0), cfg.Session.IdleTTL)
	assert.Equal(t, 5*time.Minute, cfg.Session.SweepInterval)
	assert.Empty(t, cfg.Catalog.Path)
}

func TestLoad_EnvOverride(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	t.Setenv("EMBEDDER_KIND", "lexical")
	t.Setenv("CATALOG_PATH", "/tmp/intents.yaml")
	t.Setenv("SESSION_IDLE_TTL", "30m")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "lexical", cfg.Embedder.Kind)
	assert.Equal(t, "/tmp/intents.yaml", cfg.Catalog.Path)
	assert.Equal(t, 30*time.Minute, cfg.Session.IdleTTL)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Embedder:  EmbedderConfig{Kind: "seeded", Dimension: 384},
			RateLimit: RateLimitConfig{Enabled: true, RequestsPerMin: 60},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{name: "valid", mutate: func(c *Config) {}},
		{name: "zero dimension", mutate: func(c *Config) { c.Embedder.Dimension = 0 }, wantErr: true},
		{name: "unknown embedder", mutate: func(c *Config) { c.Embedder.Kind = "bert" }, wantErr: true},
		{name: "negative ttl", mutate: func(c *Config) { c.Session.IdleTTL = -time.Second }, wantErr: true},
		{name: "ttl without sweep", mutate: func(c *Config) { c.Session.IdleTTL = time.Minute }, wantErr: true},
		{name: "rate limit without budget", mutate: func(c *Config) { c.RateLimit.RequestsPerMin = 0 }, wantErr: true},
		{name: "rate limit disabled", mutate: func(c *Config) {
			c.RateLimit.Enabled = false
			c.RateLimit.RequestsPerMin = 0
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(c)
			err := validate(c)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
