package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig(t *testing.T) {
	tests := []struct {
		name     string
		env      map[string]string
		validate func(t *testing.T, cfg *Config)
	}{
		{
			name: "Valores padrão",
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, DefaultUpstreamURL, cfg.Upstream.URL)
				assert.Equal(t, 30*time.Second, cfg.Upstream.Timeout)
				assert.Equal(t, 200, cfg.Upstream.DefaultLimit)
				assert.Equal(t, 0, cfg.Upstream.DefaultOffset)
				assert.Equal(t, 0, cfg.FanOut.MaxConcurrency)
				assert.Equal(t, []string{"http://localhost:3000"}, cfg.Cors.AllowedOrigins)
				assert.True(t, cfg.Metrics.Enabled)
				assert.False(t, cfg.UpstreamProbe.Enabled)
			},
		},
		{
			name: "Variáveis de ambiente",
			env: map[string]string{
				"UPSTREAM_URL":           "http://upstream.local/sales",
				"UPSTREAM_TIMEOUT":       "5s",
				"UPSTREAM_DEFAULT_LIMIT": "50",
				"FANOUT_MAX_CONCURRENCY": "8",
				"CORS_ALLOWED_ORIGINS":   "http://a.local,http://b.local",
				"METRICS_NAMESPACE":      "proxy",
			},
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "http://upstream.local/sales", cfg.Upstream.URL)
				assert.Equal(t, 5*time.Second, cfg.Upstream.Timeout)
				assert.Equal(t, 50, cfg.Upstream.DefaultLimit)
				assert.Equal(t, 8, cfg.FanOut.MaxConcurrency)
				assert.Equal(t, []string{"http://a.local", "http://b.local"}, cfg.Cors.AllowedOrigins)
				assert.Equal(t, "proxy", cfg.Metrics.Namespace)
			},
		},
		{
			name: "Valores inválidos são corrigidos",
			env: map[string]string{
				"UPSTREAM_DEFAULT_LIMIT":  "0",
				"UPSTREAM_DEFAULT_OFFSET": "-1",
				"FANOUT_MAX_CONCURRENCY":  "-4",
			},
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, 200, cfg.Upstream.DefaultLimit)
				assert.Equal(t, 0, cfg.Upstream.DefaultOffset)
				assert.Equal(t, 0, cfg.FanOut.MaxConcurrency)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg, err := NewConfig()
			require.NoError(t, err)
			tt.validate(t, cfg)
		})
	}
}
