package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func writeFile(t testing.TB, path, contents string) {
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))
}

func TestLoadMissingUsesDefaults(t *testing.T) {
	cfg, path, err := Load(filepath.Join(t.TempDir(), Filename))
	require.NoError(t, err)
	require.Equal(t, "", path)
	require.Equal(t, Default(), cfg)
}

func TestLoadMergesLocalAndDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, Filename)
	writeFile(t, path, `{
		// shared settings
		quotes: {
			base_url: "http://localhost:8080",
			max_pages: 3,
		},
		export: { filename: "out.csv" },
	}`)
	writeFile(t, filepath.Join(dir, "toolbox.local.json5"), `{
		verbose: true,
		quotes: { max_pages: 5, requests_per_second: 2 },
	}`)

	cfg, found, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, path, found)

	require.True(t, cfg.Verbose)
	require.Equal(t, "http://localhost:8080", cfg.Quotes.BaseUrl)
	require.Equal(t, 5, cfg.Quotes.MaxPages)
	require.Equal(t, 2.0, cfg.Quotes.RequestsPerSecond)
	require.Equal(t, "out.csv", cfg.Export.Filename)

	// untouched fields fall back to defaults
	require.Equal(t, 10, cfg.Quotes.TimeoutSeconds)
	require.Equal(t, 64, cfg.Quotes.CacheSize)
	require.False(t, cfg.Otlp.Enabled())

	opts := cfg.Quotes.ClientOptions()
	require.Equal(t, time.Second*10, opts.Timeout)
	require.Equal(t, "http://localhost:8080", opts.BaseUrl)
	require.Equal(t, time.Minute*5, cfg.Quotes.CacheTtl())
}

func TestLoadInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), Filename)
	writeFile(t, path, `{ quotes: `)

	_, _, err := Load(path)
	require.Error(t, err)
}

func TestLoadOtlpConnections(t *testing.T) {
	path := filepath.Join(t.TempDir(), Filename)
	writeFile(t, path, `{
		otlp: {
			metrics: {
				http_endpoint: "http://localhost:4318/v1/metrics",
				headers: { authorization: "Bearer abc" },
			},
		},
	}`)

	cfg, _, err := Load(path)
	require.NoError(t, err)
	require.True(t, cfg.Otlp.Enabled())
	require.True(t, cfg.Otlp.Metrics.Enabled())
	require.False(t, cfg.Otlp.Traces.Enabled())
	require.Equal(t, "http://localhost:4318/v1/metrics", cfg.Otlp.Metrics.HttpEndpoint)
	require.Equal(t, map[string]string{"authorization": "Bearer abc"}, cfg.Otlp.Metrics.Headers)
}
