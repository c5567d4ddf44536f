package config

import (
	"errors"
	"os"
	"time"
	"toolbox/internal/components/telemetry"
	"toolbox/internal/export"
	"toolbox/internal/scrapers/quotes"
	"toolbox/pkg/configutil"

	"dario.cat/mergo"
)

const Filename = "toolbox.json5"

type QuotesConfig struct {
	BaseUrl           string  `json:"base_url"`
	TimeoutSeconds    int     `json:"timeout_seconds"`
	RequestsPerSecond float64 `json:"requests_per_second"`
	MaxPages          int     `json:"max_pages"`
	CacheSize         int     `json:"cache_size"`
	CacheTtlSeconds   int     `json:"cache_ttl_seconds"`
	UserAgent         string  `json:"user_agent"`
}

func (c QuotesConfig) ClientOptions() quotes.ClientOptions {
	return quotes.ClientOptions{
		BaseUrl:           c.BaseUrl,
		Timeout:           time.Duration(c.TimeoutSeconds) * time.Second,
		RequestsPerSecond: c.RequestsPerSecond,
		UserAgent:         c.UserAgent,
	}
}

func (c QuotesConfig) CacheTtl() time.Duration {
	return time.Duration(c.CacheTtlSeconds) * time.Second
}

type ExportConfig struct {
	Filename string `json:"filename"`
}

type Config struct {
	Verbose bool                 `json:"verbose"`
	Quotes  QuotesConfig         `json:"quotes"`
	Export  ExportConfig         `json:"export"`
	Otlp    telemetry.OtlpConfig `json:"otlp"`
}

func Default() Config {
	return Config{
		Quotes: QuotesConfig{
			BaseUrl:         quotes.DefaultBaseUrl,
			TimeoutSeconds:  10,
			MaxPages:        10,
			CacheSize:       64,
			CacheTtlSeconds: 300,
			UserAgent:       "toolbox/1.0",
		},
		Export: ExportConfig{
			Filename: export.DefaultFilename,
		},
	}
}

// Load reads the config at path, or searches for toolbox.json5 upward from
// the working directory when path is empty. Not finding a config is not an
// error, the defaults are used instead. Fields left unset in the files keep
// their default value. The returned string is the file that was read, if any.
func Load(path string) (Config, string, error) {
	var cfg Config
	var err error
	if path == "" {
		cfg, path, err = configutil.ReadRecursively[Config](Filename)
	} else {
		cfg, err = configutil.ReadConfig[Config](path)
	}
	if errors.Is(err, os.ErrNotExist) {
		return Default(), "", nil
	}
	if err != nil {
		return Config{}, "", err
	}

	err = mergo.Merge(&cfg, Default())
	if err != nil {
		return Config{}, "", err
	}
	if cfg.Quotes.MaxPages < 1 {
		cfg.Quotes.MaxPages = 1
	}
	return cfg, path, nil
}
