package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	BaseURL  string `env:"KAIZEN_BASE_URL" envDefault:"http://localhost:3000"`
	UserWA   string `env:"KAIZEN_USER_WA" envDefault:"+6285790826168"`
	Password string `env:"KAIZEN_USER_PASSWORD" envDefault:"12345678"`

	// Sample values substituted into date and time-range endpoints.
	SampleDate  string `env:"KAIZEN_SAMPLE_DATE" envDefault:"2025-09-20"`
	SampleStart string `env:"KAIZEN_SAMPLE_START" envDefault:"2025-09-01T00:00:00.000Z"`
	SampleEnd   string `env:"KAIZEN_SAMPLE_END" envDefault:"2025-09-30T23:59:59.999Z"`

	HTTPTimeout time.Duration `env:"KAIZEN_HTTP_TIMEOUT" envDefault:"30s"`

	ResultsPath  string `env:"KAIZEN_METRICS_PATH" envDefault:"screenshots/response_times.json"`
	SummaryImage string `env:"KAIZEN_SUMMARY_IMAGE" envDefault:"screenshots/api_response_times.png"`
	TerminalDir  string `env:"KAIZEN_TERMINAL_DIR" envDefault:"screenshots/terminal"`
	FontPath     string `env:"KAIZEN_FONT_PATH"` // empty means probe the usual monospace locations

	LogDir       string `env:"KAIZEN_LOG_DIR" envDefault:"logs"`
	SlackWebhook string `env:"KAIZEN_SLACK_WEBHOOK"`

	GalleryAddr string   `env:"KAIZEN_GALLERY_ADDR" envDefault:"127.0.0.1:8090"`
	GalleryKeys []string `env:"KAIZEN_GALLERY_KEYS" envSeparator:","`
}

func FromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	cfg.BaseURL = strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if cfg.HTTPTimeout <= 0 {
		cfg.HTTPTimeout = 30 * time.Second
	}

	keys := cfg.GalleryKeys[:0]
	for _, k := range cfg.GalleryKeys {
		if k = strings.TrimSpace(k); k != "" {
			keys = append(keys, k)
		}
	}
	cfg.GalleryKeys = keys

	return cfg, nil
}
