// Package landing parses landing command flags and launches the page server
// or the static export.
package landing

import (
	"context"
	"flag"
	"fmt"
	"strings"

	entrypoint "github.com/flaskhub/landing/internal/platform/cmd"
	"github.com/flaskhub/landing/internal/services/landing"
)

const (
	defaultHTTPAddr           = "localhost:8080"
	defaultAssetBaseURL       = "/static"
	defaultExportLang         = "en-US"
	defaultAPIVersion         = "v1"
	defaultRateLimitPerMinute = 30
)

// Config holds the landing command configuration.
type Config struct {
	HTTPAddr           string `env:"HTTP_ADDR" envDefault:"localhost:8080"`
	AssetBaseURL       string `env:"ASSET_BASE_URL" envDefault:"/static"`
	EnableMetrics      bool   `env:"ENABLE_METRICS" envDefault:"false"`
	APIVersion         string `env:"API_VERSION" envDefault:"v1"`
	RateLimitPerMinute int    `env:"RATE_LIMIT_PER_MINUTE" envDefault:"30"`
	ExportDir          string `env:"EXPORT_DIR"`
	ExportLang         string `env:"EXPORT_LANG" envDefault:"en-US"`
}

// ParseConfig parses environment and flags into Config. Flags are registered
// first; environment values then replace the flag defaults and explicit flags
// win over both.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	fs.StringVar(&cfg.HTTPAddr, "http-addr", defaultHTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.AssetBaseURL, "asset-base-url", defaultAssetBaseURL, "Base URL for stylesheet links")
	fs.BoolVar(&cfg.EnableMetrics, "enable-metrics", false, "Serve Prometheus metrics on /metrics")
	fs.StringVar(&cfg.APIVersion, "api-version", defaultAPIVersion, "Version reported by /health")
	fs.IntVar(&cfg.RateLimitPerMinute, "rate-limit-per-minute", defaultRateLimitPerMinute, "Requests per minute per client address; 0 disables")
	fs.StringVar(&cfg.ExportDir, "export-dir", "", "Write a static export to this directory and exit")
	fs.StringVar(&cfg.ExportLang, "lang", defaultExportLang, "Language of the static export")
	if err := entrypoint.ParseConfigFromArgs(&cfg, fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run serves the landing page, or writes a static export when ExportDir is set.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceLanding, func(ctx context.Context) error {
		if strings.TrimSpace(cfg.ExportDir) != "" {
			return export(ctx, cfg)
		}
		return serve(ctx, cfg)
	})
}

func serve(ctx context.Context, cfg Config) error {
	server, err := landing.NewServer(landing.Config{
		HTTPAddr:           cfg.HTTPAddr,
		AssetBaseURL:       cfg.AssetBaseURL,
		EnableMetrics:      cfg.EnableMetrics,
		APIVersion:         cfg.APIVersion,
		RateLimitPerMinute: cfg.RateLimitPerMinute,
	})
	if err != nil {
		return fmt.Errorf("init landing server: %w", err)
	}
	if err := server.ListenAndServe(ctx); err != nil {
		return fmt.Errorf("serve landing: %w", err)
	}
	return nil
}

// export keeps stylesheet links relative so the output can be hosted anywhere,
// unless the asset base URL was moved off the server default.
func export(ctx context.Context, cfg Config) error {
	assetBaseURL := strings.TrimSpace(cfg.AssetBaseURL)
	if trimmed := strings.TrimRight(assetBaseURL, "/"); trimmed == "" || trimmed == defaultAssetBaseURL {
		assetBaseURL = ""
	}
	if err := landing.Export(ctx, landing.ExportOptions{
		Dir:          cfg.ExportDir,
		Lang:         cfg.ExportLang,
		AssetBaseURL: assetBaseURL,
	}); err != nil {
		return fmt.Errorf("export landing: %w", err)
	}
	return nil
}
