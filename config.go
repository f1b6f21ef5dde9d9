package citybed

import (
	"log/slog"
	"net/http"
	"time"
)

// Config holds construction-time configuration for the facade. Both
// directories default to repository-relative paths.
type Config struct {
	DataDir    string
	CacheDir   string
	Logger     *slog.Logger
	HTTPClient *http.Client
}

// Option is a functional option for Create.
type Option func(*Config)

// WithDataDir sets the directory raw GeoNames/MaxMind source files live in
// (and are downloaded into, if missing).
func WithDataDir(dir string) Option {
	return func(c *Config) { c.DataDir = dir }
}

// WithCacheDir sets the directory binary corpus caches live in.
func WithCacheDir(dir string) Option {
	return func(c *Config) { c.CacheDir = dir }
}

// WithLogger overrides the structured logger used for construction and
// cache-maintenance diagnostics. Query methods never log.
func WithLogger(l *slog.Logger) Option {
	return func(c *Config) { c.Logger = l }
}

// WithHTTPClient overrides the HTTP client used to download source data —
// mainly so tests can point downloads at an httptest server.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Config) { c.HTTPClient = client }
}

func defaultConfig() *Config {
	return &Config{
		DataDir:  "./citybed-data",
		CacheDir: "./citybed-cache",
		Logger:   defaultLogger(),
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}
