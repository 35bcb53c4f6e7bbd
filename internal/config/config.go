// Package config handles loading and validating the application configuration
// from YAML files with environment variable substitution.
package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the top-level application configuration.
type Config struct {
	Server        ServerConfig        `yaml:"server"`
	Store         StoreConfig         `yaml:"store"`
	MercadoLibre  MercadoLibreConfig  `yaml:"mercadolibre"`
	Pagination    PaginationConfig    `yaml:"pagination"`
	Enrich        EnrichConfig        `yaml:"enrich"`
	Sync          SyncConfig          `yaml:"sync"`
	Schedule      ScheduleConfig      `yaml:"schedule"`
	Webhooks      WebhooksConfig      `yaml:"webhooks"`
	Catalog       CatalogConfig       `yaml:"catalog"`
	Notifications NotificationsConfig `yaml:"notifications"`
	Logging       LoggingConfig       `yaml:"logging"`
	Telemetry     TelemetryConfig     `yaml:"telemetry"`
}

// ServerConfig defines the Echo HTTP server settings.
type ServerConfig struct {
	Host           string        `yaml:"host"`
	Port           int           `yaml:"port"`
	ReadTimeout    time.Duration `yaml:"read_timeout"`
	WriteTimeout   time.Duration `yaml:"write_timeout"`
	AdminToken     string        `yaml:"admin_token"`
	AllowedOrigins []string      `yaml:"allowed_origins"`
}

// StoreConfig selects and configures the cache backend.
type StoreConfig struct {
	Backend string `yaml:"backend"` // memory, redis, postgres
	URL     string `yaml:"url"`
	Prefix  string `yaml:"prefix"`
}

// MercadoLibreConfig defines the marketplace credentials and API settings.
type MercadoLibreConfig struct {
	AppID           string        `yaml:"app_id"`
	ClientSecret    string        `yaml:"client_secret"`
	RefreshToken    string        `yaml:"refresh_token"`
	SellerID        string        `yaml:"seller_id"`
	APIURL          string        `yaml:"api_url"`
	TokenURL        string        `yaml:"token_url"`
	SafetyMargin    time.Duration `yaml:"safety_margin"`
	RequestInterval time.Duration `yaml:"request_interval"`
	DailyLimit      int64         `yaml:"daily_limit"`
	Retry           RetryConfig   `yaml:"retry"`
}

// RetryConfig bounds the 429 backoff loop.
type RetryConfig struct {
	MaxAttempts    int           `yaml:"max_attempts"`
	InitialBackoff time.Duration `yaml:"initial_backoff"`
	MaxBackoff     time.Duration `yaml:"max_backoff"`
}

// MissingCredentials returns the environment variable names of the absent
// credentials. An empty result means a sync can authenticate.
func (m *MercadoLibreConfig) MissingCredentials() []string {
	var missing []string
	if m.AppID == "" {
		missing = append(missing, EnvAppID)
	}
	if m.ClientSecret == "" {
		missing = append(missing, EnvClientSecret)
	}
	if m.RefreshToken == "" {
		missing = append(missing, EnvRefreshToken)
	}
	return missing
}

// PaginationConfig tunes the listing enumeration.
type PaginationConfig struct {
	Strategy string `yaml:"strategy"` // offset, cursor
	PageSize int    `yaml:"page_size"`
	MaxPages int    `yaml:"max_pages"`
	MaxItems int    `yaml:"max_items"`
}

// EnrichConfig tunes the multi-get enrichment.
type EnrichConfig struct {
	BatchSize int `yaml:"batch_size"`
}

// SyncConfig defines the sync run guards.
type SyncConfig struct {
	Cooldown    time.Duration `yaml:"cooldown"`
	MaxDuration time.Duration `yaml:"max_duration"`
	SampleSize  int           `yaml:"sample_size"`
}

// ScheduleConfig defines cron intervals. A zero interval disables the job.
type ScheduleConfig struct {
	SyncInterval  time.Duration `yaml:"sync_interval"`
	PurgeInterval time.Duration `yaml:"purge_interval"`
}

// WebhooksConfig defines the notification queue.
type WebhooksConfig struct {
	QueueSize int `yaml:"queue_size"`
}

// CatalogConfig defines read-side fallbacks.
type CatalogConfig struct {
	StaticSnapshotPath string `yaml:"static_snapshot_path"`
}

// NotificationsConfig defines notification targets.
type NotificationsConfig struct {
	Discord DiscordConfig `yaml:"discord"`
}

// DiscordConfig defines Discord webhook settings.
type DiscordConfig struct {
	Enabled    bool   `yaml:"enabled"`
	WebhookURL string `yaml:"webhook_url"`
}

// LoggingConfig defines logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json, pretty
}

// TelemetryConfig defines the OTLP trace and metric export. Prometheus
// scraping on /metrics works regardless.
type TelemetryConfig struct {
	Enabled        bool          `yaml:"enabled"`
	Endpoint       string        `yaml:"endpoint"` // host:port of the OTLP gRPC collector
	Insecure       bool          `yaml:"insecure"`
	SampleRatio    float64       `yaml:"sample_ratio"`
	MetricInterval time.Duration `yaml:"metric_interval"`
}

// Load reads and parses a YAML config file, performing environment variable
// substitution, environment overrides and validation. An empty path skips
// the file and builds the configuration from defaults and the environment.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if path != "" {
		data, err := os.ReadFile(path) //nolint:gosec // config path from trusted CLI flag
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}

		// Expand environment variables in the YAML content.
		expanded := os.ExpandEnv(string(data))

		if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
			return nil, fmt.Errorf("parsing config YAML: %w", err)
		}
	}

	applyEnv(cfg, os.LookupEnv)
	applyDefaults(cfg)

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	applyServerDefaults(&cfg.Server)
	applyStoreDefaults(&cfg.Store)
	applyMercadoLibreDefaults(&cfg.MercadoLibre)
	applyPaginationDefaults(&cfg.Pagination)
	applyEnrichDefaults(&cfg.Enrich)
	applySyncDefaults(&cfg.Sync)
	applyScheduleDefaults(&cfg.Schedule)
	applyWebhooksDefaults(&cfg.Webhooks)
	applyLoggingDefaults(&cfg.Logging)
	applyTelemetryDefaults(&cfg.Telemetry)
}

func applyServerDefaults(s *ServerConfig) {
	if s.Host == "" {
		s.Host = "0.0.0.0"
	}
	if s.Port == 0 {
		s.Port = 8080
	}
	if s.ReadTimeout == 0 {
		s.ReadTimeout = 30 * time.Second
	}
	// A sync triggered over HTTP can run for minutes.
	if s.WriteTimeout == 0 {
		s.WriteTimeout = 11 * time.Minute
	}
	if len(s.AllowedOrigins) == 0 {
		s.AllowedOrigins = []string{"*"}
	}
}

func applyStoreDefaults(s *StoreConfig) {
	if s.Backend == "" {
		s.Backend = "memory"
	}
}

func applyMercadoLibreDefaults(m *MercadoLibreConfig) {
	if m.APIURL == "" {
		m.APIURL = "https://api.mercadolibre.com"
	}
	if m.TokenURL == "" {
		m.TokenURL = "https://api.mercadolibre.com/oauth/token" //nolint:gosec // not a credential
	}
	if m.SafetyMargin == 0 {
		m.SafetyMargin = 5 * time.Minute
	}
	if m.RequestInterval == 0 {
		m.RequestInterval = 100 * time.Millisecond
	}
	if m.Retry.MaxAttempts == 0 {
		m.Retry.MaxAttempts = 5
	}
	if m.Retry.InitialBackoff == 0 {
		m.Retry.InitialBackoff = time.Second
	}
	if m.Retry.MaxBackoff == 0 {
		m.Retry.MaxBackoff = 16 * time.Second
	}
}

func applyPaginationDefaults(p *PaginationConfig) {
	if p.Strategy == "" {
		p.Strategy = "offset"
	}
	if p.PageSize == 0 {
		p.PageSize = 50
	}
	if p.MaxPages == 0 {
		p.MaxPages = 200
	}
	if p.MaxItems == 0 {
		p.MaxItems = 20000
	}
}

func applyEnrichDefaults(e *EnrichConfig) {
	if e.BatchSize == 0 {
		e.BatchSize = 20
	}
}

func applySyncDefaults(s *SyncConfig) {
	if s.Cooldown == 0 {
		s.Cooldown = time.Hour
	}
	if s.MaxDuration == 0 {
		s.MaxDuration = 10 * time.Minute
	}
	if s.SampleSize == 0 {
		s.SampleSize = 3
	}
}

func applyScheduleDefaults(s *ScheduleConfig) {
	if s.PurgeInterval == 0 {
		s.PurgeInterval = 30 * time.Minute
	}
}

func applyWebhooksDefaults(w *WebhooksConfig) {
	if w.QueueSize == 0 {
		w.QueueSize = 256
	}
}

func applyLoggingDefaults(l *LoggingConfig) {
	if l.Level == "" {
		l.Level = "info"
	}
	if l.Format == "" {
		l.Format = "text"
	}
}

func applyTelemetryDefaults(t *TelemetryConfig) {
	if t.Endpoint == "" {
		t.Endpoint = "localhost:4317"
	}
	if t.SampleRatio == 0 {
		t.SampleRatio = 1
	}
	if t.MetricInterval == 0 {
		t.MetricInterval = time.Minute
	}
}

func validate(cfg *Config) error {
	var errs []error

	switch cfg.Store.Backend {
	case "memory":
	case "redis", "postgres":
		if cfg.Store.URL == "" {
			errs = append(
				errs,
				fmt.Errorf("store.url is required when backend is %s", cfg.Store.Backend),
			)
		}
	default:
		errs = append(
			errs,
			fmt.Errorf(
				"store.backend must be one of: memory, redis, postgres (got %q)",
				cfg.Store.Backend,
			),
		)
	}

	if !slices.Contains([]string{"offset", "cursor"}, cfg.Pagination.Strategy) {
		errs = append(
			errs,
			fmt.Errorf("pagination.strategy must be one of: offset, cursor (got %q)", cfg.Pagination.Strategy),
		)
	}
	if cfg.Pagination.PageSize < 1 || cfg.Pagination.PageSize > 100 {
		errs = append(errs, fmt.Errorf("pagination.page_size must be between 1 and 100"))
	}
	if cfg.Pagination.MaxPages < 1 {
		errs = append(errs, fmt.Errorf("pagination.max_pages must be positive"))
	}
	if cfg.Pagination.MaxItems < 1 {
		errs = append(errs, fmt.Errorf("pagination.max_items must be positive"))
	}
	if cfg.Enrich.BatchSize < 1 || cfg.Enrich.BatchSize > 20 {
		errs = append(errs, fmt.Errorf("enrich.batch_size must be between 1 and 20"))
	}

	if i := cfg.MercadoLibre.RequestInterval; i < 50*time.Millisecond || i > 200*time.Millisecond {
		errs = append(errs, fmt.Errorf("mercadolibre.request_interval must be between 50ms and 200ms (got %s)", i))
	}
	if cfg.MercadoLibre.Retry.MaxAttempts < 1 {
		errs = append(errs, fmt.Errorf("mercadolibre.retry.max_attempts must be positive"))
	}
	if cfg.MercadoLibre.DailyLimit < 0 {
		errs = append(errs, fmt.Errorf("mercadolibre.daily_limit must not be negative"))
	}

	if cfg.Sync.Cooldown < 0 || cfg.Sync.MaxDuration < 0 {
		errs = append(errs, fmt.Errorf("sync.cooldown and sync.max_duration must not be negative"))
	}
	if cfg.Webhooks.QueueSize < 1 {
		errs = append(errs, fmt.Errorf("webhooks.queue_size must be positive"))
	}

	if cfg.Notifications.Discord.Enabled && cfg.Notifications.Discord.WebhookURL == "" {
		errs = append(
			errs,
			fmt.Errorf("notifications.discord.webhook_url is required when discord is enabled"),
		)
	}

	if !slices.Contains([]string{"text", "json", "pretty"}, cfg.Logging.Format) {
		errs = append(
			errs,
			fmt.Errorf("logging.format must be one of: text, json, pretty (got %q)", cfg.Logging.Format),
		)
	}

	if r := cfg.Telemetry.SampleRatio; r < 0 || r > 1 {
		errs = append(errs, fmt.Errorf("telemetry.sample_ratio must be between 0 and 1 (got %g)", r))
	}

	return errors.Join(errs...)
}
