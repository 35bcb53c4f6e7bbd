package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/trexxeseba/amadolibros-web/internal/config"
	"github.com/trexxeseba/amadolibros-web/internal/engine"
	"github.com/trexxeseba/amadolibros-web/internal/meli"
	"github.com/trexxeseba/amadolibros-web/internal/notify"
	"github.com/trexxeseba/amadolibros-web/internal/store"
	"github.com/trexxeseba/amadolibros-web/internal/telemetry"
	"github.com/trexxeseba/amadolibros-web/pkg/logger"
)

const serviceName = "amadolibros"

// app holds the wired service components shared by serve and sync.
type app struct {
	cfg     *config.Config
	log     *slog.Logger
	store   *store.KVStore
	limiter *meli.RateLimiter
	client  *meli.APIClient
	engine  *engine.Engine

	shutdownTelemetry telemetry.ShutdownFunc
}

func loadConfig() (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, logger.New(cfg.Logging.Level, cfg.Logging.Format), nil
}

func openStore(ctx context.Context, cfg *config.Config, log *slog.Logger) (*store.KVStore, error) {
	var opts []store.KVStoreOption
	if cfg.Store.Prefix != "" {
		opts = append(opts, store.WithPrefix(cfg.Store.Prefix))
	}

	s, err := store.Open(ctx, cfg.Store.Backend, cfg.Store.URL, opts...)
	if err != nil {
		return nil, err
	}
	if err := s.Migrate(ctx); err != nil {
		_ = s.Close()
		return nil, fmt.Errorf("migrating store: %w", err)
	}

	log.Info("store ready", "backend", cfg.Store.Backend)
	return s, nil
}

func newApp(ctx context.Context) (*app, error) {
	cfg, slogger, err := loadConfig()
	if err != nil {
		return nil, err
	}

	shutdownTelemetry, err := telemetry.Setup(ctx, cfg.Telemetry, serviceName, Version, slogger)
	if err != nil {
		return nil, err
	}

	s, err := openStore(ctx, cfg, slogger)
	if err != nil {
		_ = shutdownTelemetry(ctx)
		return nil, err
	}

	ml := cfg.MercadoLibre
	tokens := meli.NewOAuthTokenProvider(
		meli.Credentials{
			AppID:        ml.AppID,
			ClientSecret: ml.ClientSecret,
			RefreshToken: ml.RefreshToken,
		},
		meli.WithTokenURL(ml.TokenURL),
		meli.WithHTTPClient(telemetry.HTTPClient(10*time.Second)),
		meli.WithCredentialStore(s),
		meli.WithSafetyMargin(ml.SafetyMargin),
		meli.WithAuthLogger(slogger),
	)

	limiter := meli.NewRateLimiter(ml.RequestInterval, ml.DailyLimit)
	client := meli.NewAPIClient(
		tokens,
		meli.WithBaseURL(ml.APIURL),
		meli.WithAPIHTTPClient(telemetry.HTTPClient(30*time.Second)),
		meli.WithRateLimiter(limiter),
		meli.WithRetryPolicy(meli.RetryPolicy{
			MaxAttempts:    ml.Retry.MaxAttempts,
			InitialBackoff: ml.Retry.InitialBackoff,
			MaxBackoff:     ml.Retry.MaxBackoff,
		}),
		meli.WithAPILogger(slogger),
	)

	// The paging loops log progress through a prefixed console logger.
	progress := log.NewWithOptions(os.Stderr, log.Options{
		Level:           log.Level(logger.ParseLevel(cfg.Logging.Level)),
		ReportTimestamp: true,
		Prefix:          "meli",
	})

	paginator := meli.NewPaginator(
		client,
		meli.WithStrategy(meli.Strategy(cfg.Pagination.Strategy)),
		meli.WithPageSize(cfg.Pagination.PageSize),
		meli.WithMaxPages(cfg.Pagination.MaxPages),
		meli.WithMaxItems(cfg.Pagination.MaxItems),
		meli.WithPaginatorLogger(progress),
	)
	enricher := meli.NewEnricher(
		client,
		meli.WithBatchSize(cfg.Enrich.BatchSize),
		meli.WithEnricherLogger(progress),
	)

	eng := engine.NewEngine(
		s,
		client,
		tokens,
		newNotifier(cfg, slogger),
		engine.WithLogger(slogger),
		engine.WithPaginator(paginator),
		engine.WithEnricher(enricher),
		engine.WithSellerID(ml.SellerID),
		engine.WithCooldown(cfg.Sync.Cooldown),
		engine.WithMaxDuration(cfg.Sync.MaxDuration),
		engine.WithSampleSize(cfg.Sync.SampleSize),
	)

	return &app{
		cfg:     cfg,
		log:     slogger,
		store:   s,
		limiter: limiter,
		client:  client,
		engine:  eng,

		shutdownTelemetry: shutdownTelemetry,
	}, nil
}

func newNotifier(cfg *config.Config, log *slog.Logger) notify.Notifier {
	if cfg.Notifications.Discord.Enabled {
		return notify.NewDiscordNotifier(cfg.Notifications.Discord.WebhookURL)
	}
	return notify.NewNoOpNotifier(log)
}

func (a *app) close() {
	if err := a.store.Close(); err != nil {
		a.log.Error("closing store", "error", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := a.shutdownTelemetry(ctx); err != nil {
		a.log.Warn("flushing telemetry", "error", err)
	}
}
