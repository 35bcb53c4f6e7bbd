package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humaecho"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/trexxeseba/amadolibros-web/api/openapi"
	"github.com/trexxeseba/amadolibros-web/internal/api/handlers"
	"github.com/trexxeseba/amadolibros-web/internal/api/middleware"
	"github.com/trexxeseba/amadolibros-web/internal/engine"
)

const (
	apiTitle        = "amadolibros API"
	shutdownTimeout = 10 * time.Second
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server, webhook processor and scheduler",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.close()

	cfg := a.cfg
	missing := cfg.MercadoLibre.MissingCredentials()
	if len(missing) > 0 {
		a.log.Warn("mercadolibre credentials missing, syncs will fail until they are set",
			"missing", missing)
	}
	if cfg.MercadoLibre.SellerID == "" {
		a.log.Warn("seller id not configured, it will be resolved from the token owner")
	}

	webhooks := engine.NewWebhookProcessor(
		a.store,
		a.client,
		engine.WithWebhookLogger(a.log),
		engine.WithQueueSize(cfg.Webhooks.QueueSize),
		engine.WithWebhookSellerID(cfg.MercadoLibre.SellerID),
		engine.WithSellerResolver(a.engine),
	)
	webhooks.Start(ctx)
	defer webhooks.Stop()

	sched, err := engine.NewScheduler(
		a.engine,
		a.store,
		cfg.Schedule.SyncInterval,
		cfg.Schedule.PurgeInterval,
		a.log,
	)
	if err != nil {
		return fmt.Errorf("creating scheduler: %w", err)
	}
	sched.Start()
	defer func() { <-sched.Stop().Done() }()

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	e.Use(middleware.Recovery(a.log))
	e.Use(middleware.Tracing(serviceName))
	e.Use(middleware.RequestLog(a.log))
	e.Use(middleware.Metrics())
	e.Use(middleware.CORS(cfg.Server.AllowedOrigins))

	health := handlers.NewHealthHandler(a.store, handlers.HealthInfo{
		Backend:            cfg.Store.Backend,
		MissingCredentials: missing,
		SellerConfigured:   cfg.MercadoLibre.SellerID != "",
	})
	e.GET("/healthz", health.Healthz)
	e.GET("/readyz", health.Readyz)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	humaCfg := huma.DefaultConfig(apiTitle, Version)
	api := humaecho.New(e, humaCfg)
	openapi.RegisterRoutes(e, apiTitle, humaCfg.OpenAPIPath+".json")
	handlers.RegisterHealthRoutes(api, health)
	handlers.RegisterQuotaRoutes(api, handlers.NewQuotaHandler(a.limiter))
	handlers.RegisterSyncRoutes(api, handlers.NewSyncHandler(a.engine, a.store, cfg.Server.AdminToken))
	handlers.RegisterCatalogRoutes(api, handlers.NewCatalogHandler(
		a.store,
		handlers.WithItemFetcher(a.client),
		handlers.WithStaticSnapshot(cfg.Catalog.StaticSnapshotPath),
		handlers.WithCatalogLogger(a.log),
	))
	handlers.RegisterWebhookRoutes(api, handlers.NewWebhookHandler(webhooks, a.log))

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	a.log.Info("starting server", "addr", addr, "version", Version)

	errCh := make(chan error, 1)
	go func() {
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	}

	a.log.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down server: %w", err)
	}

	a.log.Info("server stopped")
	return nil
}
