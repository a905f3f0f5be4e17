package cli

import (
	"context"
	"errors"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"cardtracker/internal/config"
	"cardtracker/internal/database/migration"
	"cardtracker/internal/events"
	handlers "cardtracker/internal/http/handler"
	"cardtracker/internal/http/middleware"
	"cardtracker/internal/http/web"
	"cardtracker/internal/otel"
	"cardtracker/internal/repository/postgres"
	"cardtracker/internal/service"
	"cardtracker/internal/storage"
)

const (
	shutdownTimeout = 10 * time.Second
	bodyLimit       = 16 << 20
)

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Runs the web UI and JSON API.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return serve(ctx)
		},
	}
}

func serve(ctx context.Context) error {
	e, err := bootstrap(ctx)
	if err != nil {
		return err
	}
	defer e.Close()
	log := e.log

	shutdownTracing, err := otel.Init(ctx, log)
	if err != nil {
		return err
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := shutdownTracing(sctx); err != nil {
			log.Warn("tracing_shutdown_failed", zap.Error(err))
		}
	}()

	if e.cfg.AutoMigrate {
		if err := migration.EnsureMigrated(ctx, e.db, log, e.cfg.Database.Host); err != nil {
			return err
		}
	}

	store, err := newPhotoStore(e.cfg.MinIO, log)
	if err != nil {
		return err
	}
	pub, err := newPublisher(e.cfg.NATS, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := pub.Close(); err != nil {
			log.Warn("event_publisher_close_failed", zap.Error(err))
		}
	}()

	svc := service.NewCardService(postgres.NewCardPostgres(e.db), store, pub, log)

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	prom, err := middleware.NewPrometheusMiddleware(reg, "/health", "/healthz")
	if err != nil {
		return err
	}

	app := fiber.New(fiber.Config{
		ErrorHandler:          handlers.ErrorHandler(),
		Views:                 web.Engine(e.cfg.Currency),
		BodyLimit:             bodyLimit,
		DisableStartupMessage: true,
	})

	tracing := otelfiber.Middleware()
	app.Use(func(c *fiber.Ctx) error {
		if c.Path() == "/metrics" || c.Path() == "/healthz" {
			return c.Next()
		}
		return tracing(c)
	})
	app.Use(middleware.RequestID())
	app.Use(middleware.Logger(log))
	app.Use(prom.Handler())

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg})))
	handlers.RegisterRoutes(app, e.db, svc, log)

	errCh := make(chan error, 1)
	go func() {
		log.Info("server_starting",
			zap.String("addr", ":"+e.cfg.Port),
			zap.Bool("photo_storage", store != nil),
			zap.Bool("events", e.cfg.NATS.Enabled()),
		)
		errCh <- app.Listen(":" + e.cfg.Port)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("server_stopping")
	if err := app.ShutdownWithTimeout(shutdownTimeout); err != nil && !errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return nil
}

// newPhotoStore returns nil when MinIO is not configured; photo endpoints then answer STORAGE_DISABLED.
func newPhotoStore(cfg config.MinIOConfig, log *zap.Logger) (storage.Storage, error) {
	if !cfg.Enabled() {
		log.Info("photo_storage_disabled")
		return nil, nil
	}
	return storage.NewMinIO(cfg)
}

// newPublisher returns events.Noop when NATS is not configured.
func newPublisher(cfg config.NATSConfig, log *zap.Logger) (events.Publisher, error) {
	if !cfg.Enabled() {
		log.Info("event_publishing_disabled")
		return events.Noop{}, nil
	}
	pub, err := events.ConnectNATS(cfg)
	if err != nil {
		return nil, err
	}
	return pub, nil
}
