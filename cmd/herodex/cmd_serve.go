package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"github.com/HerbHall/herodex/internal/catalog"
	"github.com/HerbHall/herodex/internal/config"
	"github.com/HerbHall/herodex/internal/mcpserver"
	"github.com/HerbHall/herodex/internal/server"
	"github.com/HerbHall/herodex/internal/version"
)

func runServe(args []string) error {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	configPath := fs.String("config", "", "path to configuration file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("herodex starting", zap.String("version", version.Short()))

	engine, err := buildEngine(cfg)
	if err != nil {
		logger.Fatal("failed to load catalog", zap.Error(err))
	}
	store := engine.Store()
	logger.Info("catalog loaded",
		zap.Int("heroes", store.Len()),
		zap.Int("pages", store.PageCount()),
		zap.Int("page_size", store.PageSize()),
	)

	settings, err := cfg.Settings()
	if err != nil {
		logger.Fatal("failed to decode configuration", zap.Error(err))
	}
	srv := newServer(settings, engine, logger)

	go func() {
		if err := srv.Start(); err != nil {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	logger.Info("herodex ready", zap.String("addr", srv.Addr()))

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh

	logger.Info("received shutdown signal", zap.String("signal", sig.String()))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), settings.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", zap.Error(err))
	}

	logger.Info("herodex stopped")
	return nil
}

// newServer wires the catalog handler, the MCP endpoint and the metrics
// registry into an HTTP server according to settings.
func newServer(settings config.Settings, engine *catalog.Engine, logger *zap.Logger) *server.Server {
	var reg *prometheus.Registry
	var metrics *catalog.Metrics
	if settings.Metrics.Enabled {
		reg = prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		metrics = catalog.NewMetrics(reg)
		metrics.SetCatalogSize(engine.Store())
	}

	registrars := []server.RouteRegistrar{
		catalog.NewHandler(engine, metrics, logger.Named("catalog")),
	}
	if settings.MCP.Enabled {
		registrars = append(registrars, mcpserver.New(engine, logger.Named("mcp")))
	}

	return server.New(server.Options{
		Addr:         settings.Server.Addr(),
		ReadTimeout:  settings.Server.ReadTimeout,
		WriteTimeout: settings.Server.WriteTimeout,
		IdleTimeout:  settings.Server.IdleTimeout,
		ImagesDir:    settings.Server.ImagesDir,
		Registry:     reg,
		Swagger:      settings.Swagger.Enabled,
		Catalog:      engine.Store(),
	}, logger.Named("http"), registrars...)
}
