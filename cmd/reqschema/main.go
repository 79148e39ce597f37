// Command reqschema runs an HTTP gateway that validates requests against the
// schemas declared in a routes file and echoes the coerced payload.
//
// Configuration is read from the environment (and an optional .env file):
//
//	HTTP_ADDR=:8080 ROUTES_FILE=routes.yaml LOG_LEVEL=debug reqschema
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrymomot/reqschema/internal/config"
	"github.com/dmitrymomot/reqschema/internal/gateway"
	"github.com/dmitrymomot/reqschema/internal/server"
	"github.com/dmitrymomot/reqschema/pkg/logger"
)

func main() {
	if err := run(); err != nil {
		slog.Error("reqschema stopped", logger.Error(err))
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log := logger.New(append(cfg.LoggerOptions(),
		logger.WithContextExtractors(logger.RequestIDExtractor()),
	)...)
	slog.SetDefault(log)

	routes, err := gateway.LoadRoutes(cfg.RoutesFile)
	if err != nil {
		return err
	}

	router, err := gateway.NewRouter(routes, gateway.RouterConfig{
		Logger:      log,
		MaxBodySize: cfg.MaxBodySize,
	})
	if err != nil {
		return err
	}
	log.Info("routes loaded", slog.String("file", cfg.RoutesFile), slog.Int("count", len(routes)))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return server.New(cfg.HTTP, log).Run(ctx, router)
}
