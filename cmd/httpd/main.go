// Command httpd runs the policy classifier HTTP service.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/niticheck/classifier/internal/bootstrap"
	"github.com/niticheck/classifier/internal/logger"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("classifier: %v", err)
	}
}

func run() error {
	cfg, err := bootstrap.LoadConfig()
	if err != nil {
		return err
	}

	logg, err := bootstrap.CreateLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = logg.Sync() }()

	logg.Info("Starting policy classifier",
		logger.String("version", cfg.Service.Version),
		logger.Int("port", cfg.Server.Port),
		logger.Bool("debug", cfg.Service.Debug),
		logger.Bool("search_enabled", cfg.Search.Enabled),
	)

	components, err := bootstrap.NewHTTPComponents(cfg, logg)
	if err != nil {
		return err
	}
	defer func() { _ = components.DB.Close() }()

	serverErrors := components.Server.StartAsync()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return err
	case sig := <-shutdown:
		logg.Info("Shutdown signal received", logger.String("signal", sig.String()))

		ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := components.Server.Shutdown(ctx); err != nil {
			return err
		}
		logg.Info("Server stopped gracefully")
	}

	return nil
}
