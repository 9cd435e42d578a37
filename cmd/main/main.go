package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"market-viewer/src/config"
	"market-viewer/src/logger"

	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

// -----------------------------------------------------------------------------

func main() {
	// 1. Parse command line flags
	configPath := flag.String("config", "config/default.yaml", "path to config file (empty for env-only)")
	flag.Parse()

	// 2. Load config
	conf, err := config.NewConfig(*configPath)
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	// 3. Setup Logger
	appLogger := logger.NewLogger(conf.LogLevel, conf.Name)
	redacted := conf.Redacted()
	appLogger.Info("Config loaded: endpoint=%s api_key=%s interval=%s locale=%s",
		redacted.DataSource.Endpoint, redacted.DataSource.APIKey, conf.UpdateInterval(), conf.Presentation.Locale)

	// 4. Setup Components
	app, err := setupApp(conf, appLogger)
	if err != nil {
		appLogger.Critical("Setup failed: %v", err)
	}

	// 5. Run until a signal arrives or a server fails
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, app, appLogger); err != nil {
		appLogger.Error("Exited with error: %v", err)
		os.Exit(1)
	}
	appLogger.Info("Shutdown complete.")
}

// -----------------------------------------------------------------------------

// run starts the controller and both servers, and tears everything down once
// ctx is cancelled or any server fails.
func run(ctx context.Context, app *App, appLogger *logger.Logger) error {
	g, gctx := errgroup.WithContext(ctx)

	if err := app.Controller.Start(gctx); err != nil {
		return fmt.Errorf("start controller: %w", err)
	}

	g.Go(app.HTTP.Start)
	g.Go(app.GRPC.Start)

	g.Go(func() error {
		<-gctx.Done()
		appLogger.Info("Shutting down...")

		app.Controller.Stop()
		app.GRPC.Stop()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return app.HTTP.Stop(shutdownCtx)
	})

	return g.Wait()
}
