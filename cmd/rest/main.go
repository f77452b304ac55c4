package main

import (
	"context"
	"errors"
	"log"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"style-match-be/internal/bootstrap"
	"style-match-be/internal/config"
	"style-match-be/internal/pkg/logger"
	"style-match-be/internal/server"
	"style-match-be/internal/tracer"
)

func main() {
	// 1. Load Configuration
	cfg := config.Load()
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")
	defer sysLogger.Sync()

	// 2. Tracing
	shutdownTracer := tracer.InitTracer(cfg.App.OtelEnabled, "style-match-be", sysLogger)
	defer shutdownTracer(context.Background())

	// 3. Bootstrap Dependencies (Container)
	container, err := bootstrap.NewContainer(cfg, sysLogger)
	if err != nil {
		log.Fatalf("Unable to bootstrap: %v", err)
	}
	defer container.Close()

	srv := server.New(cfg, container)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	// 4. Background Services
	if container.WarmupEnabled {
		g.Go(func() error {
			sysLogger.Info("MAIN", "Starting embedding warmup consumer", nil)
			return container.ConsumerService.Consume(gctx)
		})
	}

	// 5. HTTP Server
	g.Go(func() error {
		return srv.Run()
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		sysLogger.Info("MAIN", "Shutting down", nil)
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		sysLogger.Error("MAIN", "Server stopped with error", map[string]interface{}{"error": err.Error()})
	}
}
