// Command worker warms board embeddings from BOARD_IMPORTED events on NATS.
package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"

	"style-match-be/internal/bootstrap"
	"style-match-be/internal/config"
	"style-match-be/internal/observability"
	"style-match-be/internal/pkg/logger"
	"style-match-be/internal/service"
	"style-match-be/pkg/events"
	pktNats "style-match-be/pkg/nats"
)

func main() {
	cfg := config.Load()
	if cfg.App.NatsURL == "" {
		log.Fatal("Error: NATS_URL is not set")
	}

	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")
	defer sysLogger.Sync()

	stores, err := bootstrap.OpenStores(cfg, sysLogger)
	if err != nil {
		log.Fatalf("Error: %v", err)
	}
	defer stores.Close()

	// Warmup never publishes PRODUCTS_RANKED, the local bus only satisfies the publisher.
	bus := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	defer bus.Close()

	metrics := observability.NewCollector("stylematch_worker")
	provider := bootstrap.NewEmbeddingProvider(cfg, &http.Client{Timeout: cfg.App.HTTPClientTimeout}, sysLogger)
	cache := bootstrap.NewEmbeddingCache(cfg, stores, provider, metrics, sysLogger)
	ranking := service.NewRankingService(cfg.EmbeddingMissing(), stores.Pins, stores.Products, cache,
		service.NewPublisherService(bus, nil, sysLogger), metrics, sysLogger)

	sub, err := pktNats.NewSubscriber(cfg.App.NatsURL, sysLogger)
	if err != nil {
		log.Fatalf("Error: %v", err)
	}
	defer sub.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	err = sub.Subscribe(ctx, events.BoardImported, "stylematch-warmup", func(ctx context.Context, event events.Event) error {
		return service.HandleBoardImported(ctx, ranking, event)
	})
	if err != nil {
		log.Fatalf("Error: %v", err)
	}

	sysLogger.Info("WORKER", "Waiting for BOARD_IMPORTED events", map[string]interface{}{"nats": cfg.App.NatsURL})
	<-ctx.Done()
	sysLogger.Info("WORKER", "Shutting down", nil)
}
