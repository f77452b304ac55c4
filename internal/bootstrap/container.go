package bootstrap

import (
	"context"
	"fmt"
	"net/http"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"github.com/sony/gobreaker"
	"gorm.io/gorm"

	"style-match-be/internal/config"
	"style-match-be/internal/controller"
	"style-match-be/internal/entity"
	"style-match-be/internal/observability"
	"style-match-be/internal/pkg/logger"
	"style-match-be/internal/repository/contract"
	"style-match-be/internal/repository/filestore"
	"style-match-be/internal/repository/implementation"
	"style-match-be/internal/repository/memory"
	"style-match-be/internal/repository/redisstore"
	"style-match-be/internal/service"
	"style-match-be/pkg/database"
	"style-match-be/pkg/embedcache"
	"style-match-be/pkg/embedding"
	"style-match-be/pkg/embedding/jina"
	pktNats "style-match-be/pkg/nats"
	"style-match-be/pkg/pinterest"
)

// Stores groups the persistence of one STORE_DRIVER.
type Stores struct {
	Pins           contract.PinRepository
	Products       contract.ProductRepository
	EmbeddingCache contract.EmbeddingCacheRepository
	close          func() error
}

func (s *Stores) Close() error {
	if s.close == nil {
		return nil
	}
	return s.close()
}

type Container struct {
	// Controllers
	SystemController    controller.ISystemController
	OAuthController     controller.IOAuthController
	PinterestController controller.IPinterestController
	RankingController   controller.IRankingController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService
	RankingService  service.IRankingService
	WarmupEnabled   bool

	Logger  logger.ILogger
	Metrics *observability.Collector
	Stores  *Stores

	bus     *gochannel.GoChannel
	natsPub *pktNats.Publisher
}

// OpenStores connects the storage backend selected by STORE_DRIVER.
func OpenStores(cfg *config.Config, log logger.ILogger) (*Stores, error) {
	switch cfg.Store.Driver {
	case "postgres":
		if cfg.Database.Connection == "" {
			return nil, fmt.Errorf("STORE_DRIVER=postgres requires DB_CONNECTION_STRING")
		}
		db, err := database.NewGormDBFromDSN(cfg.Database.Connection, cfg.App.Environment != "production")
		if err != nil {
			return nil, fmt.Errorf("unable to connect to postgres: %w", err)
		}
		return gormStores(db), nil

	case "redis":
		if cfg.App.RedisURL == "" {
			return nil, fmt.Errorf("STORE_DRIVER=redis requires REDIS_URL")
		}
		opt, err := redis.ParseURL(cfg.App.RedisURL)
		if err != nil {
			log.Warn("BOOTSTRAP", "Failed to parse Redis URL, using it as address", map[string]interface{}{"error": err.Error()})
			opt = &redis.Options{Addr: cfg.App.RedisURL}
		}
		rdb := redis.NewClient(opt)
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			_ = rdb.Close()
			return nil, fmt.Errorf("unable to connect to redis: %w", err)
		}
		return &Stores{
			Pins:           redisstore.NewPinStore(rdb),
			Products:       redisstore.NewProductStore(rdb),
			EmbeddingCache: redisstore.NewEmbeddingCacheStore(rdb),
			close:          rdb.Close,
		}, nil

	case "", "file":
		return &Stores{
			Pins:           filestore.NewPinStore(cfg.Store.DataDir, log),
			Products:       filestore.NewProductStore(cfg.Store.ProductsFile),
			EmbeddingCache: filestore.NewEmbeddingCacheStore(cfg.Store.DataDir, log),
		}, nil
	}
	return nil, fmt.Errorf("unknown STORE_DRIVER %q", cfg.Store.Driver)
}

func gormStores(db *gorm.DB) *Stores {
	return &Stores{
		Pins:           implementation.NewPinRepository(db),
		Products:       implementation.NewProductRepository(db),
		EmbeddingCache: implementation.NewEmbeddingCacheRepository(db),
		close: func() error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.Close()
		},
	}
}

// NewEmbeddingProvider builds the EMBEDDING_PROVIDER client behind a circuit breaker.
func NewEmbeddingProvider(cfg *config.Config, httpClient *http.Client, log logger.ILogger) embedding.Provider {
	var provider embedding.Provider
	switch cfg.Ai.EmbeddingProvider {
	case "ollama":
		provider = embedding.NewOllamaProvider(cfg.Ai.OllamaBaseURL, cfg.Ai.OllamaModel, httpClient)
	case "jina":
		provider = jina.NewJinaProvider(cfg.Keys.Jina, httpClient)
	case "gemini":
		provider = embedding.NewGeminiProvider(cfg.Keys.GoogleGemini, httpClient)
	default:
		provider = embedding.NewOpenAIProvider(cfg.Keys.OpenAI, cfg.Ai.OpenAIBaseURL, cfg.Ai.OpenAIEmbedModel, httpClient)
	}
	log.Info("BOOTSTRAP", "Embedding provider selected", map[string]interface{}{
		"provider": cfg.Ai.EmbeddingProvider,
		"model":    provider.Model(),
	})

	return embedding.NewBreakerProvider(provider, embedding.DefaultBreakerConfig("embedding"), func(name string, from, to gobreaker.State) {
		log.Warn("BOOTSTRAP", "Embedding circuit breaker changed state", map[string]interface{}{
			"breaker": name,
			"from":    from.String(),
			"to":      to.String(),
		})
	})
}

// NewEmbeddingCache builds the cache manager the API and the CLI tools share.
func NewEmbeddingCache(cfg *config.Config, stores *Stores, provider embedding.Provider, metrics *observability.Collector, log logger.ILogger) *embedcache.Manager {
	return embedcache.NewManager(stores.EmbeddingCache, provider, log,
		embedcache.WithBatchSize(cfg.Ai.EmbeddingBatchSize),
		embedcache.WithMetrics(metrics),
	)
}

func NewContainer(cfg *config.Config, log logger.ILogger) (*Container, error) {
	// 1. Core Facades
	metrics := observability.NewCollector("stylematch")
	httpClient := &http.Client{Timeout: cfg.App.HTTPClientTimeout}

	stores, err := OpenStores(cfg, log)
	if err != nil {
		return nil, err
	}

	credentials := memory.NewCredentialRepository()
	if cfg.Pinterest.AccessToken != "" {
		credentials.Save(&entity.PinterestCredential{AccessToken: cfg.Pinterest.AccessToken})
		log.Info("BOOTSTRAP", "Pinterest credential seeded from PINTEREST_ACCESS_TOKEN", nil)
	}

	// 2. Event Bus
	bus := gochannel.NewGoChannel(gochannel.Config{}, watermill.NewStdLogger(false, false))

	var natsPub *pktNats.Publisher
	var forwarder service.EventForwarder
	if cfg.App.NatsURL != "" {
		natsPub, err = pktNats.NewPublisher(cfg.App.NatsURL, log)
		if err != nil {
			log.Warn("BOOTSTRAP", "Failed to connect to NATS, events stay in-process", map[string]interface{}{"error": err.Error()})
		} else {
			forwarder = natsPub
		}
	}
	publisher := service.NewPublisherService(bus, forwarder, log)

	// 3. Services
	provider := NewEmbeddingProvider(cfg, httpClient, log)
	cache := NewEmbeddingCache(cfg, stores, provider, metrics, log)

	client := pinterest.NewClient(cfg.Pinterest.APIBaseURL, httpClient)
	boardService := service.NewBoardService(client, credentials, stores.Pins, publisher, metrics, log)
	rankingService := service.NewRankingService(cfg.EmbeddingMissing(), stores.Pins, stores.Products, cache, publisher, metrics, log)
	oauthService := service.NewOAuthService(service.OAuthSettings{
		ClientID:     cfg.Pinterest.ClientID,
		ClientSecret: cfg.Pinterest.ClientSecret,
		RedirectURI:  cfg.Pinterest.RedirectURI,
		Scopes:       cfg.Pinterest.Scopes,
		TokenURL:     cfg.Pinterest.APIBaseURL + "/oauth/token",
		StateSecret:  cfg.Pinterest.StateSecret,
	}, credentials, httpClient, log)

	// 4. Controllers
	oauthMissing := cfg.OAuthMissing()
	return &Container{
		SystemController: controller.NewSystemController(len(oauthMissing) == 0, metrics.Registry()),
		OAuthController: controller.NewOAuthController(oauthService, oauthMissing, controller.OAuthRedirects{
			Success: cfg.Pinterest.SuccessRedirect,
			Error:   cfg.Pinterest.ErrorRedirect,
		}, log),
		PinterestController: controller.NewPinterestController(boardService, oauthService, credentials),
		RankingController:   controller.NewRankingController(rankingService),

		ConsumerService: service.NewConsumerService(bus, rankingService, log),
		RankingService:  rankingService,
		WarmupEnabled:   cfg.Ai.EmbedWarmupOnImport,

		Logger:  log,
		Metrics: metrics,
		Stores:  stores,
		bus:     bus,
		natsPub: natsPub,
	}, nil
}

// Close releases the event bus, NATS and the store connections.
func (c *Container) Close() error {
	if err := c.bus.Close(); err != nil {
		c.Logger.Warn("BOOTSTRAP", "Failed to close event bus", map[string]interface{}{"error": err.Error()})
	}
	if c.natsPub != nil {
		c.natsPub.Close()
	}
	return c.Stores.Close()
}
