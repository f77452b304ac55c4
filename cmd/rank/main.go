// Command rank ranks the catalog against an already imported board.
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/fatih/color"

	"style-match-be/internal/bootstrap"
	"style-match-be/internal/config"
	"style-match-be/internal/observability"
	"style-match-be/internal/pkg/apperror"
	"style-match-be/internal/pkg/logger"
	"style-match-be/internal/service"
)

func main() {
	boardId := flag.String("board", "", "board id of a previous import")
	topK := flag.Float64("top", service.DefaultTopK, "number of products to print")
	flag.Parse()

	if *boardId == "" {
		color.Red("Usage: rank -board <boardId> [-top 24]")
		os.Exit(2)
	}

	cfg := config.Load()
	log := logger.NewNopLogger()

	stores, err := bootstrap.OpenStores(cfg, log)
	if err != nil {
		color.Red("❌ %v", err)
		os.Exit(1)
	}
	defer stores.Close()

	bus := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	defer bus.Close()

	metrics := observability.NewCollector("stylematch")
	provider := bootstrap.NewEmbeddingProvider(cfg, &http.Client{Timeout: cfg.App.HTTPClientTimeout}, log)
	cache := bootstrap.NewEmbeddingCache(cfg, stores, provider, metrics, log)
	ranking := service.NewRankingService(cfg.EmbeddingMissing(), stores.Pins, stores.Products, cache,
		service.NewPublisherService(bus, nil, log), metrics, log)

	color.Cyan("Ranking products for board %s\n", *boardId)
	res, err := ranking.RankProducts(context.Background(), *boardId, service.ResolveTopK(*topK))
	if err != nil {
		if appErr, ok := apperror.As(err); ok {
			color.Red("❌ %s", appErr.Message)
			if appErr.Hint != "" {
				color.Yellow("   %s", appErr.Hint)
			}
			for _, key := range appErr.Required {
				color.Yellow("   missing %s", key)
			}
		} else {
			color.Red("❌ %v", err)
		}
		os.Exit(1)
	}

	color.Green("Pins used: %d, products ranked: %d, model: %s", res.PinsUsed, res.ProductsRanked, res.Model)
	for i, p := range res.RankedProducts {
		fmt.Printf("%3d. %s  %s\n", i+1, color.YellowString("%.4f", p.Score), p.Name)
		if p.Brand != "" || p.Category != "" {
			fmt.Printf("     %s\n", color.HiBlackString("%s / %s", p.Brand, p.Category))
		}
	}
}
