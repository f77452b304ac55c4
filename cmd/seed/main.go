// Command seed loads a product catalog JSON file into the configured store.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"

	"style-match-be/internal/bootstrap"
	"style-match-be/internal/config"
	"style-match-be/internal/entity"
	"style-match-be/internal/pkg/logger"
)

func main() {
	cfg := config.Load()
	source := flag.String("file", cfg.Store.ProductsFile, "catalog JSON array to load")
	flag.Parse()

	raw, err := os.ReadFile(*source)
	if err != nil {
		log.Fatalf("Error: Failed to read %s: %v", *source, err)
	}

	var products []*entity.Product
	if err := json.Unmarshal(raw, &products); err != nil {
		log.Fatalf("Error: %s is not a product array: %v", *source, err)
	}

	stores, err := bootstrap.OpenStores(cfg, logger.NewNopLogger())
	if err != nil {
		log.Fatalf("Error: %v", err)
	}
	defer stores.Close()

	if err := stores.Products.ReplaceAll(context.Background(), products); err != nil {
		log.Fatalf("Error: Failed to store catalog: %v", err)
	}
	log.Printf("Seeded %d products into the %q store", len(products), cfg.Store.Driver)
}
