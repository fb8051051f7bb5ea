package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/kaitori/backend/config"
	"github.com/kaitori/backend/internal/catalog"
	httpDelivery "github.com/kaitori/backend/internal/delivery/http"
	"github.com/kaitori/backend/internal/domain"
	"github.com/kaitori/backend/internal/infrastructure/cache"
	"github.com/kaitori/backend/internal/infrastructure/source"
	"github.com/kaitori/backend/internal/observability"
	"github.com/kaitori/backend/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting Kaitori Backend v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)
	log.Printf("Cache Type: %s", cfg.Cache.Type)
	log.Printf("Cache TTL: %s", cfg.Cache.TTL)

	// Master catalog and variant disambiguation rules
	master := catalog.Master()
	rules := catalog.Rules()
	for _, warning := range catalog.Validate(master, rules) {
		log.Printf("WARNING: catalog: %s", warning)
	}
	log.Printf("Catalog loaded: %d entries", master.Len())

	observability.Register()

	// Snapshot store for per-shop acquisition fallback
	snapshots, err := newSnapshotStore(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize %s snapshot store: %v", cfg.Cache.Type, err)
	}
	defer snapshots.Close()

	// One source per registered shop, replaying observation dumps
	sources := source.FromDir(cfg.Scrape.SourcesDir)
	log.Printf("Sources: %d shops from %s", len(sources), cfg.Scrape.SourcesDir)

	// Resolution engine
	debug := cfg.Matching.Debug || cfg.Server.Environment == "development"
	filter := usecase.NewCandidateFilter(cfg.Matching.MaxBoxPrice, debug)
	matcher := usecase.NewCatalogMatcher(master, rules, cfg.Matching.Threshold)
	resolver := usecase.NewResolver(filter, matcher, debug)
	service := usecase.NewAggregationService(master, resolver, sources, snapshots)

	log.Printf("Matching: threshold=%d, maxBoxPrice=%d, debug=%v",
		cfg.Matching.Threshold, cfg.Matching.MaxBoxPrice, debug)

	// Initial aggregation pass; the server still starts if it fails
	if _, err := service.Run(context.Background()); err != nil {
		log.Printf("WARNING: initial aggregation run failed: %v", err)
	}

	// Periodic refresh, if configured
	if cfg.Scrape.Interval > 0 {
		go refreshLoop(service, cfg.Scrape.Interval)
		log.Printf("Periodic refresh every %s", cfg.Scrape.Interval)
	}

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(service)

	// Setup router
	router := httpDelivery.SetupRouter(cfg, handler)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Server listening on %s", addr)

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// newSnapshotStore builds the snapshot store selected by configuration.
func newSnapshotStore(cfg *config.Config) (domain.SnapshotStore, error) {
	switch cfg.Cache.Type {
	case "sqlite":
		return cache.NewSQLiteStore(cfg.Cache.Path, cfg.Cache.TTL)
	case "redis":
		return cache.NewRedisStore(cfg.Cache.RedisURL, cfg.Cache.TTL)
	default:
		return cache.NewMemoryStore(cfg.Cache.TTL), nil
	}
}

// refreshLoop re-runs aggregation on a fixed interval. A run already in
// progress just skips the tick.
func refreshLoop(service *usecase.AggregationService, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for range ticker.C {
		if _, err := service.Run(context.Background()); err != nil {
			if err != domain.ErrRunInProgress {
				log.Printf("WARNING: scheduled aggregation run failed: %v", err)
			}
		}
	}
}

func init() {
	// Set log flags for better debugging
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)
}
