package usecase

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/kaitori/backend/internal/domain"
	"github.com/kaitori/backend/internal/observability"
)

// AggregationService owns one full run: reset the catalog, pull each shop's
// observations (falling back to the last cached snapshot when acquisition
// fails or comes back empty), resolve them, and publish the run report.
//
// The matching core below it is single-threaded and lock-free; this service
// serializes runs and table reads with its own mutex.
type AggregationService struct {
	mu         sync.Mutex
	catalog    *domain.Catalog
	resolver   *Resolver
	sources    []domain.Source
	snapshots  domain.SnapshotStore
	lastReport *domain.RunReport
}

// NewAggregationService wires the catalog, resolver, sources and snapshot
// store together.
func NewAggregationService(
	catalog *domain.Catalog,
	resolver *Resolver,
	sources []domain.Source,
	snapshots domain.SnapshotStore,
) *AggregationService {
	return &AggregationService{
		catalog:   catalog,
		resolver:  resolver,
		sources:   sources,
		snapshots: snapshots,
	}
}

// Run executes one aggregation pass over all configured shops. Only one run
// may be active at a time; a concurrent call returns ErrRunInProgress.
func (s *AggregationService) Run(ctx context.Context) (*domain.RunReport, error) {
	if !s.mu.TryLock() {
		return nil, domain.ErrRunInProgress
	}
	defer s.mu.Unlock()

	start := time.Now()
	log.Printf("[RUN] starting aggregation for %d shops", len(s.sources))

	s.catalog.ResetShopPrices()

	report := &domain.RunReport{
		StartedAt:    start.UTC().Format(time.RFC3339),
		TotalEntries: s.catalog.Len(),
	}

	for _, src := range s.sources {
		shopReport := s.runShop(ctx, src)
		report.Shops = append(report.Shops, shopReport)
		if !shopReport.Failed {
			report.ShopsSucceeded++
		}
		recordMetrics(shopReport)
	}

	report.PricedEntries = s.catalog.PricedCount()
	report.DurationMs = time.Since(start).Milliseconds()
	s.lastReport = report

	observability.RunsTotal.Inc()
	observability.PricedEntries.Set(float64(report.PricedEntries))

	log.Printf("[RUN] complete: %d/%d shops succeeded, %d/%d entries priced",
		report.ShopsSucceeded, len(s.sources), report.PricedEntries, report.TotalEntries)
	return report, nil
}

// runShop fetches one shop's observations, replaying the cached snapshot when
// the source fails or yields nothing, and resolves them against the catalog.
func (s *AggregationService) runShop(ctx context.Context, src domain.Source) domain.ShopReport {
	shopID := src.ShopID()

	observations, err := src.Fetch(ctx)
	fromCache := false
	if err != nil || len(observations) == 0 {
		if err != nil {
			log.Printf("[RUN] %s: fetch failed: %v", shopID, err)
		} else {
			log.Printf("[RUN] %s: no observations scraped", shopID)
		}

		cached, cacheErr := s.snapshots.Load(ctx, shopID)
		if cacheErr != nil || len(cached) == 0 {
			log.Printf("[RUN] %s: no cached snapshot available", shopID)
			return domain.ShopReport{ShopID: shopID, ShopName: src.ShopName(), Failed: true}
		}
		log.Printf("[RUN] %s: using cached snapshot (%d items)", shopID, len(cached))
		observations = cached
		fromCache = true
	}

	shopReport := s.resolver.Resolve(shopID, observations)
	shopReport.ShopName = src.ShopName()
	shopReport.FromCache = fromCache

	if !fromCache {
		if saveErr := s.snapshots.Save(ctx, shopID, observations); saveErr != nil {
			log.Printf("[RUN] %s: snapshot save failed: %v", shopID, saveErr)
		}
	}
	return shopReport
}

// PriceTable returns a copy of the resolved comparison table. Safe to call
// concurrently with Run: it waits for any active run to finish.
func (s *AggregationService) PriceTable() []domain.PriceRow {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows := make([]domain.PriceRow, 0, s.catalog.Len())
	for _, e := range s.catalog.Entries() {
		prices := make(map[string]int, len(e.ShopPrices))
		for shop, price := range e.ShopPrices {
			prices[shop] = price
		}
		rows = append(rows, domain.PriceRow{
			Category:    e.Category,
			Name:        e.Name,
			RetailPrice: e.RetailPrice,
			Prices:      prices,
		})
	}
	return rows
}

// PriceTableFor returns the comparison table restricted to one shop's column.
// The shop must be one of the configured sources; anything else returns
// ErrUnknownShop.
func (s *AggregationService) PriceTableFor(shopID string) ([]domain.PriceRow, error) {
	known := false
	for _, src := range s.sources {
		if src.ShopID() == shopID {
			known = true
			break
		}
	}
	if !known {
		return nil, fmt.Errorf("%s: %w", shopID, domain.ErrUnknownShop)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rows := make([]domain.PriceRow, 0, s.catalog.Len())
	for _, e := range s.catalog.Entries() {
		prices := make(map[string]int, 1)
		if price, ok := e.ShopPrices[shopID]; ok {
			prices[shopID] = price
		}
		rows = append(rows, domain.PriceRow{
			Category:    e.Category,
			Name:        e.Name,
			RetailPrice: e.RetailPrice,
			Prices:      prices,
		})
	}
	return rows, nil
}

// LastReport returns the report of the most recent completed run, or nil if
// no run has completed yet.
func (s *AggregationService) LastReport() *domain.RunReport {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastReport
}

// ShopIDs returns the configured shop identifiers in source order.
func (s *AggregationService) ShopIDs() []string {
	ids := make([]string, 0, len(s.sources))
	for _, src := range s.sources {
		ids = append(ids, src.ShopID())
	}
	return ids
}

func recordMetrics(r domain.ShopReport) {
	observability.ObservationsTotal.WithLabelValues(r.ShopID).Add(float64(r.Total))
	observability.ObservationsRejected.WithLabelValues(r.ShopID, "price").Add(float64(r.RejectedPrice))
	observability.ObservationsRejected.WithLabelValues(r.ShopID, "single_card").Add(float64(r.RejectedSingleCard))
	observability.ObservationsUnmatched.WithLabelValues(r.ShopID).Add(float64(r.Unmatched))
	observability.EntriesMatched.WithLabelValues(r.ShopID).Add(float64(r.MatchedEntries))
}
