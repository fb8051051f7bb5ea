package usecase

import (
	"log"

	"github.com/kaitori/backend/internal/domain"
)

// Resolver applies a shop's observation sequence to the catalog. Observations
// are processed strictly in order: the first observation to match an entry
// wins that entry's price slot for the shop, so duplicate or paginated
// re-scrapes never overwrite an earlier price.
type Resolver struct {
	filter  *CandidateFilter
	matcher *CatalogMatcher
	debug   bool
}

// NewResolver wires the candidate filter and catalog matcher together.
func NewResolver(filter *CandidateFilter, matcher *CatalogMatcher, debug bool) *Resolver {
	return &Resolver{filter: filter, matcher: matcher, debug: debug}
}

// Resolve matches every observation for one shop and records winning prices
// into the catalog. The returned report counts distinct matched entries, not
// matched observations: an entry is counted once per shop run no matter how
// many observations hit it.
func (r *Resolver) Resolve(shopID string, observations []domain.Observation) domain.ShopReport {
	report := domain.ShopReport{ShopID: shopID, Total: len(observations)}
	counted := make(map[int]struct{})

	for _, obs := range observations {
		decision, ok := r.filter.Eligible(obs)
		if !ok {
			switch decision {
			case domain.DecisionRejectedPrice:
				report.RejectedPrice++
			case domain.DecisionRejectedSingleCard:
				report.RejectedSingleCard++
			}
			continue
		}
		report.Eligible++

		result := r.matcher.Match(obs.Name)
		if result.Decision != domain.DecisionMatched {
			report.Unmatched++
			if r.debug {
				log.Printf("[RESOLVE] unmatched: %s (best_score=%d)", obs.Name, result.Score)
			}
			continue
		}

		result.Entry.RecordPrice(shopID, obs.Price)
		if _, seen := counted[result.EntryIndex]; !seen {
			counted[result.EntryIndex] = struct{}{}
			if r.debug {
				log.Printf("[RESOLVE] %s -> %s (score=%d, price=%d)",
					obs.Name, result.Entry.Name, result.Score, obs.Price)
			}
		}
	}

	report.MatchedEntries = len(counted)
	log.Printf("[RESOLVE] %s: matched %d/%d items", shopID, report.MatchedEntries, report.Total)
	return report
}
