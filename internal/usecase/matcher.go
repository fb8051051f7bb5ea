package usecase

import (
	"strings"

	"github.com/kaitori/backend/internal/domain"
)

const (
	// keywordScore is the fixed confidence of a keyword fast-path hit.
	// Exact trumps fuzzy.
	keywordScore = 100

	// defaultMatchThreshold is the minimum score for a match to count.
	defaultMatchThreshold = 75
)

// matcherEntry caches the normalized forms of one catalog entry so they are
// computed once, not per observation.
type matcherEntry struct {
	entry        *domain.CatalogEntry
	normName     string
	normKeywords []string
	rule         *domain.VariantRule
	isVariant    bool
}

// CatalogMatcher scores raw listing names against every catalog entry and
// selects a winner under the threshold and tie-break rules. Pure with respect
// to the catalog: Match never mutates anything.
type CatalogMatcher struct {
	entries   []matcherEntry
	threshold int
}

// NewCatalogMatcher builds a matcher over the given catalog. A non-positive
// threshold falls back to the default. Rules drive variant disambiguation for
// keywords shared between two entries.
func NewCatalogMatcher(cat *domain.Catalog, rules []domain.VariantRule, threshold int) *CatalogMatcher {
	if threshold <= 0 {
		threshold = defaultMatchThreshold
	}

	entries := make([]matcherEntry, 0, cat.Len())
	for _, e := range cat.Entries() {
		me := matcherEntry{
			entry:        e,
			normName:     Normalize(e.Name),
			normKeywords: make([]string, 0, len(e.Keywords)),
		}
		for _, kw := range e.Keywords {
			me.normKeywords = append(me.normKeywords, Normalize(kw))
		}
		if rule := ruleFor(e, rules); rule != nil {
			me.rule = rule
			me.isVariant = strings.Contains(e.Name, rule.Marker)
		}
		entries = append(entries, me)
	}

	return &CatalogMatcher{entries: entries, threshold: threshold}
}

// ruleFor finds the variant rule covering any of the entry's keywords.
func ruleFor(e *domain.CatalogEntry, rules []domain.VariantRule) *domain.VariantRule {
	for i := range rules {
		for _, ruleKw := range rules[i].Keywords {
			for _, kw := range e.Keywords {
				if kw == ruleKw {
					return &rules[i]
				}
			}
		}
	}
	return nil
}

// Match scores rawName against the full catalog and returns the best-scoring
// eligible entry, or an unmatched result when the best score is below the
// threshold. Ties keep the first entry in catalog order to reach the score.
func (m *CatalogMatcher) Match(rawName string) domain.MatchResult {
	normName := Normalize(rawName)

	bestScore := 0
	bestIdx := -1
	for i := range m.entries {
		score, eligible := m.entries[i].score(rawName, normName)
		if !eligible {
			continue
		}
		if score > bestScore {
			bestScore = score
			bestIdx = i
		}
	}

	if bestIdx >= 0 && bestScore >= m.threshold {
		return domain.MatchResult{
			Entry:      m.entries[bestIdx].entry,
			EntryIndex: bestIdx,
			Score:      bestScore,
			Decision:   domain.DecisionMatched,
		}
	}

	return domain.MatchResult{EntryIndex: -1, Score: bestScore, Decision: domain.DecisionUnmatched}
}

// score computes this entry's candidate score for the observation. The bool
// is false when a keyword hit is discarded because the raw name's variant
// classification disagrees with the entry's.
func (e *matcherEntry) score(rawName, normName string) (int, bool) {
	for _, kw := range e.normKeywords {
		if kw == "" || !strings.Contains(normName, kw) {
			continue
		}
		if e.rule != nil && hasVariantMarker(rawName, normName, e.rule.Marker) != e.isVariant {
			return 0, false
		}
		return keywordScore, true
	}

	return TokenSortRatio(normName, e.normName), true
}

// hasVariantMarker classifies a raw name as variant or base. The marker is
// looked for case-insensitively in the normalized form and literally in the
// raw form; a name with neither is base by default.
func hasVariantMarker(rawName, normName, marker string) bool {
	return strings.Contains(rawName, marker) ||
		strings.Contains(strings.ToLower(normName), strings.ToLower(marker))
}
