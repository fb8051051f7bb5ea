package catalog

import (
	"fmt"

	"github.com/kaitori/backend/internal/domain"
)

// Validate reports catalog configuration hazards that the matcher cannot
// detect at runtime: a keyword shared by two or more entries without a variant
// rule covering it resolves by catalog order alone, so extending the catalog
// should surface these instead of silently relying on entry order.
func Validate(cat *domain.Catalog, rules []domain.VariantRule) []string {
	covered := map[string]bool{}
	for _, rule := range rules {
		for _, kw := range rule.Keywords {
			covered[kw] = true
		}
	}

	owners := map[string][]string{}
	for _, e := range cat.Entries() {
		for _, kw := range e.Keywords {
			owners[kw] = append(owners[kw], e.Name)
		}
	}

	var warnings []string
	for _, e := range cat.Entries() {
		for _, kw := range e.Keywords {
			names := owners[kw]
			if len(names) < 2 || covered[kw] {
				continue
			}
			warnings = append(warnings,
				fmt.Sprintf("keyword %q shared by %d entries with no variant rule (first in catalog order wins)", kw, len(names)))
			covered[kw] = true // report each keyword once
		}
	}
	return warnings
}
