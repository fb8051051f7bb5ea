package catalog

import (
	"strings"
	"testing"

	"github.com/kaitori/backend/internal/domain"
)

func TestMaster(t *testing.T) {
	cat := Master()

	t.Run("has both product families", func(t *testing.T) {
		mega, sv := 0, 0
		for _, e := range cat.Entries() {
			switch e.Category {
			case domain.CategoryMega:
				mega++
			case domain.CategorySV:
				sv++
			default:
				t.Errorf("entry %q has unknown category %q", e.Name, e.Category)
			}
		}
		if mega == 0 || sv == 0 {
			t.Errorf("mega = %d, sv = %d, want both > 0", mega, sv)
		}
	})

	t.Run("every entry has keywords and a name", func(t *testing.T) {
		for _, e := range cat.Entries() {
			if e.Name == "" {
				t.Error("entry with empty name")
			}
			if len(e.Keywords) == 0 {
				t.Errorf("entry %q has no keywords", e.Name)
			}
		}
	})

	t.Run("shop prices start empty", func(t *testing.T) {
		for _, e := range cat.Entries() {
			if len(e.ShopPrices) != 0 {
				t.Errorf("entry %q starts with prices %v", e.Name, e.ShopPrices)
			}
		}
	})

	t.Run("fresh catalogs are independent", func(t *testing.T) {
		a := Master()
		b := Master()
		a.Entries()[0].RecordPrice("shopA", 100)
		if len(b.Entries()[0].ShopPrices) != 0 {
			t.Error("recording into one catalog leaked into another")
		}
	})
}

func TestRules(t *testing.T) {
	rules := Rules()
	if len(rules) == 0 {
		t.Fatal("expected at least one variant rule")
	}
	for _, rule := range rules {
		if rule.Marker == "" {
			t.Error("rule with empty marker")
		}
		if len(rule.Keywords) == 0 {
			t.Error("rule with no keywords")
		}
	}
}

func TestRulesCoverSharedDXKeywords(t *testing.T) {
	// Every rule keyword must actually be shared by a DX entry and a base entry.
	cat := Master()
	for _, rule := range Rules() {
		for _, kw := range rule.Keywords {
			dx, base := 0, 0
			for _, e := range cat.Entries() {
				for _, k := range e.Keywords {
					if k != kw {
						continue
					}
					if strings.Contains(e.Name, rule.Marker) {
						dx++
					} else {
						base++
					}
				}
			}
			if dx != 1 || base != 1 {
				t.Errorf("keyword %q: %d marked entries and %d base entries, want 1 and 1", kw, dx, base)
			}
		}
	}
}

func TestValidate(t *testing.T) {
	t.Run("master catalog has no uncovered collisions", func(t *testing.T) {
		warnings := Validate(Master(), Rules())
		if len(warnings) != 0 {
			t.Errorf("unexpected warnings: %v", warnings)
		}
	})

	t.Run("reports a shared keyword without a rule", func(t *testing.T) {
		cat := domain.NewCatalog([]*domain.CatalogEntry{
			{Name: "Pack One", Keywords: []string{"shared"}},
			{Name: "Pack Two", Keywords: []string{"shared"}},
		})
		warnings := Validate(cat, nil)
		if len(warnings) != 1 {
			t.Fatalf("warnings = %v, want exactly 1", warnings)
		}
		if !strings.Contains(warnings[0], "shared") {
			t.Errorf("warning %q does not name the keyword", warnings[0])
		}
	})

	t.Run("rule-covered keywords are not reported", func(t *testing.T) {
		cat := domain.NewCatalog([]*domain.CatalogEntry{
			{Name: "Pack DX Volt", Keywords: []string{"Volt"}},
			{Name: "Pack Volt", Keywords: []string{"Volt"}},
		})
		rules := []domain.VariantRule{{Marker: "DX", Keywords: []string{"Volt"}}}
		if warnings := Validate(cat, rules); len(warnings) != 0 {
			t.Errorf("unexpected warnings: %v", warnings)
		}
	})
}
