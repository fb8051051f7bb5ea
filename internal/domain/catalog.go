package domain

// Category identifies which product family a catalog entry belongs to
type Category string

const (
	CategoryMega Category = "mega"
	CategorySV   Category = "sv"
)

// CatalogEntry is one master product that scraped listings are resolved against.
// Identity fields (Category, Name, RetailPrice, Keywords) are fixed configuration;
// ShopPrices is the only mutable field and holds at most one price per shop per run.
type CatalogEntry struct {
	Category    Category       `json:"category"`
	Name        string         `json:"name"`
	RetailPrice int            `json:"retailPrice"` // yen, 0 = unknown
	Keywords    []string       `json:"keywords"`
	ShopPrices  map[string]int `json:"shopPrices"`
}

// RecordPrice stores a buyback price for the given shop, keeping the first value
// written per shop. Returns true if the price was stored, false if the shop
// already had a price for this entry.
func (e *CatalogEntry) RecordPrice(shopID string, price int) bool {
	if e.ShopPrices == nil {
		e.ShopPrices = make(map[string]int)
	}
	if _, ok := e.ShopPrices[shopID]; ok {
		return false
	}
	e.ShopPrices[shopID] = price
	return true
}

// Catalog is the ordered master product list. The order is significant: the
// matcher keeps the first entry to reach the best score.
type Catalog struct {
	entries []*CatalogEntry
}

// NewCatalog wraps the given entries. The catalog takes ownership of the slice.
func NewCatalog(entries []*CatalogEntry) *Catalog {
	return &Catalog{entries: entries}
}

// Entries returns the ordered entry list. Callers must not reorder it.
func (c *Catalog) Entries() []*CatalogEntry {
	return c.entries
}

// Len returns the number of catalog entries.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// ResetShopPrices clears every entry's shop price map. Must be called once
// before each aggregation run.
func (c *Catalog) ResetShopPrices() {
	for _, e := range c.entries {
		e.ShopPrices = make(map[string]int)
	}
}

// PricedCount returns how many entries currently hold at least one shop price.
func (c *Catalog) PricedCount() int {
	n := 0
	for _, e := range c.entries {
		if len(e.ShopPrices) > 0 {
			n++
		}
	}
	return n
}
