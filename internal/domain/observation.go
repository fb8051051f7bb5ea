package domain

import "context"

// Observation is one raw (name, price) pair yielded by a shop's acquisition for
// a single run. Price is in yen; zero or negative means "buyback unavailable".
type Observation struct {
	Name  string `json:"name"`
	Price int    `json:"price"`
}

// Source produces the observation sequence for one shop. Implementations own
// their own transport and retry policy; Fetch either returns the full finite
// sequence for this run or an error.
type Source interface {
	ShopID() string
	ShopName() string
	Fetch(ctx context.Context) ([]Observation, error)
}

// Decision classifies what the resolution engine did with one observation.
type Decision string

const (
	DecisionMatched            Decision = "matched"
	DecisionRejectedPrice      Decision = "rejected-price"
	DecisionRejectedSingleCard Decision = "rejected-single-card"
	DecisionUnmatched          Decision = "unmatched"
)

// MatchResult is the outcome of scoring one observation against the catalog.
// Entry is nil unless Decision is DecisionMatched. EntryIndex is the entry's
// position in the catalog and serves as its stable identifier.
type MatchResult struct {
	Entry      *CatalogEntry
	EntryIndex int
	Score      int // 0-100
	Decision   Decision
}

// ShopReport summarizes one resolve pass over a shop's observations.
type ShopReport struct {
	ShopID             string `json:"shopId"`
	ShopName           string `json:"shopName"`
	Total              int    `json:"total"`
	Eligible           int    `json:"eligible"`
	MatchedEntries     int    `json:"matchedEntries"`
	RejectedPrice      int    `json:"rejectedPrice"`
	RejectedSingleCard int    `json:"rejectedSingleCard"`
	Unmatched          int    `json:"unmatched"`
	FromCache          bool   `json:"fromCache"`
	Failed             bool   `json:"failed"`
}

// RunReport summarizes one full aggregation run across all shops.
type RunReport struct {
	StartedAt      string       `json:"startedAt"`
	DurationMs     int64        `json:"durationMs"`
	Shops          []ShopReport `json:"shops"`
	ShopsSucceeded int          `json:"shopsSucceeded"`
	PricedEntries  int          `json:"pricedEntries"`
	TotalEntries   int          `json:"totalEntries"`
}

// PriceRow is one line of the resolved comparison table served to clients.
type PriceRow struct {
	Category    Category       `json:"category"`
	Name        string         `json:"name"`
	RetailPrice int            `json:"retailPrice"`
	Prices      map[string]int `json:"prices"`
}
