package usecase

import (
	"log"
	"strings"

	"github.com/kaitori/backend/internal/domain"
)

// defaultMaxBoxPrice is the sanity ceiling in yen for a single sealed box.
// Buyback offers above it are mis-scraped single ultra-rare card prices.
const defaultMaxBoxPrice = 60000

// sealedIndicators mark a listing as a sealed box/set product. They take
// precedence over singleCardIndicators: a name containing both is kept.
var sealedIndicators = []string{
	"BOX", "box", "Box", "ボックス",
	"パック", "シュリンク", "未開封",
	"セット", "デッキ", "コレクション",
}

// singleCardIndicators mark a listing as an individual card: rarity codes,
// special mechanics, promo and loose-card wording. Checked against the raw
// name only when no sealed indicator is present.
var singleCardIndicators = []string{
	"SAR", " SR ", " UR ", " AR ", " RR ", " HR ", " CSR ", " ACE ",
	"VSTAR", "VMAX",
	"プロモ", "プロモカード", "バラ",
	"1枚", "シングル", "カートン",
}

// CandidateFilter rejects observations that are structurally ineligible for
// matching before any scoring happens.
type CandidateFilter struct {
	maxBoxPrice int
	debug       bool
}

// NewCandidateFilter creates a filter with the given price ceiling in yen.
// A non-positive ceiling falls back to the default.
func NewCandidateFilter(maxBoxPrice int, debug bool) *CandidateFilter {
	if maxBoxPrice <= 0 {
		maxBoxPrice = defaultMaxBoxPrice
	}
	return &CandidateFilter{maxBoxPrice: maxBoxPrice, debug: debug}
}

// IsSingleCard reports whether a raw listing name looks like an individual
// card rather than a sealed product. Sealed indicators win outright.
func IsSingleCard(name string) bool {
	for _, indicator := range sealedIndicators {
		if strings.Contains(name, indicator) {
			return false
		}
	}
	for _, indicator := range singleCardIndicators {
		if strings.Contains(name, indicator) {
			return true
		}
	}
	return false
}

// Eligible reports whether the observation should be scored. When it returns
// false the Decision carries the rejection reason.
func (f *CandidateFilter) Eligible(obs domain.Observation) (domain.Decision, bool) {
	if obs.Price <= 0 {
		return domain.DecisionRejectedPrice, false
	}
	if IsSingleCard(obs.Name) {
		if f.debug {
			log.Printf("[FILTER] skip (single card): %s", obs.Name)
		}
		return domain.DecisionRejectedSingleCard, false
	}
	if obs.Price > f.maxBoxPrice {
		if f.debug {
			log.Printf("[FILTER] skip (price too high): %s = %d", obs.Name, obs.Price)
		}
		return domain.DecisionRejectedPrice, false
	}
	return "", true
}
