// Package source holds the acquisition boundary: the registry of supported
// shops and adapters that satisfy domain.Source. Actual scraping lives outside
// this repository; a source only has to yield the finite (name, price)
// sequence for one shop, or fail.
package source

import (
	"context"

	"github.com/kaitori/backend/internal/domain"
)

// Shop identifies one supported retailer.
type Shop struct {
	ID   string
	Name string
}

// Shops returns the supported retailers in their fixed display order.
func Shops() []Shop {
	return []Shop{
		{ID: "morimori", Name: "森森"},
		{ID: "homura", Name: "ホムラ"},
		{ID: "kaikyo", Name: "海峡"},
		{ID: "icchome", Name: "一丁目"},
		{ID: "runto", Name: "ラントゥ"},
		{ID: "rudeya", Name: "ルデヤ"},
		{ID: "sommelier", Name: "ソムリエ"},
		{ID: "shouten", Name: "商店"},
	}
}

// FetchFunc produces one shop's observation sequence for a run.
type FetchFunc func(ctx context.Context) ([]domain.Observation, error)

// Func adapts a plain fetch function to domain.Source.
type Func struct {
	shop  Shop
	fetch FetchFunc
}

// NewFunc wraps fetch as a source for the given shop.
func NewFunc(shop Shop, fetch FetchFunc) *Func {
	return &Func{shop: shop, fetch: fetch}
}

func (f *Func) ShopID() string   { return f.shop.ID }
func (f *Func) ShopName() string { return f.shop.Name }

func (f *Func) Fetch(ctx context.Context) ([]domain.Observation, error) {
	return f.fetch(ctx)
}
