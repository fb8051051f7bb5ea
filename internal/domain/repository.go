package domain

import "context"

// SnapshotStore persists the last successful scrape per shop so a failed or
// empty acquisition can be replayed from cache on the next run.
type SnapshotStore interface {
	Load(ctx context.Context, shopID string) ([]Observation, error)
	Save(ctx context.Context, shopID string, observations []Observation) error
	Close() error
}

// VariantRule declares that a set of catalog keywords is shared by two entries
// that differ only by an edition marker (e.g. a "DX" printing next to the base
// printing). A raw name carrying the marker resolves to the marked entry, any
// other raw name resolves to the base entry.
type VariantRule struct {
	Marker   string
	Keywords []string
}
