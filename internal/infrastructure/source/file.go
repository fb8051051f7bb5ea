package source

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/kaitori/backend/internal/domain"
)

// FileSource replays a shop's observations from a JSON dump on disk: an array
// of {"name": ..., "price": ...} objects, written by whatever acquisition
// process scrapes the shop.
type FileSource struct {
	shop Shop
	path string
}

// NewFileSource creates a source that reads the given file on every fetch.
func NewFileSource(shop Shop, path string) *FileSource {
	return &FileSource{shop: shop, path: path}
}

func (s *FileSource) ShopID() string   { return s.shop.ID }
func (s *FileSource) ShopName() string { return s.shop.Name }

// Fetch reads and decodes the dump file. A missing or malformed file is an
// acquisition failure; the caller falls back to its snapshot cache.
func (s *FileSource) Fetch(ctx context.Context) ([]domain.Observation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read observations for %s: %w", s.shop.ID, err)
	}

	var observations []domain.Observation
	if err := json.Unmarshal(data, &observations); err != nil {
		return nil, fmt.Errorf("decode observations for %s: %w", s.shop.ID, err)
	}
	if len(observations) == 0 {
		return nil, fmt.Errorf("%s: %w", s.shop.ID, domain.ErrNoObservations)
	}
	return observations, nil
}

// FromDir builds one file source per supported shop, reading <dir>/<shopID>.json.
// Every shop gets a source whether or not its file exists yet; missing files
// surface as fetch failures and fall back to cached snapshots.
func FromDir(dir string) []domain.Source {
	shops := Shops()
	sources := make([]domain.Source, 0, len(shops))
	for _, shop := range shops {
		sources = append(sources, NewFileSource(shop, filepath.Join(dir, shop.ID+".json")))
	}
	return sources
}
