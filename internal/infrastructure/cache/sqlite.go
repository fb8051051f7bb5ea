package cache

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/kaitori/backend/internal/domain"
)

// SQLiteStore persists one snapshot row per shop in a local sqlite file.
type SQLiteStore struct {
	conn *sql.DB
	ttl  time.Duration
}

// NewSQLiteStore opens (creating if needed) the snapshot database at path.
// A zero TTL means snapshots never expire.
func NewSQLiteStore(path string, ttl time.Duration) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create snapshot dir: %w", err)
	}

	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open snapshot db: %w", err)
	}

	if _, err := conn.Exec(`PRAGMA journal_mode = WAL;`); err != nil {
		_ = conn.Close()
		return nil, err
	}

	schema := `
CREATE TABLE IF NOT EXISTS snapshots (
  shop_id TEXT PRIMARY KEY,
  payload TEXT NOT NULL,
  updated_at TEXT NOT NULL
);`
	if _, err := conn.Exec(schema); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("init snapshot schema: %w", err)
	}

	return &SQLiteStore{conn: conn, ttl: ttl}, nil
}

// Load returns the shop's last snapshot, or ErrCacheMiss when absent, expired
// or unreadable.
func (s *SQLiteStore) Load(ctx context.Context, shopID string) ([]domain.Observation, error) {
	var payload string
	var updatedAt string
	row := s.conn.QueryRowContext(ctx,
		`SELECT payload, updated_at FROM snapshots WHERE shop_id = ?`, shopID)
	if err := row.Scan(&payload, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrCacheMiss
		}
		return nil, fmt.Errorf("load snapshot for %s: %w", shopID, err)
	}

	if s.ttl > 0 {
		saved, err := time.Parse(time.RFC3339Nano, updatedAt)
		if err != nil || time.Since(saved) > s.ttl {
			return nil, domain.ErrCacheMiss
		}
	}

	var observations []domain.Observation
	if err := json.Unmarshal([]byte(payload), &observations); err != nil {
		return nil, domain.ErrCacheMiss
	}
	return observations, nil
}

// Save upserts the shop's snapshot.
func (s *SQLiteStore) Save(ctx context.Context, shopID string, observations []domain.Observation) error {
	payload, err := json.Marshal(observations)
	if err != nil {
		return fmt.Errorf("marshal snapshot for %s: %w", shopID, err)
	}

	_, err = s.conn.ExecContext(ctx, `
INSERT INTO snapshots (shop_id, payload, updated_at) VALUES (?, ?, ?)
ON CONFLICT(shop_id) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at`,
		shopID, string(payload), time.Now().UTC().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("save snapshot for %s: %w", shopID, err)
	}
	return nil
}

// Close releases the database handle.
func (s *SQLiteStore) Close() error {
	return s.conn.Close()
}
