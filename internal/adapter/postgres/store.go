package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const sidebarWidthKey = "sidebar.width"

// Store implements the prefs store port using PostgreSQL.
type Store struct {
	pool *pgxpool.Pool
}

// NewStore creates a new Store backed by the given connection pool.
func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// GetSidebarWidth returns the persisted sidebar width in pixels.
func (s *Store) GetSidebarWidth(ctx context.Context) (int, bool, error) {
	var raw json.RawMessage
	err := s.pool.QueryRow(ctx,
		`SELECT value FROM ui_prefs WHERE key = $1`, sidebarWidthKey).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("get sidebar width: %w", err)
	}

	var width int
	if err := json.Unmarshal(raw, &width); err != nil {
		// A non-numeric stored value reads as absent so the caller falls
		// back to the default width instead of failing the request.
		return 0, false, nil
	}
	return width, true, nil
}

// SetSidebarWidth upserts the sidebar width preference.
func (s *Store) SetSidebarWidth(ctx context.Context, width int) error {
	value, err := json.Marshal(width)
	if err != nil {
		return fmt.Errorf("encode sidebar width: %w", err)
	}

	_, err = s.pool.Exec(ctx,
		`INSERT INTO ui_prefs (key, value, updated_at)
		 VALUES ($1, $2, NOW())
		 ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()`,
		sidebarWidthKey, value)
	if err != nil {
		return fmt.Errorf("upsert sidebar width: %w", err)
	}
	return nil
}
