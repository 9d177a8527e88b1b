package catalog

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresSource reads the reference tables from the database. The schema is
// created and seeded by internal/db at startup.
type PostgresSource struct {
	db *pgxpool.Pool
}

// NewPostgresSource returns a source backed by the given pool.
func NewPostgresSource(db *pgxpool.Pool) *PostgresSource {
	return &PostgresSource{db: db}
}

func (s *PostgresSource) StatusProfiles(ctx context.Context) ([]StatusProfile, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, label, dm_required_pct, protein_pct, tdn_pct, lactating
		FROM status_profiles
		ORDER BY position
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var statuses []StatusProfile
	for rows.Next() {
		var sp StatusProfile
		if err := rows.Scan(
			&sp.ID,
			&sp.Label,
			&sp.DMRequiredPct,
			&sp.ProteinPct,
			&sp.TDNPct,
			&sp.Lactating,
		); err != nil {
			return nil, err
		}
		statuses = append(statuses, sp)
	}

	return statuses, rows.Err()
}

func (s *PostgresSource) FeedItems(ctx context.Context) ([]FeedItem, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, name, category, dm_pct, cp_pct, tdn_pct, default_price_per_kg
		FROM feed_items
		ORDER BY position
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var feeds []FeedItem
	for rows.Next() {
		var f FeedItem
		var category string
		if err := rows.Scan(
			&f.ID,
			&f.Name,
			&category,
			&f.DMPct,
			&f.CPPct,
			&f.TDNPct,
			&f.DefaultPricePerKg,
		); err != nil {
			return nil, err
		}
		f.Category = Category(category)
		feeds = append(feeds, f)
	}

	return feeds, rows.Err()
}
