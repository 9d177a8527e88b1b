package db

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"pashumitra/internal/catalog"
)

// Connect opens the pool, verifies connectivity and ensures the schema.
func Connect(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, err
	}

	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, err
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	if err := initSchema(ctx, pool); err != nil {
		pool.Close()
		return nil, err
	}

	return pool, nil
}

// initSchema creates or updates the database schema.
func initSchema(ctx context.Context, pool *pgxpool.Pool) error {

	// -------------------------------
	// USERS
	// -------------------------------
	userTableSQL := `
		CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			phone VARCHAR(20) NOT NULL,
			role VARCHAR(50) NOT NULL,
			village VARCHAR(255),
			password VARCHAR(255) NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			UNIQUE (phone, role)
		)
	`
	if _, err := pool.Exec(ctx, userTableSQL); err != nil {
		return err
	}

	// -------------------------------
	// ANIMAL REGISTER
	// -------------------------------
	animalTableSQL := `
		CREATE TABLE IF NOT EXISTS animals (
			id UUID PRIMARY KEY,
			farmer_id UUID NOT NULL,
			tag_id VARCHAR(100) NOT NULL,
			species VARCHAR(50) NOT NULL,
			breed VARCHAR(100) NOT NULL,
			age_months INT NOT NULL DEFAULT 0,
			gender VARCHAR(20) NOT NULL,
			status VARCHAR(50) NOT NULL DEFAULT 'healthy',
			weight_kg DOUBLE PRECISION,
			notes TEXT,
			created_at TIMESTAMP NOT NULL,
			updated_at TIMESTAMP NOT NULL,
			FOREIGN KEY (farmer_id) REFERENCES users(id)
		)
	`
	if _, err := pool.Exec(ctx, animalTableSQL); err != nil {
		return err
	}

	// -------------------------------
	// NUTRITION REFERENCE TABLES
	// -------------------------------
	catalogTablesSQL := `
		CREATE TABLE IF NOT EXISTS status_profiles (
			id VARCHAR(100) PRIMARY KEY,
			label VARCHAR(255) NOT NULL,
			dm_required_pct DOUBLE PRECISION NOT NULL,
			protein_pct DOUBLE PRECISION NOT NULL,
			tdn_pct DOUBLE PRECISION NOT NULL,
			lactating BOOLEAN NOT NULL DEFAULT FALSE,
			position INT NOT NULL
		);

		CREATE TABLE IF NOT EXISTS feed_items (
			id VARCHAR(100) PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			category VARCHAR(50) NOT NULL,
			dm_pct DOUBLE PRECISION NOT NULL,
			cp_pct DOUBLE PRECISION NOT NULL,
			tdn_pct DOUBLE PRECISION NOT NULL,
			default_price_per_kg DOUBLE PRECISION NOT NULL,
			position INT NOT NULL
		);
	`
	if _, err := pool.Exec(ctx, catalogTablesSQL); err != nil {
		return err
	}

	return seedCatalog(ctx, pool)
}

// seedCatalog inserts the compiled-in reference tables; existing rows win so
// locally edited values survive restarts.
func seedCatalog(ctx context.Context, pool *pgxpool.Pool) error {
	for i, s := range catalog.DefaultStatusProfiles() {
		_, err := pool.Exec(ctx, `
			INSERT INTO status_profiles (id, label, dm_required_pct, protein_pct, tdn_pct, lactating, position)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			ON CONFLICT (id) DO NOTHING
		`, s.ID, s.Label, s.DMRequiredPct, s.ProteinPct, s.TDNPct, s.Lactating, i)
		if err != nil {
			return err
		}
	}

	for i, f := range catalog.DefaultFeedItems() {
		_, err := pool.Exec(ctx, `
			INSERT INTO feed_items (id, name, category, dm_pct, cp_pct, tdn_pct, default_price_per_kg, position)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			ON CONFLICT (id) DO NOTHING
		`, f.ID, f.Name, string(f.Category), f.DMPct, f.CPPct, f.TDNPct, f.DefaultPricePerKg, i)
		if err != nil {
			return err
		}
	}

	return nil
}
