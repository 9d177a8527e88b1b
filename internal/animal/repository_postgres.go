package animal

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, a *Animal) error {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	a.CreatedAt = now
	a.UpdatedAt = now

	query := `
		INSERT INTO animals
			(id, farmer_id, tag_id, species, breed, age_months, gender, status, weight_kg, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`
	_, err := r.db.Exec(ctx, query,
		a.ID, a.FarmerID, a.TagID, a.Species, a.Breed, a.AgeMonths,
		a.Gender, a.Status, a.WeightKg, a.Notes, a.CreatedAt, a.UpdatedAt,
	)
	return err
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*Animal, error) {
	query := `
		SELECT id, farmer_id, tag_id, species, breed, age_months, gender, status, weight_kg, notes, created_at, updated_at
		FROM animals WHERE id=$1
	`
	return scanAnimal(r.db.QueryRow(ctx, query, id))
}

func (r *PostgresRepository) ListByFarmer(ctx context.Context, farmerID, species string) ([]*Animal, error) {
	query := `
		SELECT id, farmer_id, tag_id, species, breed, age_months, gender, status, weight_kg, notes, created_at, updated_at
		FROM animals
		WHERE farmer_id=$1 AND ($2 = '' OR species=$2)
		ORDER BY tag_id
	`
	rows, err := r.db.Query(ctx, query, farmerID, species)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanAnimals(rows)
}

func (r *PostgresRepository) ListAll(ctx context.Context, species string) ([]*Animal, error) {
	query := `
		SELECT id, farmer_id, tag_id, species, breed, age_months, gender, status, weight_kg, notes, created_at, updated_at
		FROM animals
		WHERE ($1 = '' OR species=$1)
		ORDER BY tag_id
	`
	rows, err := r.db.Query(ctx, query, species)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanAnimals(rows)
}

func (r *PostgresRepository) Update(ctx context.Context, a *Animal) error {
	a.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE animals
		SET tag_id=$2, species=$3, breed=$4, age_months=$5, gender=$6,
		    status=$7, weight_kg=$8, notes=$9, updated_at=$10
		WHERE id=$1
	`
	tag, err := r.db.Exec(ctx, query,
		a.ID, a.TagID, a.Species, a.Breed, a.AgeMonths,
		a.Gender, a.Status, a.WeightKg, a.Notes, a.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errNotFound
	}
	return nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM animals WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errNotFound
	}
	return nil
}

func scanAnimal(row pgx.Row) (*Animal, error) {
	a := &Animal{}
	err := row.Scan(
		&a.ID, &a.FarmerID, &a.TagID, &a.Species, &a.Breed, &a.AgeMonths,
		&a.Gender, &a.Status, &a.WeightKg, &a.Notes, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, errNotFound
	}
	return a, nil
}

func scanAnimals(rows pgx.Rows) ([]*Animal, error) {
	var out []*Animal
	for rows.Next() {
		a := &Animal{}
		if err := rows.Scan(
			&a.ID, &a.FarmerID, &a.TagID, &a.Species, &a.Breed, &a.AgeMonths,
			&a.Gender, &a.Status, &a.WeightKg, &a.Notes, &a.CreatedAt, &a.UpdatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}
