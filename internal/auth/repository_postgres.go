package auth

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresUserRepository struct {
	db *pgxpool.Pool
}

func NewPostgresUserRepository(db *pgxpool.Pool) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

func (r *PostgresUserRepository) Save(user *User) error {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}

	query := `
		INSERT INTO users (id, name, phone, role, village, password)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.db.Exec(context.Background(), query,
		user.ID, user.Name, user.Phone, user.Role, user.Village, user.Password,
	)
	return err
}

func (r *PostgresUserRepository) ExistsByPhone(phone, role string) (bool, error) {
	query := `SELECT 1 FROM users WHERE phone=$1 AND role=$2 LIMIT 1`
	row := r.db.QueryRow(context.Background(), query, phone, role)

	var exists int
	if err := row.Scan(&exists); err != nil {
		return false, nil
	}
	return true, nil
}

func (r *PostgresUserRepository) FindByPhone(phone, role string) (*User, error) {
	query := `
		SELECT id, name, phone, role, village, password
		FROM users WHERE phone=$1 AND role=$2
	`
	row := r.db.QueryRow(context.Background(), query, phone, role)

	user := &User{}
	if err := row.Scan(&user.ID, &user.Name, &user.Phone, &user.Role, &user.Village, &user.Password); err != nil {
		return nil, errors.New("user not found")
	}
	return user, nil
}
