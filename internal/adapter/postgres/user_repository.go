package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"dmc-campaigns/internal/core/domain"
)

// UserRepository implements port.UserRepository using pgxpool.
type UserRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository returns a new repository instance.
func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

const userColumns = `id, name, email, password_hash, role, is_active, last_login, created_at, updated_at`

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.Password, &u.Role, &u.IsActive, &u.LastLogin, &u.CreatedAt, &u.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Create inserts a new user record.
func (r *UserRepository) Create(ctx context.Context, u *domain.User) error {
	_, err := r.pool.Exec(ctx, `INSERT INTO users (id, name, email, password_hash, role, is_active, last_login, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`,
		u.ID, u.Name, u.Email, u.Password, u.Role, u.IsActive, u.LastLogin, u.CreatedAt, u.UpdatedAt)
	return err
}

// GetByID returns a user by id, or nil when absent.
func (r *UserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return scanUser(r.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id))
}

// GetByEmail returns a user by exact email match, or nil when absent.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return scanUser(r.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email))
}

// GetByIDs returns the users whose ids appear in ids. Missing ids are
// skipped silently.
func (r *UserRepository) GetByIDs(ctx context.Context, ids []string) ([]domain.User, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+userColumns+` FROM users WHERE id = ANY($1)`, ids)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.User, error) {
		var u domain.User
		err := row.Scan(&u.ID, &u.Name, &u.Email, &u.Password, &u.Role, &u.IsActive, &u.LastLogin, &u.CreatedAt, &u.UpdatedAt)
		return u, err
	})
}

// Update overwrites the stored record.
func (r *UserRepository) Update(ctx context.Context, u *domain.User) error {
	_, err := r.pool.Exec(ctx, `UPDATE users SET name = $2, email = $3, password_hash = $4, role = $5, is_active = $6, last_login = $7, updated_at = $8 WHERE id = $1`,
		u.ID, u.Name, u.Email, u.Password, u.Role, u.IsActive, u.LastLogin, u.UpdatedAt)
	return err
}
