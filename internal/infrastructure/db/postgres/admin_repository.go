package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/staffdeck/hr-admin-api/internal/core/domain"
)

// AdminRepository is read-only: admin accounts are provisioned out of band.
type AdminRepository struct {
	pool *pgxpool.Pool
}

func NewAdminRepository(pool *pgxpool.Pool) *AdminRepository {
	return &AdminRepository{pool: pool}
}

func (r *AdminRepository) FindByUsername(ctx context.Context, username string) (*domain.Admin, error) {
	var a domain.Admin
	err := r.pool.QueryRow(ctx,
		`SELECT id, username, password_hash FROM admins WHERE username = $1`,
		username,
	).Scan(&a.ID, &a.Username, &a.PasswordHash)
	if err != nil {
		if noRows(err) {
			return nil, domain.ErrAdminNotFound
		}
		return nil, mapError("find admin", err)
	}
	return &a, nil
}
