package pgdb

import (
	"context"

	"github.com/DRSN-tech/storefront-backend/pkg/e"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

// AdminRepo реализует allow-list администраторов поверх PostgreSQL.
type AdminRepo struct {
	pool *pgxpool.Pool
}

func NewAdminRepo(pool *pgxpool.Pool) *AdminRepo {
	return &AdminRepo{pool: pool}
}

// Exists проверяет членство пользователя в таблице admins.
func (a *AdminRepo) Exists(ctx context.Context, userUID string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM admins WHERE "userUID" = $1)`

	var exists bool
	if err := a.pool.QueryRow(ctx, query, userUID).Scan(&exists); err != nil {
		return false, e.Wrap(whereami.WhereAmI(), err)
	}

	return exists, nil
}
