package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/SunbrightCreators/Backend/internal/model"
)

type ViewerRepo struct {
	pool *pgxpool.Pool
}

func NewViewerRepo(pool *pgxpool.Pool) *ViewerRepo {
	return &ViewerRepo{pool: pool}
}

// ListAddresses returns every registered address for a viewer in a role,
// most recent first. Discovery matching is existential over the whole list,
// so callers do not need to pick "the" address.
func (r *ViewerRepo) ListAddresses(ctx context.Context, viewerID string, role model.Role) ([]model.Address, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT region, sub_region, district
		FROM viewer_addresses
		WHERE viewer_id = $1 AND role = $2
		ORDER BY created_at DESC`, viewerID, role.String())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Address
	for rows.Next() {
		var a model.Address
		if err := rows.Scan(&a.Region, &a.SubRegion, &a.District); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}
