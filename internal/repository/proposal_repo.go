package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/SunbrightCreators/Backend/internal/model"
)

type ProposalRepo struct {
	pool *pgxpool.Pool
}

func NewProposalRepo(pool *pgxpool.Pool) *ProposalRepo {
	return &ProposalRepo{pool: pool}
}

// Exists reports whether a proposal with the given id exists.
func (r *ProposalRepo) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM proposals WHERE id = $1)`, id).Scan(&exists)
	return exists, err
}

// GetByID returns a single proposal. pgx.ErrNoRows when absent.
func (r *ProposalRepo) GetByID(ctx context.Context, id int64) (*model.Proposal, error) {
	var p model.Proposal
	err := r.pool.QueryRow(ctx, `
		SELECT p.id, p.proposer_id, p.title, p.content, p.industry,
		       p.region, p.sub_region, p.district,
		       p.latitude, p.longitude, p.created_at
		FROM proposals p
		WHERE p.id = $1`, id).Scan(
		&p.ID, &p.ProposerID, &p.Title, &p.Content, &p.Industry,
		&p.Address.Region, &p.Address.SubRegion, &p.Address.District,
		&p.Position.Latitude, &p.Position.Longitude, &p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Count returns the total number of proposals, for the stats endpoint.
func (r *ProposalRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM proposals`).Scan(&n)
	return n, err
}
