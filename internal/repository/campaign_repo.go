package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/SunbrightCreators/Backend/internal/model"
)

type CampaignRepo struct {
	pool *pgxpool.Pool
}

func NewCampaignRepo(pool *pgxpool.Pool) *CampaignRepo {
	return &CampaignRepo{pool: pool}
}

const campaignColumns = `
	c.id, c.founder_id, c.title, c.business_name, c.industry, c.status,
	c.region, c.sub_region, c.district,
	c.latitude, c.longitude, c.goal_amount, c.raised_amount, c.created_at`

func scanCampaign(row interface{ Scan(dest ...any) error }, c *model.Campaign) error {
	return row.Scan(
		&c.ID, &c.FounderID, &c.Title, &c.BusinessName, &c.Industry, &c.Status,
		&c.Address.Region, &c.Address.SubRegion, &c.Address.District,
		&c.Position.Latitude, &c.Position.Longitude,
		&c.GoalAmount, &c.RaisedAmount, &c.CreatedAt,
	)
}

// Exists reports whether a campaign with the given id exists.
func (r *CampaignRepo) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM campaigns WHERE id = $1)`, id).Scan(&exists)
	return exists, err
}

// GetByID returns a single campaign. pgx.ErrNoRows when absent.
func (r *CampaignRepo) GetByID(ctx context.Context, id int64) (*model.Campaign, error) {
	var c model.Campaign
	err := scanCampaign(r.pool.QueryRow(ctx,
		`SELECT `+campaignColumns+` FROM campaigns c WHERE c.id = $1`, id), &c)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// ListInProgress returns in-progress campaigns under an address prefix with
// an optional industry filter, in insertion order. This is the cluster-tier
// input: grouping happens in the service, not in SQL, so the aggregation
// stays unit-testable.
func (r *CampaignRepo) ListInProgress(ctx context.Context, prefix model.Address, industry string) ([]model.Campaign, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+campaignColumns+`
		FROM campaigns c
		WHERE c.status = $1
		  AND ($2 = '' OR c.region = $2)
		  AND ($3 = '' OR c.sub_region = $3)
		  AND ($4 = '' OR c.district = $4)
		  AND ($5 = '' OR c.industry = $5)
		ORDER BY c.id`,
		model.StatusInProgress, prefix.Region, prefix.SubRegion, prefix.District, industry)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Campaign
	for rows.Next() {
		var c model.Campaign
		if err := scanCampaign(rows, &c); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// detail-tier ORDER BY clauses, keyed by the closed ordering vocabulary.
var orderClauses = map[string]string{
	model.OrderRecent: "c.created_at DESC",
	model.OrderFunded: "c.raised_amount DESC, c.created_at DESC",
	model.OrderLiked:  "likes_count DESC, c.created_at DESC",
}

// ListDetail returns the annotated flat list for the detail tier: in-progress
// campaigns at the exact address, with like/scrap counts and viewer-relative
// flags scoped to the viewer's role.
func (r *CampaignRepo) ListDetail(ctx context.Context, addr model.Address, industry, order string, viewer model.Viewer) ([]model.CampaignSummary, error) {
	clause, ok := orderClauses[order]
	if !ok {
		return nil, fmt.Errorf("unknown order %q", order)
	}

	scrapTable, err := RelationTable(viewer.Role, model.RelationScrap, model.TargetCampaign)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`
		SELECT `+campaignColumns+`,
		       (SELECT COUNT(*) FROM proposer_like_campaigns l WHERE l.target_id = c.id) AS likes_count,
		       (SELECT COUNT(*) FROM proposer_scrap_campaigns ps WHERE ps.target_id = c.id)
		         + (SELECT COUNT(*) FROM founder_scrap_campaigns fs WHERE fs.target_id = c.id) AS scraps_count,
		       EXISTS (SELECT 1 FROM proposer_like_campaigns l WHERE l.target_id = c.id AND l.viewer_id = $6) AS is_liked,
		       EXISTS (SELECT 1 FROM %s s WHERE s.target_id = c.id AND s.viewer_id = $6) AS is_scrapped
		FROM campaigns c
		WHERE c.status = $1
		  AND c.region = $2 AND c.sub_region = $3 AND c.district = $4
		  AND ($5 = '' OR c.industry = $5)
		ORDER BY %s`, scrapTable, clause)

	rows, err := r.pool.Query(ctx, query,
		model.StatusInProgress, addr.Region, addr.SubRegion, addr.District, industry, viewer.ID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.CampaignSummary
	for rows.Next() {
		var s model.CampaignSummary
		var isLiked bool
		err := rows.Scan(
			&s.ID, &s.FounderID, &s.Title, &s.BusinessName, &s.Industry, &s.Status,
			&s.Address.Region, &s.Address.SubRegion, &s.Address.District,
			&s.Position.Latitude, &s.Position.Longitude,
			&s.GoalAmount, &s.RaisedAmount, &s.CreatedAt,
			&s.LikesCount, &s.ScrapsCount, &isLiked, &s.IsScrapped,
		)
		if err != nil {
			return nil, err
		}
		// Likes are proposer-only; founders never see a liked flag.
		if viewer.Role == model.RoleProposer {
			s.IsLiked = &isLiked
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// GetSummary returns one campaign annotated for the given viewer, for the
// single-campaign detail endpoint.
func (r *CampaignRepo) GetSummary(ctx context.Context, id int64, viewer model.Viewer) (*model.CampaignSummary, error) {
	scrapTable, err := RelationTable(viewer.Role, model.RelationScrap, model.TargetCampaign)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`
		SELECT `+campaignColumns+`,
		       (SELECT COUNT(*) FROM proposer_like_campaigns l WHERE l.target_id = c.id),
		       (SELECT COUNT(*) FROM proposer_scrap_campaigns ps WHERE ps.target_id = c.id)
		         + (SELECT COUNT(*) FROM founder_scrap_campaigns fs WHERE fs.target_id = c.id),
		       EXISTS (SELECT 1 FROM proposer_like_campaigns l WHERE l.target_id = c.id AND l.viewer_id = $2),
		       EXISTS (SELECT 1 FROM %s s WHERE s.target_id = c.id AND s.viewer_id = $2)
		FROM campaigns c
		WHERE c.id = $1`, scrapTable)

	var s model.CampaignSummary
	var isLiked bool
	err = r.pool.QueryRow(ctx, query, id, viewer.ID).Scan(
		&s.ID, &s.FounderID, &s.Title, &s.BusinessName, &s.Industry, &s.Status,
		&s.Address.Region, &s.Address.SubRegion, &s.Address.District,
		&s.Position.Latitude, &s.Position.Longitude,
		&s.GoalAmount, &s.RaisedAmount, &s.CreatedAt,
		&s.LikesCount, &s.ScrapsCount, &isLiked, &s.IsScrapped,
	)
	if err != nil {
		return nil, err
	}
	if viewer.Role == model.RoleProposer {
		s.IsLiked = &isLiked
	}
	return &s, nil
}

// ListByFounder returns every campaign owned by a founder, newest first.
func (r *CampaignRepo) ListByFounder(ctx context.Context, founderID string) ([]model.Campaign, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+campaignColumns+`
		FROM campaigns c
		WHERE c.founder_id = $1
		ORDER BY c.created_at DESC`, founderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Campaign
	for rows.Next() {
		var c model.Campaign
		if err := scanCampaign(rows, &c); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// CountByStatus returns campaign counts per status for the stats endpoint.
func (r *CampaignRepo) CountByStatus(ctx context.Context) (map[string]int64, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT status, COUNT(*) FROM campaigns GROUP BY status`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int64)
	for rows.Next() {
		var status string
		var n int64
		if err := rows.Scan(&status, &n); err != nil {
			return nil, err
		}
		counts[status] = n
	}
	return counts, rows.Err()
}
