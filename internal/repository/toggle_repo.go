package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/SunbrightCreators/Backend/internal/model"
)

// ToggleRepo persists the uniqueness-constrained like/scrap relation records.
// One table per (role, relation, target kind) combination, each keyed
// UNIQUE(viewer_id, target_id) with a created_at timestamp. Existence is the
// state: there is no update path.
type ToggleRepo struct {
	pool *pgxpool.Pool
}

func NewToggleRepo(pool *pgxpool.Pool) *ToggleRepo {
	return &ToggleRepo{pool: pool}
}

// relationTables maps every recognized (role, relation, kind) combination to
// its table. Likes are proposer-only; a combination absent here is invalid.
var relationTables = map[[3]int]string{
	{int(model.RoleProposer), int(model.RelationLike), int(model.TargetCampaign)}:  "proposer_like_campaigns",
	{int(model.RoleProposer), int(model.RelationScrap), int(model.TargetCampaign)}: "proposer_scrap_campaigns",
	{int(model.RoleFounder), int(model.RelationScrap), int(model.TargetCampaign)}:  "founder_scrap_campaigns",
	{int(model.RoleProposer), int(model.RelationLike), int(model.TargetProposal)}:  "proposer_like_proposals",
	{int(model.RoleProposer), int(model.RelationScrap), int(model.TargetProposal)}: "proposer_scrap_proposals",
	{int(model.RoleFounder), int(model.RelationScrap), int(model.TargetProposal)}:  "founder_scrap_proposals",
}

// RelationTable resolves the table backing a relation, or an error for
// combinations that do not exist (e.g. founder likes).
func RelationTable(role model.Role, rel model.RelationKind, kind model.TargetKind) (string, error) {
	t, ok := relationTables[[3]int{int(role), int(rel), int(kind)}]
	if !ok {
		return "", fmt.Errorf("no %s %s relation for role %s", kind, rel, role)
	}
	return t, nil
}

// Insert creates the relation record unless it already exists. Returns true
// when a row was inserted. A concurrent duplicate insert loses the conflict
// and reports false instead of erroring — the uniqueness constraint is the
// safety net, not application-level existence checks.
func (r *ToggleRepo) Insert(ctx context.Context, role model.Role, rel model.RelationKind, kind model.TargetKind, viewerID string, targetID int64) (bool, error) {
	table, err := RelationTable(role, rel, kind)
	if err != nil {
		return false, err
	}
	// table comes from the closed relationTables map, never from input.
	tag, err := r.pool.Exec(ctx, fmt.Sprintf(`
		INSERT INTO %s (viewer_id, target_id)
		VALUES ($1, $2)
		ON CONFLICT (viewer_id, target_id) DO NOTHING`, table),
		viewerID, targetID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

// Delete removes the relation record if present. Returns true when a row was
// deleted.
func (r *ToggleRepo) Delete(ctx context.Context, role model.Role, rel model.RelationKind, kind model.TargetKind, viewerID string, targetID int64) (bool, error) {
	table, err := RelationTable(role, rel, kind)
	if err != nil {
		return false, err
	}
	tag, err := r.pool.Exec(ctx, fmt.Sprintf(`
		DELETE FROM %s WHERE viewer_id = $1 AND target_id = $2`, table),
		viewerID, targetID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

// ListScrappedCampaigns returns the campaigns a viewer has scrapped in the
// given role, most recently scrapped first, optionally restricted to an
// address prefix, annotated with the same like/scrap counts as the detail
// tier.
func (r *ToggleRepo) ListScrappedCampaigns(ctx context.Context, role model.Role, viewerID string, prefix model.Address) ([]model.CampaignSummary, error) {
	table, err := RelationTable(role, model.RelationScrap, model.TargetCampaign)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`
		SELECT c.id, c.founder_id, c.title, c.business_name, c.industry, c.status,
		       c.region, c.sub_region, c.district,
		       c.latitude, c.longitude, c.goal_amount, c.raised_amount, c.created_at,
		       (SELECT COUNT(*) FROM proposer_like_campaigns l WHERE l.target_id = c.id),
		       (SELECT COUNT(*) FROM proposer_scrap_campaigns ps WHERE ps.target_id = c.id)
		         + (SELECT COUNT(*) FROM founder_scrap_campaigns fs WHERE fs.target_id = c.id)
		FROM campaigns c
		JOIN %s s ON s.target_id = c.id
		WHERE s.viewer_id = $1
		  AND ($2 = '' OR c.region = $2)
		  AND ($3 = '' OR c.sub_region = $3)
		  AND ($4 = '' OR c.district = $4)
		ORDER BY s.created_at DESC`, table)

	rows, err := r.pool.Query(ctx, query, viewerID, prefix.Region, prefix.SubRegion, prefix.District)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.CampaignSummary
	for rows.Next() {
		var s model.CampaignSummary
		err := rows.Scan(
			&s.ID, &s.FounderID, &s.Title, &s.BusinessName, &s.Industry, &s.Status,
			&s.Address.Region, &s.Address.SubRegion, &s.Address.District,
			&s.Position.Latitude, &s.Position.Longitude,
			&s.GoalAmount, &s.RaisedAmount, &s.CreatedAt,
			&s.LikesCount, &s.ScrapsCount,
		)
		if err != nil {
			return nil, err
		}
		s.IsScrapped = true
		out = append(out, s)
	}
	return out, rows.Err()
}

// ListScrappedProposals is the proposal counterpart of ListScrappedCampaigns.
func (r *ToggleRepo) ListScrappedProposals(ctx context.Context, role model.Role, viewerID string, prefix model.Address) ([]model.ProposalSummary, error) {
	table, err := RelationTable(role, model.RelationScrap, model.TargetProposal)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`
		SELECT p.id, p.proposer_id, p.title, p.content, p.industry,
		       p.region, p.sub_region, p.district,
		       p.latitude, p.longitude, p.created_at,
		       (SELECT COUNT(*) FROM proposer_like_proposals l WHERE l.target_id = p.id),
		       (SELECT COUNT(*) FROM proposer_scrap_proposals ps WHERE ps.target_id = p.id)
		         + (SELECT COUNT(*) FROM founder_scrap_proposals fs WHERE fs.target_id = p.id)
		FROM proposals p
		JOIN %s s ON s.target_id = p.id
		WHERE s.viewer_id = $1
		  AND ($2 = '' OR p.region = $2)
		  AND ($3 = '' OR p.sub_region = $3)
		  AND ($4 = '' OR p.district = $4)
		ORDER BY s.created_at DESC`, table)

	rows, err := r.pool.Query(ctx, query, viewerID, prefix.Region, prefix.SubRegion, prefix.District)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.ProposalSummary
	for rows.Next() {
		var s model.ProposalSummary
		err := rows.Scan(
			&s.ID, &s.ProposerID, &s.Title, &s.Content, &s.Industry,
			&s.Address.Region, &s.Address.SubRegion, &s.Address.District,
			&s.Position.Latitude, &s.Position.Longitude, &s.CreatedAt,
			&s.LikesCount, &s.ScrapsCount,
		)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
