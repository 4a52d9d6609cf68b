package service

import (
	"context"
	"errors"

	"github.com/SunbrightCreators/Backend/internal/metrics"
	"github.com/SunbrightCreators/Backend/internal/model"
)

// ErrTargetNotFound means the toggle target id references nothing.
var ErrTargetNotFound = errors.New("toggle target not found")

// RelationStore persists uniqueness-constrained relation records. Insert and
// Delete report whether a row was actually written, which is what makes the
// flip race-safe without a read-before-write.
type RelationStore interface {
	Insert(ctx context.Context, role model.Role, rel model.RelationKind, kind model.TargetKind, viewerID string, targetID int64) (bool, error)
	Delete(ctx context.Context, role model.Role, rel model.RelationKind, kind model.TargetKind, viewerID string, targetID int64) (bool, error)
	ListScrappedCampaigns(ctx context.Context, role model.Role, viewerID string, prefix model.Address) ([]model.CampaignSummary, error)
	ListScrappedProposals(ctx context.Context, role model.Role, viewerID string, prefix model.Address) ([]model.ProposalSummary, error)
}

// TargetChecker reports whether a target entity exists.
type TargetChecker interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

// ToggleService flips like/scrap relations between a viewer and a target.
// Existence of the record is the state; repeated calls alternate it.
type ToggleService struct {
	store     RelationStore
	campaigns TargetChecker
	proposals TargetChecker
}

func NewToggleService(store RelationStore, campaigns, proposals TargetChecker) *ToggleService {
	return &ToggleService{store: store, campaigns: campaigns, proposals: proposals}
}

// Toggle creates the relation record if absent and deletes it if present.
// There is no check-then-act: the insert relies on the uniqueness constraint
// (ON CONFLICT DO NOTHING) and the delete reports rows-affected, so two
// concurrent identical requests settle on exactly one or zero records. When
// the insert conflicts and the delete then finds nothing (the record was
// removed concurrently), the end state is "no record" and the flip reports
// Removed rather than surfacing a conflict.
func (s *ToggleService) Toggle(ctx context.Context, viewer model.Viewer, rel model.RelationKind, kind model.TargetKind, targetID int64) (model.ToggleResult, error) {
	checker := s.campaigns
	if kind == model.TargetProposal {
		checker = s.proposals
	}
	exists, err := checker.Exists(ctx, targetID)
	if err != nil {
		return 0, err
	}
	if !exists {
		return 0, ErrTargetNotFound
	}

	inserted, err := s.store.Insert(ctx, viewer.Role, rel, kind, viewer.ID, targetID)
	if err != nil {
		return 0, err
	}
	if inserted {
		metrics.TogglesTotal.WithLabelValues(kind.String(), rel.String(), "created").Inc()
		return model.ToggleCreated, nil
	}

	if _, err := s.store.Delete(ctx, viewer.Role, rel, kind, viewer.ID, targetID); err != nil {
		return 0, err
	}
	metrics.TogglesTotal.WithLabelValues(kind.String(), rel.String(), "removed").Inc()
	return model.ToggleRemoved, nil
}

// ListScrappedCampaigns returns the campaigns the viewer has scrapped,
// optionally restricted to an address prefix.
func (s *ToggleService) ListScrappedCampaigns(ctx context.Context, viewer model.Viewer, prefix model.Address) ([]model.CampaignSummary, error) {
	return s.store.ListScrappedCampaigns(ctx, viewer.Role, viewer.ID, prefix)
}

// ListScrappedProposals returns the proposals the viewer has scrapped,
// optionally restricted to an address prefix.
func (s *ToggleService) ListScrappedProposals(ctx context.Context, viewer model.Viewer, prefix model.Address) ([]model.ProposalSummary, error) {
	return s.store.ListScrappedProposals(ctx, viewer.Role, viewer.ID, prefix)
}
