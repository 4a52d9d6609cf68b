package service

import (
	"context"

	"github.com/SunbrightCreators/Backend/internal/model"
	"github.com/SunbrightCreators/Backend/internal/repository"
)

type CampaignService struct {
	repo *repository.CampaignRepo
}

func NewCampaignService(repo *repository.CampaignRepo) *CampaignService {
	return &CampaignService{repo: repo}
}

// GetSummary returns one campaign annotated with counts and the viewer's
// own flags. pgx.ErrNoRows when the campaign does not exist.
func (s *CampaignService) GetSummary(ctx context.Context, id int64, viewer model.Viewer) (*model.CampaignSummary, error) {
	return s.repo.GetSummary(ctx, id, viewer)
}

// MyCreated is the founder's own-campaigns payload, grouped by status with
// the newest first within each group. Draft campaigns are not listed.
type MyCreated struct {
	InProgress []model.Campaign `json:"in_progress"`
	Succeeded  []model.Campaign `json:"succeeded"`
	Failed     []model.Campaign `json:"failed"`
}

// ListMyCreated groups a founder's campaigns by status. The repository
// returns them newest first, so each group inherits that order.
func (s *CampaignService) ListMyCreated(ctx context.Context, founderID string) (*MyCreated, error) {
	campaigns, err := s.repo.ListByFounder(ctx, founderID)
	if err != nil {
		return nil, err
	}

	out := &MyCreated{
		InProgress: []model.Campaign{},
		Succeeded:  []model.Campaign{},
		Failed:     []model.Campaign{},
	}
	for _, c := range campaigns {
		switch c.Status {
		case model.StatusInProgress:
			out.InProgress = append(out.InProgress, c)
		case model.StatusSucceeded:
			out.Succeeded = append(out.Succeeded, c)
		case model.StatusFailed:
			out.Failed = append(out.Failed, c)
		}
	}
	return out, nil
}
