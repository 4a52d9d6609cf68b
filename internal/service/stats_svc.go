package service

import (
	"context"

	"github.com/SunbrightCreators/Backend/internal/model"
	"github.com/SunbrightCreators/Backend/internal/repository"
)

// Stats is the public service statistics payload.
type Stats struct {
	CampaignsInProgress int64 `json:"campaignsInProgress"`
	CampaignsSucceeded  int64 `json:"campaignsSucceeded"`
	CampaignsFailed     int64 `json:"campaignsFailed"`
	Proposals           int64 `json:"proposals"`
}

type StatsService struct {
	campaigns *repository.CampaignRepo
	proposals *repository.ProposalRepo
}

func NewStatsService(campaigns *repository.CampaignRepo, proposals *repository.ProposalRepo) *StatsService {
	return &StatsService{campaigns: campaigns, proposals: proposals}
}

func (s *StatsService) GetStats(ctx context.Context) (*Stats, error) {
	byStatus, err := s.campaigns.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}
	proposals, err := s.proposals.Count(ctx)
	if err != nil {
		return nil, err
	}
	return &Stats{
		CampaignsInProgress: byStatus[model.StatusInProgress],
		CampaignsSucceeded:  byStatus[model.StatusSucceeded],
		CampaignsFailed:     byStatus[model.StatusFailed],
		Proposals:           proposals,
	}, nil
}
