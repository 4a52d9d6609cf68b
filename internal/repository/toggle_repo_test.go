package repository

import (
	"testing"

	"github.com/SunbrightCreators/Backend/internal/model"
)

func TestRelationTable_RecognizedCombinations(t *testing.T) {
	tests := []struct {
		role model.Role
		rel  model.RelationKind
		kind model.TargetKind
		want string
	}{
		{model.RoleProposer, model.RelationLike, model.TargetCampaign, "proposer_like_campaigns"},
		{model.RoleProposer, model.RelationScrap, model.TargetCampaign, "proposer_scrap_campaigns"},
		{model.RoleFounder, model.RelationScrap, model.TargetCampaign, "founder_scrap_campaigns"},
		{model.RoleProposer, model.RelationLike, model.TargetProposal, "proposer_like_proposals"},
		{model.RoleProposer, model.RelationScrap, model.TargetProposal, "proposer_scrap_proposals"},
		{model.RoleFounder, model.RelationScrap, model.TargetProposal, "founder_scrap_proposals"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			got, err := RelationTable(tt.role, tt.rel, tt.kind)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("RelationTable(%v, %v, %v) = %q, want %q", tt.role, tt.rel, tt.kind, got, tt.want)
			}
		})
	}
}

func TestRelationTable_FounderLikesDoNotExist(t *testing.T) {
	if _, err := RelationTable(model.RoleFounder, model.RelationLike, model.TargetCampaign); err == nil {
		t.Error("founder like campaign must not resolve to a table")
	}
	if _, err := RelationTable(model.RoleFounder, model.RelationLike, model.TargetProposal); err == nil {
		t.Error("founder like proposal must not resolve to a table")
	}
}
