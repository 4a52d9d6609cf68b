package model

// TargetKind is the entity a toggle relation points at.
type TargetKind int

const (
	TargetCampaign TargetKind = iota
	TargetProposal
)

func (k TargetKind) String() string {
	if k == TargetProposal {
		return "proposal"
	}
	return "campaign"
}

// ParseTargetKind maps a path segment to a TargetKind.
func ParseTargetKind(s string) (TargetKind, bool) {
	switch s {
	case "campaign":
		return TargetCampaign, true
	case "proposal":
		return TargetProposal, true
	}
	return 0, false
}

// RelationKind is the flavor of toggle relation.
type RelationKind int

const (
	RelationLike RelationKind = iota
	RelationScrap
)

func (r RelationKind) String() string {
	if r == RelationScrap {
		return "scrap"
	}
	return "like"
}

// ToggleResult is the outcome of one toggle flip.
type ToggleResult int

const (
	// ToggleCreated means the relation record did not exist and was created.
	ToggleCreated ToggleResult = iota
	// ToggleRemoved means the relation record existed and was deleted.
	ToggleRemoved
)

// ToggleRequest is the API body for a toggle flip.
type ToggleRequest struct {
	TargetID int64 `json:"target_id"`
}
