package model

import "time"

// Campaign statuses. Only in-progress campaigns are surfaced on the
// discovery map.
const (
	StatusDraft      = "draft"
	StatusInProgress = "in_progress"
	StatusSucceeded  = "succeeded"
	StatusFailed     = "failed"
)

// Campaign is a fundable project anchored to an administrative address.
type Campaign struct {
	ID           int64     `json:"id"`
	FounderID    string    `json:"founderId"`
	Title        string    `json:"title"`
	BusinessName string    `json:"businessName"`
	Industry     string    `json:"industry"`
	Status       string    `json:"status"`
	Address      Address   `json:"address"`
	Position     Position  `json:"position"`
	GoalAmount   int64     `json:"goalAmount"`
	RaisedAmount int64     `json:"raisedAmount"`
	CreatedAt    time.Time `json:"createdAt"`
}

// CampaignSummary is a campaign annotated with relation counts and the
// viewer-relative flags used by the detail tier and scrap listings.
// IsLiked is only meaningful for proposers (likes are proposer-only).
type CampaignSummary struct {
	Campaign
	LikesCount  int64 `json:"likesCount"`
	ScrapsCount int64 `json:"scrapsCount"`
	IsLiked     *bool `json:"isLiked,omitempty"`
	IsScrapped  bool  `json:"isScrapped"`
}

// Discovery orderings for the detail tier. A closed set: anything else is a
// validation failure.
const (
	OrderRecent = "recent"
	OrderFunded = "funded"
	OrderLiked  = "liked"
)

// ValidOrders is the detail-tier ordering vocabulary.
var ValidOrders = map[string]bool{
	OrderRecent: true,
	OrderFunded: true,
	OrderLiked:  true,
}
