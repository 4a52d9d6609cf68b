package model

import "time"

// Proposal is a location-anchored suggestion submitted by a proposer, which
// a founder may later turn into a campaign.
type Proposal struct {
	ID         int64     `json:"id"`
	ProposerID string    `json:"proposerId"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	Industry   string    `json:"industry"`
	Address    Address   `json:"address"`
	Position   Position  `json:"position"`
	CreatedAt  time.Time `json:"createdAt"`
}

// ProposalSummary annotates a proposal with like/scrap counts for listings.
type ProposalSummary struct {
	Proposal
	LikesCount  int64 `json:"likesCount"`
	ScrapsCount int64 `json:"scrapsCount"`
}
