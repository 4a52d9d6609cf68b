package model

import "time"

// Viewer identifies the requesting user and the role they act in for this
// request. Identity arrives from the auth boundary (X-Viewer-ID); this
// service never authenticates.
type Viewer struct {
	ID   string
	Role Role
}

// ViewerAddress is one registered address for a viewer in a given role. A
// viewer may have zero, one, or a history of addresses; the most recent per
// role is authoritative, but discovery matching is existential over all of
// them.
type ViewerAddress struct {
	ViewerID  string    `json:"viewerId"`
	Role      Role      `json:"-"`
	Address   Address   `json:"address"`
	CreatedAt time.Time `json:"createdAt"`
}
