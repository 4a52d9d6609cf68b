package model

// ClusterGroup is one aggregation bucket: a distinct address-level value and
// the number of in-progress campaigns carrying it. Derived per request, never
// persisted.
type ClusterGroup struct {
	Value string
	Count int
}

// ClusterRow is one entry of a cluster-tier discovery response. ID is a
// 1-based sequence assigned in aggregation order after all positions are
// resolved.
type ClusterRow struct {
	ID           int      `json:"id"`
	Address      string   `json:"address"`
	Position     Position `json:"position"`
	Count        int      `json:"count"`
	IsViewerArea bool     `json:"is_viewer_area"`
}
