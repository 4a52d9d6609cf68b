package service

import "github.com/SunbrightCreators/Backend/internal/model"

// GroupByTier buckets already-filtered campaigns by the address level the
// tier clusters on. Pure grouping and counting: no geocoding, no viewer
// matching, no I/O. Output order is first-seen order over the input, which
// the repository keeps stable, so cluster order is deterministic within a
// response.
//
// Campaigns whose grouping field is empty (lower-precision records) are
// excluded rather than forming an empty-valued cluster.
func GroupByTier(campaigns []model.Campaign, tier model.Tier) []model.ClusterGroup {
	if tier == model.TierDetail {
		return nil
	}

	index := make(map[string]int)
	var groups []model.ClusterGroup
	for _, c := range campaigns {
		value := tier.GroupField(c.Address)
		if value == "" {
			continue
		}
		if i, ok := index[value]; ok {
			groups[i].Count++
			continue
		}
		index[value] = len(groups)
		groups = append(groups, model.ClusterGroup{Value: value, Count: 1})
	}
	return groups
}
