package service

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/SunbrightCreators/Backend/internal/model"
)

// CampaignSource is the slice of the campaign repository discovery needs.
type CampaignSource interface {
	ListInProgress(ctx context.Context, prefix model.Address, industry string) ([]model.Campaign, error)
	ListDetail(ctx context.Context, addr model.Address, industry, order string, viewer model.Viewer) ([]model.CampaignSummary, error)
}

// AddressSource provides a viewer's registered addresses for area matching.
type AddressSource interface {
	ListAddresses(ctx context.Context, viewerID string, role model.Role) ([]model.Address, error)
}

// Geocoder resolves address text to a position. Implementations never fail;
// they degrade to an unresolved position.
type Geocoder interface {
	Resolve(ctx context.Context, addressText string) model.Position
}

// DiscoveryService assembles map discovery responses. It issues exactly one
// geocoding call per returned cluster and performs zero writes.
type DiscoveryService struct {
	campaigns   CampaignSource
	viewers     AddressSource
	geocoder    Geocoder
	concurrency int
}

func NewDiscoveryService(campaigns CampaignSource, viewers AddressSource, geocoder Geocoder, concurrency int) *DiscoveryService {
	if concurrency <= 0 {
		concurrency = 8
	}
	return &DiscoveryService{
		campaigns:   campaigns,
		viewers:     viewers,
		geocoder:    geocoder,
		concurrency: concurrency,
	}
}

// Clusters runs the cluster branch for the region, sub-region and district
// tiers: aggregate, geocode each group's full address, match against the
// viewer's registered addresses, then assign 1-based ids in aggregation
// order. Geocoding fans out under a concurrency bound, but the response
// order never depends on call completion order: each result lands back in
// its cluster's slot before ids are assigned.
func (s *DiscoveryService) Clusters(ctx context.Context, viewer model.Viewer, tier model.Tier, prefix model.Address, industry string) ([]model.ClusterRow, error) {
	campaigns, err := s.campaigns.ListInProgress(ctx, prefix, industry)
	if err != nil {
		return nil, err
	}

	groups := GroupByTier(campaigns, tier)

	viewerAddrs, err := s.viewers.ListAddresses(ctx, viewer.ID, viewer.Role)
	if err != nil {
		return nil, err
	}

	positions := make([]model.Position, len(groups))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for i, group := range groups {
		i := i
		addr := tier.ClusterAddress(prefix, group.Value)
		g.Go(func() error {
			// Resolve never errors; a provider failure leaves this one
			// slot unresolved without touching the others.
			positions[i] = s.geocoder.Resolve(gctx, addr.Text())
			return nil
		})
	}
	g.Wait()

	rows := make([]model.ClusterRow, 0, len(groups))
	for i, group := range groups {
		addr := tier.ClusterAddress(prefix, group.Value)
		rows = append(rows, model.ClusterRow{
			ID:           i + 1,
			Address:      group.Value,
			Position:     positions[i],
			Count:        group.Count,
			IsViewerArea: model.MatchesAny(viewerAddrs, addr, tier),
		})
	}
	return rows, nil
}

// Detail runs the flat-list branch for the detail tier: exact-address
// in-progress campaigns with counts and viewer flags, in the requested
// order. The order value is validated before this call; no clustering or
// geocoding happens here.
func (s *DiscoveryService) Detail(ctx context.Context, viewer model.Viewer, addr model.Address, industry, order string) ([]model.CampaignSummary, error) {
	if order == "" {
		order = model.OrderRecent
	}
	return s.campaigns.ListDetail(ctx, addr, industry, order, viewer)
}
