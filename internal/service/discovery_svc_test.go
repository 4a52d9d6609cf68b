package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/SunbrightCreators/Backend/internal/model"
)

// fakeCampaignSource serves a fixed campaign set and records the detail
// arguments it was called with.
type fakeCampaignSource struct {
	campaigns []model.Campaign

	detailAddr     model.Address
	detailOrder    string
	detailIndustry string
}

func (f *fakeCampaignSource) ListInProgress(ctx context.Context, prefix model.Address, industry string) ([]model.Campaign, error) {
	return f.campaigns, nil
}

func (f *fakeCampaignSource) ListDetail(ctx context.Context, addr model.Address, industry, order string, viewer model.Viewer) ([]model.CampaignSummary, error) {
	f.detailAddr = addr
	f.detailOrder = order
	f.detailIndustry = industry
	return []model.CampaignSummary{}, nil
}

type fakeAddressSource struct {
	addresses []model.Address
}

func (f *fakeAddressSource) ListAddresses(ctx context.Context, viewerID string, role model.Role) ([]model.Address, error) {
	return f.addresses, nil
}

// fakeGeocoder resolves addresses from a fixed table; anything absent is
// unresolved, mimicking a provider failure for that one address.
type fakeGeocoder struct {
	positions map[string]model.Position
}

func (f *fakeGeocoder) Resolve(ctx context.Context, addressText string) model.Position {
	return f.positions[addressText]
}

func TestClusters_RegionExample(t *testing.T) {
	// 3 in-progress campaigns in Region A, 2 in Region B.
	campaigns := &fakeCampaignSource{campaigns: []model.Campaign{
		campaignAt("Region A", "Sub 1", ""),
		campaignAt("Region A", "Sub 2", ""),
		campaignAt("Region B", "Sub 1", ""),
		campaignAt("Region A", "Sub 3", ""),
		campaignAt("Region B", "Sub 2", ""),
	}}
	viewers := &fakeAddressSource{addresses: []model.Address{
		{Region: "Region B", SubRegion: "Sub 2", District: "Dist Q"},
	}}
	geocoder := &fakeGeocoder{positions: map[string]model.Position{
		"Region A": model.NewPosition(37.5, 127.0),
		"Region B": model.NewPosition(35.1, 129.0),
	}}

	svc := NewDiscoveryService(campaigns, viewers, geocoder, 4)
	viewer := model.Viewer{ID: "v1", Role: model.RoleProposer}

	rows, err := svc.Clusters(context.Background(), viewer, model.TierRegion, model.Address{}, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(rows) != 2 {
		t.Fatalf("cluster count = %d, want 2", len(rows))
	}

	if rows[0].Address != "Region A" || rows[0].Count != 3 {
		t.Errorf("rows[0] = %+v, want Region A with count 3", rows[0])
	}
	if rows[1].Address != "Region B" || rows[1].Count != 2 {
		t.Errorf("rows[1] = %+v, want Region B with count 2", rows[1])
	}

	// Ids are 1-based and sequential in aggregation order.
	for i, row := range rows {
		if row.ID != i+1 {
			t.Errorf("rows[%d].ID = %d, want %d", i, row.ID, i+1)
		}
	}

	if !rows[0].Position.Resolved() || *rows[0].Position.Latitude != 37.5 {
		t.Errorf("Region A position = %+v, want resolved 37.5", rows[0].Position)
	}

	// The viewer lives in Region B: only that cluster is theirs.
	if rows[0].IsViewerArea {
		t.Error("Region A should not be the viewer's area")
	}
	if !rows[1].IsViewerArea {
		t.Error("Region B should be the viewer's area")
	}
}

func TestClusters_GeocodeFailureIsolated(t *testing.T) {
	campaigns := &fakeCampaignSource{campaigns: []model.Campaign{
		campaignAt("Region A", "", ""),
		campaignAt("Region B", "", ""),
		campaignAt("Region C", "", ""),
	}}
	// Region B is missing from the provider: its cluster degrades to a null
	// position, the others stay resolved.
	geocoder := &fakeGeocoder{positions: map[string]model.Position{
		"Region A": model.NewPosition(37.5, 127.0),
		"Region C": model.NewPosition(33.4, 126.5),
	}}

	svc := NewDiscoveryService(campaigns, &fakeAddressSource{}, geocoder, 4)
	viewer := model.Viewer{ID: "v1", Role: model.RoleFounder}

	rows, err := svc.Clusters(context.Background(), viewer, model.TierRegion, model.Address{}, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("cluster count = %d, want 3 (failure must not drop clusters)", len(rows))
	}

	if !rows[0].Position.Resolved() {
		t.Error("Region A should be resolved")
	}
	if rows[1].Position.Resolved() {
		t.Error("Region B should be unresolved (provider failure)")
	}
	if rows[1].Count != 1 || rows[1].Address != "Region B" {
		t.Errorf("failed cluster lost its other fields: %+v", rows[1])
	}
	if !rows[2].Position.Resolved() {
		t.Error("Region C should be resolved")
	}
}

func TestClusters_OrderIndependentOfGeocodeCompletion(t *testing.T) {
	// Many groups resolved concurrently must still come back in first-seen
	// aggregation order with sequential ids.
	var cs []model.Campaign
	positions := make(map[string]model.Position)
	for i := 0; i < 40; i++ {
		region := fmt.Sprintf("Region %02d", i)
		cs = append(cs, campaignAt(region, "", ""))
		positions[region] = model.NewPosition(float64(i), float64(-i))
	}

	svc := NewDiscoveryService(
		&fakeCampaignSource{campaigns: cs},
		&fakeAddressSource{},
		&fakeGeocoder{positions: positions},
		5,
	)
	viewer := model.Viewer{ID: "v1", Role: model.RoleProposer}

	rows, err := svc.Clusters(context.Background(), viewer, model.TierRegion, model.Address{}, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 40 {
		t.Fatalf("cluster count = %d, want 40", len(rows))
	}
	for i, row := range rows {
		want := fmt.Sprintf("Region %02d", i)
		if row.Address != want {
			t.Fatalf("rows[%d].Address = %q, want %q", i, row.Address, want)
		}
		if row.ID != i+1 {
			t.Fatalf("rows[%d].ID = %d, want %d", i, row.ID, i+1)
		}
		if !row.Position.Resolved() || *row.Position.Latitude != float64(i) {
			t.Fatalf("rows[%d] position mismatched with its cluster: %+v", i, row.Position)
		}
	}
}

func TestClusters_SubRegionUsesPrefixForGeocoding(t *testing.T) {
	campaigns := &fakeCampaignSource{campaigns: []model.Campaign{
		campaignAt("Region A", "Sub 1", ""),
	}}
	geocoder := &fakeGeocoder{positions: map[string]model.Position{
		// The full textual address is prefix + group value.
		"Region A Sub 1": model.NewPosition(37.5, 127.0),
	}}

	svc := NewDiscoveryService(campaigns, &fakeAddressSource{}, geocoder, 2)
	viewer := model.Viewer{ID: "v1", Role: model.RoleProposer}
	prefix := model.Address{Region: "Region A"}

	rows, err := svc.Clusters(context.Background(), viewer, model.TierSubRegion, prefix, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("cluster count = %d, want 1", len(rows))
	}
	if !rows[0].Position.Resolved() {
		t.Error("geocoding should be called with the full prefixed address")
	}
}

func TestDetail_DefaultsToRecentOrder(t *testing.T) {
	campaigns := &fakeCampaignSource{}
	svc := NewDiscoveryService(campaigns, &fakeAddressSource{}, &fakeGeocoder{}, 2)
	viewer := model.Viewer{ID: "v1", Role: model.RoleProposer}
	addr := model.Address{Region: "Region A", SubRegion: "Sub 1", District: "Dist X"}

	if _, err := svc.Detail(context.Background(), viewer, addr, "food", ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if campaigns.detailOrder != model.OrderRecent {
		t.Errorf("default order = %q, want %q", campaigns.detailOrder, model.OrderRecent)
	}
	if campaigns.detailAddr != addr {
		t.Errorf("detail address = %+v, want %+v", campaigns.detailAddr, addr)
	}
	if campaigns.detailIndustry != "food" {
		t.Errorf("industry filter = %q, want %q", campaigns.detailIndustry, "food")
	}
}
