package model

import (
	"fmt"
	"strings"
)

// Address is a 3-level administrative address. District may be empty for
// lower-precision records.
type Address struct {
	Region    string `json:"region"`
	SubRegion string `json:"sub_region"`
	District  string `json:"district"`
}

// Text joins the non-empty address levels into the free-text form used for
// geocoding ("Region SubRegion District").
func (a Address) Text() string {
	parts := make([]string, 0, 3)
	for _, p := range []string{a.Region, a.SubRegion, a.District} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " ")
}

// Position is a geographic point in latitude/longitude degrees. Nil fields
// mean the position is unresolved (e.g. the geocoder failed for this address).
type Position struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

// Resolved reports whether both coordinates are present.
func (p Position) Resolved() bool {
	return p.Latitude != nil && p.Longitude != nil
}

// NewPosition builds a resolved Position.
func NewPosition(lat, lng float64) Position {
	return Position{Latitude: &lat, Longitude: &lng}
}

// Tier is a discovery zoom tier. Coarser tiers cluster campaigns by an
// address level; the detail tier returns a flat annotated list.
type Tier int

const (
	TierRegion Tier = iota
	TierSubRegion
	TierDistrict
	TierDetail
)

var tierNames = map[Tier]string{
	TierRegion:    "region",
	TierSubRegion: "sub-region",
	TierDistrict:  "district",
	TierDetail:    "detail",
}

func (t Tier) String() string {
	return tierNames[t]
}

// ParseTier maps a path segment to a Tier.
func ParseTier(s string) (Tier, error) {
	switch s {
	case "region":
		return TierRegion, nil
	case "sub-region":
		return TierSubRegion, nil
	case "district":
		return TierDistrict, nil
	case "detail":
		return TierDetail, nil
	}
	return 0, fmt.Errorf("unknown zoom %q: use one of region, sub-region, district, detail", s)
}

// RequiredFields returns the query parameter names a tier needs, in the order
// they are reported when missing.
func (t Tier) RequiredFields() []string {
	switch t {
	case TierRegion:
		return nil
	case TierSubRegion:
		return []string{"region"}
	case TierDistrict:
		return []string{"region", "sub-region"}
	case TierDetail:
		return []string{"region", "sub-region", "district"}
	}
	return nil
}

// MissingFieldsError names the query fields absent for the requested tier.
type MissingFieldsError struct {
	Tier   Tier
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	return fmt.Sprintf("%s zoom requires %s", e.Tier, strings.Join(e.Fields, ", "))
}

// ValidateTierAddress checks that the address prefix carries every field the
// tier requires. It must run before any aggregation or geocoding work.
func ValidateTierAddress(t Tier, prefix Address) error {
	values := map[string]string{
		"region":     prefix.Region,
		"sub-region": prefix.SubRegion,
		"district":   prefix.District,
	}
	var missing []string
	for _, f := range t.RequiredFields() {
		if values[f] == "" {
			missing = append(missing, f)
		}
	}
	if len(missing) > 0 {
		return &MissingFieldsError{Tier: t, Fields: missing}
	}
	return nil
}

// GroupField returns the address level a cluster tier groups by. The detail
// tier does not group.
func (t Tier) GroupField(a Address) string {
	switch t {
	case TierRegion:
		return a.Region
	case TierSubRegion:
		return a.SubRegion
	case TierDistrict:
		return a.District
	}
	return ""
}

// ClusterAddress fills the fixed prefix plus the group's own value, producing
// the full address for one cluster at the given tier.
func (t Tier) ClusterAddress(prefix Address, value string) Address {
	switch t {
	case TierRegion:
		return Address{Region: value}
	case TierSubRegion:
		return Address{Region: prefix.Region, SubRegion: value}
	case TierDistrict:
		return Address{Region: prefix.Region, SubRegion: prefix.SubRegion, District: value}
	}
	return prefix
}

// MatchesAny reports whether any of the viewer's registered addresses falls
// inside the candidate cluster address at the given tier. Only the address
// levels defined at that tier are compared: region tier compares region only,
// sub-region tier compares region and sub-region, district tier all three.
func MatchesAny(viewer []Address, candidate Address, t Tier) bool {
	for _, a := range viewer {
		if matchesOne(a, candidate, t) {
			return true
		}
	}
	return false
}

func matchesOne(a, candidate Address, t Tier) bool {
	if a.Region != candidate.Region {
		return false
	}
	if t == TierRegion {
		return true
	}
	if a.SubRegion != candidate.SubRegion {
		return false
	}
	if t == TierSubRegion {
		return true
	}
	return a.District == candidate.District
}

// Role is the capacity a viewer acts in for one request.
type Role int

const (
	RoleProposer Role = iota
	RoleFounder
)

func (r Role) String() string {
	if r == RoleFounder {
		return "founder"
	}
	return "proposer"
}

// ParseRole maps a path or header value to a Role.
func ParseRole(s string) (Role, error) {
	switch s {
	case "proposer":
		return RoleProposer, nil
	case "founder":
		return RoleFounder, nil
	}
	return 0, fmt.Errorf("unknown role %q: use proposer or founder", s)
}
