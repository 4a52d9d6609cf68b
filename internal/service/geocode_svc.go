package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/SunbrightCreators/Backend/internal/metrics"
	"github.com/SunbrightCreators/Backend/internal/model"
)

// GeocodeService resolves free-text addresses to positions through a remote
// provider, with a Redis cache-aside in front. Providers differing in
// projection are normalized to latitude/longitude degrees at this boundary.
type GeocodeService struct {
	baseURL string
	apiKey  string
	timeout time.Duration
	client  *http.Client
	cache   *CacheService
}

func NewGeocodeService(baseURL, apiKey string, timeout time.Duration, cache *CacheService) *GeocodeService {
	if timeout <= 0 {
		timeout = 2 * time.Second
	}
	return &GeocodeService{
		baseURL: baseURL,
		apiKey:  apiKey,
		timeout: timeout,
		client:  &http.Client{},
		cache:   cache,
	}
}

// provider wire shapes
type geocodeResponse struct {
	Addresses []struct {
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
	} `json:"addresses"`
}

type reverseResponse struct {
	Address string `json:"address"`
}

// Resolve turns an address text into a position. It never fails: transport
// errors, timeouts, non-2xx statuses and empty provider results all degrade
// to an unresolved position so one bad cluster cannot abort a discovery
// response. The provider call carries its own bounded timeout.
func (s *GeocodeService) Resolve(ctx context.Context, addressText string) model.Position {
	if addressText == "" {
		return model.Position{}
	}

	if s.cache != nil {
		if pos, ok := s.cache.GetPosition(ctx, addressText); ok {
			metrics.GeocodeResults.WithLabelValues("cache_hit").Inc()
			return pos
		}
	}

	pos, err := s.fetch(ctx, addressText)
	if err != nil {
		metrics.GeocodeResults.WithLabelValues("unresolved").Inc()
		return model.Position{}
	}

	metrics.GeocodeResults.WithLabelValues("resolved").Inc()
	if s.cache != nil {
		s.cache.SetPosition(ctx, addressText, pos)
	}
	return pos
}

func (s *GeocodeService) fetch(ctx context.Context, addressText string) (model.Position, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	q := url.Values{}
	q.Set("query", addressText)
	body, err := s.get(ctx, "/v1/geocode", q)
	if err != nil {
		return model.Position{}, err
	}

	var resp geocodeResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return model.Position{}, err
	}
	if len(resp.Addresses) == 0 {
		return model.Position{}, fmt.Errorf("no geocode result for %q", addressText)
	}

	first := resp.Addresses[0]
	return model.NewPosition(first.Latitude, first.Longitude), nil
}

// Reverse resolution levels.
const (
	ReverseLegal = "legal"
	ReverseFull  = "full"
)

// ReverseResolve turns a position into address text at the requested level.
// Unlike Resolve this surfaces provider errors: it backs its own endpoint,
// not the discovery path, and the caller wants to know.
func (s *GeocodeService) ReverseResolve(ctx context.Context, pos model.Position, level string) (string, error) {
	if !pos.Resolved() {
		return "", fmt.Errorf("reverse geocoding needs both latitude and longitude")
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	q := url.Values{}
	q.Set("latitude", fmt.Sprintf("%f", *pos.Latitude))
	q.Set("longitude", fmt.Sprintf("%f", *pos.Longitude))
	q.Set("level", level)
	body, err := s.get(ctx, "/v1/reverse", q)
	if err != nil {
		return "", err
	}

	var resp reverseResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", err
	}
	if resp.Address == "" {
		return "", fmt.Errorf("no reverse geocode result")
	}
	return resp.Address, nil
}

func (s *GeocodeService) get(ctx context.Context, path string, q url.Values) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+path+"?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}
	if s.apiKey != "" {
		req.Header.Set("X-API-Key", s.apiKey)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geocoder returned status %d", resp.StatusCode)
	}
	return io.ReadAll(io.LimitReader(resp.Body, 1<<20))
}
