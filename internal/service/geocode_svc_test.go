package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SunbrightCreators/Backend/internal/model"
)

func TestGeocodeResolve_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/geocode" {
			t.Errorf("path = %q, want /v1/geocode", r.URL.Path)
		}
		if got := r.URL.Query().Get("query"); got != "Region A Sub 1" {
			t.Errorf("query = %q, want %q", got, "Region A Sub 1")
		}
		if got := r.Header.Get("X-API-Key"); got != "test-key" {
			t.Errorf("api key header = %q, want %q", got, "test-key")
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"addresses":[{"latitude":37.5,"longitude":127.0}]}`))
	}))
	defer srv.Close()

	svc := NewGeocodeService(srv.URL, "test-key", time.Second, nil)
	pos := svc.Resolve(context.Background(), "Region A Sub 1")

	if !pos.Resolved() {
		t.Fatal("expected resolved position")
	}
	if *pos.Latitude != 37.5 || *pos.Longitude != 127.0 {
		t.Errorf("position = (%v, %v), want (37.5, 127.0)", *pos.Latitude, *pos.Longitude)
	}
}

func TestGeocodeResolve_ProviderErrorDegradesToUnresolved(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	svc := NewGeocodeService(srv.URL, "", time.Second, nil)
	pos := svc.Resolve(context.Background(), "Region A")

	if pos.Resolved() {
		t.Error("provider 500 must degrade to an unresolved position, not error")
	}
}

func TestGeocodeResolve_EmptyResultDegradesToUnresolved(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"addresses":[]}`))
	}))
	defer srv.Close()

	svc := NewGeocodeService(srv.URL, "", time.Second, nil)
	if pos := svc.Resolve(context.Background(), "Nowhere"); pos.Resolved() {
		t.Error("empty provider result must be unresolved")
	}
}

func TestGeocodeResolve_TimeoutDegradesToUnresolved(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.Write([]byte(`{"addresses":[{"latitude":37.5,"longitude":127.0}]}`))
	}))
	defer srv.Close()

	svc := NewGeocodeService(srv.URL, "", 20*time.Millisecond, nil)
	if pos := svc.Resolve(context.Background(), "Region A"); pos.Resolved() {
		t.Error("a slow provider must degrade to unresolved within the bounded timeout")
	}
}

func TestGeocodeResolve_UnreachableProvider(t *testing.T) {
	// Nothing listens here.
	svc := NewGeocodeService("http://127.0.0.1:1", "", 100*time.Millisecond, nil)
	if pos := svc.Resolve(context.Background(), "Region A"); pos.Resolved() {
		t.Error("transport failure must be unresolved, not an error")
	}
}

func TestGeocodeResolve_EmptyAddress(t *testing.T) {
	svc := NewGeocodeService("http://127.0.0.1:1", "", time.Second, nil)
	if pos := svc.Resolve(context.Background(), ""); pos.Resolved() {
		t.Error("empty address text must be unresolved without a provider call")
	}
}

func TestReverseResolve_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/reverse" {
			t.Errorf("path = %q, want /v1/reverse", r.URL.Path)
		}
		if got := r.URL.Query().Get("level"); got != ReverseLegal {
			t.Errorf("level = %q, want %q", got, ReverseLegal)
		}
		w.Write([]byte(`{"address":"Region A Sub 1 Dist X"}`))
	}))
	defer srv.Close()

	svc := NewGeocodeService(srv.URL, "", time.Second, nil)
	addr, err := svc.ReverseResolve(context.Background(), model.NewPosition(37.5, 127.0), ReverseLegal)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if addr != "Region A Sub 1 Dist X" {
		t.Errorf("address = %q", addr)
	}
}

func TestReverseResolve_SurfacesProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusBadGateway)
	}))
	defer srv.Close()

	svc := NewGeocodeService(srv.URL, "", time.Second, nil)
	if _, err := svc.ReverseResolve(context.Background(), model.NewPosition(37.5, 127.0), ReverseFull); err == nil {
		t.Error("reverse resolution errors must surface, unlike Resolve")
	}
}

func TestReverseResolve_RequiresResolvedPosition(t *testing.T) {
	svc := NewGeocodeService("http://127.0.0.1:1", "", time.Second, nil)
	if _, err := svc.ReverseResolve(context.Background(), model.Position{}, ReverseLegal); err == nil {
		t.Error("reverse resolution without coordinates must fail")
	}
}
