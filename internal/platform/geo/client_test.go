package geo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestGeocode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/search" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.URL.Query().Get("q") != "Riga" {
			t.Errorf("unexpected query %s", r.URL.Query().Get("q"))
		}
		w.Write([]byte(`[{"lat":"56.9496","lon":"24.1052","display_name":"Riga, Latvia"}]`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	lat, lon, err := c.Geocode(context.Background(), "Riga")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if lat != 56.9496 || lon != 24.1052 {
		t.Errorf("unexpected coords: %f, %f", lat, lon)
	}
}

func TestGeocode_NoResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	if _, _, err := c.Geocode(context.Background(), "nowhere"); err == nil {
		t.Error("expected error for empty result set")
	}
}

func TestReverseGeocode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/reverse" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Write([]byte(`{"display_name":"Riga, Latvia"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	if got := c.ReverseGeocode(context.Background(), 56.9496, 24.1052); got != "Riga, Latvia" {
		t.Errorf("expected display name, got %q", got)
	}
}

func TestReverseGeocode_FallsBackToCoords(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	if got := c.ReverseGeocode(context.Background(), 56.9496, 24.1052); got != "56.9496, 24.1052" {
		t.Errorf("expected coordinate fallback, got %q", got)
	}
}

func TestReverseGeocode_EmptyDisplayName(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	if got := c.ReverseGeocode(context.Background(), 1, 2); got != "1, 2" {
		t.Errorf("expected coordinate fallback, got %q", got)
	}
}
