package valuation

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestClient(handler http.HandlerFunc) (*Client, *httptest.Server) {
	srv := httptest.NewServer(handler)
	c := NewClient()
	c.BaseURL = srv.URL
	return c, srv
}

func TestFetchValues(t *testing.T) {
	t.Run("PlayersAndPicks", func(t *testing.T) {
		c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/values/current" {
				t.Errorf("path: got %s", r.URL.Path)
			}
			if q := r.URL.Query(); q.Get("isDynasty") != "true" || q.Get("numQbs") != "2" {
				t.Errorf("query: got %s", r.URL.RawQuery)
			}
			w.Header().Set("Content-Type", "application/json")
			// Players carry a nested player.name, picks a flat name.
			w.Write([]byte(`[
				{"player": {"name": "Patrick Mahomes"}, "value": 9000},
				{"name": "2025 Round 1", "value": 3000},
				{"value": 500}
			]`))
		})
		defer srv.Close()

		entries, err := c.FetchValues(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(entries) != 2 {
			t.Fatalf("want 2 entries (nameless rows dropped), got %d", len(entries))
		}
		if entries[0].Name != "Patrick Mahomes" || entries[0].Value != 9000 {
			t.Errorf("entry 0: got %+v", entries[0])
		}
		if entries[1].Name != "2025 Round 1" || entries[1].Value != 3000 {
			t.Errorf("entry 1: got %+v", entries[1])
		}
	})

	t.Run("NonSuccessStatus", func(t *testing.T) {
		c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "nope", http.StatusBadGateway)
		})
		defer srv.Close()

		if _, err := c.FetchValues(context.Background()); err == nil {
			t.Error("want error on non-2xx status")
		}
	})

	t.Run("MalformedShape", func(t *testing.T) {
		c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"unexpected": "object"}`))
		})
		defer srv.Close()

		if _, err := c.FetchValues(context.Background()); err == nil {
			t.Error("want error on a non-array body")
		}
	})

	t.Run("EmptyTable", func(t *testing.T) {
		c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`[]`))
		})
		defer srv.Close()

		if _, err := c.FetchValues(context.Background()); err == nil {
			t.Error("want error on an empty table")
		}
	})
}
