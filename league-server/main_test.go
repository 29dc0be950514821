package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	"dynasty-league-mcp/internal/config"
	"dynasty-league-mcp/internal/sleeper"
	"dynasty-league-mcp/internal/trade"
	"dynasty-league-mcp/internal/valuation"
)

// ---- shared test helpers ----

// stubTable serves a fixed valuation table to the trade evaluator.
type stubTable struct {
	entries []valuation.Entry
}

func (s stubTable) Values(_ context.Context) ([]valuation.Entry, error) {
	return s.entries, nil
}

// fakeSleeper runs an httptest server answering the given routes with JSON.
func fakeSleeper(t *testing.T, routes map[string]string) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	for path, body := range routes {
		b := body
		mux.HandleFunc(path, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(b))
		})
	}
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

// newTestDeps wires serverDeps to a stub valuation table and a fake Sleeper API.
func newTestDeps(t *testing.T, routes map[string]string, table []valuation.Entry) serverDeps {
	t.Helper()
	league := sleeper.NewClient()
	if routes != nil {
		league.BaseURL = fakeSleeper(t, routes).URL
	}
	return serverDeps{
		cfg: config.Config{
			PlayoffSlots: 6,
			OddsTrials:   500,
		},
		log:    zap.NewNop(),
		trades: trade.NewEvaluator(stubTable{entries: table}, nil),
		league: league,
	}
}

// leagueFixture is a four-team league where C edges B on the points tie-break.
func leagueFixture() map[string]string {
	return map[string]string{
		"/league/555": `{
			"league_id": "555",
			"name": "Test League",
			"settings": {"leg": 12, "playoff_week_start": 15, "playoff_teams": 2}
		}`,
		"/league/555/rosters": `[
			{"roster_id": 1, "owner_id": "uA", "settings": {"wins": 10, "losses": 1, "fpts": 1200, "fpts_proj": 120}},
			{"roster_id": 2, "owner_id": "uB", "settings": {"wins": 9, "losses": 2, "fpts": 1100, "fpts_proj": 125}},
			{"roster_id": 3, "owner_id": "uC", "settings": {"wins": 9, "losses": 2, "fpts": 1150, "fpts_proj": 118}},
			{"roster_id": 4, "owner_id": "uD", "settings": {"wins": 5, "losses": 6, "fpts": 900, "fpts_proj": 110}}
		]`,
		"/league/555/users": `[
			{"user_id": "uA", "display_name": "A"},
			{"user_id": "uB", "display_name": "B"},
			{"user_id": "uC", "display_name": "C"},
			{"user_id": "uD", "display_name": "D"}
		]`,
		"/league/555/matchups/11": `[
			{"roster_id": 1, "matchup_id": 1, "points": 131.5},
			{"roster_id": 2, "matchup_id": 1, "points": 99.2},
			{"roster_id": 3, "matchup_id": 2, "points": 142.8},
			{"roster_id": 4, "matchup_id": 2, "points": 104.1}
		]`,
	}
}
