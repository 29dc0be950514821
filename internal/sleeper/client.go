// Package sleeper is a read-only client for the Sleeper fantasy-football API.
package sleeper

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// ErrSnapshotUnavailable means the league/roster data fetch failed; callers
// surface it without computing partial results.
var ErrSnapshotUnavailable = errors.New("league snapshot unavailable")

type Client struct {
	HTTP      *http.Client
	BaseURL   string
	UserAgent string
}

func NewClient() *Client {
	return &Client{
		HTTP:      &http.Client{Timeout: 15 * time.Second},
		BaseURL:   "https://api.sleeper.app/v1",
		UserAgent: "dynasty-league-mcp/1.0",
	}
}

// League fetches /league/{league_id}.
func (c *Client) League(ctx context.Context, leagueID string) (*League, error) {
	var out League
	if err := c.getJSON(ctx, "/league/"+leagueID, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Rosters fetches /league/{league_id}/rosters.
func (c *Client) Rosters(ctx context.Context, leagueID string) ([]Roster, error) {
	var out []Roster
	if err := c.getJSON(ctx, "/league/"+leagueID+"/rosters", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Users fetches /league/{league_id}/users.
func (c *Client) Users(ctx context.Context, leagueID string) ([]User, error) {
	var out []User
	if err := c.getJSON(ctx, "/league/"+leagueID+"/users", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Matchups fetches /league/{league_id}/matchups/{week}.
func (c *Client) Matchups(ctx context.Context, leagueID string, week int) ([]Matchup, error) {
	var out []Matchup
	if err := c.getJSON(ctx, fmt.Sprintf("/league/%s/matchups/%d", leagueID, week), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) getJSON(ctx context.Context, urlPath string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+urlPath, nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", c.UserAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("%w: GET %s: %v", ErrSnapshotUnavailable, urlPath, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%w: GET %s: status %d body=%s", ErrSnapshotUnavailable, urlPath, resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: GET %s: decode: %v", ErrSnapshotUnavailable, urlPath, err)
	}
	return nil
}
