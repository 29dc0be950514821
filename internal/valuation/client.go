package valuation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// ErrUnavailable means the pricing source could not be reached (or returned
// garbage) and no usable cached copy exists.
var ErrUnavailable = errors.New("valuation table unavailable")

// Entry is one priced asset (player or draft pick) from the pricing source.
// Value is a relative trade value on the source's own scale, not currency.
type Entry struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// Client fetches dynasty trade values from the FantasyCalc API.
type Client struct {
	HTTP      *http.Client
	BaseURL   string
	UserAgent string
}

func NewClient() *Client {
	return &Client{
		HTTP:      &http.Client{Timeout: 15 * time.Second},
		BaseURL:   "https://api.fantasycalc.com",
		UserAgent: "dynasty-league-mcp/1.0",
	}
}

// rawValue mirrors the shapes FantasyCalc uses: players carry a nested
// player.name, draft picks a flat name.
type rawValue struct {
	Player *struct {
		Name string `json:"name"`
	} `json:"player"`
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// FetchValues downloads the full current dynasty value table.
func (c *Client) FetchValues(ctx context.Context) ([]Entry, error) {
	url := c.BaseURL + "/values/current?isDynasty=true&numQbs=2"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.UserAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("GET /values/current: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("GET /values/current failed: %d body=%s", resp.StatusCode, string(body))
	}

	var raw []rawValue
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode valuation table: %w", err)
	}

	entries := make([]Entry, 0, len(raw))
	for _, v := range raw {
		name := v.Name
		if v.Player != nil && v.Player.Name != "" {
			name = v.Player.Name
		}
		if name == "" || v.Value < 0 {
			continue
		}
		entries = append(entries, Entry{Name: name, Value: v.Value})
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("valuation table is empty")
	}
	return entries, nil
}
