package main

import (
	"context"

	"dynasty-league-mcp/internal/sleeper"
	"dynasty-league-mcp/internal/standings"
)

// LeagueStandingsArgs are the input arguments for the league_standings tool.
type LeagueStandingsArgs struct {
	LeagueID string `json:"league_id,omitempty" jsonschema:"Sleeper league id (default: configured league)"`
}

// StandingsRow is one team's row in the standings table.
type StandingsRow struct {
	Pos    int     `json:"pos"`
	Team   string  `json:"team"`
	Wins   int     `json:"wins"`
	Losses int     `json:"losses"`
	Ties   int     `json:"ties"`
	Points float64 `json:"points"`
}

// LeagueStandingsResult is the output of the league_standings tool.
type LeagueStandingsResult struct {
	LeagueID string         `json:"league_id"`
	League   string         `json:"league"`
	Rows     []StandingsRow `json:"standings"`
}

func buildLeagueStandings(ctx context.Context, deps serverDeps, args LeagueStandingsArgs) (*LeagueStandingsResult, error) {
	leagueID, err := resolveLeagueID(deps, args.LeagueID)
	if err != nil {
		return nil, err
	}

	league, err := deps.league.League(ctx, leagueID)
	if err != nil {
		return nil, err
	}
	rosters, err := deps.league.Rosters(ctx, leagueID)
	if err != nil {
		return nil, err
	}
	users, err := deps.league.Users(ctx, leagueID)
	if err != nil {
		return nil, err
	}

	names := sleeper.DisplayNames(users)
	teams := make([]standings.Team, 0, len(rosters))
	byName := make(map[string]sleeper.Roster, len(rosters))
	for _, r := range rosters {
		name := sleeper.TeamName(r, names)
		byName[name] = r
		teams = append(teams, standings.Team{
			Name:   name,
			Wins:   r.Settings.Wins,
			Points: r.Settings.PointsFor(),
		})
	}

	rows := make([]StandingsRow, 0, len(teams))
	for i, t := range standings.Rank(teams) {
		r := byName[t.Name]
		row := StandingsRow{
			Pos:    i + 1,
			Team:   t.Name,
			Wins:   t.Wins,
			Losses: r.Settings.Losses,
			Ties:   r.Settings.Ties,
			Points: t.Points,
		}
		// Identical records share a position.
		if i > 0 && rows[i-1].Wins == t.Wins && rows[i-1].Points == t.Points {
			row.Pos = rows[i-1].Pos
		}
		rows = append(rows, row)
	}

	return &LeagueStandingsResult{
		LeagueID: leagueID,
		League:   league.Name,
		Rows:     rows,
	}, nil
}
