package main

import (
	"context"

	"dynasty-league-mcp/internal/report"
	"dynasty-league-mcp/internal/sleeper"
)

// WeeklyReportArgs are the input arguments for the weekly_report tool.
type WeeklyReportArgs struct {
	LeagueID string `json:"league_id,omitempty" jsonschema:"Sleeper league id (default: configured league)"`
	Week     int    `json:"week,omitempty" jsonschema:"Scoring week (0 = last completed week)"`
}

func buildWeeklyReport(ctx context.Context, deps serverDeps, args WeeklyReportArgs) (*report.Weekly, error) {
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

	week := report.ResolveWeek(args.Week, league.Settings.Leg)
	matchups, err := deps.league.Matchups(ctx, leagueID, week)
	if err != nil {
		return nil, err
	}

	names := sleeper.DisplayNames(users)
	byRoster := make(map[int]sleeper.Roster, len(rosters))
	for _, r := range rosters {
		byRoster[r.RosterID] = r
	}

	teams := make([]report.TeamWeek, 0, len(matchups))
	for _, m := range matchups {
		r := byRoster[m.RosterID]
		projected := r.Settings.ProjectedFor()
		teams = append(teams, report.TeamWeek{
			RosterID:  m.RosterID,
			Name:      sleeper.TeamName(r, names),
			MatchupID: m.MatchupID,
			Points:    m.Points,
			Projected: projected,
			Diff:      m.Points - projected,
		})
	}
	return report.BuildWeekly(week, teams)
}
