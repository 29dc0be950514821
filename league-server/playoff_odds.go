package main

import (
	"context"
	"fmt"
	"math"
	"strings"

	"dynasty-league-mcp/internal/sleeper"
	"dynasty-league-mcp/internal/standings"
)

// PlayoffOddsArgs are the input arguments for the playoff_odds tool.
type PlayoffOddsArgs struct {
	LeagueID string `json:"league_id,omitempty" jsonschema:"Sleeper league id (default: configured league)"`
	Slots    int    `json:"slots,omitempty" jsonschema:"Playoff slots (default: league settings)"`
	Trials   int    `json:"trials,omitempty" jsonschema:"Simulation trials (default 5000)"`
	Model    string `json:"model,omitempty" jsonschema:"Simulation model: schedule|jitter|static (default schedule)"`
}

// TeamOdds is one team's simulated playoff probability.
type TeamOdds struct {
	Name   string  `json:"name"`
	Wins   int     `json:"wins"`
	Points float64 `json:"points"`
	Odds   float64 `json:"odds"`
}

// PlayoffOddsResult is the output of the playoff_odds tool. Teams are listed
// in current standings order.
type PlayoffOddsResult struct {
	LeagueID string     `json:"league_id"`
	Slots    int        `json:"slots"`
	Trials   int        `json:"trials"`
	Model    string     `json:"model"`
	Teams    []TeamOdds `json:"teams"`
}

func buildPlayoffOdds(ctx context.Context, deps serverDeps, args PlayoffOddsArgs) (*PlayoffOddsResult, error) {
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
	for _, r := range rosters {
		teams = append(teams, standings.Team{
			Name:   sleeper.TeamName(r, names),
			Wins:   r.Settings.Wins,
			Points: r.Settings.PointsFor(),
		})
	}

	slots := args.Slots
	if slots == 0 {
		slots = league.Settings.PlayoffTeams
	}
	if slots == 0 {
		slots = deps.cfg.PlayoffSlots
	}
	trials := args.Trials
	if trials == 0 {
		trials = deps.cfg.OddsTrials
	}

	modelName, model := pickModel(args.Model, league, rosters, teams)
	odds, err := standings.EstimateOdds(teams, slots, trials, model, nil)
	if err != nil {
		return nil, err
	}

	out := &PlayoffOddsResult{
		LeagueID: leagueID,
		Slots:    slots,
		Trials:   trials,
		Model:    modelName,
		Teams:    make([]TeamOdds, 0, len(teams)),
	}
	for _, t := range standings.Rank(teams) {
		out.Teams = append(out.Teams, TeamOdds{
			Name:   t.Name,
			Wins:   t.Wins,
			Points: t.Points,
			Odds:   round1(odds[t.Name]),
		})
	}
	return out, nil
}

// pickModel maps the requested model name to a simulation model, deriving the
// remaining-schedule parameters from the league snapshot.
func pickModel(name string, league *sleeper.League, rosters []sleeper.Roster, teams []standings.Team) (string, standings.Model) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "static":
		return "static", standings.Static{}
	case "jitter":
		// Spread sized to the typical points gap between adjacent teams.
		return "jitter", standings.PointsJitter{Stddev: leaguePointsSpread(teams)}
	default:
		played := 0
		for _, r := range rosters {
			if g := r.Settings.GamesPlayed(); g > played {
				played = g
			}
		}
		remaining := 0
		if league.Settings.PlayoffWeekStart > 0 {
			remaining = league.Settings.PlayoffWeekStart - 1 - played
			if remaining < 0 {
				remaining = 0
			}
		}
		return "schedule", standings.NewRemainingSchedule(teams, remaining, played)
	}
}

func leaguePointsSpread(teams []standings.Team) float64 {
	if len(teams) < 2 {
		return 1
	}
	ranked := standings.Rank(teams)
	span := ranked[0].Points - ranked[len(ranked)-1].Points
	spread := span / float64(len(ranked)-1)
	if spread <= 0 {
		spread = 1
	}
	return spread
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func resolveLeagueID(deps serverDeps, arg string) (string, error) {
	if arg != "" {
		return arg, nil
	}
	if deps.cfg.LeagueID != "" {
		return deps.cfg.LeagueID, nil
	}
	return "", fmt.Errorf("league_id is required (no default league configured)")
}
