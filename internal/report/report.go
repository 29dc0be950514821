// Package report computes the weekly scoring recap for a league.
package report

import "fmt"

// TeamWeek is one team's line for a single scoring week.
type TeamWeek struct {
	RosterID  int     `json:"roster_id"`
	Name      string  `json:"name"`
	MatchupID int     `json:"matchup_id"`
	Points    float64 `json:"points"`
	Projected float64 `json:"projected"`
	Diff      float64 `json:"diff"`
}

// Weekly summarizes a scoring week: highest and lowest scores, league
// average, and the biggest shortfall against projection.
type Weekly struct {
	Week          int      `json:"week"`
	TopScorer     TeamWeek `json:"top_scorer"`
	LowestScorer  TeamWeek `json:"lowest_scorer"`
	LeagueAverage float64  `json:"league_average"`
	BiggestBust   TeamWeek `json:"biggest_underperformance"`
}

// BuildWeekly summarizes the given week's team lines.
func BuildWeekly(week int, teams []TeamWeek) (*Weekly, error) {
	if len(teams) == 0 {
		return nil, fmt.Errorf("no matchup data for week %d", week)
	}

	top, low, bust := teams[0], teams[0], teams[0]
	sum := 0.0
	for _, t := range teams {
		sum += t.Points
		if t.Points > top.Points {
			top = t
		}
		if t.Points < low.Points {
			low = t
		}
		if t.Diff < bust.Diff {
			bust = t
		}
	}

	return &Weekly{
		Week:          week,
		TopScorer:     top,
		LowestScorer:  low,
		LeagueAverage: sum / float64(len(teams)),
		BiggestBust:   bust,
	}, nil
}

// ResolveWeek picks the recap week: an explicit override wins, otherwise the
// week before the league's current leg (leg defaults to 14 when the API
// reports none), floored at week 1.
func ResolveWeek(override, currentLeg int) int {
	if override > 0 {
		return override
	}
	cur := currentLeg
	if cur == 0 {
		cur = 14
	}
	week := cur - 1
	if week < 1 {
		week = 1
	}
	return week
}
