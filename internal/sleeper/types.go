package sleeper

import "fmt"

// League is the subset of a Sleeper league object the server reads.
type League struct {
	LeagueID string         `json:"league_id"`
	Name     string         `json:"name"`
	Settings LeagueSettings `json:"settings"`
}

type LeagueSettings struct {
	Leg              int `json:"leg"`
	PlayoffWeekStart int `json:"playoff_week_start"`
	PlayoffTeams     int `json:"playoff_teams"`
}

// Roster is one team's roster record with its season totals.
type Roster struct {
	RosterID int            `json:"roster_id"`
	OwnerID  string         `json:"owner_id"`
	Settings RosterSettings `json:"settings"`
}

// RosterSettings carries the season record. Sleeper splits fractional points
// into a separate *_decimal field (hundredths).
type RosterSettings struct {
	Wins            int     `json:"wins"`
	Losses          int     `json:"losses"`
	Ties            int     `json:"ties"`
	Fpts            float64 `json:"fpts"`
	FptsDecimal     float64 `json:"fpts_decimal"`
	FptsProj        float64 `json:"fpts_proj"`
	FptsProjDecimal float64 `json:"fpts_proj_decimal"`
}

// PointsFor returns season points scored, decimal part included.
func (s RosterSettings) PointsFor() float64 {
	return s.Fpts + s.FptsDecimal/100
}

// ProjectedFor returns season projected points, decimal part included.
func (s RosterSettings) ProjectedFor() float64 {
	return s.FptsProj + s.FptsProjDecimal/100
}

// GamesPlayed counts regular-season games already decided.
func (s RosterSettings) GamesPlayed() int {
	return s.Wins + s.Losses + s.Ties
}

// User is a league member.
type User struct {
	UserID      string `json:"user_id"`
	DisplayName string `json:"display_name"`
}

// Matchup is one roster's line in a scoring week.
type Matchup struct {
	RosterID  int     `json:"roster_id"`
	MatchupID int     `json:"matchup_id"`
	Points    float64 `json:"points"`
}

// DisplayNames maps user id to display name.
func DisplayNames(users []User) map[string]string {
	names := make(map[string]string, len(users))
	for _, u := range users {
		names[u.UserID] = u.DisplayName
	}
	return names
}

// TeamName returns the owner's display name, falling back to a stable
// synthetic name when the league has no user record for the roster.
func TeamName(r Roster, names map[string]string) string {
	if name := names[r.OwnerID]; name != "" {
		return name
	}
	return fmt.Sprintf("Team %d", r.RosterID)
}
