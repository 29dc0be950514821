package standings

import "math/rand"

// Model perturbs one team's record for a single simulation trial. Re-ranking
// an unchanged snapshot can only produce 0% or 100%, so anything that should
// yield real probabilities must inject variance here.
type Model interface {
	Sample(t Team, rng *rand.Rand) Team
}

// Static applies no perturbation. Every trial ranks the same snapshot, so
// each team's odds come out as exactly 0 or 100.
type Static struct{}

func (Static) Sample(t Team, _ *rand.Rand) Team { return t }

// PointsJitter adds gaussian noise to a team's season points before ranking.
// It leaves win totals alone, so it only moves teams across points
// tie-breaks, not across win gaps.
type PointsJitter struct {
	Stddev float64
}

func (m PointsJitter) Sample(t Team, rng *rand.Rand) Team {
	t.Points += rng.NormFloat64() * m.Stddev
	return t
}

// One-sigma week-to-week scoring spread, as a fraction of a team's per-game
// average.
const scoringSpread = 0.2

// RemainingSchedule simulates each team's remaining regular-season games.
// Win probability per game is Bradley-Terry against a league-average
// opponent, using season points as the strength measure; each simulated game
// also accrues sampled points so the points tie-break stays meaningful.
type RemainingSchedule struct {
	Games     int     // remaining regular-season games per team
	Played    int     // games already played, for per-game scoring rates
	LeagueAvg float64 // league-average season points
}

// NewRemainingSchedule derives the league-average baseline from the snapshot.
func NewRemainingSchedule(teams []Team, games, played int) RemainingSchedule {
	return RemainingSchedule{Games: games, Played: played, LeagueAvg: leagueAverage(teams)}
}

func (m RemainingSchedule) Sample(t Team, rng *rand.Rand) Team {
	if m.Games <= 0 {
		return t
	}
	winP := 0.5
	if m.LeagueAvg > 0 && t.Points > 0 {
		winP = t.Points / (t.Points + m.LeagueAvg)
	}
	ppg := 0.0
	if m.Played > 0 {
		ppg = t.Points / float64(m.Played)
	}
	for g := 0; g < m.Games; g++ {
		if rng.Float64() < winP {
			t.Wins++
		}
		if ppg > 0 {
			pts := ppg + rng.NormFloat64()*ppg*scoringSpread
			if pts < 0 {
				pts = 0
			}
			t.Points += pts
		}
	}
	return t
}

func leagueAverage(teams []Team) float64 {
	if len(teams) == 0 {
		return 0
	}
	sum := 0.0
	for _, t := range teams {
		sum += t.Points
	}
	return sum / float64(len(teams))
}
