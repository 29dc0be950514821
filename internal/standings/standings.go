// Package standings ranks league teams and estimates playoff odds by
// Monte Carlo simulation over the remaining season.
package standings

import (
	"errors"
	"math/rand"
	"sort"
	"time"
)

var (
	// ErrInvalidTrialCount is returned for a non-positive trial count.
	ErrInvalidTrialCount = errors.New("trial count must be positive")
	// ErrInvalidSlotCount is returned for a non-positive playoff slot count.
	ErrInvalidSlotCount = errors.New("playoff slot count must be positive")
)

// MaxTrials bounds the per-request simulation cost. Requests asking for more
// are clamped, not rejected.
const MaxTrials = 100000

// Team is one roster's current record. Snapshots are never mutated; ranking
// and simulation work on copies.
type Team struct {
	Name   string  `json:"name"`
	Wins   int     `json:"wins"`
	Points float64 `json:"points"`
}

// Rank returns teams ordered by wins descending, points descending. The sort
// is stable, so teams with identical wins and points keep their snapshot
// order. The input slice is not modified.
func Rank(teams []Team) []Team {
	ranked := make([]Team, len(teams))
	copy(ranked, teams)
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Wins != ranked[j].Wins {
			return ranked[i].Wins > ranked[j].Wins
		}
		return ranked[i].Points > ranked[j].Points
	})
	return ranked
}

// EstimateOdds runs trials simulation passes: perturb each team's record with
// model, rank, and credit the top slots teams. The result maps team name to
// the unrounded qualification percentage.
//
// A nil model means no perturbation, in which case every trial ranks
// identically and each team lands on exactly 0 or 100. A nil rng gets a
// time-seeded source; tests pass a fixed seed.
func EstimateOdds(teams []Team, slots, trials int, model Model, rng *rand.Rand) (map[string]float64, error) {
	if trials <= 0 {
		return nil, ErrInvalidTrialCount
	}
	if slots <= 0 {
		return nil, ErrInvalidSlotCount
	}
	if trials > MaxTrials {
		trials = MaxTrials
	}
	if model == nil {
		model = Static{}
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if slots > len(teams) {
		slots = len(teams)
	}

	tally := make(map[string]int, len(teams))
	for _, t := range teams {
		tally[t.Name] = 0
	}

	trial := make([]Team, len(teams))
	for i := 0; i < trials; i++ {
		for j, t := range teams {
			trial[j] = model.Sample(t, rng)
		}
		for _, t := range Rank(trial)[:slots] {
			tally[t.Name]++
		}
	}

	odds := make(map[string]float64, len(teams))
	for name, count := range tally {
		odds[name] = float64(count) / float64(trials) * 100
	}
	return odds, nil
}
