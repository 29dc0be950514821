package report

import "testing"

func TestBuildWeekly(t *testing.T) {
	teams := []TeamWeek{
		{RosterID: 1, Name: "Crash", Points: 131.5, Projected: 120, Diff: 11.5},
		{RosterID: 2, Name: "Burn", Points: 99.2, Projected: 125, Diff: -25.8},
		{RosterID: 3, Name: "Turbo", Points: 142.8, Projected: 118, Diff: 24.8},
		{RosterID: 4, Name: "Oxide", Points: 104.1, Projected: 110, Diff: -5.9},
	}

	weekly, err := BuildWeekly(8, teams)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if weekly.TopScorer.Name != "Turbo" {
		t.Errorf("top scorer: want Turbo, got %s", weekly.TopScorer.Name)
	}
	if weekly.LowestScorer.Name != "Burn" {
		t.Errorf("lowest scorer: want Burn, got %s", weekly.LowestScorer.Name)
	}
	if weekly.BiggestBust.Name != "Burn" {
		t.Errorf("biggest bust: want Burn, got %s", weekly.BiggestBust.Name)
	}

	// (131.5 + 99.2 + 142.8 + 104.1) / 4 = 119.4
	if weekly.LeagueAverage < 119.39 || weekly.LeagueAverage > 119.41 {
		t.Errorf("league average: want 119.4, got %v", weekly.LeagueAverage)
	}
	if weekly.Week != 8 {
		t.Errorf("week: want 8, got %d", weekly.Week)
	}
}

func TestBuildWeekly_Empty(t *testing.T) {
	if _, err := BuildWeekly(3, nil); err == nil {
		t.Error("want error for a week with no matchup data")
	}
}

func TestResolveWeek(t *testing.T) {
	cases := []struct {
		name       string
		override   int
		currentLeg int
		want       int
	}{
		{"ExplicitOverrideWins", 5, 9, 5},
		{"LastCompletedWeek", 0, 9, 8},
		{"LegMissingDefaultsTo14", 0, 0, 13},
		{"NeverBelowWeekOne", 0, 1, 1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := ResolveWeek(c.override, c.currentLeg); got != c.want {
				t.Errorf("ResolveWeek(%d, %d) = %d, want %d", c.override, c.currentLeg, got, c.want)
			}
		})
	}
}
