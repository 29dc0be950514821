package trade

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"dynasty-league-mcp/internal/valuation"
)

// stubTable serves a fixed valuation table without any caching or network.
type stubTable struct {
	entries []valuation.Entry
	err     error
}

func (s stubTable) Values(_ context.Context) ([]valuation.Entry, error) {
	return s.entries, s.err
}

func testEvaluator() *Evaluator {
	return NewEvaluator(stubTable{entries: []valuation.Entry{
		{Name: "Patrick Mahomes", Value: 9000},
		{Name: "Josh Allen", Value: 9500},
		{Name: "Breece Hall", Value: 5300},
		{Name: "2025 Round 1", Value: 3000},
	}}, nil)
}

func TestEvaluate_EmptyTrade(t *testing.T) {
	res, err := testEvaluator().Evaluate(context.Background(), nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.GiveValue != 0 || res.GetValue != 0 {
		t.Errorf("values: want 0/0, got %d/%d", res.GiveValue, res.GetValue)
	}
	if res.Verdict != "Fair Trade" {
		t.Errorf("verdict: want Fair Trade, got %q", res.Verdict)
	}
}

func TestEvaluate_SumsAndUnmatched(t *testing.T) {
	res, err := testEvaluator().Evaluate(context.Background(),
		[]string{"mahomes", "nobody at all"},
		[]string{"josh allen", "breece hall"},
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.GiveValue != 9000 {
		t.Errorf("give: want 9000, got %d", res.GiveValue)
	}
	if res.GetValue != 14800 {
		t.Errorf("get: want 14800, got %d", res.GetValue)
	}
	if !reflect.DeepEqual(res.UnmatchedGive, []string{"nobody at all"}) {
		t.Errorf("unmatched give: got %v", res.UnmatchedGive)
	}
	if len(res.UnmatchedGet) != 0 {
		t.Errorf("unmatched get: got %v", res.UnmatchedGet)
	}
}

func TestEvaluate_AntiSymmetric(t *testing.T) {
	give := []string{"mahomes"}
	get := []string{"breece hall", "2025 round 1"}

	ab, err := testEvaluator().Evaluate(context.Background(), give, get)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ba, err := testEvaluator().Evaluate(context.Background(), get, give)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if ab.Diff != -ba.Diff {
		t.Errorf("diff not negated: %d vs %d", ab.Diff, ba.Diff)
	}
	// 8300 vs 9000: |diff| = 700, a plain Win/Loss pair.
	if ab.Verdict != "Loss" || ba.Verdict != "Win" {
		t.Errorf("verdicts: got %q / %q", ab.Verdict, ba.Verdict)
	}
}

func TestEvaluate_TableUnavailable(t *testing.T) {
	ev := NewEvaluator(stubTable{err: valuation.ErrUnavailable}, nil)
	_, err := ev.Evaluate(context.Background(), []string{"mahomes"}, nil)
	if !errors.Is(err, valuation.ErrUnavailable) {
		t.Errorf("want ErrUnavailable, got %v", err)
	}
}

func TestVerdict_Boundaries(t *testing.T) {
	cases := []struct {
		diff int
		want string
	}{
		{0, "Fair Trade"},
		{300, "Fair Trade"},
		{-300, "Fair Trade"},
		{301, "Win"},
		{-301, "Loss"},
		{800, "Win"},
		{-800, "Loss"},
		{801, "Win (Smash)"},
		{-801, "Loss (Smash)"},
	}
	for _, c := range cases {
		if got := Verdict(c.diff); got != c.want {
			t.Errorf("Verdict(%d) = %q, want %q", c.diff, got, c.want)
		}
	}
}

func TestSplitAssets(t *testing.T) {
	got := SplitAssets(" mahomes , , breece hall,2025 round 1 ")
	want := []string{"mahomes", "breece hall", "2025 round 1"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SplitAssets: got %v, want %v", got, want)
	}

	if got := SplitAssets("   "); len(got) != 0 {
		t.Errorf("blank input: got %v, want empty", got)
	}
}
