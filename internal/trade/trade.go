// Package trade aggregates resolved asset values per side of a proposed trade
// and classifies the outcome.
package trade

import (
	"context"
	"strings"

	"dynasty-league-mcp/internal/matcher"
	"dynasty-league-mcp/internal/valuation"
)

// Verdict thresholds on the get-give difference.
const (
	fairThreshold  = 300
	smashThreshold = 800
)

// TableSource yields the current valuation table. *valuation.Cache implements it.
type TableSource interface {
	Values(ctx context.Context) ([]valuation.Entry, error)
}

// Result is the structured outcome of a trade evaluation. Unmatched labels
// contributed zero to their side's sum; they are reported so the caller can
// surface them instead of silently distorting the verdict.
type Result struct {
	GiveValue     int      `json:"give_value"`
	GetValue      int      `json:"get_value"`
	Diff          int      `json:"diff"`
	Verdict       string   `json:"verdict"`
	UnmatchedGive []string `json:"unmatched_give,omitempty"`
	UnmatchedGet  []string `json:"unmatched_get,omitempty"`
}

// Evaluator scores both sides of a trade against one table snapshot.
type Evaluator struct {
	Values TableSource
	Match  matcher.Strategy
}

func NewEvaluator(values TableSource, match matcher.Strategy) *Evaluator {
	if match == nil {
		match = matcher.Substring{}
	}
	return &Evaluator{Values: values, Match: match}
}

// Evaluate sums each side's resolved values and classifies the difference.
// Empty sides are fine and sum to zero. The only error path is an unavailable
// valuation table.
func (e *Evaluator) Evaluate(ctx context.Context, give, get []string) (*Result, error) {
	// One snapshot serves both sides; the table is immutable once fetched.
	table, err := e.Values.Values(ctx)
	if err != nil {
		return nil, err
	}

	giveValue, unmatchedGive := e.sumSide(give, table)
	getValue, unmatchedGet := e.sumSide(get, table)
	diff := getValue - giveValue

	return &Result{
		GiveValue:     giveValue,
		GetValue:      getValue,
		Diff:          diff,
		Verdict:       Verdict(diff),
		UnmatchedGive: unmatchedGive,
		UnmatchedGet:  unmatchedGet,
	}, nil
}

func (e *Evaluator) sumSide(labels []string, table []valuation.Entry) (int, []string) {
	total := 0
	var unmatched []string
	for _, label := range labels {
		entry, ok := e.Match.Resolve(label, table)
		if !ok {
			unmatched = append(unmatched, strings.TrimSpace(label))
			continue
		}
		total += entry.Value
	}
	return total, unmatched
}

// Verdict classifies the get-give difference from the asker's perspective.
func Verdict(diff int) string {
	abs := diff
	if abs < 0 {
		abs = -abs
	}
	switch {
	case abs <= fairThreshold:
		return "Fair Trade"
	case abs <= smashThreshold:
		if diff > 0 {
			return "Win"
		}
		return "Loss"
	default:
		if diff > 0 {
			return "Win (Smash)"
		}
		return "Loss (Smash)"
	}
}

// SplitAssets parses a comma-delimited asset list into labels, trimming
// whitespace and dropping empties.
func SplitAssets(s string) []string {
	parts := strings.Split(s, ",")
	labels := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			labels = append(labels, p)
		}
	}
	return labels
}
