// Package matcher resolves free-text asset labels against a valuation table.
package matcher

import (
	"strings"

	"dynasty-league-mcp/internal/valuation"
)

// Normalize lowercases s and strips every character that is not a lowercase
// letter, digit, or space, then trims surrounding whitespace. Idempotent.
func Normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range strings.ToLower(s) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == ' ' {
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}

// Strategy maps one asset label to a priced entry. The second return is false
// when nothing matches; callers treat that as a zero-value contribution, not
// an error.
type Strategy interface {
	Resolve(label string, table []valuation.Entry) (valuation.Entry, bool)
}

// Substring is the default strategy: the first entry in table order whose
// normalized name contains the normalized label wins. Deliberately loose:
// "mahomes" matches "Patrick Mahomes", but short labels can hit the wrong
// player.
type Substring struct{}

func (Substring) Resolve(label string, table []valuation.Entry) (valuation.Entry, bool) {
	clean := Normalize(label)
	if clean == "" {
		// An empty substring would match the first table entry.
		return valuation.Entry{}, false
	}
	for _, e := range table {
		if strings.Contains(Normalize(e.Name), clean) {
			return e, true
		}
	}
	return valuation.Entry{}, false
}

// Token is the stricter alternative: every token of the label must appear as
// a whole token in the entry name. "mahomes" still matches, "ma" no longer
// does.
type Token struct{}

func (Token) Resolve(label string, table []valuation.Entry) (valuation.Entry, bool) {
	want := strings.Fields(Normalize(label))
	if len(want) == 0 {
		return valuation.Entry{}, false
	}
	for _, e := range table {
		if containsAllTokens(strings.Fields(Normalize(e.Name)), want) {
			return e, true
		}
	}
	return valuation.Entry{}, false
}

func containsAllTokens(have, want []string) bool {
	for _, w := range want {
		found := false
		for _, h := range have {
			if h == w {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
