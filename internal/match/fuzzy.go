// Package match isolates fuzzy string matching so compliance rule tables can
// stay purely declarative. Matching is deterministic: identical inputs always
// yield the same answer.
package match

import (
	"strings"

	"github.com/xrash/smetrics"
)

// Matcher compares free-form text against synonym lists using a normalized
// edit-distance ratio with an explicit threshold.
type Matcher struct {
	threshold float64
}

// NewMatcher creates a matcher. Threshold is the minimum similarity ratio in
// [0,1] for a fuzzy hit; 0.80 is the engine default.
func NewMatcher(threshold float64) *Matcher {
	return &Matcher{threshold: threshold}
}

// Similarity returns the normalized edit-distance ratio between a and b in
// [0,1], where 1 means identical. Comparison is case-insensitive.
func (m *Matcher) Similarity(a, b string) float64 {
	a = strings.ToLower(strings.TrimSpace(a))
	b = strings.ToLower(strings.TrimSpace(b))
	if a == b {
		return 1
	}
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	// With substitution cost 2 this matches the classic similarity ratio
	// 2*M/(len(a)+len(b)).
	dist := smetrics.WagnerFischer(a, b, 1, 1, 2)
	return 1 - float64(dist)/float64(len(a)+len(b))
}

// Matches reports whether text matches any of the synonyms. Substring
// containment short-circuits; otherwise the similarity ratio is compared
// against the threshold, with a two-token overlap as the final fallback for
// long snippets that embed the certificate name among other words.
func (m *Matcher) Matches(text string, synonyms []string) bool {
	text = strings.ToLower(strings.TrimSpace(text))
	if text == "" {
		return false
	}

	normalized := normalizeSeparators(text)
	for _, syn := range synonyms {
		s := strings.ToLower(strings.TrimSpace(syn))
		if s == "" {
			continue
		}
		ns := normalizeSeparators(s)
		if strings.Contains(normalized, ns) || strings.Contains(ns, normalized) {
			return true
		}
		if m.Similarity(normalized, ns) >= m.threshold {
			return true
		}
	}

	textTokens := tokenSet(normalized)
	for _, syn := range synonyms {
		common := 0
		for tok := range tokenSet(normalizeSeparators(strings.ToLower(syn))) {
			if textTokens[tok] {
				common++
			}
		}
		if common >= 2 {
			return true
		}
	}

	return false
}

func normalizeSeparators(s string) string {
	s = strings.ReplaceAll(s, "_", " ")
	s = strings.ReplaceAll(s, "-", " ")
	return strings.Join(strings.Fields(s), " ")
}

func tokenSet(s string) map[string]bool {
	set := make(map[string]bool)
	for _, tok := range strings.Fields(s) {
		set[tok] = true
	}
	return set
}
