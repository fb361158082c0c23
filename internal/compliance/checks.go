package compliance

import (
	"strings"

	"github.com/edassess/evalengine/internal/config"
	"github.com/edassess/evalengine/internal/match"
	"github.com/edassess/evalengine/internal/normalize"
	"github.com/edassess/evalengine/internal/types"
)

// checkPresence passes when the rule's field carries a non-null value that
// does not read as an explicit negative.
func checkPresence(rule config.ComplianceRule, block *types.Block) bool {
	if block == nil {
		return false
	}
	raw, ok := block.RawFields[rule.Field]
	if !ok || types.IsNull(raw) {
		return false
	}
	switch t := raw.(type) {
	case bool:
		return t
	case string:
		switch strings.ToLower(strings.TrimSpace(t)) {
		case "no", "false", "absent", "not available", "not constituted":
			return false
		}
	}
	return true
}

// checkFuzzyPresence scans the block for any trace of the rule's synonyms:
// field names, text values, true-valued boolean field names and evidence
// snippets all count as mentions.
func checkFuzzyPresence(rule config.ComplianceRule, block *types.Block, matcher *match.Matcher) bool {
	if block == nil {
		return false
	}
	for name, raw := range block.RawFields {
		if types.IsNull(raw) {
			continue
		}
		switch t := raw.(type) {
		case bool:
			if !t {
				continue
			}
		case string:
			switch strings.ToLower(strings.TrimSpace(t)) {
			case "no", "false", "absent":
				continue
			}
			if matcher.Matches(t, rule.Synonyms) {
				return true
			}
		}
		if matcher.Matches(name, rule.Synonyms) {
			return true
		}
	}
	for _, ev := range block.Evidence {
		if matcher.Matches(ev.Snippet, rule.Synonyms) {
			return true
		}
	}
	return false
}

// checkValidUntil passes unless the rule's field resolves to a year that has
// already elapsed. A missing or unparseable field passes; expiry is only
// flagged for certificates the submission actually mentions.
func checkValidUntil(rule config.ComplianceRule, block *types.Block, currentYear int) bool {
	if block == nil {
		return true
	}
	raw, ok := block.RawFields[rule.Field]
	if !ok || types.IsNull(raw) {
		return true
	}
	year := normalize.ParseYear(raw)
	if year == nil {
		return true
	}
	return *year >= currentYear
}
