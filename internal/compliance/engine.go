// Package compliance runs the mode's declarative rule table against a
// quality-evaluated block set and raises severity-tagged flags. Rules are
// independent; an empty flag list means no issues were detected.
package compliance

import (
	"github.com/edassess/evalengine/internal/config"
	"github.com/edassess/evalengine/internal/match"
	"github.com/edassess/evalengine/internal/types"
)

// Engine evaluates compliance rules for one mode. CurrentYear is injected so
// expiry checks are reproducible in tests.
type Engine struct {
	cfg         *config.Config
	matcher     *match.Matcher
	currentYear int
}

func NewEngine(cfg *config.Config, currentYear int) *Engine {
	return &Engine{
		cfg:         cfg,
		matcher:     match.NewMatcher(cfg.Thresholds.FuzzyThreshold),
		currentYear: currentYear,
	}
}

// Evaluate returns flags in rule-table order. Rules sharing a Key are probes
// for the same requirement: if any of them passes the requirement is
// satisfied, and if all fail exactly one flag (the first failing rule's) is
// raised, so synonym variants of one certificate never duplicate. An
// unsupported mode has no rule table and yields no flags.
func (e *Engine) Evaluate(mode types.Mode, blocks map[types.BlockType]*types.Block) []types.ComplianceFlag {
	mc := e.cfg.Mode(mode)
	if mc == nil {
		return nil
	}

	satisfied := make(map[string]bool)
	firstFailure := make(map[string]config.ComplianceRule)
	keyOrder := make([]string, 0, len(mc.Rules))

	for _, rule := range mc.Rules {
		if _, seen := firstFailure[rule.Key]; !seen && !satisfied[rule.Key] {
			keyOrder = append(keyOrder, rule.Key)
		}
		if satisfied[rule.Key] {
			continue
		}
		if e.passes(rule, blocks[rule.BlockType]) {
			satisfied[rule.Key] = true
			delete(firstFailure, rule.Key)
			continue
		}
		if _, seen := firstFailure[rule.Key]; !seen {
			firstFailure[rule.Key] = rule
		}
	}

	flags := make([]types.ComplianceFlag, 0)
	for _, key := range keyOrder {
		if satisfied[key] {
			continue
		}
		rule, ok := firstFailure[key]
		if !ok {
			continue
		}
		flags = append(flags, types.ComplianceFlag{
			Severity:         rule.Severity,
			Title:            rule.Title,
			Reason:           rule.Reason,
			Recommendation:   rule.Recommendation,
			RelatedBlockType: rule.BlockType,
		})
	}
	return flags
}

func (e *Engine) passes(rule config.ComplianceRule, block *types.Block) bool {
	switch rule.Check {
	case config.CheckPresence:
		return checkPresence(rule, block)
	case config.CheckFuzzyPresence:
		return checkFuzzyPresence(rule, block, e.matcher)
	case config.CheckValidUntil:
		return checkValidUntil(rule, block, e.currentYear)
	default:
		// Unknown check kinds fail closed so misconfiguration is visible.
		return false
	}
}
