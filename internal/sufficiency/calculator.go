// Package sufficiency scores how complete a submission is against the
// mode's required block list, with penalties for degraded blocks.
package sufficiency

import (
	"math"

	"github.com/edassess/evalengine/internal/config"
	"github.com/edassess/evalengine/internal/types"
)

// Calculator computes the sufficiency percentage for one mode.
type Calculator struct {
	cfg *config.Config
}

func NewCalculator(cfg *config.Config) *Calculator {
	return &Calculator{cfg: cfg}
}

// Calculate reads the quality-evaluated block set. A block counts as present
// when it exists with any status other than absent or invalid; penalties
// accrue only for blocks in the required list, so extra blocks can never
// lower the score. Result is clamped to [0, 100]. An unsupported mode yields
// the zero result (red band, nothing required).
func (c *Calculator) Calculate(mode types.Mode, blocks map[types.BlockType]*types.Block) types.SufficiencyResult {
	mc := c.cfg.Mode(mode)
	if mc == nil {
		return types.SufficiencyResult{Band: band(0)}
	}
	t := c.cfg.Thresholds

	required := mc.RequiredBlocks
	result := types.SufficiencyResult{RequiredCount: len(required)}

	for _, bt := range required {
		block, ok := blocks[bt]
		if !ok || block.Status == types.StatusAbsent || block.Status == types.StatusInvalid {
			result.MissingBlockTypes = append(result.MissingBlockTypes, bt)
			if ok && block.Status == types.StatusInvalid {
				result.Penalty.Invalid++
			}
			continue
		}
		result.PresentCount++
		switch block.Status {
		case types.StatusOutdated:
			result.Penalty.Outdated++
		case types.StatusLowQuality:
			result.Penalty.LowQuality++
		}
	}

	total := result.Penalty.Outdated*t.PenaltyOutdated +
		result.Penalty.LowQuality*t.PenaltyLowQuality +
		result.Penalty.Invalid*t.PenaltyInvalid
	if total > t.PenaltyCap {
		total = t.PenaltyCap
	}
	result.Penalty.TotalPenalty = total

	if result.RequiredCount > 0 {
		result.BasePercentage = float64(result.PresentCount) / float64(result.RequiredCount) * 100
	}
	result.Percentage = math.Max(0, result.BasePercentage-float64(total))
	result.Band = band(result.Percentage)
	return result
}

func band(pct float64) string {
	switch {
	case pct >= 80:
		return "green"
	case pct >= 60:
		return "yellow"
	default:
		return "red"
	}
}
