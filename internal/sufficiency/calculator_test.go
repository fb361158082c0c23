package sufficiency

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/edassess/evalengine/internal/config"
	"github.com/edassess/evalengine/internal/types"
)

func blockSet(statuses map[types.BlockType]types.BlockStatus) map[types.BlockType]*types.Block {
	blocks := make(map[types.BlockType]*types.Block, len(statuses))
	for bt, status := range statuses {
		blocks[bt] = &types.Block{BlockType: bt, Status: status}
	}
	return blocks
}

func aicteStatuses(status types.BlockStatus) map[types.BlockType]types.BlockStatus {
	statuses := make(map[types.BlockType]types.BlockStatus)
	for _, bt := range config.Default().Mode(types.ModeAICTE).RequiredBlocks {
		statuses[bt] = status
	}
	return statuses
}

func TestCalculateFullSubmission(t *testing.T) {
	c := NewCalculator(config.Default())
	result := c.Calculate(types.ModeAICTE, blockSet(aicteStatuses(types.StatusValid)))

	assert.Equal(t, 10, result.PresentCount)
	assert.Equal(t, 10, result.RequiredCount)
	assert.InDelta(t, 100, result.Percentage, 1e-9)
	assert.Empty(t, result.MissingBlockTypes)
	assert.Zero(t, result.Penalty.TotalPenalty)
	assert.Equal(t, "green", result.Band)
}

func TestCalculateAbsentBlockIsMissingWithoutPenalty(t *testing.T) {
	statuses := aicteStatuses(types.StatusValid)
	statuses[types.BlockPlacement] = types.StatusAbsent

	c := NewCalculator(config.Default())
	result := c.Calculate(types.ModeAICTE, blockSet(statuses))

	assert.Equal(t, 9, result.PresentCount)
	assert.Equal(t, []types.BlockType{types.BlockPlacement}, result.MissingBlockTypes)
	assert.Zero(t, result.Penalty.TotalPenalty)
	assert.InDelta(t, 90, result.Percentage, 1e-9)
}

func TestCalculatePenalties(t *testing.T) {
	statuses := aicteStatuses(types.StatusValid)
	statuses[types.BlockFaculty] = types.StatusOutdated
	statuses[types.BlockFeeStructure] = types.StatusLowQuality
	statuses[types.BlockLabEquipment] = types.StatusInvalid

	c := NewCalculator(config.Default())
	result := c.Calculate(types.ModeAICTE, blockSet(statuses))

	// Invalid never counts as present; outdated and low quality do. The
	// breakdown reports one affected block per status; the weighted total
	// is 1*4 + 1*5 + 1*7.
	assert.Equal(t, 9, result.PresentCount)
	assert.Equal(t, 1, result.Penalty.Outdated)
	assert.Equal(t, 1, result.Penalty.LowQuality)
	assert.Equal(t, 1, result.Penalty.Invalid)
	assert.Equal(t, 16, result.Penalty.TotalPenalty)
	assert.InDelta(t, 74, result.Percentage, 1e-9)
	assert.Equal(t, "yellow", result.Band)
}

func TestCalculatePenaltyCap(t *testing.T) {
	c := NewCalculator(config.Default())
	result := c.Calculate(types.ModeAICTE, blockSet(aicteStatuses(types.StatusInvalid)))

	// 10 invalid blocks would be 70 penalty points; the cap holds at 50 and
	// the final score clamps at zero.
	assert.Equal(t, 10, result.Penalty.Invalid)
	assert.Equal(t, 50, result.Penalty.TotalPenalty)
	assert.Zero(t, result.PresentCount)
	assert.Zero(t, result.Percentage)
	assert.Equal(t, "red", result.Band)
}

func TestCalculateUnsupportedModeYieldsZeroResult(t *testing.T) {
	c := NewCalculator(config.Default())
	result := c.Calculate(types.Mode("nba"), blockSet(aicteStatuses(types.StatusValid)))

	assert.Zero(t, result.RequiredCount)
	assert.Zero(t, result.Percentage)
	assert.Equal(t, "red", result.Band)
}

func TestCalculateExtraBlocksNeverPenalize(t *testing.T) {
	statuses := aicteStatuses(types.StatusValid)
	blocks := blockSet(statuses)
	// A block outside the required list, in any state.
	blocks[types.BlockType("surplus_information")] = &types.Block{Status: types.StatusInvalid}

	c := NewCalculator(config.Default())
	result := c.Calculate(types.ModeAICTE, blocks)

	assert.InDelta(t, 100, result.Percentage, 1e-9)
	assert.Zero(t, result.Penalty.TotalPenalty)
}
